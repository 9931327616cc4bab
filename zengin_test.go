package zengin_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/fwojciec/zengin"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := zengin.Errorf(zengin.ENOTFOUND, "bank %q not found", "0001")

	assert.Equal(t, zengin.ENOTFOUND, zengin.ErrorCode(err))
	assert.Equal(t, "bank \"0001\" not found", zengin.ErrorMessage(err))
	assert.Equal(t, "bank \"0001\" not found", err.Error())
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	err := zengin.WrapError(zengin.EIO, fs.ErrPermission, "read %s", "banks.json")

	assert.Equal(t, zengin.EIO, zengin.ErrorCode(err))
	assert.Equal(t, "read banks.json", zengin.ErrorMessage(err))
	assert.Equal(t, "read banks.json: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, zengin.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zengin.EINTERNAL, zengin.ErrorCode(errors.New("boom")))
	assert.Equal(t, "Internal error.", zengin.ErrorMessage(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, zengin.ErrorMessage(nil))
}
