package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/zengin"
	main "github.com/fwojciec/zengin/cmd/zengin"
	"github.com/fwojciec/zengin/data"
	"github.com/fwojciec/zengin/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"bank", "branch", "banks", "branches", "info"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:", "Help should have Kong-style Usage prefix")
	assert.Contains(t, helpOutput, "Flags:", "Help should have Kong-style Flags section")
}

func TestMain_Run_NoArguments(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_EmbeddedDataset(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	m := main.NewMain()

	err := m.Run(context.Background(), []string{"branches", "0001", ".*東京.*"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "東京営業部")
	require.NotNil(t, m.Zengin)

	embedded, err := data.Default()
	require.NoError(t, err)
	assert.Equal(t, embedded.Digest(), m.Zengin.Digest())
}

func TestMain_Run_VerboseLogsLoading(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--verbose", "info"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "bank index read")
	assert.Contains(t, stderr.String(), "branch index read")
}

// writeDataDir writes a source-data style directory with one bank.
func writeDataDir(t *testing.T, withBranches bool) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "branches"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "banks.json"), []byte(`{
		"0001": {"code": "0001", "name": "みずほ", "kana": "ミズホ", "hira": "みずほ", "roma": "mizuho"}
	}`), 0644))
	if withBranches {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "branches", "0001.json"), []byte(`{
			"001": {"code": "001", "name": "東京営業部", "kana": "トウキヨウ", "hira": "とうきよう", "roma": "toukiyou"}
		}`), 0644))
	}
	return dir
}

func TestMain_Run_DataDir(t *testing.T) {
	t.Parallel()

	t.Run("loads the dataset from a directory", func(t *testing.T) {
		t.Parallel()

		dir := writeDataDir(t, true)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"--data-dir", dir, "-o", "json", "info"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"banks": 1`)
		assert.Equal(t, 1, m.Zengin.BranchCount())
	})

	t.Run("fails when a branch index is missing", func(t *testing.T) {
		t.Parallel()

		dir := writeDataDir(t, false)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--data-dir", dir, "info"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, zengin.ENOTFOUND, zengin.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--allow-missing-branches")
	})

	t.Run("loads an empty branch set when allowed", func(t *testing.T) {
		t.Parallel()

		dir := writeDataDir(t, false)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		m := main.NewMain()

		err := m.Run(context.Background(), []string{"--data-dir", dir, "--allow-missing-branches", "bank", "0001"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "みずほ")
		assert.Equal(t, 0, m.Zengin.BranchCount())
		assert.Contains(t, stderr.String(), "branch index read")
	})
}

func TestMain_Run_Database(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "zengin.db")
	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO banks (code, name, kana, hira, roma) VALUES ('0001', 'みずほ', 'ミズホ', 'みずほ', 'mizuho');
		INSERT INTO branches (bank_code, code, name, kana, hira, roma)
		VALUES ('0001', '001', '東京営業部', 'トウキヨウ', 'とうきよう', 'toukiyou');
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err = main.NewMain().Run(context.Background(), []string{"--db", dbPath, "branch", "0001", "001"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "東京営業部")
}

func TestMain_Run_DatabaseIsNotModified(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "empty.db")
	require.NoError(t, os.WriteFile(dbPath, nil, 0644))
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	m := main.NewMain()
	defer m.Close()
	err := m.Run(context.Background(), []string{"--db", dbPath, "info"}, stdout, stderr)

	require.Error(t, err)
	info, statErr := os.Stat(dbPath)
	require.NoError(t, statErr)
	assert.Zero(t, info.Size())
}

func TestMain_Run_RejectsBothSources(t *testing.T) {
	t.Parallel()

	dir := writeDataDir(t, true)
	dbPath := filepath.Join(t.TempDir(), "zengin.db")
	require.NoError(t, os.WriteFile(dbPath, nil, 0644))
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--data-dir", dir, "--db", dbPath, "info"}, stdout, stderr)

	require.Error(t, err)
}
