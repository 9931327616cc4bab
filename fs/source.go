// Package fs provides a zengin.Source over JSON documents stored in a file
// system, laid out as banks.json and branches/<bank code>.json.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/zengin"
)

// Ensure Source implements zengin.Source at compile time.
var _ zengin.Source = (*Source)(nil)

// Index file locations relative to the source root.
const (
	BanksFile   = "banks.json"
	BranchesDir = "branches"
)

// Source reads the bank and branch indexes from an fs.FS.
type Source struct {
	fsys fs.FS
}

// NewSource creates a Source rooted at fsys.
func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// NewDirSource creates a Source rooted at a directory on disk, such as the
// data directory of a zengin-code/source-data checkout.
func NewDirSource(dir string) *Source {
	return NewSource(os.DirFS(dir))
}

// Banks reads and parses banks.json.
func (s *Source) Banks(ctx context.Context) (map[string]*zengin.Bank, error) {
	f, err := s.open(ctx, BanksFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	banks, err := zengin.ParseBanks(f)
	if err != nil {
		return nil, annotate(err, BanksFile)
	}
	return banks, nil
}

// Branches reads and parses branches/<bankCode>.json.
// Returns ENOTFOUND if the file does not exist.
func (s *Source) Branches(ctx context.Context, bankCode string) (map[string]*zengin.Branch, error) {
	name := BranchPath(bankCode)
	f, err := s.open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	branches, err := zengin.ParseBranches(f)
	if err != nil {
		return nil, annotate(err, name)
	}
	return branches, nil
}

// BranchPath returns the location of a bank's branch index. The result is
// not cleaned, so codes containing path elements never resolve to another
// index.
func BranchPath(bankCode string) string {
	return BranchesDir + "/" + bankCode + ".json"
}

func (s *Source) open(ctx context.Context, name string) (fs.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !fs.ValidPath(name) {
		return nil, zengin.Errorf(zengin.ENOTFOUND, "%s not found", name)
	}

	f, err := s.fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return nil, zengin.WrapError(zengin.ENOTFOUND, err, "%s not found", name)
	} else if err != nil {
		return nil, zengin.WrapError(zengin.EIO, err, "failed to open %s", name)
	}
	return f, nil
}

// annotate prefixes an application error's message with the file it came from.
func annotate(err error, name string) error {
	var e *zengin.Error
	if errors.As(err, &e) {
		return &zengin.Error{Code: e.Code, Message: name + ": " + e.Message, Err: e.Err}
	}
	return err
}
