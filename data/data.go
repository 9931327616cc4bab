// Package data embeds a bundled Zengin dataset and exposes it as a
// process-wide collection.
//
// The bundled files follow the zengin-code/source-data layout. Point
// fs.NewDirSource at a full source-data checkout to load the complete
// dataset instead.
package data

import (
	"context"
	"embed"
	"sync"

	"github.com/fwojciec/zengin"
	zfs "github.com/fwojciec/zengin/fs"
)

// FS holds banks.json and the branches directory.
//
//go:embed banks.json branches
var FS embed.FS

// NewSource returns a Source over the embedded files.
func NewSource() *zfs.Source {
	return zfs.NewSource(FS)
}

var (
	defaultZengin     *zengin.Zengin
	defaultZenginOnce sync.Once
	defaultZenginErr  error
)

// Default returns the collection loaded from the embedded files. It is
// loaded on first use; every call returns the same collection or the same
// error.
func Default() (*zengin.Zengin, error) {
	defaultZenginOnce.Do(func() {
		defaultZengin, defaultZenginErr = zengin.Load(context.Background(), NewSource())
	})
	return defaultZengin, defaultZenginErr
}
