// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package fs locates schema documents on a file system.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"net/url"
	"path/filepath"

	"github.com/spf13/afero"

	"gopkg.microglot.org/gqlsdl.go/internal/exc"
)

// Extensions of files picked up when a directory is opened.
var knownExts = map[string]bool{
	".graphql":  true,
	".graphqls": true,
	".gql":      true,
}

// IsSchemaFile reports whether fname has a schema file extension.
func IsSchemaFile(fname string) bool {
	return knownExts[filepath.Ext(fname)]
}

// FileSystem opens schema documents by path. Opening a directory yields the
// schema files directly inside it.
type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
}

// FileFilter is a filter function type used to select which files to open when
// the path being opened is a directory. Implementations should return true if
// the file should be opened, false otherwise.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSFactory installs a custom factory function used to generate the
// underlying file system handle. The default value is an afero.BasePathFs over
// the operating system. The string value provided to the factory function is
// the root directory of the file system. All paths given to open are
// considered relative to this root.
func WithOptionFSFactory(v func(root string) afero.Fs) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fsFactory = v
	}
}

// WithOptionFileFilter installs a custom filter function used to select files
// when a target is a directory. The default accepts the known schema file
// extensions.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	fsFactory  func(string) afero.Fs
	fileFilter FileFilter
}

// NewFileSystemLocal creates a new FileSystem rooted at root.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root: absroot,
		fsFactory: func(root string) afero.Fs {
			return afero.NewBasePathFs(afero.NewOsFs(), root)
		},
		fileFilter: func(ctx context.Context, fname string) bool {
			return IsSchemaFile(fname)
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]File, error) {
	path := uri
	u, err := url.Parse(uri)
	if err == nil && u.Path != "" {
		path = u.Path
	}
	p := filepath.Clean(filepath.Join("/", path))

	dir := r.fsFactory(r.root)
	stat, err := dir.Stat(p)
	if err != nil {
		return nil, fsErr(p, err)
	}
	if !stat.IsDir() {
		return []File{r.file(dir, p)}, nil
	}
	entries, err := afero.ReadDir(dir, p)
	if err != nil {
		return nil, fsErr(p, err)
	}
	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !r.fileFilter(ctx, entry.Name()) {
			continue
		}
		files = append(files, r.file(dir, filepath.Join(p, entry.Name())))
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: p}, exc.CodeFileNotFound, fmt.Sprintf("found directory %s but it has no schema files", p))
	}
	return files, nil
}

func (r *fileSystemLocal) file(dir afero.Fs, p string) File {
	return NewFileFN(p, func() (io.ReadCloser, error) {
		return dir.Open(p)
	})
}

func fsErr(path string, err error) error {
	var errT *iofs.PathError
	if errors.As(err, &errT) {
		path = errT.Path
	}
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return exc.Wrap(exc.Location{URI: path}, exc.CodeFileNotFound, err)
	case errors.Is(err, iofs.ErrPermission):
		return exc.Wrap(exc.Location{URI: path}, exc.CodePermissionDenied, err)
	default:
		return exc.WrapUnknown(exc.Location{URI: path}, err)
	}
}
