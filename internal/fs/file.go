// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"io"
	"strings"

	"gopkg.microglot.org/gqlsdl.go/internal/exc"
)

// File is a schema document that can be read any number of times.
type File interface {
	Path(ctx context.Context) string
	Body(ctx context.Context) (string, error)
}

type fileIOFunc struct {
	path string
	body func() (io.ReadCloser, error)
}

// NewFileFN wraps content behind an opener function in the File interface.
// The body function is called on each call to File.Body and must return a
// new io.ReadCloser each time.
func NewFileFN(path string, body func() (io.ReadCloser, error)) File {
	return &fileIOFunc{
		path: path,
		body: body,
	}
}

func (f *fileIOFunc) Path(ctx context.Context) string {
	return f.path
}

func (f *fileIOFunc) Body(ctx context.Context) (string, error) {
	rc, err := f.body()
	if err != nil {
		return "", fsErr(f.path, err)
	}
	defer rc.Close()
	var b strings.Builder
	if _, err := io.Copy(&b, rc); err != nil {
		return "", exc.WrapUnknown(exc.Location{URI: f.path}, err)
	}
	return b.String(), nil
}
