// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package parser implements a scannerless recursive descent parser for the
// schema definition language. Rules work directly on the source text and
// every node records the span of source it was built from.
package parser

import (
	"fmt"
	"regexp"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
	"gopkg.microglot.org/gqlsdl.go/internal/optional"
)

var commentPattern = regexp.MustCompile(`^#[^\r\n]*`)

// Parse parses body as a complete document. name labels the source in
// locations and errors; an empty name selects ast.DefaultSourceName.
//
// Any syntax error aborts the parse and is returned as an exc.Exception.
func Parse(body string, name string) (*ast.Document, error) {
	return ParseSource(ast.NewSource(body, name))
}

// ParseSource is Parse for an existing Source. The returned tree references
// src from every location.
func ParseSource(src *ast.Source) (doc *ast.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			doc = nil
			err = b.err
		}
	}()
	_, d := document(cursor{src: src})
	return d.Value(), nil
}

func document(c cursor) (cursor, optional.Optional[*ast.Document]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.Document]) {
		next, definitions := list(c, definition)
		if rest := next.skipTrivia(); !rest.eof() {
			fail(rest, exc.CodeUnexpectedCharacter, fmt.Sprintf("Unexpected character %s, expected comment or definition", rest.got()))
		}
		return next, optional.Some(&ast.Document{Definitions: definitions})
	})
}

func definition(c cursor) (cursor, optional.Optional[ast.Definition]) {
	return positioned(c, typeDefinition)
}

func comment(c cursor) (cursor, optional.Optional[*ast.Comment]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.Comment]) {
		next, text := c.pattern(commentPattern)
		if !text.IsPresent() {
			return c, optional.None[*ast.Comment]()
		}
		return next, optional.Some(&ast.Comment{Value: text.Value()})
	})
}
