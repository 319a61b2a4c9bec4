// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package sdl parses schema definition language documents into syntax trees
// whose nodes carry exact byte spans of the source they came from.
//
//	doc, err := sdl.Parse(body, "schema.graphql")
//	if err != nil {
//		var e sdl.Exception
//		if errors.As(err, &e) {
//			fmt.Println(e.Location(), e.Message())
//		}
//	}
package sdl

import (
	"github.com/spf13/afero"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/describe"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
	"gopkg.microglot.org/gqlsdl.go/internal/parser"
)

type (
	Document     = ast.Document
	Node         = ast.Node
	Kind         = ast.Kind
	Source       = ast.Source
	Location     = ast.Location
	Exception    = exc.Exception
	Position     = exc.Location
	Descriptions = describe.Descriptions
)

const DefaultSourceName = ast.DefaultSourceName

// Parse parses body. name labels the source; empty selects
// DefaultSourceName.
func Parse(body string, name string) (*Document, error) {
	return parser.Parse(body, name)
}

// ParseFile reads path from fsys and parses it with the path as source name.
func ParseFile(fsys afero.Fs, path string) (*Document, error) {
	b, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, exc.Wrap(exc.Location{URI: path}, exc.CodeFileNotFound, err)
	}
	return parser.Parse(string(b), path)
}

// Walk calls f for every node beneath and including node, children first.
func Walk(node Node, f func(Node)) {
	ast.Walk(node, f)
}

// Describe collects the descriptions written as comments in doc.
func Describe(doc *Document) Descriptions {
	return describe.Collect(doc)
}
