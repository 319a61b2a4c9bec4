// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"regexp"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/optional"
)

var namePattern = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*`)

// reserved spellings never parse as a type or enum name.
var reserved = map[string]bool{
	"type":      true,
	"interface": true,
	"union":     true,
	"scalar":    true,
	"enum":      true,
	"input":     true,
	"extend":    true,
	"null":      true,
}

func isReserved(name string) bool {
	return reserved[name]
}

// name matches an identifier that is not a reserved word.
func name(c cursor) (cursor, optional.Optional[*ast.Name]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.Name]) {
		next, text := c.pattern(namePattern)
		if !text.IsPresent() || isReserved(text.Value()) {
			return c, optional.None[*ast.Name]()
		}
		return next, optional.Some(&ast.Name{Value: text.Value()})
	})
}

// memberName matches any identifier. Inside a field, argument or object
// value block no keyword production competes, so reserved spellings such
// as "type" are ordinary names there.
func memberName(c cursor) (cursor, optional.Optional[*ast.Name]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.Name]) {
		next, text := c.pattern(namePattern)
		if !text.IsPresent() {
			return c, optional.None[*ast.Name]()
		}
		return next, optional.Some(&ast.Name{Value: text.Value()})
	})
}

func namedType(c cursor) (cursor, optional.Optional[*ast.NamedType]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.NamedType]) {
		next, n := name(c)
		if !n.IsPresent() {
			return c, optional.None[*ast.NamedType]()
		}
		return next, optional.Some(&ast.NamedType{Name: n.Value()})
	})
}

func listType(c cursor) (cursor, optional.Optional[*ast.ListType]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.ListType]) {
		next, ok := c.literal("[")
		if !ok {
			return c, optional.None[*ast.ListType]()
		}
		next, inner := typeReference(next)
		node := &ast.ListType{Type: required(next, inner, "Type")}
		next = expect(next, "]")
		return next, optional.Some(node)
	})
}

// typeReference matches a named or list type with an optional trailing '!'.
func typeReference(c cursor) (cursor, optional.Optional[ast.Type]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[ast.Type]) {
		next, t := alt(
			widen[ast.Type](namedType),
			widen[ast.Type](listType),
		)(c)
		if !t.IsPresent() {
			return c, t
		}
		if bang, ok := next.literal("!"); ok {
			return bang, optional.Some[ast.Type](&ast.NonNullType{Type: t.Value()})
		}
		return next, t
	})
}
