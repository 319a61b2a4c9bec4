// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package describe turns the comments of a document into descriptions of the
// elements they precede.
package describe

import (
	"sort"
	"strings"
	"unicode"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
)

// Descriptions maps element keys to description text. Keys are "Type",
// "Type.field", "Type.field(arg)" and "Enum.VALUE".
type Descriptions map[string]string

func (self Descriptions) Lookup(key string) (string, bool) {
	d, ok := self[key]
	return d, ok
}

// Keys returns every described key in lexical order.
func (self Descriptions) Keys() []string {
	keys := make([]string, 0, len(self))
	for k := range self {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TypeKey(typeName string) string {
	return typeName
}

func FieldKey(typeName string, field string) string {
	return typeName + "." + field
}

func ArgumentKey(typeName string, field string, argument string) string {
	return FieldKey(typeName, field) + "(" + argument + ")"
}

func ValueKey(enumName string, value string) string {
	return enumName + "." + value
}

// Collect gathers the descriptions of doc. A run of comments describes the
// element that directly follows it in the same list and is dropped when no
// element follows.
func Collect(doc *ast.Document) Descriptions {
	out := Descriptions{}
	var b buffer
	for _, d := range doc.Definitions {
		switch n := d.(type) {
		case *ast.Comment:
			b.push(n)
			continue
		case *ast.ObjectTypeDefinition:
			out.set(TypeKey(n.Name.Value), b.take())
			out.fields(n.Name.Value, n.Fields)
		case *ast.InterfaceTypeDefinition:
			out.set(TypeKey(n.Name.Value), b.take())
			out.fields(n.Name.Value, n.Fields)
		case *ast.UnionTypeDefinition:
			out.set(TypeKey(n.Name.Value), b.take())
		case *ast.ScalarTypeDefinition:
			out.set(TypeKey(n.Name.Value), b.take())
		case *ast.EnumTypeDefinition:
			out.set(TypeKey(n.Name.Value), b.take())
			out.values(n.Name.Value, n.Values)
		case *ast.InputObjectTypeDefinition:
			out.set(TypeKey(n.Name.Value), b.take())
			out.inputs(n.Fields, func(input string) string {
				return FieldKey(n.Name.Value, input)
			})
		case *ast.TypeExtensionDefinition:
			// The type itself is described where it is defined.
			b.take()
			if n.Definition != nil {
				out.fields(n.Definition.Name.Value, n.Definition.Fields)
			}
		}
	}
	return out
}

func (self Descriptions) set(key string, description string) {
	if description != "" {
		self[key] = description
	}
}

func (self Descriptions) fields(typeName string, elements []ast.FieldElement) {
	var b buffer
	for _, e := range elements {
		switch n := e.(type) {
		case *ast.Comment:
			b.push(n)
		case *ast.FieldDefinition:
			self.set(FieldKey(typeName, n.Name.Value), b.take())
			self.inputs(n.Arguments, func(arg string) string {
				return ArgumentKey(typeName, n.Name.Value, arg)
			})
		}
	}
}

func (self Descriptions) inputs(elements []ast.InputValueElement, key func(string) string) {
	var b buffer
	for _, e := range elements {
		switch n := e.(type) {
		case *ast.Comment:
			b.push(n)
		case *ast.InputValueDefinition:
			self.set(key(n.Name.Value), b.take())
		}
	}
}

func (self Descriptions) values(enumName string, elements []ast.EnumValueElement) {
	var b buffer
	for _, e := range elements {
		switch n := e.(type) {
		case *ast.Comment:
			b.push(n)
		case *ast.EnumValueDefinition:
			self.set(ValueKey(enumName, n.Name.Value), b.take())
		}
	}
}

// buffer holds the comment lines seen since the last element.
type buffer struct {
	lines []string
}

func (self *buffer) push(c *ast.Comment) {
	self.lines = append(self.lines, c.Text())
}

// take returns the pending lines with their common indentation removed and
// empties the buffer.
func (self *buffer) take() string {
	if len(self.lines) == 0 {
		return ""
	}
	prefix := -1
	for _, line := range self.lines {
		if indent := indentation(line); prefix < 0 || indent < prefix {
			prefix = indent
		}
	}
	out := make([]string, 0, len(self.lines))
	for _, line := range self.lines {
		out = append(out, dropRunes(line, prefix))
	}
	self.lines = nil
	return strings.Join(out, "\n")
}

// indentation counts the leading white space runes of line.
func indentation(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
