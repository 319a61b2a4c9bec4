// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package dump renders syntax trees as generic maps and serializes them.
package dump

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatNone Format = "none"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatNone:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Tree converts n and everything beneath it into nested maps keyed by field
// name. Every map carries "kind" and "loc".
func Tree(n ast.Node) (map[string]any, error) {
	d := &dumper{}
	out := d.node(n)
	if d.err != nil {
		return nil, d.err
	}
	m, _ := out.(map[string]any)
	return m, nil
}

// Write serializes n to w in format f. FormatNone writes nothing.
func Write(w io.Writer, f Format, n ast.Node) error {
	if f == FormatNone {
		return nil
	}
	tree, err := Tree(n)
	if err != nil {
		return err
	}
	return WriteValue(w, f, tree)
}

// WriteValue serializes any tree-like value to w in format f.
func WriteValue(w io.Writer, f Format, v any) error {
	var b []byte
	var err error
	switch f {
	case FormatNone:
		return nil
	case FormatJSON:
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	case FormatYAML:
		b, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

type dumper struct {
	err error
}

func (self *dumper) node(n ast.Node) any {
	if n == nil || self.err != nil {
		return nil
	}
	out := map[string]any{
		"kind": n.Kind().String(),
		"loc":  loc(n.Location()),
	}
	switch n := n.(type) {
	case *ast.Document:
		out["definitions"] = nodes(self, n.Definitions)
	case *ast.Comment:
		out["value"] = n.Value
	case *ast.Name:
		out["value"] = n.Value
	case *ast.NamedType:
		out["name"] = self.name(n.Name)
	case *ast.ListType:
		out["type"] = self.child(n.Type)
	case *ast.NonNullType:
		out["type"] = self.child(n.Type)
	case *ast.ObjectTypeDefinition:
		out["name"] = self.name(n.Name)
		out["interfaces"] = nodes(self, n.Interfaces)
		out["fields"] = nodes(self, n.Fields)
	case *ast.InterfaceTypeDefinition:
		out["name"] = self.name(n.Name)
		out["fields"] = nodes(self, n.Fields)
	case *ast.UnionTypeDefinition:
		out["name"] = self.name(n.Name)
		out["types"] = nodes(self, n.Types)
	case *ast.ScalarTypeDefinition:
		out["name"] = self.name(n.Name)
	case *ast.EnumTypeDefinition:
		out["name"] = self.name(n.Name)
		out["values"] = nodes(self, n.Values)
	case *ast.EnumValueDefinition:
		out["name"] = self.name(n.Name)
	case *ast.InputObjectTypeDefinition:
		out["name"] = self.name(n.Name)
		out["fields"] = nodes(self, n.Fields)
	case *ast.InputValueDefinition:
		out["name"] = self.name(n.Name)
		out["type"] = self.child(n.Type)
		out["defaultValue"] = self.child(n.DefaultValue)
	case *ast.FieldDefinition:
		out["name"] = self.name(n.Name)
		if n.HasArgumentList() {
			out["arguments"] = nodes(self, n.Arguments)
		} else {
			out["arguments"] = nil
		}
		out["type"] = self.child(n.Type)
	case *ast.TypeExtensionDefinition:
		if n.Definition != nil {
			out["definition"] = self.node(n.Definition)
		}
	case *ast.Variable:
		out["name"] = self.name(n.Name)
	case *ast.NumberValue:
		out["value"] = n.Float64()
	case *ast.StringValue:
		out["value"] = n.Value
	case *ast.BooleanValue:
		out["value"] = n.Value
	case *ast.EnumValue:
		out["name"] = self.name(n.Name)
	case *ast.ListValue:
		out["values"] = nodes(self, n.Values)
	case *ast.ObjectValue:
		out["fields"] = nodes(self, n.Fields)
	case *ast.ObjectField:
		out["name"] = self.name(n.Name)
		out["value"] = self.child(n.Value)
	default:
		var at exc.Location
		if l := n.Location(); l != nil && l.Source != nil {
			line, column := l.Source.Position(l.Start)
			at = exc.Location{URI: l.Source.Name, Offset: l.Start, Line: line, Column: column}
		}
		self.err = exc.New(at, exc.CodeUnexpectedNode, fmt.Sprintf("Unexpected node type %s", n.Kind()))
		return nil
	}
	return out
}

func (self *dumper) name(n *ast.Name) any {
	if n == nil {
		return nil
	}
	return self.node(n)
}

// child dumps an optional role-typed child. A nil interface stays nil.
func (self *dumper) child(n ast.Node) any {
	if n == nil {
		return nil
	}
	return self.node(n)
}

func nodes[E ast.Node](d *dumper, elements []E) []any {
	out := make([]any, 0, len(elements))
	for _, e := range elements {
		out = append(out, d.node(e))
	}
	return out
}

func loc(l *ast.Location) any {
	if l == nil {
		return nil
	}
	return map[string]any{
		"start": l.Start,
		"end":   l.End,
	}
}
