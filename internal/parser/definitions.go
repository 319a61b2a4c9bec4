// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
	"gopkg.microglot.org/gqlsdl.go/internal/optional"
)

// typeDefinition dispatches on the leading keyword. Operations and
// fragments are not part of the schema language and never match.
func typeDefinition(c cursor) (cursor, optional.Optional[ast.Definition]) {
	return positioned(c, alt(
		widen[ast.Definition](objectTypeDefinition),
		widen[ast.Definition](interfaceTypeDefinition),
		widen[ast.Definition](unionTypeDefinition),
		widen[ast.Definition](scalarTypeDefinition),
		widen[ast.Definition](enumTypeDefinition),
		widen[ast.Definition](inputObjectTypeDefinition),
		widen[ast.Definition](typeExtensionDefinition),
	))
}

func objectTypeDefinition(c cursor) (cursor, optional.Optional[*ast.ObjectTypeDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.ObjectTypeDefinition]) {
		next, ok := c.keyword("type")
		if !ok {
			return c, optional.None[*ast.ObjectTypeDefinition]()
		}
		node := &ast.ObjectTypeDefinition{}
		next, n := name(next)
		node.Name = required(next, n, "name")
		next, interfaces := implementsInterfaces(next)
		node.Interfaces = interfaces.ValueOr([]ast.InterfaceElement{})
		next = expect(next, "{")
		next, node.Fields = list(next, widen[ast.FieldElement](fieldDefinition))
		next = expect(next, "}")
		return next, optional.Some(node)
	})
}

func implementsInterfaces(c cursor) (cursor, optional.Optional[[]ast.InterfaceElement]) {
	next, ok := c.keyword("implements")
	if !ok {
		return c, optional.None[[]ast.InterfaceElement]()
	}
	next, interfaces := list(next, widen[ast.InterfaceElement](namedType))
	return next.skipTrivia(), optional.Some(interfaces)
}

func fieldDefinition(c cursor) (cursor, optional.Optional[*ast.FieldDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.FieldDefinition]) {
		next, n := memberName(c)
		if !n.IsPresent() {
			return c, optional.None[*ast.FieldDefinition]()
		}
		node := &ast.FieldDefinition{Name: n.Value()}
		next, args := argumentsDefinition(next)
		node.Arguments = args.ValueOr(nil)
		next = expect(next, ":")
		next, t := typeReference(next)
		node.Type = required(next, t, "type")
		return next, optional.Some(node)
	})
}

// argumentsDefinition is absent when there is no '(' and present, possibly
// empty, otherwise.
func argumentsDefinition(c cursor) (cursor, optional.Optional[[]ast.InputValueElement]) {
	next, ok := c.literal("(")
	if !ok {
		return c, optional.None[[]ast.InputValueElement]()
	}
	next, args := list(next, widen[ast.InputValueElement](inputValueDefinition))
	next = expect(next, ")")
	return next, optional.Some(args)
}

func inputValueDefinition(c cursor) (cursor, optional.Optional[*ast.InputValueDefinition]) {
	return positioned(c, inputValue(false))
}

// inputFieldDefinition is an input value inside an input object, where an
// argument list is an error of its own rather than a missing ':'.
func inputFieldDefinition(c cursor) (cursor, optional.Optional[*ast.InputValueDefinition]) {
	return positioned(c, inputValue(true))
}

func inputValue(forbidArguments bool) rule[*ast.InputValueDefinition] {
	return func(c cursor) (cursor, optional.Optional[*ast.InputValueDefinition]) {
		next, n := memberName(c)
		if !n.IsPresent() {
			return c, optional.None[*ast.InputValueDefinition]()
		}
		if forbidArguments {
			if _, ok := next.literal("("); ok {
				fail(next, exc.CodeInputFieldArguments, fmt.Sprintf("Input field %q must not declare arguments", n.Value().Value))
			}
		}
		node := &ast.InputValueDefinition{Name: n.Value()}
		next = expect(next, ":")
		next, t := typeReference(next)
		node.Type = required(next, t, "type")
		next, d := defaultValue(next)
		node.DefaultValue = d.ValueOr(nil)
		return next, optional.Some(node)
	}
}

func interfaceTypeDefinition(c cursor) (cursor, optional.Optional[*ast.InterfaceTypeDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.InterfaceTypeDefinition]) {
		next, ok := c.keyword("interface")
		if !ok {
			return c, optional.None[*ast.InterfaceTypeDefinition]()
		}
		node := &ast.InterfaceTypeDefinition{}
		next, n := name(next)
		node.Name = required(next, n, "Name")
		next = expect(next, "{")
		next, node.Fields = list(next, widen[ast.FieldElement](fieldDefinition))
		next = expect(next, "}")
		return next, optional.Some(node)
	})
}

func unionTypeDefinition(c cursor) (cursor, optional.Optional[*ast.UnionTypeDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.UnionTypeDefinition]) {
		next, ok := c.keyword("union")
		if !ok {
			return c, optional.None[*ast.UnionTypeDefinition]()
		}
		node := &ast.UnionTypeDefinition{}
		next, n := name(next)
		node.Name = required(next, n, "Name")
		next = expect(next, "=")
		next, member := namedType(next)
		node.Types = []*ast.NamedType{required(next, member, "NamedType")}
		for {
			bar, ok := next.literal("|")
			if !ok {
				break
			}
			next, member = namedType(bar)
			node.Types = append(node.Types, required(next, member, "NamedType"))
		}
		return next, optional.Some(node)
	})
}

func scalarTypeDefinition(c cursor) (cursor, optional.Optional[*ast.ScalarTypeDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.ScalarTypeDefinition]) {
		next, ok := c.keyword("scalar")
		if !ok {
			return c, optional.None[*ast.ScalarTypeDefinition]()
		}
		next, n := name(next)
		return next, optional.Some(&ast.ScalarTypeDefinition{Name: required(next, n, "Name")})
	})
}

func enumTypeDefinition(c cursor) (cursor, optional.Optional[*ast.EnumTypeDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.EnumTypeDefinition]) {
		next, ok := c.keyword("enum")
		if !ok {
			return c, optional.None[*ast.EnumTypeDefinition]()
		}
		node := &ast.EnumTypeDefinition{}
		next, n := name(next)
		node.Name = required(next, n, "Name")
		next = expect(next, "{")
		next, node.Values = list(next, widen[ast.EnumValueElement](enumValueDefinition))
		next = expect(next, "}")
		return next, optional.Some(node)
	})
}

func enumValueDefinition(c cursor) (cursor, optional.Optional[*ast.EnumValueDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.EnumValueDefinition]) {
		next, n := name(c)
		if !n.IsPresent() {
			return c, optional.None[*ast.EnumValueDefinition]()
		}
		return next, optional.Some(&ast.EnumValueDefinition{Name: n.Value()})
	})
}

func inputObjectTypeDefinition(c cursor) (cursor, optional.Optional[*ast.InputObjectTypeDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.InputObjectTypeDefinition]) {
		next, ok := c.keyword("input")
		if !ok {
			return c, optional.None[*ast.InputObjectTypeDefinition]()
		}
		node := &ast.InputObjectTypeDefinition{}
		next, n := name(next)
		node.Name = required(next, n, "Name")
		next = expect(next, "{")
		next, node.Fields = list(next, widen[ast.InputValueElement](inputFieldDefinition))
		next = expect(next, "}")
		return next, optional.Some(node)
	})
}

func typeExtensionDefinition(c cursor) (cursor, optional.Optional[*ast.TypeExtensionDefinition]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.TypeExtensionDefinition]) {
		next, ok := c.keyword("extend")
		if !ok {
			return c, optional.None[*ast.TypeExtensionDefinition]()
		}
		next, d := objectTypeDefinition(next)
		return next, optional.Some(&ast.TypeExtensionDefinition{
			Definition: required(next, d, "ObjectTypeDefinition"),
		})
	})
}
