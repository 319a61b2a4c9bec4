// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"regexp"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
	"gopkg.microglot.org/gqlsdl.go/internal/optional"
)

var (
	numberPattern = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[Ee][+-]?[0-9]+)?`)
	stringPattern = regexp.MustCompile(`^"(?:[^"\\\n]|\\\\|\\")*"`)
)

func variable(c cursor) (cursor, optional.Optional[*ast.Variable]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.Variable]) {
		next, ok := c.literal("$")
		if !ok {
			return c, optional.None[*ast.Variable]()
		}
		next, n := name(next)
		return next, optional.Some(&ast.Variable{Name: required(next, n, "Name")})
	})
}

func numberValue(c cursor) (cursor, optional.Optional[*ast.NumberValue]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.NumberValue]) {
		next, text := c.pattern(numberPattern)
		if !text.IsPresent() {
			return c, optional.None[*ast.NumberValue]()
		}
		d, err := decimal.NewFromString(text.Value())
		if err != nil {
			fail(c, exc.CodeInvalidNumber, fmt.Sprintf("Invalid number %s", text.Value()))
		}
		return next, optional.Some(&ast.NumberValue{Raw: text.Value(), Value: d})
	})
}

func stringValue(c cursor) (cursor, optional.Optional[*ast.StringValue]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.StringValue]) {
		next, text := c.pattern(stringPattern)
		if !text.IsPresent() {
			return c, optional.None[*ast.StringValue]()
		}
		var s string
		if hasControl(text.Value()) {
			fail(c, exc.CodeInvalidString, fmt.Sprintf("Invalid string %s", text.Value()))
		}
		if err := json.Unmarshal([]byte(text.Value()), &s); err != nil {
			fail(c, exc.CodeInvalidString, fmt.Sprintf("Invalid string %s", text.Value()))
		}
		return next, optional.Some(&ast.StringValue{Value: s})
	})
}

// hasControl reports whether s holds a raw byte below U+0020, which JSON
// strings only allow escaped.
func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 {
			return true
		}
	}
	return false
}

func booleanValue(c cursor) (cursor, optional.Optional[*ast.BooleanValue]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.BooleanValue]) {
		if next, ok := c.keyword("true"); ok {
			return next, optional.Some(&ast.BooleanValue{Value: true})
		}
		if next, ok := c.keyword("false"); ok {
			return next, optional.Some(&ast.BooleanValue{Value: false})
		}
		return c, optional.None[*ast.BooleanValue]()
	})
}

func enumValue(c cursor) (cursor, optional.Optional[*ast.EnumValue]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[*ast.EnumValue]) {
		next, n := name(c)
		if !n.IsPresent() {
			return c, optional.None[*ast.EnumValue]()
		}
		return next, optional.Some(&ast.EnumValue{Name: n.Value()})
	})
}

func listValue(isConst bool) rule[*ast.ListValue] {
	return withPosition(func(c cursor) (cursor, optional.Optional[*ast.ListValue]) {
		next, ok := c.literal("[")
		if !ok {
			return c, optional.None[*ast.ListValue]()
		}
		next, values := list(next, widen[ast.ValueElement](value(isConst)))
		next = expect(next, "]")
		return next, optional.Some(&ast.ListValue{Values: values})
	})
}

func objectField(isConst bool) rule[*ast.ObjectField] {
	return withPosition(func(c cursor) (cursor, optional.Optional[*ast.ObjectField]) {
		next, n := memberName(c)
		if !n.IsPresent() {
			return c, optional.None[*ast.ObjectField]()
		}
		next = expect(next, ":")
		next, v := value(isConst)(next)
		return next, optional.Some(&ast.ObjectField{
			Name:  n.Value(),
			Value: required(next, v, "Value"),
		})
	})
}

func objectValue(isConst bool) rule[*ast.ObjectValue] {
	return withPosition(func(c cursor) (cursor, optional.Optional[*ast.ObjectValue]) {
		next, ok := c.literal("{")
		if !ok {
			return c, optional.None[*ast.ObjectValue]()
		}
		next, fields := list(next, widen[ast.ObjectFieldElement](objectField(isConst)))
		next = expect(next, "}")
		return next, optional.Some(&ast.ObjectValue{Fields: fields})
	})
}

// value matches any value. Variables are only accepted when isConst is
// false.
func value(isConst bool) rule[ast.Value] {
	alternatives := alt(
		widen[ast.Value](numberValue),
		widen[ast.Value](stringValue),
		widen[ast.Value](booleanValue),
		widen[ast.Value](enumValue),
		widen[ast.Value](listValue(isConst)),
		widen[ast.Value](objectValue(isConst)),
	)
	if !isConst {
		alternatives = alt(widen[ast.Value](variable), alternatives)
	}
	return withPosition(alternatives)
}

// defaultValue matches "= value". Default values are always constant.
func defaultValue(c cursor) (cursor, optional.Optional[ast.Value]) {
	return positioned(c, func(c cursor) (cursor, optional.Optional[ast.Value]) {
		next, ok := c.literal("=")
		if !ok {
			return c, optional.None[ast.Value]()
		}
		next, v := value(true)(next)
		return next, optional.Some(required(next, v, "Value"))
	})
}
