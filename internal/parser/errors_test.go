package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/gqlsdl.go/internal/exc"
)

func TestParseErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		code    string
		message string
		// at is the last occurrence of the text the error points to; empty
		// means end of input.
		at string
	}{
		{
			name:    "input object field with arguments",
			input:   "\ninput Hello {\n  world(foo: Int): String\n}",
			code:    exc.CodeInputFieldArguments,
			message: `Input field "world" must not declare arguments`,
			at:      "(foo",
		},
		{
			name:    "union without members",
			input:   "union Hello = ",
			code:    exc.CodeExpected,
			message: "Expected NamedType but got <EOF>",
		},
		{
			name:    "union with dangling bar",
			input:   "union Hello = Wo |",
			code:    exc.CodeExpected,
			message: "Expected NamedType but got <EOF>",
		},
		{
			name:    "union member is a list",
			input:   "union Hello = [Wo]",
			code:    exc.CodeExpected,
			message: `Expected NamedType but got "["`,
			at:      "[Wo]",
		},
		{
			name:    "trailing brace",
			input:   "type Hello {\n  world: String\n}\n}",
			code:    exc.CodeUnexpectedCharacter,
			message: `Unexpected character "}", expected comment or definition`,
			at:      "}",
		},
		{
			name:    "trailing garbage after valid prefix",
			input:   "type A { b: C }\ngarbage { }",
			code:    exc.CodeUnexpectedCharacter,
			message: `Unexpected character "g", expected comment or definition`,
			at:      "garbage",
		},
		{
			name:    "operations are not definitions",
			input:   "query { a }",
			code:    exc.CodeUnexpectedCharacter,
			message: `Unexpected character "q", expected comment or definition`,
			at:      "query",
		},
		{
			name:    "keyword glued to name",
			input:   "typeA { b: C }",
			code:    exc.CodeUnexpectedCharacter,
			message: `Unexpected character "t", expected comment or definition`,
			at:      "typeA",
		},
		{
			name:    "unterminated type",
			input:   "type Hello {",
			code:    exc.CodeExpected,
			message: `Expected "}" but got <EOF>`,
		},
		{
			name:    "missing object type name",
			input:   "type { }",
			code:    exc.CodeExpected,
			message: `Expected name but got "{"`,
			at:      "{",
		},
		{
			name:    "reserved interface name",
			input:   "interface type { a: B }",
			code:    exc.CodeExpected,
			message: `Expected Name but got "t"`,
			at:      "type {",
		},
		{
			name:    "missing field type",
			input:   "type A { b: }",
			code:    exc.CodeExpected,
			message: `Expected type but got "}"`,
			at:      "}",
		},
		{
			name:    "missing colon",
			input:   "type A { b C }",
			code:    exc.CodeExpected,
			message: `Expected ":" but got "C"`,
			at:      "C }",
		},
		{
			name:    "empty list type",
			input:   "type A { b(c: [ ]): D }",
			code:    exc.CodeExpected,
			message: `Expected Type but got "]"`,
			at:      "]",
		},
		{
			name:    "missing default value",
			input:   "type A { b(c: Int = ): D }",
			code:    exc.CodeExpected,
			message: `Expected Value but got ")"`,
			at:      "): D",
		},
		{
			name:    "null is not a value",
			input:   "type A { b(c: Int = null): D }",
			code:    exc.CodeExpected,
			message: `Expected Value but got "n"`,
			at:      "null",
		},
		{
			name:    "variables are not constant",
			input:   "type A { b(c: Int = $d): D }",
			code:    exc.CodeExpected,
			message: `Expected Value but got "$"`,
			at:      "$d",
		},
		{
			name:    "incomplete object value",
			input:   "type A { b(c: I = {x: }): D }",
			code:    exc.CodeExpected,
			message: `Expected Value but got "}"`,
			at:      "}): D",
		},
		{
			name:    "raw tab in string",
			input:   "type A { b(c: S = \"a\tb\"): D }",
			code:    exc.CodeInvalidString,
			message: "Invalid string \"a\tb\"",
			at:      "\"a",
		},
		{
			name:    "raw carriage return in string",
			input:   "type A { b(c: S = \"a\rb\"): D }",
			code:    exc.CodeInvalidString,
			message: "Invalid string \"a\rb\"",
			at:      "\"a",
		},
		{
			name:    "raw control character in string",
			input:   "type A { b(c: S = \"a\x01b\"): D }",
			code:    exc.CodeInvalidString,
			message: "Invalid string \"a\x01b\"",
			at:      "\"a",
		},
		{
			name:    "extension of a scalar",
			input:   "extend scalar A",
			code:    exc.CodeExpected,
			message: `Expected ObjectTypeDefinition but got "s"`,
			at:      "scalar",
		},
		{
			name:    "null enum value",
			input:   "enum E { A null }",
			code:    exc.CodeExpected,
			message: `Expected "}" but got "n"`,
			at:      "null",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(testCase.input, "schema.graphql")
			require.Nil(t, doc)
			require.Error(t, err)

			var e exc.Exception
			require.True(t, errors.As(err, &e))
			require.Equal(t, testCase.code, e.Code())
			require.Equal(t, testCase.message, e.Message())
			require.Equal(t, "schema.graphql", e.Location().URI)

			offset := len(testCase.input)
			if testCase.at != "" {
				offset = strings.LastIndex(testCase.input, testCase.at)
				require.GreaterOrEqual(t, offset, 0)
			}
			require.Equal(t, offset, e.Location().Offset)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	t.Parallel()

	_, err := Parse("type Hello {\n  world: String\n}\n}", "")
	var e exc.Exception
	require.True(t, errors.As(err, &e))
	require.Equal(t, 4, e.Location().Line)
	require.Equal(t, 1, e.Location().Column)
	require.Equal(t, `GraphQL:4:1 -- S0002: Unexpected character "}", expected comment or definition`, e.Error())
}

func TestParseNonParserPanic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = ParseSource(nil)
	})
}
