// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
	"gopkg.microglot.org/gqlsdl.go/internal/optional"
)

// cursor is a byte position in a source body. It is a value: matching
// returns a new cursor and the old one stays valid, so abandoning an
// alternative is free.
type cursor struct {
	src *ast.Source
	off int
}

func (c cursor) rest() string {
	return c.src.Body[c.off:]
}

func (c cursor) eof() bool {
	return c.off >= len(c.src.Body)
}

func (c cursor) advance(n int) cursor {
	return cursor{src: c.src, off: c.off + n}
}

// literal consumes s if the input continues with it after any trivia.
func (c cursor) literal(s string) (cursor, bool) {
	at := c.skipTrivia()
	if len(at.rest()) < len(s) || at.rest()[:len(s)] != s {
		return c, false
	}
	return at.advance(len(s)), true
}

// keyword is like literal but refuses to split an identifier, so "typeX"
// does not match "type".
func (c cursor) keyword(s string) (cursor, bool) {
	next, ok := c.literal(s)
	if !ok {
		return c, false
	}
	if !next.eof() && isNameContinue(next.rest()[0]) {
		return c, false
	}
	return next, true
}

// pattern consumes the match of an anchored expression after any trivia.
func (c cursor) pattern(re *regexp.Regexp) (cursor, optional.Optional[string]) {
	at := c.skipTrivia()
	loc := re.FindStringIndex(at.rest())
	if loc == nil || loc[0] != 0 {
		return c, optional.None[string]()
	}
	return at.advance(loc[1]), optional.Some(at.rest()[:loc[1]])
}

func (c cursor) location() exc.Location {
	line, column := c.src.Position(c.off)
	return exc.Location{
		URI:    c.src.Name,
		Offset: c.off,
		Line:   line,
		Column: column,
	}
}

// got describes the next meaningful character for error messages.
func (c cursor) got() string {
	at := c.skipTrivia()
	if at.eof() {
		return "<EOF>"
	}
	r, _ := utf8.DecodeRuneInString(at.rest())
	return fmt.Sprintf("%q", string(r))
}

func isNameContinue(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// bailout carries a fatal exception up to the document assembler.
type bailout struct {
	err exc.Exception
}

func fail(c cursor, code string, message string) {
	panic(bailout{err: exc.New(c.skipTrivia().location(), code, message)})
}

// required returns the value of v or aborts the parse naming label as the
// construct that was expected at c.
func required[T any](c cursor, v optional.Optional[T], label string) T {
	if !v.IsPresent() {
		fail(c, exc.CodeExpected, fmt.Sprintf("Expected %s but got %s", label, c.got()))
	}
	return v.Value()
}

// expect consumes s or aborts the parse.
func expect(c cursor, s string) cursor {
	next, ok := c.literal(s)
	if !ok {
		fail(c, exc.CodeExpected, fmt.Sprintf("Expected %q but got %s", s, c.got()))
	}
	return next
}
