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

// rule is a production. An absent result means the production did not match
// and the returned cursor is the one it was given.
type rule[T any] func(c cursor) (cursor, optional.Optional[T])

// positioned runs f between trivia and attaches the span f consumed, less
// trailing trivia, to the node if it has no location yet.
func positioned[T ast.Node](c cursor, f rule[T]) (cursor, optional.Optional[T]) {
	start := c.skipTrivia()
	next, res := f(start)
	if !res.IsPresent() {
		return c, res
	}
	node := res.Value()
	if node.Location() == nil {
		node.SetLocation(&ast.Location{
			Start:  start.off,
			End:    trimmedEnd(c.src.Body, start.off, next.off),
			Source: c.src,
		})
	}
	return next.skipTrivia(), res
}

func withPosition[T ast.Node](f rule[T]) rule[T] {
	return func(c cursor) (cursor, optional.Optional[T]) {
		return positioned(c, f)
	}
}

// widen adapts a rule for a concrete node to a rule for one of the role
// interfaces the node implements.
func widen[U ast.Node, T ast.Node](r rule[T]) rule[U] {
	return func(c cursor) (cursor, optional.Optional[U]) {
		next, res := r(c)
		if !res.IsPresent() {
			return c, optional.None[U]()
		}
		return next, optional.Some(as[U](c, res.Value()))
	}
}

func as[U ast.Node](c cursor, n ast.Node) U {
	u, ok := n.(U)
	if !ok {
		fail(c, exc.CodeUnexpectedNode, fmt.Sprintf("Unexpected node type %s", n.Kind()))
	}
	return u
}

// alt tries each rule in order from the same cursor and returns the first
// match.
func alt[T any](rules ...rule[T]) rule[T] {
	return func(c cursor) (cursor, optional.Optional[T]) {
		for _, r := range rules {
			if next, res := r(c); res.IsPresent() {
				return next, res
			}
		}
		return c, optional.None[T]()
	}
}

// list collects comments and matches of item until neither matches. The
// result is never nil.
func list[E ast.Node](c cursor, item rule[E]) (cursor, []E) {
	out := []E{}
	for {
		if next, cm := comment(c); cm.IsPresent() {
			out = append(out, as[E](c, cm.Value()))
			c = next
			continue
		}
		next, res := item(c)
		if !res.IsPresent() {
			return c, out
		}
		out = append(out, res.Value())
		c = next
	}
}
