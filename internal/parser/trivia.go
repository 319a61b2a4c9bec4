package parser

import (
	"strings"
	"unicode/utf8"
)

func isNewline(r rune) bool {
	return r == '\n'
}

func isComma(r rune) bool {
	return r == ','
}

// isWhitespace reports insignificant white space other than newline.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\f', '\r', '\t', '\v',
		'\u00a0', '\u1680', '\u180e', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

func isTrivia(r rune) bool {
	return isNewline(r) || isComma(r) || isWhitespace(r)
}

// skipTrivia consumes newlines, commas and white space in any order.
func (c cursor) skipTrivia() cursor {
	body := c.src.Body
	off := c.off
	for off < len(body) {
		r, size := utf8.DecodeRuneInString(body[off:])
		if !isTrivia(r) {
			break
		}
		off += size
	}
	return cursor{src: c.src, off: off}
}

// trimmedEnd drops trailing trivia from the span [start, end) of body and
// returns the resulting end offset.
func trimmedEnd(body string, start int, end int) int {
	return start + len(strings.TrimRightFunc(body[start:end], isTrivia))
}
