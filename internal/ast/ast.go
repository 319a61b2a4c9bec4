// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package ast declares the node types produced by parsing schema definition
// language text. The node set is closed: every value of Node is one of the
// pointer types declared in this package.
package ast

import (
	"strings"
	"unicode/utf8"
)

const DefaultSourceName = "GraphQL"

type Kind uint8

const (
	KindInvalid Kind = iota
	KindDocument
	KindComment
	KindName
	KindNamedType
	KindListType
	KindNonNullType
	KindObjectTypeDefinition
	KindInterfaceTypeDefinition
	KindUnionTypeDefinition
	KindScalarTypeDefinition
	KindEnumTypeDefinition
	KindEnumValueDefinition
	KindInputObjectTypeDefinition
	KindInputValueDefinition
	KindFieldDefinition
	KindTypeExtensionDefinition
	KindVariable
	KindNumberValue
	KindStringValue
	KindBooleanValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField
)

var kindNames = [...]string{
	KindInvalid:                   "Invalid",
	KindDocument:                  "Document",
	KindComment:                   "Comment",
	KindName:                      "Name",
	KindNamedType:                 "NamedType",
	KindListType:                  "ListType",
	KindNonNullType:               "NonNullType",
	KindObjectTypeDefinition:      "ObjectTypeDefinition",
	KindInterfaceTypeDefinition:   "InterfaceTypeDefinition",
	KindUnionTypeDefinition:       "UnionTypeDefinition",
	KindScalarTypeDefinition:      "ScalarTypeDefinition",
	KindEnumTypeDefinition:        "EnumTypeDefinition",
	KindEnumValueDefinition:       "EnumValueDefinition",
	KindInputObjectTypeDefinition: "InputObjectTypeDefinition",
	KindInputValueDefinition:      "InputValueDefinition",
	KindFieldDefinition:           "FieldDefinition",
	KindTypeExtensionDefinition:   "TypeExtensionDefinition",
	KindVariable:                  "Variable",
	KindNumberValue:               "NumberValue",
	KindStringValue:               "StringValue",
	KindBooleanValue:              "BooleanValue",
	KindEnumValue:                 "EnumValue",
	KindListValue:                 "ListValue",
	KindObjectValue:               "ObjectValue",
	KindObjectField:               "ObjectField",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Source is the text a document was parsed from.
type Source struct {
	Body string
	Name string
}

// NewSource returns a Source labelled with name, or DefaultSourceName when
// name is empty.
func NewSource(body string, name string) *Source {
	if name == "" {
		name = DefaultSourceName
	}
	return &Source{Body: body, Name: name}
}

// Position converts a byte offset into a 1-based line and column. Columns
// count code points. Offsets past the end of the body are clamped.
func (s *Source) Position(offset int) (line int, column int) {
	if offset > len(s.Body) {
		offset = len(s.Body)
	}
	if offset < 0 {
		offset = 0
	}
	head := s.Body[:offset]
	line = strings.Count(head, "\n") + 1
	lineStart := strings.LastIndexByte(head, '\n') + 1
	column = utf8.RuneCountInString(head[lineStart:]) + 1
	return line, column
}

// Location is the span of meaningful source text a node was parsed from.
// Start and End are byte offsets into Source.Body with Start <= End.
type Location struct {
	Start  int
	End    int
	Source *Source
}

// Text returns the source text covered by the location.
func (l *Location) Text() string {
	return l.Source.Body[l.Start:l.End]
}

// Contains reports whether other lies within l.
func (l *Location) Contains(other *Location) bool {
	return l.Start <= other.Start && other.End <= l.End
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Location() *Location
	SetLocation(*Location)
}

// Located carries the location shared by all nodes. A nil Loc means the
// location has not been attached yet.
type Located struct {
	Loc *Location
}

func (l *Located) Location() *Location {
	return l.Loc
}

func (l *Located) SetLocation(loc *Location) {
	l.Loc = loc
}

// Only returns the elements of a comment-interleaved list that are of type T,
// preserving order.
func Only[T Node, E Node](elems []E) []T {
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		if t, ok := any(e).(T); ok {
			out = append(out, t)
		}
	}
	return out
}
