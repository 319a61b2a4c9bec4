// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"github.com/shopspring/decimal"
)

// Definition is a top level document entry.
type Definition interface {
	Node
	definition()
}

// Type is a type reference: NamedType, ListType or NonNullType.
type Type interface {
	Node
	typeReference()
}

// Value is a literal or variable appearing in a default value.
type Value interface {
	ValueElement
	value()
}

// The element interfaces below describe the lists in which comments may be
// interleaved with the list's proper members.

type FieldElement interface {
	Node
	fieldElement()
}

type InputValueElement interface {
	Node
	inputValueElement()
}

type EnumValueElement interface {
	Node
	enumValueElement()
}

type InterfaceElement interface {
	Node
	interfaceElement()
}

type ValueElement interface {
	Node
	valueElement()
}

type ObjectFieldElement interface {
	Node
	objectFieldElement()
}

type Document struct {
	Located
	Definitions []Definition
}

func (*Document) Kind() Kind { return KindDocument }

// TypeDefinitions returns the definitions of the document without comments.
func (self *Document) TypeDefinitions() []Definition {
	out := make([]Definition, 0, len(self.Definitions))
	for _, d := range self.Definitions {
		if _, ok := d.(*Comment); ok {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Comment is a '#' comment running to the end of its line. Value includes
// the leading '#'.
type Comment struct {
	Located
	Value string
}

func (*Comment) Kind() Kind          { return KindComment }
func (*Comment) definition()         {}
func (*Comment) fieldElement()       {}
func (*Comment) inputValueElement()  {}
func (*Comment) enumValueElement()   {}
func (*Comment) interfaceElement()   {}
func (*Comment) valueElement()       {}
func (*Comment) objectFieldElement() {}

// Text returns the comment without its leading '#'.
func (self *Comment) Text() string {
	if len(self.Value) > 0 && self.Value[0] == '#' {
		return self.Value[1:]
	}
	return self.Value
}

type Name struct {
	Located
	Value string
}

func (*Name) Kind() Kind { return KindName }

type NamedType struct {
	Located
	Name *Name
}

func (*NamedType) Kind() Kind        { return KindNamedType }
func (*NamedType) typeReference()    {}
func (*NamedType) interfaceElement() {}

type ListType struct {
	Located
	Type Type
}

func (*ListType) Kind() Kind     { return KindListType }
func (*ListType) typeReference() {}

type NonNullType struct {
	Located
	Type Type
}

func (*NonNullType) Kind() Kind     { return KindNonNullType }
func (*NonNullType) typeReference() {}

type ObjectTypeDefinition struct {
	Located
	Name *Name
	// Interfaces is never nil.
	Interfaces []InterfaceElement
	Fields     []FieldElement
}

func (*ObjectTypeDefinition) Kind() Kind  { return KindObjectTypeDefinition }
func (*ObjectTypeDefinition) definition() {}

func (self *ObjectTypeDefinition) InterfaceTypes() []*NamedType {
	return Only[*NamedType](self.Interfaces)
}

func (self *ObjectTypeDefinition) FieldDefinitions() []*FieldDefinition {
	return Only[*FieldDefinition](self.Fields)
}

type InterfaceTypeDefinition struct {
	Located
	Name   *Name
	Fields []FieldElement
}

func (*InterfaceTypeDefinition) Kind() Kind  { return KindInterfaceTypeDefinition }
func (*InterfaceTypeDefinition) definition() {}

func (self *InterfaceTypeDefinition) FieldDefinitions() []*FieldDefinition {
	return Only[*FieldDefinition](self.Fields)
}

type UnionTypeDefinition struct {
	Located
	Name *Name
	// Types holds at least one member in declaration order.
	Types []*NamedType
}

func (*UnionTypeDefinition) Kind() Kind  { return KindUnionTypeDefinition }
func (*UnionTypeDefinition) definition() {}

type ScalarTypeDefinition struct {
	Located
	Name *Name
}

func (*ScalarTypeDefinition) Kind() Kind  { return KindScalarTypeDefinition }
func (*ScalarTypeDefinition) definition() {}

type EnumTypeDefinition struct {
	Located
	Name   *Name
	Values []EnumValueElement
}

func (*EnumTypeDefinition) Kind() Kind  { return KindEnumTypeDefinition }
func (*EnumTypeDefinition) definition() {}

type EnumValueDefinition struct {
	Located
	Name *Name
}

func (*EnumValueDefinition) Kind() Kind        { return KindEnumValueDefinition }
func (*EnumValueDefinition) enumValueElement() {}

type InputObjectTypeDefinition struct {
	Located
	Name   *Name
	Fields []InputValueElement
}

func (*InputObjectTypeDefinition) Kind() Kind  { return KindInputObjectTypeDefinition }
func (*InputObjectTypeDefinition) definition() {}

func (self *InputObjectTypeDefinition) InputValues() []*InputValueDefinition {
	return Only[*InputValueDefinition](self.Fields)
}

type InputValueDefinition struct {
	Located
	Name *Name
	Type Type
	// DefaultValue is nil when no default is declared.
	DefaultValue Value
}

func (*InputValueDefinition) Kind() Kind         { return KindInputValueDefinition }
func (*InputValueDefinition) inputValueElement() {}

type FieldDefinition struct {
	Located
	Name *Name
	// Arguments is nil when the field has no argument list and non-nil,
	// possibly empty, when it declares one.
	Arguments []InputValueElement
	Type      Type
}

func (*FieldDefinition) Kind() Kind    { return KindFieldDefinition }
func (*FieldDefinition) fieldElement() {}

func (self *FieldDefinition) HasArgumentList() bool {
	return self.Arguments != nil
}

func (self *FieldDefinition) InputValues() []*InputValueDefinition {
	return Only[*InputValueDefinition](self.Arguments)
}

type TypeExtensionDefinition struct {
	Located
	Definition *ObjectTypeDefinition
}

func (*TypeExtensionDefinition) Kind() Kind  { return KindTypeExtensionDefinition }
func (*TypeExtensionDefinition) definition() {}

type Variable struct {
	Located
	Name *Name
}

func (*Variable) Kind() Kind    { return KindVariable }
func (*Variable) value()        {}
func (*Variable) valueElement() {}

// NumberValue keeps both the literal text and its exact decimal value.
type NumberValue struct {
	Located
	Raw   string
	Value decimal.Decimal
}

func (*NumberValue) Kind() Kind    { return KindNumberValue }
func (*NumberValue) value()        {}
func (*NumberValue) valueElement() {}

// Float64 returns the nearest float64 to the literal.
func (self *NumberValue) Float64() float64 {
	return self.Value.InexactFloat64()
}

type StringValue struct {
	Located
	Value string
}

func (*StringValue) Kind() Kind    { return KindStringValue }
func (*StringValue) value()        {}
func (*StringValue) valueElement() {}

type BooleanValue struct {
	Located
	Value bool
}

func (*BooleanValue) Kind() Kind    { return KindBooleanValue }
func (*BooleanValue) value()        {}
func (*BooleanValue) valueElement() {}

type EnumValue struct {
	Located
	Name *Name
}

func (*EnumValue) Kind() Kind    { return KindEnumValue }
func (*EnumValue) value()        {}
func (*EnumValue) valueElement() {}

type ListValue struct {
	Located
	Values []ValueElement
}

func (*ListValue) Kind() Kind    { return KindListValue }
func (*ListValue) value()        {}
func (*ListValue) valueElement() {}

type ObjectValue struct {
	Located
	Fields []ObjectFieldElement
}

func (*ObjectValue) Kind() Kind    { return KindObjectValue }
func (*ObjectValue) value()        {}
func (*ObjectValue) valueElement() {}

type ObjectField struct {
	Located
	Name  *Name
	Value Value
}

func (*ObjectField) Kind() Kind          { return KindObjectField }
func (*ObjectField) objectFieldElement() {}
