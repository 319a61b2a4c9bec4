package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ObjectTypeDefinition", KindObjectTypeDefinition.String())
	require.Equal(t, "ObjectField", KindObjectField.String())
	require.Equal(t, "Invalid", Kind(200).String())
	require.Equal(t, KindComment, (&Comment{}).Kind())
}

func TestSourcePosition(t *testing.T) {
	t.Parallel()

	src := NewSource("type A {\n  é: B\n}", "")
	require.Equal(t, DefaultSourceName, src.Name)

	testCases := []struct {
		offset int
		line   int
		column int
	}{
		{offset: 0, line: 1, column: 1},
		{offset: 5, line: 1, column: 6},
		{offset: 9, line: 2, column: 1},
		{offset: 13, line: 2, column: 4},
		{offset: 100, line: 3, column: 2},
	}
	for _, testCase := range testCases {
		line, column := src.Position(testCase.offset)
		require.Equal(t, testCase.line, line, "offset %d", testCase.offset)
		require.Equal(t, testCase.column, column, "offset %d", testCase.offset)
	}
}

func TestOnly(t *testing.T) {
	t.Parallel()

	field := &FieldDefinition{Name: &Name{Value: "a"}}
	object := &ObjectTypeDefinition{
		Name:       &Name{Value: "T"},
		Interfaces: []InterfaceElement{},
		Fields: []FieldElement{
			&Comment{Value: "# about a"},
			field,
			&Comment{Value: "#"},
		},
	}
	require.Equal(t, []*FieldDefinition{field}, object.FieldDefinitions())
	require.Empty(t, object.InterfaceTypes())
	require.Equal(t, " about a", object.Fields[0].(*Comment).Text())
}

func TestWalk(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Definitions: []Definition{
			&Comment{Value: "# c"},
			&ObjectTypeDefinition{
				Name:       &Name{Value: "T"},
				Interfaces: []InterfaceElement{&NamedType{Name: &Name{Value: "I"}}},
				Fields: []FieldElement{
					&FieldDefinition{
						Name: &Name{Value: "f"},
						Arguments: []InputValueElement{
							&InputValueDefinition{
								Name:         &Name{Value: "x"},
								Type:         &NamedType{Name: &Name{Value: "Int"}},
								DefaultValue: &ListValue{Values: []ValueElement{&BooleanValue{Value: true}}},
							},
						},
						Type: &NonNullType{Type: &NamedType{Name: &Name{Value: "String"}}},
					},
				},
			},
			&TypeExtensionDefinition{
				Definition: &ObjectTypeDefinition{Name: &Name{Value: "T"}, Interfaces: []InterfaceElement{}},
			},
		},
	}

	var kinds []Kind
	Walk(doc, func(n Node) {
		kinds = append(kinds, n.Kind())
	})
	require.Equal(t, []Kind{
		KindComment,
		KindName,
		KindName, KindNamedType,
		KindName,
		KindName, KindName, KindNamedType, KindBooleanValue, KindListValue, KindInputValueDefinition,
		KindName, KindNamedType, KindNonNullType,
		KindFieldDefinition,
		KindObjectTypeDefinition,
		KindName, KindObjectTypeDefinition, KindTypeExtensionDefinition,
		KindDocument,
	}, kinds)
}
