package ast

// Walk calls f for node and every node beneath it. Children are visited
// before their parent, in source order.
func Walk(node Node, f func(Node)) {
	switch n := node.(type) {
	case *Document:
		for _, d := range n.Definitions {
			Walk(d, f)
		}
	case *ObjectTypeDefinition:
		walkObject(n, f)
	case *InterfaceTypeDefinition:
		walkName(n.Name, f)
		for _, field := range n.Fields {
			Walk(field, f)
		}
	case *UnionTypeDefinition:
		walkName(n.Name, f)
		for _, t := range n.Types {
			Walk(t, f)
		}
	case *ScalarTypeDefinition:
		walkName(n.Name, f)
	case *EnumTypeDefinition:
		walkName(n.Name, f)
		for _, v := range n.Values {
			Walk(v, f)
		}
	case *EnumValueDefinition:
		walkName(n.Name, f)
	case *InputObjectTypeDefinition:
		walkName(n.Name, f)
		for _, field := range n.Fields {
			Walk(field, f)
		}
	case *TypeExtensionDefinition:
		if n.Definition != nil {
			Walk(n.Definition, f)
		}
	case *FieldDefinition:
		walkField(n, f)
	case *InputValueDefinition:
		walkInputValue(n, f)
	case *NamedType:
		walkName(n.Name, f)
	case *ListType:
		Walk(n.Type, f)
	case *NonNullType:
		Walk(n.Type, f)
	case *Variable:
		walkName(n.Name, f)
	case *EnumValue:
		walkName(n.Name, f)
	case *ListValue:
		for _, v := range n.Values {
			Walk(v, f)
		}
	case *ObjectValue:
		for _, field := range n.Fields {
			Walk(field, f)
		}
	case *ObjectField:
		walkName(n.Name, f)
		if n.Value != nil {
			Walk(n.Value, f)
		}
	case nil:
		return
	}
	f(node)
}

func walkName(name *Name, f func(Node)) {
	if name != nil {
		f(name)
	}
}

func walkObject(object *ObjectTypeDefinition, f func(Node)) {
	walkName(object.Name, f)
	for _, i := range object.Interfaces {
		Walk(i, f)
	}
	for _, field := range object.Fields {
		Walk(field, f)
	}
}

func walkField(field *FieldDefinition, f func(Node)) {
	walkName(field.Name, f)
	for _, arg := range field.Arguments {
		Walk(arg, f)
	}
	if field.Type != nil {
		Walk(field.Type, f)
	}
}

func walkInputValue(input *InputValueDefinition, f func(Node)) {
	walkName(input.Name, f)
	if input.Type != nil {
		Walk(input.Type, f)
	}
	if input.DefaultValue != nil {
		Walk(input.DefaultValue, f)
	}
}
