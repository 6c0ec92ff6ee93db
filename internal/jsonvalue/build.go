package jsonvalue

import (
	"log/slog"
	"strconv"

	"github.com/mcncl/jsonv/internal/errors"
	"github.com/mcncl/jsonv/internal/node"
)

// Build converts a generic node tree into an immutable Value graph. It is
// the single construction entry point: a failure anywhere in the tree
// aborts the whole build, no partial graph is returned.
func Build(root *node.Node) (*Value, error) {
	return build(root, root.ResolvedName())
}

// build constructs one value. The name is resolved by the caller: the
// node's own resolved name at the root and for object members, the decimal
// element index for array elements.
func build(n *node.Node, name string) (*Value, error) {
	switch n.Type {
	case node.TypeNumber:
		// Numeric text is kept unparsed; interpretation is decided per
		// accessor, not at construction.
		return &Value{name: name, typ: TypeNumber, text: n.Text}, nil

	case node.TypeString:
		return &Value{name: name, typ: TypeString, text: n.Text}, nil

	case node.TypeBoolean:
		switch n.Text {
		case "true":
			return &Value{name: name, typ: TypeBool, boolean: true}, nil
		case "false":
			return &Value{name: name, typ: TypeBool, boolean: false}, nil
		}
		return nil, errors.NewMalformedLiteralError(name, n.Text)

	case node.TypeNull:
		return &Value{name: name, typ: TypeNull}, nil

	case node.TypeArray:
		elements := make([]*Value, len(n.Children))
		for i, child := range n.Children {
			element, err := build(child, strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			elements[i] = element
		}
		return &Value{name: name, typ: TypeArray, elements: elements}, nil

	case node.TypeObject:
		members := make(map[string]*Value, len(n.Children))
		keys := make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			key := child.ResolvedName()
			member, err := build(child, key)
			if err != nil {
				return nil, err
			}
			if _, exists := members[key]; exists {
				// Last write wins, keeping the original position.
				slog.Debug("duplicate object key overwritten",
					"object", name, "key", key)
			} else {
				keys = append(keys, key)
			}
			members[key] = member
		}
		return &Value{name: name, typ: TypeObject, members: members, keys: keys}, nil
	}

	return nil, errors.NewUnknownNodeError(name, n.Type)
}
