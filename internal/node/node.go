// Package node defines the generic node tree consumed by the value model.
// Any tokenizer front end that produces this shape can feed the builder;
// the reference front end lives in internal/parser.
package node

// Type discriminants a node may carry. These are the only values the
// builder recognizes.
const (
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeNull    = "null"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Node is one node of a generic labeled tree describing a JSON document.
type Node struct {
	// Type is the node's type discriminant (one of the Type* constants).
	Type string

	// Tag is the node's structural tag: the member key when the node is an
	// object member, otherwise whatever local label the tokenizer assigned.
	Tag string

	// Name optionally overrides Tag. Some tree formats flatten arrays into
	// repeated same-tagged nodes and carry the original key here instead.
	// An empty Name means "no override": an empty member key must be
	// carried in Tag, not here.
	Name string

	// Text is the payload for scalar nodes: raw numeric text for numbers
	// (kept unparsed), unescaped text for strings, "true"/"false" for
	// booleans. Unused for null, array and object nodes.
	Text string

	// Children holds the ordered child nodes of array and object nodes.
	Children []*Node
}

// ResolvedName returns the node's effective label: the explicit override
// name when present, otherwise the structural tag. The override cannot
// express an empty label; a tokenizer with an empty member key sets Tag.
func (n *Node) ResolvedName() string {
	if n.Name != "" {
		return n.Name
	}
	return n.Tag
}

// Number creates a number node with the given tag and raw numeric text.
func Number(tag, text string) *Node {
	return &Node{Type: TypeNumber, Tag: tag, Text: text}
}

// String creates a string node with the given tag and (unescaped) text.
func String(tag, text string) *Node {
	return &Node{Type: TypeString, Tag: tag, Text: text}
}

// Boolean creates a boolean node with the given tag and literal text.
func Boolean(tag, text string) *Node {
	return &Node{Type: TypeBoolean, Tag: tag, Text: text}
}

// Null creates a null node with the given tag.
func Null(tag string) *Node {
	return &Node{Type: TypeNull, Tag: tag}
}

// Array creates an array node with the given tag and ordered children.
func Array(tag string, children ...*Node) *Node {
	return &Node{Type: TypeArray, Tag: tag, Children: children}
}

// Object creates an object node with the given tag and ordered members.
// Each child's resolved name is its member key.
func Object(tag string, members ...*Node) *Node {
	return &Node{Type: TypeObject, Tag: tag, Children: members}
}
