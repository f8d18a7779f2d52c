package vschema

// Kind tags a Node with the validator variant it represents.
type Kind string

// All node kinds. The set is closed: translators must handle every kind
// listed here and degrade gracefully on anything else.
const (
	KindString       Kind = "string"
	KindNumber       Kind = "number"
	KindInteger      Kind = "integer"
	KindBoolean      Kind = "boolean"
	KindLiteral      Kind = "literal"
	KindEnum         Kind = "enum"
	KindArray        Kind = "array"
	KindObject       Kind = "object"
	KindOptional     Kind = "optional"
	KindNullable     Kind = "nullable"
	KindDefault      Kind = "default"
	KindUnion        Kind = "union"
	KindIntersection Kind = "intersection"
	KindRecord       Kind = "record"
	KindTuple        Kind = "tuple"
	KindPipe         Kind = "pipe"
	KindTransform    Kind = "transform"
	KindAny          Kind = "any"
	KindUnknown      Kind = "unknown"
	KindVoid         Kind = "void"
	KindNull         Kind = "null"
	KindUndefined    Kind = "undefined"
	KindDate         Kind = "date"
	KindBigInt       Kind = "bigint"
	KindSet          Kind = "set"
	KindMap          Kind = "map"
)

// Node is one node of a validation-schema tree. Only the fields relevant to
// the node's Kind are populated; the rest stay zero. Nodes are read-only
// views over externally-owned validators and must not be mutated after
// construction.
type Node struct {
	Kind Kind

	// Checks holds ordered constraint checks for string, number, integer,
	// and array nodes. Later checks override earlier ones on conflict.
	Checks []Check

	// Elem is the element type of array nodes and the value type of
	// record, set, and map nodes.
	Elem *Node

	// Shape holds object fields in declaration order.
	Shape []Field

	// Inner is the wrapped node of optional, nullable, and default nodes.
	Inner *Node

	// DefaultValue carries the default of a default node: either a literal
	// value or a zero-argument producer (func() any).
	DefaultValue any

	// Literal is the value of a literal node.
	Literal any

	// Values holds enum members in declaration order.
	Values []string

	// Options holds union alternatives in declaration order.
	Options []*Node

	// Left and Right are the two sides of an intersection node.
	Left, Right *Node

	// Items holds the fixed positional elements of a tuple node; Rest, if
	// set, is the type of elements beyond the fixed ones.
	Items []*Node
	Rest  *Node

	// In and Out are the input and output sides of pipe and transform
	// nodes. Transforms carry only In: their output type is not statically
	// knowable.
	In, Out *Node
}

// Field is one named entry of an object shape.
type Field struct {
	Name string
	Node *Node
}

// ResolveDefault returns the default value of a default node, invoking the
// producer when one was supplied instead of a literal.
func (n *Node) ResolveDefault() any {
	if fn, ok := n.DefaultValue.(func() any); ok {
		return fn()
	}
	return n.DefaultValue
}
