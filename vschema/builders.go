package vschema

// String builds a string node with optional ordered checks.
func String(checks ...Check) *Node { return &Node{Kind: KindString, Checks: checks} }

// Number builds a number node with optional ordered checks.
func Number(checks ...Check) *Node { return &Node{Kind: KindNumber, Checks: checks} }

// Integer builds an integer node with optional ordered checks.
func Integer(checks ...Check) *Node { return &Node{Kind: KindInteger, Checks: checks} }

// Boolean builds a boolean node.
func Boolean() *Node { return &Node{Kind: KindBoolean} }

// Literal builds a node that accepts exactly the given value.
func Literal(v any) *Node { return &Node{Kind: KindLiteral, Literal: v} }

// Enum builds a node that accepts one of the given string values.
func Enum(values ...string) *Node { return &Node{Kind: KindEnum, Values: values} }

// Array builds an array node with the given element type and optional
// length checks. A nil element leaves the element type unspecified.
func Array(elem *Node, checks ...Check) *Node {
	return &Node{Kind: KindArray, Elem: elem, Checks: checks}
}

// Object builds an object node from fields in declaration order.
func Object(fields ...Field) *Node { return &Node{Kind: KindObject, Shape: fields} }

// F pairs a field name with its node for use in Object.
func F(name string, n *Node) Field { return Field{Name: name, Node: n} }

// Optional wraps a node to mark its value as omittable.
func Optional(n *Node) *Node { return &Node{Kind: KindOptional, Inner: n} }

// Nullable wraps a node to additionally accept null.
func Nullable(n *Node) *Node { return &Node{Kind: KindNullable, Inner: n} }

// Default wraps a node with a default value. The value may be a literal or
// a zero-argument producer (func() any), resolved via ResolveDefault.
func Default(n *Node, value any) *Node {
	return &Node{Kind: KindDefault, Inner: n, DefaultValue: value}
}

// Union builds a node accepting any one of the given options, order
// preserved.
func Union(options ...*Node) *Node { return &Node{Kind: KindUnion, Options: options} }

// Intersection builds a node requiring both sides to hold.
func Intersection(left, right *Node) *Node {
	return &Node{Kind: KindIntersection, Left: left, Right: right}
}

// Record builds an object node with arbitrary keys and the given value type.
func Record(value *Node) *Node { return &Node{Kind: KindRecord, Elem: value} }

// Tuple builds a fixed-length positional array node.
func Tuple(items ...*Node) *Node { return &Node{Kind: KindTuple, Items: items} }

// VariadicTuple builds a tuple node whose elements beyond the fixed items
// must match rest.
func VariadicTuple(rest *Node, items ...*Node) *Node {
	return &Node{Kind: KindTuple, Items: items, Rest: rest}
}

// Pipe builds a node whose value is validated by in and then produced as out.
func Pipe(in, out *Node) *Node { return &Node{Kind: KindPipe, In: in, Out: out} }

// Transform builds a node whose value is validated by in and then mapped
// through an arbitrary function. The output type is not statically knowable.
func Transform(in *Node) *Node { return &Node{Kind: KindTransform, In: in} }

// Any builds a node accepting any value.
func Any() *Node { return &Node{Kind: KindAny} }

// Unknown builds a node accepting any value of unknown shape.
func Unknown() *Node { return &Node{Kind: KindUnknown} }

// Void builds a node accepting no value.
func Void() *Node { return &Node{Kind: KindVoid} }

// Null builds a node accepting only null.
func Null() *Node { return &Node{Kind: KindNull} }

// Undefined builds a node accepting only an absent value.
func Undefined() *Node { return &Node{Kind: KindUndefined} }

// Date builds a node accepting a calendar timestamp.
func Date() *Node { return &Node{Kind: KindDate} }

// BigInt builds a node accepting an arbitrary-precision integer.
func BigInt() *Node { return &Node{Kind: KindBigInt} }

// Set builds a node accepting a collection of unique values.
func Set(value *Node) *Node { return &Node{Kind: KindSet, Elem: value} }

// Map builds a node accepting a keyed collection with the given value type.
func Map(value *Node) *Node { return &Node{Kind: KindMap, Elem: value} }
