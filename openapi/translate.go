package openapi

import (
	"fmt"
	"log"
	"reflect"

	"github.com/vitalvas/aria/vschema"
)

// DiagnosticSink receives non-fatal degradation notices from the translation
// layer: unrecognized nodes, malformed validator metadata, skipped response
// entries. Implementations must not panic.
type DiagnosticSink interface {
	Degraded(component, detail string)
}

type nopSink struct{}

func (nopSink) Degraded(string, string) {}

// NopSink discards all degradation notices.
var NopSink DiagnosticSink = nopSink{}

// LogSink writes degradation notices to a standard library logger.
type LogSink struct {
	// Logger to write to. Nil uses the default logger.
	Logger *log.Logger
}

// Degraded implements DiagnosticSink.
func (s LogSink) Degraded(component, detail string) {
	if s.Logger != nil {
		s.Logger.Printf("openapi: %s: %s", component, detail)
		return
	}
	log.Printf("openapi: %s: %s", component, detail)
}

// maxSafeInteger is the sentinel bound some validators attach to every
// integer check. Bounds at ±maxSafeInteger are treated as unset.
const maxSafeInteger = float64(9007199254740991)

// stringFormat pairs an OpenAPI format name with its canned example.
type stringFormat struct {
	format  string
	example string
}

// stringFormats maps recognized format-check names to output formats.
// Unrecognized names leave the schema's format unset.
var stringFormats = map[string]stringFormat{
	vschema.FormatEmail:    {"email", "user@example.com"},
	vschema.FormatURL:      {"uri", "https://example.com"},
	vschema.FormatUUID:     {"uuid", "123e4567-e89b-12d3-a456-426614174000"},
	vschema.FormatDateTime: {"date-time", "2024-01-01T00:00:00Z"},
	vschema.FormatDate:     {"date", "2024-01-01"},
	vschema.FormatTime:     {"time", "12:00:00"},
}

// Translator maps validation-schema nodes to OpenAPI Schema Objects.
//
// Translate is total: it returns a well-formed schema for every input and
// never fails. Malformed or unsupported nodes degrade to a permissive
// object schema, reported through the sink.
type Translator struct {
	sink DiagnosticSink
}

// NewTranslator creates a translator reporting degradations to sink.
// A nil sink discards notices.
func NewTranslator(sink DiagnosticSink) *Translator {
	if sink == nil {
		sink = NopSink
	}
	return &Translator{sink: sink}
}

// Sink returns the translator's diagnostic sink.
func (t *Translator) Sink() DiagnosticSink { return t.sink }

// fallback is the permissive schema returned for nodes the translator
// cannot interpret.
func fallback() *Schema {
	return &Schema{Type: "object", Example: map[string]any{}}
}

// Translate converts one validation-schema node into an OpenAPI Schema
// Object. The node is never mutated.
func (t *Translator) Translate(node *vschema.Node) *Schema {
	if node == nil {
		t.sink.Degraded("translate", "nil schema node")
		return fallback()
	}

	switch node.Kind {
	case vschema.KindString:
		return t.translateString(node)
	case vschema.KindNumber:
		return t.translateNumber(node, false)
	case vschema.KindInteger:
		return t.translateNumber(node, true)
	case vschema.KindBoolean:
		return &Schema{Type: "boolean", Example: true}
	case vschema.KindLiteral:
		return translateLiteral(node.Literal)
	case vschema.KindEnum:
		return translateEnum(node.Values)
	case vschema.KindArray:
		return t.translateArray(node)
	case vschema.KindObject:
		return t.translateObject(node)
	case vschema.KindOptional, vschema.KindNullable:
		s := t.Translate(node.Inner)
		s.Nullable = true
		return s
	case vschema.KindDefault:
		s := t.Translate(node.Inner)
		s.Default = node.ResolveDefault()
		return s
	case vschema.KindUnion:
		return t.translateUnion(node)
	case vschema.KindIntersection:
		return &Schema{AllOf: []*Schema{t.Translate(node.Left), t.Translate(node.Right)}}
	case vschema.KindRecord:
		return t.translateValueMap(node)
	case vschema.KindTuple:
		return t.translateTuple(node)
	case vschema.KindPipe:
		// Pipes compose known schemas on both sides; the output side is
		// what the endpoint produces.
		return t.Translate(node.Out)
	case vschema.KindTransform:
		// Transform outputs are not statically knowable; document the
		// input side.
		return t.Translate(node.In)
	case vschema.KindAny:
		return &Schema{Example: "any value"}
	case vschema.KindUnknown:
		return &Schema{Example: "unknown value"}
	case vschema.KindVoid:
		return &Schema{Type: "null"}
	case vschema.KindUndefined:
		return &Schema{Type: "null", Example: Null}
	case vschema.KindNull:
		return &Schema{Type: "null", Example: Null}
	case vschema.KindDate:
		return &Schema{Type: "string", Format: "date-time", Example: "2024-01-01T00:00:00Z"}
	case vschema.KindBigInt:
		return &Schema{Type: "integer", Format: "int64", Example: int64(9223372036854775807)}
	case vschema.KindSet:
		s := t.translateSetElem(node)
		s.UniqueItems = true
		return s
	case vschema.KindMap:
		return t.translateValueMap(node)
	default:
		t.sink.Degraded("translate", fmt.Sprintf("unrecognized node kind %q", node.Kind))
		return fallback()
	}
}

// translateString applies string checks in declaration order. Later checks
// win on conflict, except that only the first recognized format check sets
// the format and its canned example.
func (t *Translator) translateString(node *vschema.Node) *Schema {
	s := &Schema{Type: "string", Example: "string"}
	for _, c := range node.Checks {
		switch c.Kind {
		case vschema.CheckMin:
			s.MinLength = intPtr(int(c.Number))
		case vschema.CheckMax:
			s.MaxLength = intPtr(int(c.Number))
		case vschema.CheckLength:
			n := int(c.Number)
			s.MinLength = intPtr(n)
			s.MaxLength = intPtr(n)
		case vschema.CheckFormat:
			if s.Format != "" {
				continue
			}
			if f, ok := stringFormats[c.Text]; ok {
				s.Format = f.format
				s.Example = f.example
			}
		case vschema.CheckRegex:
			s.Pattern = c.Text
		}
	}
	return s
}

// translateNumber applies numeric checks in declaration order, last write
// wins. Sentinel safe-integer bounds are suppressed.
func (t *Translator) translateNumber(node *vschema.Node, integer bool) *Schema {
	s := &Schema{Type: "number", Example: 123.45}
	if integer {
		s.Type = "integer"
		s.Example = 123
	}
	for _, c := range node.Checks {
		switch c.Kind {
		case vschema.CheckInt:
			s.Type = "integer"
			s.Example = 123
		case vschema.CheckMin:
			if c.Number == -maxSafeInteger || c.Number == maxSafeInteger {
				continue
			}
			s.Minimum = floatPtr(c.Number)
			s.ExclusiveMinimum = c.Exclusive
		case vschema.CheckMax:
			if c.Number == -maxSafeInteger || c.Number == maxSafeInteger {
				continue
			}
			s.Maximum = floatPtr(c.Number)
			s.ExclusiveMaximum = c.Exclusive
		case vschema.CheckMultipleOf:
			s.MultipleOf = floatPtr(c.Number)
		}
	}
	return s
}

// translateLiteral types string, numeric, and boolean literals as
// single-member enums; anything else becomes a const.
func translateLiteral(v any) *Schema {
	switch v.(type) {
	case string:
		return &Schema{Type: "string", Enum: []any{v}, Example: v}
	case bool:
		return &Schema{Type: "boolean", Enum: []any{v}, Example: v}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return &Schema{Type: "number", Enum: []any{v}, Example: v}
	default:
		if v == nil {
			return &Schema{Const: Null, Example: Null}
		}
		return &Schema{Const: v, Example: v}
	}
}

func translateEnum(values []string) *Schema {
	s := &Schema{Type: "string", Example: "option"}
	if len(values) > 0 {
		s.Enum = make([]any, len(values))
		for i, v := range values {
			s.Enum[i] = v
		}
		s.Example = values[0]
	}
	return s
}

// translateArray translates the element type, falling back to a string
// placeholder when absent. An exact length check pins minItems to maxItems;
// otherwise min and max length checks map independently.
func (t *Translator) translateArray(node *vschema.Node) *Schema {
	items := t.elemOrPlaceholder(node.Elem)
	s := &Schema{Type: "array", Items: items}
	if items.Example != nil {
		s.Example = []any{items.Example}
	}
	for _, c := range node.Checks {
		switch c.Kind {
		case vschema.CheckLength:
			n := int(c.Number)
			s.MinItems = intPtr(n)
			s.MaxItems = intPtr(n)
		case vschema.CheckMin:
			s.MinItems = intPtr(int(c.Number))
		case vschema.CheckMax:
			s.MaxItems = intPtr(int(c.Number))
		}
	}
	return s
}

// translateObject translates each shape field. A field is required unless
// its own node is optional or default; an empty required set is omitted.
func (t *Translator) translateObject(node *vschema.Node) *Schema {
	s := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema, len(node.Shape)),
	}
	example := make(map[string]any)
	for _, f := range node.Shape {
		fs := t.Translate(f.Node)
		s.Properties[f.Name] = fs
		if fieldRequired(f.Node) {
			s.Required = append(s.Required, f.Name)
		}
		if fs.Example != nil {
			example[f.Name] = fs.Example
		}
	}
	if len(example) > 0 {
		s.Example = example
	}
	return s
}

// fieldRequired reports whether an object field is required: true unless
// the field's own node is optional or carries a default.
func fieldRequired(n *vschema.Node) bool {
	if n == nil {
		return true
	}
	return n.Kind != vschema.KindOptional && n.Kind != vschema.KindDefault
}

func (t *Translator) translateUnion(node *vschema.Node) *Schema {
	if len(node.Options) == 0 {
		t.sink.Degraded("translate", "union with no options")
		return fallback()
	}
	anyOf := make([]*Schema, len(node.Options))
	for i, opt := range node.Options {
		anyOf[i] = t.Translate(opt)
	}
	return &Schema{AnyOf: anyOf}
}

// translateValueMap handles record and map nodes: an object with arbitrary
// keys and a uniform value type.
func (t *Translator) translateValueMap(node *vschema.Node) *Schema {
	ap := t.elemOrPlaceholder(node.Elem)
	s := &Schema{Type: "object", AdditionalProperties: ap}
	if ap.Example != nil {
		s.Example = map[string]any{"key": ap.Example}
	}
	return s
}

// translateTuple pins minItems and maxItems to the fixed length. A single
// item schema is used when every element translates identically; otherwise
// items is an anyOf over the element schemas. A rest element sets
// additionalItems and lifts the fixed maxItems.
func (t *Translator) translateTuple(node *vschema.Node) *Schema {
	n := len(node.Items)
	s := &Schema{Type: "array", MinItems: intPtr(n), MaxItems: intPtr(n)}

	schemas := make([]*Schema, n)
	example := make([]any, n)
	homogeneous := true
	for i, item := range node.Items {
		schemas[i] = t.Translate(item)
		example[i] = schemas[i].Example
		if i > 0 && !reflect.DeepEqual(schemas[i], schemas[0]) {
			homogeneous = false
		}
	}
	if n > 0 {
		if homogeneous {
			s.Items = schemas[0]
		} else {
			s.Items = &Schema{AnyOf: schemas}
		}
		s.Example = example
	}

	if node.Rest != nil {
		s.AdditionalItems = t.Translate(node.Rest)
		s.MaxItems = nil
	}
	return s
}

func (t *Translator) translateSetElem(node *vschema.Node) *Schema {
	items := t.elemOrPlaceholder(node.Elem)
	s := &Schema{Type: "array", Items: items}
	if items.Example != nil {
		s.Example = []any{items.Example}
	}
	return s
}

// elemOrPlaceholder translates an element type, degrading a missing one to
// a string placeholder without a diagnostic: absent element types are a
// legitimate validator shape, not a malformation.
func (t *Translator) elemOrPlaceholder(elem *vschema.Node) *Schema {
	if elem == nil {
		return &Schema{Type: "string", Example: "string"}
	}
	return t.Translate(elem)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
