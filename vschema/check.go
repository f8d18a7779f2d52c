package vschema

// CheckKind identifies a constraint check variant.
type CheckKind string

const (
	CheckMin        CheckKind = "min"        // minimum value (numbers) or length (strings, arrays)
	CheckMax        CheckKind = "max"        // maximum value or length
	CheckLength     CheckKind = "length"     // exact length (strings, arrays)
	CheckFormat     CheckKind = "format"     // well-known string format, see Format* constants
	CheckRegex      CheckKind = "regex"      // regular expression source text
	CheckInt        CheckKind = "int"        // marks a number node as integer-valued
	CheckMultipleOf CheckKind = "multipleOf" // numeric step constraint
)

// Well-known string format names recognized by translators.
const (
	FormatEmail    = "email"
	FormatURL      = "url"
	FormatUUID     = "uuid"
	FormatDateTime = "datetime"
	FormatDate     = "date"
	FormatTime     = "time"
)

// Check is a single constraint attached to a string, number, integer, or
// array node. Checks apply in declaration order.
type Check struct {
	Kind CheckKind

	// Number carries the bound for min, max, length, and multipleOf checks.
	Number float64

	// Text carries the format name for format checks and the pattern
	// source for regex checks.
	Text string

	// Exclusive marks a min or max bound that excludes the value itself.
	Exclusive bool
}

// Min constrains the minimum value of a number or the minimum length of a
// string or array.
func Min(v float64) Check { return Check{Kind: CheckMin, Number: v} }

// ExclusiveMin is Min with a bound that excludes the value itself.
func ExclusiveMin(v float64) Check { return Check{Kind: CheckMin, Number: v, Exclusive: true} }

// Max constrains the maximum value of a number or the maximum length of a
// string or array.
func Max(v float64) Check { return Check{Kind: CheckMax, Number: v} }

// ExclusiveMax is Max with a bound that excludes the value itself.
func ExclusiveMax(v float64) Check { return Check{Kind: CheckMax, Number: v, Exclusive: true} }

// Length constrains a string or array to an exact length.
func Length(n int) Check { return Check{Kind: CheckLength, Number: float64(n)} }

// Format constrains a string to a well-known format such as FormatEmail.
func Format(name string) Check { return Check{Kind: CheckFormat, Text: name} }

// Regex constrains a string to match the given pattern source.
func Regex(source string) Check { return Check{Kind: CheckRegex, Text: source} }

// Int marks a number node as integer-valued.
func Int() Check { return Check{Kind: CheckInt} }

// MultipleOf constrains a number to a multiple of the given step.
func MultipleOf(v float64) Check { return Check{Kind: CheckMultipleOf, Number: v} }
