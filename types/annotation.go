/*
File    : cromfront/types/annotation.go
Package : types

Package types holds the compile-time description of a value's intended
type: the ParserAnnotation the parser attaches to every declaration,
literal, and expression node. It is deliberately inert data — no lookup
tables, no scoping — so the parser and value packages can both depend on
it without a cycle.
*/
package types

// Kind names the family a value belongs to. Ostensible and actual Kind
// differ only for enum members, whose actual kind is the underlying
// integer kind once the enum is resolved.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindBool
	KindChar
	KindString
	KindVoid
	KindEnum
	KindStruct
)

var kindNames = map[Kind]string{
	KindNone:   "none",
	KindInt:    "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindChar:   "char",
	KindString: "string",
	KindVoid:   "void",
	KindEnum:   "enum",
	KindStruct: "struct",
}

// String renders a Kind for diagnostics.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid-kind"
}

// Annotation is the ParserAnnotation of spec.md §3: what the programmer
// wrote (Ostensible), what it resolved to (Actual), and the numeric/array/
// function facts needed to construct and check a Value.
//
// Invariant: if IsArray, ArraySize must be >= 1. If IsFunction, Ostensible
// is the declared return kind.
type Annotation struct {
	Ostensible Kind
	Actual     Kind

	IsSigned bool // only meaningful when Actual == KindInt
	BitWidth int  // 8, 16, 32, or 64 for int/uint; 32 or 64 for float

	IsArray   bool
	ArraySize int

	IsFunction bool

	DeclaredOnLine int
}

// None is the zero-value annotation: no type has been resolved yet.
var None = Annotation{}

// NewScalar builds a non-array, non-function annotation for a scalar kind.
func NewScalar(kind Kind, signed bool, bitWidth int, line int) Annotation {
	return Annotation{
		Ostensible:     kind,
		Actual:         kind,
		IsSigned:       signed,
		BitWidth:       bitWidth,
		DeclaredOnLine: line,
	}
}

// AsArray returns a copy of a with IsArray set and the given size. Per the
// invariant in spec.md §3, size must be >= 1; callers are responsible for
// ensuring that before calling this (the parser raises a smaller size to 1
// when it reads the literal array-size token).
func (a Annotation) AsArray(size int) Annotation {
	a.IsArray = true
	a.ArraySize = size
	return a
}

// AsFunction returns a copy of a marked as a function's declared return
// annotation.
func (a Annotation) AsFunction() Annotation {
	a.IsFunction = true
	return a
}

// IsNumeric reports whether Actual is an integer or floating kind.
func (a Annotation) IsNumeric() bool {
	return a.Actual == KindInt || a.Actual == KindFloat
}

// SameFamily reports whether a and b belong to the same arithmetic family
// (both int, both float) for the purposes of Value-level operations. Bit
// width and signedness are not compared here; that check belongs to the
// semantic pass this front-end hands off to.
func (a Annotation) SameFamily(b Annotation) bool {
	return a.Actual == b.Actual
}
