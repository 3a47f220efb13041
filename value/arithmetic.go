/*
File    : cromfront/value/arithmetic.go
Package : value

The closed arithmetic surface of spec.md §4.D: add, sub, mul, div, mod
(int/uint only), not (bool), equality, greater, less, logical_and,
logical_or. A kind mismatch between operands is a compiler-internal bug,
not a user error — the parser must never build an operation whose operand
kinds disagree, so every method here calls Sink.Fatal rather than returning
an error value on mismatch.
*/
package value

import "github.com/rtmath/cromfront/cerr"
import "github.com/rtmath/cromfront/token"

// Add returns a+b. Defined for int, uint, float, and string (concatenation).
func (a Value) Add(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "add")
	switch a.Tag {
	case VInt:
		return Value{Tag: VInt, Annotation: a.Annotation, Int: a.Int + b.Int}
	case VUint:
		return Value{Tag: VUint, Annotation: a.Annotation, Uint: a.Uint + b.Uint}
	case VFloat:
		return Value{Tag: VFloat, Annotation: a.Annotation, Float: a.Float + b.Float}
	case VString:
		return Value{Tag: VString, Annotation: a.Annotation, Str: a.Str + b.Str}
	default:
		sink.Fatal(pos, "value: add undefined for kind %s", a.Tag)
		return None
	}
}

// Sub returns a-b. Defined for int, uint, and float.
func (a Value) Sub(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "sub")
	switch a.Tag {
	case VInt:
		return Value{Tag: VInt, Annotation: a.Annotation, Int: a.Int - b.Int}
	case VUint:
		return Value{Tag: VUint, Annotation: a.Annotation, Uint: a.Uint - b.Uint}
	case VFloat:
		return Value{Tag: VFloat, Annotation: a.Annotation, Float: a.Float - b.Float}
	default:
		sink.Fatal(pos, "value: sub undefined for kind %s", a.Tag)
		return None
	}
}

// Mul returns a*b. Defined for int, uint, and float.
func (a Value) Mul(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "mul")
	switch a.Tag {
	case VInt:
		return Value{Tag: VInt, Annotation: a.Annotation, Int: a.Int * b.Int}
	case VUint:
		return Value{Tag: VUint, Annotation: a.Annotation, Uint: a.Uint * b.Uint}
	case VFloat:
		return Value{Tag: VFloat, Annotation: a.Annotation, Float: a.Float * b.Float}
	default:
		sink.Fatal(pos, "value: mul undefined for kind %s", a.Tag)
		return None
	}
}

// Div returns a/b. Defined for int, uint, and float. Division by zero in a
// folded constant is reported as an internal error: the semantic pass this
// front-end hands off to is responsible for rejecting it as a user error
// before constant folding ever sees it.
func (a Value) Div(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "div")
	switch a.Tag {
	case VInt:
		if b.Int == 0 {
			sink.Fatal(pos, "value: division by zero")
		}
		return Value{Tag: VInt, Annotation: a.Annotation, Int: a.Int / b.Int}
	case VUint:
		if b.Uint == 0 {
			sink.Fatal(pos, "value: division by zero")
		}
		return Value{Tag: VUint, Annotation: a.Annotation, Uint: a.Uint / b.Uint}
	case VFloat:
		return Value{Tag: VFloat, Annotation: a.Annotation, Float: a.Float / b.Float}
	default:
		sink.Fatal(pos, "value: div undefined for kind %s", a.Tag)
		return None
	}
}

// Mod returns a%b. Defined only for int and uint, per spec.md §4.D.
func (a Value) Mod(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "mod")
	switch a.Tag {
	case VInt:
		if b.Int == 0 {
			sink.Fatal(pos, "value: modulo by zero")
		}
		return Value{Tag: VInt, Annotation: a.Annotation, Int: a.Int % b.Int}
	case VUint:
		if b.Uint == 0 {
			sink.Fatal(pos, "value: modulo by zero")
		}
		return Value{Tag: VUint, Annotation: a.Annotation, Uint: a.Uint % b.Uint}
	default:
		sink.Fatal(pos, "value: mod undefined for kind %s", a.Tag)
		return None
	}
}

// Not returns the logical negation of a bool Value.
func (a Value) Not(sink *cerr.Sink, pos token.Position) Value {
	if a.Tag != VBool {
		sink.Fatal(pos, "value: not undefined for kind %s", a.Tag)
	}
	return Value{Tag: VBool, Annotation: a.Annotation, Bool: !a.Bool}
}

// Equals compares two values of the same kind family, defined for every
// primitive kind including bool and char.
func (a Value) Equals(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "equality")
	var result bool
	switch a.Tag {
	case VInt:
		result = a.Int == b.Int
	case VUint:
		result = a.Uint == b.Uint
	case VFloat:
		result = a.Float == b.Float
	case VBool:
		result = a.Bool == b.Bool
	case VChar:
		result = a.Char == b.Char
	case VString:
		result = a.Str == b.Str
	default:
		sink.Fatal(pos, "value: equality undefined for kind %s", a.Tag)
	}
	return Value{Tag: VBool, Bool: result}
}

// Greater reports whether a > b. Defined for int, uint, float, and char.
func (a Value) Greater(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "greater")
	var result bool
	switch a.Tag {
	case VInt:
		result = a.Int > b.Int
	case VUint:
		result = a.Uint > b.Uint
	case VFloat:
		result = a.Float > b.Float
	case VChar:
		result = a.Char > b.Char
	default:
		sink.Fatal(pos, "value: greater undefined for kind %s", a.Tag)
	}
	return Value{Tag: VBool, Bool: result}
}

// Less reports whether a < b. Defined for int, uint, float, and char.
func (a Value) Less(sink *cerr.Sink, pos token.Position, b Value) Value {
	a.checkFamily(sink, pos, b, "less")
	var result bool
	switch a.Tag {
	case VInt:
		result = a.Int < b.Int
	case VUint:
		result = a.Uint < b.Uint
	case VFloat:
		result = a.Float < b.Float
	case VChar:
		result = a.Char < b.Char
	default:
		sink.Fatal(pos, "value: less undefined for kind %s", a.Tag)
	}
	return Value{Tag: VBool, Bool: result}
}

// LogicalAnd returns a && b for two bool values.
func (a Value) LogicalAnd(sink *cerr.Sink, pos token.Position, b Value) Value {
	if a.Tag != VBool || b.Tag != VBool {
		sink.Fatal(pos, "value: logical_and requires bool operands, got %s and %s", a.Tag, b.Tag)
	}
	return Value{Tag: VBool, Bool: a.Bool && b.Bool}
}

// LogicalOr returns a || b for two bool values.
func (a Value) LogicalOr(sink *cerr.Sink, pos token.Position, b Value) Value {
	if a.Tag != VBool || b.Tag != VBool {
		sink.Fatal(pos, "value: logical_or requires bool operands, got %s and %s", a.Tag, b.Tag)
	}
	return Value{Tag: VBool, Bool: a.Bool || b.Bool}
}
