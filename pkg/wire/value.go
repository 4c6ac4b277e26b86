package wire

import (
	"strconv"
)

// ValueKind distinguishes the decoded forms of a scalar value.
type ValueKind uint8

const (
	// ValueAbsent means the device returned no value.
	ValueAbsent ValueKind = iota

	// ValueInt is an integer decoded from a numeric tag.
	ValueInt

	// ValueString is text from a c8_array tag or an empty element.
	ValueString
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueAbsent:
		return "absent"
	case ValueInt:
		return "int"
	case ValueString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the result of a GET exchange. The zero Value is absent.
type Value struct {
	kind ValueKind
	i    int64
	s    string
}

// Absent returns the absent value.
func Absent() Value {
	return Value{}
}

// IntValue returns an integer value.
func IntValue(i int64) Value {
	return Value{kind: ValueInt, i: i}
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{kind: ValueString, s: s}
}

// Kind returns the value kind.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent returns true if no value was present.
func (v Value) IsAbsent() bool { return v.kind == ValueAbsent }

// Int returns the integer and true if the value is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == ValueInt }

// Str returns the string and true if the value is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == ValueString }

// Any returns nil, an int64 or a string.
func (v Value) Any() any {
	switch v.kind {
	case ValueInt:
		return v.i
	case ValueString:
		return v.s
	default:
		return nil
	}
}

// String formats the value for display. Absent prints as "<none>".
func (v Value) String() string {
	switch v.kind {
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueString:
		return v.s
	default:
		return "<none>"
	}
}
