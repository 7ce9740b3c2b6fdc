package listview

import (
	"strconv"
	"strings"
)

// Kind identifies the scalar type carried by a Value.
type Kind int

const (
	// KindString is a plain string cell.
	KindString Kind = iota
	// KindNumber is a numeric cell compared arithmetically.
	KindNumber
	// KindList is an ordered sequence of strings, e.g. tags.
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// listSeparator joins list items into their text form.
const listSeparator = ", "

// Value is a single cell extracted from a record.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  float64
	list []string
}

// StringValue wraps a string cell.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue wraps a numeric cell.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// IntValue wraps an integer cell.
func IntValue(n int) Value {
	return NumberValue(float64(n))
}

// ListValue wraps a multi-valued cell. The items are copied.
func ListValue(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Number returns the numeric payload. It is zero for non-numeric values.
func (v Value) Number() float64 {
	return v.num
}

// Items returns a copy of the list payload, or a single-element list holding
// the text form for scalar values.
func (v Value) Items() []string {
	if v.kind != KindList {
		return []string{v.String()}
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp
}

// String returns the text form used for display, search and mixed-kind
// comparison. Numbers use their shortest decimal representation and lists are
// joined with ", ".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindList:
		return strings.Join(v.list, listSeparator)
	default:
		return v.str
	}
}
