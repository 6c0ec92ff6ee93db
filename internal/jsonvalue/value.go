// Package jsonvalue implements a read-only, strongly-typed JSON document
// model. A Value graph is built once from a generic node tree (see
// internal/node) and is immutable afterwards, so it can be shared across
// goroutines without locking.
package jsonvalue

import (
	"iter"
	"math"
	"strconv"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/jsonv/internal/errors"
)

// Type identifies the variant of a Value. Types are bit flags so a set of
// acceptable variants can be tested with a single mask.
type Type uint8

const (
	TypeNull Type = 1 << iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// typeNames maps single-bit types to their JSON names, in flag order.
var typeNames = []struct {
	flag Type
	name string
}{
	{TypeNull, "null"},
	{TypeBool, "boolean"},
	{TypeNumber, "number"},
	{TypeString, "string"},
	{TypeArray, "array"},
	{TypeObject, "object"},
}

// String returns the JSON name of the type, or an "a or b" form when the
// value is a set of several flags.
func (t Type) String() string {
	var names []string
	for _, tn := range typeNames {
		if t&tn.flag != 0 {
			names = append(names, tn.name)
		}
	}
	switch len(names) {
	case 0:
		return "invalid"
	case 1:
		return names[0]
	default:
		return strings.Join(names, " or ")
	}
}

// Value is one node of an immutable JSON document. Every Value carries a
// name describing how it was reached from its parent: the member key under
// an object, the decimal element index under an array, or the resolved tag
// of the source tree's root.
type Value struct {
	name string
	typ  Type

	// text holds the raw numeric text for numbers (parsed lazily, never at
	// construction) and the unescaped payload for strings.
	text     string
	boolean  bool
	elements []*Value
	members  map[string]*Value
	keys     []string // member insertion order
}

// Name returns the value's label within its parent.
func (v *Value) Name() string {
	return v.name
}

// Type returns the value's variant.
func (v *Value) Type() Type {
	return v.typ
}

// Is reports whether the value's variant is in the given set.
func (v *Value) Is(set Type) bool {
	return v.typ&set != 0
}

// check returns a type mismatch error unless the value's variant is in the
// given set.
func (v *Value) check(want Type) error {
	if v.typ&want == 0 {
		return errors.NewTypeMismatchError(v.name, v.typ.String(), want.String())
	}
	return nil
}

// AsInt parses a number value's text as an integer that must fit in 32
// bits. Out-of-range text fails with a range overflow rather than
// truncating.
func (v *Value) AsInt() (int, error) {
	if err := v.check(TypeNumber); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v.text, 10, 32)
	if err != nil {
		return 0, v.intError(err, "int32")
	}
	return int(n), nil
}

// AsInt64 parses a number value's text as a 64-bit integer.
func (v *Value) AsInt64() (int64, error) {
	if err := v.check(TypeNumber); err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v.text, 10, 64)
	if err != nil {
		return 0, v.intError(err, "int64")
	}
	return n, nil
}

// AsIntForce is the lenient form of AsInt: when strict integer parsing
// fails it re-parses the text as a floating-point literal and truncates
// toward zero.
func (v *Value) AsIntForce() (int, error) {
	if err := v.check(TypeNumber); err != nil {
		return 0, err
	}
	if n, err := strconv.ParseInt(v.text, 10, 32); err == nil {
		return int(n), nil
	}
	f, err := v.truncatedFloat("int32")
	if err != nil {
		return 0, err
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, errors.NewRangeOverflowError(v.name, v.text, "int32")
	}
	return int(f), nil
}

// AsInt64Force is the lenient form of AsInt64.
func (v *Value) AsInt64Force() (int64, error) {
	if err := v.check(TypeNumber); err != nil {
		return 0, err
	}
	if n, err := strconv.ParseInt(v.text, 10, 64); err == nil {
		return n, nil
	}
	f, err := v.truncatedFloat("int64")
	if err != nil {
		return 0, err
	}
	// The float comparison is done against the nearest representable
	// bounds, so values right at the edge of int64 are rejected.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errors.NewRangeOverflowError(v.name, v.text, "int64")
	}
	return int64(f), nil
}

// truncatedFloat parses the number text as a float and truncates toward
// zero, for the lenient integer accessors.
func (v *Value) truncatedFloat(want string) (float64, error) {
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, errors.NewNumericParseError(v.name, v.text, want, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.NewNumericParseError(v.name, v.text, want, nil)
	}
	return math.Trunc(f), nil
}

// intError maps a strconv failure onto the error taxonomy: range failures
// become overflows, everything else is a parse error.
func (v *Value) intError(err error, want string) error {
	var numErr *strconv.NumError
	if stderrors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return errors.NewRangeOverflowError(v.name, v.text, want)
	}
	return errors.NewNumericParseError(v.name, v.text, want, err)
}

// AsFloat64 parses a number value's text as a floating-point literal.
// strconv is locale-invariant: the decimal point is always '.' and no
// grouping separators are accepted.
func (v *Value) AsFloat64() (float64, error) {
	if err := v.check(TypeNumber); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, errors.NewNumericParseError(v.name, v.text, "float64", err)
	}
	return f, nil
}

// AsString returns a string value's (already unescaped) text.
func (v *Value) AsString() (string, error) {
	if err := v.check(TypeString); err != nil {
		return "", err
	}
	return v.text, nil
}

// AsBool returns a boolean value's payload.
func (v *Value) AsBool() (bool, error) {
	if err := v.check(TypeBool); err != nil {
		return false, err
	}
	return v.boolean, nil
}

// Member returns the named member of an object value.
func (v *Value) Member(key string) (*Value, error) {
	if err := v.check(TypeObject); err != nil {
		return nil, err
	}
	m, ok := v.members[key]
	if !ok {
		return nil, errors.NewKeyNotFoundError(v.name, key)
	}
	return m, nil
}

// HasMember reports whether an object value has the named member.
func (v *Value) HasMember(key string) (bool, error) {
	if err := v.check(TypeObject); err != nil {
		return false, err
	}
	_, ok := v.members[key]
	return ok, nil
}

// Element returns the i-th element of an array value.
func (v *Value) Element(i int) (*Value, error) {
	if err := v.check(TypeArray); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(v.elements) {
		return nil, errors.NewIndexOutOfRangeError(v.name, i, len(v.elements))
	}
	return v.elements[i], nil
}

// Len returns the element count of an array value or the member count of
// an object value.
func (v *Value) Len() (int, error) {
	if err := v.check(TypeArray | TypeObject); err != nil {
		return 0, err
	}
	if v.typ == TypeArray {
		return len(v.elements), nil
	}
	return len(v.keys), nil
}

// Values iterates the value's children: array elements in order, object
// member values in insertion order. For scalar values the sequence is
// empty; iteration is always legal and restartable.
func (v *Value) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		switch v.typ {
		case TypeArray:
			for _, e := range v.elements {
				if !yield(e) {
					return
				}
			}
		case TypeObject:
			for _, k := range v.keys {
				if !yield(v.members[k]) {
					return
				}
			}
		}
	}
}

// Keys iterates an object value's member keys in insertion order. For any
// other variant the sequence is empty.
func (v *Value) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if v.typ != TypeObject {
			return
		}
		for _, k := range v.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Equal reports whether two values represent the same JSON value: same
// variant and payload, with array order significant and object member
// order ignored. Numbers compare by raw text first, then numerically, so
// re-parsed documents with reformatted numbers still compare equal. Names
// are labels, not content, and do not participate.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeNull:
		return true
	case TypeBool:
		return v.boolean == other.boolean
	case TypeString:
		return v.text == other.text
	case TypeNumber:
		if v.text == other.text {
			return true
		}
		a, errA := strconv.ParseFloat(v.text, 64)
		b, errB := strconv.ParseFloat(other.text, 64)
		return errA == nil && errB == nil && a == b
	case TypeArray:
		if len(v.elements) != len(other.elements) {
			return false
		}
		for i, e := range v.elements {
			if !e.Equal(other.elements[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.members) != len(other.members) {
			return false
		}
		for k, m := range v.members {
			o, ok := other.members[k]
			if !ok || !m.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}
