package form

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies which member of the field value domain a Value holds.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindStrings
	KindObject
)

// Value is the current value of one form field. The zero Value is absent.
// Values are immutable once constructed.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	date time.Time
	seq  []string
	obj  map[string]any
}

// Absent returns the explicit "no value" Value.
func Absent() Value { return Value{} }

func String(s string) Value { return Value{kind: KindString, str: s} }

func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Date wraps a timestamp. The zero time represents an invalid date.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Strings wraps an ordered sequence of strings.
func Strings(items ...string) Value { return Value{kind: KindStrings, seq: items} }

// Object wraps an arbitrary key/value record.
func Object(m map[string]any) Value { return Value{kind: KindObject, obj: m} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the value's string form. Sequences join their items with a
// comma; dates render as RFC 3339; objects have no string form.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		if v.date.IsZero() {
			return ""
		}
		return v.date.Format(time.RFC3339)
	case KindStrings:
		return strings.Join(v.seq, ",")
	default:
		return ""
	}
}

// AsNumber returns the numeric reading of the value: the number itself, or a
// string parsed as a float. The second result reports whether a numeric
// reading exists.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Items returns the underlying sequence, or nil for non-sequence values.
func (v Value) Items() []string {
	if v.kind != KindStrings {
		return nil
	}
	return v.seq
}

// Falsy reports ordinary truthiness: absent, empty string, zero, false, and
// the empty sequence are falsy. Dates and objects are always truthy. This is
// the test the required short-circuit uses; Present applies the stricter
// per-kind presence semantics.
func (v Value) Falsy() bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindString:
		return v.str == ""
	case KindNumber:
		return v.num == 0
	case KindBool:
		return !v.b
	case KindStrings:
		return len(v.seq) == 0
	default:
		return false
	}
}

// Present reports whether the value satisfies a presence requirement:
// booleans are always present, dates must be valid (non-zero), sequences and
// objects must be non-empty, and everything else must have a non-empty string
// form.
func (v Value) Present() bool {
	switch v.kind {
	case KindAbsent:
		return false
	case KindBool:
		return true
	case KindDate:
		return !v.date.IsZero()
	case KindStrings:
		return len(v.seq) > 0
	case KindObject:
		return len(v.obj) > 0
	default:
		return v.Text() != ""
	}
}
