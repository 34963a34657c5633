package conv

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindChar         // fixed-length character data
	KindNum          // digit string (RFC NUM fields)
	KindInt          // signed integer, any RFC integer width
	KindFloat        // binary double
	KindDecimal      // packed decimal (BCD)
	KindDate         // YYYYMMDD
	KindTime         // HHMMSS
	KindBytes        // raw bytes (BYTE and XSTRING fields)
	KindString       // variable-length character string
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindChar:    "char",
	KindNum:     "num",
	KindInt:     "int",
	KindFloat:   "float",
	KindDecimal: "decimal",
	KindDate:    "date",
	KindTime:    "time",
	KindBytes:   "bytes",
	KindString:  "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Value is a closed tagged union over the RFC scalar variants. The zero
// Value is invalid. Values are produced by the constructors below and by
// FromRFC; they never alias SDK memory.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	d    decimal.Decimal
	b    []byte
	date Date
	t    Time
}

// Char returns a fixed-length character value.
func Char(s string) Value { return Value{kind: KindChar, s: s} }

// Num returns a digit-string value for NUM fields.
func Num(s string) Value { return Value{kind: KindNum, s: s} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a binary double value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Decimal returns a packed decimal value.
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, d: d} }

// DateVal returns a date value.
func DateVal(d Date) Value { return Value{kind: KindDate, date: d} }

// TimeVal returns a time value.
func TimeVal(t Time) Value { return Value{kind: KindTime, t: t} }

// Bytes returns a raw byte value. The slice is not copied.
func Bytes(b []byte) Value { return Value{kind: KindBytes, b: b} }

// Str returns a variable-length string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// AsChar returns the character payload of a char or string value.
func (v Value) AsChar() (string, bool) {
	if v.kind == KindChar || v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// AsNum returns the digit string of a num value.
func (v Value) AsNum() (string, bool) {
	if v.kind == KindNum {
		return v.s, true
	}
	return "", false
}

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) {
	if v.kind == KindInt {
		return v.i, true
	}
	return 0, false
}

// AsFloat returns the float payload.
func (v Value) AsFloat() (float64, bool) {
	if v.kind == KindFloat {
		return v.f, true
	}
	return 0, false
}

// AsDecimal returns the decimal payload.
func (v Value) AsDecimal() (decimal.Decimal, bool) {
	if v.kind == KindDecimal {
		return v.d, true
	}
	return decimal.Decimal{}, false
}

// AsDate returns the date payload.
func (v Value) AsDate() (Date, bool) {
	if v.kind == KindDate {
		return v.date, true
	}
	return Date{}, false
}

// AsTime returns the time payload.
func (v Value) AsTime() (Time, bool) {
	if v.kind == KindTime {
		return v.t, true
	}
	return Time{}, false
}

// AsBytes returns the raw byte payload. The slice must not be modified.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind == KindBytes {
		return v.b, true
	}
	return nil, false
}

// Equal reports whether two values hold the same variant and payload.
// Decimals compare numerically, not by representation.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindChar, KindNum, KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindDecimal:
		return v.d.Equal(o.d)
	case KindDate:
		return v.date == o.date
	case KindTime:
		return v.t == o.t
	case KindBytes:
		if len(v.b) != len(o.b) {
			return false
		}
		for i := range v.b {
			if v.b[i] != o.b[i] {
				return false
			}
		}
		return true
	}
	return true
}

// String renders the value for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindChar, KindNum, KindString:
		return fmt.Sprintf("%s(%q)", v.kind, v.s)
	case KindInt:
		return fmt.Sprintf("int(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("float(%g)", v.f)
	case KindDecimal:
		return fmt.Sprintf("decimal(%s)", v.d)
	case KindDate:
		return fmt.Sprintf("date(%s)", v.date)
	case KindTime:
		return fmt.Sprintf("time(%s)", v.t)
	case KindBytes:
		return fmt.Sprintf("bytes(%d)", len(v.b))
	}
	return "invalid"
}
