package conv

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValueAccessors(t *testing.T) {
	v := Int(42)
	i, ok := v.AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	_, ok = v.AsChar()
	assert.False(t, ok, "int is not char")
	_, ok = v.AsFloat()
	assert.False(t, ok, "no implicit widening at the accessor level")

	// Char and string values both satisfy AsChar.
	s, ok := Char("x").AsChar()
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	s, ok = Str("y").AsChar()
	assert.True(t, ok)
	assert.Equal(t, "y", s)

	// But a char value is not a num value.
	_, ok = Char("12").AsNum()
	assert.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Int(1).Equal(Int(1)))
	assert.False(t, Int(1).Equal(Int(2)))
	assert.False(t, Int(1).Equal(Float(1)))

	// Decimals compare numerically.
	a := Decimal(decimal.RequireFromString("1.50"))
	b := Decimal(decimal.RequireFromString("1.5"))
	assert.True(t, a.Equal(b))

	assert.True(t, Bytes([]byte{1, 2}).Equal(Bytes([]byte{1, 2})))
	assert.False(t, Bytes([]byte{1, 2}).Equal(Bytes([]byte{1})))

	assert.False(t, Value{}.Equal(Int(0)))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, `char("ab")`, Char("ab").String())
	assert.Equal(t, "int(7)", Int(7).String())
	assert.Equal(t, "bytes(3)", Bytes([]byte{1, 2, 3}).String())
	assert.Equal(t, "invalid", Value{}.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "decimal", KindDecimal.String())
	assert.Equal(t, "kind(200)", Kind(200).String())
}
