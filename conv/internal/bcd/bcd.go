// Package bcd packs and unpacks SAP's fixed-point packed decimal wire format.
//
// A BCD field of length n bytes holds 2n-1 digits followed by a sign nibble
// in the low half of the last byte: 0xC for positive (and zero), 0xD for
// negative. Digits are right-aligned and zero padded on the left.
package bcd

import (
	"fmt"
	"strings"
)

const (
	signPositive = 0xC
	signNegative = 0xD
)

// Encode packs a digit string into length bytes. digits must contain only
// ASCII digits and carries no sign or separator; negative selects the sign
// nibble. The digit count must not exceed Capacity(length).
func Encode(digits string, negative bool, length int) ([]byte, error) {
	if length < 1 || length > 16 {
		return nil, fmt.Errorf("bcd length %d out of range 1-16", length)
	}
	capacity := Capacity(length)
	if len(digits) > capacity {
		return nil, fmt.Errorf("%d digits exceed capacity %d of %d-byte field", len(digits), capacity, length)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, fmt.Errorf("invalid digit %q", digits[i])
		}
	}
	padded := strings.Repeat("0", capacity-len(digits)) + digits

	out := make([]byte, length)
	sign := byte(signPositive)
	if negative {
		sign = signNegative
	}
	// Nibble stream: capacity digits then the sign nibble.
	for i := 0; i < capacity; i++ {
		d := padded[i] - '0'
		if i%2 == 0 {
			out[i/2] = d << 4
		} else {
			out[i/2] |= d
		}
	}
	out[length-1] |= sign
	return out, nil
}

// Decode unpacks length bytes into a digit string and sign.
func Decode(raw []byte) (digits string, negative bool, err error) {
	length := len(raw)
	if length < 1 || length > 16 {
		return "", false, fmt.Errorf("bcd region of %d bytes out of range 1-16", length)
	}
	sign := raw[length-1] & 0x0F
	switch sign {
	case signPositive, 0xF: // 0xF: unsigned, treated as positive
		negative = false
	case signNegative:
		negative = true
	default:
		return "", false, fmt.Errorf("invalid sign nibble %#x", sign)
	}

	var b strings.Builder
	capacity := Capacity(length)
	for i := 0; i < capacity; i++ {
		var d byte
		if i%2 == 0 {
			d = raw[i/2] >> 4
		} else {
			d = raw[i/2] & 0x0F
		}
		if d > 9 {
			return "", false, fmt.Errorf("invalid digit nibble %#x at position %d", d, i)
		}
		b.WriteByte('0' + d)
	}
	digits = strings.TrimLeft(b.String(), "0")
	if digits == "" {
		digits = "0"
	}
	return digits, negative, nil
}

// Capacity returns the digit capacity of a BCD field of length bytes.
func Capacity(length int) int {
	return 2*length - 1
}
