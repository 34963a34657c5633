package conv

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wippyai/rfc-runtime/conv/internal/bcd"
	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/metadata"
)

// ToRFC converts a value into the raw memory region of the described field.
// The returned slice has exactly the field's region size for fixed-width
// types and the payload size for variable-length types.
func ToRFC(field metadata.FieldDescription, v Value) ([]byte, error) {
	path := []string{field.Name}

	switch field.Type {
	case metadata.TypeChar:
		s, ok := v.AsChar()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		return encodeFixedChars(path, s, int(field.Length), ' ', false)

	case metadata.TypeNum:
		s, err := numString(path, v)
		if err != nil {
			return nil, err
		}
		return encodeFixedChars(path, s, int(field.Length), '0', true)

	case metadata.TypeDate:
		d, ok := v.AsDate()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		return ucEncode(d.String())

	case metadata.TypeTime:
		t, ok := v.AsTime()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		return ucEncode(t.String())

	case metadata.TypeInt1, metadata.TypeInt2, metadata.TypeInt, metadata.TypeInt8:
		i, ok := v.AsInt()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		return encodeInt(path, field.Type, i)

	case metadata.TypeFloat:
		f, ok := v.AsFloat()
		if !ok {
			if i, iok := v.AsInt(); iok {
				f, ok = float64(i), true
			}
		}
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		out := make([]byte, 8)
		binary.LittleEndian.PutUint64(out, math.Float64bits(f))
		return out, nil

	case metadata.TypeBCD:
		d, ok := v.AsDecimal()
		if !ok {
			if i, iok := v.AsInt(); iok {
				d, ok = decimal.NewFromInt(i), true
			}
		}
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		return encodeBCD(path, field, d)

	case metadata.TypeByte, metadata.TypeXMLData:
		b, ok := v.AsBytes()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		if len(b) > int(field.Length) {
			return nil, errors.Truncation(errors.PhaseEncode, path, len(b), int(field.Length))
		}
		out := make([]byte, field.Length)
		copy(out, b)
		return out, nil

	case metadata.TypeXString:
		b, ok := v.AsBytes()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil

	case metadata.TypeString:
		s, ok := v.AsChar()
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), field.Type.String())
		}
		return ucEncode(s)

	case metadata.TypeStructure, metadata.TypeTable:
		return nil, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Path(path...).
			RfcType(field.Type.String()).
			Detail("structures and tables are written through views, not the converter").
			Build()
	}

	return nil, errors.Unsupported(errors.PhaseEncode,
		fmt.Sprintf("field %s has unsupported type %s", field.Name, field.Type))
}

// FromRFC converts the raw memory region of the described field back into a
// value. Fixed-width regions must have exactly the field's declared size.
func FromRFC(field metadata.FieldDescription, raw []byte) (Value, error) {
	path := []string{field.Name}

	if !field.Type.IsVariable() && !field.Type.IsComplex() {
		if want := int(field.ByteLength()); len(raw) != want {
			return Value{}, errors.InvalidFormat(errors.PhaseDecode, path,
				fmt.Sprintf("region is %d bytes, field %s needs %d", len(raw), field.Type, want))
		}
	}

	switch field.Type {
	case metadata.TypeChar:
		s, err := ucDecode(raw)
		if err != nil {
			return Value{}, err
		}
		return Char(strings.TrimRight(s, " ")), nil

	case metadata.TypeNum:
		s, err := ucDecode(raw)
		if err != nil {
			return Value{}, err
		}
		return Num(s), nil

	case metadata.TypeDate:
		s, err := ucDecode(raw)
		if err != nil {
			return Value{}, err
		}
		d, err := ParseDate(s)
		if err != nil {
			return Value{}, err
		}
		return DateVal(d), nil

	case metadata.TypeTime:
		s, err := ucDecode(raw)
		if err != nil {
			return Value{}, err
		}
		t, err := ParseTime(s)
		if err != nil {
			return Value{}, err
		}
		return TimeVal(t), nil

	case metadata.TypeInt1:
		return Int(int64(raw[0])), nil
	case metadata.TypeInt2:
		return Int(int64(int16(binary.LittleEndian.Uint16(raw)))), nil
	case metadata.TypeInt:
		return Int(int64(int32(binary.LittleEndian.Uint32(raw)))), nil
	case metadata.TypeInt8:
		return Int(int64(binary.LittleEndian.Uint64(raw))), nil

	case metadata.TypeFloat:
		return Float(math.Float64frombits(binary.LittleEndian.Uint64(raw))), nil

	case metadata.TypeBCD:
		return decodeBCD(path, field, raw)

	case metadata.TypeByte, metadata.TypeXMLData, metadata.TypeXString:
		out := make([]byte, len(raw))
		copy(out, raw)
		return Bytes(out), nil

	case metadata.TypeString:
		s, err := ucDecode(raw)
		if err != nil {
			return Value{}, err
		}
		return Str(s), nil

	case metadata.TypeStructure, metadata.TypeTable:
		return Value{}, errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			Path(path...).
			RfcType(field.Type.String()).
			Detail("structures and tables are read through views, not the converter").
			Build()
	}

	return Value{}, errors.Unsupported(errors.PhaseDecode,
		fmt.Sprintf("field %s has unsupported type %s", field.Name, field.Type))
}

// Initial returns the SDK-initial memory region of a field: blanks for
// character fields, zero digits for NUM, packed zero for BCD, zero bytes for
// binary types and an empty region for variable-length types.
func Initial(field metadata.FieldDescription) []byte {
	switch field.Type {
	case metadata.TypeChar:
		out, _ := ucEncode(strings.Repeat(" ", int(field.Length)))
		return out
	case metadata.TypeNum:
		out, _ := ucEncode(strings.Repeat("0", int(field.Length)))
		return out
	case metadata.TypeDate:
		out, _ := ucEncode("00000000")
		return out
	case metadata.TypeTime:
		out, _ := ucEncode("000000")
		return out
	case metadata.TypeBCD:
		out, _ := bcd.Encode("0", false, int(field.Length))
		return out
	case metadata.TypeString, metadata.TypeXString:
		return []byte{}
	case metadata.TypeStructure, metadata.TypeTable:
		return nil
	}
	return make([]byte, field.ByteLength())
}

// encodeFixedChars writes s into a region of units SAP_UC units.
// leftPad selects NUM-style leading padding over CHAR-style trailing padding.
func encodeFixedChars(path []string, s string, units int, pad rune, leftPad bool) ([]byte, error) {
	n, err := ucUnitCount(s)
	if err != nil {
		return nil, err
	}
	if n > units {
		return nil, errors.Truncation(errors.PhaseEncode, path, n, units)
	}
	padding := strings.Repeat(string(pad), units-n)
	if leftPad {
		return ucEncode(padding + s)
	}
	return ucEncode(s + padding)
}

func numString(path []string, v Value) (string, error) {
	if s, ok := v.AsNum(); ok {
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return "", errors.InvalidFormat(errors.PhaseEncode, path,
					fmt.Sprintf("NUM value %q contains non-digit", s))
			}
		}
		return s, nil
	}
	if i, ok := v.AsInt(); ok {
		if i < 0 {
			return "", errors.InvalidFormat(errors.PhaseEncode, path,
				"NUM fields cannot hold negative values")
		}
		return fmt.Sprintf("%d", i), nil
	}
	return "", errors.TypeMismatch(errors.PhaseEncode, path, v.Kind().String(), metadata.TypeNum.String())
}

func encodeInt(path []string, t metadata.Type, i int64) ([]byte, error) {
	switch t {
	case metadata.TypeInt1:
		if i < 0 || i > math.MaxUint8 {
			return nil, errors.Overflow(errors.PhaseEncode, path, i, t.String())
		}
		return []byte{byte(i)}, nil
	case metadata.TypeInt2:
		if i < math.MinInt16 || i > math.MaxInt16 {
			return nil, errors.Overflow(errors.PhaseEncode, path, i, t.String())
		}
		out := make([]byte, 2)
		binary.LittleEndian.PutUint16(out, uint16(int16(i)))
		return out, nil
	case metadata.TypeInt:
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, errors.Overflow(errors.PhaseEncode, path, i, t.String())
		}
		out := make([]byte, 4)
		binary.LittleEndian.PutUint32(out, uint32(int32(i)))
		return out, nil
	default: // TypeInt8
		out := make([]byte, 8)
		binary.LittleEndian.PutUint64(out, uint64(i))
		return out, nil
	}
}

func encodeBCD(path []string, field metadata.FieldDescription, d decimal.Decimal) ([]byte, error) {
	scale := int32(0)
	if d.Exponent() < 0 {
		scale = -d.Exponent()
	}
	if scale > int32(field.Decimals) {
		return nil, errors.PrecisionLoss(errors.PhaseEncode, path, scale, int32(field.Decimals))
	}

	// Exact rescale to the field's declared decimal count. StringFixed cannot
	// round here because the scale check above already passed.
	fixed := d.Abs().StringFixed(int32(field.Decimals))
	digits := strings.TrimLeft(strings.Replace(fixed, ".", "", 1), "0")
	if digits == "" {
		digits = "0"
	}
	if len(digits) > bcd.Capacity(int(field.Length)) {
		return nil, errors.Overflow(errors.PhaseEncode, path, d.String(), field.Type.String())
	}

	out, err := bcd.Encode(digits, d.IsNegative(), int(field.Length))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidFormat, err, "pack BCD")
	}
	return out, nil
}

func decodeBCD(path []string, field metadata.FieldDescription, raw []byte) (Value, error) {
	digits, negative, err := bcd.Decode(raw)
	if err != nil {
		return Value{}, errors.Wrap(errors.PhaseDecode, errors.KindInvalidFormat, err, "unpack BCD")
	}
	coeff, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Value{}, errors.InvalidFormat(errors.PhaseDecode, path,
			fmt.Sprintf("BCD digits %q are not numeric", digits))
	}
	if negative {
		coeff.Neg(coeff)
	}
	// The decoded value always carries exactly the field's declared scale.
	return Decimal(decimal.NewFromBigInt(coeff, -int32(field.Decimals))), nil
}
