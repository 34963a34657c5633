package metadata

import "testing"

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeChar, "CHAR"},
		{TypeBCD, "BCD"},
		{TypeTable, "TABLE"},
		{TypeStructure, "STRUCTURE"},
		{TypeInt8, "INT8"},
		{TypeUTCLong, "UTCLONG"},
		{Type(99), "RFCTYPE(99)"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", uint32(tt.typ), got, tt.want)
		}
	}
}

func TestType_IsComplex(t *testing.T) {
	for _, typ := range []Type{TypeStructure, TypeTable} {
		if !typ.IsComplex() {
			t.Errorf("%s should be complex", typ)
		}
	}
	for _, typ := range []Type{TypeChar, TypeInt, TypeBCD, TypeString} {
		if typ.IsComplex() {
			t.Errorf("%s should not be complex", typ)
		}
	}
}

func TestType_IsVariable(t *testing.T) {
	for _, typ := range []Type{TypeString, TypeXString} {
		if !typ.IsVariable() {
			t.Errorf("%s should be variable length", typ)
		}
	}
	if TypeChar.IsVariable() {
		t.Error("CHAR should have a fixed region")
	}
}

func TestDirection_ReadableWritable(t *testing.T) {
	tests := []struct {
		dir      Direction
		readable bool
		writable bool
	}{
		{Import, false, true},
		{Export, true, false},
		{Changing, true, true},
		{Tables, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Readable(); got != tt.readable {
				t.Errorf("Readable() = %v, want %v", got, tt.readable)
			}
			if got := tt.dir.Writable(); got != tt.writable {
				t.Errorf("Writable() = %v, want %v", got, tt.writable)
			}
		})
	}
}

func TestFieldDescription_ByteLength(t *testing.T) {
	tests := []struct {
		name  string
		field FieldDescription
		want  uint32
	}{
		{"char counts two bytes per unit", FieldDescription{Type: TypeChar, Length: 10}, 20},
		{"num counts two bytes per unit", FieldDescription{Type: TypeNum, Length: 5}, 10},
		{"date is eight chars", FieldDescription{Type: TypeDate}, 16},
		{"time is six chars", FieldDescription{Type: TypeTime}, 12},
		{"bcd length is bytes", FieldDescription{Type: TypeBCD, Length: 7, Decimals: 2}, 7},
		{"byte length is bytes", FieldDescription{Type: TypeByte, Length: 16}, 16},
		{"float", FieldDescription{Type: TypeFloat}, 8},
		{"int", FieldDescription{Type: TypeInt}, 4},
		{"int2", FieldDescription{Type: TypeInt2}, 2},
		{"int1", FieldDescription{Type: TypeInt1}, 1},
		{"int8", FieldDescription{Type: TypeInt8}, 8},
		{"decf34", FieldDescription{Type: TypeDecF34}, 16},
		{"string has no fixed region", FieldDescription{Type: TypeString}, 0},
		{"xstring has no fixed region", FieldDescription{Type: TypeXString}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.ByteLength(); got != tt.want {
				t.Errorf("ByteLength() = %d, want %d", got, tt.want)
			}
		})
	}
}
