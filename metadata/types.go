package metadata

import "fmt"

// Type is the ABAP data type tag of a field or parameter.
// Values mirror the RFCTYPE enumeration of the NW RFC SDK.
type Type uint32

const (
	// TypeChar is a fixed-size character field, blank padded.
	TypeChar Type = 0
	// TypeDate is a date in external format YYYYMMDD.
	TypeDate Type = 1
	// TypeBCD is a packed number of 1 to 16 bytes.
	TypeBCD Type = 2
	// TypeTime is a time in external format HHMMSS.
	TypeTime Type = 3
	// TypeByte is fixed-length raw data, zero padded.
	TypeByte Type = 4
	// TypeTable is an internal table.
	TypeTable Type = 5
	// TypeNum is a digit string, leading-zero padded.
	TypeNum Type = 6
	// TypeFloat is a double precision IEEE 754 float.
	TypeFloat Type = 7
	// TypeInt is a 4-byte signed integer.
	TypeInt Type = 8
	// TypeInt2 is a 2-byte signed integer.
	TypeInt2 Type = 9
	// TypeInt1 is a 1-byte unsigned integer.
	TypeInt1 Type = 10
	// TypeNull marks an unsupported data type.
	TypeNull Type = 14
	// TypeABAPObject is an ABAP object reference.
	TypeABAPObject Type = 16
	// TypeStructure is a flat or nested ABAP structure.
	TypeStructure Type = 17
	// TypeDecF16 is an 8-byte IEEE 754r decimal float.
	TypeDecF16 Type = 23
	// TypeDecF34 is a 16-byte IEEE 754r decimal float.
	TypeDecF34 Type = 24
	// TypeXMLData is a legacy XML container. No longer produced by backends.
	TypeXMLData Type = 28
	// TypeString is a variable-length character string.
	TypeString Type = 29
	// TypeXString is a variable-length byte string.
	TypeXString Type = 30
	// TypeInt8 is an 8-byte signed integer.
	TypeInt8 Type = 31
	// TypeUTCLong is a timestamp with 100ns precision, 8 bytes.
	TypeUTCLong Type = 32
	// TypeUTCSecond is a timestamp in seconds, 8 bytes.
	TypeUTCSecond Type = 33
	// TypeUTCMinute is a timestamp in minutes, 8 bytes.
	TypeUTCMinute Type = 34
	// TypeDTDay is a date/day value, 4 bytes.
	TypeDTDay Type = 35
	// TypeDTWeek is a date/week value, 4 bytes.
	TypeDTWeek Type = 36
	// TypeDTMonth is a date/month value, 4 bytes.
	TypeDTMonth Type = 37
	// TypeTSecond is a time/second value, 4 bytes.
	TypeTSecond Type = 38
	// TypeTMinute is a time/minute value, 2 bytes.
	TypeTMinute Type = 39
	// TypeCDay is a calendar day value, 2 bytes.
	TypeCDay Type = 40
)

var typeNames = map[Type]string{
	TypeChar:       "CHAR",
	TypeDate:       "DATE",
	TypeBCD:        "BCD",
	TypeTime:       "TIME",
	TypeByte:       "BYTE",
	TypeTable:      "TABLE",
	TypeNum:        "NUM",
	TypeFloat:      "FLOAT",
	TypeInt:        "INT",
	TypeInt2:       "INT2",
	TypeInt1:       "INT1",
	TypeNull:       "NULL",
	TypeABAPObject: "ABAPOBJECT",
	TypeStructure:  "STRUCTURE",
	TypeDecF16:     "DECF16",
	TypeDecF34:     "DECF34",
	TypeXMLData:    "XMLDATA",
	TypeString:     "STRING",
	TypeXString:    "XSTRING",
	TypeInt8:       "INT8",
	TypeUTCLong:    "UTCLONG",
	TypeUTCSecond:  "UTCSECOND",
	TypeUTCMinute:  "UTCMINUTE",
	TypeDTDay:      "DTDAY",
	TypeDTWeek:     "DTWEEK",
	TypeDTMonth:    "DTMONTH",
	TypeTSecond:    "TSECOND",
	TypeTMinute:    "TMINUTE",
	TypeCDay:       "CDAY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("RFCTYPE(%d)", uint32(t))
}

// IsComplex reports whether the type is a structure or table, handled by
// views rather than by the value converter.
func (t Type) IsComplex() bool {
	return t == TypeStructure || t == TypeTable
}

// IsVariable reports whether the type has no fixed byte length.
func (t Type) IsVariable() bool {
	return t == TypeString || t == TypeXString
}

// Direction of a function module parameter.
// Values mirror the RFC_DIRECTION enumeration of the NW RFC SDK.
type Direction uint32

const (
	// Import corresponds to an ABAP IMPORTING parameter. Written by the
	// caller before invoke.
	Import Direction = 0x01
	// Export corresponds to an ABAP EXPORTING parameter. Read by the caller
	// after invoke.
	Export Direction = 0x02
	// Changing corresponds to an ABAP CHANGING parameter. Both written and
	// read by the caller.
	Changing Direction = 0x03
	// Tables corresponds to an ABAP TABLES parameter. Appended to before
	// invoke and read after.
	Tables Direction = 0x07
)

func (d Direction) String() string {
	switch d {
	case Import:
		return "IMPORT"
	case Export:
		return "EXPORT"
	case Changing:
		return "CHANGING"
	case Tables:
		return "TABLES"
	}
	return fmt.Sprintf("RFC_DIRECTION(%d)", uint32(d))
}

// Readable reports whether a caller may read the parameter after invoke.
func (d Direction) Readable() bool {
	return d&Export == Export || d == Tables
}

// Writable reports whether a caller may write the parameter before invoke.
func (d Direction) Writable() bool {
	return d&Import == Import || d == Tables
}
