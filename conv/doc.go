// Package conv implements bidirectional conversion between Go values and the
// raw memory representation of RFC fields.
//
// Value is a closed tagged union over the RFC scalar variants (the RFC type
// system is fixed by the protocol, so the union is deliberately not an open
// interface). ToRFC and FromRFC convert between a Value and the byte region
// of one field, driven by the field's metadata description. Structures and
// tables are never converted here; they are handled by the view types in the
// rfc package, which delegate back to this converter per field.
//
// Conversion policy: no conversion is ever silently lossy. Oversized
// character, digit and byte writes fail with a truncation error instead of
// being cut, decimal values whose scale exceeds the field's declared decimal
// count fail with a precision loss error instead of being rounded, and
// integers that do not fit the field width fail with an overflow error.
//
// Character-like fields travel as SAP_UC units, i.e. UTF-16LE code units,
// two bytes per declared character.
package conv
