// Package errors provides structured error types for the rfc-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, the RFC type involved, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
//		Path("IMPORT_STRUCT", "RFCINT4").
//		RfcType("INT").
//		Detail("cannot write a char value into an integer field").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncation(errors.PhaseEncode, path, 12, 8)
//	err := errors.FieldNotFound(errors.PhaseField, path, "NO_SUCH_FIELD")
//
// All errors implement the standard error interface and support errors.Is/As.
// ABAP exceptions raised by the invoked function module are carried by the
// dedicated AbapError type, which preserves the full backend message fields.
package errors
