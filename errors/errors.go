package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConnect Phase = "connect" // opening a session
	PhaseLookup  Phase = "lookup"  // function metadata lookup
	PhaseEncode  Phase = "encode"  // Go to RFC
	PhaseDecode  Phase = "decode"  // RFC to Go
	PhaseField   Phase = "field"   // structure/table field access
	PhaseInvoke  Phase = "invoke"  // remote function execution
	PhaseState   Phase = "state"   // lifecycle violations
	PhaseClose   Phase = "close"   // session/handle teardown
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidParameters     Kind = "invalid_parameters"
	KindNetworkFailure        Kind = "network_failure"
	KindAuthenticationFailure Kind = "authentication_failure"
	KindLogonFailure          Kind = "logon_failure"
	KindFunctionNotFound      Kind = "function_not_found"
	KindCommunicationFailure  Kind = "communication_failure"
	KindOverflow              Kind = "overflow"
	KindPrecisionLoss         Kind = "precision_loss"
	KindTruncation            Kind = "truncation"
	KindInvalidFormat         Kind = "invalid_format"
	KindTypeMismatch          Kind = "type_mismatch"
	KindFieldNotFound         Kind = "field_not_found"
	KindIndexOutOfBounds      Kind = "index_out_of_bounds"
	KindUnknownParameter      Kind = "unknown_parameter"
	KindWrongDirectionRead    Kind = "wrong_direction_read"
	KindWrongDirectionWrite   Kind = "wrong_direction_write"
	KindAbapException         Kind = "abap_exception"
	KindSystemFailure         Kind = "system_failure"
	KindInvalidState          Kind = "invalid_state"
	KindUnsupported           Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	RfcType string
	RfcCode string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.RfcType != "" {
		b.WriteString(": RFC type ")
		b.WriteString(e.RfcType)
	}

	if e.Detail != "" {
		if e.RfcType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.RfcCode != "" {
		b.WriteString(" (rfc code ")
		b.WriteString(e.RfcCode)
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// RfcType sets the RFC type tag name
func (b *Builder) RfcType(t string) *Builder {
	b.err.RfcType = t
	return b
}

// RfcCode sets the raw SDK return code name
func (b *Builder) RfcCode(c string) *Builder {
	b.err.RfcCode = c
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, got, want string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Path:    path,
		RfcType: want,
		Detail:  fmt.Sprintf("value of kind %s does not match field type", got),
	}
}

// Truncation creates a truncation error for an oversized fixed-width write
func Truncation(phase Phase, path []string, got, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncation,
		Path:   path,
		Detail: fmt.Sprintf("value length %d exceeds field length %d", got, max),
		Value:  got,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindOverflow,
		Path:    path,
		RfcType: targetType,
		Detail:  fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:   value,
	}
}

// PrecisionLoss creates a precision loss error for decimal scale mismatches
func PrecisionLoss(phase Phase, path []string, scale, fieldDecimals int32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindPrecisionLoss,
		Path:   path,
		Detail: fmt.Sprintf("scale %d exceeds declared decimals %d", scale, fieldDecimals),
		Value:  scale,
	}
}

// InvalidFormat creates an invalid format error
func InvalidFormat(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidFormat,
		Path:   path,
		Detail: detail,
	}
}

// FieldNotFound creates a missing field error
func FieldNotFound(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldNotFound,
		Path:   path,
		Detail: fmt.Sprintf("field %q not found", fieldName),
	}
}

// OutOfBounds creates an index out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIndexOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("row index %d out of bounds (row count %d)", index, length),
		Value:  index,
	}
}

// UnknownParameter creates an unknown parameter error
func UnknownParameter(name string) *Error {
	return &Error{
		Phase:  PhaseField,
		Kind:   KindUnknownParameter,
		Detail: fmt.Sprintf("function has no parameter %q", name),
	}
}

// WrongDirectionRead creates a direction violation error for reads
func WrongDirectionRead(name, direction string) *Error {
	return &Error{
		Phase:  PhaseField,
		Kind:   KindWrongDirectionRead,
		Path:   []string{name},
		Detail: fmt.Sprintf("parameter %q (%s) is not readable here", name, direction),
	}
}

// WrongDirectionWrite creates a direction violation error for writes
func WrongDirectionWrite(name, direction string) *Error {
	return &Error{
		Phase:  PhaseField,
		Kind:   KindWrongDirectionWrite,
		Path:   []string{name},
		Detail: fmt.Sprintf("parameter %q (%s) is not writable", name, direction),
	}
}

// FunctionNotFound creates a lookup failure error
func FunctionNotFound(name string) *Error {
	return &Error{
		Phase:  PhaseLookup,
		Kind:   KindFunctionNotFound,
		Detail: fmt.Sprintf("function module %q not found", name),
	}
}

// InvalidState creates a lifecycle violation error
func InvalidState(detail string) *Error {
	return &Error{
		Phase:  PhaseState,
		Kind:   KindInvalidState,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// AbapError is returned when the invoked function module raises an ABAP
// exception or message. It is an expected, business-level outcome and is kept
// distinct from infrastructure failures such as communication errors.
//
// Key carries the ABAP exception key verbatim; the MsgV fields correspond to
// SY-MSGV1 through SY-MSGV4 on the backend.
type AbapError struct {
	Key       string
	Message   string
	MsgClass  string
	MsgType   string // 'E', 'A' or 'X'
	MsgNumber string
	MsgV1     string
	MsgV2     string
	MsgV3     string
	MsgV4     string
}

func (e *AbapError) Error() string {
	var b strings.Builder
	b.WriteString("abap exception ")
	b.WriteString(e.Key)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.MsgClass != "" {
		fmt.Fprintf(&b, " (%s-%s type %s)", e.MsgClass, e.MsgNumber, e.MsgType)
	}
	return b.String()
}

// Is reports whether target matches this error type.
// A target with an empty Key matches any ABAP exception.
func (e *AbapError) Is(target error) bool {
	if t, ok := target.(*AbapError); ok {
		return t.Key == "" || t.Key == e.Key
	}
	return false
}

// Variables returns the SY-MSGV1..4 message variables in order.
func (e *AbapError) Variables() [4]string {
	return [4]string{e.MsgV1, e.MsgV2, e.MsgV3, e.MsgV4}
}
