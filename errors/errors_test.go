package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseEncode,
				Kind:    KindTypeMismatch,
				Path:    []string{"ORDER", "HEADER", "AMOUNT"},
				RfcType: "BCD",
				Detail:  "cannot convert",
			},
			contains: []string{"[encode]", "type_mismatch", "ORDER.HEADER.AMOUNT", "BCD", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidFormat,
			},
			contains: []string{"[decode]", "invalid_format"},
		},
		{
			name: "error with rfc code",
			err: &Error{
				Phase:   PhaseInvoke,
				Kind:    KindCommunicationFailure,
				Detail:  "connection reset",
				RfcCode: "RFC_COMMUNICATION_FAILURE",
			},
			contains: []string{"[invoke]", "communication_failure", "connection reset", "RFC_COMMUNICATION_FAILURE"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseConnect,
				Kind:   KindNetworkFailure,
				Detail: "host unreachable",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[connect]", "network_failure", "host unreachable", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseEncode,
		Kind:  KindInvalidFormat,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseEncode,
		Kind:   KindTruncation,
		Path:   []string{"REQUTEXT"},
		Detail: "too long",
	}

	if !errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindTruncation}) {
		t.Error("Is should match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTruncation}) {
		t.Error("Is should not match a different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindOverflow}) {
		t.Error("Is should not match a different kind")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("Is should not match a non-Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("bad digit")
	err := New(PhaseDecode, KindInvalidFormat).
		Path("TABLE", "ROW", "PRICE").
		RfcType("BCD").
		RfcCode("RFC_CONVERSION_FAILURE").
		Value("12x4").
		Cause(cause).
		Detail("digit %q is not valid", 'x').
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindInvalidFormat {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 3 || err.Path[2] != "PRICE" {
		t.Errorf("unexpected path: %v", err.Path)
	}
	if err.RfcType != "BCD" || err.RfcCode != "RFC_CONVERSION_FAILURE" {
		t.Errorf("unexpected rfc fields: %s/%s", err.RfcType, err.RfcCode)
	}
	if err.Value != "12x4" {
		t.Errorf("unexpected value: %v", err.Value)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable through errors.Is")
	}
	if !strings.Contains(err.Detail, `'x'`) {
		t.Errorf("detail not formatted: %q", err.Detail)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"type mismatch", TypeMismatch(PhaseEncode, []string{"F"}, "int", "CHAR"), PhaseEncode, KindTypeMismatch},
		{"truncation", Truncation(PhaseEncode, []string{"F"}, 300, 255), PhaseEncode, KindTruncation},
		{"overflow", Overflow(PhaseEncode, []string{"F"}, int64(1) << 40, "INT"), PhaseEncode, KindOverflow},
		{"precision loss", PrecisionLoss(PhaseEncode, []string{"F"}, 4, 2), PhaseEncode, KindPrecisionLoss},
		{"invalid format", InvalidFormat(PhaseDecode, []string{"F"}, "bad"), PhaseDecode, KindInvalidFormat},
		{"field not found", FieldNotFound(PhaseField, []string{"S"}, "MISSING"), PhaseField, KindFieldNotFound},
		{"out of bounds", OutOfBounds(PhaseField, []string{"T"}, 5, 3), PhaseField, KindIndexOutOfBounds},
		{"unknown parameter", UnknownParameter("NOPE"), PhaseField, KindUnknownParameter},
		{"wrong direction read", WrongDirectionRead("REQUTEXT", "IMPORT"), PhaseField, KindWrongDirectionRead},
		{"wrong direction write", WrongDirectionWrite("ECHOTEXT", "EXPORT"), PhaseField, KindWrongDirectionWrite},
		{"function not found", FunctionNotFound("ZNOPE"), PhaseLookup, KindFunctionNotFound},
		{"invalid state", InvalidState("closed"), PhaseState, KindInvalidState},
		{"unsupported", Unsupported(PhaseEncode, "DECF34"), PhaseEncode, KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestAbapError(t *testing.T) {
	abap := &AbapError{
		Key:       "NOT_AUTHORIZED",
		Message:   "No authorization for company code 1000",
		MsgClass:  "F5",
		MsgType:   "E",
		MsgNumber: "083",
		MsgV1:     "1000",
	}

	msg := abap.Error()
	for _, s := range []string{"NOT_AUTHORIZED", "company code", "F5-083", "type E"} {
		if !strings.Contains(msg, s) {
			t.Errorf("message %q does not contain %q", msg, s)
		}
	}

	if vars := abap.Variables(); vars[0] != "1000" || vars[1] != "" {
		t.Errorf("unexpected variables: %v", vars)
	}
}

func TestAbapError_Is(t *testing.T) {
	abap := &AbapError{Key: "NOT_FOUND", Message: "no such order"}
	wrapped := New(PhaseInvoke, KindAbapException).Cause(abap).Build()

	if !errors.Is(wrapped, &AbapError{Key: "NOT_FOUND"}) {
		t.Error("wrapped ABAP error should match by key")
	}
	if !errors.Is(wrapped, &AbapError{}) {
		t.Error("empty key should match any ABAP error")
	}
	if errors.Is(wrapped, &AbapError{Key: "OTHER"}) {
		t.Error("different key should not match")
	}

	var target *AbapError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As did not find AbapError")
	}
	if target.Message != "no such order" {
		t.Errorf("unexpected message: %q", target.Message)
	}
}
