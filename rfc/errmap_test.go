package rfc

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/sdk"
)

func TestMapError_Nil(t *testing.T) {
	if err := mapError(errors.PhaseConnect, nil); err != nil {
		t.Errorf("nil ErrorInfo should map to nil, got %v", err)
	}
}

func TestMapError_Classification(t *testing.T) {
	tests := []struct {
		name  string
		phase errors.Phase
		info  *sdk.ErrorInfo
		kind  errors.Kind
	}{
		{
			name:  "logon failure",
			phase: errors.PhaseConnect,
			info:  &sdk.ErrorInfo{Code: sdk.RCLogonFailure, Group: sdk.GroupLogonFailure},
			kind:  errors.KindLogonFailure,
		},
		{
			name:  "authentication failure",
			phase: errors.PhaseConnect,
			info:  &sdk.ErrorInfo{Code: sdk.RCAuthenticationFailure},
			kind:  errors.KindAuthenticationFailure,
		},
		{
			name:  "authorization failure",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCAuthorizationFailure},
			kind:  errors.KindAuthenticationFailure,
		},
		{
			name:  "communication failure during connect",
			phase: errors.PhaseConnect,
			info:  &sdk.ErrorInfo{Code: sdk.RCCommunicationFailure, Group: sdk.GroupCommunicationFailure},
			kind:  errors.KindNetworkFailure,
		},
		{
			name:  "communication failure during invoke",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCCommunicationFailure, Group: sdk.GroupCommunicationFailure},
			kind:  errors.KindCommunicationFailure,
		},
		{
			name:  "timeout during invoke",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCTimeout},
			kind:  errors.KindCommunicationFailure,
		},
		{
			name:  "function not found",
			phase: errors.PhaseLookup,
			info:  &sdk.ErrorInfo{Code: sdk.RCNotFound, Key: "FU_NOT_FOUND"},
			kind:  errors.KindFunctionNotFound,
		},
		{
			name:  "field not found",
			phase: errors.PhaseField,
			info:  &sdk.ErrorInfo{Code: sdk.RCNotFound},
			kind:  errors.KindFieldNotFound,
		},
		{
			name:  "invalid parameter during connect",
			phase: errors.PhaseConnect,
			info:  &sdk.ErrorInfo{Code: sdk.RCInvalidParameter},
			kind:  errors.KindInvalidParameters,
		},
		{
			name:  "invalid parameter elsewhere",
			phase: errors.PhaseField,
			info:  &sdk.ErrorInfo{Code: sdk.RCInvalidParameter},
			kind:  errors.KindSystemFailure,
		},
		{
			name:  "illegal state",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCIllegalState},
			kind:  errors.KindInvalidState,
		},
		{
			name:  "not supported",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCNotSupported},
			kind:  errors.KindUnsupported,
		},
		{
			name:  "group fallback logon",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCUnknownError, Group: sdk.GroupLogonFailure},
			kind:  errors.KindLogonFailure,
		},
		{
			name:  "group fallback authentication",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCUnknownError, Group: sdk.GroupExternalAuthenticationFailure},
			kind:  errors.KindAuthenticationFailure,
		},
		{
			name:  "default during invoke",
			phase: errors.PhaseInvoke,
			info:  &sdk.ErrorInfo{Code: sdk.RCAbapRuntimeFailure, Group: sdk.GroupAbapRuntimeFailure},
			kind:  errors.KindSystemFailure,
		},
		{
			name:  "default during lookup",
			phase: errors.PhaseLookup,
			info:  &sdk.ErrorInfo{Code: sdk.RCUnknownError},
			kind:  errors.KindCommunicationFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapError(tt.phase, tt.info)
			if !stderrors.Is(err, &errors.Error{Phase: tt.phase, Kind: tt.kind}) {
				t.Errorf("mapError = %v, want %s/%s", err, tt.phase, tt.kind)
			}
		})
	}
}

func TestMapError_AbapException(t *testing.T) {
	info := &sdk.ErrorInfo{
		Code:          sdk.RCAbapMessage,
		Group:         sdk.GroupAbapApplicationFailure,
		Key:           "F5",
		Message:       "Posting period closed",
		AbapMsgClass:  "F5",
		AbapMsgType:   "E",
		AbapMsgNumber: "201",
		AbapMsgV1:     "2024/01",
	}

	err := mapError(errors.PhaseInvoke, info)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseInvoke, Kind: errors.KindAbapException}) {
		t.Fatalf("mapError = %v, want abap_exception", err)
	}

	var abap *errors.AbapError
	if !stderrors.As(err, &abap) {
		t.Fatal("AbapError not reachable through errors.As")
	}
	if abap.Key != "F5" || abap.MsgNumber != "201" || abap.MsgV1 != "2024/01" {
		t.Errorf("unexpected abap error: %+v", abap)
	}
}

func TestMapError_PreservesRawCode(t *testing.T) {
	err := mapError(errors.PhaseInvoke, &sdk.ErrorInfo{Code: sdk.RCTimeout, Message: "timeout"})

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("not an *errors.Error")
	}
	if e.RfcCode != "RFC_TIMEOUT" {
		t.Errorf("RfcCode = %q, want RFC_TIMEOUT", e.RfcCode)
	}
	if e.Detail != "timeout" {
		t.Errorf("Detail = %q", e.Detail)
	}
}
