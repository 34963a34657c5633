package rfc

import (
	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/sdk"
)

// mapError translates a raw SDK error record into the library's typed error
// taxonomy. ABAP exceptions and messages become AbapError wrapped under
// KindAbapException; everything else is classified by return code and error
// group, with the raw code preserved for diagnostics.
func mapError(phase errors.Phase, info *sdk.ErrorInfo) error {
	if info == nil {
		return nil
	}

	switch info.Code {
	case sdk.RCAbapException, sdk.RCAbapMessage, sdk.RCAbapClassException:
		abap := &errors.AbapError{
			Key:       info.Key,
			Message:   info.Message,
			MsgClass:  info.AbapMsgClass,
			MsgType:   info.AbapMsgType,
			MsgNumber: info.AbapMsgNumber,
			MsgV1:     info.AbapMsgV1,
			MsgV2:     info.AbapMsgV2,
			MsgV3:     info.AbapMsgV3,
			MsgV4:     info.AbapMsgV4,
		}
		return errors.New(phase, errors.KindAbapException).
			RfcCode(info.Code.String()).
			Detail(info.Message).
			Cause(abap).
			Build()
	}

	return errors.New(phase, kindFor(phase, info)).
		RfcCode(info.Code.String()).
		Detail(detailFor(info)).
		Build()
}

func kindFor(phase errors.Phase, info *sdk.ErrorInfo) errors.Kind {
	switch info.Code {
	case sdk.RCLogonFailure:
		return errors.KindLogonFailure
	case sdk.RCAuthenticationFailure, sdk.RCAuthorizationFailure:
		return errors.KindAuthenticationFailure
	case sdk.RCNotFound:
		if phase == errors.PhaseLookup {
			return errors.KindFunctionNotFound
		}
		return errors.KindFieldNotFound
	case sdk.RCCommunicationFailure, sdk.RCClosed, sdk.RCTimeout, sdk.RCIOFailure:
		if phase == errors.PhaseConnect {
			return errors.KindNetworkFailure
		}
		return errors.KindCommunicationFailure
	case sdk.RCInvalidParameter:
		if phase == errors.PhaseConnect {
			return errors.KindInvalidParameters
		}
		return errors.KindSystemFailure
	case sdk.RCIllegalState:
		return errors.KindInvalidState
	case sdk.RCNotSupported:
		return errors.KindUnsupported
	}

	switch info.Group {
	case sdk.GroupLogonFailure:
		return errors.KindLogonFailure
	case sdk.GroupCommunicationFailure:
		if phase == errors.PhaseConnect {
			return errors.KindNetworkFailure
		}
		return errors.KindCommunicationFailure
	case sdk.GroupExternalAuthenticationFailure, sdk.GroupExternalAuthorizationFailure:
		return errors.KindAuthenticationFailure
	}

	// Lookup failures that are not communication problems still surface as
	// such; the registry cannot distinguish deeper runtime causes.
	if phase == errors.PhaseLookup {
		return errors.KindCommunicationFailure
	}
	return errors.KindSystemFailure
}

func detailFor(info *sdk.ErrorInfo) string {
	if info.Message != "" {
		return info.Message
	}
	return info.Key
}
