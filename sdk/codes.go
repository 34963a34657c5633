package sdk

import "fmt"

// ReturnCode is the result code reported by every SDK call.
// Values mirror the RFC_RC enumeration of the NW RFC SDK.
type ReturnCode uint32

const (
	RCOk                        ReturnCode = 0
	RCCommunicationFailure      ReturnCode = 1
	RCLogonFailure              ReturnCode = 2
	RCAbapRuntimeFailure        ReturnCode = 3
	RCAbapMessage               ReturnCode = 4
	RCAbapException             ReturnCode = 5
	RCClosed                    ReturnCode = 6
	RCCanceled                  ReturnCode = 7
	RCTimeout                   ReturnCode = 8
	RCMemoryInsufficient        ReturnCode = 9
	RCVersionMismatch           ReturnCode = 10
	RCInvalidProtocol           ReturnCode = 11
	RCSerializationFailure      ReturnCode = 12
	RCInvalidHandle             ReturnCode = 13
	RCRetry                     ReturnCode = 14
	RCExternalFailure           ReturnCode = 15
	RCExecuted                  ReturnCode = 16
	RCNotFound                  ReturnCode = 17
	RCNotSupported              ReturnCode = 18
	RCIllegalState              ReturnCode = 19
	RCInvalidParameter          ReturnCode = 20
	RCCodepageConversionFailure ReturnCode = 21
	RCConversionFailure         ReturnCode = 22
	RCBufferTooSmall            ReturnCode = 23
	RCTableMoveBOF              ReturnCode = 24
	RCTableMoveEOF              ReturnCode = 25
	RCStartSapguiFailure        ReturnCode = 26
	RCAbapClassException        ReturnCode = 27
	RCUnknownError              ReturnCode = 28
	RCAuthorizationFailure      ReturnCode = 29
	RCAuthenticationFailure     ReturnCode = 30
	RCCryptolibFailure          ReturnCode = 31
	RCIOFailure                 ReturnCode = 32
	RCLockingFailure            ReturnCode = 33
)

var rcNames = map[ReturnCode]string{
	RCOk:                        "RFC_OK",
	RCCommunicationFailure:      "RFC_COMMUNICATION_FAILURE",
	RCLogonFailure:              "RFC_LOGON_FAILURE",
	RCAbapRuntimeFailure:        "RFC_ABAP_RUNTIME_FAILURE",
	RCAbapMessage:               "RFC_ABAP_MESSAGE",
	RCAbapException:             "RFC_ABAP_EXCEPTION",
	RCClosed:                    "RFC_CLOSED",
	RCCanceled:                  "RFC_CANCELED",
	RCTimeout:                   "RFC_TIMEOUT",
	RCMemoryInsufficient:        "RFC_MEMORY_INSUFFICIENT",
	RCVersionMismatch:           "RFC_VERSION_MISMATCH",
	RCInvalidProtocol:           "RFC_INVALID_PROTOCOL",
	RCSerializationFailure:      "RFC_SERIALIZATION_FAILURE",
	RCInvalidHandle:             "RFC_INVALID_HANDLE",
	RCRetry:                     "RFC_RETRY",
	RCExternalFailure:           "RFC_EXTERNAL_FAILURE",
	RCExecuted:                  "RFC_EXECUTED",
	RCNotFound:                  "RFC_NOT_FOUND",
	RCNotSupported:              "RFC_NOT_SUPPORTED",
	RCIllegalState:              "RFC_ILLEGAL_STATE",
	RCInvalidParameter:          "RFC_INVALID_PARAMETER",
	RCCodepageConversionFailure: "RFC_CODEPAGE_CONVERSION_FAILURE",
	RCConversionFailure:         "RFC_CONVERSION_FAILURE",
	RCBufferTooSmall:            "RFC_BUFFER_TOO_SMALL",
	RCTableMoveBOF:              "RFC_TABLE_MOVE_BOF",
	RCTableMoveEOF:              "RFC_TABLE_MOVE_EOF",
	RCStartSapguiFailure:        "RFC_START_SAPGUI_FAILURE",
	RCAbapClassException:        "RFC_ABAP_CLASS_EXCEPTION",
	RCUnknownError:              "RFC_UNKNOWN_ERROR",
	RCAuthorizationFailure:      "RFC_AUTHORIZATION_FAILURE",
	RCAuthenticationFailure:     "RFC_AUTHENTICATION_FAILURE",
	RCCryptolibFailure:          "RFC_CRYPTOLIB_FAILURE",
	RCIOFailure:                 "RFC_IO_FAILURE",
	RCLockingFailure:            "RFC_LOCKING_FAILURE",
}

func (rc ReturnCode) String() string {
	if name, ok := rcNames[rc]; ok {
		return name
	}
	return fmt.Sprintf("RFC_RC(%d)", uint32(rc))
}

// ErrorGroup clusters error conditions by the layer they belong to.
// Values mirror the RFC_ERROR_GROUP enumeration of the NW RFC SDK.
type ErrorGroup uint32

const (
	GroupOK                            ErrorGroup = 0
	GroupAbapApplicationFailure        ErrorGroup = 1
	GroupAbapRuntimeFailure            ErrorGroup = 2
	GroupLogonFailure                  ErrorGroup = 3
	GroupCommunicationFailure          ErrorGroup = 4
	GroupExternalRuntimeFailure        ErrorGroup = 5
	GroupExternalApplicationFailure    ErrorGroup = 6
	GroupExternalAuthorizationFailure  ErrorGroup = 7
	GroupExternalAuthenticationFailure ErrorGroup = 8
	GroupCryptolibFailure              ErrorGroup = 9
	GroupLockingFailure                ErrorGroup = 10
)

var groupNames = map[ErrorGroup]string{
	GroupOK:                            "OK",
	GroupAbapApplicationFailure:        "ABAP_APPLICATION_FAILURE",
	GroupAbapRuntimeFailure:            "ABAP_RUNTIME_FAILURE",
	GroupLogonFailure:                  "LOGON_FAILURE",
	GroupCommunicationFailure:          "COMMUNICATION_FAILURE",
	GroupExternalRuntimeFailure:        "EXTERNAL_RUNTIME_FAILURE",
	GroupExternalApplicationFailure:    "EXTERNAL_APPLICATION_FAILURE",
	GroupExternalAuthorizationFailure:  "EXTERNAL_AUTHORIZATION_FAILURE",
	GroupExternalAuthenticationFailure: "EXTERNAL_AUTHENTICATION_FAILURE",
	GroupCryptolibFailure:              "CRYPTOLIB_FAILURE",
	GroupLockingFailure:                "LOCKING_FAILURE",
}

func (g ErrorGroup) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return fmt.Sprintf("RFC_ERROR_GROUP(%d)", uint32(g))
}
