// Package rfctest provides an in-memory sdk.Binding for tests.
//
// The fake binding keeps function containers, structures and tables as plain
// byte regions in process memory and dispatches invocations to registered Go
// handlers instead of a SAP backend. Tests register function modules with
// Register, open connections through the public rfc API and exercise the full
// marshaling path without a C SDK or a live system.
//
// Error injection happens at two levels: binding-wide fields (OpenError,
// PingError, InvokeError) fail the corresponding operations, and handlers
// return *sdk.ErrorInfo records to simulate ABAP exceptions or system
// failures of a single function module.
package rfctest
