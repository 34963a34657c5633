// Package rfc is the high-level API for calling ABAP function modules over
// an sdk.Binding.
//
// A Connection owns one session with a SAP system. Function module metadata
// is looked up through the connection and cached for the connection's
// lifetime. A FunctionCall represents one invocation: set import and changing
// parameters, append table rows, invoke, then read export and changing
// parameters. Structure and table parameters are accessed through
// StructureView and TableView, which convert field values lazily against the
// cached layouts.
//
// A Connection and everything derived from it belong to a single logical
// owner at a time; none of the types in this package are safe for concurrent
// use without external synchronization. Independent connections may be used
// concurrently.
package rfc
