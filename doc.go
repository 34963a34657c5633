// Package rfcruntime provides a typed Go abstraction over the SAP NetWeaver
// RFC protocol.
//
// The library wraps a raw RFC SDK binding behind safe, lifecycle-aware
// handles: connections, function calls and structure/table views. Values
// cross the SDK boundary through an explicit converter that never coerces
// silently; anything that would lose data fails with a structured error.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	rfcruntime/          Root package re-exporting the primary client surface
//	├── rfc/             High-level API: connections, function calls, views
//	├── sdk/             The raw binding contract and SDK enumerations
//	├── metadata/        Function, parameter and field descriptions
//	├── conv/            Value conversion between Go values and RFC regions
//	├── params/          Connection parameters, destination files, trace levels
//	├── errors/          Structured error types for debugging
//	└── rfctest/         In-memory binding fake for tests
//
// # Quick Start
//
// Open a connection and call a function module:
//
//	p := params.Params{}.
//	    Set(params.KeyAppHost, "sap.example.com").
//	    Set(params.KeySysNr, "00").
//	    Set(params.KeyClient, "100").
//	    Set(params.KeyUser, "DEVELOPER").
//	    Set(params.KeyPassword, os.Getenv("SAP_PASSWD"))
//
//	conn, err := rfc.Connect(ctx, binding, p)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	call, err := conn.Call(ctx, "STFC_CONNECTION")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer call.Close()
//
//	call.Set("REQUTEXT", conv.Char("hello"))
//	if err := call.Invoke(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	echo, _ := call.Get("ECHOTEXT")
//
// # Error Handling
//
// Every failure is an *errors.Error carrying the processing phase, an error
// kind and the field path. ABAP exceptions raised by the called function
// module additionally wrap an *errors.AbapError that is reachable through
// errors.As.
//
// # Thread Safety
//
// Connection is safe for concurrent use. FunctionCall and the views derived
// from it are NOT thread-safe and should be used by a single goroutine, or
// access must be synchronized.
//
// # Handle Model
//
// Views never cache raw SDK handles. Every field access re-resolves the
// underlying container through the owning call, so operations that
// reallocate backend memory cannot leave a view pointing at stale data.
package rfcruntime
