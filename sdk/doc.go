// Package sdk defines the external capability surface consumed by the
// rfc-runtime library: opaque handle types, SDK return codes and error
// groups, the raw error record, and the Binding interface that a concrete
// NW RFC SDK binding implements.
//
// The library never talks to the C SDK directly; everything crosses this
// boundary. A production deployment supplies a cgo-backed Binding that links
// against the vendor SDK. The rfctest package supplies an in-memory Binding
// for tests. Building and linking the vendor SDK is out of scope here.
//
// All Binding calls are blocking. The contexts passed to the network-crossing
// operations are forwarded for tracing only; the SDK offers no cancellation
// beyond surfacing communication failures.
package sdk
