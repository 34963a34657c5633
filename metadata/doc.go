// Package metadata models RFC function module metadata: type tags, parameter
// directions, and the field/parameter/function descriptions fetched from a SAP
// system's dictionary.
//
// Descriptions are immutable once constructed and are shared read-only between
// the per-connection descriptor registry and every function call built from
// them. Numeric tag values mirror the SAP NetWeaver RFC SDK enumerations so a
// cgo binding can pass them through unchanged.
package metadata
