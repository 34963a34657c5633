// Package params builds and loads RFC connection parameters.
//
// Params is a set of name/value logon parameters (ASHOST, SYSNR, CLIENT,
// ...), rendered in deterministic key order when handed to the SDK.
// Unrecognized keys are passed through to the SDK untouched;
// validating them is the SDK's job. Profiles can be loaded from YAML files or
// the environment, mirroring the sapnwrfc.ini destination sections the C SDK
// reads.
package params
