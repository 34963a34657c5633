package rfcruntime

import (
	"context"

	"github.com/wippyai/rfc-runtime/params"
	"github.com/wippyai/rfc-runtime/rfc"
	"github.com/wippyai/rfc-runtime/sdk"
)

// Aliases for the primary client surface, so simple programs need only the
// root import.

// Binding is the capability set a concrete RFC SDK binding provides.
type Binding = sdk.Binding

// Connection owns one RFC session with a SAP system.
type Connection = rfc.Connection

// FunctionCall is one bound invocation of a function module.
type FunctionCall = rfc.FunctionCall

// StructureView gives field-level access to structure parameters and rows.
type StructureView = rfc.StructureView

// TableView gives row-level access to table parameters.
type TableView = rfc.TableView

// Params is a set of connection parameters.
type Params = params.Params

// Connect opens a session with the given logon parameters over a binding.
func Connect(ctx context.Context, binding Binding, p Params) (*Connection, error) {
	return rfc.Connect(ctx, binding, p)
}
