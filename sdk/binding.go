package sdk

import (
	"context"

	"github.com/wippyai/rfc-runtime/metadata"
)

// ConnectionHandle is the SDK's opaque reference to one open session.
// Handle 0 is reserved and always invalid.
type ConnectionHandle uint64

// DataHandle is the SDK's opaque reference to one data container: a function
// call, a structure instance, or a table row. Field access by name goes
// through a DataHandle. Handle 0 is reserved and always invalid.
type DataHandle uint64

// TableHandle is the SDK's opaque reference to one internal table.
// Handle 0 is reserved and always invalid.
type TableHandle uint64

// ConnectionParameter is one name/value pair passed to OpenConnection.
// Recognized keys are validated by the SDK, unrecognized ones are passed
// through to the backend.
type ConnectionParameter struct {
	Name  string
	Value string
}

// ErrorInfo is the raw error record filled by the SDK on every failing call.
// A nil *ErrorInfo means success.
type ErrorInfo struct {
	Code          ReturnCode
	Group         ErrorGroup
	Key           string
	Message       string
	AbapMsgClass  string
	AbapMsgType   string // 'E', 'A' or 'X'
	AbapMsgNumber string
	AbapMsgV1     string
	AbapMsgV2     string
	AbapMsgV3     string
	AbapMsgV4     string
}

// ConnectionAttributes are the read-only session attributes reported by the
// SDK after a successful connect.
type ConnectionAttributes struct {
	Destination     string // RFC destination name
	Host            string // own host name
	PartnerHost     string // application server host
	SysNumber       string // R/3 system number
	SysID           string // R/3 system name
	Client          string // logon client
	User            string // logon user
	Language        string // logon language
	Codepage        string // own codepage
	PartnerCodepage string // partner codepage
	Release         string // own library release
	PartnerRelease  string // partner system release
	KernelRelease   string // partner kernel release
	ConversationID  string // CPI-C conversation id
	ProgramName     string // partner program name
}

// Binding is the capability set a concrete SDK binding provides. All methods
// are blocking; none of them retries. Failing calls return a non-nil
// ErrorInfo; a nil ErrorInfo always means the operation succeeded.
//
// Handle lifetimes are owned by the caller: every handle obtained from
// OpenConnection or CreateFunction must be released exactly once through
// CloseConnection or DestroyFunction. Structure, table and row handles are
// owned by their enclosing function call and are released with it.
type Binding interface {
	// Init prepares the process-wide SDK environment. Called once before the
	// first connection is opened.
	Init() *ErrorInfo

	// Teardown releases the process-wide SDK environment. Called once after
	// the last connection referencing it has been closed.
	Teardown() *ErrorInfo

	// OpenConnection opens a session with the given logon parameters.
	OpenConnection(ctx context.Context, params []ConnectionParameter) (ConnectionHandle, *ErrorInfo)

	// CloseConnection releases a session handle.
	CloseConnection(conn ConnectionHandle) *ErrorInfo

	// Ping checks that the backend connection is still alive.
	Ping(ctx context.Context, conn ConnectionHandle) *ErrorInfo

	// ConnectionAttributes reports the session attributes of an open
	// connection.
	ConnectionAttributes(conn ConnectionHandle) (*ConnectionAttributes, *ErrorInfo)

	// DescribeFunction looks up the metadata of a function module in the
	// connected system's dictionary.
	DescribeFunction(ctx context.Context, conn ConnectionHandle, name string) (*metadata.FunctionDescription, *ErrorInfo)

	// CreateFunction allocates a data container for one invocation of the
	// named function module.
	CreateFunction(conn ConnectionHandle, name string) (DataHandle, *ErrorInfo)

	// DestroyFunction releases a function data container and every structure,
	// table and row handle derived from it.
	DestroyFunction(fn DataHandle) *ErrorInfo

	// SetParameterActive toggles whether a parameter takes part in the
	// invocation. All parameters start active.
	SetParameterActive(fn DataHandle, name string, active bool) *ErrorInfo

	// Invoke executes the function call over the given connection.
	Invoke(ctx context.Context, conn ConnectionHandle, fn DataHandle) *ErrorInfo

	// GetFieldBytes reads the raw memory region of a named field. For
	// variable-length fields the returned slice carries the full payload.
	GetFieldBytes(h DataHandle, name string) ([]byte, *ErrorInfo)

	// SetFieldBytes overwrites the raw memory region of a named field. For
	// fixed-width fields data must have exactly the declared region size.
	SetFieldBytes(h DataHandle, name string, data []byte) *ErrorInfo

	// GetStructure resolves the data container of a nested structure field.
	GetStructure(h DataHandle, name string) (DataHandle, *ErrorInfo)

	// GetTable resolves the handle of a table field.
	GetTable(h DataHandle, name string) (TableHandle, *ErrorInfo)

	// AppendNewRow appends an empty row after the current last row and
	// returns its data container.
	AppendNewRow(t TableHandle) (DataHandle, *ErrorInfo)

	// GetRowCount reports the number of rows in a table.
	GetRowCount(t TableHandle) (int, *ErrorInfo)

	// GetRow resolves the data container of the row at the given position
	// (0-based). The handle reflects the row's current base address; callers
	// must re-resolve after operations that may reallocate the table.
	GetRow(t TableHandle, index int) (DataHandle, *ErrorInfo)
}
