package rfctest

import (
	"context"
	"fmt"
	"sync"

	"github.com/wippyai/rfc-runtime/conv"
	"github.com/wippyai/rfc-runtime/metadata"
	"github.com/wippyai/rfc-runtime/sdk"
)

// Handler implements one function module of the fake backend. It runs during
// Invoke with full access to the call's containers and returns nil on success
// or an error record the way the SDK would.
type Handler func(inv *Invocation) *sdk.ErrorInfo

type function struct {
	desc    *metadata.FunctionDescription
	handler Handler
}

type slot struct {
	field     metadata.FieldDescription
	raw       []byte
	written   bool
	structure sdk.DataHandle
	table     sdk.TableHandle
}

type container struct {
	slots map[string]*slot
}

type table struct {
	line *metadata.TypeDescription
	rows []sdk.DataHandle
}

type callInfo struct {
	desc     *metadata.FunctionDescription
	conn     sdk.ConnectionHandle
	inactive map[string]bool
}

// Binding is an in-memory sdk.Binding. The zero value is not usable; create
// instances with NewBinding. All methods are safe for concurrent use.
type Binding struct {
	// OpenError fails every OpenConnection when set.
	OpenError *sdk.ErrorInfo
	// PingError fails every Ping when set.
	PingError *sdk.ErrorInfo
	// InvokeError fails every Invoke before the handler runs when set.
	InvokeError *sdk.ErrorInfo

	mu         sync.Mutex
	next       uint64
	active     bool
	inits      int
	teardowns  int
	funcs      map[string]function
	conns      map[sdk.ConnectionHandle][]sdk.ConnectionParameter
	containers map[sdk.DataHandle]*container
	tables     map[sdk.TableHandle]*table
	calls      map[sdk.DataHandle]*callInfo
}

var _ sdk.Binding = (*Binding)(nil)

// NewBinding returns an empty fake binding with no registered functions.
func NewBinding() *Binding {
	return &Binding{
		funcs:      make(map[string]function),
		conns:      make(map[sdk.ConnectionHandle][]sdk.ConnectionParameter),
		containers: make(map[sdk.DataHandle]*container),
		tables:     make(map[sdk.TableHandle]*table),
		calls:      make(map[sdk.DataHandle]*callInfo),
	}
}

// Register adds a function module to the fake backend. A nil handler makes
// the invocation a successful no-op, which is enough for tests that only
// exercise parameter marshaling.
func (b *Binding) Register(desc *metadata.FunctionDescription, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.funcs[desc.Name()] = function{desc: desc, handler: h}
}

// InitCount reports how often Init ran, for environment lifecycle tests.
func (b *Binding) InitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inits
}

// TeardownCount reports how often Teardown ran.
func (b *Binding) TeardownCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.teardowns
}

// OpenConnections reports the number of currently open sessions.
func (b *Binding) OpenConnections() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.conns)
}

func invalidParameter(format string, args ...any) *sdk.ErrorInfo {
	return &sdk.ErrorInfo{
		Code:    sdk.RCInvalidParameter,
		Group:   sdk.GroupExternalRuntimeFailure,
		Key:     "RFC_INVALID_PARAMETER",
		Message: fmt.Sprintf(format, args...),
	}
}

func invalidHandle(what string) *sdk.ErrorInfo {
	return &sdk.ErrorInfo{
		Code:    sdk.RCInvalidHandle,
		Group:   sdk.GroupExternalRuntimeFailure,
		Key:     "RFC_INVALID_HANDLE",
		Message: what + " handle is not valid",
	}
}

// CommunicationError builds the error record the SDK reports for an
// unreachable or dropped backend.
func CommunicationError(message string) *sdk.ErrorInfo {
	return &sdk.ErrorInfo{
		Code:    sdk.RCCommunicationFailure,
		Group:   sdk.GroupCommunicationFailure,
		Key:     "RFC_COMMUNICATION_FAILURE",
		Message: message,
	}
}

// AbapException builds the error record for an ABAP exception raised by a
// function module.
func AbapException(key, message string) *sdk.ErrorInfo {
	return &sdk.ErrorInfo{
		Code:    sdk.RCAbapException,
		Group:   sdk.GroupAbapApplicationFailure,
		Key:     key,
		Message: message,
	}
}

// AbapMessage builds the error record for an ABAP message of the given class,
// type and number with up to four message variables.
func AbapMessage(class, msgType, number string, vars ...string) *sdk.ErrorInfo {
	info := &sdk.ErrorInfo{
		Code:          sdk.RCAbapMessage,
		Group:         sdk.GroupAbapApplicationFailure,
		Key:           class,
		Message:       fmt.Sprintf("message %s(%s) type %s", number, class, msgType),
		AbapMsgClass:  class,
		AbapMsgType:   msgType,
		AbapMsgNumber: number,
	}
	fields := []*string{&info.AbapMsgV1, &info.AbapMsgV2, &info.AbapMsgV3, &info.AbapMsgV4}
	for i, v := range vars {
		if i >= len(fields) {
			break
		}
		*fields[i] = v
	}
	return info
}

// handle allocation and container construction run under b.mu.

func (b *Binding) newHandle() uint64 {
	b.next++
	return b.next
}

func (b *Binding) allocContainer(fields []metadata.FieldDescription) sdk.DataHandle {
	c := &container{slots: make(map[string]*slot, len(fields))}
	for _, f := range fields {
		s := &slot{field: f}
		switch f.Type {
		case metadata.TypeStructure:
			s.structure = b.allocContainer(layoutFields(f.Layout))
		case metadata.TypeTable:
			th := sdk.TableHandle(b.newHandle())
			b.tables[th] = &table{line: f.Layout}
			s.table = th
		default:
			s.raw = conv.Initial(f)
		}
		c.slots[f.Name] = s
	}
	h := sdk.DataHandle(b.newHandle())
	b.containers[h] = c
	return h
}

func layoutFields(t *metadata.TypeDescription) []metadata.FieldDescription {
	if t == nil {
		return nil
	}
	return t.Fields()
}

func (b *Binding) freeContainer(h sdk.DataHandle) {
	c, ok := b.containers[h]
	if !ok {
		return
	}
	for _, s := range c.slots {
		if s.structure != 0 {
			b.freeContainer(s.structure)
		}
		if s.table != 0 {
			if t, ok := b.tables[s.table]; ok {
				for _, row := range t.rows {
					b.freeContainer(row)
				}
				delete(b.tables, s.table)
			}
		}
	}
	delete(b.containers, h)
}

// Init implements sdk.Binding.
func (b *Binding) Init() *sdk.ErrorInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = true
	b.inits++
	return nil
}

// Teardown implements sdk.Binding.
func (b *Binding) Teardown() *sdk.ErrorInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = false
	b.teardowns++
	return nil
}

// OpenConnection implements sdk.Binding. A session needs either an
// application host or a message server host; everything else passes through.
func (b *Binding) OpenConnection(_ context.Context, params []sdk.ConnectionParameter) (sdk.ConnectionHandle, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active {
		return 0, invalidHandle("environment")
	}
	if b.OpenError != nil {
		return 0, b.OpenError
	}

	hasHost := false
	for _, p := range params {
		if p.Name == "ASHOST" || p.Name == "MSHOST" {
			hasHost = p.Value != ""
		}
	}
	if !hasHost {
		return 0, invalidParameter("parameter ASHOST or MSHOST is missing")
	}

	h := sdk.ConnectionHandle(b.newHandle())
	b.conns[h] = append([]sdk.ConnectionParameter(nil), params...)
	return h, nil
}

// CloseConnection implements sdk.Binding.
func (b *Binding) CloseConnection(conn sdk.ConnectionHandle) *sdk.ErrorInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.conns[conn]; !ok {
		return invalidHandle("connection")
	}
	delete(b.conns, conn)
	return nil
}

// Ping implements sdk.Binding.
func (b *Binding) Ping(_ context.Context, conn sdk.ConnectionHandle) *sdk.ErrorInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.conns[conn]; !ok {
		return invalidHandle("connection")
	}
	return b.PingError
}

// ConnectionAttributes implements sdk.Binding. Attributes are derived from
// the logon parameters the session was opened with.
func (b *Binding) ConnectionAttributes(conn sdk.ConnectionHandle) (*sdk.ConnectionAttributes, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	params, ok := b.conns[conn]
	if !ok {
		return nil, invalidHandle("connection")
	}

	attrs := &sdk.ConnectionAttributes{
		Host:            "localhost",
		Codepage:        "4103",
		PartnerCodepage: "4103",
		Release:         "758",
		PartnerRelease:  "758",
		KernelRelease:   "789",
	}
	for _, p := range params {
		switch p.Name {
		case "ASHOST", "MSHOST":
			attrs.PartnerHost = p.Value
		case "SYSNR":
			attrs.SysNumber = p.Value
		case "SYSID", "R3NAME":
			attrs.SysID = p.Value
		case "CLIENT":
			attrs.Client = p.Value
		case "USER":
			attrs.User = p.Value
		case "LANG":
			attrs.Language = p.Value
		case "DEST":
			attrs.Destination = p.Value
		}
	}
	return attrs, nil
}

// DescribeFunction implements sdk.Binding.
func (b *Binding) DescribeFunction(_ context.Context, conn sdk.ConnectionHandle, name string) (*metadata.FunctionDescription, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.conns[conn]; !ok {
		return nil, invalidHandle("connection")
	}
	fn, ok := b.funcs[name]
	if !ok {
		return nil, &sdk.ErrorInfo{
			Code:    sdk.RCNotFound,
			Group:   sdk.GroupAbapApplicationFailure,
			Key:     "FU_NOT_FOUND",
			Message: fmt.Sprintf("function module %s does not exist", name),
		}
	}
	return fn.desc, nil
}

// CreateFunction implements sdk.Binding.
func (b *Binding) CreateFunction(conn sdk.ConnectionHandle, name string) (sdk.DataHandle, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.conns[conn]; !ok {
		return 0, invalidHandle("connection")
	}
	fn, ok := b.funcs[name]
	if !ok {
		return 0, &sdk.ErrorInfo{
			Code:    sdk.RCNotFound,
			Group:   sdk.GroupAbapApplicationFailure,
			Key:     "FU_NOT_FOUND",
			Message: fmt.Sprintf("function module %s does not exist", name),
		}
	}

	fields := make([]metadata.FieldDescription, 0, len(fn.desc.Parameters()))
	for _, p := range fn.desc.Parameters() {
		fields = append(fields, p.Field())
	}
	h := b.allocContainer(fields)
	b.calls[h] = &callInfo{desc: fn.desc, conn: conn, inactive: make(map[string]bool)}
	return h, nil
}

// DestroyFunction implements sdk.Binding.
func (b *Binding) DestroyFunction(fn sdk.DataHandle) *sdk.ErrorInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.calls[fn]; !ok {
		return invalidHandle("function")
	}
	delete(b.calls, fn)
	b.freeContainer(fn)
	return nil
}

// SetParameterActive implements sdk.Binding.
func (b *Binding) SetParameterActive(fn sdk.DataHandle, name string, active bool) *sdk.ErrorInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	call, ok := b.calls[fn]
	if !ok {
		return invalidHandle("function")
	}
	if _, ok := call.desc.Parameter(name); !ok {
		return invalidParameter("function has no parameter %s", name)
	}
	if active {
		delete(call.inactive, name)
	} else {
		call.inactive[name] = true
	}
	return nil
}

// Invoke implements sdk.Binding. The registered handler runs synchronously on
// the calling goroutine.
func (b *Binding) Invoke(ctx context.Context, conn sdk.ConnectionHandle, fn sdk.DataHandle) *sdk.ErrorInfo {
	if err := ctx.Err(); err != nil {
		return &sdk.ErrorInfo{
			Code:    sdk.RCCanceled,
			Group:   sdk.GroupCommunicationFailure,
			Key:     "RFC_CANCELED",
			Message: err.Error(),
		}
	}

	b.mu.Lock()
	if _, ok := b.conns[conn]; !ok {
		b.mu.Unlock()
		return invalidHandle("connection")
	}
	call, ok := b.calls[fn]
	if !ok {
		b.mu.Unlock()
		return invalidHandle("function")
	}
	if b.InvokeError != nil {
		info := b.InvokeError
		b.mu.Unlock()
		return info
	}
	if info := b.checkMandatory(fn, call); info != nil {
		b.mu.Unlock()
		return info
	}
	handler := b.funcs[call.desc.Name()].handler
	inactive := make(map[string]bool, len(call.inactive))
	for k, v := range call.inactive {
		inactive[k] = v
	}
	b.mu.Unlock()

	if handler == nil {
		return nil
	}
	// The handler runs unlocked so it can use the Binding's data access
	// methods on the call's containers.
	return handler(&Invocation{binding: b, fn: fn, desc: call.desc, inactive: inactive})
}

// checkMandatory rejects invocations that left a required scalar import
// parameter at its initial value, the way the backend's parameter check
// would. Caller holds b.mu.
func (b *Binding) checkMandatory(fn sdk.DataHandle, call *callInfo) *sdk.ErrorInfo {
	c := b.containers[fn]
	if c == nil {
		return invalidHandle("function")
	}
	for _, p := range call.desc.Parameters() {
		if p.Direction != metadata.Import || p.Optional || p.Type.IsComplex() {
			continue
		}
		if call.inactive[p.Name] {
			continue
		}
		if s, ok := c.slots[p.Name]; ok && !s.written {
			return &sdk.ErrorInfo{
				Code:    sdk.RCAbapRuntimeFailure,
				Group:   sdk.GroupAbapRuntimeFailure,
				Key:     "PARAMETER_REQUIRED",
				Message: fmt.Sprintf("required parameter %s of %s was not supplied", p.Name, call.desc.Name()),
			}
		}
	}
	return nil
}

// GetFieldBytes implements sdk.Binding.
func (b *Binding) GetFieldBytes(h sdk.DataHandle, name string) ([]byte, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.containers[h]
	if !ok {
		return nil, invalidHandle("data")
	}
	s, ok := c.slots[name]
	if !ok {
		return nil, invalidParameter("container has no field %s", name)
	}
	if s.raw == nil {
		return nil, invalidParameter("field %s is not a scalar region", name)
	}
	return append([]byte(nil), s.raw...), nil
}

// SetFieldBytes implements sdk.Binding.
func (b *Binding) SetFieldBytes(h sdk.DataHandle, name string, data []byte) *sdk.ErrorInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.containers[h]
	if !ok {
		return invalidHandle("data")
	}
	s, ok := c.slots[name]
	if !ok {
		return invalidParameter("container has no field %s", name)
	}
	if s.raw == nil {
		return invalidParameter("field %s is not a scalar region", name)
	}
	if !s.field.Type.IsVariable() {
		if want := int(s.field.ByteLength()); len(data) != want {
			return invalidParameter("field %s needs %d bytes, got %d", name, want, len(data))
		}
	}
	s.raw = append([]byte(nil), data...)
	s.written = true
	return nil
}

// GetStructure implements sdk.Binding.
func (b *Binding) GetStructure(h sdk.DataHandle, name string) (sdk.DataHandle, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.containers[h]
	if !ok {
		return 0, invalidHandle("data")
	}
	s, ok := c.slots[name]
	if !ok {
		return 0, invalidParameter("container has no field %s", name)
	}
	if s.structure == 0 {
		return 0, invalidParameter("field %s is not a structure", name)
	}
	return s.structure, nil
}

// GetTable implements sdk.Binding.
func (b *Binding) GetTable(h sdk.DataHandle, name string) (sdk.TableHandle, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.containers[h]
	if !ok {
		return 0, invalidHandle("data")
	}
	s, ok := c.slots[name]
	if !ok {
		return 0, invalidParameter("container has no field %s", name)
	}
	if s.table == 0 {
		return 0, invalidParameter("field %s is not a table", name)
	}
	return s.table, nil
}

// AppendNewRow implements sdk.Binding.
func (b *Binding) AppendNewRow(t sdk.TableHandle) (sdk.DataHandle, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tb, ok := b.tables[t]
	if !ok {
		return 0, invalidHandle("table")
	}
	row := b.allocContainer(layoutFields(tb.line))
	tb.rows = append(tb.rows, row)
	return row, nil
}

// GetRowCount implements sdk.Binding.
func (b *Binding) GetRowCount(t sdk.TableHandle) (int, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tb, ok := b.tables[t]
	if !ok {
		return 0, invalidHandle("table")
	}
	return len(tb.rows), nil
}

// GetRow implements sdk.Binding.
func (b *Binding) GetRow(t sdk.TableHandle, index int) (sdk.DataHandle, *sdk.ErrorInfo) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tb, ok := b.tables[t]
	if !ok {
		return 0, invalidHandle("table")
	}
	if index < 0 || index >= len(tb.rows) {
		return 0, &sdk.ErrorInfo{
			Code:    sdk.RCTableMoveEOF,
			Group:   sdk.GroupExternalRuntimeFailure,
			Key:     "RFC_TABLE_MOVE_EOF",
			Message: fmt.Sprintf("row %d out of range", index),
		}
	}
	return tb.rows[index], nil
}

// Invocation is what a Handler receives: the function container under
// execution plus its metadata. Field access goes through the same byte
// regions the client side reads and writes.
type Invocation struct {
	binding  *Binding
	fn       sdk.DataHandle
	desc     *metadata.FunctionDescription
	inactive map[string]bool
}

// Description returns the metadata of the invoked function module.
func (inv *Invocation) Description() *metadata.FunctionDescription { return inv.desc }

// Handle returns the function container handle for direct Binding access.
func (inv *Invocation) Handle() sdk.DataHandle { return inv.fn }

// Binding returns the owning fake binding, for structure and table access.
func (inv *Invocation) Binding() *Binding { return inv.binding }

// Active reports whether the named parameter takes part in this invocation.
func (inv *Invocation) Active(name string) bool { return !inv.inactive[name] }

// Get decodes a scalar parameter of the invoked call.
func (inv *Invocation) Get(name string) (conv.Value, error) {
	p, ok := inv.desc.Parameter(name)
	if !ok {
		return conv.Value{}, fmt.Errorf("function %s has no parameter %s", inv.desc.Name(), name)
	}
	raw, info := inv.binding.GetFieldBytes(inv.fn, name)
	if info != nil {
		return conv.Value{}, fmt.Errorf("read %s: %s", name, info.Message)
	}
	return conv.FromRFC(p.Field(), raw)
}

// Set encodes a scalar parameter of the invoked call.
func (inv *Invocation) Set(name string, v conv.Value) error {
	p, ok := inv.desc.Parameter(name)
	if !ok {
		return fmt.Errorf("function %s has no parameter %s", inv.desc.Name(), name)
	}
	raw, err := conv.ToRFC(p.Field(), v)
	if err != nil {
		return err
	}
	if info := inv.binding.SetFieldBytes(inv.fn, name, raw); info != nil {
		return fmt.Errorf("write %s: %s", name, info.Message)
	}
	return nil
}

// ReadField decodes one field of an arbitrary container, used by handlers to
// inspect structure fields and table rows.
func (b *Binding) ReadField(h sdk.DataHandle, f metadata.FieldDescription) (conv.Value, error) {
	raw, info := b.GetFieldBytes(h, f.Name)
	if info != nil {
		return conv.Value{}, fmt.Errorf("read %s: %s", f.Name, info.Message)
	}
	return conv.FromRFC(f, raw)
}

// WriteField encodes one field of an arbitrary container, used by handlers to
// fill structure fields and table rows.
func (b *Binding) WriteField(h sdk.DataHandle, f metadata.FieldDescription, v conv.Value) error {
	raw, err := conv.ToRFC(f, v)
	if err != nil {
		return err
	}
	if info := b.SetFieldBytes(h, f.Name, raw); info != nil {
		return fmt.Errorf("write %s: %s", f.Name, info.Message)
	}
	return nil
}
