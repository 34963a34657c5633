package rfc

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/rfc-runtime/conv"
	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/metadata"
	"github.com/wippyai/rfc-runtime/sdk"
)

type callState uint8

const (
	stateCreated callState = iota // no parameter written yet
	stateBound                    // at least one parameter written
	stateInvoked                  // invoke succeeded, results readable
	stateFailed                   // invoke or marshaling failed, call is dead
)

// FunctionCall is one bound invocation of a function module. Import and
// changing parameters are written before Invoke, export and changing
// parameters are read after it. Invoke may be called at most once; a failed
// call rejects all further access and a fresh call must be created to retry.
//
// The call owns its SDK data container and releases it in Close.
type FunctionCall struct {
	conn     *Connection
	desc     *metadata.FunctionDescription
	handle   sdk.DataHandle
	state    callState
	released bool
}

// Description returns the shared metadata of the bound function module.
func (fc *FunctionCall) Description() *metadata.FunctionDescription { return fc.desc }

// ensureLive verifies the call's container and owning connection are still
// usable at all.
func (fc *FunctionCall) ensureLive() error {
	if fc.released {
		return errors.InvalidState("function call has been closed")
	}
	if err := fc.conn.ensureOpen(); err != nil {
		return err
	}
	if fc.state == stateFailed {
		return errors.InvalidState("function call has failed; create a new call to retry")
	}
	return nil
}

func (fc *FunctionCall) parameter(name string) (metadata.ParameterDescription, error) {
	p, ok := fc.desc.Parameter(name)
	if !ok {
		return metadata.ParameterDescription{}, errors.UnknownParameter(name)
	}
	return p, nil
}

// Set writes a scalar import or changing parameter. Marshaling happens
// eagerly: the value is converted and pushed into the SDK container here,
// not at invoke time.
func (fc *FunctionCall) Set(name string, v conv.Value) error {
	if err := fc.ensureLive(); err != nil {
		return err
	}
	if fc.state == stateInvoked {
		return errors.InvalidState("parameters cannot be written after invoke")
	}
	p, err := fc.parameter(name)
	if err != nil {
		return err
	}
	if !p.Direction.Writable() {
		return errors.WrongDirectionWrite(name, p.Direction.String())
	}
	if p.Type.IsComplex() {
		return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Path(name).
			RfcType(p.Type.String()).
			Detail("use Structure or Table to access this parameter").
			Build()
	}

	raw, err := conv.ToRFC(p.Field(), v)
	if err != nil {
		return err
	}
	if info := fc.conn.binding.SetFieldBytes(fc.handle, name, raw); info != nil {
		return mapError(errors.PhaseField, info)
	}
	fc.state = stateBound
	fc.conn.log.Debug("parameter set", zap.String("function", fc.desc.Name()), zap.String("parameter", name))
	return nil
}

// Get reads a scalar export or changing parameter after a successful invoke.
func (fc *FunctionCall) Get(name string) (conv.Value, error) {
	if err := fc.ensureLive(); err != nil {
		return conv.Value{}, err
	}
	p, err := fc.parameter(name)
	if err != nil {
		return conv.Value{}, err
	}
	if !p.Direction.Readable() {
		return conv.Value{}, errors.WrongDirectionRead(name, p.Direction.String())
	}
	if fc.state != stateInvoked {
		return conv.Value{}, errors.InvalidState("results are not readable before invoke")
	}
	if p.Type.IsComplex() {
		return conv.Value{}, errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			Path(name).
			RfcType(p.Type.String()).
			Detail("use Structure or Table to access this parameter").
			Build()
	}

	raw, info := fc.conn.binding.GetFieldBytes(fc.handle, name)
	if info != nil {
		return conv.Value{}, mapError(errors.PhaseField, info)
	}
	return conv.FromRFC(p.Field(), raw)
}

// Structure returns a view over a structure parameter. The view stays bound
// to this call and becomes invalid with it.
func (fc *FunctionCall) Structure(name string) (*StructureView, error) {
	if err := fc.ensureLive(); err != nil {
		return nil, err
	}
	p, err := fc.parameter(name)
	if err != nil {
		return nil, err
	}
	if p.Type != metadata.TypeStructure {
		return nil, errors.TypeMismatch(errors.PhaseField, []string{name}, p.Type.String(), metadata.TypeStructure.String())
	}

	binding := fc.conn.binding
	handle := fc.handle
	return &StructureView{
		call:      fc,
		path:      name,
		layout:    p.Layout,
		direction: p.Direction,
		resolve: func() (sdk.DataHandle, *sdk.ErrorInfo) {
			return binding.GetStructure(handle, name)
		},
	}, nil
}

// Table returns a view over a tables parameter (or a table-typed parameter of
// any direction). The view stays bound to this call and becomes invalid with
// it.
func (fc *FunctionCall) Table(name string) (*TableView, error) {
	if err := fc.ensureLive(); err != nil {
		return nil, err
	}
	p, err := fc.parameter(name)
	if err != nil {
		return nil, err
	}
	if p.Type != metadata.TypeTable {
		return nil, errors.TypeMismatch(errors.PhaseField, []string{name}, p.Type.String(), metadata.TypeTable.String())
	}

	binding := fc.conn.binding
	handle := fc.handle
	return &TableView{
		call:      fc,
		path:      name,
		line:      p.Layout,
		direction: p.Direction,
		resolve: func() (sdk.TableHandle, *sdk.ErrorInfo) {
			return binding.GetTable(handle, name)
		},
	}, nil
}

// SetActive toggles whether the named parameter takes part in the
// invocation. Deactivating unused optional parameters saves transfer volume.
func (fc *FunctionCall) SetActive(name string, active bool) error {
	if err := fc.ensureLive(); err != nil {
		return err
	}
	if fc.state == stateInvoked {
		return errors.InvalidState("parameters cannot be toggled after invoke")
	}
	if _, err := fc.parameter(name); err != nil {
		return err
	}
	return mapError(errors.PhaseField, fc.conn.binding.SetParameterActive(fc.handle, name, active))
}

// Invoke executes the function module on the backend. It blocks until the
// SDK returns. On success the call transitions to its readable state; on
// failure it transitions to failed and cannot be reused. Invoking twice
// fails with an invalid-state error.
func (fc *FunctionCall) Invoke(ctx context.Context) error {
	if err := fc.ensureLive(); err != nil {
		return err
	}
	if fc.state == stateInvoked {
		return errors.InvalidState("invoke has already been called on this function call")
	}

	if info := fc.conn.binding.Invoke(ctx, fc.conn.handle, fc.handle); info != nil {
		fc.state = stateFailed
		err := mapError(errors.PhaseInvoke, info)
		fc.conn.log.Debug("invoke failed", zap.String("function", fc.desc.Name()), zap.Error(err))
		return err
	}

	fc.state = stateInvoked
	fc.conn.log.Debug("invoke succeeded", zap.String("function", fc.desc.Name()))
	return nil
}

// Close releases the call's SDK container. It is idempotent and must be
// called exactly once per created call; views derived from the call become
// invalid.
func (fc *FunctionCall) Close() error {
	if fc.released {
		return nil
	}
	fc.released = true
	return mapError(errors.PhaseClose, fc.conn.binding.DestroyFunction(fc.handle))
}
