package rfc

import (
	"fmt"

	"github.com/wippyai/rfc-runtime/conv"
	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/metadata"
	"github.com/wippyai/rfc-runtime/sdk"
)

// StructureView gives field-level access to a structure parameter, a nested
// structure or a table row. Views hold no raw SDK handle: every access
// resolves the handle anew through the owning call, so a view never outlives
// the data it points into without noticing.
//
// Writable structures accept writes before invoke and allow reading those
// writes back; readable structures expose backend results after invoke.
type StructureView struct {
	call      *FunctionCall
	path      string
	layout    *metadata.TypeDescription
	direction metadata.Direction
	resolve   func() (sdk.DataHandle, *sdk.ErrorInfo)
}

// Name returns the dotted path of the view inside its function call.
func (sv *StructureView) Name() string { return sv.path }

// Layout returns the type description of the structure.
func (sv *StructureView) Layout() *metadata.TypeDescription { return sv.layout }

func (sv *StructureView) handle() (sdk.DataHandle, error) {
	if err := sv.call.ensureLive(); err != nil {
		return 0, err
	}
	h, info := sv.resolve()
	if info != nil {
		return 0, mapError(errors.PhaseField, info)
	}
	return h, nil
}

func (sv *StructureView) field(name string) (metadata.FieldDescription, error) {
	if sv.layout == nil {
		return metadata.FieldDescription{}, errors.New(errors.PhaseField, errors.KindSystemFailure).
			Path(sv.path).
			Detail("structure has no layout metadata").
			Build()
	}
	f, ok := sv.layout.Field(name)
	if !ok {
		return metadata.FieldDescription{}, errors.FieldNotFound(errors.PhaseField, []string{sv.path}, name)
	}
	return f, nil
}

func (sv *StructureView) checkReadable() error {
	if sv.call.state == stateInvoked {
		if !sv.direction.Readable() && !sv.direction.Writable() {
			return errors.WrongDirectionRead(sv.path, sv.direction.String())
		}
		return nil
	}
	// Before invoke only previously written data exists; export-only
	// parameters have nothing to read yet.
	if !sv.direction.Writable() {
		return errors.InvalidState("results are not readable before invoke")
	}
	return nil
}

func (sv *StructureView) checkWritable() error {
	if !sv.direction.Writable() {
		return errors.WrongDirectionWrite(sv.path, sv.direction.String())
	}
	if sv.call.state == stateInvoked {
		return errors.InvalidState("parameters cannot be written after invoke")
	}
	return nil
}

// Get reads a scalar field of the structure.
func (sv *StructureView) Get(name string) (conv.Value, error) {
	if err := sv.checkReadable(); err != nil {
		return conv.Value{}, err
	}
	f, err := sv.field(name)
	if err != nil {
		return conv.Value{}, err
	}
	if f.Type.IsComplex() {
		return conv.Value{}, errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
			Path(sv.path, name).
			RfcType(f.Type.String()).
			Detail("use Structure or Table to access this field").
			Build()
	}

	h, err := sv.handle()
	if err != nil {
		return conv.Value{}, err
	}
	raw, info := sv.call.conn.binding.GetFieldBytes(h, name)
	if info != nil {
		return conv.Value{}, mapError(errors.PhaseField, info)
	}
	f.Name = sv.path + "." + f.Name
	return conv.FromRFC(f, raw)
}

// Set writes a scalar field of the structure.
func (sv *StructureView) Set(name string, v conv.Value) error {
	if err := sv.checkWritable(); err != nil {
		return err
	}
	f, err := sv.field(name)
	if err != nil {
		return err
	}
	if f.Type.IsComplex() {
		return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Path(sv.path, name).
			RfcType(f.Type.String()).
			Detail("use Structure or Table to access this field").
			Build()
	}

	qualified := f
	qualified.Name = sv.path + "." + f.Name
	raw, err := conv.ToRFC(qualified, v)
	if err != nil {
		return err
	}

	h, err := sv.handle()
	if err != nil {
		return err
	}
	if info := sv.call.conn.binding.SetFieldBytes(h, name, raw); info != nil {
		return mapError(errors.PhaseField, info)
	}
	if sv.call.state == stateCreated {
		sv.call.state = stateBound
	}
	return nil
}

// Structure descends into a nested structure field.
func (sv *StructureView) Structure(name string) (*StructureView, error) {
	f, err := sv.field(name)
	if err != nil {
		return nil, err
	}
	if f.Type != metadata.TypeStructure {
		return nil, errors.TypeMismatch(errors.PhaseField, []string{sv.path, name}, f.Type.String(), metadata.TypeStructure.String())
	}

	parent := sv
	binding := sv.call.conn.binding
	return &StructureView{
		call:      sv.call,
		path:      sv.path + "." + name,
		layout:    f.Layout,
		direction: sv.direction,
		resolve: func() (sdk.DataHandle, *sdk.ErrorInfo) {
			h, info := parent.resolve()
			if info != nil {
				return 0, info
			}
			return binding.GetStructure(h, name)
		},
	}, nil
}

// Table descends into a table field nested inside the structure.
func (sv *StructureView) Table(name string) (*TableView, error) {
	f, err := sv.field(name)
	if err != nil {
		return nil, err
	}
	if f.Type != metadata.TypeTable {
		return nil, errors.TypeMismatch(errors.PhaseField, []string{sv.path, name}, f.Type.String(), metadata.TypeTable.String())
	}

	parent := sv
	binding := sv.call.conn.binding
	return &TableView{
		call:      sv.call,
		path:      sv.path + "." + name,
		line:      f.Layout,
		direction: sv.direction,
		resolve: func() (sdk.TableHandle, *sdk.ErrorInfo) {
			h, info := parent.resolve()
			if info != nil {
				return 0, info
			}
			return binding.GetTable(h, name)
		},
	}, nil
}

// TableView gives row-level access to a tables parameter or a nested table
// field. Rows preserve backend order: Row(i) always returns the i-th row as
// the backend delivered or as the caller appended it.
type TableView struct {
	call      *FunctionCall
	path      string
	line      *metadata.TypeDescription
	direction metadata.Direction
	resolve   func() (sdk.TableHandle, *sdk.ErrorInfo)
}

// Name returns the dotted path of the table inside its function call.
func (tv *TableView) Name() string { return tv.path }

// LineLayout returns the type description of one table row.
func (tv *TableView) LineLayout() *metadata.TypeDescription { return tv.line }

func (tv *TableView) handle() (sdk.TableHandle, error) {
	if err := tv.call.ensureLive(); err != nil {
		return 0, err
	}
	h, info := tv.resolve()
	if info != nil {
		return 0, mapError(errors.PhaseField, info)
	}
	return h, nil
}

// RowCount returns the current number of rows.
func (tv *TableView) RowCount() (int, error) {
	h, err := tv.handle()
	if err != nil {
		return 0, err
	}
	n, info := tv.call.conn.binding.GetRowCount(h)
	if info != nil {
		return 0, mapError(errors.PhaseField, info)
	}
	return n, nil
}

// AppendRow adds a row at the end of the table and returns a view over it.
// Rows can only be appended before invoke.
func (tv *TableView) AppendRow() (*StructureView, error) {
	if !tv.direction.Writable() {
		return nil, errors.WrongDirectionWrite(tv.path, tv.direction.String())
	}
	if tv.call.state == stateInvoked {
		return nil, errors.InvalidState("rows cannot be appended after invoke")
	}

	h, err := tv.handle()
	if err != nil {
		return nil, err
	}
	if _, info := tv.call.conn.binding.AppendNewRow(h); info != nil {
		return nil, mapError(errors.PhaseField, info)
	}
	n, info := tv.call.conn.binding.GetRowCount(h)
	if info != nil {
		return nil, mapError(errors.PhaseField, info)
	}
	if tv.call.state == stateCreated {
		tv.call.state = stateBound
	}
	return tv.rowView(n - 1), nil
}

// Row returns a view over the i-th row. The index is bounds checked against
// the current row count.
func (tv *TableView) Row(i int) (*StructureView, error) {
	n, err := tv.RowCount()
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, errors.OutOfBounds(errors.PhaseField, []string{tv.path}, i, n)
	}
	return tv.rowView(i), nil
}

func (tv *TableView) rowView(i int) *StructureView {
	parent := tv
	binding := tv.call.conn.binding
	return &StructureView{
		call:      tv.call,
		path:      fmt.Sprintf("%s[%d]", tv.path, i),
		layout:    tv.line,
		direction: tv.direction,
		resolve: func() (sdk.DataHandle, *sdk.ErrorInfo) {
			h, info := parent.resolve()
			if info != nil {
				return 0, info
			}
			return binding.GetRow(h, i)
		},
	}
}
