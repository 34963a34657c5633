package metadata

// FieldDescription describes one field of a structure or table line type.
type FieldDescription struct {
	// Name of the field as declared in the data dictionary.
	Name string
	// Type tag of the field.
	Type Type
	// Length is the declared logical length: characters for CHAR/NUM,
	// bytes for BCD/BYTE. Zero for types with an implied length.
	Length uint32
	// Decimals is the declared decimal count for BCD fields.
	Decimals uint32
	// Layout is the nested line/field layout for structure and table fields,
	// nil otherwise.
	Layout *TypeDescription
}

// ByteLength returns the size of the field's raw memory region in bytes.
// Character-like fields occupy two bytes per declared character (SAP_UC
// units); variable-length types have no fixed region and return 0.
func (f FieldDescription) ByteLength() uint32 {
	switch f.Type {
	case TypeChar, TypeNum:
		return f.Length * 2
	case TypeDate:
		return 16
	case TypeTime:
		return 12
	case TypeBCD, TypeByte, TypeXMLData:
		return f.Length
	case TypeFloat, TypeInt8, TypeDecF16, TypeUTCLong, TypeUTCSecond, TypeUTCMinute:
		return 8
	case TypeInt, TypeDTDay, TypeDTWeek, TypeDTMonth, TypeTSecond:
		return 4
	case TypeInt2, TypeTMinute, TypeCDay:
		return 2
	case TypeInt1:
		return 1
	case TypeDecF34:
		return 16
	}
	return 0
}

// TypeDescription is the immutable field layout of a structure or of a
// table's line type. Field lookup by name is resolved once at construction.
type TypeDescription struct {
	name   string
	fields []FieldDescription
	index  map[string]int
}

// NewTypeDescription builds a layout from an ordered field sequence.
func NewTypeDescription(name string, fields []FieldDescription) *TypeDescription {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	return &TypeDescription{name: name, fields: fields, index: index}
}

// Name returns the dictionary name of the type.
func (t *TypeDescription) Name() string { return t.name }

// Fields returns the ordered field layout. Callers must not modify it.
func (t *TypeDescription) Fields() []FieldDescription { return t.fields }

// FieldCount returns the number of fields.
func (t *TypeDescription) FieldCount() int { return len(t.fields) }

// Field returns the description of the named field.
func (t *TypeDescription) Field(name string) (FieldDescription, bool) {
	i, ok := t.index[name]
	if !ok {
		return FieldDescription{}, false
	}
	return t.fields[i], true
}

// ParameterDescription describes one parameter of a function module.
type ParameterDescription struct {
	// Name of the parameter.
	Name string
	// Direction of the parameter (import/export/changing/tables).
	Direction Direction
	// Type tag of the parameter.
	Type Type
	// Length is the declared logical length, as for FieldDescription.
	Length uint32
	// Decimals is the declared decimal count for BCD parameters.
	Decimals uint32
	// Optional marks parameters that need not be supplied before invoke.
	Optional bool
	// DefaultValue is the dictionary default, if any.
	DefaultValue string
	// Description is the short parameter text from the dictionary.
	Description string
	// Layout is the structure/line layout for structure and table
	// parameters, nil otherwise.
	Layout *TypeDescription
}

// Field returns a field view of the parameter, used when converting the
// parameter's own memory region.
func (p ParameterDescription) Field() FieldDescription {
	return FieldDescription{
		Name:     p.Name,
		Type:     p.Type,
		Length:   p.Length,
		Decimals: p.Decimals,
		Layout:   p.Layout,
	}
}

// FunctionDescription is the immutable metadata of one function module:
// its name and ordered parameter sequence. It is cached per connection and
// shared read-only across all function calls built from it.
type FunctionDescription struct {
	name   string
	params []ParameterDescription
	index  map[string]int
}

// NewFunctionDescription builds a description from an ordered parameter list.
func NewFunctionDescription(name string, params []ParameterDescription) *FunctionDescription {
	index := make(map[string]int, len(params))
	for i, p := range params {
		index[p.Name] = i
	}
	return &FunctionDescription{name: name, params: params, index: index}
}

// Name returns the function module name.
func (d *FunctionDescription) Name() string { return d.name }

// Parameters returns all parameters in declaration order.
// Callers must not modify the returned slice.
func (d *FunctionDescription) Parameters() []ParameterDescription { return d.params }

// ParametersByDirection returns the parameters with the given direction,
// in declaration order.
func (d *FunctionDescription) ParametersByDirection(dir Direction) []ParameterDescription {
	var out []ParameterDescription
	for _, p := range d.params {
		if p.Direction == dir {
			out = append(out, p)
		}
	}
	return out
}

// Parameter returns the description of the named parameter.
func (d *FunctionDescription) Parameter(name string) (ParameterDescription, bool) {
	i, ok := d.index[name]
	if !ok {
		return ParameterDescription{}, false
	}
	return d.params[i], true
}
