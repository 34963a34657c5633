package metadata

import "testing"

func testFunctionDesc() *FunctionDescription {
	line := NewTypeDescription("LINE", []FieldDescription{
		{Name: "KEY", Type: TypeNum, Length: 10},
		{Name: "TEXT", Type: TypeChar, Length: 40},
	})
	return NewFunctionDescription("Z_TEST", []ParameterDescription{
		{Name: "IV_ID", Direction: Import, Type: TypeNum, Length: 10},
		{Name: "EV_NAME", Direction: Export, Type: TypeChar, Length: 40},
		{Name: "CV_COUNT", Direction: Changing, Type: TypeInt},
		{Name: "T_ITEMS", Direction: Tables, Type: TypeTable, Layout: line},
	})
}

func TestFunctionDescription_Parameter(t *testing.T) {
	desc := testFunctionDesc()

	if desc.Name() != "Z_TEST" {
		t.Errorf("Name() = %q", desc.Name())
	}

	p, ok := desc.Parameter("EV_NAME")
	if !ok {
		t.Fatal("EV_NAME not found")
	}
	if p.Direction != Export || p.Type != TypeChar || p.Length != 40 {
		t.Errorf("unexpected parameter: %+v", p)
	}

	if _, ok := desc.Parameter("MISSING"); ok {
		t.Error("lookup of missing parameter should fail")
	}
}

func TestFunctionDescription_ParametersByDirection(t *testing.T) {
	desc := testFunctionDesc()

	imports := desc.ParametersByDirection(Import)
	if len(imports) != 1 || imports[0].Name != "IV_ID" {
		t.Errorf("unexpected imports: %v", imports)
	}
	tables := desc.ParametersByDirection(Tables)
	if len(tables) != 1 || tables[0].Name != "T_ITEMS" {
		t.Errorf("unexpected tables: %v", tables)
	}
	if got := desc.ParametersByDirection(Export); len(got) != 1 {
		t.Errorf("unexpected exports: %v", got)
	}
}

func TestTypeDescription_Field(t *testing.T) {
	line := NewTypeDescription("LINE", []FieldDescription{
		{Name: "A", Type: TypeChar, Length: 1},
		{Name: "B", Type: TypeInt},
	})

	if line.FieldCount() != 2 {
		t.Errorf("FieldCount() = %d", line.FieldCount())
	}
	f, ok := line.Field("B")
	if !ok || f.Type != TypeInt {
		t.Errorf("Field(B) = %+v, %v", f, ok)
	}
	if _, ok := line.Field("C"); ok {
		t.Error("lookup of missing field should fail")
	}

	// Order of Fields matches declaration order.
	fields := line.Fields()
	if fields[0].Name != "A" || fields[1].Name != "B" {
		t.Errorf("unexpected field order: %v", fields)
	}
}

func TestParameterDescription_Field(t *testing.T) {
	p := ParameterDescription{
		Name:     "IV_PRICE",
		Direction: Import,
		Type:     TypeBCD,
		Length:   7,
		Decimals: 2,
	}
	f := p.Field()
	if f.Name != "IV_PRICE" || f.Type != TypeBCD || f.Length != 7 || f.Decimals != 2 {
		t.Errorf("unexpected field view: %+v", f)
	}
}
