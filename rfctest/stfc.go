package rfctest

import (
	"github.com/wippyai/rfc-runtime/conv"
	"github.com/wippyai/rfc-runtime/metadata"
	"github.com/wippyai/rfc-runtime/sdk"
)

// Canned counterparts of the STFC_* test modules every SAP system ships.
// Registering them gives tests a backend that behaves like the real thing
// for the standard connectivity checks.

// RfcTestLayout is the line layout of the RFCTEST dictionary structure used
// by STFC_STRUCTURE.
func RfcTestLayout() *metadata.TypeDescription {
	return metadata.NewTypeDescription("RFCTEST", []metadata.FieldDescription{
		{Name: "RFCFLOAT", Type: metadata.TypeFloat},
		{Name: "RFCCHAR1", Type: metadata.TypeChar, Length: 1},
		{Name: "RFCINT2", Type: metadata.TypeInt2},
		{Name: "RFCINT1", Type: metadata.TypeInt1},
		{Name: "RFCCHAR4", Type: metadata.TypeChar, Length: 4},
		{Name: "RFCINT4", Type: metadata.TypeInt},
		{Name: "RFCHEX3", Type: metadata.TypeByte, Length: 3},
		{Name: "RFCCHAR2", Type: metadata.TypeChar, Length: 2},
		{Name: "RFCTIME", Type: metadata.TypeTime},
		{Name: "RFCDATE", Type: metadata.TypeDate},
		{Name: "RFCDATA1", Type: metadata.TypeChar, Length: 50},
		{Name: "RFCDATA2", Type: metadata.TypeChar, Length: 50},
	})
}

// RegisterConnectionEcho registers STFC_CONNECTION: REQUTEXT is echoed into
// ECHOTEXT and RESPTEXT reports the responding system.
func RegisterConnectionEcho(b *Binding) {
	desc := metadata.NewFunctionDescription("STFC_CONNECTION", []metadata.ParameterDescription{
		{Name: "REQUTEXT", Direction: metadata.Import, Type: metadata.TypeChar, Length: 255},
		{Name: "ECHOTEXT", Direction: metadata.Export, Type: metadata.TypeChar, Length: 255},
		{Name: "RESPTEXT", Direction: metadata.Export, Type: metadata.TypeChar, Length: 255},
	})

	b.Register(desc, func(inv *Invocation) *sdk.ErrorInfo {
		req, err := inv.Get("REQUTEXT")
		if err != nil {
			return invalidParameter("%s", err)
		}
		if err := inv.Set("ECHOTEXT", req); err != nil {
			return invalidParameter("%s", err)
		}
		if err := inv.Set("RESPTEXT", conv.Char("FAKE backend response")); err != nil {
			return invalidParameter("%s", err)
		}
		return nil
	})
}

// RegisterChanging registers STFC_CHANGING: RESULT reports the sum of
// START_VALUE and COUNTER, and COUNTER is incremented in place.
func RegisterChanging(b *Binding) {
	desc := metadata.NewFunctionDescription("STFC_CHANGING", []metadata.ParameterDescription{
		{Name: "START_VALUE", Direction: metadata.Import, Type: metadata.TypeInt},
		{Name: "COUNTER", Direction: metadata.Changing, Type: metadata.TypeInt},
		{Name: "RESULT", Direction: metadata.Export, Type: metadata.TypeInt},
	})

	b.Register(desc, func(inv *Invocation) *sdk.ErrorInfo {
		start, err := inv.Get("START_VALUE")
		if err != nil {
			return invalidParameter("%s", err)
		}
		counter, err := inv.Get("COUNTER")
		if err != nil {
			return invalidParameter("%s", err)
		}
		s, _ := start.AsInt()
		c, _ := counter.AsInt()
		if err := inv.Set("RESULT", conv.Int(s+c)); err != nil {
			return invalidParameter("%s", err)
		}
		if err := inv.Set("COUNTER", conv.Int(c+1)); err != nil {
			return invalidParameter("%s", err)
		}
		return nil
	})
}

// RegisterStructure registers STFC_STRUCTURE: IMPORTSTRUCT is echoed into
// ECHOSTRUCT and appended as a new row at the end of RFCTABLE, behind
// whatever rows the caller sent.
func RegisterStructure(b *Binding) {
	layout := RfcTestLayout()
	desc := metadata.NewFunctionDescription("STFC_STRUCTURE", []metadata.ParameterDescription{
		{Name: "IMPORTSTRUCT", Direction: metadata.Import, Type: metadata.TypeStructure, Layout: layout},
		{Name: "ECHOSTRUCT", Direction: metadata.Export, Type: metadata.TypeStructure, Layout: layout},
		{Name: "RESPTEXT", Direction: metadata.Export, Type: metadata.TypeChar, Length: 255},
		{Name: "RFCTABLE", Direction: metadata.Tables, Type: metadata.TypeTable, Layout: layout},
	})

	b.Register(desc, func(inv *Invocation) *sdk.ErrorInfo {
		bnd := inv.Binding()

		in, info := bnd.GetStructure(inv.Handle(), "IMPORTSTRUCT")
		if info != nil {
			return info
		}
		out, info := bnd.GetStructure(inv.Handle(), "ECHOSTRUCT")
		if info != nil {
			return info
		}
		tbl, info := bnd.GetTable(inv.Handle(), "RFCTABLE")
		if info != nil {
			return info
		}
		row, info := bnd.AppendNewRow(tbl)
		if info != nil {
			return info
		}

		for _, f := range layout.Fields() {
			raw, info := bnd.GetFieldBytes(in, f.Name)
			if info != nil {
				return info
			}
			if info := bnd.SetFieldBytes(out, f.Name, raw); info != nil {
				return info
			}
			if info := bnd.SetFieldBytes(row, f.Name, raw); info != nil {
				return info
			}
		}

		return mustSet(inv, "RESPTEXT", conv.Char("FAKE backend response"))
	})
}

func mustSet(inv *Invocation, name string, v conv.Value) *sdk.ErrorInfo {
	if err := inv.Set(name, v); err != nil {
		return invalidParameter("%s", err)
	}
	return nil
}
