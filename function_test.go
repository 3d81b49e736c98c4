package loom

import "testing"

func TestParamAccessors(t *testing.T) {
	p := ParamI64(42)
	if !p.IsI64() || p.IsF64() || p.IsF32() {
		t.Error("tag predicates wrong for i64")
	}
	if p.Type() != I64 {
		t.Errorf("Type = %v, want i64", p.Type())
	}
	if p.AsI64() != 42 {
		t.Errorf("AsI64 = %d", p.AsI64())
	}

	f := ParamF64(2.5)
	if f.AsF64() != 2.5 {
		t.Errorf("AsF64 = %f", f.AsF64())
	}
	g := ParamF32(1.5)
	if g.AsF32() != 1.5 {
		t.Errorf("AsF32 = %f", g.AsF32())
	}
}

func TestParamWrongAccessorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AsF64 on an i64 param did not panic")
		}
	}()
	ParamI64(1).AsF64()
}

func TestParamTypeString(t *testing.T) {
	cases := map[ParamType]string{
		I64:         "i64",
		F64:         "f64",
		F32:         "f32",
		UnknownType: "unknown",
	}
	for pt, want := range cases {
		if got := pt.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", pt, got, want)
		}
	}
	if !UnknownType.IsUnknown() || F64.IsUnknown() {
		t.Error("IsUnknown wrong")
	}
}

func TestFunctionCall(t *testing.T) {
	add, ok := FunctionByName("add")
	if !ok {
		t.Fatal("add not in catalog")
	}
	out := add.Call([]Param{ParamF64(2), ParamF64(3)})
	if len(out) != 1 || out[0].AsF64() != 5 {
		t.Errorf("add(2,3) = %v", out)
	}

	round, _ := FunctionByName("round")
	out = round.Call([]Param{ParamF64(2.6)})
	if out[0].AsI64() != 3 {
		t.Errorf("round(2.6) = %d", out[0].AsI64())
	}

	lerp, _ := FunctionByName("lerp")
	out = lerp.Call([]Param{ParamF64(0), ParamF64(10), ParamF32(0.5)})
	if !approxEqual(out[0].AsF64(), 5, 1e-9) {
		t.Errorf("lerp(0,10,0.5) = %f", out[0].AsF64())
	}

	dup, _ := FunctionByName("duplicate")
	out = dup.Call([]Param{ParamF64(7)})
	if len(out) != 2 || out[0].AsF64() != 7 || out[1].AsF64() != 7 {
		t.Errorf("duplicate(7) = %v", out)
	}

	sink, _ := FunctionByName("output_geo")
	if out := sink.Call([]Param{ParamF64(1)}); len(out) != 0 {
		t.Errorf("output_geo returned %v", out)
	}
}

func TestFunctionCallArityMismatchPanics(t *testing.T) {
	add, _ := FunctionByName("add")
	defer func() {
		if recover() == nil {
			t.Error("wrong arity did not panic")
		}
	}()
	add.Call([]Param{ParamF64(1)})
}

func TestFunctionCallTypeMismatchPanics(t *testing.T) {
	add, _ := FunctionByName("add")
	defer func() {
		if recover() == nil {
			t.Error("wrong argument type did not panic")
		}
	}()
	add.Call([]Param{ParamF64(1), ParamI64(2)})
}

func TestFunctionByNameMissing(t *testing.T) {
	if _, ok := FunctionByName("no_such_function"); ok {
		t.Error("found a function that does not exist")
	}
}

func TestCatalogShapes(t *testing.T) {
	src, ok := FunctionByName("input_geo")
	if !ok || len(src.Inputs) != 0 || len(src.Outputs) != 1 {
		t.Errorf("input_geo shape = %v", src)
	}
	sink, ok := FunctionByName("output_geo")
	if !ok || len(sink.Inputs) != 1 || len(sink.Outputs) != 0 {
		t.Errorf("output_geo shape = %v", sink)
	}
	combine, ok := FunctionByName("boolean")
	if !ok || len(combine.Inputs) != 2 || len(combine.Outputs) != 1 {
		t.Errorf("boolean shape = %v", combine)
	}
}
