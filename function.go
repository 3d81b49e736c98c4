package loom

import "math"

// ParamType identifies the value kind flowing through a socket.
type ParamType uint8

const (
	// I64 is a signed 64-bit integer parameter.
	I64 ParamType = iota
	// F64 is a 64-bit float parameter.
	F64
	// F32 is a 32-bit float parameter.
	F32
	// UnknownType is the zero of information: no catalog function produces
	// or consumes it.
	UnknownType
)

// String implements fmt.Stringer.
func (t ParamType) String() string {
	switch t {
	case I64:
		return "i64"
	case F64:
		return "f64"
	case F32:
		return "f32"
	}
	return "unknown"
}

// IsUnknown reports whether the type carries no value kind.
func (t ParamType) IsUnknown() bool {
	return t == UnknownType
}

// Param is a runtime value tagged with its type. Construct with the
// ParamI64/ParamF64/ParamF32 functions; the zero Param is an i64 zero.
type Param struct {
	kind ParamType
	i64  int64
	f64  float64
	f32  float32
}

// ParamI64 wraps an integer value.
func ParamI64(v int64) Param {
	return Param{kind: I64, i64: v}
}

// ParamF64 wraps a double-precision value.
func ParamF64(v float64) Param {
	return Param{kind: F64, f64: v}
}

// ParamF32 wraps a single-precision value.
func ParamF32(v float32) Param {
	return Param{kind: F32, f32: v}
}

// Type returns the type tag of the value.
func (p Param) Type() ParamType {
	return p.kind
}

// IsI64 reports whether the param holds an i64.
func (p Param) IsI64() bool { return p.kind == I64 }

// IsF64 reports whether the param holds an f64.
func (p Param) IsF64() bool { return p.kind == F64 }

// IsF32 reports whether the param holds an f32.
func (p Param) IsF32() bool { return p.kind == F32 }

// AsI64 returns the held integer. Panics if the param is not an i64.
func (p Param) AsI64() int64 {
	if p.kind != I64 {
		panic("loom: param is not an i64")
	}
	return p.i64
}

// AsF64 returns the held double. Panics if the param is not an f64.
func (p Param) AsF64() float64 {
	if p.kind != F64 {
		panic("loom: param is not an f64")
	}
	return p.f64
}

// AsF32 returns the held float. Panics if the param is not an f32.
func (p Param) AsF32() float32 {
	if p.kind != F32 {
		panic("loom: param is not an f32")
	}
	return p.f32
}

// FunctionDefinition describes a node's operation: the parameter types it
// consumes on its input sockets and produces on its output sockets, plus the
// implementation.
type FunctionDefinition struct {
	Name    string
	Inputs  []ParamType
	Outputs []ParamType
	impl    func(args []Param) []Param
}

// Call evaluates the function. Panics when the argument count or any
// argument type disagrees with the definition, and when the implementation
// returns the wrong shape; the type system of the graph is supposed to make
// those impossible.
func (f FunctionDefinition) Call(args []Param) []Param {
	if len(args) != len(f.Inputs) {
		panic("loom: function called with wrong argument count")
	}
	for i, arg := range args {
		if arg.Type() != f.Inputs[i] {
			panic("loom: function called with wrong argument type")
		}
	}
	if f.impl == nil {
		return nil
	}
	out := f.impl(args)
	if len(out) != len(f.Outputs) {
		panic("loom: function returned wrong result count")
	}
	for i, res := range out {
		if res.Type() != f.Outputs[i] {
			panic("loom: function returned wrong result type")
		}
	}
	return out
}

// Functions is the built-in node catalog, in the order the palette window
// lists them.
var Functions = []FunctionDefinition{
	{
		Name:    "input_geo",
		Inputs:  []ParamType{},
		Outputs: []ParamType{F64},
		impl: func(args []Param) []Param {
			return []Param{ParamF64(0)}
		},
	},
	{
		Name:    "output_geo",
		Inputs:  []ParamType{F64},
		Outputs: []ParamType{},
		impl: func(args []Param) []Param {
			return nil
		},
	},
	{
		Name:    "boolean",
		Inputs:  []ParamType{F64, F64},
		Outputs: []ParamType{F64},
		impl: func(args []Param) []Param {
			return []Param{ParamF64(args[0].AsF64() + args[1].AsF64())}
		},
	},
	{
		Name:    "add",
		Inputs:  []ParamType{F64, F64},
		Outputs: []ParamType{F64},
		impl: func(args []Param) []Param {
			return []Param{ParamF64(args[0].AsF64() + args[1].AsF64())}
		},
	},
	{
		Name:    "multiply",
		Inputs:  []ParamType{F64, F64},
		Outputs: []ParamType{F64},
		impl: func(args []Param) []Param {
			return []Param{ParamF64(args[0].AsF64() * args[1].AsF64())}
		},
	},
	{
		Name:    "negate",
		Inputs:  []ParamType{F64},
		Outputs: []ParamType{F64},
		impl: func(args []Param) []Param {
			return []Param{ParamF64(-args[0].AsF64())}
		},
	},
	{
		Name:    "round",
		Inputs:  []ParamType{F64},
		Outputs: []ParamType{I64},
		impl: func(args []Param) []Param {
			return []Param{ParamI64(int64(math.Round(args[0].AsF64())))}
		},
	},
	{
		Name:    "lerp",
		Inputs:  []ParamType{F64, F64, F32},
		Outputs: []ParamType{F64},
		impl: func(args []Param) []Param {
			a, b := args[0].AsF64(), args[1].AsF64()
			t := float64(args[2].AsF32())
			return []Param{ParamF64(a + (b-a)*t)}
		},
	},
	{
		Name:    "duplicate",
		Inputs:  []ParamType{F64},
		Outputs: []ParamType{F64, F64},
		impl: func(args []Param) []Param {
			v := args[0].AsF64()
			return []Param{ParamF64(v), ParamF64(v)}
		},
	},
}

// FunctionByName looks up a catalog entry. ok is false if no function has
// that name.
func FunctionByName(name string) (def FunctionDefinition, ok bool) {
	for _, f := range Functions {
		if f.Name == name {
			return f, true
		}
	}
	return FunctionDefinition{}, false
}
