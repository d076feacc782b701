package runtime

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Functions & closures
//-----------------------------------------------------------------------------

// FunctionValue pairs a function declaration with the environment that
// was active when it was declared. The closure is shared by pointer:
// every function declared in the same scope aliases the same frame, so
// mutations seen through one closure are seen through all of them.
type FunctionValue struct {
	Declaration *ast.FunctionDefinition
	Closure     *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// Arity reports the declared parameter count.
func (v *FunctionValue) Arity() int {
	return len(v.Declaration.Params)
}

// Name reports the declared function name.
func (v *FunctionValue) Name() string {
	if v.Declaration == nil || v.Declaration.Name == nil {
		return "<anonymous>"
	}
	return v.Declaration.Name.Name
}

// NativeFunc is the host-side implementation of a built-in.
type NativeFunc func(args []Value) (Value, error)

type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// IsCallable reports whether the value can be the target of a call.
func IsCallable(v Value) bool {
	switch v.(type) {
	case *FunctionValue, NativeFunctionValue:
		return true
	default:
		return false
	}
}
