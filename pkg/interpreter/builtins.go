package interpreter

import (
	"time"

	"lox/interpreter-go/pkg/runtime"
)

func registerBuiltins(env *runtime.Environment) {
	env.Define("clock", runtime.NativeFunctionValue{
		Name:  "clock",
		Arity: 0,
		Impl: func(args []runtime.Value) (runtime.Value, error) {
			seconds := float64(time.Now().UnixNano()) / float64(time.Second)
			return runtime.NumberValue{Val: seconds}, nil
		},
	})
}
