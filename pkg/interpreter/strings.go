package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// valueToString renders a value the way print displays it. Numbers use
// the canonical decimal form (no trailing ".0" for integers).
func valueToString(value runtime.Value) string {
	switch v := value.(type) {
	case runtime.NilValue:
		return "nil"
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NumberValue:
		return ast.FormatNumber(v.Val)
	case runtime.StringValue:
		return v.Val
	case *runtime.FunctionValue:
		return fmt.Sprintf("<fn %s>", v.Name())
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<native fn %s>", v.Name)
	default:
		return fmt.Sprintf("<%s>", value.Kind())
	}
}
