package interpreter

import (
	"math"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func applyBinaryOperator(node *ast.BinaryExpression, left, right runtime.Value) (runtime.Value, error) {
	switch node.Operator {
	case "+":
		if leftNum, ok := left.(runtime.NumberValue); ok {
			if rightNum, ok := right.(runtime.NumberValue); ok {
				return runtime.NumberValue{Val: leftNum.Val + rightNum.Val}, nil
			}
		}
		if leftStr, ok := left.(runtime.StringValue); ok {
			if rightStr, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: leftStr.Val + rightStr.Val}, nil
			}
		}
		return nil, runtimeError(TypeError, node, "Operands must be two numbers or two strings.")
	case "-", "*", "/":
		leftNum, rightNum, err := numberOperands(node, left, right)
		if err != nil {
			return nil, err
		}
		switch node.Operator {
		case "-":
			return runtime.NumberValue{Val: leftNum - rightNum}, nil
		case "*":
			return runtime.NumberValue{Val: leftNum * rightNum}, nil
		default:
			// IEEE 754 semantics: x/0 is Infinity (or NaN for 0/0),
			// never a runtime error.
			return runtime.NumberValue{Val: leftNum / rightNum}, nil
		}
	case ">", ">=", "<", "<=":
		leftNum, rightNum, err := numberOperands(node, left, right)
		if err != nil {
			return nil, err
		}
		switch node.Operator {
		case ">":
			return runtime.BoolValue{Val: leftNum > rightNum}, nil
		case ">=":
			return runtime.BoolValue{Val: leftNum >= rightNum}, nil
		case "<":
			return runtime.BoolValue{Val: leftNum < rightNum}, nil
		default:
			return runtime.BoolValue{Val: leftNum <= rightNum}, nil
		}
	case "==":
		return runtime.BoolValue{Val: valuesEqual(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !valuesEqual(left, right)}, nil
	default:
		return nil, runtimeError(TypeError, node, "Unsupported binary operator '%s'.", node.Operator)
	}
}

func numberOperands(node *ast.BinaryExpression, left, right runtime.Value) (float64, float64, error) {
	leftNum, leftOK := left.(runtime.NumberValue)
	rightNum, rightOK := right.(runtime.NumberValue)
	if !leftOK || !rightOK {
		return 0, 0, runtimeError(TypeError, node, "Operands must be numbers.")
	}
	return leftNum.Val, rightNum.Val, nil
}

// valuesEqual compares by kind first, then by underlying value. Unlike raw
// float64 comparison, NaN is equal to itself here.
func valuesEqual(left, right runtime.Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case runtime.NilValue:
		return true
	case runtime.BoolValue:
		return l.Val == right.(runtime.BoolValue).Val
	case runtime.NumberValue:
		r := right.(runtime.NumberValue)
		if math.IsNaN(l.Val) && math.IsNaN(r.Val) {
			return true
		}
		return l.Val == r.Val
	case runtime.StringValue:
		return l.Val == right.(runtime.StringValue).Val
	case *runtime.FunctionValue:
		// Functions compare by identity.
		r, ok := right.(*runtime.FunctionValue)
		return ok && l == r
	case runtime.NativeFunctionValue:
		r, ok := right.(runtime.NativeFunctionValue)
		return ok && l.Name == r.Name
	default:
		return false
	}
}

// isTruthy mirrors the language's boolean coercion: nil and false are
// falsy, everything else (including 0 and "") is truthy.
func isTruthy(value runtime.Value) bool {
	switch v := value.(type) {
	case runtime.NilValue:
		return false
	case runtime.BoolValue:
		return v.Val
	default:
		return true
	}
}
