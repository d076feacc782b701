package interpreter

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.GroupingExpression:
		return i.evaluateExpression(n.Expression, env)
	case *ast.Identifier:
		value, err := env.Get(n.Name)
		if err != nil {
			return nil, runtimeError(UndefinedVariable, n, "%s", err.Error())
		}
		return value, nil
	case *ast.AssignmentExpression:
		value, err := i.evaluateExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.AssignExisting(n.Target.Name, value) {
			return nil, runtimeError(UndefinedAssignmentTarget, n, "Undefined variable '%s'.", n.Target.Name)
		}
		return value, nil
	case *ast.UnaryExpression:
		return i.evaluateUnary(n, env)
	case *ast.LogicalExpression:
		left, err := i.evaluateExpression(n.Left, env)
		if err != nil {
			return nil, err
		}
		// Short-circuit: the right operand is only evaluated when the
		// left one does not already decide the result, and the chosen
		// operand is returned as-is rather than coerced to a boolean.
		if n.Operator == "or" {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return i.evaluateExpression(n.Right, env)
	case *ast.BinaryExpression:
		left, err := i.evaluateExpression(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := i.evaluateExpression(n.Right, env)
		if err != nil {
			return nil, err
		}
		return applyBinaryOperator(n, left, right)
	case *ast.FunctionCall:
		return i.evaluateCall(n, env)
	default:
		return nil, runtimeError(TypeError, node, "Unsupported expression: %s.", node.NodeType())
	}
}

func (i *Interpreter) evaluateUnary(node *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(node.Operand, env)
	if err != nil {
		return nil, err
	}
	switch node.Operator {
	case "-":
		number, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, runtimeError(TypeError, node, "Operand must be a number.")
		}
		return runtime.NumberValue{Val: -number.Val}, nil
	case "!":
		return runtime.BoolValue{Val: !isTruthy(operand)}, nil
	default:
		return nil, runtimeError(TypeError, node, "Unsupported unary operator '%s'.", node.Operator)
	}
}

func (i *Interpreter) evaluateCall(call *ast.FunctionCall, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpression(call.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		arg, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		if len(args) != fn.Arity() {
			return nil, runtimeError(ArityMismatch, call,
				"Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		localEnv := runtime.NewEnvironment(fn.Closure)
		for idx, param := range fn.Declaration.Params {
			localEnv.Define(param.Name, args[idx])
		}
		if err := i.executeBlock(fn.Declaration.Body, localEnv); err != nil {
			if ret, ok := err.(returnSignal); ok {
				return ret.value, nil
			}
			return nil, err
		}
		return runtime.NilValue{}, nil
	case runtime.NativeFunctionValue:
		if len(args) != fn.Arity {
			return nil, runtimeError(ArityMismatch, call,
				"Expected %d arguments but got %d.", fn.Arity, len(args))
		}
		result, err := fn.Impl(args)
		if err != nil {
			if runtimeErr, ok := err.(*RuntimeError); ok {
				return nil, runtimeErr
			}
			return nil, runtimeError(TypeError, call, "%s", err.Error())
		}
		return result, nil
	default:
		return nil, runtimeError(NotCallable, call, "Can only call functions.")
	}
}
