package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		_, err := i.evaluateExpression(n.Expression, env)
		return err
	case *ast.PrintStatement:
		value, err := i.evaluateExpression(n.Expression, env)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, valueToString(value))
		return nil
	case *ast.VariableDeclaration:
		var value runtime.Value = runtime.NilValue{}
		if n.Initializer != nil {
			evaluated, err := i.evaluateExpression(n.Initializer, env)
			if err != nil {
				return err
			}
			value = evaluated
		}
		env.Define(n.Name.Name, value)
		return nil
	case *ast.BlockStatement:
		return i.executeBlock(n, runtime.NewEnvironment(env))
	case *ast.IfStatement:
		condition, err := i.evaluateExpression(n.Condition, env)
		if err != nil {
			return err
		}
		if isTruthy(condition) {
			return i.executeStatement(n.Then, env)
		}
		if n.Else != nil {
			return i.executeStatement(n.Else, env)
		}
		return nil
	case *ast.WhileLoop:
		for {
			condition, err := i.evaluateExpression(n.Condition, env)
			if err != nil {
				return err
			}
			if !isTruthy(condition) {
				return nil
			}
			if err := i.executeStatement(n.Body, env); err != nil {
				return err
			}
		}
	case *ast.FunctionDefinition:
		// The closure captures the defining environment itself, not a
		// snapshot, so later mutations remain visible to the function.
		env.Define(n.Name.Name, &runtime.FunctionValue{Declaration: n, Closure: env})
		return nil
	case *ast.ReturnStatement:
		var value runtime.Value = runtime.NilValue{}
		if n.Value != nil {
			evaluated, err := i.evaluateExpression(n.Value, env)
			if err != nil {
				return err
			}
			value = evaluated
		}
		return returnSignal{value: value}
	default:
		return runtimeError(TypeError, node, "Unsupported statement: %s.", node.NodeType())
	}
}

// executeBlock runs the block's statements in the given scope. The caller
// decides whether that scope is fresh (blocks, function bodies) or shared.
func (i *Interpreter) executeBlock(block *ast.BlockStatement, scope *runtime.Environment) error {
	for _, stmt := range block.Body {
		if err := i.executeStatement(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}
