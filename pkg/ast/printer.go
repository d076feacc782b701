package ast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a number the way the language prints it: no
// trailing ".0", no exponent for values that fit plain decimal notation.
// Infinities and NaN come from IEEE division results, never from source
// literals.
func FormatNumber(value float64) string {
	if math.IsInf(value, 1) {
		return "Infinity"
	}
	if math.IsInf(value, -1) {
		return "-Infinity"
	}
	if math.IsNaN(value) {
		return "NaN"
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Print renders a node as canonical source text. Parser output is
// parse-stable under Print: re-parsing the printed form and printing
// again yields the same text, because explicit parentheses survive as
// GroupingExpression nodes.
func Print(node Node) string {
	var p printer
	p.node(node)
	return p.sb.String()
}

type printer struct {
	sb strings.Builder
}

func (p *printer) node(node Node) {
	switch n := node.(type) {
	case *Program:
		for i, stmt := range n.Statements {
			if i > 0 {
				p.sb.WriteByte('\n')
			}
			p.node(stmt)
		}
	case *Identifier:
		p.sb.WriteString(n.Name)
	case *NumberLiteral:
		p.sb.WriteString(FormatNumber(n.Value))
	case *StringLiteral:
		p.sb.WriteByte('"')
		p.sb.WriteString(n.Value)
		p.sb.WriteByte('"')
	case *BooleanLiteral:
		p.sb.WriteString(strconv.FormatBool(n.Value))
	case *NilLiteral:
		p.sb.WriteString("nil")
	case *GroupingExpression:
		p.sb.WriteByte('(')
		p.node(n.Expression)
		p.sb.WriteByte(')')
	case *UnaryExpression:
		p.sb.WriteString(n.Operator)
		p.node(n.Operand)
	case *BinaryExpression:
		p.binary(n.Left, n.Operator, n.Right)
	case *LogicalExpression:
		p.binary(n.Left, n.Operator, n.Right)
	case *AssignmentExpression:
		p.sb.WriteString(n.Target.Name)
		p.sb.WriteString(" = ")
		p.node(n.Value)
	case *FunctionCall:
		p.node(n.Callee)
		p.sb.WriteByte('(')
		for i, arg := range n.Arguments {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.node(arg)
		}
		p.sb.WriteByte(')')
	case *ExpressionStatement:
		p.node(n.Expression)
		p.sb.WriteByte(';')
	case *PrintStatement:
		p.sb.WriteString("print ")
		p.node(n.Expression)
		p.sb.WriteByte(';')
	case *VariableDeclaration:
		p.sb.WriteString("var ")
		p.sb.WriteString(n.Name.Name)
		if n.Initializer != nil {
			p.sb.WriteString(" = ")
			p.node(n.Initializer)
		}
		p.sb.WriteByte(';')
	case *BlockStatement:
		p.sb.WriteByte('{')
		for _, stmt := range n.Body {
			p.sb.WriteByte(' ')
			p.node(stmt)
		}
		p.sb.WriteString(" }")
	case *IfStatement:
		p.sb.WriteString("if (")
		p.node(n.Condition)
		p.sb.WriteString(") ")
		p.node(n.Then)
		if n.Else != nil {
			p.sb.WriteString(" else ")
			p.node(n.Else)
		}
	case *WhileLoop:
		p.sb.WriteString("while (")
		p.node(n.Condition)
		p.sb.WriteString(") ")
		p.node(n.Body)
	case *FunctionDefinition:
		p.sb.WriteString("fun ")
		p.sb.WriteString(n.Name.Name)
		p.sb.WriteByte('(')
		for i, param := range n.Params {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.sb.WriteString(param.Name)
		}
		p.sb.WriteString(") ")
		p.node(n.Body)
	case *ReturnStatement:
		p.sb.WriteString("return")
		if n.Value != nil {
			p.sb.WriteByte(' ')
			p.node(n.Value)
		}
		p.sb.WriteByte(';')
	default:
		p.sb.WriteString(fmt.Sprintf("/* %s */", node.NodeType()))
	}
}

func (p *printer) binary(left Expression, operator string, right Expression) {
	p.node(left)
	p.sb.WriteByte(' ')
	p.sb.WriteString(operator)
	p.sb.WriteByte(' ')
	p.node(right)
}
