/*
Copyright 2024 The Neo4j-Go Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package ast holds the expression nodes the planner works on.
// The parser and the semantic analyzer produce these; the planner only
// reads them. Every node carries the position it was parsed at, which is
// what keeps generated plans stable across compilations of the same text.
package ast

import "fmt"

// InputPosition is the location of a token in the original query text.
type InputPosition struct {
	Offset int
	Line   int
	Column int
}

type (
	// Expr is an expression that can appear in a projection binding or
	// in a sort/skip/limit directive.
	Expr interface {
		Pos() InputPosition
		String() string
	}

	// Variable is a reference to a named value in scope.
	Variable struct {
		Name     string
		Position InputPosition
	}

	// Property reads a property off the value of another expression,
	// as in `n.name`.
	Property struct {
		Subject  Expr
		PropKey  string
		Position InputPosition
	}

	// FunctionCall invokes a built-in or user function.
	FunctionCall struct {
		Name     string
		Args     []Expr
		Position InputPosition
	}

	// Add is the binary `+` operator.
	Add struct {
		LHS      Expr
		RHS      Expr
		Position InputPosition
	}

	// IntegerLiteral is a literal whole number.
	IntegerLiteral struct {
		Value    int64
		Position InputPosition
	}

	// StringLiteral is a literal string.
	StringLiteral struct {
		Value    string
		Position InputPosition
	}

	// Parameter is a query parameter, as in `$limit`.
	Parameter struct {
		Name     string
		Position InputPosition
	}
)

func (v *Variable) Pos() InputPosition       { return v.Position }
func (p *Property) Pos() InputPosition       { return p.Position }
func (f *FunctionCall) Pos() InputPosition   { return f.Position }
func (a *Add) Pos() InputPosition            { return a.Position }
func (l *IntegerLiteral) Pos() InputPosition { return l.Position }
func (l *StringLiteral) Pos() InputPosition  { return l.Position }
func (p *Parameter) Pos() InputPosition      { return p.Position }

func (v *Variable) String() string { return v.Name }

func (p *Property) String() string {
	return fmt.Sprintf("%s.%s", p.Subject, p.PropKey)
}

func (f *FunctionCall) String() string {
	args := ""
	for i, arg := range f.Args {
		if i > 0 {
			args += ", "
		}
		args += arg.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name, args)
}

func (a *Add) String() string {
	return fmt.Sprintf("%s + %s", a.LHS, a.RHS)
}

func (l *IntegerLiteral) String() string { return fmt.Sprintf("%d", l.Value) }
func (l *StringLiteral) String() string  { return fmt.Sprintf("%q", l.Value) }
func (p *Parameter) String() string      { return "$" + p.Name }

// NewVariable creates a variable reference at the given position.
func NewVariable(name string, pos InputPosition) *Variable {
	return &Variable{Name: name, Position: pos}
}

// NewIntegerLiteral creates an integer literal with no interesting position.
func NewIntegerLiteral(v int64) *IntegerLiteral {
	return &IntegerLiteral{Value: v}
}
