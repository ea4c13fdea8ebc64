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

package ast

// Walk calls visit on expr and, if visit returns true, on all of its
// children, depth first.
func Walk(visit func(Expr) bool, expr Expr) {
	if expr == nil || !visit(expr) {
		return
	}
	switch e := expr.(type) {
	case *Variable, *IntegerLiteral, *StringLiteral, *Parameter:
	case *Property:
		Walk(visit, e.Subject)
	case *FunctionCall:
		for _, arg := range e.Args {
			Walk(visit, arg)
		}
	case *Add:
		Walk(visit, e.LHS)
		Walk(visit, e.RHS)
	}
}

// Dependencies returns the names of the variables expr reads, in the
// order they first appear, without duplicates.
func Dependencies(expr Expr) []string {
	var deps []string
	seen := map[string]bool{}
	Walk(func(e Expr) bool {
		if v, ok := e.(*Variable); ok && !seen[v.Name] {
			seen[v.Name] = true
			deps = append(deps, v.Name)
		}
		return true
	}, expr)
	return deps
}

// Equal reports whether two expressions are structurally identical.
// Positions are ignored - two parses of the same text are equal.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch ae := a.(type) {
	case *Variable:
		be, ok := b.(*Variable)
		return ok && ae.Name == be.Name
	case *Property:
		be, ok := b.(*Property)
		return ok && ae.PropKey == be.PropKey && Equal(ae.Subject, be.Subject)
	case *FunctionCall:
		be, ok := b.(*FunctionCall)
		if !ok || ae.Name != be.Name || len(ae.Args) != len(be.Args) {
			return false
		}
		for i := range ae.Args {
			if !Equal(ae.Args[i], be.Args[i]) {
				return false
			}
		}
		return true
	case *Add:
		be, ok := b.(*Add)
		return ok && Equal(ae.LHS, be.LHS) && Equal(ae.RHS, be.RHS)
	case *IntegerLiteral:
		be, ok := b.(*IntegerLiteral)
		return ok && ae.Value == be.Value
	case *StringLiteral:
		be, ok := b.(*StringLiteral)
		return ok && ae.Value == be.Value
	case *Parameter:
		be, ok := b.(*Parameter)
		return ok && ae.Name == be.Name
	}
	return false
}
