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

package operators

import (
	"github.com/qinchao0525/neo4j/go/cypher/ast"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/operators/ops"
)

// Skip discards the first Count rows of its input. Count is an expression
// because queries may skip by a parameter; it evaluates to a constant per
// execution.
type Skip struct {
	id     ops.ID
	Source ops.Operator
	Count  ast.Expr
}

func (s *Skip) ID() ops.ID               { return s.id }
func (s *Skip) Inputs() []ops.Operator   { return []ops.Operator{s.Source} }
func (s *Skip) ShortDescription() string { return s.Count.String() }

// Limit stops its input after Count rows.
type Limit struct {
	id     ops.ID
	Source ops.Operator
	Count  ast.Expr
}

func (l *Limit) ID() ops.ID               { return l.id }
func (l *Limit) Inputs() []ops.Operator   { return []ops.Operator{l.Source} }
func (l *Limit) ShortDescription() string { return l.Count.String() }
