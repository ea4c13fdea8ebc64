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

// Package props holds the ordering facts the planner attaches to plan
// nodes: the order a plan already provides, the order a consumer requires,
// and the physical column orders a sort node executes.
package props

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/qinchao0525/neo4j/go/cypher/ast"
)

type (
	// ColumnOrder is one physical sort instruction: a variable that must
	// already be visible on the plan, and a direction. Sort nodes carry a
	// sequence of these. They are only ever derived from sort items that
	// reference a single variable.
	ColumnOrder struct {
		Name       string
		Descending bool
	}

	// OrderedColumn is one step of a logical ordering: the expression rows
	// are ordered by, and the direction.
	OrderedColumn struct {
		Expr       ast.Expr
		Descending bool
	}

	// ProvidedOrder is the ordering a plan's output rows are already
	// guaranteed to be in. Empty means no guarantee.
	ProvidedOrder []OrderedColumn

	// RequiredOrder is the ordering a consumer of a plan needs. It is
	// expressed independently of how it gets satisfied. Empty means the
	// consumer does not care.
	RequiredOrder []OrderedColumn
)

// Asc appends an ascending column to the required order.
func (r RequiredOrder) Asc(e ast.Expr) RequiredOrder {
	return append(slices.Clone(r), OrderedColumn{Expr: e})
}

// Desc appends a descending column to the required order.
func (r RequiredOrder) Desc(e ast.Expr) RequiredOrder {
	return append(slices.Clone(r), OrderedColumn{Expr: e, Descending: true})
}

// Empty is true when the consumer requires no particular order.
func (r RequiredOrder) Empty() bool { return len(r) == 0 }

// SatisfiedBy reports whether rows already in the provided order meet this
// requirement. Each required column must be matched, in sequence and from
// the front, by the provided order; the provided order may keep going after
// the requirement is exhausted. The aliases mapping carries the current
// horizon's output name -> defining expression bindings, so that a
// requirement on an alias matches a provided order on the aliased
// expression, and the other way around.
//
// An empty requirement is never satisfied: this check exists to elide
// re-sorting, and with nothing required there is nothing to elide.
func (r RequiredOrder) SatisfiedBy(provided ProvidedOrder, aliases map[string]ast.Expr) bool {
	if r.Empty() || len(provided) < len(r) {
		return false
	}
	for i, want := range r {
		if !columnsMatch(want, provided[i], aliases) {
			return false
		}
	}
	return true
}

func columnsMatch(want, have OrderedColumn, aliases map[string]ast.Expr) bool {
	if want.Descending != have.Descending {
		return false
	}
	if ast.Equal(want.Expr, have.Expr) {
		return true
	}
	// One rename in either direction: the requirement names an alias the
	// horizon defines, or the provided order does.
	if v, ok := want.Expr.(*ast.Variable); ok {
		if def, found := aliases[v.Name]; found && ast.Equal(def, have.Expr) {
			return true
		}
	}
	if v, ok := have.Expr.(*ast.Variable); ok {
		if def, found := aliases[v.Name]; found && ast.Equal(def, want.Expr) {
			return true
		}
	}
	return false
}

// String formats orderings as `n.name ASC, x DESC` for diagnostics.
func (r RequiredOrder) String() string { return formatColumns(r) }

// String formats orderings as `n.name ASC, x DESC` for diagnostics.
func (p ProvidedOrder) String() string { return formatColumns(p) }

func formatColumns(cols []OrderedColumn) string {
	var sb strings.Builder
	for i, col := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col.Expr.String())
		if col.Descending {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	return sb.String()
}
