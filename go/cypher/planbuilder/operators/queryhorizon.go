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
	"strings"

	"github.com/qinchao0525/neo4j/go/cypher/ast"
)

type (
	// QueryHorizon describes the shape one query segment must produce:
	// which output bindings, and the sort/skip/limit directives attached
	// to them. It is one of exactly three kinds - regular, distinct or
	// aggregating projection - and every consumer switches over all three,
	// since the kinds differ in which bindings are guaranteed to already
	// be materialized when sorting starts.
	QueryHorizon interface {
		queryHorizon()

		// Bindings returns the visible output bindings in declaration order.
		Bindings() []Binding

		// Shuffle returns the sort/skip/limit directives.
		Shuffle() QueryShuffle
	}

	// Binding maps an output name to its defining expression. Names within
	// one horizon are unique; semantic analysis enforces that before
	// planning starts.
	Binding struct {
		Name string
		Expr ast.Expr
	}

	// QueryShuffle is the ordered sort directives plus the optional skip
	// and limit count expressions of a horizon. A nil Skip or Limit means
	// the query did not ask for one.
	QueryShuffle struct {
		SortItems []SortItem
		Skip      ast.Expr
		Limit     ast.Expr
	}

	// RegularProjection projects expressions under output names. Its
	// bindings are lazy: a binding's expression may not have been
	// materialized by any operator yet when the shuffle is planned.
	RegularProjection struct {
		Items []Binding
		QueryShuffle
	}

	// DistinctProjection is a projection that also deduplicates rows.
	// Building the distinct operator materializes every binding, so sort
	// never needs to re-project them.
	DistinctProjection struct {
		Items []Binding
		QueryShuffle
	}

	// AggregatingProjection groups by the grouping expressions and
	// evaluates the aggregation expressions per group. Both maps together
	// form the visible bindings, and like distinct, building the
	// aggregation materializes all of them.
	AggregatingProjection struct {
		Grouping     []Binding
		Aggregations []Binding
		QueryShuffle
	}
)

func (*RegularProjection) queryHorizon()     {}
func (*DistinctProjection) queryHorizon()    {}
func (*AggregatingProjection) queryHorizon() {}

// Shuffle makes the embedded directives satisfy the QueryHorizon interface.
func (qs QueryShuffle) Shuffle() QueryShuffle { return qs }

func (p *RegularProjection) Bindings() []Binding  { return p.Items }
func (p *DistinctProjection) Bindings() []Binding { return p.Items }

func (p *AggregatingProjection) Bindings() []Binding {
	out := make([]Binding, 0, len(p.Grouping)+len(p.Aggregations))
	out = append(out, p.Grouping...)
	out = append(out, p.Aggregations...)
	return out
}

// bindingMap flattens a horizon's bindings into a name -> expression
// lookup table.
func bindingMap(horizon QueryHorizon) map[string]ast.Expr {
	bindings := horizon.Bindings()
	m := make(map[string]ast.Expr, len(bindings))
	for _, b := range bindings {
		m[b.Name] = b.Expr
	}
	return m
}

func formatBindings(bindings []Binding) string {
	var sb strings.Builder
	for i, b := range bindings {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.Expr.String())
		sb.WriteString(" AS ")
		sb.WriteString(b.Name)
	}
	return sb.String()
}
