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
	"github.com/qinchao0525/neo4j/go/cypher/log"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/operators/ops"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/plancontext"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/props"
)

// The functions in this file are the only place plan nodes get built.
// Each one wraps the given source in a new node, records the new node's
// provided order, carries the source's solved goals forward where that is
// correct, and returns the updated context. The source is never touched.

// planRegularProjection ensures every requested binding is visible on the
// plan. Bindings whose names the plan already materializes are skipped,
// and if nothing is left to add, the source is returned as is - callers
// only ask for visibility, not for a new node.
func planRegularProjection(ctx *plancontext.PlanningContext, src ops.Operator, bindings []Binding) (ops.Operator, *plancontext.PlanningContext) {
	visible := visibleNames(src)
	var missing []Binding
	for _, b := range bindings {
		if _, found := visible[b.Name]; found {
			continue
		}
		visible[b.Name] = struct{}{}
		missing = append(missing, b)
	}
	if len(missing) == 0 {
		return src, ctx
	}

	id, ctx := ctx.AllocID()
	proj := &Projection{id: id, Source: src, Bindings: missing}
	// The projection only adds names, so whatever order the source rows
	// were in still holds.
	ctx = ctx.WithProvidedOrder(id, ctx.ProvidedOrder(src.ID()))
	if log.V(2) {
		log.Infof("plan %d: projected %s", id, formatBindings(missing))
	}
	return proj, ctx
}

// planSort wraps src in a sort node and marks the requirement the sort was
// built for as solved on it.
func planSort(ctx *plancontext.PlanningContext, src ops.Operator, orders []props.ColumnOrder, solved props.RequiredOrder) (ops.Operator, *plancontext.PlanningContext) {
	id, ctx := ctx.AllocID()
	sort := &Ordering{id: id, Source: src, Orders: orders}

	provided := make(props.ProvidedOrder, len(orders))
	for i, col := range orders {
		provided[i] = props.OrderedColumn{
			Expr:       ast.NewVariable(col.Name, ast.InputPosition{}),
			Descending: col.Descending,
		}
	}
	ctx = ctx.WithProvidedOrder(id, provided)
	ctx = ctx.WithSolvedOrder(id, solved)
	if log.V(2) {
		log.Infof("plan %d: sorted on (%s)", id, sort.ShortDescription())
	}
	return sort, ctx
}

// planSkip wraps src in a skip node. Dropping leading rows keeps both the
// row order and any solved order requirement intact.
func planSkip(ctx *plancontext.PlanningContext, src ops.Operator, count ast.Expr) (ops.Operator, *plancontext.PlanningContext) {
	id, ctx := ctx.AllocID()
	ctx = passThroughOrders(ctx, src.ID(), id)
	return &Skip{id: id, Source: src, Count: count}, ctx
}

// planLimit wraps src in a limit node, same pass-through rules as skip.
func planLimit(ctx *plancontext.PlanningContext, src ops.Operator, count ast.Expr) (ops.Operator, *plancontext.PlanningContext) {
	id, ctx := ctx.AllocID()
	ctx = passThroughOrders(ctx, src.ID(), id)
	return &Limit{id: id, Source: src, Count: count}, ctx
}

// markOrderSolved records that plan satisfies the requirement without
// building anything. Used when the incoming plan's provided order already
// covers what the consumer asked for.
func markOrderSolved(ctx *plancontext.PlanningContext, plan ops.Operator, required props.RequiredOrder) *plancontext.PlanningContext {
	return ctx.WithSolvedOrder(plan.ID(), required)
}

func passThroughOrders(ctx *plancontext.PlanningContext, from, to ops.ID) *plancontext.PlanningContext {
	if provided := ctx.ProvidedOrder(from); len(provided) > 0 {
		ctx = ctx.WithProvidedOrder(to, provided)
	}
	if solved, ok := ctx.SolvedOrder(from); ok {
		ctx = ctx.WithSolvedOrder(to, solved)
	}
	return ctx
}
