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
	"github.com/cockroachdb/errors"

	"github.com/qinchao0525/neo4j/go/cypher/ast"
	"github.com/qinchao0525/neo4j/go/cypher/log"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/operators/ops"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/plancontext"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/props"
)

// PlanSortSkipAndLimit appends whatever the horizon's shuffle demands on
// top of the incoming plan: projections for sort expressions that are not
// plain variables yet, a sort, a skip and a limit. When the incoming
// plan's provided order already covers the required order, no sort is
// built and the plan is only marked as having the requirement solved, so
// later stages do not sort again.
//
// The incoming plan is never modified; the result wraps it. The returned
// context replaces the one passed in.
func PlanSortSkipAndLimit(
	ctx *plancontext.PlanningContext,
	plan ops.Operator,
	horizon QueryHorizon,
	required props.RequiredOrder,
) (ops.Operator, *plancontext.PlanningContext, error) {
	shuffle := horizon.Shuffle()
	if len(shuffle.SortItems) == 0 {
		plan, ctx = applySkipAndLimit(ctx, plan, shuffle)
		return plan, ctx, nil
	}

	if required.SatisfiedBy(ctx.ProvidedOrder(plan.ID()), bindingMap(horizon)) {
		if log.V(2) {
			log.Infof("plan %d already provides (%s), skipping sort", plan.ID(), required)
		}
		// Mark the requirement the consumer actually asked for as solved,
		// not the horizon's own copy of it - downstream solved-tracking
		// compares against the former.
		ctx = markOrderSolved(ctx, plan, required)
		plan, ctx = applySkipAndLimit(ctx, plan, shuffle)
		return plan, ctx, nil
	}

	aliasBindings, _, _, err := classifySortItems(shuffle.SortItems, horizon)
	if err != nil {
		return nil, nil, err
	}
	freshBindings, sortItems := introduceFreshNames(ctx, shuffle.SortItems)

	// Two projection steps: first the bindings sort aliases depend on,
	// then the fresh names, whose expressions may reference names the
	// first step introduced.
	plan, ctx = planRegularProjection(ctx, plan, aliasBindings)
	plan, ctx = planRegularProjection(ctx, plan, freshBindings)

	orders := make([]props.ColumnOrder, 0, len(sortItems))
	for _, item := range sortItems {
		order, err := columnOrder(item)
		if err != nil {
			return nil, nil, err
		}
		orders = append(orders, order)
	}

	plan, ctx = planSort(ctx, plan, orders, required)
	plan, ctx = applySkipAndLimit(ctx, plan, shuffle)
	return plan, ctx, nil
}

// classifySortItems splits the sort directives into the ones already
// referencing a defined alias and the ones that need fresh materialization,
// and collects the bindings that must be projected before sorting.
//
// A variable that is a key in the horizon's bindings is aliased; if the
// horizon is a regular projection the defining expression may not be
// materialized yet, so a fusion binding is recorded for it. Distinct and
// aggregating projections materialize all their bindings when they are
// built, so nothing needs recording. A variable the horizon does not bind
// is also aliased: an earlier query segment materialized it, which
// semantic analysis has already verified. Everything else is unaliased,
// but any horizon-bound variables inside it are recorded the same way, so
// a sort expression can reuse a projected sub-value.
func classifySortItems(items []SortItem, horizon QueryHorizon) (fusion []Binding, aliased, unaliased []SortItem, err error) {
	var fuseBindings bool
	switch horizon.(type) {
	case *RegularProjection:
		fuseBindings = true
	case *DistinctProjection, *AggregatingProjection:
		// materialized when the operator is built
	default:
		return nil, nil, nil, errors.AssertionFailedf("unknown query horizon type %T", horizon)
	}

	bindings := bindingMap(horizon)
	recorded := map[string]bool{}
	record := func(name string, expr ast.Expr) {
		if !fuseBindings || recorded[name] {
			return
		}
		recorded[name] = true
		fusion = append(fusion, Binding{Name: name, Expr: expr})
	}

	for _, item := range items {
		expr := item.Expression()
		if v, ok := expr.(*ast.Variable); ok {
			if def, found := bindings[v.Name]; found {
				record(v.Name, def)
			}
			aliased = append(aliased, item)
			continue
		}
		unaliased = append(unaliased, item)
		for _, dep := range ast.Dependencies(expr) {
			if def, found := bindings[dep]; found {
				record(dep, def)
			}
		}
	}
	return fusion, aliased, unaliased, nil
}

// introduceFreshNames rewrites every unaliased sort item, in place in the
// sequence, into a reference to a fresh variable, and returns the bindings
// that materialize those variables. The fresh name is a function of the
// expression's source position alone, so recompiling the same query text
// reproduces the same plan. Two items over the same expression text at
// different positions keep separate names; positions are never merged.
func introduceFreshNames(ctx *plancontext.PlanningContext, items []SortItem) (fusion []Binding, rewritten []SortItem) {
	rewritten = make([]SortItem, 0, len(items))
	for _, item := range items {
		expr := item.Expression()
		if _, isVar := expr.(*ast.Variable); isVar {
			rewritten = append(rewritten, item)
			continue
		}
		name := ctx.FreshName(expr.Pos())
		if log.V(2) {
			log.Infof("sort expression %s gets fresh name %s", expr, name)
		}
		fusion = append(fusion, Binding{Name: name, Expr: expr})
		rewritten = append(rewritten, sameDirection(item, ast.NewVariable(name, expr.Pos())))
	}
	return fusion, rewritten
}

// applySkipAndLimit adds the optional skip and limit of the shuffle, skip
// first so the limit counts rows after the skipped ones.
func applySkipAndLimit(ctx *plancontext.PlanningContext, plan ops.Operator, shuffle QueryShuffle) (ops.Operator, *plancontext.PlanningContext) {
	if shuffle.Skip != nil {
		plan, ctx = planSkip(ctx, plan, shuffle.Skip)
	}
	if shuffle.Limit != nil {
		plan, ctx = planLimit(ctx, plan, shuffle.Limit)
	}
	return plan, ctx
}
