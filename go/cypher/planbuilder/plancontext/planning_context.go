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

// Package plancontext carries the state threaded through planning: the
// plan identifier sequence, the per-plan attribute tables, and fresh-name
// generation.
package plancontext

import (
	"fmt"

	"golang.org/x/exp/maps"

	"github.com/qinchao0525/neo4j/go/cypher/ast"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/operators/ops"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/props"
)

// PlanningContext is the accumulator passed through every planning step.
// One instance exists per compilation. Updates are functional: every
// method that records something returns a new context and leaves the
// receiver untouched, so independent query branches can be planned
// concurrently from a shared ancestor context without locks.
type PlanningContext struct {
	nextID ops.ID

	// attribute tables, keyed by plan ID
	provided map[ops.ID]props.ProvidedOrder
	solved   map[ops.ID]props.RequiredOrder
}

// NewPlanningContext returns an empty context for a fresh compilation.
func NewPlanningContext() *PlanningContext {
	return &PlanningContext{
		provided: map[ops.ID]props.ProvidedOrder{},
		solved:   map[ops.ID]props.RequiredOrder{},
	}
}

// AllocID hands out the next plan identifier.
func (ctx *PlanningContext) AllocID() (ops.ID, *PlanningContext) {
	next := ctx.copy()
	next.nextID++
	return ctx.nextID, next
}

// ProvidedOrder returns the ordering already true of the given plan's
// output. Empty when nothing is known.
func (ctx *PlanningContext) ProvidedOrder(id ops.ID) props.ProvidedOrder {
	return ctx.provided[id]
}

// WithProvidedOrder records the ordering the given plan's output exhibits.
func (ctx *PlanningContext) WithProvidedOrder(id ops.ID, order props.ProvidedOrder) *PlanningContext {
	next := ctx.copy()
	next.provided = maps.Clone(ctx.provided)
	next.provided[id] = order
	return next
}

// SolvedOrder returns the order requirement the given plan has been marked
// as satisfying, if any.
func (ctx *PlanningContext) SolvedOrder(id ops.ID) (props.RequiredOrder, bool) {
	order, ok := ctx.solved[id]
	return order, ok
}

// WithSolvedOrder records that the given plan satisfies the requirement,
// so downstream planning will not solve it again.
func (ctx *PlanningContext) WithSolvedOrder(id ops.ID, order props.RequiredOrder) *PlanningContext {
	next := ctx.copy()
	next.solved = maps.Clone(ctx.solved)
	next.solved[id] = order
	return next
}

// FreshName derives the internal variable name for an expression that has
// to be materialized before it can be sorted on. The name depends only on
// the expression's position in the query text, so recompiling identical
// text produces identical names and therefore cacheable plans. The double
// underscore keeps it out of the namespace user variables can occupy;
// semantic analysis rejects identifiers with that prefix.
func (ctx *PlanningContext) FreshName(pos ast.InputPosition) string {
	return fmt.Sprintf("__ord%d", pos.Offset)
}

func (ctx *PlanningContext) copy() *PlanningContext {
	cp := *ctx
	return &cp
}
