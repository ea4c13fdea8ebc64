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

package plancontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinchao0525/neo4j/go/cypher/ast"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/props"
)

func TestAllocIDIsFunctional(t *testing.T) {
	ctx := NewPlanningContext()

	id0, ctx2 := ctx.AllocID()
	id1, _ := ctx2.AllocID()
	assert.NotEqual(t, id0, id1)

	// the ancestor context never observes the allocation
	again, _ := ctx.AllocID()
	assert.Equal(t, id0, again)
}

func TestAttributeUpdatesDoNotLeakToAncestors(t *testing.T) {
	ctx := NewPlanningContext()
	id, ctx := ctx.AllocID()

	order := props.ProvidedOrder{{Expr: ast.NewVariable("n", ast.InputPosition{})}}
	updated := ctx.WithProvidedOrder(id, order)

	assert.Empty(t, ctx.ProvidedOrder(id), "ancestor context must stay untouched")
	assert.Equal(t, order, updated.ProvidedOrder(id))

	required := props.RequiredOrder{}.Asc(ast.NewVariable("n", ast.InputPosition{}))
	solvedCtx := updated.WithSolvedOrder(id, required)
	_, ok := updated.SolvedOrder(id)
	assert.False(t, ok)
	got, ok := solvedCtx.SolvedOrder(id)
	require.True(t, ok)
	assert.Equal(t, required, got)
}

func TestFreshNameIsDeterministic(t *testing.T) {
	posA := ast.InputPosition{Offset: 17, Line: 1, Column: 18}
	posB := ast.InputPosition{Offset: 42, Line: 2, Column: 3}

	first := NewPlanningContext()
	second := NewPlanningContext()

	assert.Equal(t, first.FreshName(posA), second.FreshName(posA),
		"independent compilations must agree on fresh names")
	assert.NotEqual(t, first.FreshName(posA), first.FreshName(posB),
		"distinct positions must keep distinct names")
}
