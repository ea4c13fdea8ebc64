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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qinchao0525/neo4j/go/cypher/ast"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/plancontext"
)

func TestClassifySortItems(t *testing.T) {
	ageDef := property("n", "age", 5)
	nameDef := property("n", "name", 15)

	tcases := []struct {
		name    string
		horizon QueryHorizon
		items   []SortItem

		expFusion    []Binding
		expAliased   int
		expUnaliased int
	}{
		{
			name: "alias of a regular projection is fused",
			horizon: &RegularProjection{
				Items: []Binding{{Name: "age", Expr: ageDef}},
			},
			items:      []SortItem{Ascending{Expr: variable("age", 30)}},
			expFusion:  []Binding{{Name: "age", Expr: ageDef}},
			expAliased: 1,
		},
		{
			name: "alias of a distinct projection is already materialized",
			horizon: &DistinctProjection{
				Items: []Binding{{Name: "age", Expr: ageDef}},
			},
			items:      []SortItem{Ascending{Expr: variable("age", 30)}},
			expAliased: 1,
		},
		{
			name: "grouping binding of an aggregation is already materialized",
			horizon: &AggregatingProjection{
				Grouping: []Binding{{Name: "g", Expr: variable("g", 5)}},
			},
			items:      []SortItem{Descending{Expr: variable("g", 30)}},
			expAliased: 1,
		},
		{
			name: "variable bound by an earlier segment is aliased, nothing fused",
			horizon: &RegularProjection{
				Items: []Binding{{Name: "a", Expr: variable("a", 5)}},
			},
			items:      []SortItem{Ascending{Expr: variable("upstream", 30)}},
			expAliased: 1,
		},
		{
			name: "complex expression is unaliased",
			horizon: &RegularProjection{
				Items: []Binding{{Name: "a", Expr: variable("a", 5)}},
			},
			items:        []SortItem{Ascending{Expr: property("n", "foo", 30)}},
			expUnaliased: 1,
		},
		{
			name: "complex expression reusing a projected sub-value fuses it",
			horizon: &RegularProjection{
				Items: []Binding{{Name: "age", Expr: ageDef}},
			},
			items: []SortItem{Ascending{Expr: &ast.Add{
				LHS:      variable("age", 30),
				RHS:      ast.NewIntegerLiteral(1),
				Position: pos(30),
			}}},
			expFusion:    []Binding{{Name: "age", Expr: ageDef}},
			expUnaliased: 1,
		},
		{
			name: "same alias in two sort items is fused once",
			horizon: &RegularProjection{
				Items: []Binding{{Name: "age", Expr: ageDef}, {Name: "name", Expr: nameDef}},
			},
			items: []SortItem{
				Ascending{Expr: variable("age", 30)},
				Descending{Expr: variable("age", 40)},
				Ascending{Expr: variable("name", 50)},
			},
			expFusion: []Binding{
				{Name: "age", Expr: ageDef},
				{Name: "name", Expr: nameDef},
			},
			expAliased: 3,
		},
	}

	for _, tcase := range tcases {
		t.Run(tcase.name, func(t *testing.T) {
			fusion, aliased, unaliased, err := classifySortItems(tcase.items, tcase.horizon)
			require.NoError(t, err)
			assert.Equal(t, tcase.expFusion, fusion)
			assert.Len(t, aliased, tcase.expAliased)
			assert.Len(t, unaliased, tcase.expUnaliased)
		})
	}
}

func TestIntroduceFreshNamesKeepsAliasedItems(t *testing.T) {
	ctx := plancontext.NewPlanningContext()
	unaliasedA := property("n", "foo", 17)
	unaliasedB := property("n", "foo", 42) // same text, different position
	items := []SortItem{
		Ascending{Expr: variable("x", 5)},
		Descending{Expr: unaliasedA},
		Ascending{Expr: unaliasedB},
	}

	fusion, rewritten := introduceFreshNames(ctx, items)

	require.Len(t, fusion, 2)
	assert.NotEqual(t, fusion[0].Name, fusion[1].Name,
		"equal expressions at different positions keep separate names")

	require.Len(t, rewritten, 3)
	assert.Equal(t, items[0], rewritten[0], "aliased items pass through untouched")
	assert.IsType(t, Descending{}, rewritten[1])
	assert.IsType(t, Ascending{}, rewritten[2])
}
