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

package props

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qinchao0525/neo4j/go/cypher/ast"
)

func v(name string) *ast.Variable {
	return ast.NewVariable(name, ast.InputPosition{})
}

func prop(subject, key string) *ast.Property {
	return &ast.Property{Subject: v(subject), PropKey: key}
}

func TestRequiredOrderSatisfiedBy(t *testing.T) {
	aliases := map[string]ast.Expr{"x": prop("a", "foo")}

	tcases := []struct {
		name     string
		required RequiredOrder
		provided ProvidedOrder
		exp      bool
	}{
		{
			name:     "exact match",
			required: RequiredOrder{}.Asc(prop("a", "foo")),
			provided: ProvidedOrder{{Expr: prop("a", "foo")}},
			exp:      true,
		},
		{
			name:     "provided may keep going",
			required: RequiredOrder{}.Asc(prop("a", "foo")),
			provided: ProvidedOrder{{Expr: prop("a", "foo")}, {Expr: v("b")}},
			exp:      true,
		},
		{
			name:     "required longer than provided",
			required: RequiredOrder{}.Asc(prop("a", "foo")).Asc(v("b")),
			provided: ProvidedOrder{{Expr: prop("a", "foo")}},
			exp:      false,
		},
		{
			name:     "match must start at the front",
			required: RequiredOrder{}.Asc(v("b")),
			provided: ProvidedOrder{{Expr: prop("a", "foo")}, {Expr: v("b")}},
			exp:      false,
		},
		{
			name:     "direction mismatch",
			required: RequiredOrder{}.Desc(prop("a", "foo")),
			provided: ProvidedOrder{{Expr: prop("a", "foo")}},
			exp:      false,
		},
		{
			name:     "alias in the requirement",
			required: RequiredOrder{}.Asc(v("x")),
			provided: ProvidedOrder{{Expr: prop("a", "foo")}},
			exp:      true,
		},
		{
			name:     "alias in the provided order",
			required: RequiredOrder{}.Asc(prop("a", "foo")),
			provided: ProvidedOrder{{Expr: v("x")}},
			exp:      true,
		},
		{
			name:     "empty requirement is never satisfied",
			required: nil,
			provided: ProvidedOrder{{Expr: prop("a", "foo")}},
			exp:      false,
		},
		{
			name:     "empty provided order",
			required: RequiredOrder{}.Asc(v("x")),
			provided: nil,
			exp:      false,
		},
	}

	for _, tcase := range tcases {
		t.Run(tcase.name, func(t *testing.T) {
			got := tcase.required.SatisfiedBy(tcase.provided, aliases)
			assert.Equal(t, tcase.exp, got)
		})
	}
}

func TestOrderingString(t *testing.T) {
	order := RequiredOrder{}.Asc(prop("n", "name")).Desc(v("age"))
	assert.Equal(t, "n.name ASC, age DESC", order.String())
}
