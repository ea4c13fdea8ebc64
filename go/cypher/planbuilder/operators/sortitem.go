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
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/props"
)

type (
	// SortItem is one directive of an ORDER BY: an expression and a
	// direction. Exactly two kinds exist and every consumer switches over
	// both.
	SortItem interface {
		sortItem()
		Expression() ast.Expr
	}

	// Ascending sorts smallest first.
	Ascending struct {
		Expr ast.Expr
	}

	// Descending sorts largest first.
	Descending struct {
		Expr ast.Expr
	}
)

func (Ascending) sortItem()  {}
func (Descending) sortItem() {}

func (a Ascending) Expression() ast.Expr  { return a.Expr }
func (d Descending) Expression() ast.Expr { return d.Expr }

// sameDirection builds a new item with item's direction over a different
// expression. Used when an unaliased sort expression is replaced by a
// reference to its freshly projected name.
func sameDirection(item SortItem, e ast.Expr) SortItem {
	switch item.(type) {
	case Ascending:
		return Ascending{Expr: e}
	case Descending:
		return Descending{Expr: e}
	}
	panic(errors.AssertionFailedf("unknown sort item type %T", item))
}

// columnOrder translates a sort item into the physical column order a sort
// node executes. By the time this is called, classification and fusion
// have rewritten every item into a single-variable reference; anything
// else is a planner bug, not a reachable state.
func columnOrder(item SortItem) (props.ColumnOrder, error) {
	v, ok := item.Expression().(*ast.Variable)
	if !ok {
		return props.ColumnOrder{}, errors.AssertionFailedf(
			"sort item %s is not a variable reference after fusion", item.Expression())
	}
	switch item.(type) {
	case Ascending:
		return props.ColumnOrder{Name: v.Name}, nil
	case Descending:
		return props.ColumnOrder{Name: v.Name, Descending: true}, nil
	}
	return props.ColumnOrder{}, errors.AssertionFailedf("unknown sort item type %T", item)
}
