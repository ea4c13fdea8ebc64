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

	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/operators/ops"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/plancontext"
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/props"
)

// NodeScan is a leaf producing one row per scanned node, bound to
// Variable. When the scan is backed by an index, its output comes out in
// the index order; the cost-based stage that picks the scan records that
// as the node's provided order.
type NodeScan struct {
	id       ops.ID
	Variable string
}

// NewNodeScan builds a scan leaf and records the order its backing access
// path provides, if any.
func NewNodeScan(ctx *plancontext.PlanningContext, variable string, provided props.ProvidedOrder) (*NodeScan, *plancontext.PlanningContext) {
	id, ctx := ctx.AllocID()
	if len(provided) > 0 {
		ctx = ctx.WithProvidedOrder(id, provided)
	}
	return &NodeScan{id: id, Variable: variable}, ctx
}

func (s *NodeScan) ID() ops.ID               { return s.id }
func (s *NodeScan) Inputs() []ops.Operator   { return nil }
func (s *NodeScan) ShortDescription() string { return s.Variable }

// Argument is a leaf standing for rows fed in from an outer query segment.
// Its variables were materialized by whatever produced those rows.
type Argument struct {
	id        ops.ID
	Variables []string
}

// NewArgument builds an argument leaf over the given pre-bound variables.
func NewArgument(ctx *plancontext.PlanningContext, variables ...string) (*Argument, *plancontext.PlanningContext) {
	id, ctx := ctx.AllocID()
	return &Argument{id: id, Variables: variables}, ctx
}

func (a *Argument) ID() ops.ID             { return a.id }
func (a *Argument) Inputs() []ops.Operator { return nil }
func (a *Argument) ShortDescription() string {
	return strings.Join(a.Variables, ", ")
}
