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

// Package operators contains the plan operators and the horizon planning
// that appends them.
/*
By the time this package runs, earlier stages have already decided how the
rows get produced: scans, expansions and joins are in place, and every plan
node carries a "provided order" fact describing the order its output is
already in. What is left is the query horizon - the projected bindings and
the sort/skip/limit directives of the current query segment - and the job
here is to append the cheapest chain of Projection/Ordering/Skip/Limit
nodes that makes the output match, or to append nothing at all when the
incoming plan already provides the requested order.

Plan nodes are immutable. Planning wraps an existing node in a new parent
and threads an updated PlanningContext forward; it never modifies a node or
a context in place.
*/
package operators

import (
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/operators/ops"
)

// visibleNames collects every output name the given plan already
// materializes. The projection producer consults this to stay idempotent:
// a binding whose name is already visible is never projected again.
func visibleNames(op ops.Operator) map[string]struct{} {
	names := map[string]struct{}{}
	_ = ops.VisitTopDown(op, func(this ops.Operator) error {
		switch this := this.(type) {
		case *NodeScan:
			names[this.Variable] = struct{}{}
		case *Argument:
			for _, v := range this.Variables {
				names[v] = struct{}{}
			}
		case *Projection:
			for _, b := range this.Bindings {
				names[b.Name] = struct{}{}
			}
		}
		return nil
	})
	return names
}
