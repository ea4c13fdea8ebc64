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

// Package ops defines the interface every plan operator implements, and
// debug rendering of operator trees.
package ops

// ID identifies one plan node for the lifetime of a compilation. The
// planning context's attribute tables (provided order, solved goals) are
// keyed by it.
type ID int

// Operator is one node of the plan tree. Nodes are immutable: planning
// wraps an existing node in a new parent, it never modifies one in place,
// so sibling branches of the planner's exploration can share subtrees.
type Operator interface {
	// ID returns the node's unique plan identifier.
	ID() ID

	// Inputs returns the children of this operator.
	Inputs() []Operator

	// ShortDescription is used in debug output.
	ShortDescription() string
}

// VisitTopDown calls visitor on op and all operators below it, breadth
// first, stopping at the first error.
func VisitTopDown(root Operator, visitor func(Operator) error) error {
	queue := []Operator{root}
	for len(queue) > 0 {
		this := queue[0]
		queue = append(queue[1:], this.Inputs()...)
		if err := visitor(this); err != nil {
			return err
		}
	}
	return nil
}
