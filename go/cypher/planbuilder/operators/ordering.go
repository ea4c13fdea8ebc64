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
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/props"
)

// Ordering sorts its input by the given column orders. How the execution
// engine sorts (in memory, external, top-k under a limit) is not decided
// here.
type Ordering struct {
	id     ops.ID
	Source ops.Operator
	Orders []props.ColumnOrder
}

func (o *Ordering) ID() ops.ID             { return o.id }
func (o *Ordering) Inputs() []ops.Operator { return []ops.Operator{o.Source} }

func (o *Ordering) ShortDescription() string {
	var sb strings.Builder
	for i, col := range o.Orders {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col.Name)
		if col.Descending {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	return sb.String()
}
