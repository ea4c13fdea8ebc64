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
	"github.com/qinchao0525/neo4j/go/cypher/planbuilder/operators/ops"
)

// Projection evaluates its bindings on every incoming row and makes them
// visible under their output names, alongside everything the source
// already produced. It is only ever built through planRegularProjection,
// which drops bindings whose names are already visible below.
type Projection struct {
	id       ops.ID
	Source   ops.Operator
	Bindings []Binding
}

func (p *Projection) ID() ops.ID             { return p.id }
func (p *Projection) Inputs() []ops.Operator { return []ops.Operator{p.Source} }

func (p *Projection) ShortDescription() string {
	return formatBindings(p.Bindings)
}
