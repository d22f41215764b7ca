package plan

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"mit.edu/dsg/arrowdb/common"
)

// Aggregate groups its input by the group-by expressions and evaluates
// the aggregate expressions per group. Its output schema is the group-by
// fields followed by the aggregate fields.
type Aggregate struct {
	Input      LogicalPlan
	GroupExprs []Expr
	AggrExprs  []Expr
	schema     *arrow.Schema
}

func NewAggregate(input LogicalPlan, groupExprs, aggrExprs []Expr) (*Aggregate, error) {
	fields := make([]arrow.Field, 0, len(groupExprs)+len(aggrExprs))
	seen := make(map[string]struct{}, cap(fields))
	for _, e := range append(append([]Expr{}, groupExprs...), aggrExprs...) {
		field, err := exprField(e, input.Schema())
		if err != nil {
			return nil, err
		}
		if _, dup := seen[field.Name]; dup {
			return nil, common.Errorf(common.PlanValidationError,
				"duplicate field name %q in aggregate", field.Name)
		}
		seen[field.Name] = struct{}{}
		fields = append(fields, field)
	}
	return &Aggregate{
		Input:      input,
		GroupExprs: groupExprs,
		AggrExprs:  aggrExprs,
		schema:     arrow.NewSchema(fields, nil),
	}, nil
}

func (n *Aggregate) Schema() *arrow.Schema {
	return n.schema
}

func (n *Aggregate) Children() []LogicalPlan {
	return []LogicalPlan{n.Input}
}

func (n *Aggregate) String() string {
	return fmt.Sprintf("Aggregate: groupBy=[%s], aggr=[%s]",
		exprListString(n.GroupExprs), exprListString(n.AggrExprs))
}
