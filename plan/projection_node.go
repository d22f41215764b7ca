package plan

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"mit.edu/dsg/arrowdb/common"
)

// Projection evaluates a list of expressions against its input.
type Projection struct {
	Input  LogicalPlan
	Exprs  []Expr
	schema *arrow.Schema
}

// NewProjection derives the projection's output schema from the
// expression list. Duplicate output field names are rejected.
func NewProjection(input LogicalPlan, exprs []Expr) (*Projection, error) {
	fields := make([]arrow.Field, len(exprs))
	seen := make(map[string]struct{}, len(exprs))
	for i, e := range exprs {
		field, err := exprField(e, input.Schema())
		if err != nil {
			return nil, err
		}
		if _, dup := seen[field.Name]; dup {
			return nil, common.Errorf(common.PlanValidationError,
				"duplicate field name %q in projection", field.Name)
		}
		seen[field.Name] = struct{}{}
		fields[i] = field
	}
	return &Projection{
		Input:  input,
		Exprs:  exprs,
		schema: arrow.NewSchema(fields, nil),
	}, nil
}

func (n *Projection) Schema() *arrow.Schema {
	return n.schema
}

func (n *Projection) Children() []LogicalPlan {
	return []LogicalPlan{n.Input}
}

func (n *Projection) String() string {
	return fmt.Sprintf("Projection: %s", exprListString(n.Exprs))
}
