package plan

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"mit.edu/dsg/arrowdb/common"
	"mit.edu/dsg/arrowdb/types"
)

// Filter removes rows from its input that do not satisfy a boolean
// predicate. Its output schema is its input's schema.
type Filter struct {
	Input     LogicalPlan
	Predicate Expr
}

func NewFilter(input LogicalPlan, predicate Expr) (*Filter, error) {
	dt, err := predicate.ResolvedType(input.Schema())
	if err != nil {
		return nil, err
	}
	if dt.ID() != arrow.BOOL {
		return nil, common.Errorf(common.PlanValidationError,
			"filter predicate must be boolean, got %s", types.Name(dt))
	}
	return &Filter{Input: input, Predicate: predicate}, nil
}

func (n *Filter) Schema() *arrow.Schema {
	return n.Input.Schema()
}

func (n *Filter) Children() []LogicalPlan {
	return []LogicalPlan{n.Input}
}

func (n *Filter) String() string {
	return fmt.Sprintf("Filter: %s", n.Predicate)
}
