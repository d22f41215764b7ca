package plan

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Sort orders its input by a list of sort expressions.
type Sort struct {
	Input LogicalPlan
	Exprs []Expr
}

func NewSort(input LogicalPlan, exprs []Expr) *Sort {
	return &Sort{Input: input, Exprs: exprs}
}

func (n *Sort) Schema() *arrow.Schema {
	return n.Input.Schema()
}

func (n *Sort) Children() []LogicalPlan {
	return []LogicalPlan{n.Input}
}

func (n *Sort) String() string {
	return fmt.Sprintf("Sort: %s", exprListString(n.Exprs))
}
