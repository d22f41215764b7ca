package plan

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Limit truncates its input to at most N rows.
type Limit struct {
	Input LogicalPlan
	N     int64
}

func NewLimit(input LogicalPlan, n int64) *Limit {
	return &Limit{Input: input, N: n}
}

func (n *Limit) Schema() *arrow.Schema {
	return n.Input.Schema()
}

func (n *Limit) Children() []LogicalPlan {
	return []LogicalPlan{n.Input}
}

func (n *Limit) String() string {
	return fmt.Sprintf("Limit: %d", n.N)
}
