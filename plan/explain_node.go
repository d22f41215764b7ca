package plan

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// StringifiedPlan is a rendered snapshot of a plan at some stage of the
// optimization pipeline, collected for EXPLAIN output.
type StringifiedPlan struct {
	// Stage names the pipeline stage that produced the snapshot, e.g.
	// "initial logical plan" or an optimizer rule name.
	Stage string
	Text  string
}

var explainSchema = arrow.NewSchema([]arrow.Field{
	{Name: "plan", Type: arrow.BinaryTypes.String},
}, nil)

// Explain wraps a plan for diagnostic output. It carries the verbosity
// flag and the snapshots accumulated so far; optimizer rules rewrite the
// wrapped plan while passing both through unchanged.
type Explain struct {
	Verbose          bool
	Input            LogicalPlan
	StringifiedPlans []StringifiedPlan
}

func NewExplain(verbose bool, input LogicalPlan, stringifiedPlans []StringifiedPlan) *Explain {
	return &Explain{
		Verbose:          verbose,
		Input:            input,
		StringifiedPlans: stringifiedPlans,
	}
}

func (n *Explain) Schema() *arrow.Schema {
	return explainSchema
}

func (n *Explain) Children() []LogicalPlan {
	return []LogicalPlan{n.Input}
}

func (n *Explain) String() string {
	return "Explain"
}
