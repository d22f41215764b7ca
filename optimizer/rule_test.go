package optimizer

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"mit.edu/dsg/arrowdb/common"
	"mit.edu/dsg/arrowdb/plan"
)

// recordingRule tracks application order and can be made to fail.
type recordingRule struct {
	name string
	log  *[]string
	fail bool
}

func (r *recordingRule) Name() string {
	return r.name
}

func (r *recordingRule) Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	*r.log = append(*r.log, r.name)
	if r.fail {
		return nil, common.Errorf(common.PlanValidationError, "rule %s failed", r.name)
	}
	return p, nil
}

func emptyPlan() plan.LogicalPlan {
	return plan.NewEmptyRelation(arrow.NewSchema(nil, nil))
}

func TestOptimizerAppliesRulesInOrder(t *testing.T) {
	var log []string
	o := NewOptimizer(zaptest.NewLogger(t),
		&recordingRule{name: "first", log: &log},
		&recordingRule{name: "second", log: &log},
	)

	_, err := o.Optimize(emptyPlan())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, log)
	assert.Len(t, o.Rules(), 2)
}

func TestOptimizerStopsOnFirstError(t *testing.T) {
	var log []string
	o := NewOptimizer(nil,
		&recordingRule{name: "first", log: &log, fail: true},
		&recordingRule{name: "second", log: &log},
	)

	_, err := o.Optimize(emptyPlan())
	require.Error(t, err)
	assert.Equal(t, []string{"first"}, log)
}
