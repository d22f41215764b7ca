// Package optimizer contains the logical-plan optimization rules and the
// pipeline that composes them. Rules are pure transformations: they take
// a plan tree and return a new, semantically equivalent tree, leaving
// the input untouched.
package optimizer

import (
	"go.uber.org/zap"

	"mit.edu/dsg/arrowdb/plan"
)

// Rule is a single optimization pass over a logical plan.
type Rule interface {
	// Name returns a stable identifier for the rule, used in logs and
	// EXPLAIN snapshot stages.
	Name() string

	// Optimize returns a rewritten plan. The input plan is never
	// mutated; on error no partial plan is returned.
	Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error)
}

// Optimizer applies an ordered list of rules to a plan. The first error
// from any rule aborts the whole run.
type Optimizer struct {
	rules  []Rule
	logger *zap.Logger
}

func NewOptimizer(logger *zap.Logger, rules ...Rule) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{rules: rules, logger: logger}
}

// Rules returns the configured rules in application order.
func (o *Optimizer) Rules() []Rule {
	return o.rules
}

func (o *Optimizer) Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	for _, rule := range o.rules {
		optimized, err := rule.Optimize(p)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("applied optimizer rule",
			zap.String("rule", rule.Name()))
		p = optimized
	}
	return p, nil
}

// optimizeExplain re-enters a rule through an Explain wrapper: the
// wrapped plan is optimized by the same rule, while the verbosity flag
// and the snapshots accumulated so far are carried forward unchanged.
// Appending new snapshots is pipeline policy, not a rule's job.
func optimizeExplain(r Rule, n *plan.Explain) (plan.LogicalPlan, error) {
	optimized, err := r.Optimize(n.Input)
	if err != nil {
		return nil, err
	}
	snapshots := make([]plan.StringifiedPlan, len(n.StringifiedPlans))
	copy(snapshots, n.StringifiedPlans)
	return plan.NewExplain(n.Verbose, optimized, snapshots), nil
}
