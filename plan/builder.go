package plan

// Builder constructs logical plans bottom-up, recomputing and validating
// each node's output schema as it goes. Construction errors are captured
// in the chain and surfaced by Build, so call sites can compose steps
// without per-step error plumbing:
//
//	p, err := plan.From(scan).Filter(pred).Project(exprs).Build()
type Builder struct {
	plan LogicalPlan
	err  error
}

// From starts a builder at an existing plan.
func From(plan LogicalPlan) *Builder {
	return &Builder{plan: plan}
}

// Project appends a projection node evaluating the given expressions.
func (b *Builder) Project(exprs []Expr) *Builder {
	if b.err != nil {
		return b
	}
	node, err := NewProjection(b.plan, exprs)
	if err != nil {
		return &Builder{err: err}
	}
	return &Builder{plan: node}
}

// Filter appends a filter node with the given boolean predicate.
func (b *Builder) Filter(predicate Expr) *Builder {
	if b.err != nil {
		return b
	}
	node, err := NewFilter(b.plan, predicate)
	if err != nil {
		return &Builder{err: err}
	}
	return &Builder{plan: node}
}

// Aggregate appends an aggregate node with group-by and aggregate
// expression lists.
func (b *Builder) Aggregate(groupExprs, aggrExprs []Expr) *Builder {
	if b.err != nil {
		return b
	}
	node, err := NewAggregate(b.plan, groupExprs, aggrExprs)
	if err != nil {
		return &Builder{err: err}
	}
	return &Builder{plan: node}
}

// Limit appends a limit node bounding the row count.
func (b *Builder) Limit(n int64) *Builder {
	if b.err != nil {
		return b
	}
	return &Builder{plan: NewLimit(b.plan, n)}
}

// Sort appends a sort node ordered by the given sort expressions.
func (b *Builder) Sort(exprs []Expr) *Builder {
	if b.err != nil {
		return b
	}
	return &Builder{plan: NewSort(b.plan, exprs)}
}

// Build returns the constructed plan, or the first error captured along
// the chain.
func (b *Builder) Build() (LogicalPlan, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.plan, nil
}
