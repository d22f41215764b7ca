// Package execution provides the session context that owns the
// collaborators the optimizer consumes: the table catalog, the
// scalar-function registry, and the configured rule pipeline.
package execution

import (
	"github.com/apache/arrow-go/v18/arrow"
	"go.uber.org/zap"

	"mit.edu/dsg/arrowdb/catalog"
	"mit.edu/dsg/arrowdb/optimizer"
	"mit.edu/dsg/arrowdb/plan"
)

// Context holds all session-scoped state for planning a query. It is
// the injection point for everything the type-coercion pass treats as
// read-only external input.
type Context struct {
	catalog  *catalog.Catalog
	registry *plan.FunctionRegistry
	logger   *zap.Logger
	rules    []optimizer.Rule
	pipeline *optimizer.Optimizer
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogger sets the logger used by the optimizer pipeline.
func WithLogger(logger *zap.Logger) Option {
	return func(ctx *Context) {
		ctx.logger = logger
	}
}

// WithRules replaces the default rule set.
func WithRules(rules ...optimizer.Rule) Option {
	return func(ctx *Context) {
		ctx.rules = rules
	}
}

// NewContext creates a session context. Unless overridden, the pipeline
// runs the type-coercion rule over this context's function registry and
// logs nowhere.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		catalog:  catalog.NewCatalog(),
		registry: plan.NewFunctionRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.rules == nil {
		ctx.rules = []optimizer.Rule{
			optimizer.NewTypeCoercionRule(ctx.registry),
		}
	}
	ctx.pipeline = optimizer.NewOptimizer(ctx.logger, ctx.rules...)
	return ctx
}

// RegisterFunction adds a scalar-function signature to the session
// registry.
func (ctx *Context) RegisterFunction(fn *plan.ScalarFunction) error {
	return ctx.registry.Register(fn)
}

// ScalarFunctions returns the session's function registry.
func (ctx *Context) ScalarFunctions() *plan.FunctionRegistry {
	return ctx.registry
}

// CreateTable registers a table schema in the session catalog.
func (ctx *Context) CreateTable(name string, schema *arrow.Schema) (*catalog.Table, error) {
	return ctx.catalog.CreateTable(name, schema)
}

// Table builds a scan over a table registered in the session catalog.
func (ctx *Context) Table(name string) (plan.LogicalPlan, error) {
	table, err := ctx.catalog.Table(name)
	if err != nil {
		return nil, err
	}
	return plan.NewTableScan(table.Name, table.Schema), nil
}

// Catalog returns the session catalog.
func (ctx *Context) Catalog() *catalog.Catalog {
	return ctx.catalog
}

// Optimize runs the configured rule pipeline over a plan and returns the
// rewritten plan. The input plan is left untouched.
func (ctx *Context) Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	return ctx.pipeline.Optimize(p)
}
