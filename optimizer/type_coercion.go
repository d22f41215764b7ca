package optimizer

import (
	"github.com/apache/arrow-go/v18/arrow"

	"mit.edu/dsg/arrowdb/common"
	"mit.edu/dsg/arrowdb/plan"
	"mit.edu/dsg/arrowdb/types"
)

// TypeCoercionRule ensures that every operator in a plan operates on
// operands of a single common type by inserting explicit cast
// expressions where required. For example, `c_float + c_int` becomes
// `c_float + CAST(c_int AS Float64)`. Execution code downstream never
// has to promote types on the fly.
//
// The rule walks the plan bottom-up: each node's child is rewritten
// first, and the node's own expressions are then rewritten against the
// rewritten child's schema. Every reconstructed node goes back through
// the plan builder, which revalidates it and recomputes its schema. Any
// error anywhere in the descent aborts the pass with no partial plan.
type TypeCoercionRule struct {
	registry *plan.FunctionRegistry
}

// NewTypeCoercionRule creates the rule over the session's registered
// scalar-function signatures. The registry is read-only input here.
func NewTypeCoercionRule(registry *plan.FunctionRegistry) *TypeCoercionRule {
	return &TypeCoercionRule{registry: registry}
}

func (r *TypeCoercionRule) Name() string {
	return "type_coercion"
}

func (r *TypeCoercionRule) Optimize(p plan.LogicalPlan) (plan.LogicalPlan, error) {
	switch n := p.(type) {
	case *plan.Projection:
		input, err := r.Optimize(n.Input)
		if err != nil {
			return nil, err
		}
		exprs, err := r.rewriteExprList(n.Exprs, input.Schema())
		if err != nil {
			return nil, err
		}
		return plan.From(input).Project(exprs).Build()
	case *plan.Filter:
		input, err := r.Optimize(n.Input)
		if err != nil {
			return nil, err
		}
		predicate, err := r.rewriteExpr(n.Predicate, input.Schema())
		if err != nil {
			return nil, err
		}
		return plan.From(input).Filter(predicate).Build()
	case *plan.Aggregate:
		input, err := r.Optimize(n.Input)
		if err != nil {
			return nil, err
		}
		groupExprs, err := r.rewriteExprList(n.GroupExprs, input.Schema())
		if err != nil {
			return nil, err
		}
		aggrExprs, err := r.rewriteExprList(n.AggrExprs, input.Schema())
		if err != nil {
			return nil, err
		}
		return plan.From(input).Aggregate(groupExprs, aggrExprs).Build()
	case *plan.Limit:
		input, err := r.Optimize(n.Input)
		if err != nil {
			return nil, err
		}
		return plan.From(input).Limit(n.N).Build()
	case *plan.Sort:
		input, err := r.Optimize(n.Input)
		if err != nil {
			return nil, err
		}
		exprs, err := r.rewriteExprList(n.Exprs, input.Schema())
		if err != nil {
			return nil, err
		}
		return plan.From(input).Sort(exprs).Build()

	// Leaves carry no expressions; each is returned as an identical
	// copy so the old and new trees share no nodes.
	case *plan.TableScan:
		copied := *n
		return &copied, nil
	case *plan.InMemoryScan:
		copied := *n
		return &copied, nil
	case *plan.ParquetScan:
		copied := *n
		return &copied, nil
	case *plan.CsvScan:
		copied := *n
		return &copied, nil
	case *plan.EmptyRelation:
		copied := *n
		return &copied, nil
	case *plan.CreateExternalTable:
		copied := *n
		return &copied, nil

	case *plan.Explain:
		// Explain re-enters the whole rule on its wrapped plan rather
		// than going through the builder, keeping its verbosity flag
		// and snapshot list intact.
		return optimizeExplain(r, n)
	}
	common.Assert(false, "type_coercion: unhandled plan node %T", p)
	return nil, nil
}

func (r *TypeCoercionRule) rewriteExprList(exprs []plan.Expr, schema *arrow.Schema) ([]plan.Expr, error) {
	rewritten := make([]plan.Expr, len(exprs))
	for i, e := range exprs {
		var err error
		if rewritten[i], err = r.rewriteExpr(e, schema); err != nil {
			return nil, err
		}
	}
	return rewritten, nil
}

// rewriteExpr rewrites a single expression against the schema in effect,
// inserting casts so that binary operands match each other and scalar
// function arguments match their declared parameters.
func (r *TypeCoercionRule) rewriteExpr(e plan.Expr, schema *arrow.Schema) (plan.Expr, error) {
	switch t := e.(type) {
	case *plan.BinaryExpr:
		left, err := r.rewriteExpr(t.Left, schema)
		if err != nil {
			return nil, err
		}
		right, err := r.rewriteExpr(t.Right, schema)
		if err != nil {
			return nil, err
		}
		leftType, err := left.ResolvedType(schema)
		if err != nil {
			return nil, err
		}
		rightType, err := right.ResolvedType(schema)
		if err != nil {
			return nil, err
		}
		if arrow.TypeEqual(leftType, rightType) {
			return plan.NewBinaryExpr(left, t.Op, right), nil
		}
		super, err := types.Supertype(leftType, rightType)
		if err != nil {
			return nil, err
		}
		if left, err = plan.CastTo(left, super, schema); err != nil {
			return nil, err
		}
		if right, err = plan.CastTo(right, super, schema); err != nil {
			return nil, err
		}
		return plan.NewBinaryExpr(left, t.Op, right), nil

	case *plan.NullCheck:
		inner, err := r.rewriteExpr(t.Expr, schema)
		if err != nil {
			return nil, err
		}
		return plan.NewNullCheck(inner, t.Kind), nil

	case *plan.ScalarFunctionExpr:
		fn, ok := r.registry.Lookup(t.Name)
		if !ok {
			return nil, common.Errorf(common.UnknownFunctionError,
				"unknown scalar function %q", t.Name)
		}
		if len(t.Args) != len(fn.Args) {
			return nil, common.Errorf(common.PlanValidationError,
				"scalar function %q expects %d arguments, got %d",
				t.Name, len(fn.Args), len(t.Args))
		}
		args := make([]plan.Expr, len(t.Args))
		for i, arg := range t.Args {
			rewritten, err := r.rewriteExpr(arg, schema)
			if err != nil {
				return nil, err
			}
			actual, err := rewritten.ResolvedType(schema)
			if err != nil {
				return nil, err
			}
			required := fn.Args[i].Type
			if arrow.TypeEqual(actual, required) {
				args[i] = rewritten
				continue
			}
			// Arguments are cast to the supertype of the actual and
			// declared parameter types, not to the declared type. When
			// the supertype is wider than the declaration (declared
			// Int32, actual Int64), the coerced argument still does not
			// match the signature. Latent inconsistency, kept until the
			// signature-matching contract is revisited.
			super, err := types.Supertype(actual, required)
			if err != nil {
				return nil, err
			}
			if args[i], err = plan.CastTo(rewritten, super, schema); err != nil {
				return nil, err
			}
		}
		return plan.NewScalarFunctionExpr(t.Name, args, t.ReturnType), nil

	case *plan.AggregateFunctionExpr:
		// Aggregates are not registry-checked; arguments are rewritten
		// with no declared target to coerce against.
		args, err := r.rewriteExprList(t.Args, schema)
		if err != nil {
			return nil, err
		}
		return plan.NewAggregateFunctionExpr(t.Name, args, t.ReturnType), nil

	case *plan.Alias:
		inner, err := r.rewriteExpr(t.Expr, schema)
		if err != nil {
			return nil, err
		}
		return plan.NewAlias(inner, t.Name), nil

	case *plan.Nested:
		// The parenthesized wrapper is transparent: rewrite the inner
		// expression and drop the wrapper.
		return r.rewriteExpr(t.Expr, schema)

	case *plan.Wildcard:
		return nil, common.Errorf(common.InvalidWildcardError,
			"wildcard expressions are not valid in a resolved logical plan")

	case *plan.Cast, *plan.Column, *plan.Literal, *plan.Not, *plan.SortExpr:
		return e, nil
	}
	common.Assert(false, "type_coercion: unhandled expression %T", e)
	return nil, nil
}
