package execution

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"mit.edu/dsg/arrowdb/common"
	"mit.edu/dsg/arrowdb/plan"
)

func testSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "c0", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "c1", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	}, nil)
}

func TestContextTables(t *testing.T) {
	ctx := NewContext()

	_, err := ctx.CreateTable("metrics", testSchema())
	require.NoError(t, err)

	scan, err := ctx.Table("metrics")
	require.NoError(t, err)
	assert.Equal(t, "TableScan: metrics", scan.String())
	assert.True(t, scan.Schema().Equal(testSchema()))

	_, err = ctx.Table("ghost")
	require.Error(t, err)
	var dbErr common.ArrowDBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, common.NoSuchObjectError, dbErr.Code)
}

func TestContextOptimizeDefaultPipeline(t *testing.T) {
	ctx := NewContext(WithLogger(zaptest.NewLogger(t)))

	_, err := ctx.CreateTable("metrics", testSchema())
	require.NoError(t, err)
	scan, err := ctx.Table("metrics")
	require.NoError(t, err)

	p, err := plan.From(scan).
		Filter(plan.NewBinaryExpr(plan.NewColumn("c0"), plan.Lt, plan.NewColumn("c1"))).
		Build()
	require.NoError(t, err)

	optimized, err := ctx.Optimize(p)
	require.NoError(t, err)
	assert.Equal(t, "Filter: CAST(#c0 AS Int64) < #c1\n  TableScan: metrics",
		plan.Format(optimized))
}

func TestContextFunctionRegistration(t *testing.T) {
	ctx := NewContext(WithLogger(zaptest.NewLogger(t)))

	require.NoError(t, ctx.RegisterFunction(&plan.ScalarFunction{
		Name:       "sqrt",
		Args:       []arrow.Field{{Name: "x", Type: arrow.PrimitiveTypes.Float64}},
		ReturnType: arrow.PrimitiveTypes.Float64,
	}))
	err := ctx.RegisterFunction(&plan.ScalarFunction{Name: "sqrt"})
	require.Error(t, err)
	var dbErr common.ArrowDBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, common.DuplicateObjectError, dbErr.Code)

	// The default pipeline coerces scalar-function arguments against the
	// session registry.
	_, err = ctx.CreateTable("metrics", testSchema())
	require.NoError(t, err)
	scan, err := ctx.Table("metrics")
	require.NoError(t, err)

	p, err := plan.From(scan).
		Project([]plan.Expr{
			plan.NewScalarFunctionExpr("sqrt", []plan.Expr{plan.NewColumn("c0")}, arrow.PrimitiveTypes.Float64),
		}).
		Build()
	require.NoError(t, err)

	optimized, err := ctx.Optimize(p)
	require.NoError(t, err)
	assert.Equal(t, "Projection: sqrt(CAST(#c0 AS Float64))\n  TableScan: metrics",
		plan.Format(optimized))

	// Unregistered scalar functions abort the pass.
	p, err = plan.From(scan).
		Project([]plan.Expr{
			plan.NewScalarFunctionExpr("sin", []plan.Expr{plan.NewColumn("c0")}, arrow.PrimitiveTypes.Float64),
		}).
		Build()
	require.NoError(t, err)

	_, err = ctx.Optimize(p)
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, common.UnknownFunctionError, dbErr.Code)
}
