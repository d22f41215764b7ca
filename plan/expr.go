// Package plan defines the logical query plan: a tree of immutable plan
// nodes, each carrying its own expression lists and an Arrow schema
// describing its output shape. Plans and expressions are value trees;
// rewrites allocate new nodes and never mutate existing ones.
package plan

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"

	"mit.edu/dsg/arrowdb/common"
	"mit.edu/dsg/arrowdb/types"
)

// Expr represents a node in an expression tree.
// Expressions are stateless and immutable.
type Expr interface {
	// ResolvedType computes the type this expression evaluates to under
	// the given input schema.
	ResolvedType(schema *arrow.Schema) (arrow.DataType, error)

	// String returns a deterministic string representation of the
	// expression, stable enough for tests to assert exact shape.
	String() string
}

// Column is a reference to a named field of the input schema.
type Column struct {
	Name string
}

func NewColumn(name string) *Column {
	return &Column{Name: name}
}

func (e *Column) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	indices := schema.FieldIndices(e.Name)
	if len(indices) == 0 {
		return nil, common.Errorf(common.UnresolvableColumnError,
			"column %q not found in schema", e.Name)
	}
	return schema.Field(indices[0]).Type, nil
}

func (e *Column) String() string {
	return "#" + e.Name
}

// Literal is a constant value with an explicit type.
type Literal struct {
	Value any
	Type  arrow.DataType
}

func NewLiteral(value any, dt arrow.DataType) *Literal {
	return &Literal{Value: value, Type: dt}
}

// Lit builds a literal whose type is inferred from the Go value.
func Lit(value any) *Literal {
	var dt arrow.DataType
	switch value.(type) {
	case bool:
		dt = arrow.FixedWidthTypes.Boolean
	case int8:
		dt = arrow.PrimitiveTypes.Int8
	case int16:
		dt = arrow.PrimitiveTypes.Int16
	case int32:
		dt = arrow.PrimitiveTypes.Int32
	case int64, int:
		dt = arrow.PrimitiveTypes.Int64
	case uint8:
		dt = arrow.PrimitiveTypes.Uint8
	case uint16:
		dt = arrow.PrimitiveTypes.Uint16
	case uint32:
		dt = arrow.PrimitiveTypes.Uint32
	case uint64:
		dt = arrow.PrimitiveTypes.Uint64
	case float32:
		dt = arrow.PrimitiveTypes.Float32
	case float64:
		dt = arrow.PrimitiveTypes.Float64
	case string:
		dt = arrow.BinaryTypes.String
	default:
		panic(fmt.Sprintf("Lit: unsupported literal value of type %T", value))
	}
	return &Literal{Value: value, Type: dt}
}

func (e *Literal) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return e.Type, nil
}

func (e *Literal) String() string {
	if e.Type.ID() == arrow.STRING {
		return fmt.Sprintf("Utf8(%q)", e.Value)
	}
	return fmt.Sprintf("%s(%v)", types.Name(e.Type), e.Value)
}

// Operator identifies the operation of a BinaryExpr.
type Operator int

const (
	Eq Operator = iota
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	Plus
	Minus
	Multiply
	Divide
	Modulo
	And
	Or
)

func (op Operator) String() string {
	switch op {
	case Eq:
		return "="
	case NotEq:
		return "!="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	case And:
		return "AND"
	case Or:
		return "OR"
	}
	return "???"
}

// returnsBoolean reports whether the operator yields a boolean result
// regardless of its operand types.
func (op Operator) returnsBoolean() bool {
	switch op {
	case Eq, NotEq, Lt, LtEq, Gt, GtEq, And, Or:
		return true
	}
	return false
}

// BinaryExpr applies an operator to two operands. The type-coercion pass
// guarantees that in an optimized plan both operands resolve to the same
// type.
type BinaryExpr struct {
	Left  Expr
	Op    Operator
	Right Expr
}

func NewBinaryExpr(left Expr, op Operator, right Expr) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

func (e *BinaryExpr) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	leftType, err := e.Left.ResolvedType(schema)
	if err != nil {
		return nil, err
	}
	if _, err := e.Right.ResolvedType(schema); err != nil {
		return nil, err
	}
	if e.Op.returnsBoolean() {
		return arrow.FixedWidthTypes.Boolean, nil
	}
	// Arithmetic: after coercion both sides share the left type.
	return leftType, nil
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Op, e.Right)
}

// Not is the logical negation of a boolean expression.
type Not struct {
	Expr Expr
}

func NewNot(inner Expr) *Not {
	return &Not{Expr: inner}
}

func (e *Not) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	if _, err := e.Expr.ResolvedType(schema); err != nil {
		return nil, err
	}
	return arrow.FixedWidthTypes.Boolean, nil
}

func (e *Not) String() string {
	return fmt.Sprintf("NOT %s", e.Expr)
}

type NullCheckKind int

const (
	IsNull NullCheckKind = iota
	IsNotNull
)

func (k NullCheckKind) String() string {
	switch k {
	case IsNull:
		return "IS NULL"
	case IsNotNull:
		return "IS NOT NULL"
	}
	return "???"
}

// NullCheck is an IS NULL / IS NOT NULL predicate. Null checks are
// type-agnostic: the inner expression may be of any resolvable type.
type NullCheck struct {
	Expr Expr
	Kind NullCheckKind
}

func NewNullCheck(inner Expr, kind NullCheckKind) *NullCheck {
	return &NullCheck{Expr: inner, Kind: kind}
}

func (e *NullCheck) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	if _, err := e.Expr.ResolvedType(schema); err != nil {
		return nil, err
	}
	return arrow.FixedWidthTypes.Boolean, nil
}

func (e *NullCheck) String() string {
	return fmt.Sprintf("%s %s", e.Expr, e.Kind)
}

// Cast converts its inner expression to an explicit target type. The
// coercion pass inserts these; user plans may also carry them directly.
type Cast struct {
	Expr Expr
	To   arrow.DataType
}

func NewCast(inner Expr, to arrow.DataType) *Cast {
	return &Cast{Expr: inner, To: to}
}

func (e *Cast) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return e.To, nil
}

func (e *Cast) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", e.Expr, types.Name(e.To))
}

// CastTo wraps e in a Cast to the target type, unless e already resolves
// to that type under the schema, in which case e is returned unchanged.
// This is what keeps repeated optimization passes from stacking
// redundant casts.
func CastTo(e Expr, to arrow.DataType, schema *arrow.Schema) (Expr, error) {
	dt, err := e.ResolvedType(schema)
	if err != nil {
		return nil, err
	}
	if arrow.TypeEqual(dt, to) {
		return e, nil
	}
	return &Cast{Expr: e, To: to}, nil
}

// Alias names the result of its inner expression.
type Alias struct {
	Expr Expr
	Name string
}

func NewAlias(inner Expr, name string) *Alias {
	return &Alias{Expr: inner, Name: name}
}

func (e *Alias) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return e.Expr.ResolvedType(schema)
}

func (e *Alias) String() string {
	return fmt.Sprintf("%s AS %s", e.Expr, e.Name)
}

// ScalarFunctionExpr is a call to a registered scalar function. The
// return type is fixed when the plan is built; only argument types are
// subject to coercion.
type ScalarFunctionExpr struct {
	Name       string
	Args       []Expr
	ReturnType arrow.DataType
}

func NewScalarFunctionExpr(name string, args []Expr, returnType arrow.DataType) *ScalarFunctionExpr {
	return &ScalarFunctionExpr{Name: name, Args: args, ReturnType: returnType}
}

func (e *ScalarFunctionExpr) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return e.ReturnType, nil
}

func (e *ScalarFunctionExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, exprListString(e.Args))
}

// AggregateFunctionExpr is an aggregate call (SUM, MIN, COUNT, ...).
// Aggregates are not looked up in the scalar-function registry; their
// arguments pass through coercion without a declared target type.
type AggregateFunctionExpr struct {
	Name       string
	Args       []Expr
	ReturnType arrow.DataType
}

func NewAggregateFunctionExpr(name string, args []Expr, returnType arrow.DataType) *AggregateFunctionExpr {
	return &AggregateFunctionExpr{Name: name, Args: args, ReturnType: returnType}
}

func (e *AggregateFunctionExpr) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return e.ReturnType, nil
}

func (e *AggregateFunctionExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Name, exprListString(e.Args))
}

// SortExpr wraps an expression with a sort direction for use in a Sort
// node's key list.
type SortExpr struct {
	Expr       Expr
	Ascending  bool
	NullsFirst bool
}

func NewSortExpr(inner Expr, ascending, nullsFirst bool) *SortExpr {
	return &SortExpr{Expr: inner, Ascending: ascending, NullsFirst: nullsFirst}
}

func (e *SortExpr) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return e.Expr.ResolvedType(schema)
}

func (e *SortExpr) String() string {
	dir := "ASC"
	if !e.Ascending {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", e.Expr, dir)
}

// Wildcard is the unexpanded `*` projection placeholder. It is only
// legal in unresolved plans; resolving a plan expands it to concrete
// columns, so any wildcard reaching an optimizer rule is an error.
type Wildcard struct{}

func NewWildcard() *Wildcard {
	return &Wildcard{}
}

func (e *Wildcard) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return nil, common.Errorf(common.InvalidWildcardError,
		"wildcard expressions are not valid in a resolved logical plan")
}

func (e *Wildcard) String() string {
	return "*"
}

// Nested is a transparent parenthesized wrapper. It preserves textual
// grouping in unoptimized plans; rewrites discard it.
type Nested struct {
	Expr Expr
}

func NewNested(inner Expr) *Nested {
	return &Nested{Expr: inner}
}

func (e *Nested) ResolvedType(schema *arrow.Schema) (arrow.DataType, error) {
	return e.Expr.ResolvedType(schema)
}

func (e *Nested) String() string {
	return fmt.Sprintf("(%s)", e.Expr)
}

func exprListString(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
