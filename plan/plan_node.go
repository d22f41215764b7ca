package plan

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// LogicalPlan represents the static structure of a query plan.
// Every node is immutable, exclusively owns its children, and carries an
// Arrow schema describing its output shape. Schemas are derived from a
// node's inputs and expressions when the node is constructed, never set
// by hand.
type LogicalPlan interface {
	// Schema returns the schema of the rows produced by this node.
	Schema() *arrow.Schema

	// Children returns the child plan nodes.
	Children() []LogicalPlan

	// String returns a one-line string representation of the node.
	String() string
}

// exprField derives the output field an expression contributes to a
// node's schema. Columns keep their input field's name and nullability;
// aliases rename; casts keep the underlying name with the new type; all
// other expressions are named by their rendering.
func exprField(e Expr, input *arrow.Schema) (arrow.Field, error) {
	if col, ok := e.(*Column); ok {
		indices := input.FieldIndices(col.Name)
		if len(indices) > 0 {
			return input.Field(indices[0]), nil
		}
	}
	dt, err := e.ResolvedType(input)
	if err != nil {
		return arrow.Field{}, err
	}
	return arrow.Field{Name: fieldName(e), Type: dt, Nullable: true}, nil
}

func fieldName(e Expr) string {
	switch t := e.(type) {
	case *Column:
		return t.Name
	case *Alias:
		return t.Name
	case *Cast:
		return fieldName(t.Expr)
	case *Nested:
		return fieldName(t.Expr)
	default:
		return e.String()
	}
}
