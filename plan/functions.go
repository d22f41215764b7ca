package plan

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/puzpuzpuz/xsync/v3"

	"mit.edu/dsg/arrowdb/common"
)

// ScalarFunction is the registry metadata for a scalar function: the
// declared parameter fields, in order, and the declared return type.
type ScalarFunction struct {
	Name       string
	Args       []arrow.Field
	ReturnType arrow.DataType
}

// FunctionRegistry maps function names to their signatures. It is owned
// by a session context and registered into concurrently, so lookups go
// through a concurrent map; optimizer rules treat it as read-only input.
type FunctionRegistry struct {
	funcs *xsync.MapOf[string, *ScalarFunction]
}

func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		funcs: xsync.NewMapOf[string, *ScalarFunction](),
	}
}

// Register adds a function signature. Registering a name twice is an
// error; signatures are immutable for the life of the session.
func (r *FunctionRegistry) Register(fn *ScalarFunction) error {
	if _, loaded := r.funcs.LoadOrStore(fn.Name, fn); loaded {
		return common.Errorf(common.DuplicateObjectError,
			"function %q is already registered", fn.Name)
	}
	return nil
}

// Lookup returns the signature registered under name. Absence is
// reported with ok == false; callers decide how to surface it.
func (r *FunctionRegistry) Lookup(name string) (fn *ScalarFunction, ok bool) {
	return r.funcs.Load(name)
}

// Len returns the number of registered functions.
func (r *FunctionRegistry) Len() int {
	return r.funcs.Size()
}
