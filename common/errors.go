package common

import "fmt"

type ArrowDBErrorCode int

const (
	// DuplicateObjectError indicates an attempt to register a table or
	// function that already exists in the catalog.
	DuplicateObjectError ArrowDBErrorCode = iota
	// NoSuchObjectError indicates a request for a table that does not
	// exist in the catalog.
	NoSuchObjectError
	// UnresolvableColumnError indicates a column reference whose name is
	// absent from the schema in effect for the expression.
	UnresolvableColumnError
	// UnknownFunctionError indicates a scalar function call whose name is
	// absent from the function registry.
	UnknownFunctionError
	// IncompatibleTypesError indicates a pair of types with no common
	// supertype; no lossless coercion exists between them.
	IncompatibleTypesError
	// InvalidWildcardError indicates a wildcard expression that survived
	// into a resolved plan. Wildcards must be expanded to concrete
	// columns before any optimizer rule runs.
	InvalidWildcardError
	// PlanValidationError is returned by the plan builder when a
	// reconstructed node is structurally invalid (e.g. duplicate output
	// field names after a projection).
	PlanValidationError
)

func (ec ArrowDBErrorCode) String() string {
	switch ec {
	case DuplicateObjectError:
		return "DuplicateObjectError"
	case NoSuchObjectError:
		return "NoSuchObjectError"
	case UnresolvableColumnError:
		return "UnresolvableColumnError"
	case UnknownFunctionError:
		return "UnknownFunctionError"
	case IncompatibleTypesError:
		return "IncompatibleTypesError"
	case InvalidWildcardError:
		return "InvalidWildcardError"
	case PlanValidationError:
		return "PlanValidationError"
	}
	return "unknown"
}

// ArrowDBError is the custom error type for the planner.
// It wraps a specific ArrowDBErrorCode with a detailed message.
//
// Every error raised during plan rewriting is fatal to the pass that
// raised it: errors propagate bottom-up and the first one aborts the
// whole optimization with no partial plan.
type ArrowDBError struct {
	Code      ArrowDBErrorCode
	ErrString string
}

func (e ArrowDBError) Error() string {
	return fmt.Sprintf("err: %s; msg: %s", e.Code.String(), e.ErrString)
}

// Errorf constructs an ArrowDBError with a formatted message.
func Errorf(code ArrowDBErrorCode, format string, args ...any) ArrowDBError {
	return ArrowDBError{Code: code, ErrString: fmt.Sprintf(format, args...)}
}
