// Package types implements the type lattice used by the planner: the
// supertype relation that decides, for a pair of Arrow data types, the
// minimal common type both can be losslessly promoted to.
package types

import (
	"github.com/apache/arrow-go/v18/arrow"

	"mit.edu/dsg/arrowdb/common"
)

// Supertype returns the minimal common type that both l and r can be
// losslessly cast to, or an IncompatibleTypesError if no such type
// exists. The relation is symmetric, and Supertype(t, t) == t for every
// type t.
//
// Promotion rules:
//   - two signed integers promote to the wider signed width;
//   - two unsigned integers promote to the wider unsigned width;
//   - an unsigned integer paired with a signed integer first promotes
//     into the signed type that can represent its full range (UInt8 ->
//     Int16, UInt16 -> Int32, UInt32 -> Int64; UInt64 has no signed
//     container and never mixes with signed types), then the wider of
//     that and the signed operand wins;
//   - any integer paired with a floating type promotes to that floating
//     type, and two floating types promote to the wider one.
//
// Anything outside those families (strings, booleans, decimals,
// temporal types) only promotes to itself; mixed pairs fail.
func Supertype(l, r arrow.DataType) (arrow.DataType, error) {
	if arrow.TypeEqual(l, r) {
		return l, nil
	}
	if isFloating(l.ID()) || isFloating(r.ID()) {
		if super, ok := floatingSupertype(l, r); ok {
			return super, nil
		}
	} else if isInteger(l.ID()) && isInteger(r.ID()) {
		if super, ok := integerSupertype(l, r); ok {
			return super, nil
		}
	}
	return nil, common.Errorf(common.IncompatibleTypesError,
		"no common supertype for types %s and %s", Name(l), Name(r))
}

func isFloating(id arrow.Type) bool {
	switch id {
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return true
	}
	return false
}

func isInteger(id arrow.Type) bool {
	switch id {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return true
	}
	return false
}

func isSigned(id arrow.Type) bool {
	switch id {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64:
		return true
	}
	return false
}

// bitWidth returns the storage width of a fixed-width numeric type, used
// to order types within a single family.
func bitWidth(id arrow.Type) int {
	switch id {
	case arrow.INT8, arrow.UINT8:
		return 8
	case arrow.INT16, arrow.UINT16, arrow.FLOAT16:
		return 16
	case arrow.INT32, arrow.UINT32, arrow.FLOAT32:
		return 32
	case arrow.INT64, arrow.UINT64, arrow.FLOAT64:
		return 64
	}
	common.Assert(false, "bitWidth: non-numeric type id %v", id)
	return 0
}

func signedType(width int) arrow.DataType {
	switch width {
	case 8:
		return arrow.PrimitiveTypes.Int8
	case 16:
		return arrow.PrimitiveTypes.Int16
	case 32:
		return arrow.PrimitiveTypes.Int32
	case 64:
		return arrow.PrimitiveTypes.Int64
	}
	common.Assert(false, "signedType: invalid width %d", width)
	return nil
}

func unsignedType(width int) arrow.DataType {
	switch width {
	case 8:
		return arrow.PrimitiveTypes.Uint8
	case 16:
		return arrow.PrimitiveTypes.Uint16
	case 32:
		return arrow.PrimitiveTypes.Uint32
	case 64:
		return arrow.PrimitiveTypes.Uint64
	}
	common.Assert(false, "unsignedType: invalid width %d", width)
	return nil
}

func floatingType(width int) arrow.DataType {
	switch width {
	case 16:
		return arrow.FixedWidthTypes.Float16
	case 32:
		return arrow.PrimitiveTypes.Float32
	case 64:
		return arrow.PrimitiveTypes.Float64
	}
	common.Assert(false, "floatingType: invalid width %d", width)
	return nil
}

// floatingSupertype handles pairs where at least one side is floating.
// The other side must be numeric; the result is the wider floating type
// involved (an integer always yields to its floating peer).
func floatingSupertype(l, r arrow.DataType) (arrow.DataType, bool) {
	lid, rid := l.ID(), r.ID()
	switch {
	case isFloating(lid) && isFloating(rid):
		return floatingType(max(bitWidth(lid), bitWidth(rid))), true
	case isFloating(lid) && isInteger(rid):
		return l, true
	case isInteger(lid) && isFloating(rid):
		return r, true
	}
	return nil, false
}

// integerSupertype handles pairs of integer types of any signedness.
func integerSupertype(l, r arrow.DataType) (arrow.DataType, bool) {
	lid, rid := l.ID(), r.ID()
	switch {
	case isSigned(lid) == isSigned(rid):
		// Same family: wider width wins.
		width := max(bitWidth(lid), bitWidth(rid))
		if isSigned(lid) {
			return signedType(width), true
		}
		return unsignedType(width), true
	default:
		unsigned, signed := lid, rid
		if isSigned(lid) {
			unsigned, signed = rid, lid
		}
		// UInt64 cannot be represented by any signed type.
		if bitWidth(unsigned) == 64 {
			return nil, false
		}
		// Promote the unsigned side into the next signed width so its
		// full range is representable, then take the wider signed type.
		container := bitWidth(unsigned) * 2
		return signedType(max(container, bitWidth(signed))), true
	}
}
