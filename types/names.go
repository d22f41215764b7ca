package types

import "github.com/apache/arrow-go/v18/arrow"

// Name renders a data type for diagnostics, EXPLAIN output, and the
// textual form of inserted casts (`CAST(expr AS Int64)`). Names are
// CamelCase and stable; tests assert on them.
func Name(dt arrow.DataType) string {
	switch dt.ID() {
	case arrow.NULL:
		return "Null"
	case arrow.BOOL:
		return "Boolean"
	case arrow.INT8:
		return "Int8"
	case arrow.INT16:
		return "Int16"
	case arrow.INT32:
		return "Int32"
	case arrow.INT64:
		return "Int64"
	case arrow.UINT8:
		return "UInt8"
	case arrow.UINT16:
		return "UInt16"
	case arrow.UINT32:
		return "UInt32"
	case arrow.UINT64:
		return "UInt64"
	case arrow.FLOAT16:
		return "Float16"
	case arrow.FLOAT32:
		return "Float32"
	case arrow.FLOAT64:
		return "Float64"
	case arrow.STRING:
		return "Utf8"
	case arrow.DECIMAL128:
		return "Decimal128"
	case arrow.DATE32:
		return "Date32"
	case arrow.DATE64:
		return "Date64"
	case arrow.TIMESTAMP:
		return "Timestamp"
	}
	return dt.String()
}
