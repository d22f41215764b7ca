package plan

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// TableScan reads a named table registered in the catalog. The schema is
// supplied at construction; this module never opens storage.
type TableScan struct {
	TableName string
	schema    *arrow.Schema
}

func NewTableScan(tableName string, schema *arrow.Schema) *TableScan {
	return &TableScan{TableName: tableName, schema: schema}
}

func (n *TableScan) Schema() *arrow.Schema {
	return n.schema
}

func (n *TableScan) Children() []LogicalPlan {
	return nil
}

func (n *TableScan) String() string {
	return fmt.Sprintf("TableScan: %s", n.TableName)
}

// InMemoryScan reads rows held by the caller.
type InMemoryScan struct {
	schema *arrow.Schema
}

func NewInMemoryScan(schema *arrow.Schema) *InMemoryScan {
	return &InMemoryScan{schema: schema}
}

func (n *InMemoryScan) Schema() *arrow.Schema {
	return n.schema
}

func (n *InMemoryScan) Children() []LogicalPlan {
	return nil
}

func (n *InMemoryScan) String() string {
	return "InMemoryScan"
}

// ParquetScan reads a Parquet file whose schema was inferred upstream.
type ParquetScan struct {
	Path   string
	schema *arrow.Schema
}

func NewParquetScan(path string, schema *arrow.Schema) *ParquetScan {
	return &ParquetScan{Path: path, schema: schema}
}

func (n *ParquetScan) Schema() *arrow.Schema {
	return n.schema
}

func (n *ParquetScan) Children() []LogicalPlan {
	return nil
}

func (n *ParquetScan) String() string {
	return fmt.Sprintf("ParquetScan: %s", n.Path)
}

// CsvScan reads a CSV file whose schema was inferred upstream.
type CsvScan struct {
	Path      string
	HasHeader bool
	schema    *arrow.Schema
}

func NewCsvScan(path string, hasHeader bool, schema *arrow.Schema) *CsvScan {
	return &CsvScan{Path: path, HasHeader: hasHeader, schema: schema}
}

func (n *CsvScan) Schema() *arrow.Schema {
	return n.schema
}

func (n *CsvScan) Children() []LogicalPlan {
	return nil
}

func (n *CsvScan) String() string {
	return fmt.Sprintf("CsvScan: %s", n.Path)
}

// EmptyRelation produces zero rows of the given schema.
type EmptyRelation struct {
	schema *arrow.Schema
}

func NewEmptyRelation(schema *arrow.Schema) *EmptyRelation {
	return &EmptyRelation{schema: schema}
}

func (n *EmptyRelation) Schema() *arrow.Schema {
	return n.schema
}

func (n *EmptyRelation) Children() []LogicalPlan {
	return nil
}

func (n *EmptyRelation) String() string {
	return "EmptyRelation"
}

// FileType identifies the storage format of an external table.
type FileType int

const (
	FileTypeCSV FileType = iota
	FileTypeParquet
)

func (ft FileType) String() string {
	switch ft {
	case FileTypeCSV:
		return "CSV"
	case FileTypeParquet:
		return "Parquet"
	}
	return "???"
}

// CreateExternalTable registers an external file as a named table. It is
// a leaf: it produces no rows and carries no rewritable expressions.
type CreateExternalTable struct {
	TableName string
	Location  string
	FileType  FileType
	schema    *arrow.Schema
}

func NewCreateExternalTable(tableName, location string, fileType FileType, schema *arrow.Schema) *CreateExternalTable {
	return &CreateExternalTable{
		TableName: tableName,
		Location:  location,
		FileType:  fileType,
		schema:    schema,
	}
}

func (n *CreateExternalTable) Schema() *arrow.Schema {
	return n.schema
}

func (n *CreateExternalTable) Children() []LogicalPlan {
	return nil
}

func (n *CreateExternalTable) String() string {
	return fmt.Sprintf("CreateExternalTable: %s", n.TableName)
}
