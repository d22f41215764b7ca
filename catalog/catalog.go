// Package catalog tracks the schemas of named tables. It is the
// read-only source of truth the planner consults when it turns a table
// name into a scan node; nothing here touches storage.
package catalog

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/tidwall/btree"

	"mit.edu/dsg/arrowdb/common"
)

// Table is the catalog entry for a named table: its name and the Arrow
// schema of the rows it produces.
type Table struct {
	Name   string
	Schema *arrow.Schema
}

type tableItem struct {
	name  string
	table *Table
}

// Catalog manages table metadata. Entries are kept in a B-tree ordered
// by name so listings are deterministic. The catalog is treated as
// immutable during planning: tables are registered up front by the
// session and only read afterwards.
type Catalog struct {
	tables *btree.BTreeG[tableItem]
}

func NewCatalog() *Catalog {
	less := func(a, b tableItem) bool {
		return a.name < b.name
	}
	return &Catalog{tables: btree.NewBTreeG(less)}
}

// CreateTable registers a table schema under a unique name.
func (c *Catalog) CreateTable(name string, schema *arrow.Schema) (*Table, error) {
	if _, found := c.tables.Get(tableItem{name: name}); found {
		return nil, common.Errorf(common.DuplicateObjectError,
			"table %q already exists", name)
	}
	table := &Table{Name: name, Schema: schema}
	c.tables.Set(tableItem{name: name, table: table})
	return table, nil
}

// Table looks up a table by name.
func (c *Catalog) Table(name string) (*Table, error) {
	item, found := c.tables.Get(tableItem{name: name})
	if !found {
		return nil, common.Errorf(common.NoSuchObjectError,
			"no table named %q", name)
	}
	return item.table, nil
}

// ListTables returns all registered tables in name order.
func (c *Catalog) ListTables() []*Table {
	tables := make([]*Table, 0, c.tables.Len())
	c.tables.Scan(func(item tableItem) bool {
		tables = append(tables, item.table)
		return true
	})
	return tables
}
