package catalog

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mit.edu/dsg/arrowdb/common"
)

func testTableSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)
}

func TestCreateAndLookup(t *testing.T) {
	c := NewCatalog()
	schema := testTableSchema()

	created, err := c.CreateTable("people", schema)
	require.NoError(t, err)
	assert.Equal(t, "people", created.Name)

	got, err := c.Table("people")
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.True(t, got.Schema.Equal(schema))
}

func TestDuplicateTable(t *testing.T) {
	c := NewCatalog()
	_, err := c.CreateTable("people", testTableSchema())
	require.NoError(t, err)

	_, err = c.CreateTable("people", testTableSchema())
	require.Error(t, err)
	var dbErr common.ArrowDBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, common.DuplicateObjectError, dbErr.Code)
}

func TestMissingTable(t *testing.T) {
	c := NewCatalog()
	_, err := c.Table("ghost")
	require.Error(t, err)
	var dbErr common.ArrowDBError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, common.NoSuchObjectError, dbErr.Code)
}

func TestListTablesSorted(t *testing.T) {
	c := NewCatalog()
	for _, name := range []string{"orders", "customers", "items"} {
		_, err := c.CreateTable(name, testTableSchema())
		require.NoError(t, err)
	}

	tables := c.ListTables()
	require.Len(t, tables, 3)
	names := []string{tables[0].Name, tables[1].Name, tables[2].Name}
	assert.Equal(t, []string{"customers", "items", "orders"}, names)
}
