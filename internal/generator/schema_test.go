package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

func TestSchemaGeneratorEmitsRequestedTableCount(t *testing.T) {
	g := NewSchemaGenerator()
	objects := g.Generate(nil, Request{Tables: 3})

	require.Len(t, g.Tables(), 3)
	var tableObjs []*types.SQLObject
	for _, obj := range objects {
		if obj.Kind == types.KindTable {
			tableObjs = append(tableObjs, obj)
		}
	}
	assert.Len(t, tableObjs, 3)
}

func TestTableObjectsDeclareForeignKeyDependencies(t *testing.T) {
	g := NewSchemaGenerator()
	objects := g.Generate(nil, Request{Tables: 8})

	byName := make(map[string]*types.SQLObject)
	for _, obj := range objects {
		if obj.Kind == types.KindTable {
			byName[obj.Name] = obj
		}
	}

	require.Contains(t, byName, "ORDER_ITEMS")
	assert.Contains(t, byName["ORDER_ITEMS"].DependsOn, "ORDERS")
	assert.Contains(t, byName["ORDER_ITEMS"].DependsOn, "PRODUCTS")
	assert.Contains(t, byName["EMPLOYEES"].DependsOn, "DEPARTMENTS")
	assert.Contains(t, byName["EMPLOYEES"].DependsOn, "JOBS")
}

func TestForeignKeyConstraintsFilteredToIncludedTables(t *testing.T) {
	g := NewSchemaGenerator()
	// Only EMPLOYEES..PRODUCTS; ORDERS and friends are absent.
	objects := g.Generate(nil, Request{Tables: 5})

	for _, obj := range objects {
		if obj.Name == "FOREIGN_KEYS" {
			assert.NotContains(t, obj.Body, "ORD_CUST_FK")
			assert.Contains(t, obj.Body, "EMP_DEPT_FK")
			return
		}
	}
	t.Fatal("FOREIGN_KEYS object not generated")
}

func TestCreateTableBody(t *testing.T) {
	g := NewSchemaGenerator()
	objects := g.Generate(nil, Request{Tables: 1, IncludeStorage: true})

	table := objects[0]
	require.Equal(t, types.KindTable, table.Kind)
	assert.Contains(t, table.Body, "CREATE TABLE EMPLOYEES")
	assert.Contains(t, table.Body, "LAST_NAME VARCHAR2(25) NOT NULL")
	assert.Contains(t, table.Body, "CONSTRAINT EMPLOYEES_PK PRIMARY KEY (EMPLOYEE_ID)")
	assert.Contains(t, table.Body, "TABLESPACE USERS")
	assert.True(t, strings.HasSuffix(table.Body, ";"))
}

func TestSequencesOnlyForNumericPrimaryKeys(t *testing.T) {
	g := NewSchemaGenerator()
	objects := g.Generate(nil, Request{Tables: 8})

	for _, obj := range objects {
		if obj.Kind == types.KindSequence {
			assert.Contains(t, obj.Body, "CREATE SEQUENCE EMPLOYEES_SEQ")
			assert.Contains(t, obj.Body, "START WITH 1000")
			// JOBS has a VARCHAR2 primary key and ORDER_ITEMS has none.
			assert.NotContains(t, obj.Body, "JOBS_SEQ")
			assert.NotContains(t, obj.Body, "ORDER_ITEMS_SEQ")
			return
		}
	}
	t.Fatal("SEQUENCES object not generated")
}

func TestUniqueIndexesForUniqueColumns(t *testing.T) {
	g := NewSchemaGenerator()
	objects := g.Generate(nil, Request{Tables: 8})

	var indexes []string
	for _, obj := range objects {
		if obj.Kind == types.KindIndex {
			indexes = append(indexes, obj.Name)
			assert.Len(t, obj.DependsOn, 1)
		}
	}
	assert.Contains(t, indexes, "EMPLOYEES_EMAIL_UK")
	assert.Contains(t, indexes, "CUSTOMERS_EMAIL_UK")
}

func TestCustomTablesReplaceCatalog(t *testing.T) {
	custom := []*types.TableSpec{
		{Name: "WIDGETS", Columns: []types.ColumnSpec{
			col("WIDGETS", "WIDGET_ID", "NUMBER(6)", types.ConstraintPrimaryKey),
			col("WIDGETS", "WIDGET_NAME", "VARCHAR2(30)", types.ConstraintNotNull),
		}},
	}

	g := NewSchemaGenerator()
	objects := g.Generate(nil, Request{Tables: 5, CustomTables: custom})

	require.Len(t, g.Tables(), 1)
	assert.Equal(t, "WIDGETS", objects[0].Name)
	assert.Contains(t, objects[0].Body, "CREATE TABLE WIDGETS")
}
