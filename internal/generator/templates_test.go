package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

func allTables() []*types.TableSpec {
	g := NewSchemaGenerator()
	g.Generate(nil, Request{Tables: 8})
	return g.Tables()
}

func TestTriggerCountIsRespected(t *testing.T) {
	g := NewTriggerGenerator()
	objects := g.Generate(allTables(), Request{Triggers: 3})

	require.Len(t, objects, 3)
	for _, obj := range objects {
		assert.Equal(t, types.KindTrigger, obj.Kind)
		assert.NotEmpty(t, obj.DependsOn)
		assert.Contains(t, obj.Body, "CREATE OR REPLACE TRIGGER "+obj.Name)
	}
}

func TestTemplatesSkipMissingTables(t *testing.T) {
	g := NewSchemaGenerator()
	g.Generate(nil, Request{Tables: 2}) // EMPLOYEES, DEPARTMENTS

	objects := NewProcedureGenerator().Generate(g.Tables(), Request{Procedures: 10})
	for _, obj := range objects {
		for _, dep := range obj.DependsOn {
			assert.Contains(t, []string{"EMPLOYEES", "DEPARTMENTS"}, dep,
				"procedure %s references a table outside the run", obj.Name)
		}
	}
}

func TestPackageGeneratorCyclesSchemas(t *testing.T) {
	tables := allTables()
	g := NewPackageGenerator()
	objects := g.Generate(tables, Request{Packages: 3, Schemas: []string{"HR", "FINANCE"}})

	require.Len(t, objects, 3)
	assert.Equal(t, "HR_PKG_1", objects[0].Name)
	assert.Equal(t, "FINANCE_PKG_2", objects[1].Name)
	assert.Equal(t, "HR_PKG_3", objects[2].Name)
	for _, obj := range objects {
		assert.Equal(t, types.KindPackage, obj.Kind)
		assert.Len(t, obj.DependsOn, len(tables))
		assert.Contains(t, obj.Body, "CREATE OR REPLACE PACKAGE "+obj.Name)
		assert.Contains(t, obj.Body, "CREATE OR REPLACE PACKAGE BODY "+obj.Name)
	}
}

func TestLobGeneratorEmitsLobHelpers(t *testing.T) {
	objects := NewLobGenerator().Generate(allTables(), Request{Lobs: 2})

	require.Len(t, objects, 2)
	assert.Equal(t, "APPEND_TO_CLOB", objects[0].Name)
	assert.Equal(t, types.KindProcedure, objects[0].Kind)
	assert.Equal(t, "GET_CLOB_SUBSTRING", objects[1].Name)
	assert.Equal(t, types.KindFunction, objects[1].Kind)
}
