package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

func TestLoadAppliesDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"TEST_SCHEMA"}, cfg.Schemas)
	assert.Equal(t, 5, cfg.Tables)
	assert.Equal(t, 100, cfg.DataRows)
	assert.Equal(t, 3, cfg.Triggers)
	assert.Equal(t, 1, cfg.Packages)
	assert.Equal(t, "generated_sql", cfg.OutputDir)
	assert.Equal(t, "partitioned", cfg.OutputMode)
	assert.True(t, cfg.IncludeStorage)
	assert.Equal(t, 3000, cfg.Ranges.SalaryMin)
	assert.Equal(t, 20000, cfg.Ranges.SalaryMax)
}

func TestLoadHonorsExplicitZero(t *testing.T) {
	viper.Reset()
	viper.Set("tables", 0)
	viper.Set("data_rows", 0)
	viper.Set("triggers", 0)
	defer viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Zero(t, cfg.Tables)
	assert.Zero(t, cfg.DataRows)
	assert.Zero(t, cfg.Triggers)
}

func TestValidate(t *testing.T) {
	cfg := &Config{OutputDir: "out", OutputMode: "consolidated"}
	assert.NoError(t, cfg.Validate())

	cfg.OutputMode = "scattered"
	assert.ErrorContains(t, cfg.Validate(), "unsupported output mode")

	cfg = &Config{OutputMode: "partitioned"}
	assert.ErrorContains(t, cfg.Validate(), "output_dir")
}

func writeSchemaFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestLoadSchemaFile(t *testing.T) {
	path := writeSchemaFile(t, `
tables:
  - name: widgets
    columns:
      - name: widget_id
        type: number(6)
        constraints: [primary key, not null]
      - name: label
        type: varchar2(40)
`)

	tables, err := LoadSchemaFile(path)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "WIDGETS", table.Name)
	require.Len(t, table.Columns, 2)
	assert.Equal(t, "WIDGET_ID", table.Columns[0].Name)
	assert.Equal(t, "NUMBER(6)", table.Columns[0].Type)
	assert.True(t, table.Columns[0].HasConstraint(types.ConstraintPrimaryKey))
	assert.Equal(t, []string{"WIDGET_ID"}, table.PrimaryKeyColumns())
}

func TestLoadSchemaFileRejectsBadInput(t *testing.T) {
	_, err := LoadSchemaFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read schema file")

	_, err = LoadSchemaFile(writeSchemaFile(t, "tables: []"))
	assert.ErrorContains(t, err, "defines no tables")

	_, err = LoadSchemaFile(writeSchemaFile(t, `
tables:
  - name: t
    columns:
      - name: a
        type: ""
`))
	assert.ErrorContains(t, err, "missing name or type")

	_, err = LoadSchemaFile(writeSchemaFile(t, `
tables:
  - name: t
    columns:
      - name: a
        type: number(4)
        constraints: [primary key]
      - name: b
        type: number(4)
        constraints: [primary key]
`))
	assert.ErrorContains(t, err, "more than one primary key")
}
