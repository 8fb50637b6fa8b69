package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

type schemaFile struct {
	Tables []schemaFileTable `yaml:"tables"`
}

type schemaFileTable struct {
	Name    string             `yaml:"name"`
	Columns []schemaFileColumn `yaml:"columns"`
}

type schemaFileColumn struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Constraints []string `yaml:"constraints"`
}

// LoadSchemaFile reads custom table definitions from a YAML document,
// replacing the built-in catalog for the run.
func LoadSchemaFile(path string) ([]*types.TableSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	var file schemaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("schema file %s defines no tables", path)
	}

	var tables []*types.TableSpec
	for _, t := range file.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("schema file %s: table with empty name", path)
		}
		name := strings.ToUpper(t.Name)
		spec := &types.TableSpec{Name: name}
		pkCount := 0
		for _, c := range t.Columns {
			if c.Name == "" || c.Type == "" {
				return nil, fmt.Errorf("schema file %s: table %s has a column missing name or type", path, name)
			}
			constraints := make([]string, 0, len(c.Constraints))
			for _, tag := range c.Constraints {
				constraints = append(constraints, strings.ToUpper(tag))
			}
			col := types.ColumnSpec{
				Table:       name,
				Name:        strings.ToUpper(c.Name),
				Type:        strings.ToUpper(c.Type),
				Constraints: constraints,
			}
			if col.HasConstraint(types.ConstraintPrimaryKey) {
				pkCount++
			}
			spec.Columns = append(spec.Columns, col)
		}
		if pkCount > 1 {
			return nil, fmt.Errorf("schema file %s: table %s declares more than one primary key column", path, name)
		}
		tables = append(tables, spec)
	}
	return tables, nil
}
