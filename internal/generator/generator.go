package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// Request carries the per-run generation parameters every generator reads.
type Request struct {
	Schemas        []string
	Tables         int
	RowsPerTable   int
	Triggers       int
	Procedures     int
	Functions      int
	Packages       int
	Lobs           int
	IncludeStorage bool

	// CustomTables replaces the built-in table catalog when non-empty,
	// typically loaded from a YAML schema file.
	CustomTables []*types.TableSpec
}

// Generator produces schema objects from the shared table specs. Generators
// never mutate the specs or each other's output.
type Generator interface {
	Name() string
	Generate(tables []*types.TableSpec, req Request) []*types.SQLObject
}
