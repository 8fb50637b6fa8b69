package generator

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/oraschemagen/oraschemagen/internal/synth"
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// DataGenerator emits one DATA object per table holding batched INSERT
// statements. Batches bound the size of any single statement block; the
// batch size shrinks as the requested row count grows.
type DataGenerator struct {
	engine *synth.Engine
}

func NewDataGenerator(engine *synth.Engine) *DataGenerator {
	return &DataGenerator{engine: engine}
}

func (g *DataGenerator) Name() string { return "data" }

func batchSize(rows int) int {
	switch {
	case rows > 100000:
		return 10000
	case rows > 10000:
		return 5000
	default:
		return 1000
	}
}

func (g *DataGenerator) Generate(tables []*types.TableSpec, req Request) []*types.SQLObject {
	var objects []*types.SQLObject
	for _, table := range tables {
		obj := types.NewSQLObject(table.Name+"_DATA", types.KindData)
		obj.Body = g.tableData(table, req.RowsPerTable)
		obj.AddDependency(table.Name)
		objects = append(objects, obj)
	}
	return objects
}

func (g *DataGenerator) tableData(table *types.TableSpec, rows int) string {
	var b strings.Builder
	b.WriteString("-- Data for " + table.Name)

	batch := batchSize(rows)
	remaining := rows
	for remaining > 0 {
		current := batch
		if remaining < current {
			current = remaining
		}
		for i := 0; i < current; i++ {
			b.WriteString("\n")
			b.WriteString(g.insertStatement(table))
		}
		if rows > batch {
			b.WriteString("\nCOMMIT;")
		}
		remaining -= current
	}
	return b.String()
}

func (g *DataGenerator) insertStatement(table *types.TableSpec) string {
	values := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		values[i] = sq.Expr(g.engine.Value(col, table.Name))
	}

	stmt, _, err := sq.Insert(table.Name).
		Columns(table.ColumnNames()...).
		Values(values...).
		ToSql()
	if err != nil {
		// Insert building only fails on an empty column list, which the
		// catalog never produces.
		return "-- skipped row for " + table.Name
	}
	return stmt + ";"
}
