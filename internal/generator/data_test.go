package generator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraschemagen/oraschemagen/internal/synth"
	"github.com/oraschemagen/oraschemagen/internal/types"
)

func testEngine() *synth.Engine {
	return synth.NewEngine(rand.New(rand.NewSource(1)), synth.DefaultRanges())
}

func singleTable() []*types.TableSpec {
	return []*types.TableSpec{
		{Name: "T", Columns: []types.ColumnSpec{
			col("T", "PK", "NUMBER(6)", types.ConstraintPrimaryKey),
			col("T", "NAME", "VARCHAR2(20)"),
		}},
	}
}

func TestSingleRowProducesSingleInsert(t *testing.T) {
	g := NewDataGenerator(testEngine())
	objects := g.Generate(singleTable(), Request{RowsPerTable: 1})

	require.Len(t, objects, 1)
	obj := objects[0]
	assert.Equal(t, "T_DATA", obj.Name)
	assert.Equal(t, types.KindData, obj.Kind)
	assert.Equal(t, []string{"T"}, obj.DependsOn)

	assert.Equal(t, 1, strings.Count(obj.Body, "INSERT INTO T "))
	assert.Contains(t, obj.Body, "PK")
	assert.Contains(t, obj.Body, "NAME")
	assert.Contains(t, obj.Body, "T_SEQ.NEXTVAL")
	assert.NotContains(t, obj.Body, "COMMIT;")
}

func TestRowCountsAndBatchCommits(t *testing.T) {
	g := NewDataGenerator(testEngine())
	objects := g.Generate(singleTable(), Request{RowsPerTable: 2500})

	require.Len(t, objects, 1)
	body := objects[0].Body
	assert.Equal(t, 2500, strings.Count(body, "INSERT INTO T "))
	// 2500 rows at batch size 1000 gives three batches, each committed.
	assert.Equal(t, 3, strings.Count(body, "COMMIT;"))
}

func TestBatchSizeShrinksAsRowsGrow(t *testing.T) {
	assert.Equal(t, 1000, batchSize(100))
	assert.Equal(t, 1000, batchSize(10000))
	assert.Equal(t, 5000, batchSize(10001))
	assert.Equal(t, 10000, batchSize(100001))
}

func TestOneDataObjectPerTable(t *testing.T) {
	g := NewDataGenerator(testEngine())
	schemaGen := NewSchemaGenerator()
	schemaGen.Generate(nil, Request{Tables: 4})

	objects := g.Generate(schemaGen.Tables(), Request{RowsPerTable: 2})
	require.Len(t, objects, 4)
	for i, obj := range objects {
		assert.Equal(t, schemaGen.Tables()[i].Name+"_DATA", obj.Name)
		assert.Equal(t, 2, strings.Count(obj.Body, "INSERT INTO "+schemaGen.Tables()[i].Name+" "))
	}
}
