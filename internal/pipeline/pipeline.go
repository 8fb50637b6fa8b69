package pipeline

import (
	"github.com/oraschemagen/oraschemagen/internal/generator"
	"github.com/oraschemagen/oraschemagen/internal/synth"
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// Result is the accumulated output of one generation run.
type Result struct {
	Tables  []*types.TableSpec
	Objects []*types.SQLObject
}

// Run executes one generation run: the structural stage first, so its
// TableSpecs exist before any dependent stage, then the remaining
// generators in the fixed factory order. Each generator only reads the
// shared specs and appends to the run's collection.
func Run(req generator.Request, engine *synth.Engine) *Result {
	result := &Result{}

	schemaGen := generator.NewSchemaGenerator()
	result.Objects = append(result.Objects, schemaGen.Generate(nil, req)...)
	result.Tables = schemaGen.Tables()

	for _, gen := range generator.CreateGenerators(req, engine) {
		result.Objects = append(result.Objects, gen.Generate(result.Tables, req)...)
	}

	return result
}

// CountByKind reports how many objects of each kind the run produced.
func (r *Result) CountByKind() map[types.ObjectKind]int {
	counts := make(map[types.ObjectKind]int)
	for _, obj := range r.Objects {
		counts[obj.Kind]++
	}
	return counts
}
