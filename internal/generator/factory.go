package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/synth"
)

// CreateGenerators builds the non-structural generators a request calls
// for. A zero count means the generator is never instantiated, so no
// objects of its kinds can appear in the run.
func CreateGenerators(req Request, engine *synth.Engine) []Generator {
	var generators []Generator
	if req.RowsPerTable > 0 {
		generators = append(generators, NewDataGenerator(engine))
	}
	if req.Triggers > 0 {
		generators = append(generators, NewTriggerGenerator())
	}
	if req.Procedures > 0 {
		generators = append(generators, NewProcedureGenerator())
	}
	if req.Functions > 0 {
		generators = append(generators, NewFunctionGenerator())
	}
	if req.Packages > 0 {
		generators = append(generators, NewPackageGenerator())
	}
	if req.Lobs > 0 {
		generators = append(generators, NewLobGenerator())
	}
	return generators
}
