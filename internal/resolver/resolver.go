package resolver

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// Order sorts objects so that, within any acyclic subset, every object
// appears after all of its in-collection dependencies. The traversal is a
// depth-first postorder over the name->object map. Cycles are tolerated:
// revisiting a node that is still on the current path unwinds that branch
// and the cyclic subset is emitted in whatever partial order was reached.
// Dependencies naming objects absent from the input are skipped. Every
// input object appears exactly once in the result; ties between
// independent objects keep input order.
func Order(objects []*types.SQLObject) []*types.SQLObject {
	byName := make(map[string]*types.SQLObject, len(objects))
	for _, obj := range objects {
		if _, exists := byName[obj.Name]; !exists {
			byName[obj.Name] = obj
		}
	}

	visited := make(map[string]bool, len(objects))
	inProgress := make(map[string]bool)
	result := make([]*types.SQLObject, 0, len(objects))

	var visit func(obj *types.SQLObject)
	visit = func(obj *types.SQLObject) {
		if visited[obj.Name] {
			return
		}
		if inProgress[obj.Name] {
			// Circular dependency; unwind and keep going.
			return
		}

		inProgress[obj.Name] = true
		for _, dep := range obj.DependsOn {
			if target, ok := byName[dep]; ok {
				visit(target)
			}
		}
		delete(inProgress, obj.Name)

		visited[obj.Name] = true
		result = append(result, obj)
	}

	for _, obj := range objects {
		visit(obj)
	}

	// Objects sharing a name with an earlier object never enter the map,
	// so append them here to keep the ordering total.
	if len(result) < len(objects) {
		emitted := make(map[*types.SQLObject]bool, len(result))
		for _, obj := range result {
			emitted[obj] = true
		}
		for _, obj := range objects {
			if !emitted[obj] {
				result = append(result, obj)
			}
		}
	}

	return result
}
