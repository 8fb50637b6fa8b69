package generator

import (
	"github.com/oraschemagen/oraschemagen/internal/types"
)

// plsqlTemplate is one canned PL/SQL object. The body text is opaque data;
// only the name, kind and table dependencies participate in ordering.
type plsqlTemplate struct {
	name string
	kind types.ObjectKind
	deps []string
	body string
}

// emitTemplates instantiates up to limit templates whose referenced tables
// are all present in the current run.
func emitTemplates(templates []plsqlTemplate, included map[string]bool, limit int) []*types.SQLObject {
	var objects []*types.SQLObject
	for _, tpl := range templates {
		if len(objects) >= limit {
			break
		}
		usable := true
		for _, dep := range tpl.deps {
			if !included[dep] {
				usable = false
				break
			}
		}
		if !usable {
			continue
		}
		obj := types.NewSQLObject(tpl.name, tpl.kind)
		obj.Body = tpl.body
		for _, dep := range tpl.deps {
			obj.AddDependency(dep)
		}
		objects = append(objects, obj)
	}
	return objects
}

func includedTables(tables []*types.TableSpec) map[string]bool {
	included := make(map[string]bool, len(tables))
	for _, table := range tables {
		included[table.Name] = true
	}
	return included
}
