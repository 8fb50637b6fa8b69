package generator

import (
	"fmt"
	"strings"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

// PackageGenerator emits one PACKAGE spec+body pair per requested package,
// cycling through the configured schema names.
type PackageGenerator struct{}

func NewPackageGenerator() *PackageGenerator { return &PackageGenerator{} }

func (g *PackageGenerator) Name() string { return "package" }

func (g *PackageGenerator) Generate(tables []*types.TableSpec, req Request) []*types.SQLObject {
	schemas := req.Schemas
	if len(schemas) == 0 {
		schemas = []string{"UTIL"}
	}

	var objects []*types.SQLObject
	for i := 0; i < req.Packages; i++ {
		schema := schemas[i%len(schemas)]
		name := fmt.Sprintf("%s_PKG_%d", strings.ToUpper(schema), i+1)
		obj := types.NewSQLObject(name, types.KindPackage)
		obj.Body = buildPackage(name, tables)
		for _, table := range tables {
			obj.AddDependency(table.Name)
		}
		objects = append(objects, obj)
	}
	return objects
}

func buildPackage(name string, tables []*types.TableSpec) string {
	var spec, body strings.Builder

	spec.WriteString(fmt.Sprintf("CREATE OR REPLACE PACKAGE %s AS\n", name))
	body.WriteString(fmt.Sprintf("CREATE OR REPLACE PACKAGE BODY %s AS\n", name))

	for _, table := range tables {
		fn := "COUNT_" + table.Name
		spec.WriteString(fmt.Sprintf("  FUNCTION %s RETURN NUMBER;\n", fn))
		body.WriteString(fmt.Sprintf(`  FUNCTION %s RETURN NUMBER AS
    l_count NUMBER;
  BEGIN
    SELECT COUNT(*) INTO l_count FROM %s;
    RETURN l_count;
  END %s;
`, fn, table.Name, fn))
	}

	spec.WriteString(fmt.Sprintf("END %s;\n/", name))
	body.WriteString(fmt.Sprintf("END %s;\n/", name))
	return spec.String() + "\n\n" + body.String()
}
