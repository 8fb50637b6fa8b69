package generator

import (
	"fmt"
	"strings"

	"github.com/oraschemagen/oraschemagen/internal/synth"
	"github.com/oraschemagen/oraschemagen/internal/types"
)

const tableStorageClause = `
TABLESPACE USERS PCTFREE 10 PCTUSED 40 INITRANS 1 MAXTRANS 255
NOLOGGING STORAGE(INITIAL 65536 NEXT 1048576 MINEXTENTS 1 MAXEXTENTS 2147483645
PCTINCREASE 0 FREELISTS 1 FREELIST GROUPS 1
BUFFER_POOL DEFAULT FLASH_CACHE DEFAULT CELL_FLASH_CACHE DEFAULT)`

const indexStorageClause = `
TABLESPACE USERS PCTFREE 10 INITRANS 2 MAXTRANS 255 COMPUTE STATISTICS
STORAGE(INITIAL 65536 NEXT 1048576 MINEXTENTS 1 MAXEXTENTS 2147483645
PCTINCREASE 0 FREELISTS 1 FREELIST GROUPS 1
BUFFER_POOL DEFAULT FLASH_CACHE DEFAULT CELL_FLASH_CACHE DEFAULT)`

// SchemaGenerator is the structural generator. It is the sole source of
// TableSpecs, so the pipeline always runs it first.
type SchemaGenerator struct {
	tables []*types.TableSpec
}

func NewSchemaGenerator() *SchemaGenerator {
	return &SchemaGenerator{}
}

func (g *SchemaGenerator) Name() string { return "schema" }

// Tables returns the specs produced by the last Generate call.
func (g *SchemaGenerator) Tables() []*types.TableSpec { return g.tables }

func (g *SchemaGenerator) Generate(_ []*types.TableSpec, req Request) []*types.SQLObject {
	catalog := tableCatalog()
	if len(req.CustomTables) > 0 {
		catalog = req.CustomTables
	}
	count := req.Tables
	if count <= 0 || count > len(catalog) {
		count = len(catalog)
	}
	g.tables = catalog[:count]

	included := make(map[string]bool, count)
	for _, table := range g.tables {
		included[table.Name] = true
	}

	var objects []*types.SQLObject
	for _, table := range g.tables {
		obj := types.NewSQLObject(table.Name, types.KindTable)
		obj.Body = buildCreateTable(table, req.IncludeStorage)
		for _, fk := range foreignKeys {
			if fk.Table == table.Name && fk.RefTable != table.Name && included[fk.RefTable] {
				obj.AddDependency(fk.RefTable)
			}
		}
		objects = append(objects, obj)
	}

	objects = append(objects, g.uniqueIndexes(req.IncludeStorage)...)
	if fkObj := g.foreignKeyConstraints(included); fkObj != nil {
		objects = append(objects, fkObj)
	}
	if checkObj := g.checkConstraintObject(included); checkObj != nil {
		objects = append(objects, checkObj)
	}
	if seqObj := g.sequences(); seqObj != nil {
		objects = append(objects, seqObj)
	}
	objects = append(objects, g.comments())

	return objects
}

func buildCreateTable(table *types.TableSpec, includeStorage bool) string {
	var defs []string
	for _, col := range table.Columns {
		def := col.Name + " " + col.Type
		if col.HasConstraint(types.ConstraintNotNull) {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}

	if pk := table.PrimaryKeyColumns(); len(pk) > 0 {
		constraint := fmt.Sprintf("CONSTRAINT %s_PK PRIMARY KEY (%s)", table.Name, strings.Join(pk, ", "))
		if includeStorage {
			constraint += "\n  USING INDEX" + indent(indexStorageClause, "  ")
		}
		defs = append(defs, constraint)
	}

	stmt := fmt.Sprintf("CREATE TABLE %s\n(\n  %s\n)", table.Name, strings.Join(defs, ",\n  "))
	if includeStorage {
		stmt += tableStorageClause
	}
	return stmt + ";"
}

func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

func (g *SchemaGenerator) uniqueIndexes(includeStorage bool) []*types.SQLObject {
	var objects []*types.SQLObject
	for _, table := range g.tables {
		for _, col := range table.Columns {
			if !col.HasConstraint(types.ConstraintUnique) {
				continue
			}
			name := fmt.Sprintf("%s_%s_UK", table.Name, col.Name)
			obj := types.NewSQLObject(name, types.KindIndex)
			storage := ""
			if includeStorage {
				storage = indexStorageClause
			}
			obj.Body = fmt.Sprintf("-- Unique index for %s column\nCREATE UNIQUE INDEX %s ON %s(%s)%s;",
				col.Name, name, table.Name, col.Name, storage)
			obj.AddDependency(table.Name)
			objects = append(objects, obj)
		}
	}
	return objects
}

func (g *SchemaGenerator) foreignKeyConstraints(included map[string]bool) *types.SQLObject {
	var stmts []string
	obj := types.NewSQLObject("FOREIGN_KEYS", types.KindConstraint)
	for _, fk := range foreignKeys {
		if !included[fk.Table] || !included[fk.RefTable] {
			continue
		}
		stmts = append(stmts, fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s\n  FOREIGN KEY (%s) REFERENCES %s (%s)\n  ENABLE VALIDATE;",
			fk.Table, fk.Name, fk.Column, fk.RefTable, fk.RefColumn))
		obj.AddDependency(fk.Table)
		obj.AddDependency(fk.RefTable)
	}
	if len(stmts) == 0 {
		return nil
	}
	obj.Body = "-- Foreign key constraints\n" + strings.Join(stmts, "\n\n")
	return obj
}

func (g *SchemaGenerator) checkConstraintObject(included map[string]bool) *types.SQLObject {
	var stmts []string
	obj := types.NewSQLObject("CHECK_CONSTRAINTS", types.KindConstraint)
	for _, ck := range checkConstraints {
		if !included[ck.Table] {
			continue
		}
		stmts = append(stmts, fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s\n  CHECK (%s) ENABLE VALIDATE;",
			ck.Table, ck.Name, ck.Condition))
		obj.AddDependency(ck.Table)
	}
	if len(stmts) == 0 {
		return nil
	}
	obj.Body = "-- Check constraints\n" + strings.Join(stmts, "\n\n")
	return obj
}

func (g *SchemaGenerator) sequences() *types.SQLObject {
	var stmts []string
	for _, table := range g.tables {
		pk := table.PrimaryKeyColumns()
		if len(pk) == 0 {
			continue
		}
		pkCol, _ := table.Column(pk[0])
		if pkCol.BaseType() != "NUMBER" {
			continue
		}
		start, increment := 1, 1
		if s, ok := sequenceStarts[table.Name]; ok {
			start, increment = s.Start, s.Increment
		}
		stmts = append(stmts, fmt.Sprintf(
			"CREATE SEQUENCE %s\n  START WITH %d\n  INCREMENT BY %d\n  NOCACHE\n  NOCYCLE;",
			synth.SequenceName(table.Name), start, increment))
	}
	if len(stmts) == 0 {
		return nil
	}
	obj := types.NewSQLObject("SEQUENCES", types.KindSequence)
	obj.Body = "-- Sequences for primary key generation\n" + strings.Join(stmts, "\n\n")
	return obj
}

func (g *SchemaGenerator) comments() *types.SQLObject {
	obj := types.NewSQLObject("COMMENTS", types.KindComment)
	var stmts []string
	for _, table := range g.tables {
		if comment, ok := tableComments[table.Name]; ok {
			stmts = append(stmts, fmt.Sprintf("COMMENT ON TABLE %s IS '%s';", table.Name, comment))
		}
		for _, c := range table.Columns {
			if strings.HasSuffix(c.Name, "_JP") {
				stmts = append(stmts, fmt.Sprintf("COMMENT ON COLUMN %s.%s IS 'Japanese-locale variant of %s';",
					table.Name, c.Name, strings.TrimSuffix(c.Name, "_JP")))
			}
		}
		obj.AddDependency(table.Name)
	}
	obj.Body = "-- Table and column comments\n" + strings.Join(stmts, "\n")
	return obj
}
