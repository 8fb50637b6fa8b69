package types

import (
	"strconv"
	"strings"
)

// ObjectKind classifies a generated schema object.
type ObjectKind string

const (
	KindTable      ObjectKind = "TABLE"
	KindData       ObjectKind = "DATA"
	KindIndex      ObjectKind = "INDEX"
	KindConstraint ObjectKind = "CONSTRAINT"
	KindSequence   ObjectKind = "SEQUENCE"
	KindComment    ObjectKind = "COMMENT"
	KindTrigger    ObjectKind = "TRIGGER"
	KindProcedure  ObjectKind = "PROCEDURE"
	KindFunction   ObjectKind = "FUNCTION"
	KindPackage    ObjectKind = "PACKAGE"
)

// SQLObject is one named, dependency-tagged unit of emitted SQL text.
type SQLObject struct {
	Name      string
	Kind      ObjectKind
	Body      string
	DependsOn []string
}

func NewSQLObject(name string, kind ObjectKind) *SQLObject {
	return &SQLObject{Name: name, Kind: kind}
}

// AddDependency records a dependency name once, preserving insertion order.
func (o *SQLObject) AddDependency(name string) {
	for _, dep := range o.DependsOn {
		if dep == name {
			return
		}
	}
	o.DependsOn = append(o.DependsOn, name)
}

func (o *SQLObject) String() string {
	return string(o.Kind) + " " + o.Name
}

// Column constraint tags as they appear in the table catalog.
const (
	ConstraintNotNull    = "NOT NULL"
	ConstraintPrimaryKey = "PRIMARY KEY"
	ConstraintUnique     = "UNIQUE"
)

type ColumnSpec struct {
	Table       string
	Name        string
	Type        string
	Constraints []string
}

func (c ColumnSpec) HasConstraint(tag string) bool {
	for _, ct := range c.Constraints {
		if ct == tag {
			return true
		}
	}
	return false
}

// BaseType strips precision/scale, e.g. "NUMBER(8,2)" -> "NUMBER".
func (c ColumnSpec) BaseType() string {
	t := strings.ToUpper(c.Type)
	if idx := strings.Index(t, "("); idx > 0 {
		t = t[:idx]
	}
	return t
}

// Precision returns the first number inside the type's parentheses, or 0.
// For "VARCHAR2(20)" this is the declared length.
func (c ColumnSpec) Precision() int {
	p, _ := c.typeArgs()
	return p
}

// Scale returns the second number inside the type's parentheses, or 0.
func (c ColumnSpec) Scale() int {
	_, s := c.typeArgs()
	return s
}

func (c ColumnSpec) typeArgs() (int, int) {
	open := strings.Index(c.Type, "(")
	closing := strings.Index(c.Type, ")")
	if open < 0 || closing < open {
		return 0, 0
	}
	parts := strings.Split(c.Type[open+1:closing], ",")
	precision, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	scale := 0
	if len(parts) > 1 {
		scale, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return precision, scale
}

// TableSpec is the declarative shape of one table, shared read-only across
// generators once the structural stage has produced it.
type TableSpec struct {
	Name    string
	Columns []ColumnSpec
}

func (t *TableSpec) PrimaryKeyColumns() []string {
	var cols []string
	for _, col := range t.Columns {
		if col.HasConstraint(ConstraintPrimaryKey) {
			cols = append(cols, col.Name)
		}
	}
	return cols
}

func (t *TableSpec) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name. The second return reports presence;
// callers branch on it instead of handling an error.
func (t *TableSpec) Column(name string) (ColumnSpec, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnSpec{}, false
}
