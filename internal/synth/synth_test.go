package synth

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

func newTestEngine(seed int64) *Engine {
	e := NewEngine(rand.New(rand.NewSource(seed)), DefaultRanges())
	e.SetNow(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	return e
}

func column(name, typ string, constraints ...string) types.ColumnSpec {
	return types.ColumnSpec{Table: "EMPLOYEES", Name: name, Type: typ, Constraints: constraints}
}

func TestSeededEngineIsDeterministic(t *testing.T) {
	cols := []types.ColumnSpec{
		column("FIRST_NAME", "VARCHAR2(20)"),
		column("SALARY", "NUMBER(8,2)"),
		column("HIRE_DATE", "DATE"),
		column("NOTES_JP", "CLOB"),
	}

	a := newTestEngine(42)
	b := newTestEngine(42)
	for _, col := range cols {
		assert.Equal(t, a.Value(col, "EMPLOYEES"), b.Value(col, "EMPLOYEES"))
	}
}

func TestEmailIsASCIIWithSingleAt(t *testing.T) {
	e := newTestEngine(1)
	v := e.Value(column("EMAIL", "VARCHAR2(30)"), "EMPLOYEES")

	require.True(t, strings.HasPrefix(v, "'") && strings.HasSuffix(v, "'"), "email must be quoted: %s", v)
	inner := strings.Trim(v, "'")
	assert.Equal(t, 1, strings.Count(inner, "@"), "email %q must contain exactly one @", inner)
	for _, r := range inner {
		assert.Less(t, r, unicode.MaxASCII, "email %q must be ASCII", inner)
	}
}

func TestEmailFitsDeclaredLengthWithDomainIntact(t *testing.T) {
	e := newTestEngine(31)
	for _, typ := range []string{"VARCHAR2(25)", "VARCHAR2(15)"} {
		col := column("EMAIL", typ)
		for i := 0; i < 50; i++ {
			inner := strings.Trim(e.Value(col, "EMPLOYEES"), "'")
			assert.LessOrEqual(t, len(inner), col.Precision(), "email %q exceeds %s", inner, typ)
			assert.True(t, strings.HasSuffix(inner, "@example.com"),
				"email %q must keep its domain at %s", inner, typ)
		}
	}
}

func TestLocaleSuffixSelectsJapaneseBranch(t *testing.T) {
	assert.Equal(t, language.Japanese, LocaleFor("EMAIL_JP"))
	assert.Equal(t, language.Japanese, LocaleFor("notes_japanese"))
	assert.Equal(t, language.English, LocaleFor("EMAIL"))

	e := newTestEngine(7)
	v := e.Value(column("LAST_NAME_JP", "VARCHAR2(25)"), "EMPLOYEES")
	hasWide := false
	for _, r := range strings.Trim(v, "'") {
		if r > unicode.MaxASCII {
			hasWide = true
			break
		}
	}
	assert.True(t, hasWide, "Japanese-locale value %q should contain non-ASCII runes", v)
}

func TestPrimaryKeySynthesizesSequenceReference(t *testing.T) {
	e := newTestEngine(3)
	col := column("EMPLOYEE_ID", "NUMBER(6)", types.ConstraintPrimaryKey)

	v := e.Value(col, "EMPLOYEES")
	assert.Equal(t, "EMPLOYEES_SEQ.NEXTVAL", v)
	assert.False(t, strings.HasPrefix(v, "'"), "sequence reference must be unquoted")
}

func TestForeignKeyLikeColumnsUseSurrogateRanges(t *testing.T) {
	e := newTestEngine(11)

	for i := 0; i < 50; i++ {
		v := e.Value(column("DEPARTMENT_ID", "NUMBER(4)"), "EMPLOYEES")
		n := mustAtoi(t, v)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 900)
		assert.Zero(t, n%10)
	}

	for i := 0; i < 50; i++ {
		n := mustAtoi(t, e.Value(column("MANAGER_ID", "NUMBER(6)"), "EMPLOYEES"))
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 999)
	}
}

func TestSalaryColumns(t *testing.T) {
	e := newTestEngine(29)

	// A scale-bearing salary column renders a rounded fractional value,
	// not an integer from the salary range.
	for i := 0; i < 50; i++ {
		v := e.Value(column("SALARY", "NUMBER(8,2)"), "EMPLOYEES")
		assert.Contains(t, v, ".", "scale-2 salary %q must have a fractional part", v)
		f, err := strconv.ParseFloat(v, 64)
		require.NoError(t, err)
		assert.LessOrEqual(t, f, DefaultRanges().DecimalMax)
	}

	// Integral salary columns draw from the configured salary range.
	for i := 0; i < 50; i++ {
		n := mustAtoi(t, e.Value(column("MIN_SALARY", "NUMBER(6)"), "JOBS"))
		assert.GreaterOrEqual(t, n, DefaultRanges().SalaryMin)
		assert.LessOrEqual(t, n, DefaultRanges().SalaryMax)
	}
}

func TestDecimalRoles(t *testing.T) {
	e := newTestEngine(5)

	price := e.Value(column("LIST_PRICE", "NUMBER(9,2)"), "PRODUCTS")
	assert.Contains(t, price, ".")
	assert.NotContains(t, price, "'")

	for i := 0; i < 50; i++ {
		pct := e.Value(column("COMMISSION_PCT", "NUMBER(2,2)"), "EMPLOYEES")
		f, err := strconv.ParseFloat(pct, 64)
		require.NoError(t, err)
		assert.LessOrEqual(t, f, DefaultRanges().PercentMax)
	}
}

func TestIntegerPrecisionBound(t *testing.T) {
	e := newTestEngine(9)
	for i := 0; i < 100; i++ {
		n := mustAtoi(t, e.Value(column("RETRY_COUNT", "NUMBER(2)"), "EMPLOYEES"))
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 99)
	}
}

func TestDateWindows(t *testing.T) {
	e := newTestEngine(13)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e.SetNow(now)

	for i := 0; i < 50; i++ {
		v := strings.Trim(e.Value(column("HIRE_DATE", "DATE"), "EMPLOYEES"), "'")
		d, err := time.Parse("2006-01-02", v)
		require.NoError(t, err)
		assert.True(t, d.Before(now.AddDate(0, 0, -364)), "hire date %s must be at least a year back", v)
		assert.True(t, d.After(now.AddDate(-5, 0, -2)), "hire date %s must be within five years", v)
	}

	for i := 0; i < 50; i++ {
		v := strings.Trim(e.Value(column("ORDER_DATE", "DATE"), "ORDERS"), "'")
		d, err := time.Parse("2006-01-02", v)
		require.NoError(t, err)
		assert.True(t, d.After(now.AddDate(-1, 0, -2)), "order date %s must be recent", v)
	}
}

func TestStatusAndPaymentEnumerations(t *testing.T) {
	e := newTestEngine(17)

	v := strings.Trim(e.Value(column("STATUS", "VARCHAR2(20)"), "ORDERS"), "'")
	assert.Contains(t, statusValues, v)

	v = strings.Trim(e.Value(column("PAYMENT_METHOD", "VARCHAR2(20)"), "ORDERS"), "'")
	assert.Contains(t, paymentMethods, v)
}

func TestTextBoundedByDeclaredLength(t *testing.T) {
	e := newTestEngine(19)
	for i := 0; i < 50; i++ {
		v := strings.Trim(e.Value(column("CODE", "VARCHAR2(5)"), "EMPLOYEES"), "'")
		assert.LessOrEqual(t, len([]rune(v)), 5)
	}
}

func TestLobAndUnknownTypes(t *testing.T) {
	e := newTestEngine(23)

	clob := e.Value(column("NOTES", "CLOB"), "ORDERS")
	assert.True(t, strings.HasPrefix(clob, "'"))
	assert.Contains(t, clob, "\n", "CLOB value should span paragraphs")

	assert.Equal(t, "EMPTY_BLOB()", e.Value(column("PHOTO", "BLOB"), "EMPLOYEES"))

	var warned []string
	e.OnUnknownType = func(col types.ColumnSpec) { warned = append(warned, col.Name) }
	assert.Equal(t, "NULL", e.Value(column("RAW_DATA", "LONG RAW"), "EMPLOYEES"))
	assert.Equal(t, []string{"RAW_DATA"}, warned)
}

func TestQuoteEscapesSingleQuotes(t *testing.T) {
	assert.Equal(t, "'O''Brien'", quote("O'Brien"))
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err, "expected bare numeric literal, got %q", s)
	return n
}
