package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

// Ranges bounds the heuristic value generators. The defaults mirror the
// historical generator output; none of them carry documented intent beyond
// "looks plausible", so they stay configurable.
type Ranges struct {
	SalaryMin    int     `json:"salary_min" mapstructure:"salary_min"`
	SalaryMax    int     `json:"salary_max" mapstructure:"salary_max"`
	CurrencyMin  float64 `json:"currency_min" mapstructure:"currency_min"`
	CurrencyMax  float64 `json:"currency_max" mapstructure:"currency_max"`
	PercentMax   float64 `json:"percent_max" mapstructure:"percent_max"`
	DecimalMax   float64 `json:"decimal_max" mapstructure:"decimal_max"`
	QuantityMin  int     `json:"quantity_min" mapstructure:"quantity_min"`
	QuantityMax  int     `json:"quantity_max" mapstructure:"quantity_max"`
	ManagerIDMin int     `json:"manager_id_min" mapstructure:"manager_id_min"`
	ManagerIDMax int     `json:"manager_id_max" mapstructure:"manager_id_max"`
	IntegerCap   int     `json:"integer_cap" mapstructure:"integer_cap"`
	TextCap      int     `json:"text_cap" mapstructure:"text_cap"`
}

func DefaultRanges() Ranges {
	return Ranges{
		SalaryMin:    3000,
		SalaryMax:    20000,
		CurrencyMin:  10,
		CurrencyMax:  1000,
		PercentMax:   0.5,
		DecimalMax:   10000,
		QuantityMin:  1,
		QuantityMax:  100,
		ManagerIDMin: 100,
		ManagerIDMax: 999,
		IntegerCap:   1000000,
		TextCap:      20,
	}
}

// Engine maps column metadata to rendered SQL literals. Randomness comes
// from the injected source only, so a fixed seed reproduces a run.
type Engine struct {
	rng    *rand.Rand
	ranges Ranges
	now    time.Time

	// OnUnknownType, when set, observes columns whose type has no rule.
	// Such columns render as NULL; they are never an error.
	OnUnknownType func(col types.ColumnSpec)
}

func NewEngine(rng *rand.Rand, ranges Ranges) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng, ranges: ranges, now: time.Now()}
}

// SetNow pins the reference time used for date windows.
func (e *Engine) SetNow(t time.Time) { e.now = t }

// Value renders one synthetic SQL literal for the column in the context of
// the named table. Textual results are quoted with single quotes doubled;
// sequence references, EMPTY_BLOB() and NULL are emitted bare.
func (e *Engine) Value(col types.ColumnSpec, table string) string {
	ctx := ruleContext{
		col:    col,
		table:  table,
		upper:  strings.ToUpper(col.Name),
		locale: LocaleFor(col.Name),
	}

	switch base := col.BaseType(); {
	case strings.Contains(base, "VARCHAR"), strings.Contains(base, "CHAR"):
		return quote(e.textValue(ctx))
	case base == "NUMBER":
		return e.numberValue(ctx)
	case base == "DATE":
		return quote(e.dateValue(ctx))
	case strings.Contains(base, "TIMESTAMP"):
		return quote(e.timestampValue())
	case base == "CLOB":
		return quote(e.clobValue(ctx))
	case base == "BLOB":
		return "EMPTY_BLOB()"
	default:
		if e.OnUnknownType != nil {
			e.OnUnknownType(col)
		}
		return "NULL"
	}
}

// LocaleFor infers the synthesis locale from a column-name suffix marker.
func LocaleFor(columnName string) language.Tag {
	lower := strings.ToLower(columnName)
	if strings.HasSuffix(lower, "_jp") || strings.HasSuffix(lower, "_japanese") {
		return language.Japanese
	}
	return language.English
}

// SequenceName is the sequence backing a table's numeric primary key.
func SequenceName(table string) string {
	return table + "_SEQ"
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (e *Engine) pick(pool []string) string {
	return pool[e.rng.Intn(len(pool))]
}

func (e *Engine) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + e.rng.Intn(max-min+1)
}

func (e *Engine) floatBetween(min, max float64) float64 {
	return min + e.rng.Float64()*(max-min)
}

func round2(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
