package synth

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/oraschemagen/oraschemagen/internal/types"
)

// ruleContext carries everything a rule predicate may inspect.
type ruleContext struct {
	col    types.ColumnSpec
	table  string
	upper  string
	locale language.Tag
}

func (c ruleContext) has(sub string) bool {
	return strings.Contains(c.upper, sub)
}

// rule pairs a name heuristic with a generator. Each dispatch table is
// evaluated top to bottom and the first match wins.
type rule struct {
	match  func(ruleContext) bool
	render func(*Engine, ruleContext) string
}

var statusValues = []string{"PENDING", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"}

var paymentMethods = []string{"CREDIT", "DEBIT", "BANK_TRANSFER", "PAYPAL", "CASH"}

// textRules dispatches textual columns by semantic role.
var textRules = []rule{
	{
		match: func(c ruleContext) bool { return c.has("NAME") && c.has("FIRST") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(lexicons[c.locale].firstNames)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("NAME") && c.has("LAST") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(lexicons[c.locale].lastNames)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("TITLE") || c.has("JOB") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(lexicons[c.locale].jobs)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("EMAIL") && c.locale == language.English },
		render: func(e *Engine, c ruleContext) string {
			lex := lexicons[language.English]
			user := strings.ToLower(e.pick(lex.firstNames)) + "." + strings.ToLower(e.pick(lex.lastNames)) +
				strconv.Itoa(e.rng.Intn(100))
			const domain = "@example.com"
			// Shorten the local part so the whole address fits the
			// declared length; truncating afterwards would cut the domain.
			if limit := c.col.Precision(); limit > 0 && len(user)+len(domain) > limit {
				keep := limit - len(domain)
				if keep < 1 {
					keep = 1
				}
				user = user[:keep]
			}
			return user + domain
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("PHONE") },
		render: func(e *Engine, c ruleContext) string {
			if c.locale == language.Japanese {
				return "0" + strconv.Itoa(e.intBetween(1, 9)) + "-" +
					zeroPad(e.rng.Intn(10000), 4) + "-" + zeroPad(e.rng.Intn(10000), 4)
			}
			return "555-" + zeroPad(e.rng.Intn(1000), 3) + "-" + zeroPad(e.rng.Intn(10000), 4)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("ADDRESS") },
		render: func(e *Engine, c ruleContext) string {
			lex := lexicons[c.locale]
			if c.locale == language.Japanese {
				return e.pick(lex.cities) + e.pick(lex.streets)
			}
			return strconv.Itoa(e.intBetween(1, 9999)) + " " + e.pick(lex.streets)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("CITY") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(lexicons[c.locale].cities)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("STATE") || c.has("PROVINCE") || c.has("PREFECTURE") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(lexicons[c.locale].states)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("POSTAL") || c.has("ZIP") },
		render: func(e *Engine, c ruleContext) string {
			if c.locale == language.Japanese {
				return zeroPad(e.rng.Intn(1000), 3) + "-" + zeroPad(e.rng.Intn(10000), 4)
			}
			return zeroPad(e.rng.Intn(100000), 5)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("COUNTRY") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(lexicons[c.locale].countries)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("STATUS") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(statusValues)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("PAYMENT") && c.has("METHOD") },
		render: func(e *Engine, c ruleContext) string {
			return e.pick(paymentMethods)
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("NAME") },
		render: func(e *Engine, c ruleContext) string {
			lex := lexicons[c.locale]
			if c.locale == language.Japanese {
				return e.pick(lex.lastNames) + e.pick(lex.firstNames)
			}
			return e.pick(lex.firstNames) + " " + e.pick(lex.lastNames)
		},
	},
}

func (e *Engine) textValue(c ruleContext) string {
	for _, r := range textRules {
		if r.match(c) {
			return e.boundedText(r.render(e, c), c)
		}
	}
	// Free text bounded by the declared length, never beyond the cap.
	limit := c.col.Precision()
	if limit == 0 || limit > e.ranges.TextCap {
		limit = e.ranges.TextCap
	}
	return truncateRunes(e.freeText(c.locale), limit)
}

// boundedText trims a rule-generated value to the declared column length.
// Columns without a declared length fall back to the configured cap.
func (e *Engine) boundedText(s string, c ruleContext) string {
	limit := c.col.Precision()
	if limit == 0 {
		limit = e.ranges.TextCap
	}
	return truncateRunes(s, limit)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

func (e *Engine) freeText(locale language.Tag) string {
	lex := lexicons[locale]
	if locale == language.Japanese {
		return e.pick(lex.words) + e.pick(lex.words)
	}
	return e.pick(lex.words) + " " + e.pick(lex.words)
}

// numberRules dispatches NUMBER columns. Primary keys resolve to a
// sequence reference so the emitted script stays referentially styled
// without executing anything.
var numberRules = []rule{
	{
		match: func(c ruleContext) bool {
			return c.col.HasConstraint(types.ConstraintPrimaryKey)
		},
		render: func(e *Engine, c ruleContext) string {
			return SequenceName(c.table) + ".NEXTVAL"
		},
	},
	{
		match: func(c ruleContext) bool { return c.upper == "DEPARTMENT_ID" },
		render: func(e *Engine, c ruleContext) string {
			return strconv.Itoa(e.intBetween(10, 90) * 10)
		},
	},
	{
		match: func(c ruleContext) bool { return c.upper == "LOCATION_ID" },
		render: func(e *Engine, c ruleContext) string {
			return strconv.Itoa(e.intBetween(1, 9)*1000 + e.intBetween(1, 999))
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("MANAGER") },
		render: func(e *Engine, c ruleContext) string {
			return strconv.Itoa(e.intBetween(e.ranges.ManagerIDMin, e.ranges.ManagerIDMax))
		},
	},
	{
		match: func(c ruleContext) bool { return strings.HasSuffix(c.upper, "_ID") },
		render: func(e *Engine, c ruleContext) string {
			// Foreign-key-like by name: plausible surrogate range.
			return strconv.Itoa(e.intBetween(1, 1000))
		},
	},
	// Scale-bearing columns always render a fractional literal; the name
	// heuristics below only apply to integral columns.
	{
		match: func(c ruleContext) bool {
			return c.col.Scale() > 0 && (c.has("PRICE") || c.has("COST") || c.has("TOTAL"))
		},
		render: func(e *Engine, c ruleContext) string {
			return round2(e.floatBetween(e.ranges.CurrencyMin, e.ranges.CurrencyMax))
		},
	},
	{
		match: func(c ruleContext) bool {
			return c.col.Scale() > 0 && (c.has("PCT") || c.has("PERCENT"))
		},
		render: func(e *Engine, c ruleContext) string {
			return round2(e.floatBetween(0, e.ranges.PercentMax))
		},
	},
	{
		match: func(c ruleContext) bool { return c.col.Scale() > 0 },
		render: func(e *Engine, c ruleContext) string {
			return round2(e.floatBetween(0, e.ranges.DecimalMax))
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("SALARY") },
		render: func(e *Engine, c ruleContext) string {
			return strconv.Itoa(e.intBetween(e.ranges.SalaryMin, e.ranges.SalaryMax))
		},
	},
	{
		match: func(c ruleContext) bool { return c.has("QUANTITY") },
		render: func(e *Engine, c ruleContext) string {
			return strconv.Itoa(e.intBetween(e.ranges.QuantityMin, e.ranges.QuantityMax))
		},
	},
}

func (e *Engine) numberValue(c ruleContext) string {
	for _, r := range numberRules {
		if r.match(c) {
			return r.render(e, c)
		}
	}
	// Magnitude bound from declared precision, capped so the literal
	// cannot overflow downstream parsing.
	max := e.ranges.IntegerCap
	if p := c.col.Precision(); p > 0 && p < 7 {
		if bound := pow10(p) - 1; bound < max {
			max = bound
		}
	}
	return strconv.Itoa(e.intBetween(1, max))
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// dateWindows are evaluated top to bottom like the other rule tables.
// Windows are (daysBackStart, daysBackEnd) relative to the engine clock.
var dateWindows = []struct {
	match func(ruleContext) bool
	from  int
	to    int
}{
	{func(c ruleContext) bool { return c.has("HIRE") || c.has("REGISTRATION") }, 5 * 365, 365},
	{func(c ruleContext) bool { return c.has("ORDER") }, 365, 0},
	{func(c ruleContext) bool { return c.has("SHIPPING") || c.has("DELIVERY") }, 182, 0},
}

func (e *Engine) dateValue(c ruleContext) string {
	from, to := 5*365, 0
	for _, w := range dateWindows {
		if w.match(c) {
			from, to = w.from, w.to
			break
		}
	}
	days := e.intBetween(to, from)
	return e.now.AddDate(0, 0, -days).Format("2006-01-02")
}

func (e *Engine) timestampValue() string {
	seconds := e.rng.Int63n(5 * 365 * 24 * 60 * 60)
	return e.now.Add(-time.Duration(seconds) * time.Second).Format("2006-01-02 15:04:05")
}

func (e *Engine) clobValue(c ruleContext) string {
	lex := lexicons[c.locale]
	paragraphs := make([]string, 2)
	for i := range paragraphs {
		paragraphs[i] = e.pick(lex.sentences) + " " + e.pick(lex.sentences)
	}
	return strings.Join(paragraphs, "\n")
}

func zeroPad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
