package export

import (
	"math"
	"regexp"
	"strconv"

	"github.com/Karmadibsa/OptiCal-Center/internal/catalog"
)

var (
	digitPattern = regexp.MustCompile(`\d+`)
	cruPattern   = regexp.MustCompile(`(?i)\(cru\)`)
)

// cookedValue rescales every embedded integer of a raw gram spec by the
// cooked ratio, keeping the surrounding text, so "92-100" becomes
// "276-300" with a ratio of 3. A zero ratio means the row is already
// listed as served and passes through untouched.
func cookedValue(spec string, ratio float64) string {
	if ratio <= 0 || spec == "" {
		return spec
	}
	return digitPattern.ReplaceAllStringFunc(spec, func(m string) string {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return m
		}
		return strconv.Itoa(int(math.Round(v * ratio)))
	})
}

// CookedRow returns a copy of a diet row converted for display: gram specs
// rescaled and "(cru)" rewritten to "(cuit)". Display cosmetics only, the
// engine always works on raw grams.
func CookedRow(row catalog.Row) catalog.Row {
	out := row
	out.AxelSpec = cookedValue(row.AxelSpec, row.CookedRatio)
	out.PriscaSpec = cookedValue(row.PriscaSpec, row.CookedRatio)
	if row.CookedRatio > 0 {
		out.Item = cruPattern.ReplaceAllString(row.Item, "(cuit)")
	}
	return out
}
