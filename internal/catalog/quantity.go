package catalog

import (
	"regexp"
	"strconv"
)

var intPattern = regexp.MustCompile(`\d+`)

// ParseGrams extracts a single gram value from a human-authored spec such
// as "115g", "92-100" or "1 c.à.s". No digits yields 0. A range yields the
// mean of its two bounds; any digits beyond the first two are ignored
// (ranges are assumed to have exactly two bounds, the rest is noise).
// Never fails: the worst case is 0.
func ParseGrams(s string) float64 {
	matches := intPattern.FindAllString(s, 2)
	if len(matches) == 0 {
		return 0
	}

	first, _ := strconv.ParseFloat(matches[0], 64)
	if len(matches) == 1 {
		return first
	}

	second, _ := strconv.ParseFloat(matches[1], 64)
	return (first + second) / 2
}
