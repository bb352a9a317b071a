package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPrefix matches the longest numeric prefix of a string, mirroring the
// behavior existing scripts rely on: "42abc" coerces to 42, "abc" does not
// coerce at all.
var numberPrefix = regexp.MustCompile(`^[+-]?(Infinity|\d+\.?\d*([eE][+-]?\d+)?|\.\d+([eE][+-]?\d+)?)`)

// ParseNumber coerces a raw value to a float64. It trims surrounding
// whitespace and accepts any leading numeric prefix; ok is false when the
// value has no numeric prefix.
func ParseNumber(raw string) (value float64, ok bool) {
	s := strings.TrimSpace(raw)
	match := numberPrefix.FindString(s)
	if match == "" {
		return 0, false
	}
	if strings.HasSuffix(match, "Infinity") {
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
