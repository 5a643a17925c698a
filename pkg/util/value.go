package util

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// factors holds SPICE-style scale suffixes. Matching is case-insensitive,
// so M means milli and MEG means mega.
var factors = map[string]float64{
	"t":   1e12,
	"g":   1e9,
	"meg": 1e6,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valuePattern = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:e[-+]?\d+)?)(meg|[tgkmunpf])?s?$`)

// ParseValue converts a SPICE-style value string such as "4.7k", "100u"
// or "1meg" to a float64. A trailing "s" is accepted for durations.
func ParseValue(val string) (float64, error) {
	matches := valuePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(val)))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %q", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if matches[2] != "" {
		num *= factors[matches[2]]
	}
	return num, nil
}
