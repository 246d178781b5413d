package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ZeroIfEmpty is the defaulting step for figure cells: a blank cell counts
// as zero.
func ZeroIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return s
}

// parseAmount parses a figure cell after defaulting.
// Spaces used as thousand separators are dropped and a lone decimal comma
// is accepted.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, ZeroIfEmpty(s))
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}
