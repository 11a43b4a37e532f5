package costcalc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format formats d with South-Asian digit grouping, see FormatString.
func Format(d decimal.Decimal) string {
	return FormatString(d.String())
}

// FormatString groups the digits of the integer part of the decimal string s:
// the rightmost group has three digits, every other group has two
// (1234567 -> "12,34,567"). A leading sign is kept out of the grouping and the
// fractional part, if not empty, is appended verbatim. No rounding is performed.
func FormatString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	main, fraction, _ := strings.Cut(s, ".")

	if len(main) > 3 {
		head, tail := main[:len(main)-3], main[len(main)-3:]
		var b strings.Builder
		// groups of two from the left, the first one may be a single digit.
		first := len(head) % 2
		if first > 0 {
			b.WriteString(head[:first])
		}
		for i := first; i < len(head); i += 2 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(head[i : i+2])
		}
		b.WriteByte(',')
		b.WriteString(tail)
		main = b.String()
	}

	if fraction == "" {
		return sign + main
	}
	return sign + main + "." + fraction
}
