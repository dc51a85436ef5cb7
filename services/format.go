package services

import (
	"fmt"
	"strings"
)

// FormatCLP formats a float64 amount as Chilean pesos in the es-CL
// convention: "$" prefix, period thousands grouping and no decimal
// digits, since CLP has no minor unit (e.g. $1.234.567). The amount is
// rounded to the nearest peso. Zero formats like any other value;
// callers decide whether to suppress it.
func FormatCLP(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	// Round to whole pesos. An amount that rounds to zero loses its
	// sign, so "-$0" never appears.
	raw := fmt.Sprintf("%.0f", amount)
	if raw == "0" {
		negative = false
	}

	result := "$" + groupThousands(raw)
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts periods into an integer string, grouping
// digits in threes from the right (es-CL grouping).
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(s[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
