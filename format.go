package electionmaps

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// NotAvailable is displayed in place of missing values.
const NotAvailable = "N/A"

// FormatPercent renders n with one decimal place and a trailing %.
func FormatPercent(n Number) string {
	if !n.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(n.Value, 'f', 1, 64) + "%"
}

// FormatPercentNonZero is FormatPercent except that zero is shown as N/A.
// The turnout datasets use 0 for precincts without results.
func FormatPercentNonZero(n Number) string {
	if n.Valid && n.Value == 0 {
		return NotAvailable
	}
	return FormatPercent(n)
}

// FormatCount renders n with thousands separators.
func FormatCount(n Number) string {
	if !n.Valid {
		return NotAvailable
	}
	if n.Value == math.Trunc(n.Value) && math.Abs(n.Value) < 1<<53 {
		return humanize.Comma(int64(n.Value))
	}
	return humanize.Commaf(n.Value)
}

// complement returns 100-n, keeping n's validity.
func complement(n Number) Number {
	if !n.Valid {
		return Number{}
	}
	return Num(100 - n.Value)
}
