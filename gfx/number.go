package gfx

import (
	"math"
	"strconv"
	"strings"
)

// PutInt prints v in decimal at the cursor.
func (s *Surface) PutInt(v int) error {
	return s.PutString(strconv.Itoa(v))
}

// PutFloat prints v in decimal with exactly decimals fractional digits.
// Extra digits are truncated, not rounded: PutFloat(2.99, 1) prints "2.9".
func (s *Surface) PutFloat(v float64, decimals int) error {
	return s.PutString(formatTruncated(v, decimals))
}

// formatTruncated formats v with decimals digits after the point, dropping
// the digits past them from the shortest exact representation of v.
func formatTruncated(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	decimals = max(decimals, 0)

	ip, fp, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'f', -1, 64), ".")
	if len(fp) > decimals {
		fp = fp[:decimals]
	} else {
		fp += strings.Repeat("0", decimals-len(fp))
	}

	out := ip
	if decimals > 0 {
		out += "." + fp
	}
	if v < 0 && strings.Trim(ip+fp, "0") != "" {
		out = "-" + out
	}
	return out
}
