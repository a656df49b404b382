package payroll

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders v with two decimals, rounding half up on the shortest
// decimal representation of v (so 1.005 renders as "1.01").
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	sign := ""
	if math.Signbit(v) {
		sign = "-"
		v = -v
	}

	digits := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(digits, ".")
	if len(frac) <= 2 {
		return sign + intPart + "." + frac + strings.Repeat("0", 2-len(frac))
	}

	kept := []byte(intPart + frac[:2])
	if frac[2] >= '5' {
		kept = incrementDecimal(kept)
	}
	n := len(kept)
	return sign + string(kept[:n-2]) + "." + string(kept[n-2:])
}

// incrementDecimal adds one to a string of decimal digits.
func incrementDecimal(d []byte) []byte {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] < '9' {
			d[i]++
			return d
		}
		d[i] = '0'
	}
	return append([]byte{'1'}, d...)
}
