package views

import (
	"strconv"
)

const notAvailable = "N/A"

// fixed - число с фиксированным числом знаков ("%.2f" и т.п.)
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// plain - число без лишних нулей, как его прислал API
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func optFixed(v *float64, decimals int) string {
	if v == nil {
		return "-"
	}
	return fixed(*v, decimals)
}
