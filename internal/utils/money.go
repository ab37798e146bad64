package utils

import (
	"strconv"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatNumber renders a number the short way ("12", "12.5"), matching what
// the dashboard prints for raw backend values.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// NumberOrEmpty renders zero as an empty cell.
func NumberOrEmpty(v float64) string {
	if v == 0 {
		return ""
	}
	return FormatNumber(v)
}
