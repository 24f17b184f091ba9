package view

import (
	"fmt"
	"time"
)

// FormatAmount formats an amount stored as cents into a dollar string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100.0)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
