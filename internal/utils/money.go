package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for fare fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ParseMoney parses "1.000,50", "1,000.50" or "1000.5" into a fare amount.
func ParseMoney(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	// keep the last separator as decimal point, drop the rest
	lastDot := strings.LastIndexAny(s, ".,")
	if lastDot >= 0 && len(s)-lastDot-1 <= 2 {
		intPart := strings.NewReplacer(".", "", ",", "", " ", "").Replace(s[:lastDot])
		s = intPart + "." + s[lastDot+1:]
	} else {
		s = strings.NewReplacer(",", "", " ", "").Replace(s)
	}
	return strconv.ParseFloat(s, 64)
}
