package utils

import "strings"

// MaskCardNumber keeps only the last four digits, for log lines.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return strings.Repeat("X", len(number))
	}
	return "XXXX XXXX XXXX " + number[len(number)-4:]
}
