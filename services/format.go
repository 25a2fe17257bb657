package services

import (
	"fmt"
	"strings"
)

// FormatINR renders an amount in Indian Rupee notation with Indian digit
// grouping (₹12,34,567.50). Whole-rupee amounts drop the paise part, which is
// how proposal documents quote fees.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	intPart, decPart, _ := strings.Cut(raw, ".")

	result := "₹" + groupIndian(intPart)
	if decPart != "00" {
		result += "." + decPart
	}
	if negative {
		result = "-" + result
	}
	return result
}

// groupIndian inserts commas per the Indian numbering system: the rightmost
// three digits form one group, every two digits after that form another.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	grouped := digits[len(digits)-3:]
	rest := digits[:len(digits)-3]
	for len(rest) > 2 {
		grouped = rest[len(rest)-2:] + "," + grouped
		rest = rest[:len(rest)-2]
	}
	return rest + "," + grouped
}
