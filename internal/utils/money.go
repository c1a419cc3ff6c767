package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// RupeesToPaise converts a whole-rupee amount to minor units for the gateway.
func RupeesToPaise(rupees int64) int64 {
	return rupees * 100
}

// FormatINR renders an integer rupee amount with Indian digit grouping,
// e.g. 125000 -> "₹1,25,000".
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%s", sign, groupIndian(amount))
}

// groupIndian applies en-IN grouping: the last three digits, then pairs.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	tail := str[len(str)-3:]

	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String() + "," + tail
}
