package i18n

import (
	"strconv"
	"strings"
)

const thousandsSep = ' '

// FormatAmount groups the digits of n by thousands: 45000 -> "45 000".
func FormatAmount(n int64) string {
	digits := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune(thousandsSep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatPrice appends the currency of the dictionary: "45 000 DA".
func (d Dictionary) FormatPrice(n int64) string {
	return FormatAmount(n) + " " + d.Message.Currency
}
