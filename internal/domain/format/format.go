// Package format holds the input masks used by the registration and payment forms.
//
// Every formatter re-derives its output from the digits of the whole input, so
// applying one to an already formatted value returns it unchanged.
package format

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	cardDigits   = 16
	expiryDigits = 4
	cpfDigits    = 11
	oabDigits    = 6
)

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// Digits drops every character that is not an ASCII digit.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitsUpTo(s string, n int) string {
	d := Digits(s)
	if len(d) > n {
		return d[:n]
	}
	return d
}

// CardNumber renders "#### #### #### ####".
func CardNumber(s string) string {
	d := digitsUpTo(s, cardDigits)
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// ExpiryDate renders "MM/YY".
func ExpiryDate(s string) string {
	d := digitsUpTo(s, expiryDigits)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}

// CPF renders "###.###.###-##".
func CPF(s string) string {
	d := digitsUpTo(s, cpfDigits)
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "." + d[3:]
	case len(d) <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

// OAB renders "###.###".
func OAB(s string) string {
	d := digitsUpTo(s, oabDigits)
	if len(d) <= 3 {
		return d
	}
	return d[:3] + "." + d[3:]
}

// BRL formats an amount in centavos as Brazilian Real, e.g. "R$ 1.234,56".
func BRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	units := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var grouped strings.Builder
	for i, r := range units {
		if i > 0 && (len(units)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	fracStr := strconv.FormatInt(frac, 10)
	if frac < 10 {
		fracStr = "0" + fracStr
	}
	return sign + "R$ " + grouped.String() + "," + fracStr
}

// ProcessFileName lowercases a process title and joins its words with underscores.
func ProcessFileName(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(title), "_") + ".pdf"
}
