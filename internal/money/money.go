// Package money formats whole-peso amounts the way the storefront displays
// them: "$34.990".
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-CL"))

// CLP formats a whole-peso amount with es-CL digit grouping.
func CLP(amount int) string {
	return printer.Sprintf("$%d", amount)
}

// CLPRound formats a fractional amount (e.g. the IVA line) rounded to the
// nearest peso.
func CLPRound(amount float64) string {
	return CLP(int(math.Round(amount)))
}
