// Package format renders numbers for display.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders a USD amount with thousands separators and no cents, e.g. "$120,000".
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	if v < 0 {
		return "-$" + printer.Sprintf("%.0f", -v)
	}
	return "$" + printer.Sprintf("%.0f", v)
}

// Int renders an integer with thousands separators.
func Int(n int) string {
	return printer.Sprintf("%d", n)
}

// CompactMoney renders an amount in thousands, e.g. "$85k", for tight chart labels.
func CompactMoney(v float64) string {
	if math.Abs(v) < 1000 {
		return Money(v)
	}
	return "$" + printer.Sprintf("%.0f", v/1000) + "k"
}
