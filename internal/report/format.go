package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(10986111) returns "10,986,111".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatGrouped rounds f to the nearest integer and adds thousand separators.
func FormatGrouped(f float64) string {
	return FormatNumber(int64(math.Round(f)))
}

// FormatSci formats f in exponent notation with the given number of decimals.
// Example: FormatSci(236520000, 2) returns "2.37e+08".
func FormatSci(f float64, precision int) string {
	return fmt.Sprintf("%.*e", precision, f)
}

// FormatCompact formats a chart value with three significant digits.
func FormatCompact(f float64) string {
	return fmt.Sprintf("%.3g", f)
}
