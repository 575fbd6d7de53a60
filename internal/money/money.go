// Package money renders amounts into the shopper-facing currency string.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// DefaultLocale groups digits the way the storefront does (300.000).
	DefaultLocale = "vi"
	// DefaultSuffix is appended to every formatted amount.
	DefaultSuffix = " VND"
	// maxFractionDigits matches the storefront's number format.
	maxFractionDigits = 3
)

// Formatter renders decimal amounts with locale-grouped digits and a fixed suffix.
type Formatter struct {
	printer *message.Printer
	suffix  string
}

// NewFormatter creates a formatter for the given BCP 47 locale and suffix.
// An unparsable locale falls back to DefaultLocale.
func NewFormatter(locale, suffix string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Vietnamese
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		suffix:  suffix,
	}
}

// Default returns the vi/VND formatter.
func Default() *Formatter {
	return NewFormatter(DefaultLocale, DefaultSuffix)
}

// Format renders amount, e.g. 300000 -> "300.000 VND".
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(maxFractionDigits)
	var v interface{}
	if rounded.IsInteger() {
		v = rounded.IntPart()
	} else {
		v = rounded.InexactFloat64()
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFractionDigits))) + f.suffix
}
