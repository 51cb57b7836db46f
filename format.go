package paramx

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatProvider supplies the culture/format rules consulted when a value is
// converted to a string through a format string. Invariant() is locale
// independent; Locale(tag) applies the conventions of a specific language
// (digit grouping, decimal separators) through x/text.
type FormatProvider interface {
	// Tag identifies the language the provider formats for. Invariant
	// providers return language.Und.
	Tag() language.Tag

	// Sprintf formats according to a fmt-style format string under the
	// provider's conventions.
	Sprintf(format string, args ...any) string

	// Sprint formats a value's default representation under the provider's
	// conventions.
	Sprint(arg any) string
}

// Formattable lets a value type take over its own format-aware conversion.
// When a descriptor has a format string set and its value implements
// Formattable, SerializeToString calls Format instead of the built-in rules.
type Formattable interface {
	Format(format string, p FormatProvider) (string, error)
}

type invariantProvider struct{}

func (invariantProvider) Tag() language.Tag { return language.Und }

func (invariantProvider) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func (invariantProvider) Sprint(arg any) string {
	return fmt.Sprint(arg)
}

// Invariant returns the locale-independent format provider. It formats with
// plain fmt semantics: no digit grouping, "." as the decimal separator.
func Invariant() FormatProvider {
	return invariantProvider{}
}

type localeProvider struct {
	tag     language.Tag
	printer *message.Printer
}

func (l localeProvider) Tag() language.Tag { return l.tag }

func (l localeProvider) Sprintf(format string, args ...any) string {
	return l.printer.Sprintf(format, args...)
}

func (l localeProvider) Sprint(arg any) string {
	return l.printer.Sprint(arg)
}

// Locale returns a format provider applying the number-formatting
// conventions of the given language, e.g. digit grouping for %d under
// language.English.
func Locale(tag language.Tag) FormatProvider {
	return localeProvider{tag: tag, printer: message.NewPrinter(tag)}
}
