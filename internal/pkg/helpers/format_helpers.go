package helpers

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormatter renders integers with the grouping separators of a locale
type NumberFormatter struct {
	tag language.Tag
}

// NewNumberFormatter parses a BCP 47 locale, falling back to en-US on error
func NewNumberFormatter(locale string) NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Warn().Err(err).Str("locale", locale).Msg("Invalid display locale, using en-US")
		tag = language.AmericanEnglish
	}
	return NumberFormatter{tag: tag}
}

// Locale returns the parsed locale
func (f NumberFormatter) Locale() language.Tag {
	return f.tag
}

// Int formats v with thousands separators ("1234567" => "1,234,567" for en-US)
func (f NumberFormatter) Int(v int) string {
	return message.NewPrinter(f.tag).Sprintf("%d", v)
}

// Money formats v as a whole dollar amount ("$128,000")
func (f NumberFormatter) Money(v int) string {
	if v < 0 {
		return "-$" + f.Int(-v)
	}
	return "$" + f.Int(v)
}

// Value formats any record field value; ints get grouping, everything else
// is printed as is
func (f NumberFormatter) Value(v interface{}) string {
	switch n := v.(type) {
	case int:
		return f.Int(n)
	case int64:
		return f.Int(int(n))
	case string:
		return n
	default:
		return message.NewPrinter(f.tag).Sprint(v)
	}
}
