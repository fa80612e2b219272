package grammar

import (
	"errors"
	"strconv"

	"github.com/zostay/shift/match"
	"github.com/zostay/shift/token"
)

// Tags attached to the matches of the grammar rules, shown in traces.
var (
	TLetter   = token.NamedTag("letter")
	TInteger  = token.NamedTag("integer")
	TDecimal  = token.NamedTag("decimal")
	TName     = token.NamedTag("name")
	TKeyValue = token.NamedTag("key-value")
)

// Single characters.
var (
	Digit  = match.RuneFilter(match.IsDigit)(match.Shift)
	Letter = match.OneRune(TLetter, match.IsLetter)
	Space  = match.RuneFilter(match.IsSpace)(match.Shift)
	Dot    = match.Char('.')
)

var (
	// RawDigits matches a run of digits and keeps them as a list of runes.
	RawDigits = match.OneOrMore(Digit)

	// Digits matches a run of digits as a string.
	Digits = match.Map(match.Join)(RawDigits)

	// Letters matches a run of letters as a string.
	Letters = match.Map(match.Join)(match.OneOrMore(Letter))

	// DecimalDigits matches the text of a decimal: "12.34", "12." or ".34".
	// Digits without a dot are not a decimal.
	DecimalDigits = match.First(
		match.Map(match.Join)(match.Seq(Digits, Dot, Digits)),
		match.Map(match.Join)(match.Seq(Digits, Dot)),
		match.Map(match.Join)(match.Seq(Dot, Digits)),
	)

	// Integer produces an int.
	Integer = match.Tagged(TInteger, match.Map(atoi)(Digits))

	// Decimal produces a float64.
	Decimal = match.Tagged(TDecimal, match.Map(parseFloat)(DecimalDigits))

	// Number produces either a float64 or an int. Decimal is tried first so
	// that "12." is not read as the integer 12 followed by a dot.
	Number = match.First(Decimal, Integer)
)

func atoi(v any) (any, error) {
	return strconv.Atoi(v.(string))
}

// parseFloat keeps the ±Inf that strconv returns for out of range decimals.
func parseFloat(v any) (any, error) {
	f, err := strconv.ParseFloat(v.(string), 64)
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}
