package grammar

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the name of the start production in EBNF.
const Start = "Dictionary"

// EBNF describes the language matched by Dictionary. The letter production is
// narrower than the Letter parser, which accepts any Unicode letter.
const EBNF = `
Dictionary = { KeyValue } Space .
KeyValue   = Name Eq Value Semi .
Name       = Space letters .
Eq         = Space "=" .
Value      = Space number .
Semi       = Space ";" .
Space      = { space } .

letters = letter { letter } .
letter  = "a" … "z" | "A" … "Z" .
number  = decimal | integer .
decimal = digits "." [ digits ] | "." digits .
integer = digits .
digits  = digit { digit } .
digit   = "0" … "9" .
space   = " " | "\t" | "\n" | "\r" .
`

// Grammar parses EBNF and checks that it is complete and consistent.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("dictionary.ebnf", strings.NewReader(EBNF))
	if err != nil {
		return nil, err
	}

	if err := ebnf.Verify(g, Start); err != nil {
		return nil, err
	}

	return g, nil
}
