package match

import (
	"github.com/zostay/shift/parser"
	"github.com/zostay/shift/token"
)

// Shift consumes exactly one rune from the input and produces it as the match
// value. It fails only when the input is empty.
var Shift parser.MatcherFunc = func(in parser.Input) (*parser.Match, error) {
	r, n := in.Peek()
	if n == 0 {
		return nil, nil
	}

	return &parser.Match{Tag: token.Literal, Value: r, Rest: in.Advance(n)}, nil
}

// Nothing always succeeds without consuming anything. Its value is nil and the
// match is tagged token.None, marking it as the absent value of Maybe.
var Nothing parser.MatcherFunc = func(in parser.Input) (*parser.Match, error) {
	return &parser.Match{Tag: token.None, Rest: in}, nil
}
