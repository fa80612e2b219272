package parser

import (
	"fmt"

	"github.com/zostay/shift/token"
)

// Match is a successful parse: the value produced and the input left over.
//
// A failed parse is represented by a nil *Match, never by a Match holding a
// zero value. A Match whose Value is nil, an empty list or an empty map is
// still a success.
type Match struct {
	Tag   token.Tag // an identifier describing what the match represents
	Value any       // the value produced by the matcher
	Rest  Input     // the input remaining after the match
}

// Consumed returns the number of bytes this match consumed, given the input
// it was matched against.
func (m *Match) Consumed(from Input) int {
	if m == nil {
		return 0
	}
	return m.Rest.Offset() - from.Offset()
}

// WithValue returns a copy of the match carrying v instead.
func (m *Match) WithValue(v any) *Match {
	return &Match{Tag: m.Tag, Value: v, Rest: m.Rest}
}

func (m *Match) String() string {
	if m == nil {
		return "<no match>"
	}
	rest := m.Rest.Preview(previewLen)
	if len(rest) < m.Rest.Len() {
		rest += "…"
	}
	return fmt.Sprintf("%v(%#v, %q)", m.Tag, m.Value, rest)
}
