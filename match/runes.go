package match

import (
	"unicode"

	"github.com/zostay/go-std/slices"

	"github.com/zostay/shift/parser"
	"github.com/zostay/shift/token"
)

// RunePredicate is a function that returns true if it matches a single rune or
// false if it does not.
type RunePredicate func(r rune) bool

// Predicates for the character classes the grammar package needs.
var (
	IsDigit  RunePredicate = RunesInRange('0', '9')
	IsLetter RunePredicate = unicode.IsLetter
	IsSpace  RunePredicate = unicode.IsSpace
)

// RunesInSet creates a RunePredicate from the set of runes given.
func RunesInSet(cs ...rune) RunePredicate {
	return func(r rune) bool {
		for _, c := range cs {
			if c == r {
				return true
			}
		}
		return false
	}
}

// RunesInRange creates a RunePredicate that matches any rune in the given
// range. The match is inclusive so runes equal to either end point are also
// matched.
func RunesInRange(cs, ce rune) RunePredicate {
	return func(r rune) bool {
		return r >= cs && r <= ce
	}
}

// AnyRunes creates a combined RunePredicate that matches a rune that matches
// any of the given predicates.
func AnyRunes(preds ...RunePredicate) RunePredicate {
	switch len(preds) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(r rune) bool {
			for _, pred := range preds {
				if pred(r) {
					return true
				}
			}
			return false
		}
	}
}

// NotRunes creates a combined RunePredicate that matches a rune that does not
// match any of the given predicates.
func NotRunes(preds ...RunePredicate) RunePredicate {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatRunes creates a combined RunePredicate that matches a rune that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatRunes(this, that RunePredicate) RunePredicate {
	return func(r rune) bool {
		return this(r) && !that(r)
	}
}

// RuneFilter is Filter for matchers producing runes, such as Shift. Values that
// are not runes are rejected.
func RuneFilter(pred RunePredicate) Combinator {
	return Filter(func(v any) bool {
		r, isRune := v.(rune)
		return isRune && pred(r)
	})
}

// Runes is the Matcher returned by OneRune. It provides a number of tools that
// allow this Matcher to be combined with other Runes Matchers.
type Runes struct {
	t    token.Tag
	pred RunePredicate
}

// OneRune returns a matcher that shifts the next rune and keeps it if it
// matches any of the given RunePredicates. The Match is tagged with the given
// token.Tag and carries the rune as its value.
func OneRune(
	t token.Tag,
	preds ...RunePredicate,
) *Runes {
	return &Runes{
		t:    t,
		pred: AnyRunes(preds...),
	}
}

// Match returns a Match with the configured token.Tag if the next rune in the
// input matches the predicate. It returns nil otherwise.
func (r *Runes) Match(in parser.Input) (*parser.Match, error) {
	m, err := RuneFilter(r.pred)(Shift).Match(in)
	if err != nil || m == nil {
		return nil, err
	}

	m.Tag = r.t
	in.Trace(parser.StageGot, "Runes.Match", r.t, m)
	return m, nil
}

func extractPredFromRunes(r *Runes) RunePredicate {
	return r.pred
}

// AndAlso creates a new Runes Matcher which combines the predicate of this
// Runes Matcher with predicates of the given Runes Matchers such that a match
// occurs if the next rune in the input matches any of those predicates. The
// returned Match (when found), will have the token.Tag of this Runes Matcher.
func (r *Runes) AndAlso(rs ...*Runes) *Runes {
	preds := append([]RunePredicate{r.pred}, slices.Map(rs, extractPredFromRunes)...)
	return &Runes{
		t:    r.t,
		pred: AnyRunes(preds...),
	}
}

// ButNot creates a new Runes Matcher which combines the predicate of this
// Runes Matcher with predicates of the given Runes Matchers such that a match
// is successful if it matches this Runes Matcher, but not those.
func (r *Runes) ButNot(rs ...*Runes) *Runes {
	preds := slices.Map(rs, extractPredFromRunes)
	return &Runes{
		t:    r.t,
		pred: ThisButNotThatRunes(r.pred, AnyRunes(preds...)),
	}
}
