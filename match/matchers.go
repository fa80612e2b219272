package match

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/zostay/shift/parser"
	"github.com/zostay/shift/token"
)

// ErrEmptyChoice is the panic value of First when it is given no alternatives.
var ErrEmptyChoice = errors.New("choice requires at least one alternative")

// Predicate decides whether a value produced by a Matcher is acceptable.
type Predicate func(v any) bool

// Transform converts a value produced by a Matcher. An error means the
// transform was handed a value it was never meant to handle.
type Transform func(v any) (any, error)

// Combinator wraps one Matcher to make another.
type Combinator func(mtch parser.Matcher) parser.Matcher

// TransformError is returned by matchers built with Map when the Transform
// fails. This is a mistake in the grammar, not in the input.
type TransformError struct {
	Value any
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform of %#v failed: %v", e.Value, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Total lifts a function that cannot fail into a Transform.
func Total(f func(v any) any) Transform {
	return func(v any) (any, error) {
		return f(v), nil
	}
}

// Filter returns a Combinator whose Matcher runs the given Matcher and keeps
// its Match only when the predicate accepts the value.
func Filter(pred Predicate) Combinator {
	return func(mtch parser.Matcher) parser.Matcher {
		return parser.MatcherFunc(func(in parser.Input) (*parser.Match, error) {
			m, err := mtch.Match(in)
			if err != nil || m == nil {
				return nil, err
			}

			if !pred(m.Value) {
				return nil, nil
			}

			return m, nil
		})
	}
}

// Map returns a Combinator whose Matcher runs the given Matcher and replaces
// the value of the Match with the result of the transform. If the transform
// fails, the error is returned as a *TransformError.
func Map(f Transform) Combinator {
	return func(mtch parser.Matcher) parser.Matcher {
		return parser.MatcherFunc(func(in parser.Input) (*parser.Match, error) {
			m, err := mtch.Match(in)
			if err != nil || m == nil {
				return nil, err
			}

			v, err := f(m.Value)
			if err != nil {
				err = &TransformError{Value: m.Value, Err: err}
				in.Trace(parser.StageFail, "Map", f, err)
				return nil, err
			}

			return m.WithValue(v), nil
		})
	}
}

// Tagged returns a Matcher that relabels every Match of the given Matcher
// with the token.Tag t.
func Tagged(t token.Tag, mtch parser.Matcher) parser.MatcherFunc {
	return func(in parser.Input) (*parser.Match, error) {
		in.Trace(parser.StageTry, "Tagged", t)

		m, err := mtch.Match(in)
		if err != nil || m == nil {
			return nil, err
		}

		m = &parser.Match{Tag: t, Value: m.Value, Rest: m.Rest}
		in.Trace(parser.StageGot, "Tagged", t, m)
		return m, nil
	}
}

// Literal returns a Combinator that keeps only Matches whose value equals v.
func Literal(v any) Combinator {
	return Filter(func(x any) bool {
		return reflect.DeepEqual(x, v)
	})
}

// MemberOf returns a Combinator that keeps only Matches whose value equals one
// of vs.
func MemberOf(vs ...any) Combinator {
	return Filter(func(x any) bool {
		for _, v := range vs {
			if reflect.DeepEqual(x, v) {
				return true
			}
		}
		return false
	})
}

// MemberOfRunes returns a Combinator that keeps only Matches whose value is a
// rune contained in set.
func MemberOfRunes(set string) Combinator {
	return RuneFilter(func(r rune) bool {
		return strings.ContainsRune(set, r)
	})
}

// Char returns a Matcher for exactly one rune equal to c.
func Char(c rune) parser.Matcher {
	return Literal(c)(Shift)
}

// String returns a Matcher that returns a Match when the given string matches
// the next runes in the input. The value of the Match is s.
func String(s string) parser.Matcher {
	runeMatchers := make([]parser.Matcher, 0, len(s))
	for _, r := range s {
		runeMatchers = append(runeMatchers, Char(r))
	}
	return Map(Total(func(any) any { return s }))(Seq(runeMatchers...))
}

// Seq returns a Matcher that applies each passed Matcher in turn against the
// input, each starting where the previous one stopped. Returns with no match
// immediately if any Matcher in the sequence fails. Otherwise the value is a
// []any holding the value of each Matcher in order.
//
// Seq with no arguments always matches, consuming nothing and producing an
// empty list.
func Seq(mtchs ...parser.Matcher) parser.MatcherFunc {
	return func(in parser.Input) (*parser.Match, error) {
		vs := make([]any, 0, len(mtchs))
		rest := in
		for _, mtch := range mtchs {
			m, err := mtch.Match(rest)
			if err != nil || m == nil {
				return nil, err
			}

			vs = append(vs, m.Value)
			rest = m.Rest
		}

		return &parser.Match{
			Tag:   token.Literal,
			Value: vs,
			Rest:  rest,
		}, nil
	}
}

// Either returns a Matcher that tries first and returns its Match if it
// succeeds. Only when first fails is second tried, against the same input.
func Either(first, second parser.Matcher) parser.MatcherFunc {
	return func(in parser.Input) (*parser.Match, error) {
		m, err := first.Match(in)
		if err != nil {
			return nil, err
		}

		if m != nil {
			return m, nil
		}

		return second.Match(in)
	}
}

// First returns a matcher that will try each match in order and immediately
// returns on the first one tried that succeeds. Returns no match if none
// succeed. It panics with ErrEmptyChoice when called without arguments.
func First(mtchs ...parser.Matcher) parser.Matcher {
	if len(mtchs) == 0 {
		panic(ErrEmptyChoice)
	}

	choice := mtchs[len(mtchs)-1]
	for i := len(mtchs) - 2; i >= 0; i-- {
		choice = Either(mtchs[i], choice)
	}

	return choice
}

// Many returns a Matcher that matches the given matcher as many times as
// possible one after another on the input. The value is a []any of the values
// of each repetition. If the number of matches is fewer than min, it returns
// nil.
//
// A repetition that consumes no input ends the loop after its value has been
// recorded. Without this, a Matcher like Nothing would repeat forever.
func Many(
	min int,
	mtch parser.Matcher,
) parser.MatcherFunc {
	return func(in parser.Input) (*parser.Match, error) {
		vs := make([]any, 0, min)
		rest := in

		for {
			m, err := mtch.Match(rest)
			if err != nil {
				rest.Trace(parser.StageFail, "Many", min, mtch, err)
				return nil, err
			}

			if m == nil {
				break
			}

			vs = append(vs, m.Value)
			progress := m.Consumed(rest) > 0
			rest = m.Rest

			if !progress {
				break
			}
		}

		if len(vs) < min {
			return nil, nil
		}

		m := &parser.Match{
			Tag:   token.Literal,
			Value: vs,
			Rest:  rest,
		}

		in.Trace(parser.StageGot, "Many", min, mtch, m)
		return m, nil
	}
}

// OneOrMore returns a Matcher that repeats mtch at least once.
func OneOrMore(mtch parser.Matcher) parser.MatcherFunc {
	return Many(1, mtch)
}

// ZeroOrMore returns a Matcher that repeats mtch any number of times. It never
// fails: with no repetitions it matches an empty list and consumes nothing.
func ZeroOrMore(mtch parser.Matcher) parser.MatcherFunc {
	return Either(OneOrMore(mtch), Seq())
}

// SepBy returns a matcher that matches the given matcher against the input
// provided that the separator matcher matches in between. The value is a []any
// of the item values; separator values are dropped. A trailing separator is
// not consumed. If fewer than min items are present, the match returns no
// match.
func SepBy(
	min int,
	mtch parser.Matcher,
	sep parser.Matcher,
) parser.MatcherFunc {
	item := Right(sep, mtch)
	return func(in parser.Input) (*parser.Match, error) {
		in.Trace(parser.StageTry, "SepBy", min, mtch, sep)

		vs := make([]any, 0, min)
		rest := in

		for {
			next := mtch
			if len(vs) > 0 {
				next = item
			}

			m, err := next.Match(rest)
			if err != nil {
				rest.Trace(parser.StageFail, "SepBy", min, mtch, sep, err)
				return nil, err
			}

			if m == nil {
				break
			}

			vs = append(vs, m.Value)
			progress := m.Consumed(rest) > 0
			rest = m.Rest

			if !progress {
				break
			}
		}

		if len(vs) < min {
			return nil, nil
		}

		m := &parser.Match{
			Tag:   token.Literal,
			Value: vs,
			Rest:  rest,
		}

		in.Trace(parser.StageGot, "SepBy", min, mtch, sep, m)
		return m, nil
	}
}

// Maybe returns a Matcher that returns the Match when the called Matcher
// matches, but also returns an empty Match when the called Matcher does not
// match. The empty Match has a nil value and the token.Tag token.None.
func Maybe(mtch parser.Matcher) parser.MatcherFunc {
	return Either(mtch, Nothing)
}

func pick(i int) Transform {
	return func(v any) (any, error) {
		vs, isList := v.([]any)
		if !isList || len(vs) <= i {
			return nil, fmt.Errorf("expected a list of at least %d values", i+1)
		}
		return vs[i], nil
	}
}

// Left returns a Matcher that matches first then second and keeps the value of
// first.
func Left(first, second parser.Matcher) parser.Matcher {
	return Map(pick(0))(Seq(first, second))
}

// Right returns a Matcher that matches first then second and keeps the value
// of second.
func Right(first, second parser.Matcher) parser.Matcher {
	return Map(pick(1))(Seq(first, second))
}

// Join is a Transform that concatenates a []any of runes and strings into a
// single string.
func Join(v any) (any, error) {
	vs, isList := v.([]any)
	if !isList {
		return nil, fmt.Errorf("cannot join %T", v)
	}

	var sb strings.Builder
	for _, x := range vs {
		switch x := x.(type) {
		case rune:
			sb.WriteRune(x)
		case string:
			sb.WriteString(x)
		default:
			return nil, fmt.Errorf("cannot join element of type %T", x)
		}
	}

	return sb.String(), nil
}
