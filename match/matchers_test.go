package match_test

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/zostay/shift/match"
	"github.com/zostay/shift/parser"
	"github.com/zostay/shift/token"
)

func input(s string) parser.Input {
	trace := tracing.Select("shift.match")
	return parser.New(s).WithTrace(func(v ...any) {
		trace.Debugf("%s", fmt.Sprint(v...))
	})
}

func run(t *testing.T, mtch parser.Matcher, s string) *parser.Match {
	t.Helper()
	m, err := mtch.Match(input(s))
	if err != nil {
		t.Fatalf("unexpected error matching %q: %v", s, err)
	}
	return m
}

func expectMatch(t *testing.T, mtch parser.Matcher, s string, value any, rest string) {
	t.Helper()
	m := run(t, mtch, s)
	if m == nil {
		t.Errorf("expected %q to match", s)
		return
	}
	if !reflect.DeepEqual(m.Value, value) {
		t.Errorf("matching %q: expected value %#v, got %#v", s, value, m.Value)
	}
	if m.Rest.Rest() != rest {
		t.Errorf("matching %q: expected rest %q, got %q", s, rest, m.Rest.Rest())
	}
}

func expectNoMatch(t *testing.T, mtch parser.Matcher, s string) {
	t.Helper()
	if m := run(t, mtch, s); m != nil {
		t.Errorf("expected %q not to match, got %v", s, m)
	}
}

func TestShift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shift.match")
	defer teardown()
	//
	expectMatch(t, match.Shift, "bar", 'b', "ar")
	expectMatch(t, match.Shift, "ar", 'a', "r")
	expectMatch(t, match.Shift, "r", 'r', "")
	expectMatch(t, match.Shift, "élan", 'é', "lan")
	expectNoMatch(t, match.Shift, "")
}

func TestNothing(t *testing.T) {
	m := run(t, match.Nothing, "bar")
	if m == nil {
		t.Fatal("expected Nothing to match")
	}
	if m.Value != nil || m.Tag != token.None || m.Rest.Rest() != "bar" {
		t.Errorf("unexpected match %v", m)
	}

	if run(t, match.Nothing, "") == nil {
		t.Error("expected Nothing to match empty input")
	}
}

func TestFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shift.match")
	defer teardown()
	//
	digit := match.RuneFilter(match.IsDigit)(match.Shift)
	letter := match.RuneFilter(match.IsLetter)(match.Shift)

	expectMatch(t, digit, "456", '4', "56")
	expectNoMatch(t, letter, "456")
	expectNoMatch(t, digit, "")

	var seen []any
	spy := match.Filter(func(v any) bool {
		seen = append(seen, v)
		return true
	})(match.Shift)
	expectMatch(t, spy, "xy", 'x', "y")
	if !reflect.DeepEqual(seen, []any{'x'}) {
		t.Errorf("expected the predicate to see only the value, saw %#v", seen)
	}
}

func TestLiteralAndMemberOf(t *testing.T) {
	dot := match.Literal('.')(match.Shift)
	expectMatch(t, dot, ".456", '.', "456")
	expectNoMatch(t, dot, "45.6")

	expectMatch(t, match.Char('.'), ".456", '.', "456")

	digit := match.RuneFilter(match.IsDigit)(match.Shift)
	even := match.MemberOfRunes("02468")(digit)
	expectMatch(t, even, "456", '4', "56")
	expectNoMatch(t, even, "345")

	vowel := match.MemberOf('a', 'e', 'i', 'o', 'u')(match.Shift)
	expectMatch(t, vowel, "eat", 'e', "at")
	expectNoMatch(t, vowel, "tea")

	expectMatch(t, match.String("let"), "let x", "let", " x")
	expectNoMatch(t, match.String("let"), "lex")
	expectMatch(t, match.String(""), "abc", "", "abc")
}

func TestMap(t *testing.T) {
	ndigit := match.Map(func(v any) (any, error) {
		return int(v.(rune) - '0'), nil
	})(match.RuneFilter(match.IsDigit)(match.Shift))
	expectMatch(t, ndigit, "456", 4, "56")

	tenx := match.Map(match.Total(func(v any) any { return 10 * v.(int) }))
	expectMatch(t, tenx(ndigit), "456", 40, "56")
	expectNoMatch(t, tenx(ndigit), "x")
}

func TestMapComposition(t *testing.T) {
	f := func(v any) any { return int(v.(rune)) + 1 }
	g := func(v any) any { return v.(int) * 3 }

	composed := match.Map(match.Total(g))(match.Map(match.Total(f))(match.Shift))
	direct := match.Map(match.Total(func(v any) any { return g(f(v)) }))(match.Shift)

	for _, s := range []string{"a", "zz", "0", ""} {
		a := run(t, composed, s)
		b := run(t, direct, s)
		if (a == nil) != (b == nil) {
			t.Errorf("%q: composition disagrees on success", s)
			continue
		}
		if a != nil && (a.Value != b.Value || a.Rest.Rest() != b.Rest.Rest()) {
			t.Errorf("%q: expected %v, got %v", s, b, a)
		}
	}
}

func TestMapError(t *testing.T) {
	atoi := match.Map(func(v any) (any, error) {
		return strconv.Atoi(string(v.(rune)))
	})(match.Shift)

	expectMatch(t, atoi, "7", 7, "")

	m, err := atoi.Match(input("x"))
	if m != nil {
		t.Errorf("expected no match on error, got %v", m)
	}

	var terr *match.TransformError
	if !errors.As(err, &terr) {
		t.Fatalf("expected a TransformError, got %v", err)
	}
	if terr.Value != 'x' {
		t.Errorf("expected the failing value to be recorded, got %#v", terr.Value)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("expected the cause to unwrap to strconv.ErrSyntax, got %v", err)
	}

	// errors are not parse failures; combinators do not swallow them
	_, err = match.Either(atoi, match.Shift).Match(input("x"))
	if err == nil {
		t.Error("expected Either to propagate the error")
	}
	_, err = match.ZeroOrMore(atoi).Match(input("1x"))
	if err == nil {
		t.Error("expected ZeroOrMore to propagate the error")
	}
}

func TestSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shift.match")
	defer teardown()
	//
	for _, s := range []string{"", "abc"} {
		expectMatch(t, match.Seq(), s, []any{}, s)
	}

	abc := match.Seq(match.Char('a'), match.Char('b'), match.Char('c'))
	expectMatch(t, abc, "abcd", []any{'a', 'b', 'c'}, "d")
	expectNoMatch(t, abc, "abd")
	expectNoMatch(t, abc, "ab")
}

func TestEither(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shift.match")
	defer teardown()
	//
	ab := match.String("ab")
	abc := match.String("abc")

	// both alternatives match; the first one wins even though it is shorter
	expectMatch(t, match.Either(ab, abc), "abcd", "ab", "cd")
	expectMatch(t, match.Either(abc, ab), "abcd", "abc", "d")

	expectMatch(t, match.Either(abc, ab), "abd", "ab", "d")
	expectNoMatch(t, match.Either(abc, ab), "xyz")
}

func TestFirst(t *testing.T) {
	a, b, c := match.Char('a'), match.Char('b'), match.Char('c')

	expectMatch(t, match.First(a), "a", 'a', "")
	expectNoMatch(t, match.First(a), "b")

	abc := match.First(a, b, c)
	expectMatch(t, abc, "cab", 'c', "ab")
	expectMatch(t, abc, "bca", 'b', "ca")
	expectNoMatch(t, abc, "d")

	defer func() {
		if r := recover(); r != match.ErrEmptyChoice {
			t.Errorf("expected panic with ErrEmptyChoice, got %v", r)
		}
	}()
	match.First()
}

func TestRepeat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shift.match")
	defer teardown()
	//
	digit := match.RuneFilter(match.IsDigit)(match.Shift)
	digits := match.OneOrMore(digit)

	expectMatch(t, digits, "456", []any{'4', '5', '6'}, "")
	expectMatch(t, digits, "45x6", []any{'4', '5'}, "x6")
	expectNoMatch(t, digits, "bar")
	expectNoMatch(t, digits, "")

	many := match.ZeroOrMore(digit)
	expectMatch(t, many, "456", []any{'4', '5', '6'}, "")
	expectMatch(t, many, "bar", []any{}, "bar")
	expectMatch(t, many, "", []any{}, "")

	expectNoMatch(t, match.Many(3, digit), "12x")
	expectMatch(t, match.Many(3, digit), "123x", []any{'1', '2', '3'}, "x")
}

func TestRepeatWithoutProgress(t *testing.T) {
	expectMatch(t, match.ZeroOrMore(match.Nothing), "abc", []any{nil}, "abc")
	expectMatch(t, match.OneOrMore(match.Maybe(match.Char('a'))), "aab", []any{'a', 'a', nil}, "b")
}

func TestSepBy(t *testing.T) {
	digit := match.RuneFilter(match.IsDigit)(match.Shift)
	list := match.SepBy(1, digit, match.Char(','))

	expectMatch(t, list, "1,2,3", []any{'1', '2', '3'}, "")
	expectMatch(t, list, "1,2,", []any{'1', '2'}, ",")
	expectMatch(t, list, "1", []any{'1'}, "")
	expectNoMatch(t, list, ",1")

	expectMatch(t, match.SepBy(0, digit, match.Char(',')), "x", []any{}, "x")
}

func TestMaybe(t *testing.T) {
	sign := match.Maybe(match.Char('-'))

	expectMatch(t, sign, "-1", '-', "1")

	m := run(t, sign, "1")
	if m == nil {
		t.Fatal("expected Maybe never to fail")
	}
	if m.Value != nil || m.Tag != token.None || m.Rest.Rest() != "1" {
		t.Errorf("expected the absent value, got %v", m)
	}
}

func TestLeftRight(t *testing.T) {
	a, b := match.Char('a'), match.Char('b')

	expectMatch(t, match.Left(a, b), "abc", 'a', "c")
	expectMatch(t, match.Right(a, b), "abc", 'b', "c")
	expectNoMatch(t, match.Left(a, b), "ac")
	expectNoMatch(t, match.Right(a, b), "bb")
}

func TestTagged(t *testing.T) {
	tag := token.NamedTag("test.letter")
	letter := match.Tagged(tag, match.RuneFilter(match.IsLetter)(match.Shift))

	m := run(t, letter, "q")
	if m == nil || m.Tag != tag {
		t.Errorf("expected a match tagged %v, got %v", tag, m)
	}
	expectNoMatch(t, letter, "1")
}

func TestJoin(t *testing.T) {
	v, err := match.Join([]any{'4', "56", '7'})
	if err != nil || v != "4567" {
		t.Errorf("expected 4567, got %#v (%v)", v, err)
	}

	if _, err := match.Join([]any{4}); err == nil {
		t.Error("expected joining an int to fail")
	}
	if _, err := match.Join("x"); err == nil {
		t.Error("expected joining a non-list to fail")
	}
}

func TestReentrant(t *testing.T) {
	digits := match.OneOrMore(match.RuneFilter(match.IsDigit)(match.Shift))
	in := input("12ab")

	first, _ := digits.Match(in)
	second, _ := digits.Match(in)
	if first == nil || second == nil ||
		!reflect.DeepEqual(first.Value, second.Value) ||
		first.Rest.Offset() != second.Rest.Offset() {
		t.Errorf("expected repeated matches on the same input to agree: %v vs %v", first, second)
	}
	if in.Rest() != "12ab" {
		t.Errorf("input was modified: %q", in.Rest())
	}
}
