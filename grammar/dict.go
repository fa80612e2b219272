package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/zostay/shift/match"
	"github.com/zostay/shift/parser"
)

// Whitespace skips any amount of whitespace, including none.
var Whitespace = match.ZeroOrMore(Space)

// Token returns a Matcher that skips leading whitespace and then matches mtch,
// keeping only the value of mtch. Trailing whitespace is left alone.
func Token(mtch parser.Matcher) parser.Matcher {
	return match.Right(Whitespace, mtch)
}

var (
	Name  = match.Tagged(TName, Token(Letters))
	Value = Token(Number)
	Eq    = Token(match.Char('='))
	Semi  = Token(match.Char(';'))

	// KeyValue matches "name = value;" and produces []any{name, value}.
	KeyValue = match.Tagged(TKeyValue, match.Seq(match.Left(Name, Eq), match.Left(Value, Semi)))

	// KeyValues matches any number of pairs and produces a map[string]any.
	// When a name repeats, the last value wins. It never fails.
	KeyValues = match.Map(pairsToMap)(match.ZeroOrMore(KeyValue))

	// OrderedKeyValues works like KeyValues, but produces a
	// *linkedhashmap.Map that iterates in order of first appearance.
	OrderedKeyValues = match.Map(pairsToOrderedMap)(match.ZeroOrMore(KeyValue))

	// Dictionary is KeyValues followed by any trailing whitespace, for
	// matching a complete document.
	Dictionary = match.Left(KeyValues, Whitespace)
)

func eachPair(v any, f func(k string, v any)) error {
	pairs, isList := v.([]any)
	if !isList {
		return fmt.Errorf("expected a list of pairs, got %T", v)
	}

	for _, p := range pairs {
		kv, isPair := p.([]any)
		if !isPair || len(kv) != 2 {
			return fmt.Errorf("expected a key/value pair, got %#v", p)
		}

		k, isString := kv[0].(string)
		if !isString {
			return fmt.Errorf("expected a string key, got %T", kv[0])
		}

		f(k, kv[1])
	}

	return nil
}

func pairsToMap(v any) (any, error) {
	dict := map[string]any{}
	err := eachPair(v, func(k string, v any) {
		dict[k] = v
	})
	if err != nil {
		return nil, err
	}
	return dict, nil
}

func pairsToOrderedMap(v any) (any, error) {
	dict := linkedhashmap.New()
	err := eachPair(v, func(k string, v any) {
		dict.Put(k, v)
	})
	if err != nil {
		return nil, err
	}
	return dict, nil
}

// OrderedDictionary is OrderedKeyValues followed by any trailing whitespace.
var OrderedDictionary = match.Left(OrderedKeyValues, Whitespace)
