// Package shift is a small parser-combinator library. Parsers are
// parser.Matcher values built out of two primitives, match.Shift and
// match.Nothing, and the combinators in package match. Package grammar shows
// them at work on numbers and key/value dictionaries.
//
// The functions here run a Matcher against a string and report the outcome in
// the shape most callers want.
//
// Sequencing and repetition are loops, so the length of the input does not
// add to stack depth. Deeply nested grammars are still limited by the
// goroutine stack, and running out of it is fatal rather than a failed match.
package shift

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/zostay/shift/parser"
)

// Errors returned by ParseAll.
var (
	ErrNoMatch    = errors.New("input does not match")
	ErrIncomplete = errors.New("input not fully consumed")
)

// tracer traces with key 'shift.parser'
func tracer() tracing.Trace {
	return tracing.Select("shift.parser")
}

// TraceTo adapts a schuko trace into a parser.Tracer. Parser traces are
// written at debug level.
func TraceTo(t tracing.Trace) parser.Tracer {
	return func(v ...any) {
		t.Debugf("%s", fmt.Sprint(v...))
	}
}

// Parse runs mtch against src. When the input does not match, ok is false and
// err is nil. An error means a transform in the grammar failed.
func Parse(mtch parser.Matcher, src string) (value any, rest string, ok bool, err error) {
	in := parser.New(src)
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		in = in.WithTrace(TraceTo(tracer()))
	}

	m, err := mtch.Match(in)
	if err != nil {
		tracer().Errorf("parse failed: %v", err)
		return nil, src, false, err
	}

	if m == nil {
		tracer().Debugf("no match for %q", src)
		return nil, src, false, nil
	}

	return m.Value, m.Rest.Rest(), true, nil
}

// ParseAll runs mtch against src and requires it to consume all of it. It
// returns ErrNoMatch when mtch fails and an error wrapping ErrIncomplete when
// input is left over.
func ParseAll(mtch parser.Matcher, src string) (any, error) {
	v, rest, ok, err := Parse(mtch, src)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrNoMatch
	}

	if rest != "" {
		return nil, fmt.Errorf("%w: stopped at offset %d, before %q", ErrIncomplete, len(src)-len(rest), preview(rest))
	}

	return v, nil
}

func preview(s string) string {
	const max = 20
	for i := range s {
		if i >= max {
			return s[:i] + "…"
		}
	}
	return s
}
