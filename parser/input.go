package parser

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unicode/utf8"
)

// Tracer is a function that is use to log or report parser traces. This
// function signature was chosen because it is commonly available, such as
// fmt.Print or log.Println, etc.
type Tracer func(v ...any)

type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)

// previewLen is how many bytes of the remaining input are shown in traces and
// by Match.String.
const previewLen = 10

// Input is an immutable view of the text being parsed: the whole source string
// plus the byte offset of the next unconsumed rune. Every operation that
// consumes input returns a new Input, so a matcher may hand the same Input to
// as many alternatives as it likes.
//
// The zero Input is valid and empty.
type Input struct {
	TraceFunc Tracer

	src string
	off int
}

// New returns an Input positioned at the start of src.
func New(src string) Input {
	return Input{src: src}
}

// WithTrace returns a copy of the Input that reports parser progress to f.
// Inputs derived from the copy inherit the same Tracer.
func (in Input) WithTrace(f Tracer) Input {
	in.TraceFunc = f
	return in
}

// Empty reports whether there is nothing left to consume.
func (in Input) Empty() bool {
	return in.off >= len(in.src)
}

// Rest returns the unconsumed remainder of the source.
func (in Input) Rest() string {
	return in.src[in.off:]
}

// Offset returns the byte offset of the cursor within the source.
func (in Input) Offset() int {
	return in.off
}

// Source returns the complete source, consumed or not.
func (in Input) Source() string {
	return in.src
}

// Len returns the number of unconsumed bytes.
func (in Input) Len() int {
	return len(in.src) - in.off
}

// Peek decodes the next rune without consuming it. The size is 0 when the
// input is empty.
func (in Input) Peek() (rune, int) {
	if in.Empty() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(in.src[in.off:])
}

// Advance returns a new Input with the cursor moved forward n bytes. It never
// moves past the end of the source.
func (in Input) Advance(n int) Input {
	in.off += n
	if in.off > len(in.src) {
		in.off = len(in.src)
	}
	return in
}

// Preview returns at most n bytes from the start of the remaining input,
// cut back to a rune boundary.
func (in Input) Preview(n int) string {
	rest := in.Rest()
	if len(rest) <= n {
		return rest
	}
	for n > 0 && !utf8.RuneStart(rest[n]) {
		n--
	}
	return rest[:n]
}

// String shows the remaining input, for debugging.
func (in Input) String() string {
	return fmt.Sprintf("%d:%q", in.off, in.Rest())
}

// Trace may be called to help track the progress through a parse for help in
// debugging.
func (in Input) Trace(stage Stage, name string, args ...any) {
	if in.TraceFunc == nil {
		return
	}

	out := &strings.Builder{}
	switch stage {
	case StageFail:
		fmt.Fprint(out, "ERR ")
	case StageGot:
		fmt.Fprint(out, "GOT ")
	case StageTry:
		fmt.Fprint(out, "TRY ")
	}

	fmt.Fprint(out, name)
	fmt.Fprint(out, "(")

	fmt.Fprint(out, in.Preview(previewLen))
	fmt.Fprint(out, "…")

	for i, arg := range args {
		fmt.Fprint(out, ", ")

		if arg != nil && reflect.TypeOf(arg).Kind() == reflect.Func {
			fmt.Fprint(out, runtime.FuncForPC(reflect.ValueOf(arg).Pointer()).Name())
			continue
		}

		if i == len(args)-1 {
			if err, isErr := arg.(error); isErr {
				fmt.Fprintf(out, "): %v", err)
				in.TraceFunc(out.String())
				return
			}

			if m, isMatch := arg.(*Match); isMatch {
				fmt.Fprintf(out, ") = %v", m)
				in.TraceFunc(out.String())
				return
			}
		}

		fmt.Fprint(out, arg)
	}

	fmt.Fprint(out, ")")

	in.TraceFunc(out.String())
}
