package parser

// Matcher is the interface every parser satisfies. Match is given the input to
// start from and returns one of three outcomes:
//
//   - a non-nil *Match holding the produced value and the remaining input;
//   - a nil *Match and nil error when the input does not match;
//   - a non-nil error when a grammar function broke its contract, such as a
//     transform that cannot handle the value it was given. Errors are not
//     parse failures and no combinator recovers from them.
//
// A Matcher must not depend on or modify any state besides its input, so the
// same Matcher can be applied any number of times, from any goroutine.
type Matcher interface {
	Match(in Input) (*Match, error)
}

// MatcherFunc adapts an ordinary function into a Matcher.
type MatcherFunc func(in Input) (*Match, error)

func (mfun MatcherFunc) Match(in Input) (*Match, error) {
	return mfun(in)
}
