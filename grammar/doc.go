/*
Package grammar builds parsers for numbers and key/value dictionaries purely
out of the combinators in package match.

The language accepted by Dictionary looks like this:

	x = 2; y = 3.4;
	z=.789;

Names are runs of letters, values are integers or decimals, and every pair is
terminated by a semicolon. Whitespace is allowed before every token. EBNF
holds the same language in the notation of golang.org/x/exp/ebnf.

Every exported parser is a plain parser.Matcher value, safe to share and to
run concurrently.
*/
package grammar
