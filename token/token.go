package token

import (
	"strconv"
	"sync"
)

// Tag is the abstract tag identifier used to label matches by the grammar rule
// that produced them. Tags are only informational: they show up in traces and
// in Match.String, but no combinator changes its behavior because of a tag.
type Tag int

// A few standard tags for matches.
const (
	// None is the tag to use for matches that aren't actual matches, such as
	// the absent value returned by match.Nothing and match.Maybe.
	None Tag = iota

	// Literal is the most generic tag.
	Literal

	// Last identifies the first non-built-in tag. No guarantee is made that
	// this will never change.
	Last
)

var (
	lock    sync.Mutex
	prevTag = Last
	names   = map[Tag]string{
		None:    "None",
		Literal: "Literal",
	}
)

// NextTag provides an interface for assigning tags serial numbers at runtime to
// avoid conflicts between tags when parsers from different modules are mixed
// and matched. This returns the next available tag and should be called during
// init.
func NextTag() Tag {
	lock.Lock()
	defer lock.Unlock()
	prevTag++
	return prevTag
}

// NamedTag works like NextTag, but also records a name for the tag, which is
// then used by String.
func NamedTag(name string) Tag {
	t := NextTag()

	lock.Lock()
	defer lock.Unlock()
	names[t] = name
	return t
}

// String returns the name given to NamedTag or a numbered placeholder.
func (t Tag) String() string {
	lock.Lock()
	defer lock.Unlock()
	if n, ok := names[t]; ok {
		return n
	}
	return "Tag(" + strconv.Itoa(int(t)) + ")"
}
