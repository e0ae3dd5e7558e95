// Package span provides source span types used across the engine.
package span

import "fmt"

// Span represents a half-open character range [Start, End) into the
// source string the expression was parsed from. Offsets are rune
// offsets, so multi-byte operator glyphs still count as one character.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// New creates a span covering [start, end).
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Len returns the character length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no characters. Zero-width
// spans are produced for synthetic tokens and the EOF marker.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Overlaps reports whether two half-open spans intersect.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

// Join returns the smallest span covering both s and o.
func (s Span) Join(o Span) Span {
	out := s
	if o.Start < out.Start {
		out.Start = o.Start
	}
	if o.End > out.End {
		out.End = o.End
	}
	return out
}
