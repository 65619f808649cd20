package pattern

import (
	"errors"
	"fmt"
)

// ErrUnknownPattern is returned by Library.Select for a name the library
// does not hold.
var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Library is an ordered, immutable set of patterns. Expansion visits the
// patterns in library order, which decides tie-breaking between children of
// equal cost. The zero value is an empty library.
type Library struct {
	patterns []Pattern
}

// NewLibrary builds a library holding patterns in the given order.
func NewLibrary(patterns ...Pattern) Library {
	return Library{patterns: append([]Pattern(nil), patterns...)}
}

// Len returns the number of patterns.
func (l Library) Len() int { return len(l.patterns) }

// At returns the i-th pattern.
func (l Library) At(i int) Pattern { return l.patterns[i] }

// Patterns returns a copy of the patterns in order.
func (l Library) Patterns() []Pattern {
	return append([]Pattern(nil), l.patterns...)
}

// Names lists pattern names in order.
func (l Library) Names() []string {
	names := make([]string, len(l.patterns))
	for i, p := range l.patterns {
		names[i] = p.Name()
	}
	return names
}

// Lookup finds a pattern by name.
func (l Library) Lookup(name string) (Pattern, bool) {
	for _, p := range l.patterns {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Select returns a library restricted to the named patterns, in the order
// given.
func (l Library) Select(names ...string) (Library, error) {
	out := make([]Pattern, 0, len(names))
	for _, name := range names {
		p, ok := l.Lookup(name)
		if !ok {
			return Library{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
		}
		out = append(out, p)
	}
	return Library{patterns: out}, nil
}

// With returns a new library with extra patterns appended.
func (l Library) With(patterns ...Pattern) Library {
	out := make([]Pattern, 0, len(l.patterns)+len(patterns))
	out = append(out, l.patterns...)
	out = append(out, patterns...)
	return Library{patterns: out}
}
