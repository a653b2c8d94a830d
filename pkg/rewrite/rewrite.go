// Package rewrite implements fixpoint sequence rewriting under an ordered set
// of rules.
//
// A Rewriter holds rules mapping a pattern sequence to a replacement sequence.
// Normalize repeatedly replaces the leftmost occurrence of the first matching
// rule until no rule applies. Rules are kept in insertion order and the first
// matching rule wins, so rewriting behavior is reproducible. The caller must
// supply a terminating rule set; Normalize bounds the number of rewrites and
// returns ErrNotConverged instead of looping forever.
//
// The element type is generic over any comparable type, so the same engine
// rewrites vertex paths, token streams, or any other flat sequences.
package rewrite

import (
	"errors"
	"slices"
)

// DefaultMaxRewrites is the rewrite budget used when Rewriter.MaxRewrites
// is zero. A well-behaved rule set converges in far fewer steps; hitting the
// budget almost certainly means the rules do not terminate.
const DefaultMaxRewrites = 10000

// Sentinel errors for rewriting operations.
var (
	// ErrEmptySequence is returned by Normalize for an empty input sequence.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrEmptyPattern is returned by AddRule when the pattern is empty.
	// An empty pattern would match everywhere and never converge.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrEmptyReplacement is returned by AddRule when the replacement is empty.
	ErrEmptyReplacement = errors.New("empty replacement")

	// ErrNotConverged is returned by Normalize when the rewrite budget is
	// exhausted before reaching a fixpoint.
	ErrNotConverged = errors.New("rule set did not converge")
)

// rule associates a pattern with its replacement.
type rule[E comparable] struct {
	pattern     []E
	replacement []E
}

// Rewriter rewrites sequences of E to a normal form under its rules.
// The zero value is usable and rewrites nothing.
//
// Rewriter is not safe for concurrent use.
type Rewriter[E comparable] struct {
	// MaxRewrites bounds the total number of replacements performed by a
	// single Normalize call. Zero means DefaultMaxRewrites.
	MaxRewrites int

	rules []rule[E]
}

// New creates an empty Rewriter.
func New[E comparable]() *Rewriter[E] {
	return &Rewriter[E]{}
}

// AddRule registers pattern → replacement. Adding a rule whose pattern is
// already registered overwrites the prior replacement in place, keeping the
// rule's original position in the match order.
func (r *Rewriter[E]) AddRule(pattern, replacement []E) error {
	if len(pattern) == 0 {
		return ErrEmptyPattern
	}
	if len(replacement) == 0 {
		return ErrEmptyReplacement
	}
	for i := range r.rules {
		if slices.Equal(r.rules[i].pattern, pattern) {
			r.rules[i].replacement = slices.Clone(replacement)
			return nil
		}
	}
	r.rules = append(r.rules, rule[E]{
		pattern:     slices.Clone(pattern),
		replacement: slices.Clone(replacement),
	})
	return nil
}

// Len returns the number of registered rules.
func (r *Rewriter[E]) Len() int { return len(r.rules) }

// Normalize rewrites seq to a fixpoint and returns the result.
// Each round scans the rules in insertion order; the first rule whose pattern
// occurs in the current sequence replaces its leftmost occurrence, and the
// scan restarts. Normalize returns when a full round finds no match.
//
// The input is not modified. Returns ErrEmptySequence for empty input and
// ErrNotConverged when the rewrite budget is exhausted.
func (r *Rewriter[E]) Normalize(seq []E) ([]E, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	budget := r.MaxRewrites
	if budget <= 0 {
		budget = DefaultMaxRewrites
	}

	cur := slices.Clone(seq)
	for n := 0; ; n++ {
		if n >= budget {
			return nil, ErrNotConverged
		}
		matched := false
		for _, rl := range r.rules {
			pos := Index(cur, rl.pattern)
			if pos < 0 {
				continue
			}
			next := make([]E, 0, len(cur)-len(rl.pattern)+len(rl.replacement))
			next = append(next, cur[:pos]...)
			next = append(next, rl.replacement...)
			next = append(next, cur[pos+len(rl.pattern):]...)
			cur = next
			matched = true
			break
		}
		if !matched {
			return cur, nil
		}
	}
}

// Index returns the position of the leftmost occurrence of needle as a
// contiguous sub-sequence of haystack, or -1 if there is none. An empty
// needle is reported as not found.
func Index[E comparable](haystack, needle []E) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if slices.Equal(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
