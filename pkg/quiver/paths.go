package quiver

import (
	"fmt"
	"slices"
)

// ListPaths enumerates every directed walk from s to t as a vertex sequence.
// These are all walks, not equivalence classes under the relations; use
// ListReducedPaths for the latter. If s == t the result is the single
// one-vertex path.
//
// The enumeration is iterative (explicit stack), so walk length is not
// limited by the call stack. The quiver must be acyclic: on a cyclic quiver
// the walk set is infinite and this enumeration does not terminate. Use
// Validate to check acyclicity first. Enumeration is exponential in the worst
// case.
//
// Returns ErrVertexNotFound if either endpoint is unknown.
func (q *Quiver) ListPaths(s, t string) ([]Path, error) {
	if !q.Contains(s) {
		return nil, fmt.Errorf("list paths from %q: %w", s, ErrVertexNotFound)
	}
	if !q.Contains(t) {
		return nil, fmt.Errorf("list paths to %q: %w", t, ErrVertexNotFound)
	}

	// Depth-first backtracking over successor lists. Each frame remembers
	// how many successors of its vertex have been explored so far.
	type frame struct {
		vertex string
		next   int
	}

	var paths []Path
	stack := []frame{{vertex: s}}
	walk := []string{s}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.vertex == t {
			paths = append(paths, Path(slices.Clone(walk)))
			stack = stack[:len(stack)-1]
			walk = walk[:len(walk)-1]
			continue
		}

		succ := q.outgoing[top.vertex]
		if top.next < len(succ) {
			v := succ[top.next]
			top.next++
			stack = append(stack, frame{vertex: v})
			walk = append(walk, v)
			continue
		}

		stack = stack[:len(stack)-1]
		walk = walk[:len(walk)-1]
	}
	return paths, nil
}

// ListReducedPaths returns the distinct normal forms, under the registered
// relations, of all walks from s to t. The result preserves the order in
// which each normal form is first produced.
func (q *Quiver) ListReducedPaths(s, t string) ([]Path, error) {
	paths, err := q.ListPaths(s, t)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(paths))
	var reduced []Path
	for _, p := range paths {
		normal, err := q.rules.Normalize(p)
		if err != nil {
			return nil, fmt.Errorf("normalize path %v: %w", p, err)
		}
		np := Path(normal)
		if key := np.Key(); !seen[key] {
			seen[key] = true
			reduced = append(reduced, np)
		}
	}
	return reduced, nil
}

// CountReducedPaths counts the equivalence classes of walks from s to t under
// the relations. On a commutative quiver any positive count collapses to 1:
// only existence of a path is reported. Counts are memoized per (s, t) pair.
func (q *Quiver) CountReducedPaths(s, t string) (int, error) {
	key := [2]string{s, t}
	if n, ok := q.counts.Get(key); ok {
		return n, nil
	}

	reduced, err := q.ListReducedPaths(s, t)
	if err != nil {
		return 0, err
	}
	n := len(reduced)
	if q.commutative && n > 0 {
		n = 1
	}
	q.counts.Add(key, n)
	return n, nil
}
