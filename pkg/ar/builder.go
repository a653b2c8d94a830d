package ar

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/quiverlab/quivertool/pkg/dimvec"
	"github.com/quiverlab/quivertool/pkg/quiver"
)

// DefaultThreshold is the dimension-vector component bound used to declare a
// quiver representation-infinite. True representation-infinite type has
// unbounded dimension vectors, so any sufficiently large observed component
// is conclusive; small thresholds risk false positives on genuinely finite
// but wide quivers.
const DefaultThreshold = 7

// Status reports how an AR quiver construction ended.
type Status int

const (
	// StatusFinite means the worklist drained: the source quiver is of
	// finite representation type and the AR quiver is complete.
	StatusFinite Status = iota

	// StatusInfinite means a dimension-vector component reached the
	// threshold: the source quiver is considered representation-infinite
	// and the returned AR quiver is a partial, best-effort result.
	StatusInfinite
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusFinite:
		return "finite"
	case StatusInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of an AR quiver construction.
type Result struct {
	// Graph is the AR quiver. Complete when Status is StatusFinite,
	// partial when StatusInfinite.
	Graph *Graph

	// Status tells whether the construction terminated or hit the
	// representation-infinite threshold.
	Status Status
}

// Option configures the builder.
type Option func(*builder)

// WithThreshold overrides DefaultThreshold. Values below 1 are ignored.
func WithThreshold(n int) Option {
	return func(b *builder) {
		if n >= 1 {
			b.threshold = n
		}
	}
}

// WithLogger attaches a logger for progress reporting. Without it the
// builder is silent.
func WithLogger(l *log.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

type builder struct {
	threshold int
	logger    *log.Logger
}

// Build constructs the AR quiver of q by repeatedly finding almost split
// short exact sequences.
//
// Each vertex seeds an edge from the radical of its projective to the
// projective itself, and its injective joins as a node; the simple
// projectives start a worklist. Every worklist step conjectures the next
// term of an almost split sequence from the successor sums of the current
// dimension vector, discarding infeasible candidates (negative components)
// and aborting with StatusInfinite when a component reaches the threshold.
//
// The quiver must be acyclic; Build validates this and returns
// quiver.ErrCyclic otherwise. Build populates (and therefore freezes) the
// quiver's invariant caches.
func Build(q *quiver.Quiver, opts ...Option) (*Result, error) {
	b := &builder{
		threshold: DefaultThreshold,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("build AR quiver: %w", err)
	}

	projs, err := q.AllProjIndecomp()
	if err != nil {
		return nil, fmt.Errorf("projective indecomposables: %w", err)
	}
	rads, err := q.AllRadIndecomp()
	if err != nil {
		return nil, fmt.Errorf("radicals: %w", err)
	}
	injs, err := q.AllInjIndecomp()
	if err != nil {
		return nil, fmt.Errorf("injective indecomposables: %w", err)
	}

	g := NewGraph()
	var queue []dimvec.Vector
	queued := make(map[string]bool)

	enqueue := func(v dimvec.Vector) {
		queue = append(queue, v)
		queued[v.Key()] = true
	}

	// Seed phase: one almost split candidate per vertex, injectives as
	// isolated nodes, simple projectives onto the worklist.
	for i := range projs {
		g.AddEdge(rads[i], projs[i])
		g.AddNode(injs[i])
		if projs[i].IsSimple() {
			enqueue(projs[i])
		}
	}

	// Radicals of simple projectives seeded the zero vector; it is not a
	// module and must not remain a node.
	g.RemoveNode(q.Zeros())

	injective := make(map[string]bool, len(injs))
	for _, v := range injs {
		injective[v.Key()] = true
	}

	b.logger.Debug("seeded AR quiver", "nodes", g.NodeCount(), "queued", len(queue))

	steps := 0
	for len(queue) > 0 {
		steps++
		if steps%10 == 0 {
			b.logger.Debug("worklist progress", "steps", steps, "pending", len(queue), "nodes", g.NodeCount())
		}

		p := queue[0]
		queue = queue[1:]
		delete(queued, p.Key())

		// A simple injective is a sink of the construction.
		if p.IsSimple() && injective[p.Key()] {
			continue
		}

		succ := g.Successors(p)
		w := dimvec.Zero(len(p))
		for j := range w {
			for _, s := range succ {
				w[j] += s[j]
			}
			w[j] -= p[j]
		}

		if w.AnyNegative() {
			continue
		}
		if w.Max() >= b.threshold {
			b.logger.Warn("representation-infinite type detected",
				"component", w.Max(), "threshold", b.threshold, "steps", steps)
			return &Result{Graph: g, Status: StatusInfinite}, nil
		}

		for _, s := range succ {
			g.AddEdge(s, w)
			if !queued[s.Key()] {
				enqueue(s)
			}
		}
	}

	b.logger.Debug("AR quiver complete", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "steps", steps)
	return &Result{Graph: g, Status: StatusFinite}, nil
}
