// Package quiver implements a quiver (directed multigraph) carrying path
// algebra relations, and derives representation-theoretic invariants from it:
// reduced path counts, projective and injective indecomposable dimension
// vectors, and radicals of projectives.
//
// Vertices are caller-supplied opaque string identifiers. The order in which
// vertices are first added is the fixed vertex ordering: every dimension
// vector produced by this package is indexed by it, and the positional
// invariant caches are aligned with it. To keep cached results valid, the
// quiver freezes on the first full cache population; mutation afterwards
// returns ErrFrozen.
//
// Quiver is a single-owner, single-writer structure and is not safe for
// concurrent use.
package quiver

import (
	"errors"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/quiverlab/quivertool/pkg/rewrite"
)

// Sentinel errors for quiver operations.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier.
	ErrEmptyVertexID = errors.New("vertex ID must not be empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that was
	// never added to the quiver.
	ErrVertexNotFound = errors.New("vertex not found")

	// ErrFrozen indicates a mutation was attempted after an invariant cache
	// was populated. Build the quiver completely before querying caches.
	ErrFrozen = errors.New("quiver is frozen after cache population")

	// ErrCyclic is returned by Validate when the quiver contains a directed
	// cycle. Path enumeration requires an acyclic quiver.
	ErrCyclic = errors.New("quiver contains a cycle")
)

// Path is a walk through the quiver, represented as the sequence of visited
// vertices. Consecutive entries are joined by an edge. Because a path records
// vertices rather than edges, parallel edges between the same vertex pair are
// indistinguishable at the path level; relations share this limitation.
type Path []string

// Key returns a canonical encoding of p, unique per vertex sequence.
func (p Path) Key() string {
	key := ""
	for i, v := range p {
		if i > 0 {
			key += "\x1f"
		}
		key += v
	}
	return key
}

// Edge is a directed arrow of the quiver. The same ordered pair may occur in
// multiple edges (parallel arrows).
type Edge struct {
	From string
	To   string
}

// countCacheSize bounds the reduced-path-count memo. Computing all projective
// and injective indecomposables visits every ordered vertex pair twice, so
// the memo pays for itself on any quiver with more than a handful of vertices.
const countCacheSize = 8192

// Option configures a Quiver at construction time.
type Option func(*Quiver)

// WithCommutative marks the quiver as commutative: all parallel paths between
// two vertices are identified, so reduced path counts collapse to 0 or 1.
func WithCommutative() Option {
	return func(q *Quiver) { q.commutative = true }
}

// Quiver is a directed multigraph with path algebra relations.
// Use New to create one; the zero value is not usable.
type Quiver struct {
	order    []string            // vertex insertion order, fixes dimension indexing
	index    map[string]int      // vertex -> position in order
	outgoing map[string][]string // unique successors, first-seen order
	incoming map[string][]string // unique predecessors, first-seen order
	edges    []Edge              // all arrows, including parallel ones

	rules       *rewrite.Rewriter[string]
	commutative bool
	frozen      bool

	counts *lru.Cache[[2]string, int] // memoized reduced path counts

	proj []dimvecCache // positional caches, nil until populated
	inj  []dimvecCache
	rad  []dimvecCache
}

// dimvecCache is the stored form of a cached dimension vector.
type dimvecCache = []int

// New creates an empty quiver.
func New(opts ...Option) *Quiver {
	q := &Quiver{
		index:    make(map[string]int),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		rules:    rewrite.New[string](),
	}
	for _, opt := range opts {
		opt(q)
	}
	// Size is a positive constant, so construction cannot fail.
	q.counts, _ = lru.New[[2]string, int](countCacheSize)
	return q
}

// Commutative reports whether the quiver was created with WithCommutative.
func (q *Quiver) Commutative() bool { return q.commutative }

// Frozen reports whether the quiver has been frozen by cache population.
func (q *Quiver) Frozen() bool { return q.frozen }

// AddVertex adds a vertex if it is not already present.
// Returns ErrEmptyVertexID for an empty identifier and ErrFrozen after cache
// population.
func (q *Quiver) AddVertex(v string) error {
	if q.frozen {
		return ErrFrozen
	}
	return q.addVertex(v)
}

func (q *Quiver) addVertex(v string) error {
	if v == "" {
		return ErrEmptyVertexID
	}
	if _, ok := q.index[v]; ok {
		return nil
	}
	q.index[v] = len(q.order)
	q.order = append(q.order, v)
	return nil
}

// AddEdge adds a directed arrow u→v, inserting either endpoint if absent.
// Repeated calls with the same pair add parallel arrows. Returns ErrFrozen
// after cache population.
func (q *Quiver) AddEdge(u, v string) error {
	if q.frozen {
		return ErrFrozen
	}
	if err := q.addVertex(u); err != nil {
		return err
	}
	if err := q.addVertex(v); err != nil {
		return err
	}
	q.edges = append(q.edges, Edge{From: u, To: v})
	if !slices.Contains(q.outgoing[u], v) {
		q.outgoing[u] = append(q.outgoing[u], v)
	}
	if !slices.Contains(q.incoming[v], u) {
		q.incoming[v] = append(q.incoming[v], u)
	}
	return nil
}

// AddRelation registers the path rewriting relation pattern → replacement.
// Relations represent simple path algebra relations: the two walks are
// algebraically equal, and path normalization rewrites the pattern into the
// replacement. Registering the same pattern again overwrites its replacement.
//
// The caller must supply a confluent, terminating relation set; the quiver
// does not verify this. Returns ErrFrozen after cache population.
func (q *Quiver) AddRelation(pattern, replacement Path) error {
	if q.frozen {
		return ErrFrozen
	}
	if err := q.rules.AddRule(pattern, replacement); err != nil {
		return fmt.Errorf("relation %v -> %v: %w", pattern, replacement, err)
	}
	return nil
}

// RelationCount returns the number of registered relations.
func (q *Quiver) RelationCount() int { return q.rules.Len() }

// Vertices returns the vertices in the fixed vertex ordering (insertion
// order). This is the component order of every dimension vector derived from
// this quiver. The returned slice is a copy.
func (q *Quiver) Vertices() []string {
	return slices.Clone(q.order)
}

// VertexCount returns the number of vertices.
func (q *Quiver) VertexCount() int { return len(q.order) }

// VertexIndex returns the position of v in the fixed vertex ordering.
func (q *Quiver) VertexIndex(v string) (int, bool) {
	i, ok := q.index[v]
	return i, ok
}

// Contains reports whether v is a vertex of the quiver.
func (q *Quiver) Contains(v string) bool {
	_, ok := q.index[v]
	return ok
}

// Successors returns the distinct direct successors of v in first-seen order.
// Parallel arrows do not repeat a successor. The returned slice is a
// read-only view; do not modify it.
func (q *Quiver) Successors(v string) []string { return q.outgoing[v] }

// Predecessors returns the distinct direct predecessors of v in first-seen
// order. The returned slice is a read-only view; do not modify it.
func (q *Quiver) Predecessors(v string) []string { return q.incoming[v] }

// Edges returns a copy of all arrows in insertion order, including parallel
// arrows.
func (q *Quiver) Edges() []Edge { return slices.Clone(q.edges) }

// EdgeCount returns the number of arrows, counting parallel arrows
// separately.
func (q *Quiver) EdgeCount() int { return len(q.edges) }

// Validate checks that the quiver is acyclic and returns ErrCyclic otherwise.
// Path enumeration and the invariant computations require an acyclic quiver;
// call Validate before querying them on untrusted input.
//
// Cycle detection runs in O(V+E) time using depth-first search with
// white/gray/black coloring.
func (q *Quiver) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(q.order))
	var hasCycle bool

	var dfs func(v string)
	dfs = func(v string) {
		color[v] = gray
		for _, s := range q.outgoing[v] {
			switch color[s] {
			case white:
				dfs(s)
			case gray:
				hasCycle = true
				return
			}
		}
		color[v] = black
	}

	for _, v := range q.order {
		if color[v] == white {
			dfs(v)
			if hasCycle {
				return ErrCyclic
			}
		}
	}
	return nil
}

// freeze makes the quiver immutable. Called on first cache population.
func (q *Quiver) freeze() { q.frozen = true }
