package quiver

import (
	"errors"
	"slices"
	"strconv"
	"testing"
)

// diamond builds the quiver 1→2, 1→3, 2→4, 3→4 with no relations.
func diamond(opts ...Option) *Quiver {
	q := New(opts...)
	q.AddEdge("1", "2")
	q.AddEdge("1", "3")
	q.AddEdge("2", "4")
	q.AddEdge("3", "4")
	return q
}

// commutativeSquares builds the documented six-vertex example: two squares
// glued along 2→5, with relations identifying the parallel square diagonals.
func commutativeSquares() *Quiver {
	q := New()
	q.AddEdge("1", "2")
	q.AddEdge("3", "2")
	q.AddEdge("4", "5")
	q.AddEdge("6", "5")
	q.AddEdge("1", "4")
	q.AddEdge("2", "5")
	q.AddEdge("3", "6")
	q.AddRelation(Path{"1", "2", "5"}, Path{"1", "4", "5"})
	q.AddRelation(Path{"3", "2", "5"}, Path{"3", "6", "5"})
	return q
}

func TestListPaths_SameVertex(t *testing.T) {
	q := diamond()
	paths, err := q.ListPaths("1", "1")
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	if len(paths) != 1 || !slices.Equal(paths[0], Path{"1"}) {
		t.Errorf("ListPaths(1,1) = %v, want [[1]]", paths)
	}
}

func TestListPaths_Diamond(t *testing.T) {
	q := diamond()
	paths, err := q.ListPaths("1", "4")
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("ListPaths(1,4) returned %d paths, want 2: %v", len(paths), paths)
	}
	want := []Path{{"1", "2", "4"}, {"1", "3", "4"}}
	for _, w := range want {
		found := false
		for _, p := range paths {
			if slices.Equal(p, w) {
				found = true
			}
		}
		if !found {
			t.Errorf("ListPaths(1,4) = %v, missing %v", paths, w)
		}
	}
}

func TestListPaths_NoPath(t *testing.T) {
	q := diamond()
	paths, err := q.ListPaths("4", "1")
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("ListPaths(4,1) = %v, want none", paths)
	}
}

func TestListPaths_UnknownVertex(t *testing.T) {
	q := diamond()
	if _, err := q.ListPaths("1", "99"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("ListPaths(1,99) = %v, want ErrVertexNotFound", err)
	}
	if _, err := q.ListPaths("99", "1"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("ListPaths(99,1) = %v, want ErrVertexNotFound", err)
	}
}

func TestListPaths_LongChain(t *testing.T) {
	// A deep linear quiver exercises the explicit-stack enumeration well
	// past typical recursion comfort.
	q := New()
	const n = 5000
	for i := 0; i < n; i++ {
		q.AddEdge(vertexName(i), vertexName(i+1))
	}
	paths, err := q.ListPaths(vertexName(0), vertexName(n))
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("ListPaths over chain returned %d paths, want 1", len(paths))
	}
	if got := len(paths[0]); got != n+1 {
		t.Errorf("chain path length = %d, want %d", got, n+1)
	}
}

func vertexName(i int) string {
	return "v" + strconv.Itoa(i)
}

func TestCountReducedPaths_NoRelationsEqualsRawCount(t *testing.T) {
	q := diamond()
	raw, err := q.ListPaths("1", "4")
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	n, err := q.CountReducedPaths("1", "4")
	if err != nil {
		t.Fatalf("CountReducedPaths: %v", err)
	}
	if n != len(raw) {
		t.Errorf("CountReducedPaths(1,4) = %d, want raw count %d", n, len(raw))
	}
}

func TestCountReducedPaths_RelationsCollapse(t *testing.T) {
	q := commutativeSquares()

	// Both walks 1→2→5 and 1→4→5 normalize to 1→4→5.
	n, err := q.CountReducedPaths("1", "5")
	if err != nil {
		t.Fatalf("CountReducedPaths: %v", err)
	}
	if n != 1 {
		t.Errorf("CountReducedPaths(1,5) = %d, want 1", n)
	}

	reduced, err := q.ListReducedPaths("1", "5")
	if err != nil {
		t.Fatalf("ListReducedPaths: %v", err)
	}
	if len(reduced) != 1 || !slices.Equal(reduced[0], Path{"1", "4", "5"}) {
		t.Errorf("ListReducedPaths(1,5) = %v, want [[1 4 5]]", reduced)
	}
}

func TestCountReducedPaths_CommutativeCollapsesToOne(t *testing.T) {
	q := diamond(WithCommutative())

	n, err := q.CountReducedPaths("1", "4")
	if err != nil {
		t.Fatalf("CountReducedPaths: %v", err)
	}
	if n != 1 {
		t.Errorf("CountReducedPaths(1,4) commutative = %d, want 1", n)
	}

	zero, err := q.CountReducedPaths("4", "1")
	if err != nil {
		t.Fatalf("CountReducedPaths: %v", err)
	}
	if zero != 0 {
		t.Errorf("CountReducedPaths(4,1) commutative = %d, want 0", zero)
	}
}

func TestCountReducedPaths_Memoized(t *testing.T) {
	q := diamond()
	first, err := q.CountReducedPaths("1", "4")
	if err != nil {
		t.Fatalf("CountReducedPaths: %v", err)
	}
	second, err := q.CountReducedPaths("1", "4")
	if err != nil {
		t.Fatalf("CountReducedPaths (memoized): %v", err)
	}
	if first != second {
		t.Errorf("memoized count differs: %d then %d", first, second)
	}
}
