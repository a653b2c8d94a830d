package quiver

import (
	"errors"
	"testing"

	"github.com/quiverlab/quivertool/pkg/dimvec"
)

// a2 builds the quiver 1→2 (type A2). Its indecomposables are textbook:
// P(1)=(1,1), P(2)=S(2)=(0,1), I(1)=S(1)=(1,0), I(2)=(1,1).
func a2() *Quiver {
	q := New()
	q.AddEdge("1", "2")
	return q
}

func TestProjIndecomp_A2(t *testing.T) {
	q := a2()
	tests := []struct {
		vertex string
		want   dimvec.Vector
	}{
		{"1", dimvec.Vector{1, 1}},
		{"2", dimvec.Vector{0, 1}},
	}
	for _, tt := range tests {
		got, err := q.ProjIndecomp(tt.vertex)
		if err != nil {
			t.Fatalf("ProjIndecomp(%s): %v", tt.vertex, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ProjIndecomp(%s) = %v, want %v", tt.vertex, got, tt.want)
		}
	}
}

func TestInjIndecomp_A2(t *testing.T) {
	q := a2()
	tests := []struct {
		vertex string
		want   dimvec.Vector
	}{
		{"1", dimvec.Vector{1, 0}},
		{"2", dimvec.Vector{1, 1}},
	}
	for _, tt := range tests {
		got, err := q.InjIndecomp(tt.vertex)
		if err != nil {
			t.Fatalf("InjIndecomp(%s): %v", tt.vertex, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("InjIndecomp(%s) = %v, want %v", tt.vertex, got, tt.want)
		}
	}
}

func TestRadicalProj_A2(t *testing.T) {
	q := a2()
	rad1, err := q.RadicalProj("1")
	if err != nil {
		t.Fatalf("RadicalProj(1): %v", err)
	}
	if want := (dimvec.Vector{0, 1}); !rad1.Equal(want) {
		t.Errorf("RadicalProj(1) = %v, want %v", rad1, want)
	}

	rad2, err := q.RadicalProj("2")
	if err != nil {
		t.Fatalf("RadicalProj(2): %v", err)
	}
	if !rad2.IsZero() {
		t.Errorf("RadicalProj(2) = %v, want zero", rad2)
	}
}

func TestProjIndecomp_WithRelations(t *testing.T) {
	q := commutativeSquares()
	got, err := q.ProjIndecomp("1")
	if err != nil {
		t.Fatalf("ProjIndecomp(1): %v", err)
	}
	// Vertex order is 1,2,3,4,5,6. From 1 there is one reduced path to each
	// of 1, 2, 4, 5 (the two walks to 5 are identified by the relation).
	want := dimvec.Vector{1, 1, 0, 1, 1, 0}
	if !got.Equal(want) {
		t.Errorf("ProjIndecomp(1) = %v, want %v", got, want)
	}
}

func TestAllCaches_RoundTripIdentical(t *testing.T) {
	q := commutativeSquares()

	first, err := q.AllProjIndecomp()
	if err != nil {
		t.Fatalf("AllProjIndecomp: %v", err)
	}
	second, err := q.AllProjIndecomp()
	if err != nil {
		t.Fatalf("AllProjIndecomp (cached): %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("cache length changed: %d then %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("cached vector %d changed: %v then %v", i, first[i], second[i])
		}
	}
}

func TestAllCaches_ReturnedVectorsAreCopies(t *testing.T) {
	q := a2()
	first, err := q.AllProjIndecomp()
	if err != nil {
		t.Fatalf("AllProjIndecomp: %v", err)
	}
	first[0][0] = 99

	again, err := q.AllProjIndecomp()
	if err != nil {
		t.Fatalf("AllProjIndecomp (cached): %v", err)
	}
	if want := (dimvec.Vector{1, 1}); !again[0].Equal(want) {
		t.Errorf("cache corrupted through returned slice: %v, want %v", again[0], want)
	}
}

func TestAllRadIndecomp_AlignedWithOrder(t *testing.T) {
	q := commutativeSquares()
	rads, err := q.AllRadIndecomp()
	if err != nil {
		t.Fatalf("AllRadIndecomp: %v", err)
	}
	for i, v := range q.Vertices() {
		want, err := q.RadicalProj(v)
		if err != nil {
			t.Fatalf("RadicalProj(%s): %v", v, err)
		}
		if !rads[i].Equal(want) {
			t.Errorf("AllRadIndecomp[%d] = %v, want %v for vertex %s", i, rads[i], want, v)
		}
	}
}

func TestIndecomp_UnknownVertex(t *testing.T) {
	q := a2()
	if _, err := q.ProjIndecomp("x"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("ProjIndecomp(x) = %v, want ErrVertexNotFound", err)
	}
	if _, err := q.InjIndecomp("x"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("InjIndecomp(x) = %v, want ErrVertexNotFound", err)
	}
	if _, err := q.RadicalProj("x"); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("RadicalProj(x) = %v, want ErrVertexNotFound", err)
	}
}

func TestZeros(t *testing.T) {
	q := a2()
	z := q.Zeros()
	if len(z) != 2 || !z.IsZero() {
		t.Errorf("Zeros() = %v, want (0,0)", z)
	}
}
