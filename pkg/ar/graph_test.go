package ar

import (
	"testing"

	"github.com/quiverlab/quivertool/pkg/dimvec"
)

func TestGraph_AddNodeIdempotent(t *testing.T) {
	g := NewGraph()
	v := dimvec.Vector{1, 0}
	g.AddNode(v)
	g.AddNode(v)
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount() = %d, want 1", got)
	}
}

func TestGraph_AddEdgeInsertsNodes(t *testing.T) {
	g := NewGraph()
	from := dimvec.Vector{0, 1}
	to := dimvec.Vector{1, 1}
	g.AddEdge(from, to)

	if !g.HasNode(from) || !g.HasNode(to) {
		t.Fatalf("AddEdge did not insert endpoint nodes")
	}
	if !g.HasEdge(from, to) {
		t.Errorf("HasEdge(%v, %v) = false", from, to)
	}
	if g.HasEdge(to, from) {
		t.Errorf("HasEdge(%v, %v) = true, want false", to, from)
	}
}

func TestGraph_ParallelEdges(t *testing.T) {
	g := NewGraph()
	from := dimvec.Vector{0, 1}
	to := dimvec.Vector{1, 1}
	g.AddEdge(from, to)
	g.AddEdge(from, to)

	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}
	if got := len(g.Successors(from)); got != 1 {
		t.Errorf("len(Successors) = %d, want 1", got)
	}
}

func TestGraph_RemoveNodeDropsIncidentEdges(t *testing.T) {
	g := NewGraph()
	a := dimvec.Vector{1, 0}
	b := dimvec.Vector{0, 1}
	c := dimvec.Vector{1, 1}
	g.AddEdge(a, b)
	g.AddEdge(b, c)
	g.AddEdge(a, c)

	g.RemoveNode(b)

	if g.HasNode(b) {
		t.Fatalf("node %v still present after RemoveNode", b)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (only %v → %v)", got, a, c)
	}
	if !g.HasEdge(a, c) {
		t.Errorf("unrelated edge %v → %v was removed", a, c)
	}
	if len(g.Successors(a)) != 1 {
		t.Errorf("Successors(%v) = %v, want only %v", a, g.Successors(a), c)
	}
}

func TestGraph_RemoveAbsentNode(t *testing.T) {
	g := NewGraph()
	g.AddNode(dimvec.Vector{1})
	g.RemoveNode(dimvec.Vector{2})
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount() = %d, want 1", got)
	}
}

func TestGraph_VectorLookup(t *testing.T) {
	g := NewGraph()
	v := dimvec.Vector{2, 0, 1}
	g.AddNode(v)

	got, ok := g.Vector(v.Key())
	if !ok {
		t.Fatalf("Vector(%q) not found", v.Key())
	}
	if !got.Equal(v) {
		t.Errorf("Vector(%q) = %v, want %v", v.Key(), got, v)
	}
	if _, ok := g.Vector("(9)"); ok {
		t.Errorf("Vector of absent key reported found")
	}
}

func TestGraph_NodesInsertionOrder(t *testing.T) {
	g := NewGraph()
	first := dimvec.Vector{1, 0}
	second := dimvec.Vector{0, 1}
	g.AddNode(first)
	g.AddNode(second)

	nodes := g.Nodes()
	if len(nodes) != 2 || !nodes[0].Equal(first) || !nodes[1].Equal(second) {
		t.Errorf("Nodes() = %v, want [%v %v]", nodes, first, second)
	}
}
