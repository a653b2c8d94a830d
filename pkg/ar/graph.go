// Package ar constructs Auslander-Reiten quivers.
//
// The AR quiver of a representation-finite quiver has one node per
// indecomposable module (identified by its dimension vector) and one edge per
// irreducible morphism between them. Build discovers the nodes by repeatedly
// completing almost split sequences, starting from the simple projectives.
package ar

import (
	"slices"

	"github.com/quiverlab/quivertool/pkg/dimvec"
)

// Edge is a directed edge of the AR quiver, denoting an irreducible morphism.
// Endpoints are dimension-vector keys (see dimvec.Vector.Key); look the
// vectors up with Graph.Vector.
type Edge struct {
	From string
	To   string
}

// Graph is a multigraph whose nodes are dimension vectors. It is built
// incrementally by the Builder and returned as a freestanding result with no
// reference back to the source quiver.
//
// Graph is not safe for concurrent use.
type Graph struct {
	nodes    map[string]dimvec.Vector
	order    []string            // node keys in insertion order
	edges    []Edge              // all edges, parallel edges permitted
	outgoing map[string][]string // unique successor keys, first-seen order
}

// NewGraph creates an empty AR graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]dimvec.Vector),
		outgoing: make(map[string][]string),
	}
}

// AddNode inserts v as a node if not already present.
func (g *Graph) AddNode(v dimvec.Vector) {
	key := v.Key()
	if _, ok := g.nodes[key]; ok {
		return
	}
	g.nodes[key] = v.Clone()
	g.order = append(g.order, key)
}

// AddEdge inserts a directed edge from→to, adding either endpoint as a node
// if absent. Repeated calls add parallel edges.
func (g *Graph) AddEdge(from, to dimvec.Vector) {
	g.AddNode(from)
	g.AddNode(to)
	fk, tk := from.Key(), to.Key()
	g.edges = append(g.edges, Edge{From: fk, To: tk})
	if !slices.Contains(g.outgoing[fk], tk) {
		g.outgoing[fk] = append(g.outgoing[fk], tk)
	}
}

// RemoveNode deletes v and every edge incident to it. Removing an absent
// node is a no-op.
func (g *Graph) RemoveNode(v dimvec.Vector) {
	key := v.Key()
	if _, ok := g.nodes[key]; !ok {
		return
	}
	delete(g.nodes, key)
	g.order = slices.DeleteFunc(g.order, func(k string) bool { return k == key })
	g.edges = slices.DeleteFunc(g.edges, func(e Edge) bool { return e.From == key || e.To == key })
	delete(g.outgoing, key)
	for k, succ := range g.outgoing {
		g.outgoing[k] = slices.DeleteFunc(succ, func(s string) bool { return s == key })
	}
}

// HasNode reports whether v is a node of the graph.
func (g *Graph) HasNode(v dimvec.Vector) bool {
	_, ok := g.nodes[v.Key()]
	return ok
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to dimvec.Vector) bool {
	return slices.Contains(g.outgoing[from.Key()], to.Key())
}

// Vector returns the dimension vector stored under the given node key.
func (g *Graph) Vector(key string) (dimvec.Vector, bool) {
	v, ok := g.nodes[key]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// Nodes returns the node vectors in insertion order.
func (g *Graph) Nodes() []dimvec.Vector {
	out := make([]dimvec.Vector, len(g.order))
	for i, key := range g.order {
		out[i] = g.nodes[key].Clone()
	}
	return out
}

// Edges returns a copy of all edges in insertion order, including parallel
// edges.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Successors returns the distinct successors of v in first-seen order.
func (g *Graph) Successors(v dimvec.Vector) []dimvec.Vector {
	keys := g.outgoing[v.Key()]
	out := make([]dimvec.Vector, len(keys))
	for i, key := range keys {
		out[i] = g.nodes[key].Clone()
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *Graph) EdgeCount() int { return len(g.edges) }
