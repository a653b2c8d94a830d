// Package dimvec provides dimension vectors: fixed-length integer tuples
// indexed by a quiver's vertex ordering.
//
// A dimension vector records, per vertex, the multiplicity of that vertex's
// simple module in a given module. The component order is the vertex insertion
// order of the quiver the vector was computed from, so vectors from different
// quivers (or from the same quiver before and after mutation) are not
// comparable.
package dimvec

import (
	"fmt"
	"slices"
	"strings"
)

// Vector is a dimension vector. The zero-length vector is valid and denotes
// the zero module of an empty quiver.
type Vector []int

// Zero returns the zero vector of length n.
func Zero(n int) Vector {
	return make(Vector, n)
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Equal reports whether v and w have the same length and components.
func (v Vector) Equal(w Vector) bool {
	return slices.Equal(v, w)
}

// IsZero reports whether every component of v is zero.
func (v Vector) IsZero() bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// IsSimple reports whether v describes a simple module: exactly one component
// is non-zero and that component equals 1.
func (v Vector) IsSimple() bool {
	ones, nonzero := 0, 0
	for _, c := range v {
		if c != 0 {
			nonzero++
		}
		if c == 1 {
			ones++
		}
	}
	return nonzero == 1 && ones == 1
}

// AnyNegative reports whether any component of v is negative.
func (v Vector) AnyNegative() bool {
	for _, c := range v {
		if c < 0 {
			return true
		}
	}
	return false
}

// Max returns the largest component of v, or 0 for an empty vector.
func (v Vector) Max() int {
	max := 0
	for i, c := range v {
		if i == 0 || c > max {
			max = c
		}
	}
	return max
}

// Sum returns the total dimension (component sum) of v.
func (v Vector) Sum() int {
	total := 0
	for _, c := range v {
		total += c
	}
	return total
}

// Key returns the canonical string encoding of v, e.g. "(1,0,2)".
// Keys are unique per vector value and are used as graph node identifiers.
func (v Vector) Key() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", c)
	}
	b.WriteByte(')')
	return b.String()
}

// String returns the same encoding as Key.
func (v Vector) String() string { return v.Key() }
