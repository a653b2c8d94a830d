package quiver

import (
	"fmt"

	"github.com/quiverlab/quivertool/pkg/dimvec"
)

// ProjIndecomp computes the dimension vector of the projective indecomposable
// module at v: component w counts the reduced paths from v to w, over the
// fixed vertex ordering. If the full projective cache has been populated the
// cached value is returned.
//
// Returns ErrVertexNotFound for an unknown vertex.
func (q *Quiver) ProjIndecomp(v string) (dimvec.Vector, error) {
	i, ok := q.index[v]
	if !ok {
		return nil, fmt.Errorf("projective indecomposable of %q: %w", v, ErrVertexNotFound)
	}
	if q.proj != nil {
		return dimvec.Vector(q.proj[i]).Clone(), nil
	}
	return q.computeProj(v)
}

func (q *Quiver) computeProj(v string) (dimvec.Vector, error) {
	vec := dimvec.Zero(len(q.order))
	for j, w := range q.order {
		n, err := q.CountReducedPaths(v, w)
		if err != nil {
			return nil, err
		}
		vec[j] = n
	}
	return vec, nil
}

// InjIndecomp computes the dimension vector of the injective indecomposable
// module at v: component w counts the reduced paths from w to v. If the full
// injective cache has been populated the cached value is returned.
func (q *Quiver) InjIndecomp(v string) (dimvec.Vector, error) {
	i, ok := q.index[v]
	if !ok {
		return nil, fmt.Errorf("injective indecomposable of %q: %w", v, ErrVertexNotFound)
	}
	if q.inj != nil {
		return dimvec.Vector(q.inj[i]).Clone(), nil
	}
	return q.computeInj(v)
}

func (q *Quiver) computeInj(v string) (dimvec.Vector, error) {
	vec := dimvec.Zero(len(q.order))
	for j, w := range q.order {
		n, err := q.CountReducedPaths(w, v)
		if err != nil {
			return nil, err
		}
		vec[j] = n
	}
	return vec, nil
}

// RadicalProj computes the radical of the projective indecomposable at v:
// the projective dimension vector with the v-th component zeroed, removing
// the top simple summand. If the full radical cache has been populated the
// cached value is returned.
func (q *Quiver) RadicalProj(v string) (dimvec.Vector, error) {
	i, ok := q.index[v]
	if !ok {
		return nil, fmt.Errorf("radical of projective at %q: %w", v, ErrVertexNotFound)
	}
	if q.rad != nil {
		return dimvec.Vector(q.rad[i]).Clone(), nil
	}
	proj, err := q.ProjIndecomp(v)
	if err != nil {
		return nil, err
	}
	proj[i] = 0
	return proj, nil
}

// AllProjIndecomp computes and caches the projective indecomposables of all
// vertices, aligned with the fixed vertex ordering. The first call freezes
// the quiver; later calls return the cached vectors without recomputation.
func (q *Quiver) AllProjIndecomp() ([]dimvec.Vector, error) {
	if q.proj == nil {
		cache := make([]dimvecCache, len(q.order))
		for i, v := range q.order {
			vec, err := q.computeProj(v)
			if err != nil {
				return nil, err
			}
			cache[i] = vec
		}
		q.proj = cache
		q.freeze()
	}
	return q.cloneCache(q.proj), nil
}

// AllInjIndecomp computes and caches the injective indecomposables of all
// vertices. The first call freezes the quiver.
func (q *Quiver) AllInjIndecomp() ([]dimvec.Vector, error) {
	if q.inj == nil {
		cache := make([]dimvecCache, len(q.order))
		for i, v := range q.order {
			vec, err := q.computeInj(v)
			if err != nil {
				return nil, err
			}
			cache[i] = vec
		}
		q.inj = cache
		q.freeze()
	}
	return q.cloneCache(q.inj), nil
}

// AllRadIndecomp computes and caches the radicals of all projective
// indecomposables. The first call freezes the quiver.
func (q *Quiver) AllRadIndecomp() ([]dimvec.Vector, error) {
	if q.rad == nil {
		cache := make([]dimvecCache, len(q.order))
		for i, v := range q.order {
			vec, err := q.RadicalProj(v)
			if err != nil {
				return nil, err
			}
			cache[i] = vec
		}
		q.rad = cache
		q.freeze()
	}
	return q.cloneCache(q.rad), nil
}

// Zeros returns the zero dimension vector over the current vertex set.
func (q *Quiver) Zeros() dimvec.Vector {
	return dimvec.Zero(len(q.order))
}

// cloneCache deep-copies a positional cache so callers cannot corrupt it.
func (q *Quiver) cloneCache(cache []dimvecCache) []dimvec.Vector {
	out := make([]dimvec.Vector, len(cache))
	for i, vec := range cache {
		out[i] = dimvec.Vector(vec).Clone()
	}
	return out
}
