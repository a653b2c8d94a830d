// Package quiverio reads quiver definitions and serializes AR quiver
// results.
//
// Quiver definitions are TOML files:
//
//	commutative = false
//	vertices = ["1", "2"]        # optional; edges insert endpoints
//	edges = [["1", "2"]]
//
//	[[relation]]
//	pattern = ["1", "2", "5"]
//	replacement = ["1", "4", "5"]
//
// The order of the vertices array followed by edge insertion order fixes the
// vertex ordering used by all dimension vectors, so definition files are
// reproducible inputs.
//
// AR results round-trip through a JSON format with nodes sorted by ID for
// deterministic output.
package quiverio

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/quiverlab/quivertool/pkg/errors"
	"github.com/quiverlab/quivertool/pkg/quiver"
)

// Relation is a path rewriting relation in a quiver definition.
type Relation struct {
	Pattern     []string `toml:"pattern"`
	Replacement []string `toml:"replacement"`
}

// Definition is the TOML form of a quiver.
type Definition struct {
	Commutative bool       `toml:"commutative"`
	Vertices    []string   `toml:"vertices"`
	Edges       [][]string `toml:"edges"`
	Relations   []Relation `toml:"relation"`
}

// ReadDefinitionFile reads and parses a quiver definition from path.
func ReadDefinitionFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "quiver definition %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseDefinition(data)
}

// ParseDefinition parses a TOML quiver definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse quiver definition")
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	for _, v := range d.Vertices {
		if err := errors.ValidateVertexID(v); err != nil {
			return err
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return errors.New(errors.ErrCodeInvalidQuiver, "edge %d has %d endpoints, want 2", i, len(e))
		}
		for _, v := range e {
			if err := errors.ValidateVertexID(v); err != nil {
				return err
			}
		}
	}
	for i, r := range d.Relations {
		if len(r.Pattern) == 0 || len(r.Replacement) == 0 {
			return errors.New(errors.ErrCodeInvalidRelation, "relation %d has an empty pattern or replacement", i)
		}
		for _, v := range append(append([]string{}, r.Pattern...), r.Replacement...) {
			if err := errors.ValidateVertexID(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Build constructs the quiver described by the definition.
func (d *Definition) Build() (*quiver.Quiver, error) {
	var opts []quiver.Option
	if d.Commutative {
		opts = append(opts, quiver.WithCommutative())
	}
	q := quiver.New(opts...)

	for _, v := range d.Vertices {
		if err := q.AddVertex(v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidQuiver, err, "vertex %q", v)
		}
	}
	for _, e := range d.Edges {
		if err := q.AddEdge(e[0], e[1]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidQuiver, err, "edge %q -> %q", e[0], e[1])
		}
	}
	for _, r := range d.Relations {
		if err := q.AddRelation(quiver.Path(r.Pattern), quiver.Path(r.Replacement)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRelation, err, "relation %v -> %v", r.Pattern, r.Replacement)
		}
	}
	return q, nil
}
