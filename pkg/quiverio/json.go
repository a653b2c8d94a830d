package quiverio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/quiverlab/quivertool/pkg/ar"
	"github.com/quiverlab/quivertool/pkg/dimvec"
	"github.com/quiverlab/quivertool/pkg/errors"
)

// ARQuiver is the canonical serialization format for AR quiver results.
// Nodes are sorted by ID so that export → re-import → export is stable.
type ARQuiver struct {
	Status string   `json:"status"`
	Nodes  []ARNode `json:"nodes"`
	Edges  []AREdge `json:"edges"`
}

// ARNode is a serialized AR quiver node: a dimension vector and its
// canonical key.
type ARNode struct {
	ID  string `json:"id"`
	Dim []int  `json:"dim"`
}

// AREdge is a serialized irreducible morphism between two node IDs.
type AREdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FromResult converts an AR build result to its serialization form.
func FromResult(res *ar.Result) ARQuiver {
	out := ARQuiver{Status: res.Status.String()}
	for _, v := range res.Graph.Nodes() {
		out.Nodes = append(out.Nodes, ARNode{ID: v.Key(), Dim: v})
	}
	slices.SortFunc(out.Nodes, func(a, b ARNode) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	for _, e := range res.Graph.Edges() {
		out.Edges = append(out.Edges, AREdge{From: e.From, To: e.To})
	}
	return out
}

// ToResult reconstructs an AR build result from its serialization form.
func ToResult(data ARQuiver) (*ar.Result, error) {
	var status ar.Status
	switch data.Status {
	case ar.StatusFinite.String():
		status = ar.StatusFinite
	case ar.StatusInfinite.String():
		status = ar.StatusInfinite
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown status %q", data.Status)
	}

	g := ar.NewGraph()
	byID := make(map[string]dimvec.Vector, len(data.Nodes))
	for _, n := range data.Nodes {
		v := dimvec.Vector(n.Dim)
		if v.Key() != n.ID {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node ID %q does not match vector %v", n.ID, v)
		}
		byID[n.ID] = v
		g.AddNode(v)
	}
	for _, e := range data.Edges {
		from, ok := byID[e.From]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "edge references unknown node %q", e.From)
		}
		to, ok := byID[e.To]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "edge references unknown node %q", e.To)
		}
		g.AddEdge(from, to)
	}
	return &ar.Result{Graph: g, Status: status}, nil
}

// MarshalResult converts an AR build result to JSON bytes.
func MarshalResult(res *ar.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteResult(res, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteResult writes an AR build result as JSON to an io.Writer.
func WriteResult(res *ar.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromResult(res)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteResultFile writes an AR build result to a JSON file.
// The file is created with 0644 permissions.
func WriteResultFile(res *ar.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(res, f)
}

// ReadResult decodes a JSON AR quiver from an io.Reader.
func ReadResult(r io.Reader) (*ar.Result, error) {
	var data ARQuiver
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode AR quiver")
	}
	return ToResult(data)
}
