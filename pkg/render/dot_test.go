package render

import (
	"strings"
	"testing"

	"github.com/quiverlab/quivertool/pkg/ar"
	"github.com/quiverlab/quivertool/pkg/quiver"
)

func a2(t *testing.T) *quiver.Quiver {
	t.Helper()
	q := quiver.New()
	if err := q.AddEdge("1", "2"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return q
}

func TestARToDOT(t *testing.T) {
	q := a2(t)
	res, err := ar.Build(q)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	dot := ARToDOT(res, q.Vertices(), Options{})
	for _, want := range []string{
		"digraph AR {",
		`"(0,1)"`,
		`"(1,1)"`,
		`"(1,0)"`,
		`"(0,1)" -> "(1,1)";`,
		`"(1,1)" -> "(1,0)";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "representation-infinite") {
		t.Errorf("finite result should have no title:\n%s", dot)
	}
	if strings.Contains(dot, "legend") {
		t.Errorf("legend rendered without Detailed:\n%s", dot)
	}
}

func TestARToDOT_Detailed(t *testing.T) {
	q := a2(t)
	res, err := ar.Build(q)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	dot := ARToDOT(res, q.Vertices(), Options{Detailed: true})
	if !strings.Contains(dot, "legend") {
		t.Errorf("Detailed should render the legend:\n%s", dot)
	}
	if !strings.Contains(dot, "0: 1") || !strings.Contains(dot, "1: 2") {
		t.Errorf("legend missing vertex entries:\n%s", dot)
	}
}

func TestARToDOT_InfiniteTitle(t *testing.T) {
	q := a2(t)
	res, err := ar.Build(q, ar.WithThreshold(1))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.Status != ar.StatusInfinite {
		t.Fatalf("Status = %v, want infinite", res.Status)
	}

	dot := ARToDOT(res, nil, Options{})
	if !strings.Contains(dot, "representation-infinite") {
		t.Errorf("partial result should be titled:\n%s", dot)
	}
}

func TestQuiverToDOT(t *testing.T) {
	q := quiver.New()
	if err := q.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := q.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	dot := QuiverToDOT(q, Options{})
	if !strings.Contains(dot, "digraph Q {") {
		t.Errorf("DOT missing header:\n%s", dot)
	}
	if got := strings.Count(dot, `"a" -> "b";`); got != 2 {
		t.Errorf("parallel arrow count = %d, want 2", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
}

func TestNormalizeViewBox_NoMatch(t *testing.T) {
	in := []byte("<svg>")
	if got := string(normalizeViewBox(in)); got != "<svg>" {
		t.Errorf("normalizeViewBox(no viewBox) = %q, want unchanged", got)
	}
}
