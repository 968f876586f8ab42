package graph

import (
	"reflect"
	"testing"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
)

// buildCave wraps a shot list in a single-survey cave.
func buildCave(t *testing.T, shots ...model.Shot) *model.Cave {
	t.Helper()
	return &model.Cave{
		Name:    "test",
		Start:   "A",
		Surveys: []model.Survey{{Name: "s1", Shots: shots}},
	}
}

func center(from, to string, length float64) model.Shot {
	return model.Shot{From: from, To: to, Length: length, Type: model.ShotCenter}
}

func TestParallelEdgeCollapse(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 10),
		center("A", "B", 7),
	))

	if g.EdgeCount() != 1 {
		t.Fatalf("expected 1 collapsed edge, got %d", g.EdgeCount())
	}
	if l, ok := g.EdgeLength("A", "B"); !ok || l != 7 {
		t.Errorf("expected minimum length 7, got %f (present=%v)", l, ok)
	}
}

func TestParallelEdgeCollapseReversedDirection(t *testing.T) {
	// The reverse reading of the same physical leg collapses too.
	g := Build(buildCave(t,
		center("A", "B", 10),
		center("B", "A", 6),
	))
	if l, _ := g.EdgeLength("B", "A"); l != 6 {
		t.Errorf("expected 6, got %f", l)
	}
}

func TestSplayExclusion(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 5),
		model.Shot{From: "A", To: "Z", Length: 3, Type: model.ShotSplay},
	))

	if g.GetSection("A", "Z") != nil {
		t.Error("splay shot must not make Z reachable from A")
	}
}

func TestAuxiliaryExclusionButStillNode(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 5),
		model.Shot{From: "B", To: "C", Length: 2, Type: model.ShotAuxiliary},
	))

	if !g.HasStation("C") {
		t.Fatal("auxiliary station must still be a graph node")
	}
	if g.GetSection("A", "C") != nil {
		t.Error("auxiliary shot must not connect C")
	}
}

func TestSectionShortestPath(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 5),
		center("B", "C", 3),
		center("A", "C", 10),
	))

	s := g.GetSection("A", "C")
	if s == nil {
		t.Fatal("expected a section")
	}
	if !reflect.DeepEqual(s.Path, []string{"A", "B", "C"}) {
		t.Errorf("expected path A,B,C, got %v", s.Path)
	}
	if s.Distance != 8 {
		t.Errorf("expected distance 8 (not the direct 10 edge), got %f", s.Distance)
	}
}

func TestSectionSymmetry(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 5),
		center("B", "C", 3),
	))

	fwd := g.GetSection("A", "C")
	rev := g.GetSection("C", "A")
	if fwd == nil || rev == nil {
		t.Fatal("expected sections in both directions")
	}
	if fwd.Distance != rev.Distance {
		t.Errorf("distances differ: %f vs %f", fwd.Distance, rev.Distance)
	}
	for i := range fwd.Path {
		if fwd.Path[i] != rev.Path[len(rev.Path)-1-i] {
			t.Errorf("expected reversed path, got %v and %v", fwd.Path, rev.Path)
			break
		}
	}
}

func TestSectionSameStation(t *testing.T) {
	g := Build(buildCave(t, center("A", "B", 5)))

	s := g.GetSection("A", "A")
	if s == nil {
		t.Fatal("expected degenerate section")
	}
	if s.Distance != 0 || !reflect.DeepEqual(s.Path, []string{"A"}) {
		t.Errorf("expected zero-length trivial path, got %+v", s)
	}
}

func TestSectionUnreachable(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 5),
		center("C", "D", 2),
	))

	if s := g.GetSection("A", "D"); s != nil {
		t.Errorf("disjoint components must yield nil, got %+v", s)
	}
}

func TestSectionUnknownStation(t *testing.T) {
	g := Build(buildCave(t, center("A", "B", 5)))

	if g.GetSection("A", "nope") != nil {
		t.Error("unknown target must yield nil")
	}
	if g.GetSection("nope", "A") != nil {
		t.Error("unknown source must yield nil")
	}
}

func TestSectionDeterministicTieBreak(t *testing.T) {
	// Two equal-length routes A-B-D and A-C-D; the lexicographically
	// smaller predecessor (B) must win every time.
	for i := 0; i < 20; i++ {
		g := Build(buildCave(t,
			center("A", "B", 1),
			center("A", "C", 1),
			center("B", "D", 1),
			center("C", "D", 1),
		))
		s := g.GetSection("A", "D")
		if s == nil {
			t.Fatal("expected a section")
		}
		if !reflect.DeepEqual(s.Path, []string{"A", "B", "D"}) {
			t.Fatalf("run %d: expected deterministic path A,B,D, got %v", i, s.Path)
		}
	}
}

func TestComponentReachabilitySubset(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 4),
		center("A", "D", 2),
		center("X", "C", 1),
	))

	c := g.GetComponent("A", []string{"B", "C", "D"})
	if c == nil {
		t.Fatal("expected a component")
	}
	if !reflect.DeepEqual(c.Termination, []string{"B", "D"}) {
		t.Errorf("expected termination {B, D}, got %v", c.Termination)
	}
	// D is nearer than B.
	if c.Distance != 2 || !reflect.DeepEqual(c.Path, []string{"A", "D"}) {
		t.Errorf("expected path to nearest termination D, got %+v", c)
	}
}

func TestComponentStartIsCandidate(t *testing.T) {
	g := Build(buildCave(t, center("A", "B", 4)))

	c := g.GetComponent("A", []string{"A", "B"})
	if c == nil {
		t.Fatal("expected a component")
	}
	if c.Distance != 0 || !reflect.DeepEqual(c.Path, []string{"A"}) {
		t.Errorf("start as candidate must win at distance 0, got %+v", c)
	}
}

func TestComponentNoneReachable(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "B", 4),
		center("C", "D", 1),
	))

	if c := g.GetComponent("A", []string{"C", "D"}); c != nil {
		t.Errorf("expected nil when no candidate is reachable, got %+v", c)
	}
}

func TestComponentEmptyCandidates(t *testing.T) {
	g := Build(buildCave(t, center("A", "B", 4)))

	if g.GetComponent("A", nil) != nil {
		t.Error("empty candidate list is invalid input, expected nil")
	}
}

func TestMultiCaveQualifiedNames(t *testing.T) {
	a := &model.Cave{Name: "alpha", Start: "A", Surveys: []model.Survey{
		{Name: "s1", Shots: []model.Shot{center("A", "B", 5)}},
	}}
	b := &model.Cave{Name: "beta", Start: "A", Surveys: []model.Survey{
		{Name: "s1", Shots: []model.Shot{center("A", "B", 3)}},
	}}

	g := Build(a, b)
	if !g.HasStation("alpha.A") || !g.HasStation("beta.A") {
		t.Fatalf("expected qualified station names, got %v", g.Stations())
	}
	// Same unqualified names must not merge across caves.
	if g.GetSection("alpha.A", "beta.B") != nil {
		t.Error("stations of different caves must not be connected")
	}
}

func TestSelfLoopIgnored(t *testing.T) {
	g := Build(buildCave(t,
		center("A", "A", 3),
		center("A", "B", 5),
	))
	if g.EdgeCount() != 1 {
		t.Errorf("self-loop shot must not create an edge, got %d edges", g.EdgeCount())
	}
}

func TestEdgesSortedAndOnce(t *testing.T) {
	g := Build(buildCave(t,
		center("B", "C", 1),
		center("A", "B", 2),
	))

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edges))
	}
	if edges[0].From != "A" || edges[0].To != "B" || edges[1].From != "B" || edges[1].To != "C" {
		t.Errorf("expected sorted edges, got %v", edges)
	}
}
