// Package graph builds the station connectivity graph of a cave system
// and answers shortest-path (section) and reachable-boundary
// (component) queries over it.
//
// A graph is a pure function of its input shot set: it has no mutation
// methods, and callers rebuild it whenever shots or stations change.
// Built graphs are safe for concurrent reads.
package graph

import (
	"sort"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
)

// edge is one undirected adjacency entry.
type edge struct {
	to     string
	length float64
}

// SurveyGraph is an undirected weighted graph of survey stations.
// Nodes are station names; edge weights are center-shot lengths.
type SurveyGraph struct {
	adjacency map[string][]edge
}

// Build constructs the graph from one or more caves. Only center shots
// contribute edges; splay and auxiliary readings never connect
// stations. Parallel shots between the same station pair collapse to
// the minimum observed length, so redundant re-measurements of a leg
// cannot bias shortest paths toward the longer reading.
//
// With more than one cave, station names are qualified as
// "cave.station", matching model.ResolveAll.
func Build(caves ...*model.Cave) *SurveyGraph {
	multi := len(caves) > 1

	// Collapse parallel edges on a normalized pair key first.
	type pair struct{ a, b string }
	minLength := make(map[pair]float64)

	qualify := func(cave *model.Cave, station string) string {
		if multi {
			return cave.Name + "." + station
		}
		return station
	}

	for _, cave := range caves {
		for _, shot := range cave.CenterShots() {
			a := qualify(cave, shot.From)
			b := qualify(cave, shot.To)
			if a == b {
				continue
			}
			if b < a {
				a, b = b, a
			}
			key := pair{a, b}
			if l, ok := minLength[key]; !ok || shot.Length < l {
				minLength[key] = shot.Length
			}
		}
	}

	g := &SurveyGraph{adjacency: make(map[string][]edge)}
	for key, length := range minLength {
		g.adjacency[key.a] = append(g.adjacency[key.a], edge{to: key.b, length: length})
		g.adjacency[key.b] = append(g.adjacency[key.b], edge{to: key.a, length: length})
	}

	// Stations touched only by splay/auxiliary shots are still nodes;
	// queries against them report unreachable rather than unknown.
	for _, cave := range caves {
		for _, survey := range cave.Surveys {
			for _, shot := range survey.Shots {
				if shot.Type == model.ShotSplay {
					continue
				}
				for _, name := range []string{shot.From, shot.To} {
					q := qualify(cave, name)
					if _, ok := g.adjacency[q]; !ok {
						g.adjacency[q] = nil
					}
				}
			}
		}
	}

	return g
}

// HasStation reports whether the named station is a node of the graph.
func (g *SurveyGraph) HasStation(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// Stations returns all node names in sorted order.
func (g *SurveyGraph) Stations() []string {
	names := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EdgeCount returns the number of undirected edges.
func (g *SurveyGraph) EdgeCount() int {
	n := 0
	for _, edges := range g.adjacency {
		n += len(edges)
	}
	return n / 2
}

// Edge is an undirected collapsed edge, reported with From < To.
type Edge struct {
	From   string
	To     string
	Length float64
}

// Edges returns every collapsed edge sorted by (From, To), each pair
// reported once with From < To.
func (g *SurveyGraph) Edges() []Edge {
	var edges []Edge
	for from, adj := range g.adjacency {
		for _, e := range adj {
			if from < e.to {
				edges = append(edges, Edge{From: from, To: e.to, Length: e.length})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// EdgeLength returns the collapsed length of the edge between two
// stations, or false when they are not directly connected.
func (g *SurveyGraph) EdgeLength(a, b string) (float64, bool) {
	for _, e := range g.adjacency[a] {
		if e.to == b {
			return e.length, true
		}
	}
	return 0, false
}
