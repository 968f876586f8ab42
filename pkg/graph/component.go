package graph

import (
	"math"
	"sort"
)

// Component is the result of a reachable-boundary query: which of the
// candidate termination stations connect to Start, and the shortest
// path from Start to the nearest of them. Like Section, it is a
// read-only snapshot referencing stations by name only.
type Component struct {
	Start       string   `json:"start"`
	Termination []string `json:"termination"`
	Path        []string `json:"path"`
	Distance    float64  `json:"distance"`
}

// GetComponent finds which termination candidates are reachable from
// start and the shortest path to the nearest one. Returns nil when the
// start station is unknown, the candidate list is empty, or no
// candidate is reachable. Unknown candidate names are simply not
// reached. The reported Termination set is sorted.
//
// The start station may itself be a candidate; it is then trivially the
// nearest termination at distance zero.
func (g *SurveyGraph) GetComponent(start string, candidates []string) *Component {
	if !g.HasStation(start) || len(candidates) == 0 {
		return nil
	}

	// Full shortest-path tree: no early exit, every candidate's
	// reachability has to be decided.
	dist, prev := g.shortestPaths(start, "")

	var reached []string
	seen := make(map[string]bool, len(candidates))
	nearest := ""
	nearestDist := math.Inf(1)
	for _, c := range candidates {
		d, ok := dist[c]
		if !ok || math.IsInf(d, 1) || seen[c] {
			continue
		}
		seen[c] = true
		reached = append(reached, c)
		if d < nearestDist || (d == nearestDist && c < nearest) {
			nearest = c
			nearestDist = d
		}
	}
	if len(reached) == 0 {
		return nil
	}
	sort.Strings(reached)

	return &Component{
		Start:       start,
		Termination: reached,
		Path:        reconstructPath(prev, start, nearest),
		Distance:    nearestDist,
	}
}
