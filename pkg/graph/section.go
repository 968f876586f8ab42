package graph

import (
	"container/heap"
	"math"
)

// Section is the result of a shortest-path query: the ordered station
// path from From to To inclusive and the summed leg length along it.
// Sections are derived, read-only snapshots of the graph they were
// queried from.
type Section struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Path     []string `json:"path"`
	Distance float64  `json:"distance"`
}

// GetSection returns the shortest path between two named stations, or
// nil when either name is unknown or the pair is not connected.
// An unreachable pair is a normal outcome, not an error.
//
// Ties between equal-length paths resolve deterministically: the
// lexicographically smaller predecessor station wins.
func (g *SurveyGraph) GetSection(from, to string) *Section {
	if !g.HasStation(from) || !g.HasStation(to) {
		return nil
	}
	if from == to {
		return &Section{From: from, To: to, Path: []string{from}, Distance: 0}
	}

	dist, prev := g.shortestPaths(from, to)
	if math.IsInf(dist[to], 1) {
		return nil
	}

	return &Section{
		From:     from,
		To:       to,
		Path:     reconstructPath(prev, from, to),
		Distance: dist[to],
	}
}

// shortestPaths runs Dijkstra from source over the whole graph,
// stopping early once target is settled (pass "" to settle everything).
// Returns tentative distances (+Inf for unreached nodes) and the
// predecessor map for path reconstruction.
func (g *SurveyGraph) shortestPaths(source, target string) (map[string]float64, map[string]string) {
	dist := make(map[string]float64, len(g.adjacency))
	for name := range g.adjacency {
		dist[name] = math.Inf(1)
	}
	dist[source] = 0

	prev := make(map[string]string)
	settled := make(map[string]bool)

	pq := &stationQueue{{name: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(stationItem)
		if settled[item.name] {
			continue
		}
		settled[item.name] = true
		if item.name == target {
			break
		}

		for _, e := range g.adjacency[item.name] {
			if settled[e.to] {
				continue
			}
			d := item.dist + e.length
			if d < dist[e.to] || (d == dist[e.to] && item.name < prev[e.to]) {
				dist[e.to] = d
				prev[e.to] = item.name
				heap.Push(pq, stationItem{name: e.to, dist: d})
			}
		}
	}

	return dist, prev
}

// reconstructPath walks the predecessor map back from target to source.
func reconstructPath(prev map[string]string, source, target string) []string {
	var reversed []string
	for cur := target; ; {
		reversed = append(reversed, cur)
		if cur == source {
			break
		}
		cur = prev[cur]
	}
	path := make([]string, len(reversed))
	for i, name := range reversed {
		path[len(path)-1-i] = name
	}
	return path
}

// stationItem is a priority-queue entry; equal distances order by name
// so query results are reproducible run to run.
type stationItem struct {
	name string
	dist float64
}

type stationQueue []stationItem

func (q stationQueue) Len() int { return len(q) }

func (q stationQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].name < q[j].name
}

func (q stationQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stationQueue) Push(x any) { *q = append(*q, x.(stationItem)) }

func (q *stationQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
