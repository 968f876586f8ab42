package scene

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/geo"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/graph"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
)

// Assemble converts a resolved project into a renderable scene: one
// entity per station, one leg per collapsed center-line edge, splay
// readings as bare segments. Output ordering is sorted and therefore
// stable across runs.
func Assemble(p *model.Project, stations model.StationMap, g *graph.SurveyGraph) *Scene {
	s := &Scene{
		Stations: []StationEntity{},
		Legs:     []Leg{},
		Splays:   []Segment{},
	}

	names := make([]string, 0, len(stations))
	for name := range stations {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		st := stations[name]
		if st.Type == model.StationSplay {
			continue
		}
		s.Stations = append(s.Stations, StationEntity{
			Name:     st.Name,
			Type:     string(st.Type),
			Survey:   st.Survey,
			Position: st.Position,
		})
	}

	assembleLegs(g, stations, s)
	assembleSplays(names, stations, s)

	s.Bounds = computeBounds(s.Stations)
	s.Metadata = Metadata{
		Project:      p.Name,
		CaveCount:    len(p.Caves),
		StationCount: len(s.Stations),
		LegCount:     len(s.Legs),
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	return s
}

func assembleLegs(g *graph.SurveyGraph, stations model.StationMap, s *Scene) {
	for _, e := range g.Edges() {
		fromStation, ok := stations[e.From]
		if !ok {
			continue
		}
		toStation, ok := stations[e.To]
		if !ok {
			continue
		}
		s.Legs = append(s.Legs, Leg{
			From:    e.From,
			To:      e.To,
			Segment: Segment{From: fromStation.Position, To: toStation.Position},
			Length:  e.Length,
		})
	}
}

func assembleSplays(names []string, stations model.StationMap, s *Scene) {
	for _, name := range names {
		st := stations[name]
		if st.Type != model.StationSplay {
			continue
		}
		// Splay names encode their origin station as "origin@splay/...".
		origin, _, found := strings.Cut(name, "@splay")
		if !found {
			continue
		}
		from, ok := stations[origin]
		if !ok {
			continue
		}
		s.Splays = append(s.Splays, Segment{From: from.Position, To: st.Position})
	}
}

// computeBounds returns the axis-aligned extent of all station entities.
func computeBounds(entities []StationEntity) BoundingBox {
	if len(entities) == 0 {
		return BoundingBox{}
	}

	min := geo.Vec(math.Inf(1), math.Inf(1), math.Inf(1))
	max := geo.Vec(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, e := range entities {
		min.X = math.Min(min.X, e.Position.X)
		min.Y = math.Min(min.Y, e.Position.Y)
		min.Z = math.Min(min.Z, e.Position.Z)
		max.X = math.Max(max.X, e.Position.X)
		max.Y = math.Max(max.Y, e.Position.Y)
		max.Z = math.Max(max.Z, e.Position.Z)
	}
	return BoundingBox{Min: min, Max: max}
}
