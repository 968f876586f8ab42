// Package stats derives summary statistics from resolved survey data:
// surveyed length, vertical and horizontal extents, shot counts.
package stats

import (
	"math"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/graph"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/validation"
)

// SurveyBreakdown is the per-survey slice of the statistics.
type SurveyBreakdown struct {
	Name           string  `json:"name"`
	ShotCount      int     `json:"shot_count"`
	CenterCount    int     `json:"center_count"`
	SplayCount     int     `json:"splay_count"`
	AuxiliaryCount int     `json:"auxiliary_count"`
	Length         float64 `json:"length_m"`
}

// CaveStatistics holds the computed values for one cave.
type CaveStatistics struct {
	Cave             string  `json:"cave"`
	StationCount     int     `json:"station_count"`
	SurveyCount      int     `json:"survey_count"`
	LegCount         int     `json:"leg_count"`
	SurveyedLengthM  float64 `json:"surveyed_length_m"`
	DepthM           float64 `json:"depth_m"`
	HeightM          float64 `json:"height_m"`
	VerticalExtentM  float64 `json:"vertical_extent_m"`
	HorizontalExtent float64 `json:"horizontal_extent_m"`

	Surveys []SurveyBreakdown `json:"surveys"`
}

// Compute derives statistics for a cave from its resolved stations and
// connectivity graph. Surveyed length sums collapsed center legs, so a
// leg measured twice counts once. Depth and height are relative to the
// start station. Returns statistics and a validation report carrying
// informational summaries and any resolution warnings.
func Compute(cave *model.Cave, stations model.StationMap, g *graph.SurveyGraph) (*CaveStatistics, *validation.Report) {
	report := validation.NewReport()

	st := &CaveStatistics{
		Cave:        cave.Name,
		SurveyCount: len(cave.Surveys),
		Surveys:     make([]SurveyBreakdown, 0, len(cave.Surveys)),
	}

	for _, survey := range cave.Surveys {
		b := SurveyBreakdown{Name: survey.Name, ShotCount: len(survey.Shots)}
		for _, shot := range survey.Shots {
			switch shot.Type {
			case model.ShotSplay:
				b.SplayCount++
			case model.ShotAuxiliary:
				b.AuxiliaryCount++
			default:
				b.CenterCount++
				b.Length += shot.Length
			}
		}
		st.Surveys = append(st.Surveys, b)
	}

	for _, e := range g.Edges() {
		st.SurveyedLengthM += e.Length
		st.LegCount++
	}

	startZ := 0.0
	if start, ok := stations[cave.Start]; ok {
		startZ = start.Position.Z
	} else {
		report.AddWarning(validation.Result{
			Level:   validation.LevelSurvey,
			Message: "start station is not resolved; depth is relative to zero",
			Path:    "start",
		})
	}

	minZ, maxZ := math.Inf(1), math.Inf(-1)
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, station := range stations {
		if station.Type == model.StationSplay {
			continue
		}
		st.StationCount++
		p := station.Position
		minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	if st.StationCount > 0 {
		st.DepthM = startZ - minZ
		st.HeightM = maxZ - startZ
		st.VerticalExtentM = maxZ - minZ
		st.HorizontalExtent = math.Hypot(maxX-minX, maxY-minY)
	}

	return st, report
}
