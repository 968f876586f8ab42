package stats

import (
	"math"
	"testing"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/graph"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func testCave(t *testing.T) (*model.Cave, model.StationMap, *graph.SurveyGraph) {
	t.Helper()
	cave := &model.Cave{
		Name:  "alpha",
		Start: "A",
		Surveys: []model.Survey{
			{Name: "main", Shots: []model.Shot{
				{From: "A", To: "B", Length: 10, Azimuth: 0, Clino: -30, Type: model.ShotCenter},
				{From: "B", To: "C", Length: 6, Azimuth: 90, Clino: 0, Type: model.ShotCenter},
				{From: "B", Length: 2, Azimuth: 45, Clino: 0, Type: model.ShotSplay},
			}},
			{Name: "side", Shots: []model.Shot{
				{From: "B", To: "D", Length: 4, Azimuth: 180, Clino: 45, Type: model.ShotCenter},
				{From: "D", To: "D1", Length: 1.5, Azimuth: 0, Clino: 0, Type: model.ShotAuxiliary},
			}},
		},
	}
	stations, _ := model.ResolveStations(cave)
	return cave, stations, graph.Build(cave)
}

func TestComputeCounts(t *testing.T) {
	cave, stations, g := testCave(t)

	st, report := Compute(cave, stations, g)
	if !report.Valid {
		t.Fatalf("unexpected report: %v", report.Errors)
	}

	if st.SurveyCount != 2 {
		t.Errorf("expected 2 surveys, got %d", st.SurveyCount)
	}
	if st.LegCount != 3 {
		t.Errorf("expected 3 center legs, got %d", st.LegCount)
	}
	// A, B, C, D, D1; the splay station does not count.
	if st.StationCount != 5 {
		t.Errorf("expected 5 stations, got %d", st.StationCount)
	}
	if !approxEqual(st.SurveyedLengthM, 20, 1e-9) {
		t.Errorf("expected 20 m surveyed, got %f", st.SurveyedLengthM)
	}
}

func TestComputeSurveyBreakdown(t *testing.T) {
	cave, stations, g := testCave(t)

	st, _ := Compute(cave, stations, g)
	if len(st.Surveys) != 2 {
		t.Fatalf("expected 2 breakdowns, got %d", len(st.Surveys))
	}

	main := st.Surveys[0]
	if main.CenterCount != 2 || main.SplayCount != 1 || main.AuxiliaryCount != 0 {
		t.Errorf("main breakdown wrong: %+v", main)
	}
	side := st.Surveys[1]
	if side.CenterCount != 1 || side.AuxiliaryCount != 1 {
		t.Errorf("side breakdown wrong: %+v", side)
	}
}

func TestComputeVerticalExtents(t *testing.T) {
	cave, stations, g := testCave(t)

	st, _ := Compute(cave, stations, g)
	// B is 10*sin(-30deg) = -5 below the entrance; D rises back up
	// 4*sin(45deg) from B.
	if !approxEqual(st.DepthM, 5, 1e-9) {
		t.Errorf("expected depth 5, got %f", st.DepthM)
	}
	wantHeight := 0.0
	if d := -5 + 4*math.Sin(math.Pi/4); d > 0 {
		wantHeight = d
	}
	if !approxEqual(st.HeightM, wantHeight, 1e-9) {
		t.Errorf("expected height %f, got %f", wantHeight, st.HeightM)
	}
	if st.VerticalExtentM < st.DepthM {
		t.Errorf("vertical extent %f cannot be below depth %f", st.VerticalExtentM, st.DepthM)
	}
}

func TestComputeCollapsedLengthCountsOnce(t *testing.T) {
	cave := &model.Cave{
		Name:  "alpha",
		Start: "A",
		Surveys: []model.Survey{{Name: "s", Shots: []model.Shot{
			{From: "A", To: "B", Length: 10, Type: model.ShotCenter},
			{From: "A", To: "B", Length: 8, Type: model.ShotCenter},
		}}},
	}
	stations, _ := model.ResolveStations(cave)

	st, _ := Compute(cave, stations, graph.Build(cave))
	if !approxEqual(st.SurveyedLengthM, 8, 1e-9) {
		t.Errorf("re-measured leg must count once at minimum length, got %f", st.SurveyedLengthM)
	}
}

func TestComputeUnresolvedStartWarns(t *testing.T) {
	cave := &model.Cave{Name: "empty", Start: "A"}

	_, report := Compute(cave, model.StationMap{}, graph.Build(cave))
	if len(report.Warnings) == 0 {
		t.Error("expected a warning for the unresolved start station")
	}
}
