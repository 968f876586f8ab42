package scene

import (
	"fmt"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/graph"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
)

// PathSegments resolves each consecutive station-name pair of a path to
// positions via the station map. A name missing from the map means the
// caller's graph and station map are out of sync; that is a contract
// violation and comes back as an error rather than a partial result.
func PathSegments(path []string, stations model.StationMap) ([]Segment, error) {
	if len(path) < 2 {
		return nil, nil
	}

	segments := make([]Segment, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		from, ok := stations[path[i]]
		if !ok {
			return nil, fmt.Errorf("station %q in path is missing from the station map", path[i])
		}
		to, ok := stations[path[i+1]]
		if !ok {
			return nil, fmt.Errorf("station %q in path is missing from the station map", path[i+1])
		}
		segments = append(segments, Segment{From: from.Position, To: to.Position})
	}
	return segments, nil
}

// SectionSegments materializes a shortest-path query result.
func SectionSegments(section *graph.Section, stations model.StationMap) ([]Segment, error) {
	if section == nil {
		return nil, nil
	}
	return PathSegments(section.Path, stations)
}

// ComponentSegments materializes a component query result.
func ComponentSegments(component *graph.Component, stations model.StationMap) ([]Segment, error) {
	if component == nil {
		return nil, nil
	}
	return PathSegments(component.Path, stations)
}
