package model

import (
	"fmt"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/geo"
)

// ResolveStations computes local positions for every station in the
// cave by walking shots outward from the start station. The start is
// anchored at its fixed-point EOV position when one exists, otherwise
// at the origin. Shots are replayed until no new station resolves, so
// survey order within the file does not matter.
//
// Declination is applied here, once, by adding the survey's declination
// to each shot azimuth before polar conversion; the geo primitives stay
// declination-free.
//
// The second return value lists shots that never resolved (neither
// endpoint reachable from the start); these are reported, not fatal.
func ResolveStations(cave *Cave) (StationMap, []string) {
	stations := make(StationMap)

	startPos := geo.Vector3{}
	for _, fp := range cave.FixedPoints {
		if fp.Station == cave.Start {
			startPos = fp.Coordinate.ToVector()
			break
		}
	}
	stations[cave.Start] = Station{
		Name:     cave.Start,
		Type:     StationCenter,
		Position: startPos,
	}

	// Fixpoint iteration: each pass resolves stations adjacent to the
	// already-resolved set. Bounded by the station count.
	for {
		progress := false
		for _, survey := range cave.Surveys {
			for i, shot := range survey.Shots {
				if resolveShot(stations, survey, i, shot) {
					progress = true
				}
			}
		}
		if !progress {
			break
		}
	}

	var unresolved []string
	for _, survey := range cave.Surveys {
		for _, shot := range survey.Shots {
			if _, ok := stations[shot.From]; !ok {
				unresolved = append(unresolved, fmt.Sprintf("%s: shot %s -> %s not connected to start %s", survey.Name, shot.From, shot.To, cave.Start))
			}
		}
	}

	return stations, unresolved
}

// resolveShot tries to resolve one endpoint of a shot from the other.
// Returns true when a new station was added.
func resolveShot(stations StationMap, survey Survey, idx int, shot Shot) bool {
	offset := geo.FromPolar(
		shot.Length,
		geo.Radians(shot.Azimuth+survey.Declination),
		geo.Radians(shot.Clino),
	)

	from, fromOK := stations[shot.From]

	if shot.Type == ShotSplay {
		if !fromOK {
			return false
		}
		// Splays have no named target; synthesize one so the scene
		// layer can still draw the reading.
		name := fmt.Sprintf("%s@splay/%s/%d", shot.From, survey.Name, idx)
		if _, ok := stations[name]; ok {
			return false
		}
		stations[name] = Station{
			Name:     name,
			Type:     StationSplay,
			Position: from.Position.Add(offset),
			Survey:   survey.Name,
		}
		return true
	}

	stype := StationCenter
	if shot.Type == ShotAuxiliary {
		stype = StationAuxiliary
	}

	if fromOK {
		if _, ok := stations[shot.To]; ok {
			return false
		}
		stations[shot.To] = Station{
			Name:     shot.To,
			Type:     stype,
			Position: from.Position.Add(offset),
			Survey:   survey.Name,
		}
		return true
	}

	// Shot recorded toward an already-known station: resolve backwards.
	if to, ok := stations[shot.To]; ok && shot.Type == ShotCenter {
		stations[shot.From] = Station{
			Name:     shot.From,
			Type:     StationCenter,
			Position: to.Position.Sub(offset),
			Survey:   survey.Name,
		}
		return true
	}

	return false
}

// ResolveAll resolves every cave in the project into one merged station
// map. Station names are prefixed with the cave name when the project
// holds more than one cave, so multi-cave systems cannot collide.
func ResolveAll(p *Project) (StationMap, []string) {
	if len(p.Caves) == 1 {
		return ResolveStations(&p.Caves[0])
	}

	merged := make(StationMap)
	var unresolved []string
	for i := range p.Caves {
		cave := &p.Caves[i]
		stations, u := ResolveStations(cave)
		unresolved = append(unresolved, u...)
		for name, st := range stations {
			qualified := cave.Name + "." + name
			st.Name = qualified
			merged[qualified] = st
		}
	}
	return merged, unresolved
}
