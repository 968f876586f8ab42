package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/graph"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/model"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/scene"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/stats"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/validation"
)

// loadAndValidate loads the project and runs schema validation.
func loadAndValidate(projectPath string) (*model.Project, *validation.Report, error) {
	project, err := model.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading project: %w", err)
	}
	report := validation.ValidateProject(project)
	return project, report, nil
}

// selectCave picks the named cave, or the first one when name is empty.
func selectCave(project *model.Project, name string) (*model.Cave, error) {
	if name == "" {
		if len(project.Caves) == 0 {
			return nil, fmt.Errorf("project has no caves")
		}
		return &project.Caves[0], nil
	}
	cave := project.CaveByName(name)
	if cave == nil {
		return nil, fmt.Errorf("no cave named %q in project", name)
	}
	return cave, nil
}

func runValidate(projectPath string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	// Surface resolution problems too: a schema-valid file can still
	// contain shots disconnected from the start station.
	for i := range project.Caves {
		_, unresolved := model.ResolveStations(&project.Caves[i])
		for _, msg := range unresolved {
			report.AddWarning(validation.Result{
				Level:   validation.LevelSurvey,
				Message: msg,
			})
		}
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runStats(projectPath string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors; fix before computing statistics")
	}

	for i := range project.Caves {
		cave := &project.Caves[i]
		stations, _ := model.ResolveStations(cave)
		g := graph.Build(cave)
		caveStats, statsReport := stats.Compute(cave, stations, g)
		report.Merge(statsReport)
		printCaveStatistics(caveStats)
	}

	if len(report.Warnings) > 0 {
		fmt.Println()
		printValidationReport(report)
	}
	return nil
}

func runSection(projectPath, caveName, from, to string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors")
	}

	cave, err := selectCave(project, caveName)
	if err != nil {
		return err
	}

	stations, _ := model.ResolveStations(cave)
	g := graph.Build(cave)

	section := g.GetSection(from, to)
	if section == nil {
		fmt.Printf("No path found between %s and %s\n", from, to)
		return nil
	}

	segments, err := scene.SectionSegments(section, stations)
	if err != nil {
		return fmt.Errorf("materializing section: %w", err)
	}

	return printJSON(map[string]any{
		"section":  section,
		"segments": segments,
	})
}

func runComponent(projectPath, caveName, start string, terminations []string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors")
	}

	cave, err := selectCave(project, caveName)
	if err != nil {
		return err
	}

	stations, _ := model.ResolveStations(cave)
	g := graph.Build(cave)

	component := g.GetComponent(start, terminations)
	if component == nil {
		fmt.Printf("No termination station reachable from %s\n", start)
		return nil
	}

	segments, err := scene.ComponentSegments(component, stations)
	if err != nil {
		return fmt.Errorf("materializing component: %w", err)
	}

	return printJSON(map[string]any{
		"component": component,
		"segments":  segments,
	})
}

func runScene(projectPath string) error {
	project, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("project has validation errors")
	}

	stations, unresolved := model.ResolveAll(project)
	for _, msg := range unresolved {
		report.AddWarning(validation.Result{
			Level:   validation.LevelSurvey,
			Message: msg,
		})
	}

	caves := make([]*model.Cave, len(project.Caves))
	for i := range project.Caves {
		caves[i] = &project.Caves[i]
	}
	g := graph.Build(caves...)

	sc := scene.Assemble(project, stations, g)
	report.Merge(scene.ValidateScene(sc))

	return printJSON(map[string]any{
		"scene":      sc,
		"validation": report,
	})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
