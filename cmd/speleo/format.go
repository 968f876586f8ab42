package main

import (
	"fmt"

	"github.com/joemeszaros/speleo-studio-sub002/pkg/stats"
	"github.com/joemeszaros/speleo-studio-sub002/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printCaveStatistics(s *stats.CaveStatistics) {
	fmt.Printf("Cave: %s\n", s.Cave)
	fmt.Printf("  Stations:          %d\n", s.StationCount)
	fmt.Printf("  Legs:              %d\n", s.LegCount)
	fmt.Printf("  Surveyed length:   %.1f m\n", s.SurveyedLengthM)
	fmt.Printf("  Depth:             %.1f m\n", s.DepthM)
	fmt.Printf("  Height:            %.1f m\n", s.HeightM)
	fmt.Printf("  Vertical extent:   %.1f m\n", s.VerticalExtentM)
	fmt.Printf("  Horizontal extent: %.1f m\n", s.HorizontalExtent)

	if len(s.Surveys) > 0 {
		fmt.Printf("  Surveys (%d):\n", s.SurveyCount)
		for _, b := range s.Surveys {
			fmt.Printf("    %-20s %3d shots (%d center, %d splay, %d auxiliary), %.1f m\n",
				b.Name, b.ShotCount, b.CenterCount, b.SplayCount, b.AuxiliaryCount, b.Length)
		}
	}
	fmt.Println()
}
