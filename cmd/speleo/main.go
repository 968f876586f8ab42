package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joemeszaros/speleo-studio-sub002/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "speleo",
		Short: "Cave survey graph and geometry engine",
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(sectionCmd())
	rootCmd.AddCommand(componentCmd())
	rootCmd.AddCommand(sceneCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a survey project without building the graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [project-path]",
		Short: "Compute and display cave statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func sectionCmd() *cobra.Command {
	var cave string

	cmd := &cobra.Command{
		Use:   "section [project-path] [from] [to]",
		Short: "Find the shortest path between two stations",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSection(args[0], cave, args[1], args[2])
		},
	}

	cmd.Flags().StringVarP(&cave, "cave", "c", "", "cave name (defaults to the first cave)")
	return cmd
}

func componentCmd() *cobra.Command {
	var cave string

	cmd := &cobra.Command{
		Use:   "component [project-path] [start] [termination...]",
		Short: "Find the reachable boundary of a cave branch",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runComponent(args[0], cave, args[1], args[2:])
		},
	}

	cmd.Flags().StringVarP(&cave, "cave", "c", "", "cave name (defaults to the first cave)")
	return cmd
}

func sceneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scene [project-path]",
		Short: "Resolve stations and emit the full 3D scene as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScene(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local HTTP API over a survey project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
