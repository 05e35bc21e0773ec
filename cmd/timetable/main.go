package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/russross/classtimetable/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	cmdTimetable := &cobra.Command{
		Use:   "timetable",
		Short: "Weekly class timetable generator",
		Long: "A tool to build per-class weekly timetables from subject demand,\n" +
			"balancing teacher sharing and spreading each subject across the week.",
	}

	cmdTimetable.AddCommand(newSolveCommand(cfg))
	cmdTimetable.AddCommand(newDemoCommand(cfg))

	if err := cmdTimetable.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
