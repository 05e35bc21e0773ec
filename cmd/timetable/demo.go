package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/russross/classtimetable/internal/config"
	"github.com/russross/classtimetable/internal/logging"
	"github.com/russross/classtimetable/internal/render"
	"github.com/russross/classtimetable/internal/timetable"
)

// newDemoCommand runs the solver against a small built-in sample so the
// binary produces output with nothing but a seed, no request file required.
func newDemoCommand(cfg *config.Config) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "solve a small built-in sample timetable",
		Run: func(cmd *cobra.Command, args []string) {
			logger, err := logging.New(cfg)
			if err != nil {
				log.Fatalf("building logger: %v", err)
			}
			defer logger.Sync()

			runID := uuid.NewString()
			fields := logging.RunFields(runID, seed)

			req := sampleRequest()

			spin := render.NewSpinner("solving demo request")
			spin.Start()
			result, err := timetable.Solve(req, teacherLabel, seed, cfg.Solve.ToSolveOptions())
			spin.Stop()
			if err != nil {
				logger.Error("demo solve failed", append(fields, errorField(err))...)
				log.Fatalf("%v", err)
			}

			logger.Info("demo solve complete", fields...)
			printResult(result)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", cfg.Solve.Seed, "random seed driving slot scoring and tie-breaks")
	return cmd
}

func sampleRequest() timetable.Request {
	return timetable.Request{
		Dimensions: timetable.DefaultDimensions,
		Classes: map[string]map[string]timetable.SubjectDemand{
			"9A": {
				"Math":    {Sessions: 6, Teachers: 1},
				"English": {Sessions: 5, Teachers: 1},
				"Science": {Sessions: 4, Teachers: 2},
				"Art":     {Sessions: 2, Teachers: 1},
			},
			"9B": {
				"Math":    {Sessions: 6, Teachers: 1},
				"English": {Sessions: 5, Teachers: 1},
				"Science": {Sessions: 4, Teachers: 2},
				"Art":     {Sessions: 2, Teachers: 1},
			},
		},
	}
}
