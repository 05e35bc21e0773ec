package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/russross/classtimetable/internal/config"
	"github.com/russross/classtimetable/internal/logging"
	"github.com/russross/classtimetable/internal/render"
	"github.com/russross/classtimetable/internal/requestio"
	"github.com/russross/classtimetable/internal/timetable"
)

func newSolveCommand(cfg *config.Config) *cobra.Command {
	var (
		inFile                    string
		outFile                   string
		format                    string
		seed                      int64
		maxAttempts               int
		retryMaxAttempts          int
		distributionGateThreshold int
		optimizerSweeps           int
		evictionMultiplier        int
		maxEvictions              int
		quiet                     bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "build a timetable from a request file",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				log.Fatalf("unknown option: %v", args)
			}
			if inFile == "" {
				log.Fatalf("--in is required")
			}
			switch format {
			case "text", "json", "yaml":
			default:
				log.Fatalf("--format must be one of text, json, yaml (got %q)", format)
			}

			logger, err := logging.New(cfg)
			if err != nil {
				log.Fatalf("building logger: %v", err)
			}
			defer logger.Sync()

			runID := uuid.NewString()
			fields := logging.RunFields(runID, seed)

			req, err := requestio.Load(inFile)
			if err != nil {
				logger.Error("loading request", append(fields, errorField(err))...)
				log.Fatalf("%v", err)
			}
			if req.Dimensions.Days <= 0 {
				req.Dimensions.Days = cfg.Grid.Days
			}
			if req.Dimensions.Periods <= 0 {
				req.Dimensions.Periods = cfg.Grid.Periods
			}

			opts := timetable.SolveOptions{
				MaxAttempts:               maxAttempts,
				RetryMaxAttempts:          retryMaxAttempts,
				DistributionGateThreshold: distributionGateThreshold,
				OptimizerSweeps:           optimizerSweeps,
				EvictionMultiplier:        evictionMultiplier,
				MaxEvictions:              maxEvictions,
			}

			spin := render.NewSpinner("solving")
			if !quiet {
				spin.Start()
			}
			result, err := timetable.Solve(req, teacherLabel, seed, opts)
			if !quiet {
				spin.Stop()
			}
			if err != nil {
				logger.Error("solve failed", append(fields, errorField(err))...)
				log.Fatalf("%v", err)
			}

			logger.Info("solve complete", fields...)

			if format == "text" {
				if !quiet {
					printResult(result)
				}
				return
			}

			out := os.Stdout
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					logger.Error("opening --out", append(fields, errorField(err))...)
					log.Fatalf("%v", err)
				}
				defer f.Close()
				out = f
			}
			if err := requestio.WriteResult(out, result, format); err != nil {
				logger.Error("writing result", append(fields, errorField(err))...)
				log.Fatalf("%v", err)
			}
		},
	}

	defaults := cfg.Solve
	cmd.Flags().StringVar(&inFile, "in", "", "request file (.yaml or .json)")
	cmd.Flags().StringVar(&outFile, "out", "", "file to write the result to (default stdout); ignored when --format=text")
	cmd.Flags().StringVar(&format, "format", "text", "result output format: text, json, or yaml")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "random seed driving slot scoring and tie-breaks")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", defaults.MaxAttempts, "candidate slots examined per placement before backing off")
	cmd.Flags().IntVar(&retryMaxAttempts, "retry-max-attempts", defaults.RetryMaxAttempts, "candidate slots examined per placement once the conflict resolver is active")
	cmd.Flags().IntVar(&distributionGateThreshold, "distribution-gate-threshold", defaults.DistributionGateThreshold, "sessions-remaining cutoff below which a poorly spread slot is refused")
	cmd.Flags().IntVar(&optimizerSweeps, "optimizer-sweeps", defaults.OptimizerSweeps, "hill-climbing sweeps the distribution optimizer may run")
	cmd.Flags().IntVar(&evictionMultiplier, "eviction-multiplier", defaults.EvictionMultiplier, "multiplier on failed-pair count bounding conflict-resolver evictions")
	cmd.Flags().IntVar(&maxEvictions, "max-evictions", defaults.MaxEvictions, "hard cap on conflict-resolver evictions")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress spinner and table output")

	return cmd
}

// teacherLabel is the default human-readable teacher name: subject plus the
// one-based teacher slot index within that subject's pool.
func teacherLabel(class, subject string, day, period int, teacherIndex int) string {
	return fmt.Sprintf("%s-T%d", subject, teacherIndex+1)
}

func printResult(result timetable.Result) {
	palette := render.NewPalette(result)
	classNames := make([]string, 0, len(result.Classes))
	for name := range result.Classes {
		classNames = append(classNames, name)
	}
	for _, name := range sortedStrings(classNames) {
		render.Grid(os.Stdout, name, result.Classes[name], palette)
	}
	render.Warnings(os.Stdout, result.Warnings)
}
