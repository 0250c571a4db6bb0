package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-mcts-root/pkg/bench"
)

// Logs every worker's tally as it finishes
type logListener struct{}

func (logListener) OnFinishedWork(info bench.AgreementWorkerInfo) {
	log.Info().
		Int("worker", info.WorkerID).
		Int("snapshots", info.NSnapshots).
		Int("agreed", info.Agreed).
		Int("disagreed", info.Disagreed).
		Msg("worker finished")
}

func (logListener) Summary(bench.AgreementSummary) {}

func newArenaCmd() *cobra.Command {
	var configA, configB string
	var snapshots, threads uint

	cmd := &cobra.Command{
		Use:   "arena",
		Short: "Compare two decision configs over random root snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadConfig(configA)
			if err != nil {
				return err
			}
			b, err := loadConfig(configB)
			if err != nil {
				return err
			}

			arena := bench.NewAgreementArena(a, b).Setup(snapshots, threads)
			summary, err := arena.Run(cmd.Context(), logListener{})
			if err != nil {
				return err
			}

			newRenderer(cmd.OutOrStdout(), noColor).summary(summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configA, "config", "c", "", "YAML decision config, defaults when empty")
	cmd.Flags().StringVar(&configB, "against", "", "YAML decision config to compare with, defaults when empty")
	cmd.Flags().UintVarP(&snapshots, "snapshots", "n", 1000, "number of random snapshots")
	cmd.Flags().UintVarP(&threads, "threads", "t", 4, "number of worker goroutines")
	return cmd
}
