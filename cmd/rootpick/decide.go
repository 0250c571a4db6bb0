package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-mcts-root/pkg/mcts"
)

func loadConfig(path string) (*mcts.Config, error) {
	if path == "" {
		return mcts.DefaultConfig(), nil
	}
	return mcts.LoadConfig(path)
}

func newDecideCmd() *cobra.Command {
	var snapshotPath, configPath string
	var metrics bool

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Choose the root move of a searched tree snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			snap, err := mcts.LoadSnapshot(snapshotPath)
			if err != nil {
				return err
			}

			tree, err := snap.Tree(cfg)
			if err != nil {
				return err
			}

			decision := tree.Decide()
			r := newRenderer(cmd.OutOrStdout(), noColor)
			r.children(tree, decision)
			r.decision(decision)
			r.counters(mcts.Counters(), tree.NoiseModifications())
			if !metrics {
				return nil
			}

			registry := prometheus.NewRegistry()
			if err := registry.Register(mcts.NewCollector("rootpick")); err != nil {
				return err
			}
			families, err := registry.Gather()
			if err != nil {
				return err
			}
			r.metrics(families)
			return nil
		},
	}

	cmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "YAML snapshot of the root")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML decision config, defaults when empty")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print the decision counters as prometheus metrics")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

func formatValue(v float64) string {
	if mcts.IsUndefined(v) {
		return "-"
	}
	return fmt.Sprintf("%+.3f", v)
}
