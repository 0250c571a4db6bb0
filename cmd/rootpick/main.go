package main

/*
rootpick reads a snapshot of an already searched MCTS root and prints
which move the decision engine commits to.

	rootpick decide --snapshot root.yaml --config decision.yaml
	rootpick arena --config decision.yaml --against other.yaml --snapshots 5000

The snapshot lists the root's legal moves in policy order and the statistics
of the expanded children, see testdata/scenario.yaml.
*/

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/IlikeChooros/go-mcts-root/pkg/mcts"
)

var (
	logLevel string
	noColor  bool
	seed     int64
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rootpick",
		Short:         "Inspect MCTS root move decisions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()

			if cmd.Flags().Changed("seed") {
				mcts.SetSeedGeneratorFn(func() int64 { return seed })
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().Int64Var(&seed, "seed", 0, "seed of the random number generators")

	root.AddCommand(newDecideCmd(), newArenaCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("rootpick failed")
		os.Exit(1)
	}
}
