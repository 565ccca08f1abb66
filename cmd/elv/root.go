// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by every subcommand.
type app struct {
	verbose bool
	level   zap.AtomicLevel
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "elv",
		Short: "Edge length vector counts and circulant tours",
		Long: `elv counts edge length vectors (ELV) for n = p1^A * p2^B with the lattice
engine, cross-checks closed forms against exhaustive search, and builds
optimal circulant-TSP tours for n = p^3.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.level = config.Level
			a.log = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging (lattice transition trace)")

	root.AddCommand(
		a.gridCmd(),
		a.oracleCmd(),
		a.formulaCmd(),
		a.cubeCmd(),
		a.checkCmd(),
		a.growthCmd(),
	)

	return root
}
