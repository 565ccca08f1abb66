// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/circulant/lattice"
)

func (a *app) gridCmd() *cobra.Command {
	var (
		t         lattice.Target
		showTable bool
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Count ELVs for n = p1^A * p2^B with the lattice engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := lattice.ComputeTarget(t, lattice.WithLogger(a.log))
			if err != nil {
				return err
			}
			a.log.Info("grid",
				zap.Stringer("target", res.Target),
				zap.Int("nodes", res.Nodes),
				zap.Int("sites", res.Sites))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "n = %s = %s\n", res.Target, res.N)
			fmt.Fprintf(out, "total = %s\n", res.Total)
			if showTable {
				fmt.Fprint(out, res.Table.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&t.P1, "p1", 2, "first prime")
	cmd.Flags().IntVar(&t.A, "a", 1, "exponent of p1")
	cmd.Flags().IntVar(&t.P2, "p2", 3, "second prime")
	cmd.Flags().IntVar(&t.B, "b", 1, "exponent of p2")
	cmd.Flags().BoolVar(&showTable, "table", false, "print the residue table")

	return cmd
}

func (a *app) growthCmd() *cobra.Command {
	var p1, p2, upTo int
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "List lattice totals for p1^i * p2^i",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fast Growth of p1^k * p2^j\n")
			for i := 1; i <= upTo; i++ {
				res, err := lattice.Compute(p1, i, p2, i, lattice.WithLogger(a.log))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "n = %d^%d * %d^%d = %6s, count: %s\n", p1, i, p2, i, res.N, res.Total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&p1, "p1", 3, "first prime")
	cmd.Flags().IntVar(&p2, "p2", 5, "second prime")
	cmd.Flags().IntVar(&upTo, "up-to", 5, "largest shared exponent")

	return cmd
}
