// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circulant/formula"
)

// intArgs parses positional integer arguments.
func intArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i+1, s, err)
		}
		out[i] = v
	}

	return out, nil
}

// formulaLeaf builds one formula subcommand over k integer arguments.
func formulaLeaf(use, short string, k int, eval func(v []int) (*big.Int, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(k),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := intArgs(args)
			if err != nil {
				return err
			}
			total, err := eval(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		},
	}
}

func (a *app) formulaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Closed-form and complement ELV counts",
	}
	cmd.AddCommand(
		formulaLeaf("ptp P1 P2", "n = p1 * p2", 2, func(v []int) (*big.Int, error) {
			return formula.PrimeTimesPrime(v[0], v[1])
		}),
		formulaLeaf("pk P K", "n = p^k, p odd", 2, func(v []int) (*big.Int, error) {
			return formula.PrimeRaisedToK(v[0], v[1])
		}),
		formulaLeaf("p1sp2 P1 P2", "n = p1^2 * p2", 2, func(v []int) (*big.Int, error) {
			return formula.ComplementP1SquaredP2(v[0], v[1])
		}),
		formulaLeaf("p1p2p3 P1 P2 P3", "n = p1 * p2 * p3", 3, func(v []int) (*big.Int, error) {
			return formula.ComplementP1P2P3(v[0], v[1], v[2])
		}),
		formulaLeaf("perm NUM LENGTH", "num!/(num-length)!", 2, func(v []int) (*big.Int, error) {
			return formula.PermutationCount(v[0], v[1])
		}),
	)

	return cmd
}
