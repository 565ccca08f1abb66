// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circulant/oracle"
)

func (a *app) oracleCmd() *cobra.Command {
	var (
		n      int
		greedy bool
		list   bool
	)
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Count ELVs of n by exhaustive search",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			opts := []oracle.Option{oracle.WithContext(cmd.Context())}
			if list {
				opts = append(opts, oracle.WithVisitor(func(v oracle.ELV) error {
					_, err := fmt.Fprintln(out, []int(v))
					return err
				}))
			}
			smart, err := oracle.SmartCount(n, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "n = %d, smart = %s\n", n, smart)

			if greedy {
				g, err := oracle.GreedyCount(n, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "n = %d, greedy = %s\n", n, g)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 6, "circulant order")
	cmd.Flags().BoolVar(&greedy, "greedy", false, "also run the permutation counter")
	cmd.Flags().BoolVar(&list, "list", false, "print every edge length vector")

	return cmd
}
