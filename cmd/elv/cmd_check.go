// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circulant/config"
	"github.com/katalvlaran/circulant/harness"
)

// errChecksFailed makes the process exit non-zero when a suite disagrees.
var errChecksFailed = errors.New("one or more checks failed")

func (a *app) checkCmd() *cobra.Command {
	var (
		path        string
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-validate every counter and the cube solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if concurrency > 0 {
				cfg.Concurrency = concurrency
			}
			if !a.verbose {
				lvl, err := cfg.Level()
				if err != nil {
					return err
				}
				a.level.SetLevel(lvl)
			}

			sum, err := harness.Run(cmd.Context(), cfg, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range sum.Reports {
				fmt.Fprintln(out, r)
			}
			if len(sum.Growth) > 0 {
				fmt.Fprintln(out, "Fast Growth of p1^k * p2^j")
				for _, g := range sum.Growth {
					fmt.Fprintln(out, g)
				}
			}
			if !sum.OK() {
				return errChecksFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "harness.yaml", "harness configuration file (defaults apply when missing)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "override suite concurrency")

	return cmd
}
