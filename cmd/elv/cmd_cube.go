// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/circulant/cubetour"
)

func (a *app) cubeCmd() *cobra.Command {
	var (
		p, a3, start int
		sheets       bool
	)
	cmd := &cobra.Command{
		Use:   "cube",
		Short: "Build the circulant tour for n = p^3 with jumps p^2, p, a3",
		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := cubetour.Solve(p, a3, cubetour.WithLogger(a.log))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tour)

			c1, c2, c3 := tour.Counts()
			fmt.Fprintf(out, "a1 jumps: %d, optimal: %d\n", c1, p*p*(p-1))
			fmt.Fprintf(out, "a2 jumps: %d, optimal: %d\n", c2, p*(p-1))
			fmt.Fprintf(out, "a3 jumps: %d, optimal: %d\n", c3, p)
			fmt.Fprintf(out, "ending node: %d, optimal: %t\n", tour.Vertices[len(tour.Vertices)-1], tour.IsOptimal())
			if err := tour.Validate(); err != nil {
				return err
			}

			if start > 1 {
				rotated, err := cubetour.RotateTourToStart(tour.Vertices, start)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "from %d: %s\n", start, cubetour.DebugString(rotated))
			}

			if sheets {
				grid, err := cubetour.Sheets(p, a3)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "turnaround node %d at (%d, %d)\n", tour.Turnaround, tour.TargetRow, tour.TargetCol)
				for _, sheet := range grid {
					for _, row := range sheet {
						fmt.Fprintln(out, row)
					}
					fmt.Fprintln(out, "--------------")
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&p, "p", 3, "odd prime")
	cmd.Flags().IntVar(&a3, "a3", 1, "third jump length, coprime to p")
	cmd.Flags().IntVar(&start, "start", 1, "print the tour rotated to begin at this vertex")
	cmd.Flags().BoolVar(&sheets, "sheets", false, "print the p sheets")

	return cmd
}
