package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func solveCmd(a *app) *cobra.Command {
	var (
		naive  bool
		output string
	)

	c := &cobra.Command{
		Use:   "solve FILE",
		Short: "Replace the facilities with an automatic placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSession(cmd, args[0])
			if err != nil {
				return err
			}

			before := s.Coverage()
			if naive {
				s.FullCoverage()
			} else {
				s.Solve()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Before: %s\n", joinTowns(before))
			fmt.Fprintf(out, "After:  %s\n", joinTowns(s.Coverage()))

			if output == "" {
				return nil
			}
			if err := s.Save(cmd.Context(), output); err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved to %s\n", output)
			return nil
		},
	}

	c.Flags().BoolVar(&naive, "naive", false, "place a facility in every town")
	c.Flags().StringVarP(&output, "output", "o", "", "write the result to a file or s3:// location")
	return c
}
