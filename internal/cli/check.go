package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(a *app) *cobra.Command {
	var dump bool

	c := &cobra.Command{
		Use:   "check FILE",
		Short: "Load a network and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSession(cmd, args[0])
			if err != nil {
				return err
			}
			n := s.Network()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Towns: %d\n", n.TownCount())
			fmt.Fprintf(out, "Roads: %d\n", n.RoadCount())
			fmt.Fprintf(out, "Components: %d\n", n.ComponentCount())
			fmt.Fprintf(out, "Facilities: %s\n", joinTowns(s.Coverage()))

			if dump {
				return s.Dump(out)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&dump, "dump", false, "print towns, adjacency matrix and facilities")
	return c
}

func neighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors FILE",
		Short: "List the towns reachable by one road from each town",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadSession(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range s.Roads() {
				fmt.Fprintf(out, "%s: %s\n", e.Town, joinTowns(e.Neighbors))
			}
			return nil
		},
	}
}
