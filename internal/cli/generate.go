package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/schoolnet/builder"
	"github.com/katalvlaran/schoolnet/internal/session"
)

// Facility placements applied to generated networks.
const (
	placeGreedy = "greedy"
	placeFull   = "full"
	placeNone   = "none"
)

func generateCmd(a *app) *cobra.Command {
	var (
		output     string
		ids        string
		cols       int
		prob       float64
		seed       int64
		facilities string
	)

	c := &cobra.Command{
		Use:   "generate KIND N",
		Short: "Write a synthetic network (path, cycle, star, wheel, complete, grid, isolated, random)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[1], err)
			}
			con, err := constructorFor(args[0], size, cols, prob)
			if err != nil {
				return err
			}
			idFn, err := builder.IDScheme(ids)
			if err != nil {
				return err
			}

			n, err := builder.BuildNetwork(
				[]builder.BuilderOption{builder.WithIDScheme(idFn), builder.WithSeed(seed)},
				con,
			)
			if err != nil {
				return err
			}

			s := session.New(n, output, a.sessionDeps())
			switch facilities {
			case placeGreedy:
				s.Solve()
			case placeFull:
				s.FullCoverage()
			case placeNone:
			default:
				return fmt.Errorf("unknown facility placement %q", facilities)
			}

			if err := s.Save(cmd.Context(), output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d towns, %d roads, %d facilities to %s\n",
				n.TownCount(), n.RoadCount(), n.FacilityCount(), output)
			return nil
		},
	}

	c.Flags().StringVarP(&output, "output", "o", "", "destination file or s3:// location (required)")
	c.Flags().StringVar(&ids, "ids", "decimal", "town names: decimal, excel or prefix:<p>")
	c.Flags().IntVar(&cols, "cols", 0, "grid columns (defaults to N)")
	c.Flags().Float64Var(&prob, "p", 0.3, "road probability for random networks")
	c.Flags().Int64Var(&seed, "seed", 1, "random seed")
	c.Flags().StringVar(&facilities, "facilities", placeGreedy, "initial placement: greedy, full or none")

	_ = c.MarkFlagRequired("output")
	return c
}

func constructorFor(kind string, n, cols int, p float64) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		if cols <= 0 {
			cols = n
		}
		return builder.Grid(n, cols), nil
	case "isolated":
		return builder.Isolated(n), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	}
	return nil, fmt.Errorf("unknown network kind %q", kind)
}
