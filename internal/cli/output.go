package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/schoolnet/codec"
	"github.com/katalvlaran/schoolnet/internal/session"
)

// loadSession loads location and reports a coverage fallback on the
// command's output.
func (a *app) loadSession(cmd *cobra.Command, location string) (*session.Session, error) {
	s, res, err := session.Load(cmd.Context(), location, a.sessionDeps())
	if err != nil {
		return nil, err
	}
	printFallback(cmd.OutOrStdout(), res)
	return s, nil
}

func printFallback(w io.Writer, res codec.LoadResult) {
	if !res.FallbackApplied {
		return
	}
	fmt.Fprintf(w, "The facility list leaves %s without access; a facility was placed in every town.\n",
		joinTowns(res.Uncovered))
}

func joinTowns(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
