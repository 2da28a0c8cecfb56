// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/schoolnet/core"
)

// Records returns the canonical record sequence of n: towns in insertion
// order, each road once with the lower index first, then facilities in
// insertion order.
//
// Errors:
//   - ErrUnpersistableName if a town name contains '(', ')' or ','.
func Records(n *core.Network) ([]Record, error) {
	towns := n.Towns()
	for _, name := range towns {
		if !validName(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnpersistableName, name)
		}
	}
	roads := n.Roads()
	facilities := n.Facilities()

	out := make([]Record, 0, len(towns)+len(roads)+len(facilities))
	for _, name := range towns {
		out = append(out, Record{Kind: KindTown, A: name})
	}
	for _, r := range roads {
		out = append(out, Record{Kind: KindRoad, A: towns[r.A], B: towns[r.B]})
	}
	for _, name := range facilities {
		out = append(out, Record{Kind: KindFacility, A: name})
	}

	return out, nil
}

// Save writes n to w, one record per line. Nothing is written when some
// town name cannot be read back (ErrUnpersistableName).
func Save(w io.Writer, n *core.Network) error {
	recs, err := Records(n)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		if _, err := bw.WriteString(rec.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
