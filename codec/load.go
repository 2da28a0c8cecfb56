// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/schoolnet/core"
)

// MaxLineLength bounds a single input line in bytes, newline excluded.
// Longer lines fail with ErrLineTooLong.
const MaxLineLength = 1 << 20

// LoadResult describes what Load had to do beyond applying the records.
type LoadResult struct {
	// FallbackApplied is true when the stored facilities left some town
	// without access and full coverage was applied instead.
	FallbackApplied bool
	// Uncovered lists the towns that lacked access before the fallback.
	Uncovered []string
}

// Load reads a network from r. On success the returned network is sealed
// and satisfies the accessibility invariant.
//
// Steps:
//  1. Parse each line and apply it to the network in order.
//  2. Reject towns after roads/facilities and roads after facilities.
//  3. Require at least one town.
//  4. If any town lacks access, apply full coverage (see LoadResult).
//
// Complexity: O(L + T + R log Δ) for L lines.
func Load(r io.Reader) (*core.Network, LoadResult, error) {
	var res LoadResult
	n := core.NewNetwork()

	var (
		lineNo     int
		seenRoad   bool
		seenSchool bool
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	for sc.Scan() {
		lineNo++
		text := sc.Text()

		rec, err := ParseLine(text)
		if err != nil {
			return nil, res, &SyntaxError{Line: lineNo, Text: text, Err: err}
		}

		switch rec.Kind {
		case KindTown:
			if seenRoad || seenSchool {
				return nil, res, &SyntaxError{Line: lineNo, Text: text,
					Err: fmt.Errorf("%w: town after %s", ErrOutOfOrder, lastKind(seenSchool))}
			}
			err = n.AddTown(rec.A)
		case KindRoad:
			if seenSchool {
				return nil, res, &SyntaxError{Line: lineNo, Text: text,
					Err: fmt.Errorf("%w: road after %s", ErrOutOfOrder, KindFacility)}
			}
			seenRoad = true
			err = n.AddRoad(rec.A, rec.B)
		case KindFacility:
			if !seenSchool {
				n.Seal()
				seenSchool = true
			}
			err = n.SetFacility(rec.A)
		}
		if err != nil {
			return nil, res, &SyntaxError{Line: lineNo, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, res, &SyntaxError{Line: lineNo + 1,
				Err: fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, MaxLineLength)}
		}
		return nil, res, fmt.Errorf("codec: read: %w", err)
	}

	if n.TownCount() == 0 {
		return nil, res, &SyntaxError{Err: ErrNoTowns}
	}
	n.Seal()

	if uncovered := n.Uncovered(); len(uncovered) > 0 {
		res.Uncovered = uncovered
		res.FallbackApplied = n.EnsureAccessible()
	}

	return n, res, nil
}

// lastKind names the record that closed the town section.
func lastKind(school bool) Kind {
	if school {
		return KindFacility
	}
	return KindRoad
}
