// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors of the text format.
var (
	// ErrEmptyLine indicates a blank line inside the input.
	ErrEmptyLine = errors.New("codec: empty line")
	// ErrMalformedLine indicates a line matching none of the record shapes.
	ErrMalformedLine = errors.New("codec: malformed line")
	// ErrOutOfOrder indicates a town after a road or facility, or a road
	// after a facility.
	ErrOutOfOrder = errors.New("codec: declaration out of order")
	// ErrNoTowns indicates an input without any town.
	ErrNoTowns = errors.New("codec: no towns")
	// ErrUnpersistableName indicates a town name the format cannot carry.
	ErrUnpersistableName = errors.New("codec: town name cannot be saved")
	// ErrLineTooLong indicates a line longer than MaxLineLength.
	ErrLineTooLong = errors.New("codec: line too long")
)

// Kind identifies one of the three record shapes.
type Kind uint8

const (
	// KindTown declares a town: ville(NAME).
	KindTown Kind = iota + 1
	// KindRoad declares a road: route(A,B).
	KindRoad
	// KindFacility places a facility: ecole(NAME).
	KindFacility
)

// Keywords of the persisted format.
const (
	keywordTown     = "ville"
	keywordRoad     = "route"
	keywordFacility = "ecole"
)

// String returns the keyword of k.
func (k Kind) String() string {
	switch k {
	case KindTown:
		return keywordTown
	case KindRoad:
		return keywordRoad
	case KindFacility:
		return keywordFacility
	default:
		return "unknown"
	}
}

// Record is one parsed line. B is set for roads only.
type Record struct {
	Kind Kind
	A    string
	B    string
}

// String renders r in canonical form, without the optional trailing dot.
func (r Record) String() string {
	if r.Kind == KindRoad {
		return fmt.Sprintf("%s(%s,%s)", r.Kind, r.A, r.B)
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.A)
}

// recordRE splits a line into keyword and argument list.
var recordRE = regexp.MustCompile(`^(ville|route|ecole)\((.+)\)\.?$`)

// ParseLine parses a single line. A trailing carriage return is ignored;
// any other surrounding whitespace makes the line malformed. An empty line
// yields ErrEmptyLine.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return Record{}, ErrEmptyLine
	}

	m := recordRE.FindStringSubmatch(line)
	if m == nil {
		return Record{}, ErrMalformedLine
	}

	keyword, args := m[1], m[2]
	switch keyword {
	case keywordRoad:
		a, b, ok := strings.Cut(args, ",")
		if !ok || !validName(a) || !validName(b) {
			return Record{}, fmt.Errorf("%w: %s needs two names", ErrMalformedLine, keywordRoad)
		}
		return Record{Kind: KindRoad, A: a, B: b}, nil
	case keywordTown, keywordFacility:
		if !validName(args) {
			return Record{}, fmt.Errorf("%w: invalid name %q", ErrMalformedLine, args)
		}
		kind := KindTown
		if keyword == keywordFacility {
			kind = KindFacility
		}
		return Record{Kind: kind, A: args}, nil
	}

	return Record{}, ErrMalformedLine
}

// validName reports whether s can be written back unambiguously.
func validName(s string) bool {
	return s != "" && !strings.ContainsAny(s, "(),")
}

// ValidName reports whether name can be persisted: non-empty and free of
// '(', ')' and ','.
func ValidName(name string) bool { return validName(name) }
