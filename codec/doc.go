// SPDX-License-Identifier: MIT

// Package codec reads and writes town networks in their line-oriented text
// form.
//
// A network file holds exactly three record shapes, one per line:
//
//	ville(NAME)          declares a town
//	route(NAME_A,NAME_B) declares a road
//	ecole(NAME)          places a facility
//
// A single trailing '.' is accepted after any record. Names are non-empty
// and may not contain '(', ')' or ','. All towns come first, then all roads,
// then all facilities.
//
// Load drives core.Network construction in file order and, once every record
// is applied, restores the accessibility invariant with full coverage if the
// stored facilities do not satisfy it. Save emits towns in insertion order,
// roads with the lower index first (each road once) and facilities in
// insertion order, so Save∘Load∘Save is the identity on record sequences.
//
// Errors:
//
//	ErrEmptyLine     - blank line
//	ErrMalformedLine - line matching none of the three shapes
//	ErrOutOfOrder    - town after a road or facility, road after a facility
//	ErrNoTowns       - input without any town
//
// Every load failure is a *SyntaxError carrying the 1-based line number; core
// rejections (duplicate town, unknown town, self-loop, duplicate road,
// duplicate facility) are wrapped so errors.Is still matches the core
// sentinels.
package codec
