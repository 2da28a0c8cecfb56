// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

// AccessibilityError is returned by RemoveFacility when clearing the facility of
// Town would leave the towns in Affected without access to any facility.
//
// It unwraps to ErrWouldViolateAccessibility, so callers can branch with
// errors.Is and still recover the affected names with errors.As.
type AccessibilityError struct {
	// Town is the town whose facility removal was rejected.
	Town string

	// Affected lists the neighbours that would lose coverage, in insertion order.
	Affected []string
}

// Error implements the error interface.
func (e *AccessibilityError) Error() string {
	return fmt.Sprintf("core: removing the facility of %q would leave %s without access",
		e.Town, strings.Join(e.Affected, ", "))
}

// Unwrap exposes the sentinel for errors.Is.
func (e *AccessibilityError) Unwrap() error { return ErrWouldViolateAccessibility }

// unknownTown wraps ErrUnknownTown with the offending name.
func unknownTown(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTown, name)
}
