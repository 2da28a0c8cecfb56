// SPDX-License-Identifier: MIT

package codec

import "fmt"

// SyntaxError reports a load failure together with its position.
// Line is 1-based; 0 means the failure concerns the input as a whole.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("codec: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *SyntaxError) Unwrap() error { return e.Err }
