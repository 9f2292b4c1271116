// Package translate provides translation providers. The stub is the
// default: a real service can be swapped in without changing the
// pipeline's contract (text plus language pair in, one string out).
package translate

import (
	"context"
	"fmt"
)

// Stub is a no-op translation provider returning a bracketed
// placeholder instead of a real translation.
type Stub struct{}

// NewStub creates a new placeholder translation provider.
func NewStub() *Stub { return &Stub{} }

// Translate returns a placeholder for the given text. It never fails.
func (s *Stub) Translate(_ context.Context, text, _, _ string) (string, error) {
	return fmt.Sprintf("[Translation of: %s]", text), nil
}
