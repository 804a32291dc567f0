// Package domain defines domain-level errors for the comparison feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for view-model derivation.
// Callers branch on these with errors.Is to pick a rendering path.
var (
	// ErrMissingPrimaryEntity indicates that no company in the collection is flagged as primary.
	// The caller is expected to prompt the user to register their own company.
	ErrMissingPrimaryEntity = errors.New("no primary company in collection")

	// ErrMultiplePrimaryEntities indicates that more than one company is flagged as primary.
	ErrMultiplePrimaryEntities = errors.New("more than one primary company in collection")

	// ErrDuplicateCompetitorName indicates that two competitors share a name.
	// Competitor names key the comparison table, so duplicates cannot be represented.
	ErrDuplicateCompetitorName = errors.New("duplicate competitor name")
)

// DuplicateNameError reports the competitor name that occurred more than once.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateCompetitorName, e.Name)
}

// Unwrap allows errors.Is(err, ErrDuplicateCompetitorName).
func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateCompetitorName
}
