package driven

import (
	"context"

	"github.com/custodia-labs/ordo/internal/core/domain"
)

// ConstraintLoader reads phonological constraints.
type ConstraintLoader interface {
	// Load reads the constraints at path in file order.
	// Returns domain.ErrInvalidConstraint for a malformed entry.
	Load(ctx context.Context, path string) ([]domain.Constraint, error)
}

// FileWatcher reports writes to a file.
type FileWatcher interface {
	// Watch sends on the returned channel every time path changes,
	// until ctx is cancelled. The channel is closed on return.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
