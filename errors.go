package hashring

import "errors"

var (
	// ErrNoTargets is returned by lookup operations on a ring with no
	// active targets.
	ErrNoTargets = errors.New("hashring: no targets configured")

	// ErrNegativeWeight indicates a weight update or weight string
	// contained a negative weight. Batches containing one are rejected
	// whole; nothing is applied.
	ErrNegativeWeight = errors.New("hashring: negative weight")
)
