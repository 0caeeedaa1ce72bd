package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain so entity
// constructors and state transitions stay deterministic under test
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
