package repository

import (
	"context"
	"fmt"
)

// IdempotencyKey identifies one unit of side-effecting work.
type IdempotencyKey struct {
	Operation string
	ID        string
}

func (k IdempotencyKey) String() string {
	return fmt.Sprintf("%s#%s", k.Operation, k.ID)
}

// ClaimState is the outcome of IdempotencyStore.Claim.
type ClaimState int

const (
	// ClaimAcquired means the caller holds the key and must Complete or Release it.
	ClaimAcquired ClaimState = iota
	// ClaimInProgress means another invocation holds an unexpired lease on the key.
	ClaimInProgress
	// ClaimCompleted means the work was already done.
	ClaimCompleted
)

func (s ClaimState) String() string {
	switch s {
	case ClaimAcquired:
		return "acquired"
	case ClaimInProgress:
		return "in_progress"
	case ClaimCompleted:
		return "completed"
	}
	return "unknown"
}

// IdempotencyStore guards side effects against duplicate deliveries.
type IdempotencyStore interface {
	// Claim records that work on key has started. A claim whose lease has run out is taken
	// over, so a crashed holder does not block the key until it expires.
	Claim(ctx context.Context, key IdempotencyKey) (ClaimState, error)
	// Complete marks the key done and stores result for later inspection.
	Complete(ctx context.Context, key IdempotencyKey, result interface{}) error
	// Release drops a claim so a retry can do the work again.
	Release(ctx context.Context, key IdempotencyKey) error
}
