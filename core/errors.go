package core

import "errors"

// Result-code taxonomy for the tracking core. These are sentinel errors so
// callers can classify outcomes with errors.Is regardless of wrapping.
var (
	// ErrInvalidArgument reports a nil or malformed argument. Argument
	// validation always runs before any state is touched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyInitialized reports a second Init without an intervening
	// Close.
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrServerInvalid reports an operation on an uninitialized or
	// finalized server, or one with a broken sub-resource.
	ErrServerInvalid = errors.New("action server invalid")

	// ErrCapacity reports that goal storage cannot grow because the
	// configured tracked-goal limit was reached.
	ErrCapacity = errors.New("goal storage capacity reached")

	// ErrTakeFailed reports that a request channel had no pending request.
	// It is distinct from a generic channel failure.
	ErrTakeFailed = errors.New("take failed: no pending request")

	// ErrDuplicateGoal reports an accept for a goal identity that is
	// already tracked.
	ErrDuplicateGoal = errors.New("goal identity already tracked")

	// ErrChannelClosed reports an operation on a closed transport channel.
	ErrChannelClosed = errors.New("channel closed")

	// ErrChannelEmpty is the transport-level condition for a take with no
	// pending message. The server translates it to ErrTakeFailed.
	ErrChannelEmpty = errors.New("no pending message")
)

// BatchError aggregates per-goal failures from a best-effort batch operation
// (cancellation processing, expiry sweeping). The batch never halts on an
// individual failure; every sub-error is retained.
type BatchError struct {
	Errs []error
}

// Error describes the aggregate.
func (e *BatchError) Error() string {
	return errors.Join(e.Errs...).Error()
}

// Unwrap exposes the individual failures to errors.Is / errors.As.
func (e *BatchError) Unwrap() []error { return e.Errs }

// NewBatchError returns nil when errs is empty, otherwise an aggregate
// carrying every non-nil entry.
func NewBatchError(errs []error) error {
	nonNil := errs[:0:0]
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	return &BatchError{Errs: nonNil}
}
