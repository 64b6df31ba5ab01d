package errorvalues

import "errors"

var (
	// Validation
	ErrUnknownHabit   = errors.New("unknown habit name")
	ErrWrongHabitKind = errors.New("habit doesn't support this operation")
	ErrBadSubmission  = errors.New("invalid content submission")

	// No data. Read paths treat these as zero/default, not failure.
	ErrEntryNotFound = errors.New("day entry doesn't exist")
	ErrScoreNotFound = errors.New("scorecard doesn't exist")

	// Idempotent no-op: the habit or action was already completed in this
	// bucket. Distinct from persistence failures so callers can tell
	// "already done" from "didn't apply".
	ErrAlreadyCompleted = errors.New("already completed for this day")

	// Concurrency
	ErrVersionConflict = errors.New("record version conflict")
	ErrConflict        = errors.New("too many concurrent updates for this day")

	ErrInvalidToken = errors.New("invalid token")
)
