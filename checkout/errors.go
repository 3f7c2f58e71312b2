package checkout

import "fmt"

// ValidationError reports bad customer input caught before any write is
// attempted. Fully recoverable by correcting the input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type WriteStage string

const (
	// StageHeader means the order header insert failed. Nothing was
	// persisted and the whole submission is safe to retry.
	StageHeader WriteStage = "header"
	// StageItems means the header landed but the item inserts failed in
	// part or in full, leaving an orphaned header behind. Retrying the
	// submission would create a duplicate header, so it is flagged for
	// operator reconciliation instead.
	StageItems WriteStage = "items"
)

// PersistenceError reports a failed order write and which stage it died in.
type PersistenceError struct {
	Stage    WriteStage
	OrderID  string
	Written  int
	Expected int
	Err      error
}

func (e *PersistenceError) Error() string {
	if e.Stage == StageItems {
		return fmt.Sprintf("order %s: %d of %d items persisted: %v", e.OrderID, e.Written, e.Expected, e.Err)
	}
	return fmt.Sprintf("order header write failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
