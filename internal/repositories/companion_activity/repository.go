// Package companionactivity records the daily companion interactions of each
// player and enforces the per-day cap.
package companionactivity

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=companionactivitymock github.com/KirkDiggler/chore-quest/internal/repositories/companion_activity Repository

// DayLog is everything a player did with their companion on one day.
type DayLog struct {
	PlayerID string
	// Day is the calendar day in YYYY-MM-DD form.
	Day     string
	Actions []string
}

// Count is the number of interactions logged for the day.
func (d *DayLog) Count() int {
	return len(d.Actions)
}

// GetInput contains parameters for reading a day's log
type GetInput struct {
	PlayerID string
	Day      string
}

// GetOutput contains the day's log; an untouched day has no actions
type GetOutput struct {
	Log *DayLog
}

// RecordInput contains parameters for recording an interaction
type RecordInput struct {
	PlayerID string
	Day      string
	Action   string
	// Limit is the maximum number of interactions allowed for the day.
	Limit int
}

// RecordOutput contains the day's log including the new action
type RecordOutput struct {
	Log *DayLog
}

// UndoInput identifies the interaction to take back
type UndoInput struct {
	PlayerID string
	Day      string
	Action   string
}

// Repository defines the interface for companion activity storage
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Record appends the action unless the day already holds Limit actions,
	// in which case it returns ResourceExhausted and records nothing.
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)

	// Undo removes the most recent occurrence of the action from the day,
	// freeing its slot. Undoing an action that was never recorded is a no-op.
	Undo(ctx context.Context, input UndoInput) error
}
