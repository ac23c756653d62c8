package stepform

import (
	"encoding/json"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

// Snapshot is a serializable view of a session, meant for display and debugging.
// There is no way to load a session back from it.
type Snapshot struct {
	ID        uuid.UUID     `json:"id"`
	Step      Step          `json:"step"`
	StepIndex int           `json:"step_index"`
	Submitted bool          `json:"submitted"`
	History   g.Slice[Step] `json:"history"`
	Errors    ErrorSet      `json:"errors"`
	Record    Record        `json:"record"`
}

// Snapshot captures the current session state.
func (f *Form) Snapshot() Snapshot {
	return Snapshot{
		ID:        f.id,
		Step:      f.current,
		StepIndex: f.current.Index(),
		Submitted: f.Submitted(),
		History:   f.history.Clone(),
		Errors:    f.errors.Clone(),
		Record:    f.record,
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (f *Form) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Snapshot())
}
