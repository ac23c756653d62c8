package stepform

import (
	"github.com/enetx/g"
	"github.com/google/uuid"
)

// Stepper is the surface a presentation layer drives.
type Stepper interface {
	Trigger(Action) error
	Next() error
	Prev() error
	Submit() error
	Update(Group, Field, g.String) error
	ID() uuid.UUID
	Current() Step
	StepIndex() int
	Submitted() bool
	Record() Record
	Errors() ErrorSet
	Result() (Record, bool)
	Actions() g.Slice[Action]
	History() g.Slice[Step]
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
}
