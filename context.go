package stepform

import "github.com/google/uuid"

// Context describes the session a hook is executed for.
// Step holds the step the callback runs for: the source step in OnExit and
// OnReject, the target step in OnTransition and OnEnter.
// Record is the record as it stood when the action was triggered.
type Context struct {
	ID     uuid.UUID
	Step   Step
	Action Action
	Record Record
}

func (f *Form) newContext(step Step, action Action) *Context {
	return &Context{
		ID:     f.id,
		Step:   step,
		Action: action,
		Record: f.record,
	}
}
