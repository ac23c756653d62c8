package stepform

import (
	"github.com/enetx/g"
	"github.com/google/uuid"
)

// Interface compliance check.
var (
	_ Stepper = (*Form)(nil)
	_ Stepper = (*SyncForm)(nil)
)

// Trigger is the thread-safe version of Form.Trigger.
// Hooks run while the lock is held and must not call back into the SyncForm.
func (sf *SyncForm) Trigger(action Action) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.form.Trigger(action)
}

// Next is the thread-safe version of Form.Next.
func (sf *SyncForm) Next() error { return sf.Trigger(ActionNext) }

// Prev is the thread-safe version of Form.Prev.
func (sf *SyncForm) Prev() error { return sf.Trigger(ActionPrev) }

// Submit is the thread-safe version of Form.Submit.
func (sf *SyncForm) Submit() error { return sf.Trigger(ActionSubmit) }

// Update is the thread-safe version of Form.Update.
func (sf *SyncForm) Update(group Group, field Field, value g.String) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.form.Update(group, field, value)
}

// ID returns the session identifier.
func (sf *SyncForm) ID() uuid.UUID {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.ID()
}

// Current is the thread-safe version of Form.Current.
func (sf *SyncForm) Current() Step {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.Current()
}

// StepIndex is the thread-safe version of Form.StepIndex.
func (sf *SyncForm) StepIndex() int {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.StepIndex()
}

// Submitted is the thread-safe version of Form.Submitted.
func (sf *SyncForm) Submitted() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.Submitted()
}

// Record is the thread-safe version of Form.Record.
func (sf *SyncForm) Record() Record {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.Record()
}

// Errors is the thread-safe version of Form.Errors.
func (sf *SyncForm) Errors() ErrorSet {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.Errors()
}

// Result is the thread-safe version of Form.Result.
func (sf *SyncForm) Result() (Record, bool) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.Result()
}

// Actions is the thread-safe version of Form.Actions.
func (sf *SyncForm) Actions() g.Slice[Action] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.Actions()
}

// History is the thread-safe version of Form.History.
func (sf *SyncForm) History() g.Slice[Step] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.History()
}

// ToDOT is the thread-safe version of Form.ToDOT.
func (sf *SyncForm) ToDOT() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the session snapshot.
func (sf *SyncForm) MarshalJSON() ([]byte, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.form.MarshalJSON()
}
