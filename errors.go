package stepform

import (
	"errors"
	"fmt"
)

// ErrSubmitted is returned by Update once the form has been submitted.
// The record is frozen and the update is discarded.
var ErrSubmitted = errors.New("stepform: form already submitted")

// ErrInvalidTransition is returned when the step table has no row for the action
// from the current step, e.g. prev on the first step or next on the payment step.
// The form is left untouched.
type ErrInvalidTransition struct {
	From   Step
	Action Action
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("stepform: no transition for action %q from step %q", e.Action, e.From)
}

// ErrCallback is returned when a callback (OnEnter, OnExit) or a hook (OnTransition)
// returns an error or panics. It wraps the original error, allowing it to be
// inspected using functions like errors.Is and errors.As.
type ErrCallback struct {
	// HookType is the type of callback or hook where the error occurred (e.g., "OnEnter", "OnTransition").
	HookType string
	// Step is the step associated with the callback. It is empty for global hooks.
	Step Step
	// Err is the original error returned by the callback or the error created after recovering from a panic.
	Err error
}

func (e *ErrCallback) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("stepform: error in %s callback for step %q: %v", e.HookType, e.Step, e.Err)
	}

	return fmt.Sprintf("stepform: error in %s hook: %v", e.HookType, e.Err)
}

func (e *ErrCallback) Unwrap() error { return e.Err }

// ErrUnknownGroup is returned when a group name is not one of the record's groups.
type ErrUnknownGroup struct {
	Group Group
}

func (e *ErrUnknownGroup) Error() string {
	return fmt.Sprintf("stepform: unknown group %q", e.Group)
}

// ErrUnknownField is returned when a field does not belong to the named group.
type ErrUnknownField struct {
	Group Group
	Field Field
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("stepform: unknown field %q in group %q", e.Field, e.Group)
}
