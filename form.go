// Package stepform implements a three-step data-entry session: personal details,
// then address, then payment. Each step is validated before the session may move
// forward, moving back is always allowed, and a successful submit freezes the
// collected record. Step changes follow a single transition table; the presentation
// layer only forwards edits and navigation actions.
package stepform

import (
	"fmt"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

// flow is the complete step table. Any (step, action) pair not listed is rejected.
var flow = g.Map[Step, g.Slice[transition]]{
	StepPersonal: {
		{action: ActionNext, to: StepAddress, gate: PersonalDetails},
	},
	StepAddress: {
		{action: ActionPrev, to: StepPersonal},
		{action: ActionNext, to: StepPayment, gate: AddressDetails},
	},
	StepPayment: {
		{action: ActionPrev, to: StepAddress},
		{action: ActionSubmit, to: StepSubmitted, gate: PaymentDetails},
	},
}

var steps = g.Slice[Step]{StepPersonal, StepAddress, StepPayment, StepSubmitted}

// Steps returns every step in flow order.
func Steps() g.Slice[Step] { return steps.Clone() }

// New starts a session on the personal step with every field empty.
func New() *Form {
	return &Form{
		id:           uuid.New(),
		current:      StepPersonal,
		history:      g.Slice[Step]{StepPersonal},
		record:       NewRecord(),
		errors:       ErrorSet{},
		onEnter:      g.NewMap[Step, g.Slice[Callback]](),
		onExit:       g.NewMap[Step, g.Slice[Callback]](),
		onTransition: g.NewSlice[TransitionHook](),
		onReject:     g.NewSlice[RejectHook](),
	}
}

// Clone starts a new session with the same hooks as f. Hooks registered later on
// either form are not seen by the other.
func (f *Form) Clone() *Form {
	return &Form{
		id:           uuid.New(),
		current:      StepPersonal,
		history:      g.Slice[Step]{StepPersonal},
		record:       NewRecord(),
		errors:       ErrorSet{},
		onEnter:      cloneCallbacks(f.onEnter),
		onExit:       cloneCallbacks(f.onExit),
		onTransition: f.onTransition.Clone(),
		onReject:     f.onReject.Clone(),
	}
}

func cloneCallbacks(src g.Map[Step, g.Slice[Callback]]) g.Map[Step, g.Slice[Callback]] {
	dst := g.NewMap[Step, g.Slice[Callback]]()
	for step, cbs := range src {
		dst[step] = cbs.Clone()
	}

	return dst
}

// Sync returns a thread-safe wrapper around f.
func (f *Form) Sync() *SyncForm { return &SyncForm{form: f} }

// ID returns the session identifier.
func (f *Form) ID() uuid.UUID { return f.id }

// Current returns the active step.
func (f *Form) Current() Step { return f.current }

// StepIndex returns the active step position, 1 to 3.
func (f *Form) StepIndex() int { return f.current.Index() }

// Submitted reports whether the form reached its terminal step.
func (f *Form) Submitted() bool { return f.current == StepSubmitted }

// Record returns the current values of all groups.
func (f *Form) Record() Record { return f.record }

// Errors returns a copy of the validation failures of the active step.
func (f *Form) Errors() ErrorSet { return f.errors.Clone() }

// Result returns the frozen record once the form has been submitted.
func (f *Form) Result() (Record, bool) {
	if !f.Submitted() {
		return Record{}, false
	}

	return f.record, true
}

// History returns a copy of the list of visited steps.
func (f *Form) History() g.Slice[Step] { return f.history.Clone() }

// Actions returns the actions accepted from the active step, in table order.
func (f *Form) Actions() g.Slice[Action] {
	actions := g.NewSlice[Action]()

	if rows := flow.Get(f.current); rows.IsSome() {
		for row := range rows.Some().Iter() {
			actions.Push(row.action)
		}
	}

	return actions
}

// OnEnter registers a callback for when entering a given step.
func (f *Form) OnEnter(step Step, cb Callback) *Form {
	f.onEnter.Entry(step).
		AndModify(func(cbs *g.Slice[Callback]) { cbs.Push(cb) }).
		OrInsert(g.SliceOf(cb))

	return f
}

// OnExit registers a callback for when leaving a given step.
func (f *Form) OnExit(step Step, cb Callback) *Form {
	f.onExit.Entry(step).
		AndModify(func(cbs *g.Slice[Callback]) { cbs.Push(cb) }).
		OrInsert(g.SliceOf(cb))

	return f
}

// OnTransition registers a global transition hook.
func (f *Form) OnTransition(hook TransitionHook) *Form {
	f.onTransition.Push(hook)
	return f
}

// OnReject registers a hook called whenever validation blocks an action.
func (f *Form) OnReject(hook RejectHook) *Form {
	f.onReject.Push(hook)
	return f
}

// Update replaces one value of the record. Other values and the current error
// set are left as they are. Once submitted, updates are refused with ErrSubmitted.
func (f *Form) Update(group Group, field Field, value g.String) error {
	if f.Submitted() {
		return ErrSubmitted
	}

	record, err := f.record.with(group, field, value)
	if err != nil {
		return err
	}

	f.record = record

	return nil
}

// Next validates the active step and moves to the following one.
func (f *Form) Next() error { return f.Trigger(ActionNext) }

// Prev moves to the previous step without validation and clears the errors.
func (f *Form) Prev() error { return f.Trigger(ActionPrev) }

// Submit validates the payment step and freezes the record.
func (f *Form) Submit() error { return f.Trigger(ActionSubmit) }

// Trigger applies an action to the form.
//
// If the step table has no row for the action, an *ErrInvalidTransition is returned.
// If the row's group fails validation, the failures replace the error set, the
// step stays the same and Trigger returns nil: a rejected step is an expected
// outcome that the caller reads from Errors. Otherwise the exit, transition and
// enter hooks run, and only if all of them succeed is the new step committed with
// an empty error set.
func (f *Form) Trigger(action Action) error {
	t, ok := lookup(f.current, action)
	if !ok {
		return &ErrInvalidTransition{From: f.current, Action: action}
	}

	if t.gate != "" {
		if errs := Validate(f.record.Group(t.gate)); !errs.Empty() {
			f.errors = errs
			f.reject(action, errs)
			return nil
		}
	}

	previousStep := f.current
	nextStep := t.to

	ctx := f.newContext(previousStep, action)

	if cbs := f.onExit.Get(previousStep); cbs.IsSome() {
		for cb := range cbs.Some().Iter() {
			if err := f.executeCallback(cb, ctx, "OnExit", previousStep); err != nil {
				return err
			}
		}
	}

	ctx.Step = nextStep

	for hook := range f.onTransition.Iter() {
		if err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &ErrCallback{HookType: "OnTransition", Err: fmt.Errorf("panic: %v", r)}
				}
			}()

			if hookErr := hook(previousStep, nextStep, action, ctx); hookErr != nil {
				err = &ErrCallback{HookType: "OnTransition", Err: hookErr}
			}

			return err
		}(); err != nil {
			return err
		}
	}

	if cbs := f.onEnter.Get(nextStep); cbs.IsSome() {
		for cb := range cbs.Some().Iter() {
			if err := f.executeCallback(cb, ctx, "OnEnter", nextStep); err != nil {
				return err
			}
		}
	}

	f.errors = ErrorSet{}
	f.current = nextStep
	f.history.Push(nextStep)

	return nil
}

func lookup(from Step, action Action) (transition, bool) {
	rows := flow.Get(from)
	if rows.IsNone() {
		return transition{}, false
	}

	for row := range rows.Some().Iter() {
		if row.action == action {
			return row, true
		}
	}

	return transition{}, false
}

// reject runs the OnReject hooks. Panics are recovered and dropped: a rejection
// has already been recorded and there is no transition to abort.
func (f *Form) reject(action Action, errs ErrorSet) {
	ctx := f.newContext(f.current, action)

	for hook := range f.onReject.Iter() {
		func() {
			defer func() { _ = recover() }()
			hook(ctx, errs.Clone())
		}()
	}
}

// executeCallback safely executes a callback, recovering from panics.
func (f *Form) executeCallback(cb Callback, ctx *Context, hookType string, step Step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{HookType: hookType, Step: step, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if cbErr := cb(ctx); cbErr != nil {
		err = &ErrCallback{HookType: hookType, Step: step, Err: cbErr}
	}

	return err
}
