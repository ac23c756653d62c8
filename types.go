package stepform

import (
	"sync"

	"github.com/enetx/g"
	"github.com/google/uuid"
)

type (
	// Step is the active stage of a form session.
	Step g.String
	// Action is a navigation request issued by the presentation layer.
	Action g.String
	// Group names one of the three field groups of a record.
	Group g.String
	// Field names a single input within a group.
	Field g.String

	// Callback is a function called on entering or exiting a step.
	Callback func(ctx *Context) error
	// TransitionHook is a global callback called after a step transition is accepted.
	// It runs after OnExit and before OnEnter.
	TransitionHook func(from, to Step, action Action, ctx *Context) error
	// RejectHook is called when validation keeps the form on its current step.
	RejectHook func(ctx *Context, errs ErrorSet)

	// transition is one row of the step table. A non-empty gate names the group
	// that must validate before the row may be taken.
	transition struct {
		action Action
		to     Step
		gate   Group
	}

	// Form is a single data-entry session.
	Form struct {
		id           uuid.UUID
		current      Step
		history      g.Slice[Step]
		record       Record
		errors       ErrorSet
		onEnter      g.Map[Step, g.Slice[Callback]]
		onExit       g.Map[Step, g.Slice[Callback]]
		onTransition g.Slice[TransitionHook]
		onReject     g.Slice[RejectHook]
	}

	// SyncForm is a thread-safe wrapper around a Form.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	SyncForm struct {
		form *Form
		mu   sync.RWMutex
	}
)

const (
	StepPersonal  Step = "personal"
	StepAddress   Step = "address"
	StepPayment   Step = "payment"
	StepSubmitted Step = "submitted"
)

const (
	ActionNext   Action = "next"
	ActionPrev   Action = "prev"
	ActionSubmit Action = "submit"
)

// Index returns the 1-based position of the step. The submitted step reports 3,
// the index of the step it was reached from.
func (s Step) Index() int {
	switch s {
	case StepPersonal:
		return 1
	case StepAddress:
		return 2
	case StepPayment, StepSubmitted:
		return 3
	default:
		return 0
	}
}

// Group returns the field group collected on the step, or an empty Group for the
// submitted step.
func (s Step) Group() Group {
	switch s {
	case StepPersonal:
		return PersonalDetails
	case StepAddress:
		return AddressDetails
	case StepPayment:
		return PaymentDetails
	default:
		return ""
	}
}

// Label is the button caption for the action.
func (a Action) Label() g.String {
	switch a {
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Previous"
	case ActionSubmit:
		return "Submit"
	default:
		return g.String(a)
	}
}
