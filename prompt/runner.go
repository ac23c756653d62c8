package prompt

import (
	"context"
	"fmt"

	"github.com/enetx/g"

	"github.com/enetx/stepform"
)

// Key returns the InputConfig key for a field.
func Key(group stepform.Group, field stepform.Field) string {
	return string(group) + "." + string(field)
}

// Runner drives a form through a Driver until it is submitted.
type Runner struct {
	form   stepform.Stepper
	driver Driver
}

// NewRunner returns a Runner for form.
func NewRunner(form stepform.Stepper, driver Driver) *Runner {
	return &Runner{form: form, driver: driver}
}

// Run shows the active step, collects every field, then asks which of the
// accepted actions to take. A rejected step is shown again with its messages.
// Run returns the frozen record once the form is submitted.
func (r *Runner) Run(ctx context.Context) (stepform.Record, error) {
	for {
		if record, ok := r.form.Result(); ok {
			if err := r.driver.Info(ctx, "Form submitted successfully!"); err != nil {
				return stepform.Record{}, err
			}
			return record, nil
		}

		if err := r.step(ctx); err != nil {
			return stepform.Record{}, err
		}
	}
}

func (r *Runner) step(ctx context.Context) error {
	step := r.form.Current()
	group := step.Group()

	schema, ok := stepform.SchemaOf(group)
	if !ok {
		return fmt.Errorf("no schema for step %q", step)
	}

	header := g.Format("Step {}/3: {}", r.form.StepIndex(), schema.Title)
	if err := r.driver.Info(ctx, string(header)); err != nil {
		return err
	}

	errs := r.form.Errors()
	values := r.form.Record().Group(group)

	for spec := range schema.Fields.Iter() {
		msg := errs.Get(spec.Name)
		if msg != "" {
			if err := r.driver.Info(ctx, string(g.Format("  ! {}", msg))); err != nil {
				return err
			}
		}

		value, err := r.driver.Input(ctx, InputConfig{
			Key:     Key(group, spec.Name),
			Message: string(spec.Label) + ":",
			Default: string(values.Get(spec.Name)),
			Help:    string(msg),
		})
		if err != nil {
			return err
		}

		if err := r.form.Update(group, spec.Name, g.String(value)); err != nil {
			return err
		}
	}

	actions := r.form.Actions()

	options := make([]string, 0, len(actions))
	for action := range actions.Iter() {
		options = append(options, string(action.Label()))
	}

	choice, err := r.driver.Select(ctx, SelectConfig{Message: "Continue:", Options: options})
	if err != nil {
		return err
	}

	if choice < 0 || choice >= len(actions) {
		return fmt.Errorf("invalid choice %d", choice)
	}

	return r.form.Trigger(actions[choice])
}
