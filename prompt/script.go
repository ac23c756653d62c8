package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/enetx/g"
	"gopkg.in/yaml.v3"

	"github.com/enetx/stepform"
)

// Answers holds scripted values as group -> field -> value, the same shape as
// the record's YAML output.
type Answers map[string]map[string]string

// LoadAnswers decodes answers from YAML and rejects unknown groups or fields.
func LoadAnswers(r io.Reader) (Answers, error) {
	var answers Answers
	if err := yaml.NewDecoder(r).Decode(&answers); err != nil {
		if errors.Is(err, io.EOF) {
			return Answers{}, nil
		}
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	if err := answers.Check(); err != nil {
		return nil, err
	}

	return answers, nil
}

// Check reports the first group or field that the form does not know.
func (a Answers) Check() error {
	for _, name := range slices.Sorted(maps.Keys(a)) {
		schema, ok := stepform.SchemaOf(stepform.Group(name))
		if !ok {
			return &stepform.ErrUnknownGroup{Group: stepform.Group(name)}
		}

		for _, field := range slices.Sorted(maps.Keys(a[name])) {
			known := slices.ContainsFunc(schema.Fields, func(spec stepform.FieldSpec) bool {
				return spec.Name == stepform.Field(field)
			})
			if !known {
				return &stepform.ErrUnknownField{Group: schema.Group, Field: stepform.Field(field)}
			}
		}
	}

	return nil
}

type scriptDriver struct {
	answers map[string]string
	asked   g.Set[string]
	out     io.Writer
}

// NewScriptDriver returns a Driver that answers from a, always moves forward and
// writes informational lines to out. Fields missing from a keep their value.
func NewScriptDriver(a Answers, out io.Writer) Driver {
	flat := make(map[string]string)
	for group, fields := range a {
		for field, value := range fields {
			flat[Key(stepform.Group(group), stepform.Field(field))] = value
		}
	}

	return &scriptDriver{answers: flat, asked: g.NewSet[string](), out: out}
}

func (d *scriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if d.asked.Contains(cfg.Key) {
		return "", fmt.Errorf("%w: %s asked again", ErrIncomplete, cfg.Key)
	}

	d.asked.Insert(cfg.Key)

	if value, ok := d.answers[cfg.Key]; ok {
		return value, nil
	}

	return cfg.Default, nil
}

func (d *scriptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	for _, action := range []stepform.Action{stepform.ActionSubmit, stepform.ActionNext} {
		if i := indexOf(cfg.Options, string(action.Label())); i >= 0 {
			return i, nil
		}
	}

	return 0, ErrNoForwardAction
}

func (d *scriptDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(d.out, msg)
	return err
}
