// Package prompt renders a stepform session in a terminal. A Runner shows one
// step at a time, forwards each answer to the form and offers only the navigation
// actions the form accepts from the current step.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a text prompt. Key identifies the field as
// "group.field" so non-interactive drivers can look answers up.
type InputConfig struct {
	Key     string
	Message string
	Default string
	Help    string
}

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message string
	Options []string
}

// Driver abstracts the terminal so the runner can be exercised without one.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver returns a Driver backed by interactive terminal prompts.
// Informational lines go to out. When out is a terminal file the prompts are
// drawn there too, keeping stdout free for the command's result.
func NewSurveyDriver(out io.Writer) Driver {
	d := &surveyDriver{out: out}
	if fw, ok := out.(terminal.FileWriter); ok {
		d.opts = append(d.opts, survey.WithStdio(os.Stdin, fw, os.Stderr))
	}

	return d
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}

	if err := survey.AskOne(prompt, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}

	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var out string
	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
	}

	if err := survey.AskOne(prompt, &out, d.opts...); err != nil {
		return 0, translateSurveyErr(err)
	}

	return indexOf(cfg.Options, out), nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}

	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}

	return -1
}
