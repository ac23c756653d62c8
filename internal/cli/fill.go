package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/enetx/stepform"
	"github.com/enetx/stepform/prompt"
)

func newFillCommand(a *app) *cobra.Command {
	var answersPath string
	var output string

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in the form and print the submitted record",
		Long: `Fill in the form step by step and print the submitted record.

Without --answers the form is filled interactively. With --answers the values
are read from a YAML file shaped like the output:

  personalDetails:
    firstName: Ada
  addressDetails:
    city: London
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = a.cfg.Output
			}
			if err := checkOutput(output); err != nil {
				return err
			}

			driver := prompt.NewSurveyDriver(cmd.ErrOrStderr())
			if answersPath != "" {
				answers, err := readAnswers(answersPath)
				if err != nil {
					return err
				}
				driver = prompt.NewScriptDriver(answers, cmd.ErrOrStderr())
			}

			form := stepform.New().WithLogger(a.logger)

			record, err := prompt.NewRunner(form, driver).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("fill form: %w", err)
			}

			return writeRecord(cmd.OutOrStdout(), record, output)
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "YAML file with scripted answers")
	cmd.Flags().StringVarP(&output, "output", "o", OutputJSON, "output format (json, yaml)")

	return cmd
}

func readAnswers(path string) (prompt.Answers, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()

	answers, err := prompt.LoadAnswers(f)
	if err != nil {
		return nil, fmt.Errorf("load answers %s: %w", path, err)
	}

	return answers, nil
}

func writeRecord(w io.Writer, record stepform.Record, output string) error {
	var (
		data []byte
		err  error
	)

	switch output {
	case OutputYAML:
		data, err = yaml.Marshal(record)
	default:
		data, err = json.MarshalIndent(record, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}

	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	_, err = w.Write(data)
	return err
}
