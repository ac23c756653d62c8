package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enetx/stepform"
)

func newGraphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the step flow as a Graphviz DOT graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), string(stepform.New().ToDOT()))
			return err
		},
	}
}
