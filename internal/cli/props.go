package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/ghost/internal/harness"
)

// NewPropsCommand creates the props command.
func NewPropsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "List properties available to scenarios",
		Long: `List the property names a scenario case may use in its "property" field.
Cases can also use "constraint" with any CUE expression.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			names := harness.Properties()
			if rootOpts.Format == "json" {
				return formatter.Success(names)
			}
			for _, name := range names {
				if err := formatter.Success(name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
