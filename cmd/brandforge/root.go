package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "brandforge",
		Short:         "Brandforge turns brand identities into ad creatives",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation launches the studio.
			if len(args) == 0 {
				return runStudio(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the settings file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newStudioCmd(flags))
	cmd.AddCommand(newLoginCmd(flags))
	cmd.AddCommand(newLogoutCmd(flags))
	cmd.AddCommand(newBrandsCmd(flags))
	cmd.AddCommand(newStylesCmd(flags))
	cmd.AddCommand(newTemplatesCmd(flags))
	cmd.AddCommand(newDesignsCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newAccountCmd(flags))
	cmd.AddCommand(newImagesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
