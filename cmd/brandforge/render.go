package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeline/brandforge/internal/render"
	"github.com/forgeline/brandforge/internal/ui/preview"
)

type renderOptions struct {
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <design-id>",
		Short: "Render a design preview to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", preview.DefaultWidth, "Preview width in columns")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, designID string) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	st, err := app.Store()
	if err != nil {
		return err
	}
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	dsg, err := st.GetDesign(cmd.Context(), designID)
	if err != nil {
		return err
	}
	tmpl, ok := cat.Get(dsg.TemplateID)
	if !ok {
		return fmt.Errorf("design references unknown template %q", dsg.TemplateID)
	}

	layout := render.Render(tmpl, dsg)
	fmt.Fprintln(cmd.OutOrStdout(), preview.View(layout, opts.width))
	return nil
}
