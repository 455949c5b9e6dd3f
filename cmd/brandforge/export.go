package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeline/brandforge/internal/export"
)

type exportOptions struct {
	format string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <design-id>",
		Short: "Export a design as HTML or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "html", "Export format: html or png")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions, designID string) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

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
	exporter, err := app.Exporter()
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

	path, err := exporter.Export(cmd.Context(), tmpl, dsg, format)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}
