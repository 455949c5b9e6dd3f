package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forgeline/brandforge/internal/render"
)

type templatesOptions struct {
	query      string
	jsonOutput bool
}

func newTemplatesCmd(flags *rootFlags) *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Fuzzy-filter templates")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runTemplates(cmd *cobra.Command, flags *rootFlags, opts *templatesOptions) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	templates := cat.Search(opts.query)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(templates)
	}

	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tLAYOUT\tSLOTS\tSUPPORTED")
	for _, tmpl := range templates {
		supported := "yes"
		if !render.Supported(tmpl.Type, tmpl.Style.Layout) {
			supported = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			tmpl.ID, tmpl.Name, tmpl.Type, tmpl.Style.Layout, len(tmpl.Slots), supported)
	}
	return w.Flush()
}
