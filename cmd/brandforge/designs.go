package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forgeline/brandforge/internal/design"
)

func newDesignsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "designs",
		Short: "Manage a brand's designs",
	}

	cmd.AddCommand(newDesignsListCmd(flags))
	cmd.AddCommand(newDesignsNewCmd(flags))

	return cmd
}

type designsListOptions struct {
	jsonOutput bool
}

func newDesignsListCmd(flags *rootFlags) *cobra.Command {
	opts := &designsListOptions{}

	cmd := &cobra.Command{
		Use:   "list <brand-id>",
		Short: "List a brand's designs, most recently edited first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignsList(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runDesignsList(cmd *cobra.Command, flags *rootFlags, opts *designsListOptions, brandID string) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	st, err := app.Store()
	if err != nil {
		return err
	}

	designs, err := st.ListDesigns(cmd.Context(), brandID, 100)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(designs)
	}

	if len(designs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No designs for this brand yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTEMPLATE\tHEADLINE\tUPDATED")
	for _, dsg := range designs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			dsg.ID, dsg.TemplateID, dsg.Slot("headline"), dsg.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func newDesignsNewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <brand-id> <template-id>",
		Short: "Create a blank design from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesignsNew(cmd, flags, args[0], args[1])
		},
	}

	return cmd
}

func runDesignsNew(cmd *cobra.Command, flags *rootFlags, brandID, templateID string) error {
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

	if _, ok := cat.Get(templateID); !ok {
		return fmt.Errorf("unknown template %q (see `brandforge templates`)", templateID)
	}

	brand, err := st.GetBrand(cmd.Context(), brandID)
	if err != nil {
		return err
	}

	// A new design starts with the brand's tokens and empty slots; the
	// renderer substitutes placeholders until the slots are filled.
	dsg, err := st.SaveDesign(cmd.Context(), design.Design{
		BrandID:    brand.ID,
		TemplateID: templateID,
		Slots:      map[string]string{},
		Tokens:     brand.Tokens,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created design %s\n", dsg.ID)
	return nil
}
