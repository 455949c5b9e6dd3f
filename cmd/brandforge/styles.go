package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/forgeline/brandforge/internal/design"
	"github.com/forgeline/brandforge/internal/store"
)

func newStylesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Manage a brand's saved styles",
	}

	cmd.AddCommand(newStylesListCmd(flags))
	cmd.AddCommand(newStylesSaveCmd(flags))

	return cmd
}

type stylesListOptions struct {
	jsonOutput bool
}

func newStylesListCmd(flags *rootFlags) *cobra.Command {
	opts := &stylesListOptions{}

	cmd := &cobra.Command{
		Use:   "list <brand-id>",
		Short: "List a brand's styles, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStylesList(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runStylesList(cmd *cobra.Command, flags *rootFlags, opts *stylesListOptions, brandID string) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	if _, err := app.CurrentSession(); err != nil {
		return err
	}
	st, err := app.Store()
	if err != nil {
		return err
	}

	styles, err := st.ListStyles(cmd.Context(), brandID)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(styles)
	}

	if len(styles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No styles saved for this brand.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOLORS\tFONTS\tCREATED")
	for _, style := range styles {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			style.ID, style.Name, len(style.Tokens.Colors), len(style.Tokens.Fonts),
			style.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

type stylesSaveOptions struct {
	name       string
	tokensPath string
}

func newStylesSaveCmd(flags *rootFlags) *cobra.Command {
	opts := &stylesSaveOptions{}

	cmd := &cobra.Command{
		Use:   "save <brand-id>",
		Short: "Save a named token override set for a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStylesSave(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Style name (required)")
	cmd.Flags().StringVar(&opts.tokensPath, "tokens", "", "YAML file with the style's token overrides")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runStylesSave(cmd *cobra.Command, flags *rootFlags, opts *stylesSaveOptions, brandID string) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	if _, err := app.CurrentSession(); err != nil {
		return err
	}
	st, err := app.Store()
	if err != nil {
		return err
	}

	var tokens design.TokenSet
	if opts.tokensPath != "" {
		data, err := os.ReadFile(opts.tokensPath)
		if err != nil {
			return fmt.Errorf("reading tokens file: %w", err)
		}
		if err := yaml.Unmarshal(data, &tokens); err != nil {
			return fmt.Errorf("parsing tokens file: %w", err)
		}
	}

	style, err := st.SaveStyle(cmd.Context(), store.Style{
		BrandID: brandID,
		Name:    opts.name,
		Tokens:  tokens,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved style %s (%s)\n", style.Name, style.ID)
	return nil
}
