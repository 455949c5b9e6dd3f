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

func newBrandsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brands",
		Short: "Manage your brands",
	}

	cmd.AddCommand(newBrandsListCmd(flags))
	cmd.AddCommand(newBrandsAddCmd(flags))
	cmd.AddCommand(newBrandsRmCmd(flags))

	return cmd
}

type brandsListOptions struct {
	jsonOutput bool
	limit      int
}

func newBrandsListCmd(flags *rootFlags) *cobra.Command {
	opts := &brandsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your brands, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandsList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&opts.limit, "limit", 50, "Maximum number of brands to show")

	return cmd
}

func runBrandsList(cmd *cobra.Command, flags *rootFlags, opts *brandsListOptions) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.CurrentSession()
	if err != nil {
		return err
	}
	st, err := app.Store()
	if err != nil {
		return err
	}

	brands, err := st.ListBrands(cmd.Context(), sess.UserID, opts.limit)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(brands)
	}

	if len(brands) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No brands yet. Run `brandforge brands add` to create one.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSITE\tCREATED")
	for _, brand := range brands {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", brand.ID, brand.Name, brand.SiteURL, brand.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

type brandsAddOptions struct {
	name       string
	siteURL    string
	logoURL    string
	tokensPath string
}

func newBrandsAddCmd(flags *rootFlags) *cobra.Command {
	opts := &brandsAddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a brand with its design tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandsAdd(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Brand name (required)")
	cmd.Flags().StringVar(&opts.siteURL, "site", "", "Brand website URL")
	cmd.Flags().StringVar(&opts.logoURL, "logo", "", "Brand logo URL")
	cmd.Flags().StringVar(&opts.tokensPath, "tokens", "", "YAML file with the brand's design tokens")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runBrandsAdd(cmd *cobra.Command, flags *rootFlags, opts *brandsAddOptions) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.CurrentSession()
	if err != nil {
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

	brand, err := st.UpsertBrand(cmd.Context(), store.Brand{
		UserID:  sess.UserID,
		Name:    opts.name,
		SiteURL: opts.siteURL,
		LogoURL: opts.logoURL,
		Tokens:  tokens,
	})
	if err != nil {
		return err
	}

	// The logo is also an asset row so it shows up in the image browser.
	if opts.logoURL != "" {
		if _, err := st.InsertImage(cmd.Context(), store.Image{
			BrandID: brand.ID,
			URL:     opts.logoURL,
			Kind:    "logo",
		}); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added brand %s (%s)\n", brand.Name, brand.ID)
	return nil
}

func newBrandsRmCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <brand-id>",
		Short: "Delete a brand and its assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandsRm(cmd, flags, args[0])
		},
	}
}

func runBrandsRm(cmd *cobra.Command, flags *rootFlags, brandID string) error {
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

	if err := st.DeleteBrand(cmd.Context(), brandID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted brand %s\n", brandID)
	return nil
}
