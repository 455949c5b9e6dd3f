package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type imagesOptions struct {
	limit  int
	offset int
}

func newImagesCmd(flags *rootFlags) *cobra.Command {
	opts := &imagesOptions{}

	cmd := &cobra.Command{
		Use:   "images <brand-id>",
		Short: "Browse a brand's generated images (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImages(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "Page offset")

	return cmd
}

func runImages(cmd *cobra.Command, flags *rootFlags, opts *imagesOptions, brandID string) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.CurrentSession()
	if err != nil {
		return err
	}
	if !sess.IsAdmin {
		return fmt.Errorf("access denied: the image browser is restricted to administrators")
	}

	st, err := app.Store()
	if err != nil {
		return err
	}

	images, err := st.ListImages(cmd.Context(), brandID, opts.limit, opts.offset)
	if err != nil {
		return err
	}
	total, err := st.CountImages(cmd.Context(), brandID)
	if err != nil {
		return err
	}

	if len(images) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No images in this range.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tURL\tCREATED")
	for _, img := range images {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", img.ID, img.Kind, img.URL, img.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d-%d of %d\n", opts.offset+1, opts.offset+len(images), total)
	return nil
}
