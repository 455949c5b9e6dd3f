package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type accountOptions struct {
	portal bool
}

func newAccountCmd(flags *rootFlags) *cobra.Command {
	opts := &accountOptions{}

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Show credits and plans for the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccount(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.portal, "portal", false, "Print a billing portal URL")

	return cmd
}

func runAccount(cmd *cobra.Command, flags *rootFlags, opts *accountOptions) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	sess, err := app.CurrentSession()
	if err != nil {
		return err
	}

	if opts.portal {
		billingClient, err := app.Billing()
		if err != nil {
			return err
		}
		url, err := billingClient.PortalURL(cmd.Context(), sess.AccessToken)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Manage your subscription at:\n\n  %s\n", url)
		return nil
	}

	st, err := app.Store()
	if err != nil {
		return err
	}

	balance, err := st.GetCredits(cmd.Context(), sess.UserID)
	if err != nil {
		return err
	}
	plans, err := st.ListPlans(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", sess.Email)
	fmt.Fprintf(cmd.OutOrStdout(), "Credits: %d\n", balance)

	if len(plans) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLAN\tCREDITS/MO\tPRICE")
		for _, plan := range plans {
			fmt.Fprintf(w, "%s\t%d\t$%d.%02d\n", plan.Name, plan.MonthlyCredits, plan.PriceCents/100, plan.PriceCents%100)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
