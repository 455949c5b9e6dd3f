package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forgeline/brandforge/internal/store"
)

type loginOptions struct {
	email  string
	google bool
	signup bool
}

func newLoginCmd(flags *rootFlags) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.email, "email", "e", "", "Account email")
	cmd.Flags().BoolVar(&opts.google, "google", false, "Sign in with Google instead of a password")
	cmd.Flags().BoolVar(&opts.signup, "signup", false, "Create a new account")

	return cmd
}

func runLogin(cmd *cobra.Command, flags *rootFlags, opts *loginOptions) error {
	app, err := newAppContext(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	provider, err := app.AuthProvider()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if opts.google {
		url, err := provider.SignInWithGoogle(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser to finish signing in:\n\n  %s\n", url)
		return nil
	}

	if strings.TrimSpace(opts.email) == "" {
		return fmt.Errorf("--email is required for password sign-in")
	}

	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	authenticate := provider.SignIn
	if opts.signup {
		authenticate = provider.SignUp
	}
	sess, err := authenticate(ctx, opts.email, password)
	if err != nil {
		return err
	}
	if err := app.SessionCache().Save(sess); err != nil {
		return err
	}

	if opts.signup {
		st, err := app.Store()
		if err != nil {
			return err
		}
		if err := grantStarterCredits(ctx, st, sess.UserID); err != nil {
			return err
		}
	}

	app.Logger.WithFields(map[string]any{"user": sess.Email}).Info("signed in")
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", sess.Email)
	return nil
}

// grantStarterCredits gives a brand-new account the cheapest plan's
// monthly allowance so the account page is meaningful before the
// first sync.
func grantStarterCredits(ctx context.Context, st *store.Store, userID string) error {
	plans, err := st.ListPlans(ctx)
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		return nil
	}
	return st.SetCredits(ctx, userID, plans[0].MonthlyCredits)
}

func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("password sign-in needs an interactive terminal")
	}

	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

func newLogoutCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			defer app.Close()

			// Best effort remote sign-out; the local session always goes.
			if provider, err := app.AuthProvider(); err == nil {
				_ = provider.SignOut(cmd.Context())
			}

			if err := app.SessionCache().Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
