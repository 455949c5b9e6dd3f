package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forgeline/brandforge/internal/tui/studio"
)

func newStudioCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "studio",
		Short: "Launch the interactive studio",
		Long:  `Launch the interactive studio to browse brands, edit designs and manage the account.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudio(flags)
		},
	}
}

func runStudio(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the studio needs an interactive terminal; use the subcommands instead")
	}

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
	cat, err := app.Catalog()
	if err != nil {
		return err
	}
	exporter, err := app.Exporter()
	if err != nil {
		return err
	}

	// Template edits on disk show up in the running studio.
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if reloaded, err := cat.Watch(watchCtx); err != nil {
		app.Logger.Error(err, "catalog watcher unavailable")
	} else {
		go func() {
			for range reloaded {
				app.Logger.Debug("template catalog reloaded")
			}
		}()
	}

	services := studio.Services{
		Store:     st,
		Templates: cat,
		Hub:       app.Hub,
		Exporter:  exporter,
		Logger:    app.Logger.WithComponent("studio"),
		Session:   sess,
	}
	if billingClient, err := app.Billing(); err == nil {
		services.Billing = billingClient
	}
	if generateClient, err := app.Generate(); err == nil {
		services.Generate = generateClient
	}

	app.Logger.WithFields(map[string]any{"user": sess.Email}).Info("launching studio")

	program := tea.NewProgram(studio.NewModel(services), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run studio: %w", err)
	}
	return nil
}
