package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forgeline/brandforge/internal/export"
	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/tui/editor"
)

// editRegenerateCost mirrors the studio's per-regeneration debit on
// the local credit replica.
const editRegenerateCost = 1

func newEditCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <design-id>",
		Short: "Edit a design's slots interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(flags, args[0])
		},
	}
}

func runEdit(flags *rootFlags, designID string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the editor needs an interactive terminal; use render and export instead")
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
	// Regeneration stays optional; an unconfigured endpoint surfaces as
	// an inline message when the key is pressed.
	gen, genErr := app.Generate()

	dsg, err := st.GetDesign(context.Background(), designID)
	if err != nil {
		return err
	}
	tmpl, ok := cat.Get(dsg.TemplateID)
	if !ok {
		return fmt.Errorf("design references unknown template %q", dsg.TemplateID)
	}

	callbacks := editor.Callbacks{
		OnUpdateSlot: func(key, value string) error {
			ctx, cancel := editTimeout()
			defer cancel()
			_, err := st.UpdateDesignSlot(ctx, designID, key, value)
			return err
		},
		OnRegenerateImage: func(key string) error {
			if gen == nil {
				return genErr
			}
			ctx, cancel := editTimeout()
			defer cancel()
			if _, err := st.SpendCredits(ctx, sess.UserID, editRegenerateCost); err != nil {
				return err
			}
			return gen.RegenerateImage(ctx, sess.AccessToken, designID, key)
		},
		OnRegenerateCopy: func(key string) error {
			if gen == nil {
				return genErr
			}
			ctx, cancel := editTimeout()
			defer cancel()
			if _, err := st.SpendCredits(ctx, sess.UserID, editRegenerateCost); err != nil {
				return err
			}
			return gen.RegenerateCopy(ctx, sess.AccessToken, designID, key)
		},
		OnExport: func(format export.Format) (string, error) {
			ctx, cancel := editTimeout()
			defer cancel()
			current, err := st.GetDesign(ctx, designID)
			if err != nil {
				return "", err
			}
			return exporter.Export(ctx, tmpl, current, format)
		},
	}

	// Row changes on the open design (own saves, regeneration results)
	// refresh the editor while it runs.
	sub := app.Hub.Subscribe("designs", realtime.Filter{Column: "id", Equals: designID})
	defer sub.Unsubscribe()
	refresh := func() tea.Msg {
		for range sub.C {
			ctx, cancel := editTimeout()
			current, err := st.GetDesign(ctx, designID)
			cancel()
			if err != nil {
				continue
			}
			return editor.DesignUpdatedMsg{Design: current}
		}
		return nil
	}

	program := tea.NewProgram(editApp{
		editor:  editor.NewModel(tmpl, dsg, callbacks),
		refresh: refresh,
	}, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func editTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// editApp adapts the editor model into a standalone program: leaving
// the editor quits instead of returning to the studio.
type editApp struct {
	editor  editor.Model
	refresh tea.Cmd
}

func (a editApp) Init() tea.Cmd {
	if a.refresh != nil {
		return tea.Batch(a.editor.Init(), a.refresh)
	}
	return a.editor.Init()
}

func (a editApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editor.BackMsg:
		return a, tea.Quit
	case editor.DesignUpdatedMsg:
		var cmd tea.Cmd
		a.editor, cmd = a.editor.Update(msg)
		if a.refresh != nil {
			return a, tea.Batch(cmd, a.refresh)
		}
		return a, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a editApp) View() string {
	return a.editor.View()
}
