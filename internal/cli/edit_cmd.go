package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/editor"
	"github.com/lucasvieira/iepdesk/internal/intelligence"
	"github.com/spf13/cobra"
)

// snapshotOf builds the AI context snapshot used by plan-level commands.
func snapshotOf(fields map[string]string, docs []domain.SupportDocument) intelligence.FormSnapshot {
	return intelligence.FormSnapshot{Fields: fields, Docs: docs}
}

func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [plan-id]",
		Short: "Open the interactive plan editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the editor needs an interactive terminal")
			}

			session := editor.NewSession(editor.Deps{
				Generate: app.Generate,
				Critique: app.Critique,
				Suggest:  app.Suggest,
				Analyze:  app.Analyze,
				Plans:    app.Plans,
				Docs:     app.Docs,
				Bank:     app.Bank,
			})

			if len(args) == 1 {
				ctx := context.Background()
				id, err := resolvePlanID(ctx, app, args[0])
				if err != nil {
					return err
				}
				p, err := app.Plans.GetByID(ctx, id)
				if err != nil {
					return err
				}
				session.Load(p)
			}

			m := newEditModel(session)
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
