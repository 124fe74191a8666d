package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/lucasvieira/iepdesk/internal/cli/formatter"
	"github.com/lucasvieira/iepdesk/internal/schema"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage stored plans",
	}

	cmd.AddCommand(
		newPlanListCmd(app),
		newPlanInspectCmd(app),
		newPlanAnalyzeCmd(app),
		newPlanExportCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlanList(plans))
			return nil
		},
	}
}

func newPlanInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <plan-id>",
		Short: "Show one plan section by section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(p))
			for _, goalID := range schema.GoalFieldIDs() {
				if c, ok := p.GoalCritiques[goalID]; ok {
					fmt.Println(formatter.FormatCritique(schema.Label(goalID), c))
				}
			}
			if p.Analysis != nil {
				fmt.Println(formatter.FormatAnalysis(p.Analysis))
			}
			return nil
		},
	}
}

func newPlanAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <plan-id>",
		Short: "Run the multidisciplinary review of a stored plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			docs, err := app.Docs.List(ctx)
			if err != nil {
				return err
			}

			analysis, err := app.Analyze.AnalyzePlan(ctx, snapshotOf(p.Fields, docs))
			if err != nil {
				return err
			}
			p.Analysis = analysis
			if _, err := app.Plans.Upsert(ctx, p); err != nil {
				return err
			}
			fmt.Println(formatter.FormatAnalysis(analysis))
			return nil
		},
	}
}

func newPlanExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <plan-id>",
		Short: "Generate the complete plan document as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}
			docs, err := app.Docs.List(ctx)
			if err != nil {
				return err
			}

			text, err := app.Generate.GenerateFullPlan(ctx, snapshotOf(p.Fields, docs))
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(text)
				return nil
			}
			if err := os.WriteFile(out, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write the document to a file instead of stdout")
	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <plan-id>",
		Short: "Delete a stored plan (bank activities are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !force {
				p, err := app.Plans.GetByID(ctx, id)
				if err != nil {
					return err
				}
				name := p.StudentName
				if strings.TrimSpace(name) == "" {
					name = "(unnamed)"
				}
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete the plan for %s?", name)).
						Description("Activities saved to the bank are not removed.").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Plans.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Plan deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
