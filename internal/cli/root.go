package cli

import (
	"github.com/lucasvieira/iepdesk/internal/intelligence"
	"github.com/lucasvieira/iepdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans service.PlanService
	Bank  service.ActivityService
	Docs  service.SupportDocService

	Generate intelligence.GenerateService
	Critique intelligence.CritiqueService
	Suggest  intelligence.SuggestService
	Analyze  intelligence.AnalysisService

	// IsInteractive reports whether stdin is a terminal; the editor
	// refuses to start otherwise.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "iepdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "iepdesk",
		Short: "AI-assisted Individualized Educational Plan editor",
	}

	root.AddCommand(
		newEditCmd(app),
		newPlanCmd(app),
		newBankCmd(app),
		newDocsCmd(app),
	)

	return root
}
