package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lucasvieira/iepdesk/internal/cli"
	"github.com/lucasvieira/iepdesk/internal/db"
	"github.com/lucasvieira/iepdesk/internal/intelligence"
	"github.com/lucasvieira/iepdesk/internal/llm"
	"github.com/lucasvieira/iepdesk/internal/repository"
	"github.com/lucasvieira/iepdesk/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.iepdesk/iepdesk.db
	dbPath := os.Getenv("IEPDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".iepdesk", "iepdesk.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	docRepo := repository.NewSQLiteSupportDocRepo(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}
	client := llm.NewClient(llmCfg, observer)

	app := &cli.App{
		Plans: service.NewPlanService(planRepo, useCaseObserver),
		Bank:  service.NewActivityService(activityRepo, useCaseObserver),
		Docs:  service.NewSupportDocService(docRepo, useCaseObserver),

		Generate: intelligence.NewGenerateService(client),
		Critique: intelligence.NewCritiqueService(client),
		Suggest:  intelligence.NewSuggestService(client),
		Analyze:  intelligence.NewAnalysisService(client),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
