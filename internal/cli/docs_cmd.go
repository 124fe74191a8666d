package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/lucasvieira/iepdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage support documents used as AI context",
	}

	cmd.AddCommand(
		newDocsImportCmd(app),
		newDocsListCmd(app),
		newDocsSelectCmd(app),
		newDocsRemoveCmd(app),
	)

	return cmd
}

func newDocsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import text files as support documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			for _, path := range args {
				doc, err := app.Docs.ImportFile(ctx, path)
				if err != nil {
					return err
				}
				fmt.Printf("Imported %s (%d chars)\n", doc.Name, len(doc.Content))
			}
			return nil
		},
	}
}

func newDocsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List support documents and their selection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := app.Docs.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDocList(docs))
			return nil
		},
	}
}

func newDocsSelectCmd(app *App) *cobra.Command {
	var deselect bool

	cmd := &cobra.Command{
		Use:   "select <name>",
		Short: "Include or exclude a document from AI context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Docs.SetSelected(context.Background(), args[0], !deselect); err != nil {
				return err
			}
			if deselect {
				fmt.Printf("%s excluded from AI context.\n", args[0])
			} else {
				fmt.Printf("%s included in AI context.\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&deselect, "deselect", false, "Exclude the document instead")
	return cmd
}

func newDocsRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete a support document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete document %q?", args[0])).
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
			if err := app.Docs.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Document deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}
