package cli

import (
	"context"
	"fmt"

	"github.com/lucasvieira/iepdesk/internal/cli/formatter"
	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ratingValue is a pflag.Value restricted to the known rating set.
type ratingValue domain.Rating

var _ pflag.Value = (*ratingValue)(nil)

func (r *ratingValue) String() string { return string(*r) }

func (r *ratingValue) Set(s string) error {
	switch domain.Rating(s) {
	case domain.RatingLike, domain.RatingDislike, domain.RatingNone:
		*r = ratingValue(s)
		return nil
	}
	return fmt.Errorf("rating must be %q or %q", domain.RatingLike, domain.RatingDislike)
}

func (r *ratingValue) Type() string { return "rating" }

func newBankCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage the reusable activity bank",
	}

	cmd.AddCommand(
		newBankListCmd(app),
		newBankInspectCmd(app),
		newBankFavoriteCmd(app),
		newBankRateCmd(app),
		newBankRemoveCmd(app),
	)

	return cmd
}

func newBankListCmd(app *App) *cobra.Command {
	var favoritesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Bank.List(context.Background())
			if err != nil {
				return err
			}
			if favoritesOnly {
				kept := activities[:0]
				for _, a := range activities {
					if a.IsFavorited {
						kept = append(kept, a)
					}
				}
				activities = kept
			}
			fmt.Print(formatter.FormatActivityList(activities))
			return nil
		},
	}

	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "Show only favorited activities")
	return cmd
}

func newBankInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <activity-id>",
		Short: "Show one activity in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Bank.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatActivity(a))
			return nil
		},
	}
}

func newBankFavoriteCmd(app *App) *cobra.Command {
	var unset bool

	cmd := &cobra.Command{
		Use:   "favorite <activity-id>",
		Short: "Mark or unmark an activity as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Bank.SetFavorited(ctx, id, !unset); err != nil {
				return err
			}
			if unset {
				fmt.Println("Removed from favorites.")
			} else {
				fmt.Println("Added to favorites.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unset, "unset", false, "Remove the favorite mark")
	return cmd
}

func newBankRateCmd(app *App) *cobra.Command {
	var rating ratingValue

	cmd := &cobra.Command{
		Use:   "rate <activity-id>",
		Short: "Rate an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Bank.SetRating(ctx, id, domain.Rating(rating)); err != nil {
				return err
			}
			fmt.Println("Rating saved.")
			return nil
		},
	}

	cmd.Flags().Var(&rating, "rating", `Rating ("like" or "dislike", empty clears)`)
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newBankRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <activity-id>",
		Short: "Delete an activity from the bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Bank.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Activity deleted.")
			return nil
		},
	}
}
