package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveID resolves a user-supplied id against a list of known ids:
// exact match first, then unique prefix.
func resolveID(input string, known []string, what string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID is required", what)
	}

	for _, id := range known {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range known {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", what, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", what, input, len(matches))
	}
}

func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	plans, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(plans))
	for _, p := range plans {
		ids = append(ids, p.ID)
	}
	return resolveID(input, ids, "plan")
}

func resolveActivityID(ctx context.Context, app *App, input string) (string, error) {
	activities, err := app.Bank.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	return resolveID(input, ids, "activity")
}
