package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/llm"
)

// CritiqueService reviews goal text against the fixed five-criterion rubric.
type CritiqueService interface {
	CritiqueGoal(ctx context.Context, goalText string) (*domain.GoalCritique, error)
}

type critiqueService struct {
	client llm.Client
}

// NewCritiqueService creates a CritiqueService backed by the gateway client.
func NewCritiqueService(client llm.Client) CritiqueService {
	return &critiqueService{client: client}
}

func (s *critiqueService) CritiqueGoal(ctx context.Context, goalText string) (*domain.GoalCritique, error) {
	if strings.TrimSpace(goalText) == "" {
		return nil, fmt.Errorf("goal text is empty")
	}

	resp, err := s.client.Generate(ctx, llm.Request{
		Task:   llm.TaskCritique,
		Prompt: critiquePrompt(goalText),
	})
	if err != nil {
		return nil, fmt.Errorf("critiquing goal: %w", err)
	}

	critique, err := llm.ExtractObject[domain.GoalCritique](resp.Text, validateCritique)
	if err != nil {
		return nil, fmt.Errorf("parsing critique response: %w", err)
	}
	return &critique, nil
}

// validateCritique requires every rubric criterion to carry a critique.
func validateCritique(c domain.GoalCritique) error {
	for _, crit := range c.Criteria() {
		if strings.TrimSpace(crit.Review.Critique) == "" {
			return fmt.Errorf("criterion %s has no critique", crit.Name)
		}
	}
	return nil
}
