package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/llm"
)

// AnalysisService produces a whole-plan multidisciplinary review.
type AnalysisService interface {
	AnalyzePlan(ctx context.Context, snap FormSnapshot) (*domain.PlanAnalysis, error)
}

type analysisService struct {
	client llm.Client
}

// NewAnalysisService creates an AnalysisService backed by the gateway client.
func NewAnalysisService(client llm.Client) AnalysisService {
	return &analysisService{client: client}
}

func (s *analysisService) AnalyzePlan(ctx context.Context, snap FormSnapshot) (*domain.PlanAnalysis, error) {
	aiCtx := AssembleContext(snap.Fields, "", snap.Docs)
	resp, err := s.client.Generate(ctx, llm.Request{
		Task:   llm.TaskAnalysis,
		Prompt: analysisPrompt(aiCtx),
	})
	if err != nil {
		return nil, fmt.Errorf("analyzing plan: %w", err)
	}

	analysis, err := llm.ExtractObject[domain.PlanAnalysis](resp.Text, validateAnalysis)
	if err != nil {
		return nil, fmt.Errorf("parsing analysis response: %w", err)
	}
	return &analysis, nil
}

// validateAnalysis requires at least the narrative sections to be present.
func validateAnalysis(a domain.PlanAnalysis) error {
	if strings.TrimSpace(a.GoalAnalysis) == "" &&
		strings.TrimSpace(a.PedagogicalAnalysis) == "" &&
		len(a.Strengths) == 0 && len(a.Weaknesses) == 0 {
		return fmt.Errorf("analysis response carries no content")
	}
	return nil
}
