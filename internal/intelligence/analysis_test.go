package intelligence

import (
	"context"
	"testing"

	"github.com/lucasvieira/iepdesk/internal/llm"
	"github.com/lucasvieira/iepdesk/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePlan_ParsesReview(t *testing.T) {
	response := `Here is the review.
{
  "strengths": ["clear goals"],
  "weaknesses": ["no review criteria"],
  "goalAnalysis": "Goals are specific but lack deadlines.",
  "pedagogicalAnalysis": "Strategies fit the assessment.",
  "psychopedagogicalAnalysis": "Interventions match the diagnosis.",
  "suggestions": ["add a review date"]
}`
	client := &stubClient{response: response}
	svc := NewAnalysisService(client)

	snap := FormSnapshot{Fields: map[string]string{
		schema.FieldStudentName: "Carla",
		schema.FieldGoalShort:   "copy her name",
	}}

	analysis, err := svc.AnalyzePlan(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, []string{"clear goals"}, analysis.Strengths)
	assert.Equal(t, "Goals are specific but lack deadlines.", analysis.GoalAnalysis)
	assert.Contains(t, client.lastPrompt(), "Carla")
}

func TestAnalyzePlan_RejectsEmptyReview(t *testing.T) {
	svc := NewAnalysisService(&stubClient{response: `{"strengths": [], "weaknesses": []}`})

	_, err := svc.AnalyzePlan(context.Background(), FormSnapshot{})
	require.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestAnalyzePlan_PropagatesGatewayError(t *testing.T) {
	svc := NewAnalysisService(&stubClient{err: llm.ErrNetwork})

	_, err := svc.AnalyzePlan(context.Background(), FormSnapshot{})
	require.ErrorIs(t, err, llm.ErrNetwork)
}
