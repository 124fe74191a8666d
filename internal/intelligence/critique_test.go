package intelligence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lucasvieira/iepdesk/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const critiqueJSON = `{
  "isSpecific": {"critique": "Names the skill but not the setting.", "suggestion": "State where the skill is practiced."},
  "isMeasurable": {"critique": "No success threshold.", "suggestion": "Add a percentage or trial count."},
  "isAchievable": {"critique": "Fits the current assessment.", "suggestion": "Keep the scope as is."},
  "isRelevant": {"critique": "Aligned with the diagnosis.", "suggestion": "Reference the family context."},
  "isTimeBound": {"critique": "No deadline given.", "suggestion": "Anchor it to the review date."}
}`

func TestCritiqueGoal_ParsesRubric(t *testing.T) {
	client := &stubClient{response: "Here is my analysis:\n" + critiqueJSON + "\nHope this helps."}
	svc := NewCritiqueService(client)

	critique, err := svc.CritiqueGoal(context.Background(), "read two-syllable words by June")
	require.NoError(t, err)
	assert.Equal(t, "No success threshold.", critique.Measurable.Critique)
	assert.Equal(t, "Anchor it to the review date.", critique.TimeBound.Suggestion)
	assert.Contains(t, client.lastPrompt(), "read two-syllable words by June")
}

func TestCritiqueGoal_EmptyGoal(t *testing.T) {
	svc := NewCritiqueService(&stubClient{})
	_, err := svc.CritiqueGoal(context.Background(), "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestCritiqueGoal_RejectsIncompleteRubric(t *testing.T) {
	client := &stubClient{response: `{"isSpecific": {"critique": "ok", "suggestion": "ok"}}`}
	svc := NewCritiqueService(client)

	_, err := svc.CritiqueGoal(context.Background(), "some goal")
	require.ErrorIs(t, err, llm.ErrMalformedResponse)
}

func TestCritiqueGoal_ThroughHTTPGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "success", "response": "Sure! ` +
			`{\"isSpecific\":{\"critique\":\"a\",\"suggestion\":\"b\"},` +
			`\"isMeasurable\":{\"critique\":\"c\",\"suggestion\":\"d\"},` +
			`\"isAchievable\":{\"critique\":\"e\",\"suggestion\":\"f\"},` +
			`\"isRelevant\":{\"critique\":\"g\",\"suggestion\":\"h\"},` +
			`\"isTimeBound\":{\"critique\":\"i\",\"suggestion\":\"j\"}}"}`))
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	svc := NewCritiqueService(llm.NewClient(cfg, nil))

	critique, err := svc.CritiqueGoal(context.Background(), "participate in group reading")
	require.NoError(t, err)
	assert.Equal(t, "a", critique.Specific.Critique)
	assert.Equal(t, "j", critique.TimeBound.Suggestion)
}
