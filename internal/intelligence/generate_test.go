package intelligence

import (
	"context"
	"testing"

	"github.com/lucasvieira/iepdesk/internal/llm"
	"github.com/lucasvieira/iepdesk/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateField_ExcludesOwnValueFromPrompt(t *testing.T) {
	client := &stubClient{response: "A structured diagnosis summary."}
	svc := NewGenerateService(client)

	snap := FormSnapshot{Fields: map[string]string{
		schema.FieldStudentName: "Ana",
		schema.FieldDiagnosis:   "stale diagnosis text",
	}}

	text, err := svc.GenerateField(context.Background(), snap, schema.FieldDiagnosis)
	require.NoError(t, err)
	assert.Equal(t, "A structured diagnosis summary.", text)

	prompt := client.lastPrompt()
	assert.Contains(t, prompt, "Student: Ana")
	assert.NotContains(t, prompt, "stale diagnosis text")
}

func TestGenerateField_UnknownField(t *testing.T) {
	svc := NewGenerateService(&stubClient{})
	_, err := svc.GenerateField(context.Background(), FormSnapshot{}, "no-such-field")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestGenerateField_PropagatesGatewayError(t *testing.T) {
	svc := NewGenerateService(&stubClient{err: llm.ErrRateLimited})
	_, err := svc.GenerateField(context.Background(), FormSnapshot{}, schema.FieldDiagnosis)
	require.ErrorIs(t, err, llm.ErrRateLimited)
}

func TestRefineText_DefaultsInstruction(t *testing.T) {
	client := &stubClient{response: "refined"}
	svc := NewGenerateService(client)

	_, err := svc.RefineText(context.Background(), FormSnapshot{}, schema.FieldGoalShort, "draft text", "   ")
	require.NoError(t, err)
	assert.Contains(t, client.lastPrompt(), DefaultRefineInstruction)
}

func TestRefineText_KeepsUserInstruction(t *testing.T) {
	client := &stubClient{response: "refined"}
	svc := NewGenerateService(client)

	_, err := svc.RefineText(context.Background(), FormSnapshot{}, schema.FieldGoalShort, "draft text", "make it shorter")
	require.NoError(t, err)
	assert.Contains(t, client.lastPrompt(), "make it shorter")
	assert.NotContains(t, client.lastPrompt(), DefaultRefineInstruction)
}

func TestGenerateFullPlan_IncludesEveryFilledField(t *testing.T) {
	client := &stubClient{response: "the full plan"}
	svc := NewGenerateService(client)

	snap := FormSnapshot{Fields: map[string]string{
		schema.FieldStudentName: "Bruno",
		schema.FieldGoalShort:   "hold a pencil with tripod grip",
	}}

	text, err := svc.GenerateFullPlan(context.Background(), snap)
	require.NoError(t, err)
	assert.Equal(t, "the full plan", text)
	assert.Contains(t, client.lastPrompt(), "Bruno")
	assert.Contains(t, client.lastPrompt(), "tripod grip")
}
