package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/llm"
	"github.com/lucasvieira/iepdesk/internal/schema"
)

// FormSnapshot is the read-only view of the editor state the AI services
// build context from.
type FormSnapshot struct {
	Fields map[string]string
	Docs   []domain.SupportDocument
}

// DefaultRefineInstruction is used when the user submits an empty
// refinement instruction.
const DefaultRefineInstruction = "Refine and improve this text."

// GenerateService drafts field content, refines existing drafts, and
// produces whole-document text.
type GenerateService interface {
	// GenerateField drafts the content of one field from the full plan
	// context, excluding the field's own stale value.
	GenerateField(ctx context.Context, snap FormSnapshot, fieldID string) (string, error)

	// RefineText reworks a draft under a free-text instruction. An empty
	// instruction falls back to DefaultRefineInstruction.
	RefineText(ctx context.Context, snap FormSnapshot, fieldID, current, instruction string) (string, error)

	// GenerateFullPlan produces the complete document text. Context
	// excludes nothing.
	GenerateFullPlan(ctx context.Context, snap FormSnapshot) (string, error)
}

type generateService struct {
	client llm.Client
}

// NewGenerateService creates a GenerateService backed by the gateway client.
func NewGenerateService(client llm.Client) GenerateService {
	return &generateService{client: client}
}

func (s *generateService) GenerateField(ctx context.Context, snap FormSnapshot, fieldID string) (string, error) {
	field, ok := schema.FieldByID(fieldID)
	if !ok {
		return "", fmt.Errorf("unknown field %q", fieldID)
	}

	aiCtx := AssembleContext(snap.Fields, fieldID, snap.Docs)
	resp, err := s.client.Generate(ctx, llm.Request{
		Task:   llm.TaskFieldGenerate,
		Prompt: fieldGeneratePrompt(field.Label, aiCtx),
	})
	if err != nil {
		return "", fmt.Errorf("generating field %q: %w", field.Label, err)
	}
	return resp.Text, nil
}

func (s *generateService) RefineText(ctx context.Context, snap FormSnapshot, fieldID, current, instruction string) (string, error) {
	field, ok := schema.FieldByID(fieldID)
	if !ok {
		return "", fmt.Errorf("unknown field %q", fieldID)
	}
	if strings.TrimSpace(instruction) == "" {
		instruction = DefaultRefineInstruction
	}

	aiCtx := AssembleContext(snap.Fields, fieldID, snap.Docs)
	resp, err := s.client.Generate(ctx, llm.Request{
		Task:   llm.TaskRefine,
		Prompt: refinePrompt(field.Label, current, instruction, aiCtx),
	})
	if err != nil {
		return "", fmt.Errorf("refining field %q: %w", field.Label, err)
	}
	return resp.Text, nil
}

func (s *generateService) GenerateFullPlan(ctx context.Context, snap FormSnapshot) (string, error) {
	aiCtx := AssembleContext(snap.Fields, "", snap.Docs)
	resp, err := s.client.Generate(ctx, llm.Request{
		Task:   llm.TaskFullPlan,
		Prompt: fullPlanPrompt(aiCtx),
	})
	if err != nil {
		return "", fmt.Errorf("generating full plan: %w", err)
	}
	return resp.Text, nil
}
