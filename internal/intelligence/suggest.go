package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/llm"
	"github.com/lucasvieira/iepdesk/internal/schema"
)

// maxSuggestions caps how many drafts a single suggestion round keeps.
const maxSuggestions = 5

// ActivityDraft is one suggested activity as emitted by the model, before
// it receives an id and persistence defaults.
type ActivityDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Discipline  string   `json:"discipline"`
	Skills      []string `json:"skills"`
	Needs       []string `json:"needs"`
	GoalTags    []string `json:"goalTags"`
}

// SuggestRequest describes one activity-suggestion round.
type SuggestRequest struct {
	Snapshot FormSnapshot
	// FieldID is the originating field: a goal field, the activities
	// field, or the UDL field.
	FieldID string
	// GoalText anchors the prompt for goal fields; ignored otherwise.
	GoalText string
}

// SuggestService proposes adapted teaching activities.
type SuggestService interface {
	SuggestActivities(ctx context.Context, req SuggestRequest) ([]domain.Activity, error)
}

type suggestService struct {
	client llm.Client
}

// NewSuggestService creates a SuggestService backed by the gateway client.
func NewSuggestService(client llm.Client) SuggestService {
	return &suggestService{client: client}
}

func (s *suggestService) SuggestActivities(ctx context.Context, req SuggestRequest) ([]domain.Activity, error) {
	subject, promptContext := s.anchor(req)
	udl := req.FieldID == schema.FieldUDL

	resp, err := s.client.Generate(ctx, llm.Request{
		Task:   llm.TaskSuggest,
		Prompt: suggestPrompt(subject, promptContext, udl),
	})
	if err != nil {
		return nil, fmt.Errorf("suggesting activities: %w", err)
	}

	drafts, err := llm.ExtractArray[[]ActivityDraft](resp.Text, validateDrafts)
	if err != nil {
		return nil, fmt.Errorf("parsing activity suggestions: %w", err)
	}
	if len(drafts) > maxSuggestions {
		drafts = drafts[:maxSuggestions]
	}

	tag := schema.GoalHorizonTag(req.FieldID)
	activities := make([]domain.Activity, 0, len(drafts))
	for _, d := range drafts {
		a := domain.Activity{
			Title:       strings.TrimSpace(d.Title),
			Description: strings.TrimSpace(d.Description),
			Discipline:  domain.NormalizeDiscipline(d.Discipline),
			Skills:      d.Skills,
			Needs:       d.Needs,
			GoalTags:    d.GoalTags,
		}
		if tag != "" {
			a.AddTag(tag)
		}
		activities = append(activities, a)
	}
	return activities, nil
}

// anchor picks the prompt subject and context block for the request: goal
// fields anchor on the goal text plus basic student info, the activities
// and UDL fields anchor on the full assembled context.
func (s *suggestService) anchor(req SuggestRequest) (subject, promptContext string) {
	if schema.IsGoalField(req.FieldID) {
		studentInfo := fmt.Sprintf("Student: %s\nDiagnosis: %s",
			valueOr(req.Snapshot.Fields[schema.FieldStudentName], "not informed"),
			valueOr(req.Snapshot.Fields[schema.FieldDiagnosis], "not informed"))
		return fmt.Sprintf("on the following goal from an Individualized Educational Plan: %q", req.GoalText),
			"Student information:\n" + studentInfo
	}

	aiCtx := AssembleContext(req.Snapshot.Fields, "", req.Snapshot.Docs)
	return "on the full plan context provided", aiCtx.Combined()
}

func validateDrafts(drafts []ActivityDraft) error {
	if len(drafts) == 0 {
		return fmt.Errorf("no activities in response")
	}
	for i, d := range drafts {
		if strings.TrimSpace(d.Title) == "" {
			return fmt.Errorf("activity %d has no title", i)
		}
	}
	return nil
}

func valueOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
