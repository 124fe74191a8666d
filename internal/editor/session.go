package editor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/intelligence"
	"github.com/lucasvieira/iepdesk/internal/schema"
	"github.com/lucasvieira/iepdesk/internal/service"
)

// ActionKind identifies one class of AI action for loading tracking.
type ActionKind string

const (
	ActionGenerate ActionKind = "generate"
	ActionRefine   ActionKind = "refine"
	ActionCritique ActionKind = "critique"
	ActionSuggest  ActionKind = "suggest"
	ActionFullPlan ActionKind = "full-plan"
	ActionAnalyze  ActionKind = "analyze"
)

// Plan-level actions use an empty field id in the loading key.
type actionKey struct {
	fieldID string
	kind    ActionKind
}

// Deps collects the collaborators a Session orchestrates.
type Deps struct {
	Generate intelligence.GenerateService
	Critique intelligence.CritiqueService
	Suggest  intelligence.SuggestService
	Analyze  intelligence.AnalysisService
	Plans    service.PlanService
	Docs     service.SupportDocService
	Bank     service.ActivityService
}

// Session owns the state of one open plan: field values, AI provenance
// marks, critiques, suggestions, and per-(field, action) loading flags.
//
// All methods are safe for concurrent completion. Conflicting writes
// resolve last-write-wins; there is no merge.
type Session struct {
	deps Deps

	mu      sync.Mutex
	plan    *domain.Plan
	loading map[actionKey]bool

	// saveMu serializes whole persist rounds so two overlapping first
	// saves cannot both see an empty id and create duplicate records.
	saveMu sync.Mutex

	editingField string
	draft        string
}

// NewSession creates a session over an empty, unsaved plan.
func NewSession(deps Deps) *Session {
	return &Session{
		deps:    deps,
		plan:    newEmptyPlan(),
		loading: make(map[actionKey]bool),
	}
}

func newEmptyPlan() *domain.Plan {
	return &domain.Plan{
		Fields:              map[string]string{},
		GoalCritiques:       map[string]domain.GoalCritique{},
		SuggestedActivities: map[string][]domain.Activity{},
	}
}

// Load replaces the session state with a stored plan.
func (s *Session) Load(p *domain.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = clonePlan(p)
	s.editingField = ""
	s.draft = ""
}

// Reset discards the session state and starts a fresh unsaved plan.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = newEmptyPlan()
	s.editingField = ""
	s.draft = ""
}

// Plan returns a snapshot copy of the current plan state.
func (s *Session) Plan() *domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePlan(s.plan)
}

// FieldValue returns the current value of a field.
func (s *Session) FieldValue(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Fields[id]
}

// IsAIGenerated reports whether the field currently carries the AI mark.
func (s *Session) IsAIGenerated(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.HasAIGenerated(id)
}

// IsLoading reports whether the given (field, action) pair is in flight.
func (s *Session) IsLoading(fieldID string, kind ActionKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[actionKey{fieldID: fieldID, kind: kind}]
}

// Critique returns the stored rubric review for a goal field, if any.
func (s *Session) Critique(fieldID string) (domain.GoalCritique, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.plan.GoalCritiques[fieldID]
	return c, ok
}

// Suggestions returns the stored activity suggestions for a field.
func (s *Session) Suggestions(fieldID string) []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Activity, len(s.plan.SuggestedActivities[fieldID]))
	copy(out, s.plan.SuggestedActivities[fieldID])
	return out
}

// Analysis returns the stored whole-plan review, if any.
func (s *Session) Analysis() *domain.PlanAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan.Analysis == nil {
		return nil
	}
	a := *s.plan.Analysis
	return &a
}

// SetField records a user keystroke into a field. Typing always clears
// the field's AI mark, even when the new value equals the old one.
func (s *Session) SetField(id, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.Fields[id] = value
	s.plan.ClearAIGenerated(id)
	if id == schema.FieldStudentName {
		s.plan.StudentName = strings.TrimSpace(value)
	}
}

// GenerateField drafts one field's content from the full plan context.
// The required-field gate runs before any network call; on success the
// value is written and marked AI-generated. On failure prior state is
// left untouched.
func (s *Session) GenerateField(ctx context.Context, fieldID string) error {
	field, ok := schema.FieldByID(fieldID)
	if !ok {
		return fmt.Errorf("unknown field %q", fieldID)
	}
	if !field.Capabilities.Generatable {
		return fmt.Errorf("field %q does not support generation", field.Label)
	}

	snap, err := s.beginGated(ctx, fieldID, ActionGenerate)
	if err != nil {
		return err
	}
	defer s.end(fieldID, ActionGenerate)

	text, err := s.deps.Generate.GenerateField(ctx, snap, fieldID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.Fields[fieldID] = text
	s.plan.MarkAIGenerated(fieldID)
	return nil
}

// GenerateFullPlan produces the complete document text for a read-only
// preview. Session state is not modified.
func (s *Session) GenerateFullPlan(ctx context.Context) (string, error) {
	snap, err := s.beginGated(ctx, "", ActionFullPlan)
	if err != nil {
		return "", err
	}
	defer s.end("", ActionFullPlan)

	return s.deps.Generate.GenerateFullPlan(ctx, snap)
}

// AnalyzePlan runs the whole-plan multidisciplinary review and stores
// the result on the plan.
func (s *Session) AnalyzePlan(ctx context.Context) (*domain.PlanAnalysis, error) {
	snap, err := s.beginGated(ctx, "", ActionAnalyze)
	if err != nil {
		return nil, err
	}
	defer s.end("", ActionAnalyze)

	analysis, err := s.deps.Analyze.AnalyzePlan(ctx, snap)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.Analysis = analysis
	a := *analysis
	return &a, nil
}

// CritiqueGoal reviews one goal field against the rubric and stores the
// critique. The goal text must be non-blank.
func (s *Session) CritiqueGoal(ctx context.Context, fieldID string) error {
	if !schema.IsGoalField(fieldID) {
		return fmt.Errorf("field %q is not a goal field", fieldID)
	}

	s.mu.Lock()
	goalText := strings.TrimSpace(s.plan.Fields[fieldID])
	if goalText == "" {
		s.mu.Unlock()
		return fmt.Errorf("write the goal before requesting a critique")
	}
	key := actionKey{fieldID: fieldID, kind: ActionCritique}
	if s.loading[key] {
		s.mu.Unlock()
		return ErrActionInFlight
	}
	s.loading[key] = true
	s.mu.Unlock()
	defer s.end(fieldID, ActionCritique)

	critique, err := s.deps.Critique.CritiqueGoal(ctx, goalText)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.GoalCritiques[fieldID] = *critique
	return nil
}

// SuggestActivities proposes activities for a goal, the activities field,
// or the UDL field, and stores them on the plan. Goal fields require
// non-blank goal text; the activities and UDL fields require the full
// required-field gate.
func (s *Session) SuggestActivities(ctx context.Context, fieldID string) ([]domain.Activity, error) {
	field, ok := schema.FieldByID(fieldID)
	if !ok {
		return nil, fmt.Errorf("unknown field %q", fieldID)
	}
	if !field.Capabilities.Suggestible {
		return nil, fmt.Errorf("field %q does not support suggestions", field.Label)
	}

	var snap intelligence.FormSnapshot
	var goalText string
	if schema.IsGoalField(fieldID) {
		s.mu.Lock()
		goalText = strings.TrimSpace(s.plan.Fields[fieldID])
		s.mu.Unlock()
		if goalText == "" {
			return nil, fmt.Errorf("write the goal before requesting suggestions")
		}
		var err error
		if snap, err = s.begin(ctx, fieldID, ActionSuggest); err != nil {
			return nil, err
		}
	} else {
		var err error
		if snap, err = s.beginGated(ctx, fieldID, ActionSuggest); err != nil {
			return nil, err
		}
	}
	defer s.end(fieldID, ActionSuggest)

	activities, err := s.deps.Suggest.SuggestActivities(ctx, intelligence.SuggestRequest{
		Snapshot: snap,
		FieldID:  fieldID,
		GoalText: goalText,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.SuggestedActivities[fieldID] = activities
	out := make([]domain.Activity, len(activities))
	copy(out, activities)
	return out, nil
}

// BankSuggestions persists the stored suggestions of a field into the
// activity bank, back-referencing the current plan.
func (s *Session) BankSuggestions(ctx context.Context, fieldID string) ([]*domain.Activity, error) {
	s.mu.Lock()
	drafts := make([]domain.Activity, len(s.plan.SuggestedActivities[fieldID]))
	copy(drafts, s.plan.SuggestedActivities[fieldID])
	planID := s.plan.ID
	s.mu.Unlock()

	if len(drafts) == 0 {
		return nil, fmt.Errorf("no suggestions to store for %q", schema.Label(fieldID))
	}
	return s.deps.Bank.AppendFromSuggestions(ctx, drafts, planID)
}

// AttachActivity appends a formatted block describing a bank activity to
// the activities field. It is a programmatic write: the field's existing
// AI mark is left as is.
func (s *Session) AttachActivity(a domain.Activity) {
	block := fmt.Sprintf("%s (%s)\n%s", a.Title, a.Discipline, a.Description)

	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.plan.Fields[schema.FieldActivities]
	if strings.TrimSpace(current) == "" {
		s.plan.Fields[schema.FieldActivities] = block
		return
	}
	s.plan.Fields[schema.FieldActivities] = current + "\n\n" + block
}

// BeginEdit opens the refine dialog for a field and returns the current
// value as the initial draft.
func (s *Session) BeginEdit(fieldID string) (string, error) {
	if _, ok := schema.FieldByID(fieldID); !ok {
		return "", fmt.Errorf("unknown field %q", fieldID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingField = fieldID
	s.draft = s.plan.Fields[fieldID]
	return s.draft, nil
}

// RefineDraft reworks the dialog draft under an instruction. Only the
// draft changes; the field itself is untouched until CommitEdit.
func (s *Session) RefineDraft(ctx context.Context, fieldID, draft, instruction string) (string, error) {
	snap, err := s.begin(ctx, fieldID, ActionRefine)
	if err != nil {
		return "", err
	}
	defer s.end(fieldID, ActionRefine)

	refined, err := s.deps.Generate.RefineText(ctx, snap, fieldID, draft, instruction)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingField == fieldID {
		s.draft = refined
	}
	return refined, nil
}

// CommitEdit writes the dialog text into the field. The AI mark is not
// cleared: committing a refined draft keeps the field's provenance.
func (s *Session) CommitEdit(fieldID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.Fields[fieldID] = text
	if s.editingField == fieldID {
		s.editingField = ""
		s.draft = ""
	}
}

// CancelEdit discards the dialog draft.
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingField = ""
	s.draft = ""
}

// Save validates every required field, then upserts the plan and adopts
// the assigned id. The returned error is a *ValidationError when the
// gate fails.
func (s *Session) Save(ctx context.Context) error {
	if verr := s.validateRequired(); verr != nil {
		return verr
	}
	return s.persist(ctx)
}

// persist upserts the current snapshot without the required-field gate.
// The autosaver uses it directly. Persistence failures leave in-memory
// state intact. Rounds are serialized: the snapshot of the next round is
// taken only after the previous round adopted its id.
func (s *Session) persist(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	snap := clonePlan(s.plan)
	s.mu.Unlock()

	saved, err := s.deps.Plans.Upsert(ctx, snap)
	if err != nil {
		return err
	}

	// Adopt identity and timestamps only; fields typed while the save
	// was in flight win over the snapshot.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan.ID = saved.ID
	s.plan.CreatedAt = saved.CreatedAt
	s.plan.UpdatedAt = saved.UpdatedAt
	return nil
}

func (s *Session) validateRequired() *ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return validationErrorLocked(s.plan.Fields)
}

func validationErrorLocked(fields map[string]string) *ValidationError {
	var missing []string
	for _, id := range schema.RequiredFieldIDs() {
		if strings.TrimSpace(fields[id]) == "" {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{MissingFieldIDs: missing}
}

// beginGated runs the required-field gate, claims the loading flag, and
// assembles the form snapshot. Gate violations return *ValidationError
// before any network call.
func (s *Session) beginGated(ctx context.Context, fieldID string, kind ActionKind) (intelligence.FormSnapshot, error) {
	s.mu.Lock()
	if verr := validationErrorLocked(s.plan.Fields); verr != nil {
		s.mu.Unlock()
		return intelligence.FormSnapshot{}, verr
	}
	key := actionKey{fieldID: fieldID, kind: kind}
	if s.loading[key] {
		s.mu.Unlock()
		return intelligence.FormSnapshot{}, ErrActionInFlight
	}
	s.loading[key] = true
	fields := cloneFields(s.plan.Fields)
	s.mu.Unlock()

	return s.snapshot(ctx, fields, fieldID, kind)
}

// begin claims the loading flag and assembles the snapshot without the
// required-field gate.
func (s *Session) begin(ctx context.Context, fieldID string, kind ActionKind) (intelligence.FormSnapshot, error) {
	s.mu.Lock()
	key := actionKey{fieldID: fieldID, kind: kind}
	if s.loading[key] {
		s.mu.Unlock()
		return intelligence.FormSnapshot{}, ErrActionInFlight
	}
	s.loading[key] = true
	fields := cloneFields(s.plan.Fields)
	s.mu.Unlock()

	return s.snapshot(ctx, fields, fieldID, kind)
}

func (s *Session) snapshot(ctx context.Context, fields map[string]string, fieldID string, kind ActionKind) (intelligence.FormSnapshot, error) {
	snap := intelligence.FormSnapshot{Fields: fields}
	if s.deps.Docs == nil {
		return snap, nil
	}
	docs, err := s.deps.Docs.List(ctx)
	if err != nil {
		s.end(fieldID, kind)
		return intelligence.FormSnapshot{}, fmt.Errorf("loading support documents: %w", err)
	}
	snap.Docs = docs
	return snap, nil
}

func (s *Session) end(fieldID string, kind ActionKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.loading, actionKey{fieldID: fieldID, kind: kind})
}

func cloneFields(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func clonePlan(p *domain.Plan) *domain.Plan {
	out := *p
	out.Fields = cloneFields(p.Fields)
	out.AIGeneratedFields = append([]string(nil), p.AIGeneratedFields...)
	out.GoalCritiques = make(map[string]domain.GoalCritique, len(p.GoalCritiques))
	for k, v := range p.GoalCritiques {
		out.GoalCritiques[k] = v
	}
	out.SuggestedActivities = make(map[string][]domain.Activity, len(p.SuggestedActivities))
	for k, v := range p.SuggestedActivities {
		out.SuggestedActivities[k] = append([]domain.Activity(nil), v...)
	}
	if p.Analysis != nil {
		a := *p.Analysis
		out.Analysis = &a
	}
	return &out
}
