package domain

import (
	"sort"
	"strings"
	"time"
)

// Plan is one saved Individualized Educational Plan.
type Plan struct {
	ID          string
	StudentName string
	// Fields maps field id to free-text value. Insertion order is
	// irrelevant; canonical ordering comes from the schema package.
	Fields map[string]string
	// AIGeneratedFields holds the ids of fields whose current value was
	// produced by the AI generation action and not yet hand-edited.
	// Always a subset of the non-empty keys of Fields.
	AIGeneratedFields []string
	// GoalCritiques maps goal field id to its latest rubric critique.
	GoalCritiques map[string]GoalCritique
	// SuggestedActivities maps field id to the activity drafts last
	// suggested for it.
	SuggestedActivities map[string][]Activity
	// Analysis is the latest whole-plan review, if one was run.
	Analysis  *PlanAnalysis
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAIGenerated reports whether the given field carries AI provenance.
func (p *Plan) HasAIGenerated(fieldID string) bool {
	for _, id := range p.AIGeneratedFields {
		if id == fieldID {
			return true
		}
	}
	return false
}

// MarkAIGenerated records AI provenance for a field. Idempotent.
func (p *Plan) MarkAIGenerated(fieldID string) {
	if p.HasAIGenerated(fieldID) {
		return
	}
	p.AIGeneratedFields = append(p.AIGeneratedFields, fieldID)
	sort.Strings(p.AIGeneratedFields)
}

// ClearAIGenerated removes AI provenance from a field.
func (p *Plan) ClearAIGenerated(fieldID string) {
	out := p.AIGeneratedFields[:0]
	for _, id := range p.AIGeneratedFields {
		if id != fieldID {
			out = append(out, id)
		}
	}
	p.AIGeneratedFields = out
}

// FieldValue returns the trimmed value of a field.
func (p *Plan) FieldValue(fieldID string) string {
	return strings.TrimSpace(p.Fields[fieldID])
}

// CriterionReview is one rubric criterion's critique and improvement
// suggestion for a goal.
type CriterionReview struct {
	Critique   string `json:"critique"`
	Suggestion string `json:"suggestion"`
}

// GoalCritique is the fixed five-criterion rubric result for one goal:
// Specific, Measurable, Achievable, Relevant, Time-bound.
type GoalCritique struct {
	Specific   CriterionReview `json:"isSpecific"`
	Measurable CriterionReview `json:"isMeasurable"`
	Achievable CriterionReview `json:"isAchievable"`
	Relevant   CriterionReview `json:"isRelevant"`
	TimeBound  CriterionReview `json:"isTimeBound"`
}

// Criteria returns the rubric entries in canonical order with display names.
func (c GoalCritique) Criteria() []NamedCriterion {
	return []NamedCriterion{
		{Name: "Specific", Review: c.Specific},
		{Name: "Measurable", Review: c.Measurable},
		{Name: "Achievable", Review: c.Achievable},
		{Name: "Relevant", Review: c.Relevant},
		{Name: "Time-bound", Review: c.TimeBound},
	}
}

// NamedCriterion pairs a rubric criterion's display name with its review.
type NamedCriterion struct {
	Name   string
	Review CriterionReview
}

// PlanAnalysis is a whole-plan multidisciplinary review.
type PlanAnalysis struct {
	Strengths                 []string `json:"strengths"`
	Weaknesses                []string `json:"weaknesses"`
	GoalAnalysis              string   `json:"goalAnalysis"`
	PedagogicalAnalysis       string   `json:"pedagogicalAnalysis"`
	PsychopedagogicalAnalysis string   `json:"psychopedagogicalAnalysis"`
	Suggestions               []string `json:"suggestions"`
}
