package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/schema"
)

// Plan options
type PlanOption func(*domain.Plan)

func WithField(id, value string) PlanOption {
	return func(p *domain.Plan) {
		p.Fields[id] = value
	}
}

func WithAIGenerated(ids ...string) PlanOption {
	return func(p *domain.Plan) {
		for _, id := range ids {
			p.MarkAIGenerated(id)
		}
	}
}

func WithUpdatedAt(t time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.UpdatedAt = t
	}
}

// NewTestPlan builds a persisted-shape plan with the student name set.
func NewTestPlan(studentName string, opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	p := &domain.Plan{
		ID:                  uuid.New().String(),
		StudentName:         studentName,
		Fields:              map[string]string{schema.FieldStudentName: studentName},
		GoalCritiques:       map[string]domain.GoalCritique{},
		SuggestedActivities: map[string][]domain.Activity{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FilledRequiredFields returns a value for every required field, keyed by id.
func FilledRequiredFields(studentName string) map[string]string {
	fields := map[string]string{}
	for _, id := range schema.RequiredFieldIDs() {
		fields[id] = "test value for " + id
	}
	fields[schema.FieldStudentName] = studentName
	return fields
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithSourcePlanID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.SourcePlanID = &id
	}
}

func WithTags(tags ...string) ActivityOption {
	return func(a *domain.Activity) {
		a.GoalTags = tags
	}
}

func WithFavorited() ActivityOption {
	return func(a *domain.Activity) {
		a.IsFavorited = true
	}
}

// NewTestActivity builds an activity record ready for persistence.
func NewTestActivity(title string, opts ...ActivityOption) *domain.Activity {
	a := &domain.Activity{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "description of " + title,
		Discipline:  domain.DisciplineLanguage,
		Skills:      []string{"reading"},
		Needs:       []string{"visual support"},
		GoalTags:    []string{domain.TagShortTerm},
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestDoc builds a support document.
func NewTestDoc(name, content string, selected bool) *domain.SupportDocument {
	return &domain.SupportDocument{Name: name, Content: content, Selected: selected}
}
