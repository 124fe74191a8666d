package formatter

import (
	"testing"
	"time"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestFormatPlanList_Empty(t *testing.T) {
	out := FormatPlanList(nil)
	assert.Contains(t, out, "No plans yet")
}

func TestFormatPlanList_RendersRows(t *testing.T) {
	plans := []*domain.Plan{
		{
			ID:          "abcdef1234567890",
			StudentName: "Ana Souza",
			Fields:      map[string]string{schema.FieldStudentName: "Ana Souza"},
			UpdatedAt:   time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		},
	}
	out := FormatPlanList(plans)
	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "Ana Souza")
	assert.Contains(t, out, "2026-03-10 14:30")
}

func TestFormatPlan_FlagsAIFields(t *testing.T) {
	p := &domain.Plan{
		Fields: map[string]string{
			schema.FieldStudentName: "Bruno",
			schema.FieldDiagnosis:   "generated diagnosis",
		},
	}
	p.MarkAIGenerated(schema.FieldDiagnosis)

	out := FormatPlan(p)
	assert.Contains(t, out, "Bruno")
	assert.Contains(t, out, "generated diagnosis")
	assert.Contains(t, out, "AI")
}

func TestFormatCritique_RendersEveryCriterion(t *testing.T) {
	c := domain.GoalCritique{
		Specific:   domain.CriterionReview{Critique: "too broad", Suggestion: "narrow it"},
		Measurable: domain.CriterionReview{Critique: "no threshold"},
		Achievable: domain.CriterionReview{Critique: "fits"},
		Relevant:   domain.CriterionReview{Critique: "aligned"},
		TimeBound:  domain.CriterionReview{Critique: "no deadline"},
	}
	out := FormatCritique("Short-term goal", c)
	assert.Contains(t, out, "too broad")
	assert.Contains(t, out, "narrow it")
	assert.Contains(t, out, "no deadline")
}

func TestFormatAnalysis(t *testing.T) {
	a := &domain.PlanAnalysis{
		Strengths:    []string{"clear goals"},
		Weaknesses:   []string{"vague review criteria"},
		GoalAnalysis: "Goals mostly SMART.",
		Suggestions:  []string{"add deadlines"},
	}
	out := FormatAnalysis(a)
	assert.Contains(t, out, "clear goals")
	assert.Contains(t, out, "vague review criteria")
	assert.Contains(t, out, "Goals mostly SMART.")
	assert.Contains(t, out, "add deadlines")
}

func TestFormatActivityList(t *testing.T) {
	src := "plan-1"
	out := FormatActivityList([]*domain.Activity{
		{ID: "1234567890", Title: "Syllable bingo", Discipline: domain.DisciplineLanguage,
			IsFavorited: true, Rating: domain.RatingLike, SourcePlanID: &src},
	})
	assert.Contains(t, out, "12345678")
	assert.Contains(t, out, "Syllable bingo")
	assert.Contains(t, out, "language")
}

func TestFormatDocList_MarksSelection(t *testing.T) {
	out := FormatDocList([]domain.SupportDocument{
		{Name: "report.txt", Content: "line one\nline two", Selected: true},
		{Name: "old.txt", Content: "x"},
	})
	assert.Contains(t, out, "report.txt")
	assert.Contains(t, out, "line one line two")
	assert.Contains(t, out, "old.txt")
}
