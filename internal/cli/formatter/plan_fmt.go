package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/schema"
)

// FormatPlanList renders the stored plans as a table, newest first.
func FormatPlanList(plans []*domain.Plan) string {
	if len(plans) == 0 {
		return StyleDim.Render("No plans yet. Run \"iepdesk edit\" to start one.") + "\n"
	}

	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		name := p.StudentName
		if name == "" {
			name = StyleDim.Render("(unnamed)")
		}
		rows = append(rows, []string{
			shortID(p.ID),
			name,
			fmt.Sprintf("%d", countFilled(p.Fields)),
			p.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return RenderTable([]string{"ID", "STUDENT", "FIELDS", "UPDATED"}, rows)
}

// FormatPlan renders one plan section by section, flagging AI-generated
// fields with the provenance badge.
func FormatPlan(p *domain.Plan) string {
	var b strings.Builder
	for _, sec := range schema.Sections() {
		var lines []string
		for _, f := range sec.Fields {
			v := strings.TrimSpace(p.Fields[f.ID])
			if v == "" {
				continue
			}
			label := StyleBold.Render(f.Label)
			if p.HasAIGenerated(f.ID) {
				label += " " + AIMark()
			}
			lines = append(lines, label+"\n"+v)
		}
		if len(lines) == 0 {
			continue
		}
		b.WriteString(RenderBox(sec.Title, strings.Join(lines, "\n\n")))
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return StyleDim.Render("(empty plan)") + "\n"
	}
	return b.String()
}

// FormatCritique renders a stored rubric review of one goal.
func FormatCritique(goalLabel string, c domain.GoalCritique) string {
	var b strings.Builder
	for _, crit := range c.Criteria() {
		b.WriteString(StyleBlue.Render(crit.Name))
		b.WriteString("\n  ")
		b.WriteString(crit.Review.Critique)
		if s := strings.TrimSpace(crit.Review.Suggestion); s != "" {
			b.WriteString("\n  ")
			b.WriteString(StyleGreen.Render("→ " + s))
		}
		b.WriteString("\n")
	}
	return RenderBox("Goal review: "+goalLabel, strings.TrimRight(b.String(), "\n"))
}

// FormatAnalysis renders the whole-plan multidisciplinary review.
func FormatAnalysis(a *domain.PlanAnalysis) string {
	var b strings.Builder
	writeList := func(title string, items []string, style func(string) string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(StyleBold.Render(title) + "\n")
		for _, it := range items {
			b.WriteString("  " + style(it) + "\n")
		}
		b.WriteString("\n")
	}
	writeList("Strengths", a.Strengths, func(s string) string { return StyleGreen.Render("+ ") + s })
	writeList("Weaknesses", a.Weaknesses, func(s string) string { return StyleYellow.Render("- ") + s })

	writeSection := func(title, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		b.WriteString(StyleBold.Render(title) + "\n" + text + "\n\n")
	}
	writeSection("Goals", a.GoalAnalysis)
	writeSection("Pedagogical review", a.PedagogicalAnalysis)
	writeSection("Psychopedagogical review", a.PsychopedagogicalAnalysis)
	writeList("Suggestions", a.Suggestions, func(s string) string { return StyleBlue.Render("• ") + s })

	return RenderBox("Plan analysis", strings.TrimRight(b.String(), "\n"))
}

func countFilled(fields map[string]string) int {
	n := 0
	for _, id := range schema.OrderedFields() {
		if strings.TrimSpace(fields[id.ID]) != "" {
			n++
		}
	}
	return n
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
