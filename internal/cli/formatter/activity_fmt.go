package formatter

import (
	"strings"

	"github.com/lucasvieira/iepdesk/internal/domain"
)

// FormatActivityList renders the activity bank as a table.
func FormatActivityList(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return StyleDim.Render("The activity bank is empty.") + "\n"
	}

	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			shortID(a.ID),
			FavoriteIndicator(a.IsFavorited),
			Truncate(a.Title, 40),
			string(a.Discipline),
			strings.Join(a.GoalTags, ","),
			RatingIndicator(a.Rating),
		})
	}
	return RenderTable([]string{"ID", "", "TITLE", "DISCIPLINE", "TAGS", "RATING"}, rows)
}

// FormatActivity renders one bank activity in full.
func FormatActivity(a *domain.Activity) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(a.Title))
	b.WriteString(" " + FavoriteIndicator(a.IsFavorited))
	b.WriteString("\n\n")
	b.WriteString(a.Description)
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("Discipline: ") + string(a.Discipline) + "\n")
	if len(a.Skills) > 0 {
		b.WriteString(StyleDim.Render("Skills: ") + strings.Join(a.Skills, ", ") + "\n")
	}
	if len(a.Needs) > 0 {
		b.WriteString(StyleDim.Render("Needs: ") + strings.Join(a.Needs, ", ") + "\n")
	}
	if len(a.GoalTags) > 0 {
		b.WriteString(StyleDim.Render("Tags: ") + strings.Join(a.GoalTags, ", ") + "\n")
	}
	b.WriteString(StyleDim.Render("Rating: ") + RatingIndicator(a.Rating) + "\n")
	if strings.TrimSpace(a.Comments) != "" {
		b.WriteString(StyleDim.Render("Comments: ") + a.Comments + "\n")
	}
	if a.SourcePlanID != nil {
		b.WriteString(StyleDim.Render("From plan: ") + shortID(*a.SourcePlanID) + "\n")
	}
	return RenderBox("Activity", strings.TrimRight(b.String(), "\n"))
}

// FormatDocList renders the stored support documents as a table.
func FormatDocList(docs []domain.SupportDocument) string {
	if len(docs) == 0 {
		return StyleDim.Render("No support documents imported.") + "\n"
	}

	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		sel := StyleDim.Render("·")
		if d.Selected {
			sel = StyleGreen.Render("✓")
		}
		rows = append(rows, []string{sel, d.Name, Truncate(strings.ReplaceAll(d.Content, "\n", " "), 50)})
	}
	return RenderTable([]string{"", "NAME", "CONTENT"}, rows)
}
