package intelligence

import (
	"strings"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/schema"
)

// Context is the assembled textual context fed to every AI request.
type Context struct {
	// RAG holds the contents of every selected support document, each
	// wrapped with a name/content delimiter. Empty when none selected.
	RAG string
	// Form holds "<label>: <value>" lines for every non-blank form field
	// in canonical section order, excluding the field being generated.
	Form string
}

// Combined returns the two context blocks joined for prompts that take
// both at once.
func (c Context) Combined() string {
	return c.RAG + "\n" + c.Form
}

// AssembleContext builds the AI context from the current form values and
// the selected support documents. excludeFieldID names the field currently
// being generated; its own stale value must not anchor the model, so it is
// omitted from the form block. No truncation, deduplication, or
// token-budget logic is applied — the provider must tolerate large inputs.
func AssembleContext(fields map[string]string, excludeFieldID string, docs []domain.SupportDocument) Context {
	var ctx Context

	selected := domain.SelectedDocuments(docs)
	if len(selected) > 0 {
		var b strings.Builder
		b.WriteString("--- BEGIN SUPPORT DOCUMENTS ---\n\n")
		for _, d := range selected {
			b.WriteString("Document: ")
			b.WriteString(d.Name)
			b.WriteString("\nContent:\n")
			b.WriteString(d.Content)
			b.WriteString("\n\n")
		}
		b.WriteString("--- END SUPPORT DOCUMENTS ---\n\n")
		ctx.RAG = b.String()
	}

	var lines []string
	for _, f := range schema.OrderedFields() {
		if f.ID == excludeFieldID {
			continue
		}
		value := strings.TrimSpace(fields[f.ID])
		if value == "" {
			continue
		}
		lines = append(lines, f.Label+": "+value)
	}
	ctx.Form = "--- BEGIN CURRENT PLAN CONTEXT ---\n\n" +
		strings.Join(lines, "\n") +
		"\n--- END CURRENT PLAN CONTEXT ---\n\n"

	return ctx
}
