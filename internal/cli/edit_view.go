package cli

import (
	"fmt"
	"strings"

	"github.com/lucasvieira/iepdesk/internal/cli/formatter"
	"github.com/lucasvieira/iepdesk/internal/editor"
	"github.com/lucasvieira/iepdesk/internal/schema"
)

func (m *editModel) View() string {
	switch m.mode {
	case modeEdit:
		return m.viewEdit()
	case modeInstruction:
		return m.viewInstruction()
	case modePreview:
		return m.viewPreview()
	}
	return m.viewBrowse()
}

func (m *editModel) viewBrowse() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("IEP Editor"))
	b.WriteString("\n\n")

	for _, sec := range schema.Sections() {
		b.WriteString(formatter.StyleBold.Render(sec.Title) + "\n")
		for _, f := range sec.Fields {
			b.WriteString(m.fieldLine(f))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar())
	return b.String()
}

func (m *editModel) fieldLine(f schema.Field) string {
	marker := "  "
	if m.current().ID == f.ID {
		marker = formatter.StyleHeader.Render("> ")
	}

	label := f.Label
	if schema.IsRequired(f.ID) {
		label += formatter.StyleRed.Render("*")
	}

	badges := ""
	if m.session.IsAIGenerated(f.ID) {
		badges += " " + formatter.AIMark()
	}
	for _, kind := range []editor.ActionKind{editor.ActionGenerate, editor.ActionCritique, editor.ActionSuggest, editor.ActionRefine} {
		if m.session.IsLoading(f.ID, kind) {
			badges += " " + m.spinner.View() + formatter.StyleDim.Render(string(kind))
			break
		}
	}

	value := strings.TrimSpace(m.session.FieldValue(f.ID))
	if value == "" {
		value = formatter.StyleDim.Render("(empty)")
	} else {
		value = formatter.Truncate(strings.ReplaceAll(value, "\n", " "), 60)
	}

	return fmt.Sprintf("%s%s%s  %s\n", marker, label, badges, value)
}

func (m *editModel) viewEdit() string {
	f := m.current()
	title := "Editing: " + f.Label
	if m.refining {
		title = "Refined draft: " + f.Label + " (esc keeps it)"
	}
	help := formatter.StyleDim.Render("esc commit · ctrl+c discard")
	return formatter.StyleHeader.Render(title) + "\n\n" + m.textarea.View() + "\n\n" + help
}

func (m *editModel) viewInstruction() string {
	f := m.current()
	return formatter.StyleHeader.Render("Refine: "+f.Label) + "\n\n" +
		m.instruction.View() + "\n\n" +
		formatter.StyleDim.Render("enter run · esc cancel")
}

func (m *editModel) viewPreview() string {
	help := "esc back"
	if m.suggestField != "" {
		help = "b add to bank · esc back"
	}
	return formatter.StyleHeader.Render(m.previewTitle) + "\n\n" +
		m.previewText + "\n\n" +
		formatter.StyleDim.Render(help)
}

func (m *editModel) statusBar() string {
	var save string
	switch m.saveStatus {
	case editor.StatusSaving:
		save = formatter.StyleYellow.Render("saving...")
	case editor.StatusSaved:
		save = formatter.StyleGreen.Render("saved")
	default:
		save = formatter.StyleDim.Render("idle")
	}

	help := formatter.StyleDim.Render(
		"enter edit · g generate · r refine · c critique · s suggest · p full plan · a analyze · ctrl+s save · q quit")

	bar := save
	if m.notice != "" {
		bar += "  " + m.notice
	}
	return bar + "\n" + help
}
