package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvieira/iepdesk/internal/cli/formatter"
	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/editor"
	"github.com/lucasvieira/iepdesk/internal/schema"
)

type editMode int

const (
	modeBrowse editMode = iota
	modeEdit
	modeInstruction
	modePreview
)

// aiDoneMsg reports completion of one AI action.
type aiDoneMsg struct {
	fieldID string
	kind    editor.ActionKind
	err     error
}

// previewMsg carries full-plan or analysis output for the preview pane.
type previewMsg struct {
	title string
	text  string
	err   error
}

// suggestionsMsg carries a finished suggestion round. The activities are
// only previewed; they reach the bank on an explicit keypress.
type suggestionsMsg struct {
	fieldID    string
	activities []domain.Activity
	err        error
}

// bankedMsg reports how many previewed suggestions were added to the bank.
type bankedMsg struct {
	count int
}

// refinedMsg carries a refined dialog draft.
type refinedMsg struct {
	fieldID string
	text    string
	err     error
}

// autosaveMsg relays the autosave indicator state.
type autosaveMsg editor.SaveStatus

type editModel struct {
	session   *editor.Session
	autosaver *editor.Autosaver
	statusCh  chan editor.SaveStatus

	fields []schema.Field
	cursor int
	mode   editMode

	textarea    textarea.Model
	instruction textinput.Model
	spinner     spinner.Model

	previewTitle string
	previewText  string
	// suggestField names the field whose suggestions fill the preview
	// pane and may be banked; empty for other previews.
	suggestField string

	saveStatus editor.SaveStatus
	notice     string
	refining   bool
	width      int
	height     int
}

func newEditModel(session *editor.Session) *editModel {
	ta := textarea.New()
	ta.Placeholder = "Write here..."
	ta.CharLimit = 0

	in := textinput.New()
	in.Placeholder = "How should the text be refined? (empty for a general pass)"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	statusCh := make(chan editor.SaveStatus, 8)
	saver := editor.NewAutosaver(session,
		editor.WithStatusFunc(func(s editor.SaveStatus) {
			select {
			case statusCh <- s:
			default:
			}
		}),
	)

	return &editModel{
		session:     session,
		autosaver:   saver,
		statusCh:    statusCh,
		fields:      schema.OrderedFields(),
		textarea:    ta,
		instruction: in,
		spinner:     sp,
		saveStatus:  editor.StatusIdle,
	}
}

func (m *editModel) Init() tea.Cmd {
	m.autosaver.Start(context.Background())
	return tea.Batch(m.spinner.Tick, m.waitStatus())
}

func (m *editModel) waitStatus() tea.Cmd {
	return func() tea.Msg { return autosaveMsg(<-m.statusCh) }
}

func (m *editModel) current() schema.Field {
	return m.fields[m.cursor]
}

func (m *editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.textarea.SetWidth(msg.Width - 4)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case autosaveMsg:
		m.saveStatus = editor.SaveStatus(msg)
		return m, m.waitStatus()

	case aiDoneMsg:
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(msg.err.Error())
		} else {
			m.notice = formatter.StyleGreen.Render("Done: " + string(msg.kind) + " " + schema.Label(msg.fieldID))
		}
		return m, nil

	case previewMsg:
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.mode = modePreview
		m.previewTitle = msg.title
		m.previewText = msg.text
		m.suggestField = ""
		return m, nil

	case suggestionsMsg:
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.mode = modePreview
		m.previewTitle = "Suggested activities for " + schema.Label(msg.fieldID)
		m.previewText = renderSuggestions(msg.activities)
		m.suggestField = msg.fieldID
		return m, nil

	case bankedMsg:
		m.notice = formatter.StyleGreen.Render("Added " + strconv.Itoa(msg.count) + " activities to the bank")
		return m, nil

	case refinedMsg:
		if msg.err != nil {
			m.notice = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		// Show the refined draft in the editor for final approval.
		m.mode = modeEdit
		m.refining = true
		m.textarea.SetValue(msg.text)
		m.textarea.Focus()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *editModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEdit:
		return m.handleEditKey(msg)
	case modeInstruction:
		return m.handleInstructionKey(msg)
	case modePreview:
		switch msg.String() {
		case "esc", "q":
			m.mode = modeBrowse
			m.suggestField = ""
		case "b":
			if m.suggestField != "" {
				fieldID := m.suggestField
				m.suggestField = ""
				m.mode = modeBrowse
				return m, m.runBank(fieldID)
			}
		}
		return m, nil
	}
	return m.handleBrowseKey(msg)
}

func (m *editModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	field := m.current()

	switch msg.String() {
	case "ctrl+c", "q":
		m.autosaver.Stop()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}

	case "enter":
		m.mode = modeEdit
		m.textarea.SetValue(m.session.FieldValue(field.ID))
		m.textarea.Focus()
		return m, textarea.Blink

	case "g":
		if field.Capabilities.Generatable {
			return m, m.runGenerate(field.ID)
		}
	case "c":
		if field.Capabilities.Critiquable {
			return m, m.runCritique(field.ID)
		}
	case "s":
		if field.Capabilities.Suggestible {
			return m, m.runSuggest(field.ID)
		}
	case "r":
		if _, err := m.session.BeginEdit(field.ID); err == nil {
			m.mode = modeInstruction
			m.instruction.SetValue("")
			m.instruction.Focus()
			return m, textinput.Blink
		}
	case "p":
		return m, m.runFullPlan()
	case "a":
		return m, m.runAnalyze()
	case "ctrl+s":
		return m, m.runSave()
	}

	return m, nil
}

func (m *editModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Committing a refined draft keeps the field's AI mark; a plain
		// edit counts as typing and clears it.
		field := m.current()
		text := m.textarea.Value()
		if m.refining {
			m.session.CommitEdit(field.ID, text)
		} else if text != m.session.FieldValue(field.ID) {
			m.session.SetField(field.ID, text)
		}
		m.refining = false
		m.mode = modeBrowse
		m.textarea.Blur()
		return m, nil
	case "ctrl+c":
		m.session.CancelEdit()
		m.refining = false
		m.mode = modeBrowse
		m.textarea.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *editModel) handleInstructionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.session.CancelEdit()
		m.mode = modeBrowse
		m.instruction.Blur()
		return m, nil
	case "enter":
		field := m.current()
		instruction := m.instruction.Value()
		m.instruction.Blur()
		m.mode = modeBrowse
		m.notice = formatter.StyleDim.Render("Refining " + field.Label + "...")
		return m, m.runRefine(field.ID, instruction)
	}

	var cmd tea.Cmd
	m.instruction, cmd = m.instruction.Update(msg)
	return m, cmd
}

func (m *editModel) runGenerate(fieldID string) tea.Cmd {
	return func() tea.Msg {
		err := m.session.GenerateField(context.Background(), fieldID)
		return aiDoneMsg{fieldID: fieldID, kind: editor.ActionGenerate, err: err}
	}
}

func (m *editModel) runCritique(fieldID string) tea.Cmd {
	return func() tea.Msg {
		err := m.session.CritiqueGoal(context.Background(), fieldID)
		return aiDoneMsg{fieldID: fieldID, kind: editor.ActionCritique, err: err}
	}
}

func (m *editModel) runSuggest(fieldID string) tea.Cmd {
	return func() tea.Msg {
		activities, err := m.session.SuggestActivities(context.Background(), fieldID)
		return suggestionsMsg{fieldID: fieldID, activities: activities, err: err}
	}
}

func (m *editModel) runBank(fieldID string) tea.Cmd {
	return func() tea.Msg {
		banked, err := m.session.BankSuggestions(context.Background(), fieldID)
		if err != nil {
			return aiDoneMsg{fieldID: fieldID, kind: editor.ActionSuggest, err: err}
		}
		return bankedMsg{count: len(banked)}
	}
}

func (m *editModel) runRefine(fieldID, instruction string) tea.Cmd {
	draft := m.session.FieldValue(fieldID)
	return func() tea.Msg {
		text, err := m.session.RefineDraft(context.Background(), fieldID, draft, instruction)
		return refinedMsg{fieldID: fieldID, text: text, err: err}
	}
}

func (m *editModel) runFullPlan() tea.Cmd {
	return func() tea.Msg {
		text, err := m.session.GenerateFullPlan(context.Background())
		return previewMsg{title: "Complete plan", text: text, err: err}
	}
}

func (m *editModel) runAnalyze() tea.Cmd {
	return func() tea.Msg {
		analysis, err := m.session.AnalyzePlan(context.Background())
		if err != nil {
			return previewMsg{err: err}
		}
		return previewMsg{title: "Plan analysis", text: formatter.FormatAnalysis(analysis)}
	}
}

func (m *editModel) runSave() tea.Cmd {
	return func() tea.Msg {
		err := m.session.Save(context.Background())
		return aiDoneMsg{kind: "save", err: err}
	}
}

func renderSuggestions(activities []domain.Activity) string {
	var b strings.Builder
	for _, a := range activities {
		b.WriteString(formatter.StyleBold.Render(a.Title))
		b.WriteString(" " + formatter.StyleDim.Render("("+string(a.Discipline)+")") + "\n")
		b.WriteString(a.Description + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
