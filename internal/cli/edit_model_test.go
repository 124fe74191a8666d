package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/editor"
	"github.com/lucasvieira/iepdesk/internal/intelligence"
	"github.com/lucasvieira/iepdesk/internal/repository"
	"github.com/lucasvieira/iepdesk/internal/schema"
	"github.com/lucasvieira/iepdesk/internal/service"
	"github.com/lucasvieira/iepdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel() *editModel {
	return newEditModel(editor.NewSession(editor.Deps{}))
}

func TestEditModel_Navigation(t *testing.T) {
	m := newTestModel()
	require.Equal(t, schema.OrderedFields()[0].ID, m.current().ID)

	m.Update(keyMsg("j"))
	assert.Equal(t, schema.OrderedFields()[1].ID, m.current().ID)

	m.Update(keyMsg("k"))
	m.Update(keyMsg("k")) // clamped at the top
	assert.Equal(t, schema.OrderedFields()[0].ID, m.current().ID)
}

func TestEditModel_EnterOpensEditorWithCurrentValue(t *testing.T) {
	m := newTestModel()
	m.session.SetField(m.current().ID, "existing text")

	m.Update(keyMsg("enter"))
	assert.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "existing text", m.textarea.Value())
}

func TestEditModel_EscCommitsTypedText(t *testing.T) {
	m := newTestModel()
	fieldID := m.current().ID

	m.Update(keyMsg("enter"))
	m.textarea.SetValue("typed by hand")
	m.Update(keyMsg("esc"))

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "typed by hand", m.session.FieldValue(fieldID))
	assert.False(t, m.session.IsAIGenerated(fieldID))
}

func TestEditModel_RefinedDraftCommitKeepsAIMark(t *testing.T) {
	m := newTestModel()
	fieldID := m.current().ID
	m.session.SetField(fieldID, "original")

	// Simulate a generated field, then an approved refined draft.
	p := m.session.Plan()
	p.MarkAIGenerated(fieldID)
	m.session.Load(p)

	m.Update(refinedMsg{fieldID: fieldID, text: "refined text"})
	assert.Equal(t, modeEdit, m.mode)
	assert.True(t, m.refining)

	m.Update(keyMsg("esc"))
	assert.Equal(t, "refined text", m.session.FieldValue(fieldID))
	assert.True(t, m.session.IsAIGenerated(fieldID))
}

type cannedSuggest struct {
	activities []domain.Activity
}

func (s cannedSuggest) SuggestActivities(context.Context, intelligence.SuggestRequest) ([]domain.Activity, error) {
	return s.activities, nil
}

func TestEditModel_SuggestionsBankOnlyOnExplicitKeypress(t *testing.T) {
	db := testutil.NewTestDB(t)
	bank := service.NewActivityService(repository.NewSQLiteActivityRepo(db), nil)
	suggest := cannedSuggest{activities: []domain.Activity{{
		Title:       "Picture flashcards",
		Description: "Match words to images.",
		Discipline:  domain.DisciplineLanguage,
	}}}

	m := newEditModel(editor.NewSession(editor.Deps{Suggest: suggest, Bank: bank}))
	m.session.SetField(schema.FieldGoalShort, "read short sentences aloud")

	m.Update(m.runSuggest(schema.FieldGoalShort)())
	assert.Equal(t, modePreview, m.mode)
	assert.Contains(t, m.View(), "b add to bank")

	// Previewing alone must not touch the bank.
	all, err := bank.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, cmd := m.Update(keyMsg("b"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, modeBrowse, m.mode)
	all, err = bank.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Picture flashcards", all[0].Title)
}

func TestEditModel_AutosaveStatusUpdates(t *testing.T) {
	m := newTestModel()
	m.Update(autosaveMsg(editor.StatusSaving))
	assert.Equal(t, editor.StatusSaving, m.saveStatus)

	m.Update(autosaveMsg(editor.StatusSaved))
	assert.Equal(t, editor.StatusSaved, m.saveStatus)
}

func TestEditModel_ViewShowsRequiredMarkAndStatus(t *testing.T) {
	m := newTestModel()
	out := m.View()
	assert.Contains(t, out, "IEP Editor")
	assert.Contains(t, out, schema.Sections()[0].Title)
	assert.Contains(t, out, "idle")
}
