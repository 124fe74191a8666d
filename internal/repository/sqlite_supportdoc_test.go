package repository

import (
	"context"
	"testing"

	"github.com/lucasvieira/iepdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportDocRepo_UpsertAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSupportDocRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDoc("report.txt", "clinical report", false)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDoc("eval.txt", "school evaluation", true)))

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// Ordered by name.
	assert.Equal(t, "eval.txt", docs[0].Name)
	assert.True(t, docs[0].Selected)
	assert.Equal(t, "report.txt", docs[1].Name)
}

func TestSupportDocRepo_Upsert_ReplacesContentKeepsSelection(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSupportDocRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDoc("report.txt", "v1", false)))
	require.NoError(t, repo.SetSelected(ctx, "report.txt", true))

	// Re-uploading under the same name replaces content only.
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDoc("report.txt", "v2", false)))

	doc, err := repo.GetByName(ctx, "report.txt")
	require.NoError(t, err)
	assert.Equal(t, "v2", doc.Content)
	assert.True(t, doc.Selected)
}

func TestSupportDocRepo_SetSelected_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSupportDocRepo(db)

	err := repo.SetSelected(context.Background(), "missing.txt", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupportDocRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSupportDocRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestDoc("notes.txt", "x", false)))
	require.NoError(t, repo.Delete(ctx, "notes.txt"))

	_, err := repo.GetByName(ctx, "notes.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}
