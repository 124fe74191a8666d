package service

import (
	"context"
	"testing"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/repository"
	"github.com/lucasvieira/iepdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActivityService(t *testing.T) ActivityService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewActivityService(repository.NewSQLiteActivityRepo(db), nil)
}

func TestActivityService_AppendFromSuggestions(t *testing.T) {
	svc := newActivityService(t)
	ctx := context.Background()

	drafts := []domain.Activity{
		{Title: "Syllable bingo", Discipline: domain.DisciplineLanguage, IsFavorited: true, Rating: domain.RatingLike},
		{Title: "Counting walk", Discipline: domain.DisciplineMath},
	}

	saved, err := svc.AppendFromSuggestions(ctx, drafts, "plan-1")
	require.NoError(t, err)
	require.Len(t, saved, 2)

	for _, a := range saved {
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.IsFavorited)
		assert.Equal(t, domain.RatingNone, a.Rating)
		require.NotNil(t, a.SourcePlanID)
		assert.Equal(t, "plan-1", *a.SourcePlanID)
	}
	assert.NotEqual(t, saved[0].ID, saved[1].ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestActivityService_AppendFromSuggestions_NoSourcePlan(t *testing.T) {
	svc := newActivityService(t)

	saved, err := svc.AppendFromSuggestions(context.Background(),
		[]domain.Activity{{Title: "Free drawing"}}, "")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Nil(t, saved[0].SourcePlanID)
}

func TestActivityService_FavoriteAndRate(t *testing.T) {
	svc := newActivityService(t)
	ctx := context.Background()

	saved, err := svc.AppendFromSuggestions(ctx, []domain.Activity{{Title: "Story map"}}, "")
	require.NoError(t, err)
	id := saved[0].ID

	require.NoError(t, svc.SetFavorited(ctx, id, true))
	require.NoError(t, svc.SetRating(ctx, id, domain.RatingLike))

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.IsFavorited)
	assert.Equal(t, domain.RatingLike, got.Rating)
}

func TestActivityService_Delete(t *testing.T) {
	svc := newActivityService(t)
	ctx := context.Background()

	saved, err := svc.AppendFromSuggestions(ctx, []domain.Activity{{Title: "Puzzle time"}}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved[0].ID))
	_, err = svc.GetByID(ctx, saved[0].ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
