package repository

import (
	"context"
	"testing"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	act := testutil.NewTestActivity("Syllable cards",
		testutil.WithTags(domain.TagShortTerm, domain.TagUniversalDesign))
	require.NoError(t, repo.Create(ctx, act))

	fetched, err := repo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Equal(t, "Syllable cards", fetched.Title)
	assert.Equal(t, domain.DisciplineLanguage, fetched.Discipline)
	assert.Equal(t, []string{"reading"}, fetched.Skills)
	assert.Equal(t, []string{domain.TagShortTerm, domain.TagUniversalDesign}, fetched.GoalTags)
	assert.False(t, fetched.IsFavorited)
	assert.Equal(t, domain.RatingNone, fetched.Rating)
	assert.Nil(t, fetched.SourcePlanID)
}

func TestActivityRepo_SetFavoritedAndRating(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	act := testutil.NewTestActivity("Number line hops")
	require.NoError(t, repo.Create(ctx, act))

	require.NoError(t, repo.SetFavorited(ctx, act.ID, true))
	require.NoError(t, repo.SetRating(ctx, act.ID, domain.RatingLike))

	fetched, err := repo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsFavorited)
	assert.Equal(t, domain.RatingLike, fetched.Rating)

	assert.ErrorIs(t, repo.SetFavorited(ctx, "nope", true), ErrNotFound)
}

func TestActivityRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	act := testutil.NewTestActivity("Story sequencing")
	require.NoError(t, repo.Create(ctx, act))

	act.Description = "Order picture cards to retell a story"
	act.Comments = "worked well in small groups"
	act.Discipline = domain.DisciplineCrossSubject
	require.NoError(t, repo.Update(ctx, act))

	fetched, err := repo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Equal(t, "Order picture cards to retell a story", fetched.Description)
	assert.Equal(t, "worked well in small groups", fetched.Comments)
	assert.Equal(t, domain.DisciplineCrossSubject, fetched.Discipline)
}

func TestActivityRepo_ListAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	a1 := testutil.NewTestActivity("One")
	a2 := testutil.NewTestActivity("Two")
	require.NoError(t, repo.Create(ctx, a1))
	require.NoError(t, repo.Create(ctx, a2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, a1.ID))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Two", list[0].Title)
}
