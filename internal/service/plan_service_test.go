package service

import (
	"context"
	"testing"
	"time"

	"github.com/lucasvieira/iepdesk/internal/repository"
	"github.com/lucasvieira/iepdesk/internal/schema"
	"github.com/lucasvieira/iepdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanService(t *testing.T) PlanService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewPlanService(repository.NewSQLitePlanRepo(db), nil)
}

func TestPlanService_Upsert_AssignsIDAndTimestamps(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	p := testutil.NewTestPlan("Ana")
	p.ID = ""

	saved, err := svc.Upsert(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	got, err := svc.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.StudentName)
}

func TestPlanService_Upsert_KeepsIDAndCreatedAtOnUpdate(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	p := testutil.NewTestPlan("Bruno")
	p.ID = ""
	saved, err := svc.Upsert(ctx, p)
	require.NoError(t, err)

	id, created := saved.ID, saved.CreatedAt
	time.Sleep(5 * time.Millisecond)

	saved.Fields[schema.FieldDiagnosis] = "updated diagnosis"
	again, err := svc.Upsert(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, id, again.ID)
	assert.Equal(t, created, again.CreatedAt)
	assert.True(t, again.UpdatedAt.After(created))

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "updated diagnosis", got.Fields[schema.FieldDiagnosis])
}

func TestPlanService_Upsert_UnknownIDCreatesFreshRecord(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	// A session may still hold the id of a plan deleted elsewhere; the
	// save must survive as a fresh record instead of failing forever.
	p := testutil.NewTestPlan("Carla")
	p.ID = "deleted-elsewhere"

	saved, err := svc.Upsert(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, "deleted-elsewhere", saved.ID)
	assert.NotEmpty(t, saved.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Carla", all[0].StudentName)
}

func TestPlanService_Delete(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	p := testutil.NewTestPlan("Diego")
	p.ID = ""
	saved, err := svc.Upsert(ctx, p)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved.ID))
	_, err = svc.GetByID(ctx, saved.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
