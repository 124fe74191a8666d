package cli

import (
	"context"
	"testing"

	"github.com/lucasvieira/iepdesk/internal/repository"
	"github.com/lucasvieira/iepdesk/internal/service"
	"github.com/lucasvieira/iepdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	known := []string{"abc123", "abd456", "zzz789"}

	id, err := resolveID("abc123", known, "plan")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	id, err = resolveID("zz", known, "plan")
	require.NoError(t, err)
	assert.Equal(t, "zzz789", id)

	_, err = resolveID("ab", known, "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = resolveID("nope", known, "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = resolveID("", known, "plan")
	require.Error(t, err)
}

func TestResolvePlanID_AgainstStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := &App{Plans: service.NewPlanService(repository.NewSQLitePlanRepo(db), nil)}
	ctx := context.Background()

	p := testutil.NewTestPlan("Ana")
	p.ID = ""
	saved, err := app.Plans.Upsert(ctx, p)
	require.NoError(t, err)

	id, err := resolvePlanID(ctx, app, saved.ID[:6])
	require.NoError(t, err)
	assert.Equal(t, saved.ID, id)
}
