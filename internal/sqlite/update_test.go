package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/projectops/assistant/internal/domain/update"
	"github.com/stretchr/testify/require"
)

func TestUpdateRepository_CreateAndListByProject(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUpdateRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, "tenant1", "Phoenix", "Acme")

	err := repo.Create(ctx, &update.ClientUpdate{
		TenantID:       "tenant1",
		ProjectID:      proj.ID,
		UpdateDate:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Summary:        "Kickoff recap",
		SentBy:         "PM",
		Mode:           update.ModeEmail,
		ClientFeedback: "None",
		NextStep:       "Demo",
	})
	require.NoError(t, err)

	err = repo.Create(ctx, &update.ClientUpdate{
		TenantID:   "tenant1",
		ProjectID:  proj.ID,
		UpdateDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		Summary:    "UAT passed",
		SentBy:     "PM",
		Mode:       update.ModeCall,
	})
	require.NoError(t, err)

	listed, err := repo.ListByProject(ctx, proj.ID, "")
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Newest update first, project name joined in
	require.Equal(t, "UAT passed", listed[0].Summary)
	require.Equal(t, "Phoenix", listed[0].ProjectName)
	require.Equal(t, update.ModeCall, listed[0].Mode)
	require.Equal(t, "Kickoff recap", listed[1].Summary)
}

func TestUpdateRepository_TenantScoping(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUpdateRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, "tenant1", "Phoenix", "Acme")

	err := repo.Create(ctx, &update.ClientUpdate{
		TenantID:   "tenant1",
		ProjectID:  proj.ID,
		UpdateDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Summary:    "Owned",
	})
	require.NoError(t, err)

	listed, err := repo.ListByProject(ctx, proj.ID, "tenant1")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	listed, err = repo.ListByProject(ctx, proj.ID, "tenant2")
	require.NoError(t, err)
	require.Empty(t, listed)
}
