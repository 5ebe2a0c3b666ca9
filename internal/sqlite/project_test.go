package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/projectops/assistant/internal/domain/issue"
	"github.com/projectops/assistant/internal/domain/meeting"
	"github.com/projectops/assistant/internal/domain/update"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_Create(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, "tenant1", "Epicor for LTA", "LTA")
	require.NotZero(t, proj.ID, "id should be assigned on insert")

	listed, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, proj.ID, listed[0].ID)
	require.Equal(t, "Epicor for LTA", listed[0].Name)
	require.Equal(t, "LTA", listed[0].ClientName)
}

func TestProjectRepository_Search(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "tenant1", "Epicor for LTA", "LTA")
	createTestProject(t, db, "tenant2", "Phoenix", "Acme")

	// Case-insensitive substring on the project name
	found, err := repo.Search(ctx, "epicor")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Epicor for LTA", found[0].Name)

	// Client name matches too
	found, err = repo.Search(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, "Phoenix", found[0].Name)

	// Search spans tenants
	found, err = repo.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, found, 2)

	found, err = repo.Search(ctx, "nonexistent")
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestProjectRepository_SearchNewestFirst(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	first := createTestProject(t, db, "tenant1", "Phoenix One", "Acme")
	second := createTestProject(t, db, "tenant1", "Phoenix Two", "Acme")

	found, err := repo.Search(ctx, "Phoenix")
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, second.ID, found[0].ID, "newest row comes first")
	require.Equal(t, first.ID, found[1].ID)
}

func TestProjectRepository_ListTenantScoping(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	createTestProject(t, db, "tenant1", "Alpha", "C1")
	createTestProject(t, db, "tenant2", "Beta", "C2")

	listed, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "Alpha", listed[0].Name)

	// Empty tenant lists everything
	listed, err = repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func TestProjectRepository_GetSummary(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, "tenant1", "Epicor for LTA", "LTA")
	other := createTestProject(t, db, "tenant1", "Phoenix", "Acme")

	meetings := NewMeetingRepository(db)
	for i := 0; i < 3; i++ {
		err := meetings.Create(ctx, &meeting.Meeting{
			TenantID:    "tenant1",
			ProjectID:   proj.ID,
			MeetingDate: time.Date(2025, 6, i+1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	issues := NewIssueRepository(db)
	err := issues.Create(ctx, &issue.Issue{
		TenantID:     "tenant1",
		ProjectID:    proj.ID,
		DateReported: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:       issue.StatusPending,
	})
	require.NoError(t, err)
	err = issues.Create(ctx, &issue.Issue{
		TenantID:     "tenant1",
		ProjectID:    proj.ID,
		DateReported: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       issue.StatusResolved,
	})
	require.NoError(t, err)

	updates := NewUpdateRepository(db)
	for day := 1; day <= 6; day++ {
		err := updates.Create(ctx, &update.ClientUpdate{
			TenantID:   "tenant1",
			ProjectID:  proj.ID,
			UpdateDate: time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
			Summary:    "update",
		})
		require.NoError(t, err)
	}
	// A row on another project must not leak into the summary
	err = updates.Create(ctx, &update.ClientUpdate{
		TenantID:   "tenant1",
		ProjectID:  other.ID,
		UpdateDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Summary:    "other project",
	})
	require.NoError(t, err)

	summary, err := repo.GetSummary(ctx, proj.ID)
	require.NoError(t, err)
	require.Equal(t, 3, summary.MeetingCount)
	require.Equal(t, 2, summary.IssueCount)
	require.Equal(t, 1, summary.PendingIssueCount)
	require.Len(t, summary.RecentUpdates, 5, "capped at the five newest")
	require.Equal(t, "2025-06-06", summary.RecentUpdates[0].UpdateDate.Format("2006-01-02"))
	require.Equal(t, "2025-06-02", summary.RecentUpdates[4].UpdateDate.Format("2006-01-02"))
	for _, upd := range summary.RecentUpdates {
		require.Equal(t, proj.ID, upd.ProjectID)
	}
}

func TestProjectRepository_GetSummaryEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	proj := createTestProject(t, db, "tenant1", "Fresh", "C1")

	summary, err := repo.GetSummary(ctx, proj.ID)
	require.NoError(t, err)
	require.Zero(t, summary.MeetingCount)
	require.Zero(t, summary.IssueCount)
	require.Zero(t, summary.PendingIssueCount)
	require.Empty(t, summary.RecentUpdates)
}
