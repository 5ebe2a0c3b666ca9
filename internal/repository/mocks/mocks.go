package mocks

import (
	"context"

	"github.com/projectops/assistant/internal/domain/issue"
	"github.com/projectops/assistant/internal/domain/meeting"
	"github.com/projectops/assistant/internal/domain/project"
	"github.com/projectops/assistant/internal/domain/update"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Search(ctx context.Context, query string) ([]project.Project, error) {
	args := m.Called(ctx, query)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Project, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetSummary(ctx context.Context, projectID int64) (project.Summary, error) {
	args := m.Called(ctx, projectID)
	if summary, ok := args.Get(0).(project.Summary); ok {
		return summary, args.Error(1)
	}
	return project.Summary{}, args.Error(1)
}

// MeetingRepository is a mock for repository.MeetingRepository.
type MeetingRepository struct {
	mock.Mock
}

func (m *MeetingRepository) Create(ctx context.Context, mtg *meeting.Meeting) error {
	args := m.Called(ctx, mtg)
	return args.Error(0)
}

func (m *MeetingRepository) ListAll(ctx context.Context, tenantID string) ([]meeting.Meeting, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]meeting.Meeting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) ListByProject(ctx context.Context, projectID int64) ([]meeting.Meeting, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]meeting.Meeting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// IssueRepository is a mock for repository.IssueRepository.
type IssueRepository struct {
	mock.Mock
}

func (m *IssueRepository) Create(ctx context.Context, iss *issue.Issue) error {
	args := m.Called(ctx, iss)
	return args.Error(0)
}

func (m *IssueRepository) ListAll(ctx context.Context, tenantID string) ([]issue.Issue, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]issue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IssueRepository) ListByProject(ctx context.Context, projectID int64) ([]issue.Issue, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]issue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateRepository is a mock for repository.UpdateRepository.
type UpdateRepository struct {
	mock.Mock
}

func (m *UpdateRepository) Create(ctx context.Context, upd *update.ClientUpdate) error {
	args := m.Called(ctx, upd)
	return args.Error(0)
}

func (m *UpdateRepository) ListByProject(ctx context.Context, projectID int64, tenantID string) ([]update.ClientUpdate, error) {
	args := m.Called(ctx, projectID, tenantID)
	if list, ok := args.Get(0).([]update.ClientUpdate); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
