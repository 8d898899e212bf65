package project

import (
	"context"
	"time"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindByIDForOwner(ctx context.Context, id uuid.UUID, ownerUserID string) (*project.Project, error) {
	args := m.Called(ctx, id, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAllForOwner(ctx context.Context, ownerUserID string) ([]project.Project, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *MockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

var _ project.ProjectRepository = (*MockProjectRepository)(nil)

// MockStageRepository is a mock implementation of catalog.StageRepository
type MockStageRepository struct {
	mock.Mock
}

func (m *MockStageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Stage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Stage), args.Error(1)
}

func (m *MockStageRepository) FindAll(ctx context.Context) ([]catalog.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Stage), args.Error(1)
}

func (m *MockStageRepository) FindCheckItems(ctx context.Context, stageIDs []uuid.UUID) ([]catalog.CheckItem, error) {
	args := m.Called(ctx, stageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.CheckItem), args.Error(1)
}

func (m *MockStageRepository) FindCheckItemByID(ctx context.Context, id uuid.UUID) (*catalog.CheckItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CheckItem), args.Error(1)
}

func (m *MockStageRepository) SaveStage(ctx context.Context, stage *catalog.Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

func (m *MockStageRepository) SaveCheckItem(ctx context.Context, item *catalog.CheckItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

var _ catalog.StageRepository = (*MockStageRepository)(nil)

// MockProgressRepository is a mock implementation of ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) FindStageStatuses(ctx context.Context, projectID uuid.UUID) ([]project.StageStatus, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.StageStatus), args.Error(1)
}

func (m *MockProgressRepository) UpsertStageStatus(ctx context.Context, status *project.StageStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockProgressRepository) FindCheckResults(ctx context.Context, projectID uuid.UUID) ([]project.CheckResult, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.CheckResult), args.Error(1)
}

func (m *MockProgressRepository) UpsertCheckResult(ctx context.Context, result *project.CheckResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

var _ project.ProgressRepository = (*MockProgressRepository)(nil)

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Save(ctx context.Context, note *project.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByProject(ctx context.Context, projectID uuid.UUID, stageID *uuid.UUID) ([]project.Note, error) {
	args := m.Called(ctx, projectID, stageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Note), args.Error(1)
}

var _ project.NoteRepository = (*MockNoteRepository)(nil)

// MockMediaRepository is a mock implementation of MediaRepository
type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Save(ctx context.Context, media *project.Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockMediaRepository) FindByProject(ctx context.Context, projectID uuid.UUID, stageID *uuid.UUID) ([]project.Media, error) {
	args := m.Called(ctx, projectID, stageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Media), args.Error(1)
}

var _ project.MediaRepository = (*MockMediaRepository)(nil)

// MockObjectStorageService is a mock implementation of ObjectStorageService
type MockObjectStorageService struct {
	mock.Mock
}

func (m *MockObjectStorageService) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ ObjectStorageService = (*MockObjectStorageService)(nil)

// MockAIResponder is a mock implementation of AIResponder
type MockAIResponder struct {
	mock.Mock
}

func (m *MockAIResponder) Ask(ctx context.Context, question, projectContext, stageContext string) (string, error) {
	args := m.Called(ctx, question, projectContext, stageContext)
	return args.String(0), args.Error(1)
}

var _ AIResponder = (*MockAIResponder)(nil)

// Test fixtures shared across the service tests

func testOwner() string {
	return "user-1"
}

func testProject(owner string) *project.Project {
	p, _ := project.NewProject(owner, "Lakeside house", "12 Shore Rd")
	return p
}

func testStage(slug string, orderIndex int) *catalog.Stage {
	s, _ := catalog.NewStage(slug, "Stage "+slug, orderIndex)
	s.ShortExplanation = "What happens during " + slug + "."
	s.CommonMistakes = "Rushing " + slug + "."
	s.MustDocument = "Photos of " + slug + "."
	return s
}

func testCheckItem(stageID uuid.UUID, title string, orderIndex int) *catalog.CheckItem {
	c, _ := catalog.NewCheckItem(stageID, title, "", orderIndex)
	return c
}
