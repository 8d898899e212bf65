package project

import (
	"context"
	"testing"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates project for caller", func(t *testing.T) {
		repo := new(MockProjectRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*project.Project")).Return(nil)

		svc := NewProjectService(repo)
		resp, err := svc.Create(ctx, testOwner(), CreateProjectRequest{
			Name:         "Lakeside house",
			LocationText: "12 Shore Rd",
		})
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, "Lakeside house", resp.Name)
		assert.Equal(t, "12 Shore Rd", resp.LocationText)
		assert.NotEqual(t, uuid.Nil, resp.ID)

		saved := repo.Calls[0].Arguments.Get(1).(*project.Project)
		assert.Equal(t, testOwner(), saved.OwnerUserID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty name before touching the repository", func(t *testing.T) {
		repo := new(MockProjectRepository)

		svc := NewProjectService(repo)
		_, err := svc.Create(ctx, testOwner(), CreateProjectRequest{Name: ""})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProjectServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the caller's projects", func(t *testing.T) {
		mine := []project.Project{*testProject(testOwner()), *testProject(testOwner())}
		repo := new(MockProjectRepository)
		repo.On("FindAllForOwner", ctx, testOwner()).Return(mine, nil)

		svc := NewProjectService(repo)
		resp, err := svc.List(ctx, testOwner())
		require.NoError(t, err)
		assert.Len(t, resp, 2)
		repo.AssertExpectations(t)
	})

	t.Run("returns empty list for new owner", func(t *testing.T) {
		repo := new(MockProjectRepository)
		repo.On("FindAllForOwner", ctx, "someone-else").Return([]project.Project{}, nil)

		svc := NewProjectService(repo)
		resp, err := svc.List(ctx, "someone-else")
		require.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestAuthorizer(t *testing.T) {
	ctx := context.Background()

	t.Run("returns project for its owner", func(t *testing.T) {
		p := testProject(testOwner())
		repo := new(MockProjectRepository)
		repo.On("FindByIDForOwner", ctx, p.ID, testOwner()).Return(p, nil)

		got, err := NewAuthorizer(repo).Authorize(ctx, p.ID, testOwner())
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	})

	t.Run("missing project answers NOT_AUTHORIZED", func(t *testing.T) {
		id := uuid.New()
		repo := new(MockProjectRepository)
		repo.On("FindByIDForOwner", ctx, id, testOwner()).Return(nil, shared.ErrNotFound)

		_, err := NewAuthorizer(repo).Authorize(ctx, id, testOwner())
		assert.ErrorIs(t, err, shared.ErrNotAuthorized)
	})

	t.Run("foreign project answers the same NOT_AUTHORIZED", func(t *testing.T) {
		p := testProject("someone-else")
		repo := new(MockProjectRepository)
		repo.On("FindByIDForOwner", ctx, p.ID, testOwner()).Return(nil, shared.ErrNotFound)

		_, errForeign := NewAuthorizer(repo).Authorize(ctx, p.ID, testOwner())

		id := uuid.New()
		repo.On("FindByIDForOwner", ctx, id, testOwner()).Return(nil, shared.ErrNotFound)
		_, errMissing := NewAuthorizer(repo).Authorize(ctx, id, testOwner())

		assert.Equal(t, errMissing, errForeign)
	})
}
