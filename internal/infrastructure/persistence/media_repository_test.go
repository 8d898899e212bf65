package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormMediaRepository_FindByProject(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormMediaRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	stageID := uuid.New()

	older, err := project.NewMedia(projectID, nil, "p/1_site.jpg", "Site overview", nil)
	require.NoError(t, err)
	older.CreatedAt = time.Now().Add(-time.Hour)
	taken := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	staged, err := project.NewMedia(projectID, &stageID, "p/2_rebar.jpg", "Rebar before pour", &taken)
	require.NoError(t, err)
	foreign, err := project.NewMedia(uuid.New(), nil, "q/1_other.jpg", "", nil)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, staged))
	require.NoError(t, repo.Save(ctx, foreign))

	t.Run("returns all project media newest first", func(t *testing.T) {
		media, err := repo.FindByProject(ctx, projectID, nil)
		require.NoError(t, err)
		require.Len(t, media, 2)
		assert.Equal(t, "p/2_rebar.jpg", media[0].StoragePath)
		assert.Equal(t, "p/1_site.jpg", media[1].StoragePath)
	})

	t.Run("stage filter returns only that stage's media", func(t *testing.T) {
		media, err := repo.FindByProject(ctx, projectID, &stageID)
		require.NoError(t, err)
		require.Len(t, media, 1)
		assert.Equal(t, "Rebar before pour", media[0].Caption)
		require.NotNil(t, media[0].TakenAt)
	})
}
