package project

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	t.Run("creates project with valid inputs", func(t *testing.T) {
		p, err := NewProject("user-1", "Lakeside house", "12 Shore Rd")
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, "user-1", p.OwnerUserID)
		assert.Equal(t, "Lakeside house", p.Name)
		assert.Equal(t, "12 Shore Rd", p.LocationText)
		assert.NotEmpty(t, p.ID)
	})

	t.Run("allows empty location", func(t *testing.T) {
		p, err := NewProject("user-1", "Lakeside house", "")
		require.NoError(t, err)
		assert.Empty(t, p.LocationText)
	})

	t.Run("fails with empty owner", func(t *testing.T) {
		_, err := NewProject("", "Lakeside house", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "owner cannot be empty")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProject("user-1", "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewProject("user-1", strings.Repeat("x", 201), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 200 characters")
	})
}

func TestNewStageStatus(t *testing.T) {
	projectID := uuid.New()
	stageID := uuid.New()

	t.Run("creates status for each known value", func(t *testing.T) {
		for _, v := range []StageStatusValue{StageNotStarted, StageInProgress, StageDone} {
			s, err := NewStageStatus(projectID, stageID, v)
			require.NoError(t, err)
			assert.Equal(t, v, s.Status)
		}
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		_, err := NewStageStatus(projectID, stageID, StageStatusValue("paused"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not_started, in_progress, or done")
	})
}

func TestStageStatusSetStatus(t *testing.T) {
	s, err := NewStageStatus(uuid.New(), uuid.New(), StageNotStarted)
	require.NoError(t, err)

	require.NoError(t, s.SetStatus(StageDone))
	assert.Equal(t, StageDone, s.Status)

	require.Error(t, s.SetStatus(StageStatusValue("")))
	assert.Equal(t, StageDone, s.Status)
}

func TestNewNote(t *testing.T) {
	projectID := uuid.New()

	t.Run("creates note without stage", func(t *testing.T) {
		n, err := NewNote(projectID, nil, "poured today")
		require.NoError(t, err)
		assert.Nil(t, n.StageID)
		assert.Equal(t, "poured today", n.Body)
	})

	t.Run("keeps given stage id", func(t *testing.T) {
		stageID := uuid.New()
		n, err := NewNote(projectID, &stageID, "poured today")
		require.NoError(t, err)
		require.NotNil(t, n.StageID)
		assert.Equal(t, stageID, *n.StageID)
	})

	t.Run("fails with empty body", func(t *testing.T) {
		_, err := NewNote(projectID, nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "body cannot be empty")
	})
}

func TestNewMedia(t *testing.T) {
	projectID := uuid.New()

	t.Run("creates media record", func(t *testing.T) {
		m, err := NewMedia(projectID, nil, projectID.String()+"/abc_wall.jpg", "north wall", nil)
		require.NoError(t, err)
		assert.Equal(t, projectID, m.ProjectID)
		assert.Equal(t, "north wall", m.Caption)
	})

	t.Run("fails with empty storage path", func(t *testing.T) {
		_, err := NewMedia(projectID, nil, "", "", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage path cannot be empty")
	})
}
