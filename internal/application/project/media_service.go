package project

import (
	"context"
	"fmt"
	"time"

	"github.com/buildtrack/backend/internal/domain/project"
	"github.com/buildtrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ObjectStorageService defines the interface for object storage
// operations. Implemented by the infrastructure layer (S3 or stub).
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file.
	// Returns the upload URL and its expiration time.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
}

// MediaServiceConfig holds configuration for the media service
type MediaServiceConfig struct {
	// UploadURLExpiry is the duration for which upload URLs are valid
	UploadURLExpiry time.Duration
}

// DefaultMediaServiceConfig returns the default configuration
func DefaultMediaServiceConfig() MediaServiceConfig {
	return MediaServiceConfig{
		UploadURLExpiry: time.Hour,
	}
}

// MediaService registers media uploads. It issues a presigned URL and
// persists the media row immediately; there is no upload confirmation,
// so a failed client upload leaves a row pointing at a missing object.
type MediaService struct {
	authorizer     *Authorizer
	mediaRepo      project.MediaRepository
	storageService ObjectStorageService
	config         MediaServiceConfig
}

// NewMediaService creates a new MediaService
func NewMediaService(
	authorizer *Authorizer,
	mediaRepo project.MediaRepository,
	storageService ObjectStorageService,
) *MediaService {
	return &MediaService{
		authorizer:     authorizer,
		mediaRepo:      mediaRepo,
		storageService: storageService,
		config:         DefaultMediaServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *MediaService) SetConfig(config MediaServiceConfig) {
	s.config = config
}

// CreateUpload issues a presigned upload URL and records the media row
func (s *MediaService) CreateUpload(ctx context.Context, ownerUserID string, projectID uuid.UUID, req CreateUploadRequest) (*CreateUploadResponse, error) {
	if _, err := s.authorizer.Authorize(ctx, projectID, ownerUserID); err != nil {
		return nil, err
	}

	storageKey := generateStorageKey(projectID, req.Filename)

	uploadURL, expiresAt, err := s.storageService.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		return nil, shared.ErrStorageFailure
	}

	media, err := project.NewMedia(projectID, req.StageID, storageKey, "", nil)
	if err != nil {
		return nil, err
	}

	if err := s.mediaRepo.Save(ctx, media); err != nil {
		return nil, err
	}

	return &CreateUploadResponse{
		MediaID:     media.ID,
		UploadURL:   uploadURL,
		StoragePath: storageKey,
		ExpiresAt:   expiresAt,
	}, nil
}

// generateStorageKey builds the object key for an upload. Keys are
// namespaced by project so one listing prefix covers a whole project.
func generateStorageKey(projectID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s_%s", projectID.String(), uuid.New().String(), filename)
}
