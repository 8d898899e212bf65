package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StageService handles the global stage catalog: public listing and
// admin maintenance. The catalog read path goes through the cache; any
// admin write invalidates it.
type StageService struct {
	stageRepo catalog.StageRepository
	cache     catalog.StageCache
	logger    *zap.Logger
}

// NewStageService creates a new StageService. cache may be nil, in which
// case every read hits the repository.
func NewStageService(stageRepo catalog.StageRepository, cache catalog.StageCache, logger *zap.Logger) *StageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StageService{
		stageRepo: stageRepo,
		cache:     cache,
		logger:    logger,
	}
}

// List returns all catalog stages sorted by order_index
func (s *StageService) List(ctx context.Context) ([]StageResponse, error) {
	stages, err := s.listStages(ctx)
	if err != nil {
		return nil, err
	}
	return ToStageResponses(stages), nil
}

// ListWithChecks returns all stages with their check items grouped,
// both sorted by order_index
func (s *StageService) ListWithChecks(ctx context.Context) ([]AdminStageResponse, error) {
	stages, err := s.stageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stageIDs := make([]uuid.UUID, len(stages))
	for i, st := range stages {
		stageIDs[i] = st.ID
	}

	checks, err := s.stageRepo.FindCheckItems(ctx, stageIDs)
	if err != nil {
		return nil, err
	}

	checksByStage := make(map[uuid.UUID][]CheckItemResponse, len(stages))
	for i := range checks {
		c := &checks[i]
		checksByStage[c.StageID] = append(checksByStage[c.StageID], ToCheckItemResponse(c))
	}

	responses := make([]AdminStageResponse, len(stages))
	for i := range stages {
		st := &stages[i]
		grouped := checksByStage[st.ID]
		if grouped == nil {
			grouped = []CheckItemResponse{}
		}
		responses[i] = AdminStageResponse{
			StageResponse: ToStageResponse(st),
			Checks:        grouped,
		}
	}
	return responses, nil
}

// Upsert creates or replaces a stage and its nested check items, then
// returns the stage with its full check list
func (s *StageService) Upsert(ctx context.Context, req UpsertStageRequest) (*AdminStageResponse, error) {
	stage, err := catalog.NewStage(req.Slug, req.Title, req.OrderIndex)
	if err != nil {
		return nil, err
	}
	stage.ShortExplanation = req.ShortExplanation
	stage.CommonMistakes = req.CommonMistakes
	stage.MustDocument = req.MustDocument
	if req.ID != nil {
		stage.ID = *req.ID
	}

	if err := s.stageRepo.SaveStage(ctx, stage); err != nil {
		return nil, err
	}

	for _, c := range req.Checks {
		item, err := catalog.NewCheckItem(stage.ID, c.Title, c.Description, c.OrderIndex)
		if err != nil {
			return nil, err
		}
		if c.ID != nil {
			item.ID = *c.ID
		}
		if err := s.stageRepo.SaveCheckItem(ctx, item); err != nil {
			return nil, err
		}
	}

	s.invalidateCache(ctx)

	checks, err := s.stageRepo.FindCheckItems(ctx, []uuid.UUID{stage.ID})
	if err != nil {
		return nil, err
	}
	checkResponses := make([]CheckItemResponse, len(checks))
	for i := range checks {
		checkResponses[i] = ToCheckItemResponse(&checks[i])
	}

	return &AdminStageResponse{
		StageResponse: ToStageResponse(stage),
		Checks:        checkResponses,
	}, nil
}

// listStages reads the catalog through the cache
func (s *StageService) listStages(ctx context.Context) ([]catalog.Stage, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx); err == nil && ok {
			return cached, nil
		} else if err != nil {
			s.logger.Warn("stage cache read failed", zap.Error(err))
		}
	}

	stages, err := s.stageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].OrderIndex < stages[j].OrderIndex
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, stages); err != nil {
			s.logger.Warn("stage cache write failed", zap.Error(err))
		}
	}
	return stages, nil
}

// invalidateCache drops the cached catalog after an admin write
func (s *StageService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("stage cache invalidation failed", zap.Error(err))
	}
}
