package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/experience"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

// HistoryService is read-mostly: rows are written by evaluation state
// changes; only the free-text note can be amended afterwards.
type HistoryService interface {
	List(ctx context.Context) ([]*dto.History, error)
	Get(ctx context.Context, id uint) (*dto.History, error)
	ListByEvaluation(ctx context.Context, evaluationID uint) ([]*dto.History, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.History, error)
	Delete(ctx context.Context, id uint) error
}

type historyService struct {
	db          *gorm.DB
	log         *logger.Logger
	historyRepo experience.HistoryRepo
}

func NewHistoryService(db *gorm.DB, baseLog *logger.Logger, historyRepo experience.HistoryRepo) HistoryService {
	return &historyService{
		db:          db,
		log:         baseLog.With("service", "HistoryService"),
		historyRepo: historyRepo,
	}
}

func (s *historyService) List(ctx context.Context) ([]*dto.History, error) {
	ms, err := s.historyRepo.GetAll(ctx, nil)
	if err != nil {
		s.log.Error("list failed", "entity", "history", "error", err)
		return nil, apierr.External("history", err)
	}
	return dto.HistoriesFromModels(ms), nil
}

func (s *historyService) Get(ctx context.Context, id uint) (*dto.History, error) {
	if v := validate.PositiveID("id", id); v != nil {
		return nil, v
	}
	m, err := s.historyRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Error("get failed", "entity", "history", "id", id, "error", err)
		return nil, apierr.External("history", err)
	}
	if m == nil {
		return nil, apierr.NotFound("history", id)
	}
	return dto.HistoryFromModel(m), nil
}

func (s *historyService) ListByEvaluation(ctx context.Context, evaluationID uint) ([]*dto.History, error) {
	if v := validate.PositiveID("evaluation_id", evaluationID); v != nil {
		return nil, v
	}
	ms, err := s.historyRepo.GetByEvaluationID(ctx, nil, evaluationID)
	if err != nil {
		s.log.Error("list by evaluation failed", "evaluation_id", evaluationID, "error", err)
		return nil, apierr.External("history", err)
	}
	return dto.HistoriesFromModels(ms), nil
}

func (s *historyService) Patch(ctx context.Context, id uint, fields map[string]any) (*dto.History, error) {
	if v := validate.PositiveID("id", id); v != nil {
		return nil, v
	}
	note, ok := fields["note"]
	if !ok || len(fields) != 1 {
		return nil, apierr.Validation("note", "is the only updatable field")
	}
	changed, err := s.historyRepo.UpdateFields(ctx, nil, id, map[string]any{"note": note})
	if err != nil {
		s.log.Error("patch failed", "entity", "history", "id", id, "error", err)
		return nil, apierr.External("history", err)
	}
	if !changed {
		return nil, apierr.NotFound("history", id)
	}
	return s.Get(ctx, id)
}

func (s *historyService) Delete(ctx context.Context, id uint) error {
	if v := validate.PositiveID("id", id); v != nil {
		return v
	}
	ok, err := s.historyRepo.HardDelete(ctx, nil, id)
	if err != nil {
		s.log.Error("delete failed", "entity", "history", "id", id, "error", err)
		return apierr.External("history", err)
	}
	if !ok {
		return apierr.NotFound("history", id)
	}
	return nil
}
