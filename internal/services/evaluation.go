package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/experience"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/ctxutil"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type EvaluationService interface {
	List(ctx context.Context) ([]*dto.Evaluation, error)
	Get(ctx context.Context, id uint) (*dto.Evaluation, error)
	Create(ctx context.Context, in *dto.Evaluation) (*dto.Evaluation, error)
	Update(ctx context.Context, id uint, in *dto.Evaluation) (*dto.Evaluation, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Evaluation, error)
	Delete(ctx context.Context, id uint) error
	ListByExperience(ctx context.Context, experienceID uint) ([]*dto.Evaluation, error)
	// ChangeState transitions the evaluation and appends a history row
	// in one transaction.
	ChangeState(ctx context.Context, id, stateID uint, note string) (*dto.Evaluation, error)
}

type evaluationService struct {
	*Lifecycle[domain.Evaluation, dto.Evaluation]
	db             *gorm.DB
	log            *logger.Logger
	evaluationRepo experience.EvaluationRepo
	historyRepo    experience.HistoryRepo
}

func NewEvaluationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	evaluationRepo experience.EvaluationRepo,
	historyRepo experience.HistoryRepo,
) EvaluationService {
	log := baseLog.With("service", "EvaluationService")
	return &evaluationService{
		Lifecycle: NewLifecycle(log, evaluationRepo, Descriptor[domain.Evaluation, dto.Evaluation]{
			Name:    "evaluation",
			ToDTO:   dto.EvaluationFromModel,
			ToModel: (*dto.Evaluation).ToModel,
			Validate: func(d *dto.Evaluation) error {
				return validate.First(
					validate.PositiveID("experience_id", d.ExperienceID),
					validate.PositiveID("user_id", d.UserID),
					validate.PositiveID("state_id", d.StateID),
				)
			},
			Patchable: map[string]string{
				"score":        "score",
				"comment":      "comment",
				"form_id":      "form_id",
				"evaluated_at": "evaluated_at",
				"active":       "active",
			},
			Delete: evaluationRepo.SoftDelete,
		}),
		db:             db,
		log:            log,
		evaluationRepo: evaluationRepo,
		historyRepo:    historyRepo,
	}
}

func (s *evaluationService) ListByExperience(ctx context.Context, experienceID uint) ([]*dto.Evaluation, error) {
	if v := validate.PositiveID("experience_id", experienceID); v != nil {
		return nil, v
	}
	ms, err := s.evaluationRepo.GetByExperienceID(ctx, nil, experienceID)
	if err != nil {
		return nil, apierr.External("evaluation", err)
	}
	return dto.EvaluationsFromModels(ms), nil
}

func (s *evaluationService) ChangeState(ctx context.Context, id, stateID uint, note string) (*dto.Evaluation, error) {
	if err := validate.First(
		validate.PositiveID("id", id),
		validate.PositiveID("state_id", stateID),
	); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.evaluationRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return apierr.NotFound("evaluation", id)
		}

		moved, err := s.evaluationRepo.ChangeState(ctx, tx, id, current.StateID, stateID)
		if err != nil {
			return err
		}
		if !moved {
			// Another transition won between the read and the write.
			return apierr.New(http.StatusConflict, "state_conflict",
				fmt.Errorf("evaluation %d moved out of state %d", id, current.StateID))
		}

		actor := current.UserID
		if rd := ctxutil.GetRequestData(ctx); rd != nil && rd.UserID != 0 {
			actor = rd.UserID
		}
		_, err = s.historyRepo.Create(ctx, tx, &domain.History{
			EvaluationID: id,
			StateID:      stateID,
			UserID:       actor,
			Note:         note,
			ChangedAt:    time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		if apierr.From(err) != nil {
			return nil, err
		}
		s.log.Error("change state failed", "id", id, "state_id", stateID, "error", err)
		return nil, apierr.External("evaluation", err)
	}
	return s.Get(ctx, id)
}

// Delete flags the evaluation inactive and removes its state trail in
// the same transaction.
func (s *evaluationService) Delete(ctx context.Context, id uint) error {
	if v := validate.PositiveID("id", id); v != nil {
		return v
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.evaluationRepo.SoftDelete(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("evaluation", id)
		}
		n, err := s.historyRepo.HardDeleteByEvaluationID(ctx, tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			s.log.Debug("state trail removed", "evaluation_id", id, "rows", n)
		}
		return nil
	})
	if err != nil {
		if apierr.From(err) != nil {
			return err
		}
		s.log.Error("delete failed", "entity", "evaluation", "id", id, "error", err)
		return apierr.External("evaluation", err)
	}
	return nil
}
