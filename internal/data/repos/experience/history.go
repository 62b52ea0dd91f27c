package experience

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type HistoryRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.History, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.History, error)
	Create(ctx context.Context, tx *gorm.DB, history *domain.History) (*domain.History, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	HardDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByEvaluationID(ctx context.Context, tx *gorm.DB, evaluationID uint) ([]*domain.History, error)
	HardDeleteByEvaluationID(ctx context.Context, tx *gorm.DB, evaluationID uint) (int64, error)
}

type historyRepo struct {
	crud.Repo[domain.History]
}

func NewHistoryRepo(db *gorm.DB, baseLog *logger.Logger) HistoryRepo {
	return &historyRepo{
		Repo: crud.NewRepo[domain.History](db, baseLog.With("repo", "HistoryRepo"), crud.Options{
			Preloads: []string{"State", "User"},
		}),
	}
}

func (r *historyRepo) GetByEvaluationID(ctx context.Context, tx *gorm.DB, evaluationID uint) ([]*domain.History, error) {
	return crud.FindWhere(&r.Repo, ctx, tx, "evaluation_id = ?", evaluationID)
}

func (r *historyRepo) HardDeleteByEvaluationID(ctx context.Context, tx *gorm.DB, evaluationID uint) (int64, error) {
	res := r.Handle(tx).WithContext(ctx).
		Where("evaluation_id = ?", evaluationID).
		Delete(&domain.History{})
	return res.RowsAffected, res.Error
}
