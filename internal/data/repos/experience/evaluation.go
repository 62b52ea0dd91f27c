package experience

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/crud"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

type EvaluationRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*domain.Evaluation, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Evaluation, error)
	Create(ctx context.Context, tx *gorm.DB, evaluation *domain.Evaluation) (*domain.Evaluation, error)
	Update(ctx context.Context, tx *gorm.DB, evaluation *domain.Evaluation) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetByExperienceID(ctx context.Context, tx *gorm.DB, experienceID uint) ([]*domain.Evaluation, error)
	// ChangeState moves the evaluation to the new state only if it is
	// still in the state the caller saw, so two concurrent transitions
	// cannot both win.
	ChangeState(ctx context.Context, tx *gorm.DB, id, fromStateID, toStateID uint) (bool, error)
}

type evaluationRepo struct {
	crud.Repo[domain.Evaluation]
}

func NewEvaluationRepo(db *gorm.DB, baseLog *logger.Logger) EvaluationRepo {
	return &evaluationRepo{
		Repo: crud.NewRepo[domain.Evaluation](db, baseLog.With("repo", "EvaluationRepo"), crud.Options{
			ActiveOnly: true,
			Preloads:   []string{"Experience", "User", "User.Person", "State", "Form"},
		}),
	}
}

func (r *evaluationRepo) GetByExperienceID(ctx context.Context, tx *gorm.DB, experienceID uint) ([]*domain.Evaluation, error) {
	return crud.FindWhere(&r.Repo, ctx, tx, "experience_id = ?", experienceID)
}

func (r *evaluationRepo) ChangeState(ctx context.Context, tx *gorm.DB, id, fromStateID, toStateID uint) (bool, error) {
	res := r.Handle(tx).WithContext(ctx).
		Model(&domain.Evaluation{}).
		Where("id = ? AND state_id = ?", id, fromStateID).
		Update("state_id", toStateID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
