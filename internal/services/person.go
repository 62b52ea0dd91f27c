package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/data/repos/access"
	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/dto"
	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

type PersonService interface {
	List(ctx context.Context) ([]*dto.Person, error)
	Get(ctx context.Context, id uint) (*dto.Person, error)
	Create(ctx context.Context, in *dto.Person) (*dto.Person, error)
	Update(ctx context.Context, id uint, in *dto.Person) (*dto.Person, error)
	Patch(ctx context.Context, id uint, fields map[string]any) (*dto.Person, error)
	Delete(ctx context.Context, id uint) error
}

type personService struct {
	*Lifecycle[domain.Person, dto.Person]
	db         *gorm.DB
	log        *logger.Logger
	personRepo access.PersonRepo
	userRepo   access.UserRepo
}

func NewPersonService(db *gorm.DB, baseLog *logger.Logger, personRepo access.PersonRepo, userRepo access.UserRepo) PersonService {
	log := baseLog.With("service", "PersonService")
	return &personService{
		Lifecycle: NewLifecycle(log, personRepo, Descriptor[domain.Person, dto.Person]{
			Name:    "person",
			ToDTO:   dto.PersonFromModel,
			ToModel: (*dto.Person).ToModel,
			Validate: func(d *dto.Person) error {
				return validate.First(
					validate.Required("first_name", d.FirstName),
					validate.Required("last_name", d.LastName),
				)
			},
			Patchable: map[string]string{
				"first_name":      "first_name",
				"last_name":       "last_name",
				"document_number": "document_number",
				"phone":           "phone",
			},
			Delete: personRepo.HardDelete,
		}),
		db:         db,
		log:        log,
		personRepo: personRepo,
		userRepo:   userRepo,
	}
}

// Delete removes the person row for good. The dependent user row goes
// first, inside the same transaction, so a crash can never orphan a
// user pointing at a missing person.
func (s *personService) Delete(ctx context.Context, id uint) error {
	if v := validate.PositiveID("id", id); v != nil {
		return v
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.HardDeleteByPersonID(ctx, tx, id); err != nil {
			return err
		}
		ok, err := s.personRepo.HardDelete(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apierr.NotFound("person", id)
		}
		return nil
	})
	if err != nil {
		if apierr.From(err) != nil {
			return err
		}
		s.log.Error("delete failed", "entity", "person", "id", id, "error", err)
		return apierr.External("person", err)
	}
	return nil
}
