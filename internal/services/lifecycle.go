// Package services holds the use-case layer. One generic Lifecycle
// implements the list/get/create/update/patch/delete sequence shared by
// every entity; per-entity services embed it and add their own
// orchestration (registration, cascades, state transitions).
package services

import (
	"context"
	"encoding/json"
	"reflect"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/platform/apierr"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
	"github.com/hvaldez/experiencias-backend/internal/platform/validate"
)

// gateway is the slice of the persistence layer the lifecycle needs.
// Every entity repo satisfies it through the embedded generic base.
type gateway[M any] interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*M, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*M, error)
	Create(ctx context.Context, tx *gorm.DB, rec *M) (*M, error)
	Update(ctx context.Context, tx *gorm.DB, rec *M) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error)
}

// Descriptor wires one entity into the generic lifecycle.
type Descriptor[M any, D any] struct {
	// Name labels errors and logs ("role", "evaluation", ...).
	Name string
	// ToDTO / ToModel are the pure mapping functions from the dto package.
	ToDTO   func(*M) *D
	ToModel func(*D) *M
	// Validate holds the entity's precondition checks (required fields).
	Validate func(*D) error
	// Patchable maps accepted JSON field names to their columns; a patch
	// naming any other field is rejected.
	Patchable map[string]string
	// Delete applies the entity's deletion policy (soft flag flip or row
	// removal).
	Delete func(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type Lifecycle[M any, D any] struct {
	log  *logger.Logger
	gw   gateway[M]
	desc Descriptor[M, D]
}

func NewLifecycle[M any, D any](log *logger.Logger, gw gateway[M], desc Descriptor[M, D]) *Lifecycle[M, D] {
	return &Lifecycle[M, D]{log: log, gw: gw, desc: desc}
}

func (s *Lifecycle[M, D]) List(ctx context.Context) ([]*D, error) {
	ms, err := s.gw.GetAll(ctx, nil)
	if err != nil {
		s.log.Error("list failed", "entity", s.desc.Name, "error", err)
		return nil, apierr.External(s.desc.Name, err)
	}
	out := make([]*D, 0, len(ms))
	for _, m := range ms {
		out = append(out, s.desc.ToDTO(m))
	}
	return out, nil
}

func (s *Lifecycle[M, D]) Get(ctx context.Context, id uint) (*D, error) {
	if v := validate.PositiveID("id", id); v != nil {
		return nil, v
	}
	m, err := s.gw.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Error("get failed", "entity", s.desc.Name, "id", id, "error", err)
		return nil, apierr.External(s.desc.Name, err)
	}
	if m == nil {
		return nil, apierr.NotFound(s.desc.Name, id)
	}
	return s.desc.ToDTO(m), nil
}

func (s *Lifecycle[M, D]) Create(ctx context.Context, in *D) (*D, error) {
	if in == nil {
		return nil, apierr.Validation("body", "is required")
	}
	if err := s.desc.Validate(in); err != nil {
		return nil, err
	}
	m := s.desc.ToModel(in)
	setID(m, 0) // identity belongs to the store
	created, err := s.gw.Create(ctx, nil, m)
	if err != nil {
		s.log.Error("create failed", "entity", s.desc.Name, "error", err)
		return nil, apierr.External(s.desc.Name, err)
	}
	return s.desc.ToDTO(created), nil
}

// Update is the full-replace path. The conditional write reports
// not-found itself, so there is no separate existence check to race
// against.
func (s *Lifecycle[M, D]) Update(ctx context.Context, id uint, in *D) (*D, error) {
	if v := validate.PositiveID("id", id); v != nil {
		return nil, v
	}
	if in == nil {
		return nil, apierr.Validation("body", "is required")
	}
	if err := s.desc.Validate(in); err != nil {
		return nil, err
	}
	m := s.desc.ToModel(in)
	setID(m, id)
	ok, err := s.gw.Update(ctx, nil, m)
	if err != nil {
		s.log.Error("update failed", "entity", s.desc.Name, "id", id, "error", err)
		return nil, apierr.External(s.desc.Name, err)
	}
	if !ok {
		return nil, apierr.NotFound(s.desc.Name, id)
	}
	return s.refetch(ctx, id)
}

// Patch applies only the supplied fields, leaving the rest of the row
// untouched.
func (s *Lifecycle[M, D]) Patch(ctx context.Context, id uint, fields map[string]any) (*D, error) {
	if v := validate.PositiveID("id", id); v != nil {
		return nil, v
	}
	if len(fields) == 0 {
		return nil, apierr.Validation("body", "no fields to update")
	}
	columns := make(map[string]any, len(fields))
	for name, value := range fields {
		column, ok := s.desc.Patchable[name]
		if !ok {
			return nil, apierr.Validation(name, "is not updatable")
		}
		columns[column] = patchValue(value)
	}
	ok, err := s.gw.UpdateFields(ctx, nil, id, columns)
	if err != nil {
		s.log.Error("patch failed", "entity", s.desc.Name, "id", id, "error", err)
		return nil, apierr.External(s.desc.Name, err)
	}
	if !ok {
		return nil, apierr.NotFound(s.desc.Name, id)
	}
	return s.refetch(ctx, id)
}

func (s *Lifecycle[M, D]) Delete(ctx context.Context, id uint) error {
	if v := validate.PositiveID("id", id); v != nil {
		return v
	}
	ok, err := s.desc.Delete(ctx, nil, id)
	if err != nil {
		s.log.Error("delete failed", "entity", s.desc.Name, "id", id, "error", err)
		return apierr.External(s.desc.Name, err)
	}
	if !ok {
		return apierr.NotFound(s.desc.Name, id)
	}
	return nil
}

// refetch re-reads the row after a mutation; the store, not the input,
// is the source of current field values.
func (s *Lifecycle[M, D]) refetch(ctx context.Context, id uint) (*D, error) {
	m, err := s.gw.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Error("refetch failed", "entity", s.desc.Name, "id", id, "error", err)
		return nil, apierr.External(s.desc.Name, err)
	}
	if m == nil {
		return nil, apierr.NotFound(s.desc.Name, id)
	}
	return s.desc.ToDTO(m), nil
}

// patchValue keeps scalars as-is and re-encodes structured JSON bodies
// (form schemas) so the driver can store them in a JSON column.
func patchValue(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		raw, err := json.Marshal(v)
		if err != nil {
			return v
		}
		return datatypes.JSON(raw)
	default:
		return v
	}
}

// setID writes the surrogate key of any domain model. Every entity
// names its key field ID, which keeps this the single reflective spot
// in the layer.
func setID(m any, id uint) {
	f := reflect.ValueOf(m).Elem().FieldByName("ID")
	if f.IsValid() && f.CanSet() {
		f.SetUint(uint64(id))
	}
}
