// Package crud is the generic persistence gateway. One Repo[T] instance
// serves one entity type; per-entity repos embed it and add their own
// finders. Absence is never an error here: reads return (nil, nil) and
// writes return (false, nil) when no row matches, so callers own the
// not-found policy.
package crud

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

// Record is satisfied by every persisted domain type.
type Record interface {
	PrimaryKey() uint
	TableName() string
}

// Options fixes the per-entity gateway policy at construction time.
type Options struct {
	// ActiveOnly restricts GetAll to rows whose active flag is set.
	// GetByID is never filtered; soft-deleted rows stay retrievable.
	ActiveOnly bool
	// Preloads lists the navigations loaded on reads so DTO mapping can
	// flatten related names.
	Preloads []string
	// OmitOnUpdate names columns a full-replace Update must never touch
	// (creation stamps, columns the DTO does not carry, such as a user's
	// password hash). The primary key is always omitted.
	OmitOnUpdate []string
}

type Repo[T Record] struct {
	db   *gorm.DB
	log  *logger.Logger
	opts Options
}

func NewRepo[T Record](db *gorm.DB, log *logger.Logger, opts Options) Repo[T] {
	return Repo[T]{db: db, log: log, opts: opts}
}

// Handle resolves the gorm handle for one call: the supplied transaction
// when present, the pooled connection otherwise.
func (r *Repo[T]) Handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *Repo[T]) Log() *logger.Logger { return r.log }

func (r *Repo[T]) read(ctx context.Context, tx *gorm.DB) *gorm.DB {
	q := r.Handle(tx).WithContext(ctx)
	for _, p := range r.opts.Preloads {
		q = q.Preload(p)
	}
	return q
}

func (r *Repo[T]) GetAll(ctx context.Context, tx *gorm.DB) ([]*T, error) {
	q := r.read(ctx, tx)
	if r.opts.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	var out []*T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo[T]) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*T, error) {
	out := new(T)
	err := r.read(ctx, tx).Where("id = ?", id).First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo[T]) Create(ctx context.Context, tx *gorm.DB, rec *T) (*T, error) {
	if err := r.Handle(tx).WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// Update replaces every mutable column of the row matching rec's ID in a
// single conditional statement. The generated key and the entity's
// OmitOnUpdate columns are never overwritten.
func (r *Repo[T]) Update(ctx context.Context, tx *gorm.DB, rec *T) (bool, error) {
	var zero T
	omit := append([]string{"id"}, r.opts.OmitOnUpdate...)
	res := r.Handle(tx).WithContext(ctx).
		Model(&zero).
		Where("id = ?", (*rec).PrimaryKey()).
		Select("*").
		Omit(omit...).
		Updates(rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateFields marks only the supplied columns dirty; untouched columns
// keep whatever a concurrent writer left there.
func (r *Repo[T]) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, fields map[string]any) (bool, error) {
	var zero T
	res := r.Handle(tx).WithContext(ctx).
		Model(&zero).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repo[T]) SoftDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var zero T
	res := r.Handle(tx).WithContext(ctx).
		Model(&zero).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repo[T]) HardDelete(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var zero T
	res := r.Handle(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&zero)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FirstWhere is the shared building block for per-entity finders.
func FirstWhere[T Record](r *Repo[T], ctx context.Context, tx *gorm.DB, query string, args ...any) (*T, error) {
	out := new(T)
	err := r.read(ctx, tx).Where(query, args...).First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindWhere lists rows matching the condition, preloads applied. Like
// GetAll it hides soft-deleted rows when the repo is ActiveOnly;
// FirstWhere does not, so point lookups keep seeing flagged rows.
func FindWhere[T Record](r *Repo[T], ctx context.Context, tx *gorm.DB, query string, args ...any) ([]*T, error) {
	q := r.read(ctx, tx).Where(query, args...)
	if r.opts.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	var out []*T
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
