package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/domain"
)

func SeedRole(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Role {
	tb.Helper()
	r := &domain.Role{Name: name, Description: "seed", Active: true}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed role: %v", err)
	}
	return r
}

func SeedPermission(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Permission {
	tb.Helper()
	p := &domain.Permission{Name: name, Description: "seed", Active: true}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed permission: %v", err)
	}
	return p
}

func SeedState(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.State {
	tb.Helper()
	s := &domain.State{Name: name, Active: true}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed state: %v", err)
	}
	return s
}

func SeedPerson(tb testing.TB, ctx context.Context, tx *gorm.DB) *domain.Person {
	tb.Helper()
	p := &domain.Person{FirstName: "Ana", LastName: "Pérez", DocumentNumber: "123"}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed person: %v", err)
	}
	return p
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	person := SeedPerson(tb, ctx, tx)
	u := &domain.User{
		Email:        email,
		PasswordHash: "hash",
		PersonID:     person.ID,
		Active:       true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedInstitution(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Institution {
	tb.Helper()
	i := &domain.Institution{Name: name, City: "Xalapa", Active: true}
	if err := tx.WithContext(ctx).Create(i).Error; err != nil {
		tb.Fatalf("seed institution: %v", err)
	}
	return i
}

func SeedForm(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Form {
	tb.Helper()
	f := &domain.Form{Name: name, Active: true}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed form: %v", err)
	}
	return f
}

func SeedExperience(tb testing.TB, ctx context.Context, tx *gorm.DB, institutionID, userID uint) *domain.Experience {
	tb.Helper()
	e := &domain.Experience{
		Name:          "experience",
		InstitutionID: institutionID,
		UserID:        userID,
		Active:        true,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed experience: %v", err)
	}
	return e
}

func SeedHistory(tb testing.TB, ctx context.Context, tx *gorm.DB, evaluationID, stateID, userID uint, note string) *domain.History {
	tb.Helper()
	h := &domain.History{
		EvaluationID: evaluationID,
		StateID:      stateID,
		UserID:       userID,
		Note:         note,
		ChangedAt:    time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(h).Error; err != nil {
		tb.Fatalf("seed history: %v", err)
	}
	return h
}

func SeedEvaluation(tb testing.TB, ctx context.Context, tx *gorm.DB, experienceID, userID, stateID uint) *domain.Evaluation {
	tb.Helper()
	now := time.Now().UTC()
	ev := &domain.Evaluation{
		ExperienceID: experienceID,
		UserID:       userID,
		StateID:      stateID,
		Score:        0,
		EvaluatedAt:  &now,
		Active:       true,
	}
	if err := tx.WithContext(ctx).Create(ev).Error; err != nil {
		tb.Fatalf("seed evaluation: %v", err)
	}
	return ev
}
