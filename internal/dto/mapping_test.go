package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaldez/experiencias-backend/internal/domain"
)

func TestUserFromModelFlattensPerson(t *testing.T) {
	m := &domain.User{
		ID:           3,
		Email:        "ana@uv.mx",
		PasswordHash: "never-leaves",
		PersonID:     7,
		Active:       true,
		Person:       &domain.Person{ID: 7, FirstName: "Ana", LastName: "Pérez"},
	}

	d := UserFromModel(m)
	require.NotNil(t, d)
	assert.Equal(t, "Ana Pérez", d.PersonName)
	assert.Empty(t, d.Password)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "never-leaves")
	assert.NotContains(t, string(raw), "password_hash")
}

func TestUserFromModelWithoutPerson(t *testing.T) {
	d := UserFromModel(&domain.User{ID: 1, Email: "solo@uv.mx"})
	require.NotNil(t, d)
	assert.Empty(t, d.PersonName)
}

func TestUserToModelNeverCarriesPassword(t *testing.T) {
	m := (&User{ID: 2, Email: "x@uv.mx", Password: "plaintext", PersonID: 5}).ToModel()
	assert.Empty(t, m.PasswordHash)
	assert.Equal(t, "x@uv.mx", m.Email)
}

func TestExperienceMappingFlattensNavigations(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	m := &domain.Experience{
		ID:            4,
		Name:          "Servicio social",
		InstitutionID: 9,
		UserID:        3,
		StartDate:     &start,
		Active:        true,
		Institution:   &domain.Institution{ID: 9, Name: "Facultad de Pedagogía"},
		User:          &domain.User{ID: 3, Email: "tutor@uv.mx"},
	}

	d := ExperienceFromModel(m)
	require.NotNil(t, d)
	assert.Equal(t, "Facultad de Pedagogía", d.InstitutionName)
	assert.Equal(t, "tutor@uv.mx", d.UserName)
	require.NotNil(t, d.StartDate)
	assert.True(t, d.StartDate.Equal(start))
	assert.Nil(t, d.EndDate)
}

func TestExperienceMappingMissingNavigations(t *testing.T) {
	d := ExperienceFromModel(&domain.Experience{ID: 1, Name: "x"})
	require.NotNil(t, d)
	assert.Empty(t, d.InstitutionName)
	assert.Empty(t, d.UserName)
}

func TestListMappersPreserveOrderAndNils(t *testing.T) {
	roles := RolesFromModels([]*domain.Role{
		{ID: 2, Name: "b"},
		{ID: 1, Name: "a"},
	})
	require.Len(t, roles, 2)
	assert.Equal(t, uint(2), roles[0].ID)
	assert.Equal(t, uint(1), roles[1].ID)

	assert.Empty(t, RolesFromModels(nil))
	assert.Nil(t, RoleFromModel(nil))
	assert.Nil(t, EvaluationFromModel(nil))
	assert.Nil(t, HistoryFromModel(nil))
}

func TestRoleRoundTrip(t *testing.T) {
	in := &Role{ID: 6, Name: "Evaluador", Description: "reviews", Active: true}
	out := RoleFromModel(in.ToModel())
	assert.Equal(t, in, out)
}
