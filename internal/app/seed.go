package app

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/hvaldez/experiencias-backend/internal/domain"
	"github.com/hvaldez/experiencias-backend/internal/platform/logger"
)

// Defaults is the bootstrap catalog loaded from configs/defaults.yaml.
// Seeding is idempotent: rows are matched by name and never duplicated.
type Defaults struct {
	DefaultRole       string `yaml:"default_role"`
	DefaultPermission string `yaml:"default_permission"`

	Roles []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"roles"`

	Permissions []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"permissions"`

	States []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"states"`

	Modules []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Route       string `yaml:"route"`
	} `yaml:"modules"`
}

func LoadDefaults(path string) (Defaults, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("read defaults file: %w", err)
	}
	var d Defaults
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Defaults{}, fmt.Errorf("parse defaults file: %w", err)
	}
	return d, nil
}

func seedDefaults(ctx context.Context, db *gorm.DB, log *logger.Logger, repos Repos, d Defaults) error {
	log.Info("seeding default catalog rows")
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, r := range d.Roles {
			existing, err := repos.Role.GetByName(ctx, tx, r.Name)
			if err != nil {
				return fmt.Errorf("seed role %q: %w", r.Name, err)
			}
			if existing != nil {
				continue
			}
			if _, err := repos.Role.Create(ctx, tx, &domain.Role{Name: r.Name, Description: r.Description, Active: true}); err != nil {
				return fmt.Errorf("seed role %q: %w", r.Name, err)
			}
		}
		for _, p := range d.Permissions {
			existing, err := repos.Permission.GetByName(ctx, tx, p.Name)
			if err != nil {
				return fmt.Errorf("seed permission %q: %w", p.Name, err)
			}
			if existing != nil {
				continue
			}
			if _, err := repos.Permission.Create(ctx, tx, &domain.Permission{Name: p.Name, Description: p.Description, Active: true}); err != nil {
				return fmt.Errorf("seed permission %q: %w", p.Name, err)
			}
		}
		for _, s := range d.States {
			existing, err := repos.State.GetByName(ctx, tx, s.Name)
			if err != nil {
				return fmt.Errorf("seed state %q: %w", s.Name, err)
			}
			if existing != nil {
				continue
			}
			if _, err := repos.State.Create(ctx, tx, &domain.State{Name: s.Name, Description: s.Description, Active: true}); err != nil {
				return fmt.Errorf("seed state %q: %w", s.Name, err)
			}
		}
		for _, m := range d.Modules {
			existing, err := repos.Module.GetByName(ctx, tx, m.Name)
			if err != nil {
				return fmt.Errorf("seed module %q: %w", m.Name, err)
			}
			if existing != nil {
				continue
			}
			if _, err := repos.Module.Create(ctx, tx, &domain.Module{Name: m.Name, Description: m.Description, Route: m.Route, Active: true}); err != nil {
				return fmt.Errorf("seed module %q: %w", m.Name, err)
			}
		}
		return nil
	})
}
