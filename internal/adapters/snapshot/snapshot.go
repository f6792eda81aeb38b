// Package snapshot reads device registry dumps for import into the local registry.
//
// A dump lists users, their packages and the activities each package declares:
//
//	users:
//	  - id: 0
//	    packages:
//	      - name: org.example.mod
//	        label: Example Module
//	        first_install_time: 1700000000000
//	        last_update_time: 1700000500000
//	        activities:
//	          - name: org.example.mod.SettingsActivity
//	            categories: [de.robv.android.xposed.category.MODULE_SETTINGS]
package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"appcatalog/internal/domain"
)

// Snapshot is a parsed registry dump
type Snapshot struct {
	Users []User `yaml:"users" validate:"dive"`
}

// User is one device user profile
type User struct {
	ID       int       `yaml:"id" validate:"min=0"`
	Packages []Package `yaml:"packages" validate:"dive"`
}

// Package is an installed (or retained) package
type Package struct {
	Name             string     `yaml:"name" validate:"required"`
	Label            string     `yaml:"label"`
	FirstInstallTime int64      `yaml:"first_install_time" validate:"min=0"`
	LastUpdateTime   int64      `yaml:"last_update_time" validate:"gtefield=FirstInstallTime"`
	Uninstalled      bool       `yaml:"uninstalled"`
	Activities       []Activity `yaml:"activities" validate:"dive"`
}

// Activity is an activity and the categories it handles
type Activity struct {
	Name       string   `yaml:"name" validate:"required"`
	Action     string   `yaml:"action"`
	Categories []string `yaml:"categories" validate:"min=1,dive,required"`
	Priority   int      `yaml:"priority"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the dump at path
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads and validates a dump
func Parse(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &s, nil
}

// Records flattens the dump into app and activity records.
// Activities without an explicit action handle MAIN.
func (s *Snapshot) Records() ([]domain.AppRecord, []domain.ActivityRecord) {
	var apps []domain.AppRecord
	var activities []domain.ActivityRecord

	for _, u := range s.Users {
		for _, p := range u.Packages {
			apps = append(apps, domain.AppRecord{
				PackageName:      p.Name,
				UserID:           u.ID,
				Label:            p.Label,
				FirstInstallTime: p.FirstInstallTime,
				LastUpdateTime:   p.LastUpdateTime,
				Uninstalled:      p.Uninstalled,
			})

			for _, a := range p.Activities {
				action := a.Action
				if action == "" {
					action = domain.ActionMain
				}
				for _, c := range a.Categories {
					activities = append(activities, domain.ActivityRecord{
						UserID:       u.ID,
						PackageName:  p.Name,
						ActivityName: a.Name,
						Action:       action,
						Category:     c,
						Priority:     a.Priority,
					})
				}
			}
		}
	}

	return apps, activities
}
