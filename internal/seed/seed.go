// Package seed loads user directory fixtures from YAML and applies them to
// the store. The console never writes to the directory at runtime, so seeding
// is the supported way to populate it for demos and local development.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/admindesk/admindesk/internal/model"
	"github.com/admindesk/admindesk/internal/store"
)

// Fixture is the root of a seed file.
type Fixture struct {
	Users []UserFixture `yaml:"users"`
}

// UserFixture is one directory record in a seed file. ID may be omitted; a
// random one is assigned on apply.
type UserFixture struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Age     int    `yaml:"age"`
	Gender  string `yaml:"gender"`
	Country string `yaml:"country"`
	City    string `yaml:"city"`
	Company string `yaml:"company"`
}

// LoadFixture parses a YAML seed file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	for i, u := range f.Users {
		if u.Name == "" || u.Email == "" {
			return nil, fmt.Errorf("fixture user %d: name and email are required", i)
		}
	}
	return &f, nil
}

// Apply inserts every fixture user into the store, assigning ids to records
// that lack one. Returns the number of records inserted.
func (f *Fixture) Apply(ctx context.Context, st *store.Store) (int, error) {
	for i, u := range f.Users {
		id := u.ID
		if id == "" {
			id = uuid.NewString()
		}
		user := &model.User{
			ID:      id,
			Name:    u.Name,
			Email:   u.Email,
			Age:     u.Age,
			Gender:  u.Gender,
			Country: u.Country,
			City:    u.City,
			Company: u.Company,
		}
		if err := st.InsertUser(ctx, user); err != nil {
			return i, fmt.Errorf("seed user %q: %w", u.Email, err)
		}
	}
	return len(f.Users), nil
}
