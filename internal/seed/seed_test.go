package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/admindesk/admindesk/internal/store"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	path := writeFixture(t, `
users:
  - id: fixed-id-1
    name: Ada Lovelace
    email: ada@example.com
    age: 36
    gender: female
    country: England
    city: London
    company: Analytical Engines Ltd
  - name: Grace Hopper
    email: grace@example.com
`)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if len(f.Users) != 2 {
		t.Fatalf("len = %d, want 2", len(f.Users))
	}
	if f.Users[0].ID != "fixed-id-1" {
		t.Errorf("ID = %q, want fixed-id-1", f.Users[0].ID)
	}
	if f.Users[1].ID != "" {
		t.Errorf("ID = %q, want empty (assigned on apply)", f.Users[1].ID)
	}
	if f.Users[0].Age != 36 {
		t.Errorf("Age = %d, want 36", f.Users[0].Age)
	}
}

func TestLoadFixture_MissingRequired(t *testing.T) {
	path := writeFixture(t, `
users:
  - name: No Email
`)
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestLoadFixture_BadYAML(t *testing.T) {
	path := writeFixture(t, "users: [unclosed")
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadFixture_NoFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApply(t *testing.T) {
	st, err := store.Open("", "")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	f := &Fixture{
		Users: []UserFixture{
			{Name: "Ada Lovelace", Email: "ada@example.com", Country: "England", City: "London"},
			{ID: "fixed-id", Name: "Grace Hopper", Email: "grace@example.com"},
		},
	}

	ctx := context.Background()
	n, err := f.Apply(ctx, st)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}

	count, err := st.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// Explicit ids are preserved.
	u, err := st.GetUser(ctx, "fixed-id")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if u.Name != "Grace Hopper" {
		t.Errorf("Name = %q, want Grace Hopper", u.Name)
	}
}

func TestApply_DuplicateID(t *testing.T) {
	st, err := store.Open("", "")
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	f := &Fixture{
		Users: []UserFixture{
			{ID: "same-id", Name: "First", Email: "first@example.com"},
			{ID: "same-id", Name: "Second", Email: "second@example.com"},
		},
	}

	n, err := f.Apply(context.Background(), st)
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
	if n != 1 {
		t.Errorf("n = %d, want 1 (first record applied)", n)
	}
}
