package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestStoreRoundTrip verifies that a saved session loads back unchanged.
func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	want := Session{Token: "T1", Role: RoleStudent}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

// TestStoreLoadMissing verifies the logged-out sentinel for absent sessions.
func TestStoreLoadMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Load()
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
	if store.Exists() {
		t.Error("Exists() should be false for a fresh store")
	}
}

// TestStoreLoadCorrupt verifies that unreadable session files surface an
// error rather than a half-initialized session.
func TestStoreLoadCorrupt(t *testing.T) {
	t.Parallel()

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()

		store := NewStore(t.TempDir())
		if err := os.MkdirAll(filepath.Dir(store.Path()), 0750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(store.Path(), []byte("{not yaml"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if _, err := store.Load(); err == nil {
			t.Error("expected an error for malformed session file")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		store := NewStore(t.TempDir())
		if err := os.MkdirAll(filepath.Dir(store.Path()), 0750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(store.Path(), []byte("role: student\n"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		_, err := store.Load()
		if !errors.Is(err, ErrNoSession) {
			t.Errorf("expected ErrNoSession for incomplete session, got %v", err)
		}
	})
}

// TestStoreSaveValidation verifies rejected sessions.
func TestStoreSaveValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty token is rejected", func(t *testing.T) {
		t.Parallel()

		store := NewStore(t.TempDir())
		err := store.Save(Session{Role: RoleStudent})
		if !errors.Is(err, ErrEmptyToken) {
			t.Errorf("expected ErrEmptyToken, got %v", err)
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		t.Parallel()

		store := NewStore(t.TempDir())
		err := store.Save(Session{Token: "T1", Role: Role("superuser")})
		if !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})
}

// TestStoreClear verifies logout semantics.
func TestStoreClear(t *testing.T) {
	t.Parallel()

	t.Run("clear removes the session", func(t *testing.T) {
		t.Parallel()

		store := NewStore(t.TempDir())
		if err := store.Save(Session{Token: "T1", Role: RoleAdmin}); err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}

		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() returned error: %v", err)
		}
		if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
			t.Errorf("expected ErrNoSession after Clear, got %v", err)
		}
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		t.Parallel()

		store := NewStore(t.TempDir())
		if err := store.Clear(); err != nil {
			t.Errorf("Clear() on empty store returned error: %v", err)
		}
	})
}

// TestParseRole verifies role parsing.
func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{input: "student", want: RoleStudent},
		{input: "Admin", want: RoleAdmin},
		{input: " STUDENT ", want: RoleStudent},
		{input: "teacher", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("parse "+tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRole(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRole) {
					t.Errorf("expected ErrInvalidRole, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestSessionFilePermissions verifies the session file is written 0600.
func TestSessionFilePermissions(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	if err := store.Save(Session{Token: "T1", Role: RoleStudent}); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("Stat() returned error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected permissions 0600, got %o", perm)
	}
}
