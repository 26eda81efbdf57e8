package session

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// sessionFileName is the name of the session file inside the data directory.
const sessionFileName = "session.yaml"

// Store reads and writes the session file.
//
// Design decision: Store takes the data directory rather than a full file
// path so it owns directory creation and file naming. Tests point it at a
// temporary directory.
type Store struct {
	// dir is the data directory holding the session file.
	dir string
}

// NewStore creates a Store rooted at the given data directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path of the session file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, sessionFileName)
}

// Save writes the session to disk, creating the data directory if needed.
// The file is written with 0600 permissions because it holds the bearer
// credential.
func (s *Store) Save(sess Session) error {
	if sess.Token == "" {
		return ErrEmptyToken
	}
	if _, err := ParseRole(string(sess.Role)); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the session from disk.
// A missing file returns ErrNoSession. A corrupt or incomplete file returns
// an error as well; callers treat any Load failure as the logged-out state.
func (s *Store) Load() (Session, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	if !sess.Valid() {
		return Session{}, fmt.Errorf("%w: session file is incomplete", ErrNoSession)
	}
	return sess, nil
}

// Clear removes the session file. Clearing an absent session is not an
// error; logout must be idempotent.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Exists reports whether a session file is present without decoding it.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}
