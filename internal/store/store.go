// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the session record as a single JSON file. Writes are
// atomic (write-then-rename) so an interrupted save can never leave a partial
// file behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// ErrCorruptSession marks a session file that exists but cannot be parsed.
// Callers treat it as "no session" for control flow; the file itself is left
// on disk until an explicit reset.
var ErrCorruptSession = errors.New("session file is corrupt")

// Store reads and writes one session record at a fixed path.
type Store struct {
	path string
}

// New returns a store bound to the given session file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the session file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a session file is present at the store path.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the session record. A missing file returns (nil, nil). A file
// that cannot be parsed returns an error wrapping ErrCorruptSession without
// modifying the file.
func (s *Store) Load() (*types.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", s.path, err)
	}

	var sess types.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", s.path, ErrCorruptSession)
	}
	if sess.Mode != types.ModeGeneration && sess.Mode != types.ModeAnalysis {
		return nil, fmt.Errorf("session file %s has unknown mode %q: %w", s.path, sess.Mode, ErrCorruptSession)
	}
	if sess.Answers == nil {
		sess.Answers = map[string]any{}
	}
	if sess.History == nil {
		sess.History = []string{}
	}
	return &sess, nil
}

// Save writes the session record atomically: marshal, write a temp file next
// to the target, then rename over it. UpdatedAt is stamped on every save.
func (s *Store) Save(sess *types.Session) error {
	sess.UpdatedAt = time.Now().UTC()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = sess.UpdatedAt
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating session directory %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing session file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing session file %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", s.path, err)
	}
	return nil
}
