package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Session is the client-side authentication state: the bearer token and the
// logged-in user, persisted as JSON on disk. It replaces ambient global
// session state with an explicit object whose lifecycle is load-on-start and
// clear-on-logout (or on any 401 from the server).
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`

	path string
}

// LoadSession reads the session file at path. A missing file yields an empty
// (unauthenticated) session rather than an error.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, s); err != nil {
		// A corrupt session file is treated as logged out.
		return &Session{path: path}, nil
	}
	return s, nil
}

// Authenticated reports whether the session carries a token.
func (s *Session) Authenticated() bool {
	return s.Token != ""
}

// Save persists the session to its file, creating parent directories as
// needed. The file is user-only since it holds a bearer token.
func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear wipes the in-memory state and removes the session file.
func (s *Session) Clear() error {
	s.Token = ""
	s.User = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
