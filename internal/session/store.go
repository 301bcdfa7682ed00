package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Store persists the bearer token and signed-in user record under the state
// directory, the daemon's stand-in for the browser's fixed storage keys. An
// absent or unreadable file means signed out; nothing else is kept durable.
type Store struct {
	path string

	mu    sync.Mutex
	token string
	user  json.RawMessage
}

func NewStore(stateDir string) *Store {
	return &Store{path: filepath.Join(stateDir, "session.json")}
}

type persisted struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// Load reads any previously persisted session. Corrupt or missing state is
// treated as signed out, never as an error.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var state persisted
	if err := json.Unmarshal(raw, &state); err != nil {
		return
	}
	s.token = state.Token
	s.user = state.User
}

func (s *Store) Save(token string, user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(persisted{Token: token, User: user})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return err
	}
	s.token = token
	s.user = user
	return nil
}

// Clear purges the persisted token and user record.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	_ = os.Remove(s.path)
}

// Token implements cusp.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) User() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}
