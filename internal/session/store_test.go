package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	user := json.RawMessage(`{"id":1,"username":"admin"}`)
	if err := store.Save("tok-1", user); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reopened := NewStore(dir)
	reopened.Load()
	if reopened.Token() != "tok-1" {
		t.Errorf("token = %q", reopened.Token())
	}
	if string(reopened.User()) != string(user) {
		t.Errorf("user = %s", reopened.User())
	}
}

func TestStoreClear(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := store.Save("tok-2", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	store.Clear()
	if store.Token() != "" {
		t.Errorf("token survived clear: %q", store.Token())
	}
	if _, err := os.Stat(filepath.Join(dir, "session.json")); !os.IsNotExist(err) {
		t.Error("session file survived clear")
	}
}

func TestStoreMissingFileIsSignedOut(t *testing.T) {
	store := NewStore(t.TempDir())
	store.Load()
	if store.Token() != "" {
		t.Errorf("token = %q, want empty", store.Token())
	}
}

func TestStoreCorruptFileIsSignedOut(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("not json"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	store := NewStore(dir)
	store.Load()
	if store.Token() != "" {
		t.Errorf("token = %q, want empty", store.Token())
	}
}
