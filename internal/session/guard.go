package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Verifier checks a bearer token against the backend. Any returned error is
// equivalent to an invalid token; the guard applies no retry or backoff
// distinct from its fixed poll.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// Snapshot is the guard's externally visible state. Checking stays true only
// until the first verification completes; the shell blocks route resolution
// while it is set.
type Snapshot struct {
	Checking      bool `json:"checking"`
	Authenticated bool `json:"isAuthenticated"`
}

// Guard owns session validity. It re-verifies the stored token on a fixed
// interval and purges the store the moment verification fails.
type Guard struct {
	store    *Store
	verifier Verifier
	interval time.Duration

	mu            sync.Mutex
	checking      bool
	authenticated bool
}

func NewGuard(store *Store, verifier Verifier, interval time.Duration) *Guard {
	return &Guard{
		store:    store,
		verifier: verifier,
		interval: interval,
		checking: true,
	}
}

// Run performs an immediate check, then re-checks every interval until ctx is
// cancelled.
func (g *Guard) Run(ctx context.Context) {
	g.Check(ctx)
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			g.Check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Check verifies the stored token once. No stored token resolves locally with
// no network call; any verification failure purges the persisted session.
func (g *Guard) Check(ctx context.Context) {
	token := g.store.Token()
	if token == "" {
		g.set(false)
		return
	}
	if err := g.verifier.Verify(ctx, token); err != nil {
		g.store.Clear()
		g.set(false)
		return
	}
	g.set(true)
}

// SignIn persists a fresh session and flips to authenticated without waiting
// for the next poll.
func (g *Guard) SignIn(token string, user json.RawMessage) error {
	if err := g.store.Save(token, user); err != nil {
		return err
	}
	g.set(true)
	return nil
}

// SignOut purges the session.
func (g *Guard) SignOut() {
	g.store.Clear()
	g.set(false)
}

func (g *Guard) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{Checking: g.checking, Authenticated: g.authenticated}
}

func (g *Guard) set(authenticated bool) {
	g.mu.Lock()
	g.checking = false
	g.authenticated = authenticated
	g.mu.Unlock()
}
