// Package session gates access on the presence of a stored credential token.
//
// The gate never inspects the token: an empty or missing value redirects to the
// login path, anything else lets the caller through.
package session

import (
	"fmt"
	"sync"
)

const (
	// DefaultTokenKey is the storage key the admin UI writes its token under
	DefaultTokenKey = "token"
	// DefaultLoginPath is where an unauthenticated visitor is sent
	DefaultLoginPath = "/login"
)

// CredentialStore is the persistent storage holding the token
type CredentialStore interface {
	// Get returns the stored value and whether the key was present
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Clear(key string) error
}

// Navigator performs the client-side redirect
type Navigator interface {
	Redirect(path string) error
}

// Result is what a single activation decided
type Result struct {
	Allowed    bool
	Redirected bool
}

// Gate checks the credential once per activation scope (one page mount or one request)
type Gate struct {
	store     CredentialStore
	navigator Navigator
	key       string
	loginPath string

	once   sync.Once
	result Result
	err    error
}

// Option configures a Gate
type Option func(*Gate)

// WithTokenKey overrides the storage key
func WithTokenKey(key string) Option {
	return func(g *Gate) {
		if key != "" {
			g.key = key
		}
	}
}

// WithLoginPath overrides the redirect target
func WithLoginPath(path string) Option {
	return func(g *Gate) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// NewGate creates a gate for one activation scope
func NewGate(store CredentialStore, navigator Navigator, opts ...Option) *Gate {
	g := &Gate{
		store:     store,
		navigator: navigator,
		key:       DefaultTokenKey,
		loginPath: DefaultLoginPath,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Activate runs the check. Only the first call does any work; later calls
// return the first outcome without touching storage or navigating again.
// Storage errors are returned as-is and no redirect happens.
func (g *Gate) Activate() (Result, error) {
	g.once.Do(func() {
		g.result, g.err = g.check()
	})
	return g.result, g.err
}

// TokenKey returns the key the gate reads
func (g *Gate) TokenKey() string {
	return g.key
}

// LoginPath returns the redirect target
func (g *Gate) LoginPath() string {
	return g.loginPath
}

func (g *Gate) check() (Result, error) {
	token, ok, err := g.store.Get(g.key)
	if err != nil {
		return Result{}, fmt.Errorf("read credential %q: %w", g.key, err)
	}

	if ok && token != "" {
		return Result{Allowed: true}, nil
	}

	if err := g.navigator.Redirect(g.loginPath); err != nil {
		return Result{}, fmt.Errorf("redirect to %s: %w", g.loginPath, err)
	}
	return Result{Redirected: true}, nil
}
