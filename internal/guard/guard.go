package guard

import (
	"context"
	"time"
)

// DefaultDelay is the artificial pause before each page navigation.
const DefaultDelay = 500 * time.Millisecond

// RouteMeta carries the access requirements of a route.
type RouteMeta struct {
	RequiresAuth  bool `json:"requiresAuth"`
	RequiresAdmin bool `json:"requiresAdmin"`
}

// Session exposes the login state the guard depends on.
type Session interface {
	IsLoggedIn() bool
	IsAdmin() bool
}

// LoadingIndicator is told when a delayed navigation starts and finishes.
type LoadingIndicator interface {
	Begin()
	End()
}

type Config struct {
	Delay time.Duration
}

func DefaultConfig() Config {
	return Config{Delay: DefaultDelay}
}

// Decision is the outcome of a navigation check. RedirectTo is a route name and
// is empty when the navigation proceeds.
type Decision struct {
	Proceed    bool
	RedirectTo string
}

var proceed = Decision{Proceed: true}

type Guard struct {
	session   Session
	config    Config
	indicator LoadingIndicator
}

type Option func(*Guard)

func WithLoadingIndicator(indicator LoadingIndicator) Option {
	return func(g *Guard) {
		g.indicator = indicator
	}
}

func New(session Session, config Config, opts ...Option) *Guard {
	g := &Guard{session: session, config: config}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate waits for the configured delay and then checks meta against the
// session as it is after the wait. It returns ctx's error if ctx ends first.
func (g *Guard) Evaluate(ctx context.Context, meta RouteMeta) (Decision, error) {
	if g.config.Delay > 0 {
		if err := g.wait(ctx); err != nil {
			return Decision{}, err
		}
	}
	return g.Check(meta), nil
}

// Check applies the access rules without any delay.
// Authentication is checked before the admin role.
func (g *Guard) Check(meta RouteMeta) Decision {
	if meta.RequiresAuth && !g.session.IsLoggedIn() {
		return Decision{RedirectTo: RouteLogin}
	}
	if meta.RequiresAdmin && !g.session.IsAdmin() {
		return Decision{RedirectTo: RouteBooks}
	}
	return proceed
}

func (g *Guard) wait(ctx context.Context) error {
	if g.indicator != nil {
		g.indicator.Begin()
		defer g.indicator.End()
	}

	timer := time.NewTimer(g.config.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
