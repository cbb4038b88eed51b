// Package gate decides which half of the client is shown: the
// authentication screen or the dashboard. The decision follows the session
// store and nothing else.
package gate

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/flowgate/internal/client/session"
	"github.com/dmitrijs2005/flowgate/internal/logging"
)

// View is the screen the client renders.
type View int

const (
	ViewAuth View = iota
	ViewDashboard
)

func (v View) String() string {
	switch v {
	case ViewAuth:
		return "auth"
	case ViewDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

func viewFor(authenticated bool) View {
	if authenticated {
		return ViewDashboard
	}
	return ViewAuth
}

// Sessions is the part of session.Store the gate depends on.
type Sessions interface {
	Initialize(ctx context.Context) (bool, error)
	Clear(ctx context.Context) error
	Subscribe(l session.Listener) func()
}

// Hook is called with the new view every time it changes.
type Hook func(View)

type Gate struct {
	sessions Sessions
	log      logging.Logger

	mu          sync.Mutex
	view        View
	started     bool
	hooks       []Hook
	unsubscribe func()
}

func NewGate(sessions Sessions, log logging.Logger) *Gate {
	if log == nil {
		log = logging.Nop()
	}
	return &Gate{sessions: sessions, log: log.With("component", "gate")}
}

// OnChange registers h. Hooks run in registration order, outside the gate's lock.
func (g *Gate) OnChange(h Hook) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hooks = append(g.hooks, h)
}

// Start reads the persisted session and picks the initial view. Hooks are
// not called for the initial view. Calling Start again is a no-op.
func (g *Gate) Start(ctx context.Context) (View, error) {
	g.mu.Lock()
	if g.started {
		v := g.view
		g.mu.Unlock()
		return v, nil
	}
	g.mu.Unlock()

	ok, err := g.sessions.Initialize(ctx)
	if err != nil {
		return ViewAuth, fmt.Errorf("loading session: %w", err)
	}

	g.mu.Lock()
	g.started = true
	g.view = viewFor(ok)
	v := g.view
	g.mu.Unlock()

	g.unsubscribe = g.sessions.Subscribe(g.onSession)
	g.log.Debug(ctx, "gate started", "view", v)
	return v, nil
}

// View returns the current view.
func (g *Gate) View() View {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.view
}

// SignOut forgets the local credential. There is no server-side logout.
func (g *Gate) SignOut(ctx context.Context) error {
	if err := g.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	g.log.Info(ctx, "signed out")
	return nil
}

// Stop detaches the gate from the session store.
func (g *Gate) Stop() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

func (g *Gate) onSession(authenticated bool) {
	next := viewFor(authenticated)

	g.mu.Lock()
	if next == g.view {
		g.mu.Unlock()
		return
	}
	g.view = next
	hooks := append([]Hook(nil), g.hooks...)
	g.mu.Unlock()

	for _, h := range hooks {
		h(next)
	}
}
