package auth

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/flowgate/internal/client/client"
	"github.com/dmitrijs2005/flowgate/internal/logging"
)

// Backend is the part of the API the authentication screen calls.
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	InitiateRegistration(ctx context.Context, email string) error
	VerifyRegistration(ctx context.Context, email, otp, password string) (string, error)
}

// SessionWriter stores the credential once a flow succeeds.
type SessionWriter interface {
	Set(ctx context.Context, token string) error
}

// Controller owns the authentication State and performs the effects that
// Submitted asks for. Its methods never return errors: every failure ends
// up as a display string in the State.
type Controller struct {
	backend Backend
	session SessionWriter
	log     logging.Logger

	mu    sync.Mutex
	state State
}

func NewController(backend Backend, session SessionWriter, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	return &Controller{
		backend: backend,
		session: session,
		log:     log.With("component", "auth"),
		state:   Initial(),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies ev and returns the resulting state.
func (c *Controller) Dispatch(ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Transition(c.state, ev)
	return c.state
}

// SelectTab switches to tab. Selecting the tab already shown is not a switch
// and keeps the forms as they are.
func (c *Controller) SelectTab(tab Tab) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Tab != tab {
		c.state = Transition(c.state, TabSelected{Tab: tab})
	}
	return c.state
}

// Reset discards both forms and any request in flight, back to the sign-in tab.
func (c *Controller) Reset() State {
	return c.Dispatch(TabSelected{Tab: TabSignIn})
}

// Submit presses the button of the active tab. Validation failures and the
// OTP step complete without a backend call. Otherwise the call runs
// synchronously; its result is applied only if the flow that started it is
// still current. Loading is always cleared before Submit returns.
func (c *Controller) Submit(ctx context.Context) State {
	c.mu.Lock()
	if c.state.Loading() {
		st := c.state
		c.mu.Unlock()
		return st
	}
	c.state = Transition(c.state, Submitted{})
	req := c.state
	c.mu.Unlock()

	if !req.Loading() {
		if msg := activeError(req); msg != "" {
			c.log.Debug(ctx, "submission rejected", "tab", req.Tab, "kind", KindValidation, "reason", msg)
		}
		return req
	}

	gen := req.Generation
	settled := false
	defer func() {
		if !settled {
			// reached only when a call panics
			c.Dispatch(Failed{Generation: gen})
		}
	}()

	op, token, err := c.call(ctx, req)
	log := c.log.With("op", op, "tab", req.Tab, "generation", gen)

	if err != nil {
		kind := Classify(err)
		log.Warn(ctx, "auth request failed", "kind", kind, "error", err)
		settled = true
		return c.Dispatch(Failed{Generation: gen, Message: client.ServerMessage(err)})
	}

	if !c.live(gen) {
		log.Info(ctx, "discarding result of abandoned flow")
		settled = true
		return c.State()
	}

	if token != "" {
		if err := c.session.Set(ctx, token); err != nil {
			log.Error(ctx, "storing session failed", "error", err)
			settled = true
			return c.Dispatch(Failed{Generation: gen, Message: MsgSessionSaveFailed})
		}
		log.Info(ctx, "signed in")
	}

	settled = true
	return c.Dispatch(Succeeded{Generation: gen})
}

// call performs the backend request for a state that has just started loading.
func (c *Controller) call(ctx context.Context, req State) (string, string, error) {
	if req.Tab == TabRegister && req.Wizard.Step == StepEmailEntry {
		return "register-initiate", "", c.backend.InitiateRegistration(ctx, req.Wizard.Email)
	}

	var (
		op    string
		token string
		err   error
	)
	if req.Tab == TabSignIn {
		op = "login"
		token, err = c.backend.Login(ctx, req.Login.Email, req.Login.Password)
	} else {
		op = "register-verify"
		w := req.Wizard
		token, err = c.backend.VerifyRegistration(ctx, w.Email, w.OTP, w.Password)
	}
	if err == nil && token == "" {
		err = client.ErrMissingToken
	}
	return op, token, err
}

func (c *Controller) live(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Generation == gen && c.state.Loading()
}

func activeError(s State) string {
	if s.Tab == TabSignIn {
		return s.Login.Error
	}
	return s.Wizard.Error
}
