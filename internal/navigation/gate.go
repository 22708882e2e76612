// Package navigation implements the session-gated state machine that
// decides which screens are reachable. There are exactly two states and
// three transitions: login, register (which routes back to login), and
// logout. There is no session expiry.
package navigation

import (
	"context"

	"nexttick/internal/domain"
	"nexttick/internal/errors"
	"nexttick/internal/logging"
	"nexttick/internal/validation"
)

// State represents the gate's authentication state
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Screen represents a navigational destination
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenHome     Screen = "home"
	ScreenTaskList Screen = "tasks"
	ScreenNewTask  Screen = "new_task"
	ScreenProfile  Screen = "profile"
)

// unauthenticatedScreens and authenticatedScreens are the two reachable
// screen sets; the authenticated set is grouped under one tabbed surface.
var (
	unauthenticatedScreens = []Screen{ScreenLogin, ScreenRegister}
	authenticatedScreens   = []Screen{ScreenHome, ScreenTaskList, ScreenNewTask, ScreenProfile}
)

// SessionStore defines the persistence operations the gate needs
type SessionStore interface {
	Read(ctx context.Context) (*domain.UserRecord, error)
	Write(ctx context.Context, record domain.UserRecord) error
	Clear(ctx context.Context) error
}

// Gate reads the session store at startup and after logout or
// registration to select the currently reachable screen set.
type Gate struct {
	sessions  SessionStore
	validator *validation.UserValidator
	state     State
}

// NewGate creates a gate and computes the initial state once from the
// session store: authenticated if a record with a non-empty email
// exists. A failed read is logged and treated as no session.
func NewGate(ctx context.Context, sessions SessionStore, validator *validation.UserValidator) *Gate {
	gate := &Gate{
		sessions:  sessions,
		validator: validator,
		state:     StateUnauthenticated,
	}

	record, err := sessions.Read(ctx)
	if err != nil {
		logging.Debugf("navigation: failed to read session at startup: %v\n", err)
		return gate
	}
	if record.HasSession() {
		gate.state = StateAuthenticated
	}

	return gate
}

// State returns the current authentication state
func (g *Gate) State() State {
	return g.state
}

// InitialRoute returns the screen the application starts on for the
// current state.
func (g *Gate) InitialRoute() Screen {
	if g.state == StateAuthenticated {
		return ScreenHome
	}
	return ScreenLogin
}

// ReachableScreens returns the screen set permitted by the current state
func (g *Gate) ReachableScreens() []Screen {
	if g.state == StateAuthenticated {
		return authenticatedScreens
	}
	return unauthenticatedScreens
}

// IsReachable reports whether the screen is in the current reachable set
func (g *Gate) IsReachable(screen Screen) bool {
	for _, s := range g.ReachableScreens() {
		if s == screen {
			return true
		}
	}
	return false
}

// Login transitions to the authenticated state once the credentials
// pass their local shape checks. The credentials are not verified
// against the stored record; any well-shaped pair succeeds.
func (g *Gate) Login(creds domain.Credentials) (Screen, error) {
	if g.state != StateUnauthenticated {
		return "", errors.NewInvalidInputError("state", string(g.state), "already logged in")
	}

	if err := g.validator.ValidateCredentials(creds); err != nil {
		return "", err
	}

	g.state = StateAuthenticated
	return ScreenHome, nil
}

// Register validates the field shapes, persists the user record, and
// routes back to the login screen. The state stays unauthenticated;
// it only becomes authenticated on the next start or explicit login.
func (g *Gate) Register(ctx context.Context, fields domain.RegistrationFields) (Screen, error) {
	if g.state != StateUnauthenticated {
		return "", errors.NewInvalidInputError("state", string(g.state), "already logged in")
	}

	if err := g.validator.ValidateRegistration(fields); err != nil {
		return "", err
	}

	record := g.validator.BuildUserRecord(fields)
	if err := g.sessions.Write(ctx, record); err != nil {
		return "", err
	}

	return ScreenLogin, nil
}

// Logout clears the session record and reverts to the unauthenticated
// state, routed to the login screen.
func (g *Gate) Logout(ctx context.Context) (Screen, error) {
	if g.state != StateAuthenticated {
		return "", errors.NewInvalidInputError("state", string(g.state), "not logged in")
	}

	if err := g.sessions.Clear(ctx); err != nil {
		return "", err
	}

	g.state = StateUnauthenticated
	return ScreenLogin, nil
}
