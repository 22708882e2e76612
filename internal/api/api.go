package api

import (
	"context"

	"nexttick/internal/config"
	"nexttick/internal/domain"
	"nexttick/internal/navigation"
	"nexttick/internal/repository/sqlite"
	"nexttick/internal/validation"
)

// API defines the UI-facing boundary the presentation layer calls into.
// Screens hold no authoritative copy of any collection; they render
// transient snapshots obtained through these operations.
type API interface {
	// ========== Task Operations ==========

	// SubmitTask validates a draft and persists it. On rejection no
	// mutation occurs and the validation reason is returned.
	SubmitTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)

	// ListTasks returns all persisted tasks in insertion order,
	// re-read from the backing store on every call
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// DeleteTask removes the task with the matching id; a missing id
	// is a no-op
	DeleteTask(ctx context.Context, id int64) error

	// DeleteAllTasks clears the whole collection
	DeleteAllTasks(ctx context.Context) error

	// ========== Session and Navigation ==========

	// Register persists a user record and routes back to login
	Register(ctx context.Context, fields domain.RegistrationFields) (navigation.Screen, error)

	// Login transitions to the authenticated state on shape-valid
	// credentials; no comparison against the stored record occurs
	Login(creds domain.Credentials) (navigation.Screen, error)

	// Logout clears the session and routes to login
	Logout(ctx context.Context) (navigation.Screen, error)

	// CurrentSession returns the persisted user record, or nil when absent
	CurrentSession(ctx context.Context) (*domain.UserRecord, error)

	// InitialRoute returns the screen the application starts on
	InitialRoute() navigation.Screen

	// State returns the gate's current authentication state
	State() navigation.State

	// IsReachable reports whether a screen is currently reachable
	IsReachable(screen navigation.Screen) bool

	// ForgotPasswordURL returns the external password-reset URL. The
	// caller opens it fire-and-forget; no result is consumed.
	ForgotPasswordURL() string
}

// appImpl implements the API interface
type appImpl struct {
	config   *config.Config
	tasks    *sqlite.TaskRepository
	sessions *sqlite.SessionStore
	gate     *navigation.Gate
}

// New creates the API instance over a record store, wiring the task
// repository, session store, and navigation gate. The gate's initial
// state is computed here, once, from the persisted session.
func New(ctx context.Context, cfg *config.Config, store sqlite.RecordStore) API {
	taskValidator := validation.NewTaskValidatorWithConfig(cfg)
	userValidator := validation.NewUserValidatorWithConfig(cfg)
	sessions := sqlite.NewSessionStore(store)

	return &appImpl{
		config:   cfg,
		tasks:    sqlite.NewTaskRepository(store, taskValidator),
		sessions: sessions,
		gate:     navigation.NewGate(ctx, sessions, userValidator),
	}
}

func (a *appImpl) SubmitTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	return a.tasks.Create(ctx, draft)
}

func (a *appImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return a.tasks.List(ctx)
}

func (a *appImpl) DeleteTask(ctx context.Context, id int64) error {
	return a.tasks.DeleteOne(ctx, id)
}

func (a *appImpl) DeleteAllTasks(ctx context.Context) error {
	return a.tasks.DeleteAll(ctx)
}

func (a *appImpl) Register(ctx context.Context, fields domain.RegistrationFields) (navigation.Screen, error) {
	return a.gate.Register(ctx, fields)
}

func (a *appImpl) Login(creds domain.Credentials) (navigation.Screen, error) {
	return a.gate.Login(creds)
}

func (a *appImpl) Logout(ctx context.Context) (navigation.Screen, error) {
	return a.gate.Logout(ctx)
}

func (a *appImpl) CurrentSession(ctx context.Context) (*domain.UserRecord, error) {
	return a.sessions.Read(ctx)
}

func (a *appImpl) InitialRoute() navigation.Screen {
	return a.gate.InitialRoute()
}

func (a *appImpl) State() navigation.State {
	return a.gate.State()
}

func (a *appImpl) IsReachable(screen navigation.Screen) bool {
	return a.gate.IsReachable(screen)
}

func (a *appImpl) ForgotPasswordURL() string {
	return a.config.Application.ForgotPasswordURL
}
