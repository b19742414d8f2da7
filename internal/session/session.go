package session

import (
	"context"
	"sync"

	"github.com/s448/event-horizon/internal/domain"
	"github.com/s448/event-horizon/internal/gateway"
	"github.com/wb-go/wbf/logger"
)

type authClient interface {
	Session(ctx context.Context) (*gateway.Session, error)
	OnSessionChange(fn func(gateway.SessionEvent)) func()
	SignInWithPassword(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, newPassword string) error
}

type profileDirectory interface {
	ByID(ctx context.Context, id string) (*domain.Principal, error)
	Create(ctx context.Context, p *domain.Principal) error
}

// Manager tracks the authenticated principal. It joins the auth session with
// the profile row and keeps exactly one source of truth: role flags are
// derived from the current principal, never stored on their own.
type Manager struct {
	auth     authClient
	profiles profileDirectory
	log      logger.Logger

	mu        sync.RWMutex
	principal *domain.Principal

	observerMu sync.Mutex
	observers  []func(*domain.Principal)

	unsubscribe func()
}

func New(auth authClient, profiles profileDirectory, log logger.Logger) *Manager {
	return &Manager{
		auth:     auth,
		profiles: profiles,
		log:      log,
	}
}

// Start registers the session-change listener and then probes the existing
// session. The order is a contract: a sign-in landing between subscribe and
// probe must not be lost, so the listener goes first.
func (m *Manager) Start(ctx context.Context) error {
	m.unsubscribe = m.auth.OnSessionChange(func(ev gateway.SessionEvent) {
		switch ev.Kind {
		case gateway.SessionSignedIn:
			m.adoptSession(ctx, ev.Session)
		case gateway.SessionSignedOut:
			m.setPrincipal(nil)
		}
	})

	session, err := m.auth.Session(ctx)
	if err != nil {
		return err
	}
	if session != nil {
		m.adoptSession(ctx, session)
	}

	return nil
}

func (m *Manager) Stop() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Manager) Principal() (domain.Principal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.principal == nil {
		return domain.Principal{}, false
	}
	return *m.principal, true
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Principal()
	return ok
}

func (m *Manager) IsAdmin() bool {
	p, ok := m.Principal()
	return ok && p.IsAdmin()
}

// OnChange registers fn to run on every principal transition, including the
// nil principal on sign-out. Scoped stores use this to drop stale mirrors.
func (m *Manager) OnChange(fn func(*domain.Principal)) {
	m.observerMu.Lock()
	defer m.observerMu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	// The gateway emits a signed-in notification on success; the listener
	// registered in Start adopts the session, so nothing else to do here.
	return m.auth.SignInWithPassword(ctx, email, password)
}

// SignUp registers credentials with the auth service and creates the profile
// row. New accounts always get the member role.
func (m *Manager) SignUp(ctx context.Context, username, email, password string) error {
	userID, err := m.auth.SignUp(ctx, email, password)
	if err != nil {
		return err
	}

	profile := &domain.Principal{
		ID:          userID,
		DisplayName: username,
		Email:       email,
		Role:        domain.RoleMember,
	}
	if err := m.profiles.Create(ctx, profile); err != nil {
		return err
	}

	// Sign-up emits no session event: the profile row would not exist yet
	// when a listener probed for it. Adopt the freshly created profile here.
	m.setPrincipal(profile)

	return nil
}

// SignOut clears local state synchronously. By the time this returns, every
// observer has seen the anonymous state, so an in-flight scoped fetch that
// resolves later is recognised as stale and dropped.
func (m *Manager) SignOut(ctx context.Context) error {
	return m.auth.SignOut(ctx)
}

// RequestPasswordReset always reports success to the caller even when the
// email is unknown, so the endpoint cannot be used to enumerate accounts.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) error {
	if err := m.auth.RequestPasswordReset(ctx, email); err != nil {
		m.log.Warn("password reset request failed",
			logger.String("error", err.Error()),
		)
	}
	return nil
}

func (m *Manager) ResetPassword(ctx context.Context, newPassword string) error {
	if len(newPassword) < 6 {
		return &domain.AuthError{Message: "password must be at least 6 characters"}
	}
	return m.auth.UpdatePassword(ctx, newPassword)
}

// adoptSession joins the auth session with its profile row. A session whose
// profile row is missing is treated as anonymous and flagged once; the
// inconsistency is surfaced, not silently repaired.
func (m *Manager) adoptSession(ctx context.Context, s *gateway.Session) {
	profile, err := m.profiles.ByID(ctx, s.UserID)
	if err != nil {
		m.log.Warn("profile lookup failed, treating session as anonymous",
			logger.String("user_id", s.UserID),
			logger.String("error", err.Error()),
		)
		m.setPrincipal(nil)
		return
	}
	if profile == nil {
		m.log.Warn(domain.ErrProfileMissing.Error(),
			logger.String("user_id", s.UserID),
		)
		m.setPrincipal(nil)
		return
	}

	principal := *profile
	if principal.Email == "" {
		principal.Email = s.Email
	}
	m.setPrincipal(&principal)

	m.log.Info("principal authenticated",
		logger.String("user_id", principal.ID),
		logger.String("role", string(principal.Role)),
	)
}

func (m *Manager) setPrincipal(p *domain.Principal) {
	m.mu.Lock()
	m.principal = p
	m.mu.Unlock()

	m.observerMu.Lock()
	observers := make([]func(*domain.Principal), len(m.observers))
	copy(observers, m.observers)
	m.observerMu.Unlock()

	for _, fn := range observers {
		fn(p)
	}
}
