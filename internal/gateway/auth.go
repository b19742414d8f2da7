package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/s448/event-horizon/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Session is the auth service's view of the signed-in user. The profile row
// (display name, role) is joined on top of it by the session manager.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	ExpiresAt    time.Time
}

type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "SIGNED_IN"
	SessionSignedOut SessionEventKind = "SIGNED_OUT"
)

type SessionEvent struct {
	Kind    SessionEventKind
	Session *Session
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// Session returns the current session, or nil when anonymous or expired.
func (g *Gateway) Session(ctx context.Context) (*Session, error) {
	if err := g.configured(); err != nil {
		return nil, err
	}

	g.sessionMu.RLock()
	defer g.sessionMu.RUnlock()

	if g.session == nil {
		return nil, nil
	}
	if !g.session.ExpiresAt.IsZero() && time.Now().After(g.session.ExpiresAt) {
		return nil, nil
	}

	s := *g.session
	return &s, nil
}

// OnSessionChange registers fn for sign-in/sign-out notifications and returns
// an unsubscribe handle. Notifications are delivered synchronously, so a
// sign-out has fully propagated before SignOut returns.
func (g *Gateway) OnSessionChange(fn func(SessionEvent)) func() {
	g.listenerMu.Lock()
	defer g.listenerMu.Unlock()

	g.listenerID++
	id := g.listenerID
	g.listeners[id] = fn

	return func() {
		g.listenerMu.Lock()
		defer g.listenerMu.Unlock()
		delete(g.listeners, id)
	}
}

func (g *Gateway) SignInWithPassword(ctx context.Context, email, password string) error {
	if err := g.configured(); err != nil {
		return err
	}

	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := g.doAuth(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", body, &resp); err != nil {
		return err
	}

	session := g.sessionFromToken(resp)
	g.setSession(session)
	g.emit(SessionEvent{Kind: SessionSignedIn, Session: session})

	return nil
}

// SignUp registers the credentials with the auth service and returns the new
// auth user's id. The caller creates the matching profile row, so no
// signed-in event is emitted here: the profile does not exist yet and a
// listener probing for it would find nothing. The session itself is adopted
// so the profile insert carries the fresh bearer token.
func (g *Gateway) SignUp(ctx context.Context, email, password string) (string, error) {
	if err := g.configured(); err != nil {
		return "", err
	}

	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := g.doAuth(ctx, http.MethodPost, "/auth/v1/signup", body, &resp); err != nil {
		return "", err
	}
	if resp.User.ID == "" {
		return "", &domain.AuthError{Message: "registration failed"}
	}

	if resp.AccessToken != "" {
		g.setSession(g.sessionFromToken(resp))
	}

	return resp.User.ID, nil
}

// SignOut drops the local session before notifying the auth service, so no
// observer can see stale credentials while the remote call is in flight.
func (g *Gateway) SignOut(ctx context.Context) error {
	if err := g.configured(); err != nil {
		return err
	}

	had := g.setSession(nil)
	g.emit(SessionEvent{Kind: SessionSignedOut})

	if had == nil {
		return nil
	}
	if err := g.doAuthWithToken(ctx, http.MethodPost, "/auth/v1/logout", had.AccessToken, nil, nil); err != nil {
		g.log.Warn("remote sign-out failed, local session already cleared",
			logger.String("error", err.Error()),
		)
	}

	return nil
}

func (g *Gateway) RequestPasswordReset(ctx context.Context, email string) error {
	if err := g.configured(); err != nil {
		return err
	}

	body := map[string]string{"email": email}
	return g.doAuth(ctx, http.MethodPost, "/auth/v1/recover", body, nil)
}

// UpdatePassword sets a new password for the current session. The reset
// context is implicit: the backend honours the bearer token obtained from
// the recovery link.
func (g *Gateway) UpdatePassword(ctx context.Context, newPassword string) error {
	if err := g.configured(); err != nil {
		return err
	}

	g.sessionMu.RLock()
	session := g.session
	g.sessionMu.RUnlock()
	if session == nil {
		return &domain.AuthError{Message: "no active session"}
	}

	body := map[string]string{"password": newPassword}
	return g.doAuthWithToken(ctx, http.MethodPut, "/auth/v1/user", session.AccessToken, body, nil)
}

func (g *Gateway) setSession(s *Session) *Session {
	g.sessionMu.Lock()
	defer g.sessionMu.Unlock()

	prev := g.session
	g.session = s
	return prev
}

func (g *Gateway) emit(ev SessionEvent) {
	g.listenerMu.Lock()
	fns := make([]func(SessionEvent), 0, len(g.listeners))
	for _, fn := range g.listeners {
		fns = append(fns, fn)
	}
	g.listenerMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (g *Gateway) sessionFromToken(resp tokenResponse) *Session {
	session := &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
	}

	// The token is issued by the backend; claims are read for identity and
	// expiry only, signature verification stays server-side.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.AccessToken, claims); err == nil {
		if session.UserID == "" {
			if sub, err := claims.GetSubject(); err == nil {
				session.UserID = sub
			}
		}
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			session.ExpiresAt = exp.Time
		}
	}

	return session
}

func (g *Gateway) doAuth(ctx context.Context, method, path string, body, out any) error {
	return g.doAuthWithToken(ctx, method, path, g.anonKey, body, out)
}

func (g *Gateway) doAuthWithToken(ctx context.Context, method, path, token string, body, out any) error {
	headers := map[string]string{"Authorization": "Bearer " + token}
	err := g.do(ctx, method, path, nil, body, headers, out)
	if err == nil {
		return nil
	}

	// Auth failures travel as AuthError so the consumer can show the message
	// as-is; transport-level failures keep their RemoteError shape.
	var remote *domain.RemoteError
	if errors.As(err, &remote) {
		return &domain.AuthError{Message: remote.Message}
	}
	return fmt.Errorf("auth request: %w", err)
}
