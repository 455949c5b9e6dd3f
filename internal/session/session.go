// Package session tracks the signed-in user and brokers auth calls to
// the hosted identity service.
package session

import (
	"context"
	"time"
)

// Session is the authenticated state for one user.
type Session struct {
	UserID      string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
	IsAdmin     bool
}

// Expired reports whether the access token is past its lifetime.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// ChangeKind classifies a session state transition.
type ChangeKind string

const (
	SignedIn  ChangeKind = "SIGNED_IN"
	SignedOut ChangeKind = "SIGNED_OUT"
	Refreshed ChangeKind = "TOKEN_REFRESHED"
)

// StateChange is pushed to subscribers whenever the session changes.
// Session is the zero value on sign-out.
type StateChange struct {
	Kind    ChangeKind
	Session Session
}

// Provider is the auth surface the studio and CLI depend on.
type Provider interface {
	// GetSession returns the current session, or a NotFoundError when
	// nobody is signed in.
	GetSession(ctx context.Context) (Session, error)

	// SignUp registers a new account and signs it in.
	SignUp(ctx context.Context, email, password string) (Session, error)

	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (Session, error)

	// SignInWithGoogle starts the OAuth flow and returns the URL the
	// user must open in a browser to complete it.
	SignInWithGoogle(ctx context.Context) (string, error)

	// SignOut invalidates the current session.
	SignOut(ctx context.Context) error

	// StateChanges delivers session transitions until the provider is
	// closed. Slow consumers miss events rather than blocking auth.
	StateChanges() <-chan StateChange
}
