package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

const authService = "auth"

// HTTPProvider talks to the hosted identity service over its REST API
// and caches the resulting session in memory.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client

	mu      sync.RWMutex
	current *Session
	changes chan StateChange
}

// NewHTTPProvider builds a provider against the service at baseURL.
// The apiKey identifies this client application, not a user.
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
		changes: make(chan StateChange, 8),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func (r tokenResponse) toSession() Session {
	return Session{
		UserID:      r.User.ID,
		Email:       r.User.Email,
		AccessToken: r.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(r.ExpiresIn) * time.Second),
		IsAdmin:     r.User.Role == "admin",
	}
}

// GetSession returns the cached session.
func (p *HTTPProvider) GetSession(ctx context.Context) (Session, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil || p.current.Expired() {
		return Session{}, brandforgeerrors.NewNotFoundError("session", "current")
	}
	return *p.current, nil
}

// SignUp registers a new account and signs it in.
func (p *HTTPProvider) SignUp(ctx context.Context, email, password string) (Session, error) {
	return p.authenticate(ctx, "/auth/v1/signup", email, password)
}

// SignIn exchanges credentials for a session.
func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) (Session, error) {
	return p.authenticate(ctx, "/auth/v1/token?grant_type=password", email, password)
}

func (p *HTTPProvider) authenticate(ctx context.Context, path, email, password string) (Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return Session{}, fmt.Errorf("encoding credentials: %w", err)
	}

	var token tokenResponse
	if err := p.do(ctx, http.MethodPost, path, "", bytes.NewReader(body), &token); err != nil {
		return Session{}, err
	}

	session := token.toSession()
	p.setSession(&session, SignedIn)
	return session, nil
}

// SignInWithGoogle asks the service for the OAuth authorization URL.
// The session lands later via the callback the service hosts.
func (p *HTTPProvider) SignInWithGoogle(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := p.do(ctx, http.MethodGet, "/auth/v1/authorize?provider=google", "", nil, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", brandforgeerrors.NewRequestError(authService, 0, "authorize response carried no url", nil)
	}
	return resp.URL, nil
}

// SignOut invalidates the session on the service and clears the cache.
// The local session is dropped even when the remote call fails.
func (p *HTTPProvider) SignOut(ctx context.Context) error {
	p.mu.RLock()
	token := ""
	if p.current != nil {
		token = p.current.AccessToken
	}
	p.mu.RUnlock()

	err := p.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil, nil)
	p.setSession(nil, SignedOut)
	return err
}

// StateChanges delivers session transitions.
func (p *HTTPProvider) StateChanges() <-chan StateChange {
	return p.changes
}

func (p *HTTPProvider) setSession(s *Session, kind ChangeKind) {
	p.mu.Lock()
	p.current = s
	p.mu.Unlock()

	change := StateChange{Kind: kind}
	if s != nil {
		change.Session = *s
	}
	select {
	case p.changes <- change:
	default:
	}
}

func (p *HTTPProvider) do(ctx context.Context, method, path, bearer string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return brandforgeerrors.NewRequestError(authService, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return brandforgeerrors.NewRequestError(authService, resp.StatusCode, readErrorMessage(resp.Body), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return brandforgeerrors.NewRequestError(authService, resp.StatusCode, "decoding response", err)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return "unreadable error body"
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Msg != "" {
			return payload.Msg
		}
	}
	return string(raw)
}
