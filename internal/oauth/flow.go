// Package oauth drives the three-legged authorization-code handshake with
// the Notion OAuth provider. A flow attempt moves through: idle, awaiting
// redirect (external user agent), code received, token exchange, and then
// either authenticated (credentials persisted) or failed. Cancellation of
// a pending attempt is terminal but not an error.
package oauth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"voicenote/internal/storage"
)

// DeniedError means the user or provider denied authorization, or the
// redirect could not be trusted (missing code, state mismatch).
// Recoverable: the flow can simply be offered again.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("authorization denied: %s", e.Reason)
}

// TokenExchangeError is a non-2xx response from the token endpoint. The
// raw body is kept for diagnostics.
type TokenExchangeError struct {
	StatusCode int
	Body       string
}

func (e *TokenExchangeError) Error() string {
	return fmt.Sprintf("token exchange failed with status %d: %s", e.StatusCode, e.Body)
}

// UnavailableError is a transport-level failure during the exchange. The
// credential store is left untouched; no synthetic credentials are ever
// fabricated.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("oauth provider unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// CredentialStore persists the record produced by a successful exchange.
type CredentialStore interface {
	Save(ctx context.Context, record *storage.CredentialRecord) error
}

// Flow executes the authorization-code flow with a fixed, pre-registered
// redirect URI. One attempt can be pending at a time; starting a new
// attempt supersedes the previous state value.
type Flow struct {
	config *oauth2.Config
	store  CredentialStore
	client *http.Client

	mu           sync.Mutex
	pendingState string
}

// NewFlow creates a Flow for the given OAuth client registration.
func NewFlow(clientID, clientSecret, redirectURL, authorizeURL, tokenURL string, store CredentialStore) *Flow {
	return &Flow{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   authorizeURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		store:  store,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Begin starts a new attempt and returns the URL to open in the external
// user agent. Each attempt gets a fresh opaque state value; the redirect
// is rejected unless it echoes the same value back.
func (f *Flow) Begin() string {
	state := uuid.New().String()

	f.mu.Lock()
	f.pendingState = state
	f.mu.Unlock()

	return f.config.AuthCodeURL(state, oauth2.SetAuthURLParam("owner", "user"))
}

// Cancel abandons the pending attempt, if any. Reports whether an attempt
// was pending. Dismissing the user agent is not an error.
func (f *Flow) Cancel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pendingState == "" {
		return false
	}
	f.pendingState = ""
	return true
}

// HandleRedirect consumes the query parameters delivered to the redirect
// URI, exchanges the authorization code for an access token, and persists
// the resulting credential record with no destination selected yet.
// On any failure the store is untouched.
func (f *Flow) HandleRedirect(ctx context.Context, query url.Values) (*storage.CredentialRecord, error) {
	f.mu.Lock()
	state := f.pendingState
	f.pendingState = ""
	f.mu.Unlock()

	if errParam := query.Get("error"); errParam != "" {
		return nil, &DeniedError{Reason: errParam}
	}
	if state == "" || query.Get("state") != state {
		return nil, &DeniedError{Reason: "state mismatch"}
	}
	code := query.Get("code")
	if code == "" {
		return nil, &DeniedError{Reason: "missing authorization code"}
	}

	exchanged, err := f.exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	record := &storage.CredentialRecord{
		AccessToken:   exchanged.AccessToken,
		OwnerUserID:   exchanged.Owner.User.ID,
		WorkspaceID:   exchanged.WorkspaceID,
		WorkspaceName: exchanged.WorkspaceName,
		// PageID stays empty: authenticated but unconfigured until the
		// user picks a destination.
	}
	if err := f.store.Save(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

type tokenRequest struct {
	GrantType   string `json:"grant_type"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type tokenResponse struct {
	AccessToken   string `json:"access_token"`
	WorkspaceID   string `json:"workspace_id"`
	WorkspaceName string `json:"workspace_name"`
	Owner         struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	} `json:"owner"`
}

// exchange POSTs the authorization code to the token endpoint. Notion
// expects client credentials basic-auth encoded and a JSON body, so the
// request is issued directly rather than through oauth2.Config.Exchange.
func (f *Flow) exchange(ctx context.Context, code string) (*tokenResponse, error) {
	payload := tokenRequest{
		GrantType:   "authorization_code",
		Code:        code,
		RedirectURI: f.config.RedirectURL,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.config.Endpoint.TokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(f.config.ClientID, f.config.ClientSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &TokenExchangeError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("failed to decode token response: %w", err)}
	}
	if token.AccessToken == "" {
		return nil, &UnavailableError{Err: fmt.Errorf("token response missing access_token")}
	}

	return &token, nil
}
