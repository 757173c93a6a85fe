package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"

	"voicenote/internal/contextutil"
	"voicenote/internal/oauth"
	"voicenote/internal/storage"
)

// Handshake is the slice of the OAuth flow the handler needs.
type Handshake interface {
	Begin() string
	Cancel() bool
	HandleRedirect(ctx context.Context, query url.Values) (*storage.CredentialRecord, error)
}

// CredentialSource reads and resets the stored connection.
type CredentialSource interface {
	Cached() *storage.CredentialRecord
	Clear(ctx context.Context) error
}

// AuthHandler handles HTTP requests for the Notion connection lifecycle.
type AuthHandler struct {
	flow  Handshake
	creds CredentialSource
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(flow Handshake, creds CredentialSource) *AuthHandler {
	return &AuthHandler{flow: flow, creds: creds}
}

// ConnectResponse carries the authorization URL to open in the external
// user agent.
type ConnectResponse struct {
	URL string `json:"url"`
}

// StatusResponse reports the connection state without ever exposing the
// access token itself.
type StatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Configured    bool   `json:"configured"`
	WorkspaceName string `json:"workspaceName,omitempty"`
	PageID        string `json:"pageId,omitempty"`
	PageTitle     string `json:"pageTitle,omitempty"`
}

// Connect starts a new authorization attempt.
func (h *AuthHandler) Connect(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ConnectResponse{URL: h.flow.Begin()})
}

// Callback receives the provider redirect. The response body is rendered
// for a browser, not an API client; the app polls /api/auth/status to
// observe the outcome.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	record, err := h.flow.HandleRedirect(ctx, r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "authorization attempt failed", "error", err)
		// A transport failure reaching the provider is our gateway problem,
		// not a bad redirect.
		status := http.StatusBadRequest
		var unavailable *oauth.UnavailableError
		if errors.As(err, &unavailable) {
			status = http.StatusBadGateway
		}
		writeCallbackPage(w, status, "Connection failed", callbackMessage(err))
		return
	}

	logger.InfoContext(ctx, "workspace connected", "workspace", record.WorkspaceName)
	writeCallbackPage(w, http.StatusOK, "Connected",
		fmt.Sprintf("Connected to %s. You can close this window and return to the app.", record.WorkspaceName))
}

// Status reports whether the device is authenticated and configured.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	record := h.creds.Cached()

	resp := StatusResponse{}
	if record != nil && record.AccessToken != "" {
		resp.Authenticated = true
		resp.Configured = record.Configured()
		resp.WorkspaceName = record.WorkspaceName
		resp.PageID = record.PageID
		resp.PageTitle = record.PageTitle
	}
	writeJSON(w, http.StatusOK, resp)
}

// Disconnect removes the stored credentials.
func (h *AuthHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.creds.Clear(ctx); err != nil {
		handleServiceError(w, ctx, err, "Failed to disconnect")
		return
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "workspace disconnected")
	w.WriteHeader(http.StatusNoContent)
}

// CancelResponse reports whether an attempt was pending.
type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

// Cancel abandons a pending authorization attempt. Always succeeds;
// dismissing the browser mid-flow is not an error.
func (h *AuthHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CancelResponse{Cancelled: h.flow.Cancel()})
}

// callbackMessage converts a redirect failure into a sentence safe to show
// in the browser. Exchange details stay in the logs.
func callbackMessage(err error) string {
	switch err.(type) {
	case *oauth.DeniedError:
		return "Authorization was denied. You can retry the connection from the app."
	case *oauth.TokenExchangeError:
		return "Notion rejected the authorization. Please retry the connection from the app."
	case *oauth.UnavailableError:
		return "Notion could not be reached. Please check your connection and retry."
	default:
		return "Something went wrong while connecting. Please retry from the app."
	}
}

// writeCallbackPage renders the minimal page shown in the external browser
// after the redirect.
func writeCallbackPage(w http.ResponseWriter, status int, title, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="font-family: -apple-system, sans-serif; max-width: 32rem; margin: 4rem auto;">
<h1>%s</h1>
<p>%s</p>
</body>
</html>
`, html.EscapeString(title), html.EscapeString(title), html.EscapeString(message))
}
