// Package authgw is the gateway to the identity provider's REST API. It
// issues login and signup requests and maps provider errors onto the fixed
// user-facing messages; it performs no side effects of its own.
package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"recipekeeper/internal/logging"
	"recipekeeper/internal/models"
)

const (
	signInPath = "/accounts:signInWithPassword"
	signUpPath = "/accounts:signUp"
)

// authRequest is the provider's password-grant request body.
type authRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// authResponse is the provider's success body. ExpiresIn is a decimal
// string of seconds.
type authResponse struct {
	IDToken   string `json:"idToken"`
	Email     string `json:"email"`
	LocalID   string `json:"localId"`
	ExpiresIn string `json:"expiresIn"`
}

// errorResponse is the provider's failure body: an object with a nested
// error-code string field.
type errorResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Gateway issues authentication requests against the identity provider.
type Gateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logging.Logger

	// now is a test seam for expiry computation.
	now func() time.Time
}

// New constructs a Gateway. baseURL is the provider root without a trailing
// slash, e.g. "https://identitytoolkit.googleapis.com/v1".
func New(baseURL, apiKey string, timeout time.Duration, log logging.Logger) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		log:     log,
		now:     time.Now,
	}
}

// Login authenticates existing credentials against the password-grant
// endpoint. On success the returned session's expiry is now plus the
// provider's expiresIn.
func (g *Gateway) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	return g.authenticate(ctx, signInPath, email, password)
}

// Signup creates a new account; same contract as Login.
func (g *Gateway) Signup(ctx context.Context, email string, password []byte) (*models.Session, error) {
	return g.authenticate(ctx, signUpPath, email, password)
}

func (g *Gateway) authenticate(ctx context.Context, path, email string, password []byte) (*models.Session, error) {
	body, err := json.Marshal(authRequest{
		Email:             email,
		Password:          string(password),
		ReturnSecureToken: true,
	})
	if err != nil {
		g.log.Error(ctx, "failed to encode auth request", "error", err)
		return nil, ErrUnknownError
	}

	url := g.baseURL + path + "?key=" + g.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.log.Error(ctx, "failed to build auth request", "error", err)
		return nil, ErrUnknownError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Error(ctx, "auth request failed", "error", err)
		return nil, ErrUnknownError
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		g.log.Error(ctx, "failed to read auth response", "error", err)
		return nil, ErrUnknownError
	}

	if resp.StatusCode != http.StatusOK {
		return nil, g.mapError(ctx, resp.StatusCode, data)
	}

	return g.sessionFrom(ctx, data)
}

// sessionFrom builds a Session from a success body, computing the expiry
// from the call-time clock.
func (g *Gateway) sessionFrom(ctx context.Context, data []byte) (*models.Session, error) {
	var ar authResponse
	if err := json.Unmarshal(data, &ar); err != nil {
		g.log.Error(ctx, "malformed auth response", "error", err)
		return nil, ErrUnknownError
	}

	expiresIn, err := strconv.ParseInt(ar.ExpiresIn, 10, 64)
	if err != nil {
		g.log.Error(ctx, "malformed expiresIn in auth response", "value", ar.ExpiresIn)
		return nil, ErrUnknownError
	}

	return &models.Session{
		Email:     ar.Email,
		UserID:    ar.LocalID,
		Token:     ar.IDToken,
		ExpiresAt: g.now().Add(time.Duration(expiresIn) * time.Second),
	}, nil
}

// mapError translates a provider failure body. A body carrying the expected
// nested error-code shape goes through the exact-match table; anything else
// is the generic unknown error.
func (g *Gateway) mapError(ctx context.Context, status int, data []byte) error {
	var er errorResponse
	if err := json.Unmarshal(data, &er); err != nil || er.Error == nil || er.Error.Message == "" {
		g.log.Warn(ctx, "auth failure without recognizable error shape", "status", status)
		return ErrUnknownError
	}

	mapped := mapProviderCode(er.Error.Message)
	g.log.Debug(ctx, "auth failure", "code", er.Error.Message, "status", status)
	return mapped
}

// String implements fmt.Stringer for logging configuration at startup
// without exposing the API key.
func (g *Gateway) String() string {
	return fmt.Sprintf("authgw(%s)", g.baseURL)
}
