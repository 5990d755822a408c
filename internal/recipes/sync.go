package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"recipekeeper/internal/logging"
	"recipekeeper/internal/models"
)

// TokenSource supplies the current session token, or "" when anonymous.
type TokenSource func() string

// SyncGateway pulls and pushes the full recipe collection as JSON against
// the remote document endpoint. Transport failures propagate to the caller
// as opaque errors; there is no retry and no conflict detection.
type SyncGateway struct {
	endpoint string
	client   *http.Client
	repo     *Repository
	token    TokenSource
	log      logging.Logger
}

// NewSyncGateway binds the gateway to the document endpoint and the
// repository it reconciles. token may be nil for unauthenticated access.
func NewSyncGateway(endpoint string, timeout time.Duration, repo *Repository, token TokenSource, log logging.Logger) *SyncGateway {
	if token == nil {
		token = func() string { return "" }
	}
	return &SyncGateway{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		repo:     repo,
		token:    token,
		log:      log,
	}
}

// FetchAll reads the remote document and replaces the repository contents
// wholesale. Recipes arriving without an ingredient list get an empty one.
func (g *SyncGateway) FetchAll(ctx context.Context) ([]models.Recipe, error) {
	reqURL, err := g.requestURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch recipes: unexpected status %s", resp.Status)
	}

	var fetched []models.Recipe
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	g.repo.Replace(fetched)
	result := g.repo.All()
	g.log.Info(ctx, "recipes fetched", "count", len(result))
	return result, nil
}

// StoreAll writes the repository's current contents to the remote document,
// replacing it wholesale. Last writer wins.
func (g *SyncGateway) StoreAll(ctx context.Context) error {
	reqURL, err := g.requestURL()
	if err != nil {
		return err
	}

	body, err := json.Marshal(g.repo.All())
	if err != nil {
		return fmt.Errorf("failed to encode recipes: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to store recipes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to store recipes: unexpected status %s; body: %s", resp.Status, string(b))
	}

	g.log.Info(ctx, "recipes stored", "count", g.repo.Len())
	return nil
}

// requestURL appends the session token as the "auth" query parameter when a
// session exists; anonymous requests go out without it.
func (g *SyncGateway) requestURL() (string, error) {
	tok := g.token()
	if tok == "" {
		return g.endpoint, nil
	}

	u, err := url.Parse(g.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid recipes endpoint: %w", err)
	}
	q := u.Query()
	q.Set("auth", tok)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
