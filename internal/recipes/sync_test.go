package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipekeeper/internal/logging"
	"recipekeeper/internal/models"
	"recipekeeper/internal/shoppinglist"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func TestFetchAll_NormalizesMissingIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		fmt.Fprint(w, `[{"name":"A","ingredients":null},{"name":"B"}]`)
	}))
	defer srv.Close()

	repo := NewRepository()
	g := NewSyncGateway(srv.URL, 5*time.Second, repo, nil, testLogger())

	got, err := g.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, r := range got {
		require.NotNil(t, r.Ingredients)
		assert.Empty(t, r.Ingredients)
	}
	assert.Equal(t, 2, repo.Len())
}

func TestFetchAll_ReplacesRepositoryWholesale(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"name":"Remote","ingredients":[{"name":"salt","amount":1}]}]`)
	}))
	defer srv.Close()

	repo := NewRepository()
	repo.Add(models.Recipe{Name: "Local1"})
	repo.Add(models.Recipe{Name: "Local2"})

	g := NewSyncGateway(srv.URL, 5*time.Second, repo, nil, testLogger())
	_, err := g.FetchAll(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, repo.Len())
	got, err := repo.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Remote", got.Name)
	assert.Equal(t, []models.Ingredient{{Name: "salt", Amount: 1}}, got.Ingredients)
}

func TestFetchAll_TransportFailureLeavesRepositoryIntact(t *testing.T) {
	repo := NewRepository()
	repo.Add(models.Recipe{Name: "Keep"})

	g := NewSyncGateway("http://127.0.0.1:1", time.Second, repo, nil, testLogger())
	_, err := g.FetchAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, repo.Len())
}

func TestFetchAll_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	repo := NewRepository()
	g := NewSyncGateway(srv.URL, 5*time.Second, repo, nil, testLogger())
	_, err := g.FetchAll(context.Background())
	require.ErrorContains(t, err, "unexpected status")
}

func TestStoreAll_PutsFullCollection(t *testing.T) {
	var gotBody []models.Recipe
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	repo := NewRepository()
	repo.Add(models.Recipe{Name: "A", Ingredients: []models.Ingredient{{Name: "salt", Amount: 2}}})
	repo.Add(models.Recipe{Name: "B"})

	g := NewSyncGateway(srv.URL, 5*time.Second, repo, nil, testLogger())
	require.NoError(t, g.StoreAll(context.Background()))

	assert.Equal(t, http.MethodPut, gotMethod)
	require.Len(t, gotBody, 2)
	assert.Equal(t, "A", gotBody[0].Name)
	assert.Equal(t, "B", gotBody[1].Name)
}

func TestStoreAll_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":"permission denied"}`)
	}))
	defer srv.Close()

	g := NewSyncGateway(srv.URL, 5*time.Second, NewRepository(), nil, testLogger())
	err := g.StoreAll(context.Background())
	require.ErrorContains(t, err, "unexpected status")
	require.ErrorContains(t, err, "permission denied")
}

func TestStoreAll_UnaffectedByShoppingListMutations(t *testing.T) {
	var gotBody []models.Recipe
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	repo := NewRepository()
	repo.Add(models.Recipe{Name: "Soup", Ingredients: []models.Ingredient{{Name: "onion", Amount: 2}}})

	// Mutating the shopping list built from the recipe's ingredients must
	// not leak back into the repository.
	list := shoppinglist.New()
	rec, err := repo.Get(0)
	require.NoError(t, err)
	list.AddAll(rec.Ingredients)
	require.NoError(t, list.Delete(0))

	g := NewSyncGateway(srv.URL, 5*time.Second, repo, nil, testLogger())
	require.NoError(t, g.StoreAll(context.Background()))

	require.Len(t, gotBody, 1)
	assert.Equal(t, []models.Ingredient{{Name: "onion", Amount: 2}}, gotBody[0].Ingredients)
}

func TestRequests_CarrySessionToken(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.URL.Query().Get("auth"))
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	token := "session-token"
	g := NewSyncGateway(srv.URL, 5*time.Second, NewRepository(),
		func() string { return token }, testLogger())

	_, err := g.FetchAll(context.Background())
	require.NoError(t, err)
	require.NoError(t, g.StoreAll(context.Background()))

	require.Equal(t, []string{"session-token", "session-token"}, gotAuth)

	// Anonymous requests omit the parameter entirely.
	token = ""
	_, err = g.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", gotAuth[2])
}
