// Package cli is the interactive surface of RecipeKeeper: a small REPL over
// the session manager, the recipe repository, and the shopping list.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"recipekeeper/internal/authgw"
	"recipekeeper/internal/backup"
	"recipekeeper/internal/cache"
	"recipekeeper/internal/config"
	"recipekeeper/internal/logging"
	"recipekeeper/internal/models"
	"recipekeeper/internal/recipes"
	"recipekeeper/internal/session"
	"recipekeeper/internal/shoppinglist"
)

// App wires the application together and carries the REPL state.
type App struct {
	config   *config.Config
	log      logging.Logger
	manager  *session.Manager
	repo     *recipes.Repository
	syncGW   *recipes.SyncGateway
	list     *shoppinglist.Service
	exporter *backup.Exporter

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the full object graph from config.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.New(cfg.LogLevel)

	db, err := cache.OpenDatabase(ctx, cfg.CacheDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential cache: %w", err)
	}

	gw := authgw.New(cfg.AuthBaseURL, cfg.AuthAPIKey, cfg.HTTPTimeout, log)
	manager := session.NewManager(gw, cache.New(db), session.NewStore(), log)

	repo := recipes.NewRepository()
	syncGW := recipes.NewSyncGateway(cfg.RecipesEndpointURL, cfg.HTTPTimeout, repo, manager.Token, log)

	exporter, err := backup.NewExporter(ctx, backup.S3Config{
		Endpoint:  cfg.BackupEndpoint,
		Bucket:    cfg.BackupBucket,
		Region:    cfg.BackupRegion,
		AccessKey: cfg.BackupAccessKey,
		SecretKey: cfg.BackupSecretKey,
	}, repo, log)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		log:      log,
		manager:  manager,
		repo:     repo,
		syncGW:   syncGW,
		list:     shoppinglist.New(),
		exporter: exporter,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores a cached session (auto-login) and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if s, _ := a.manager.Restore(ctx); s != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", s.Email)
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.manager.Store().Current().Authenticated()
}

// status renders the prompt fragment: the signed-in email or "anonymous".
func (a *App) status() string {
	if s := a.manager.Store().Current(); s.Authenticated() {
		return s.Email
	}
	return "anonymous"
}

func (a *App) currentSession() *models.Session {
	return a.manager.Store().Current()
}
