package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgeline/brandforge/internal/billing"
	"github.com/forgeline/brandforge/internal/catalog"
	"github.com/forgeline/brandforge/internal/config"
	"github.com/forgeline/brandforge/internal/export"
	"github.com/forgeline/brandforge/internal/generate"
	"github.com/forgeline/brandforge/internal/logger"
	"github.com/forgeline/brandforge/internal/realtime"
	"github.com/forgeline/brandforge/internal/session"
	"github.com/forgeline/brandforge/internal/store"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config config.Config
	Logger *logger.Logger
	Hub    *realtime.Hub

	store   *store.Store
	catalog *catalog.Catalog
}

func newAppContext(flags *rootFlags) (*AppContext, error) {
	configPath := flags.configPath
	if configPath == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.HumanLogs})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return &AppContext{
		Config: cfg,
		Logger: log,
		Hub:    realtime.NewHub(),
	}, nil
}

// Store opens the local database on first use.
func (a *AppContext) Store() (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	if err := os.MkdirAll(filepath.Dir(a.Config.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	db, err := store.Open(a.Config.DBPath)
	if err != nil {
		return nil, err
	}
	a.store = store.New(db, a.Hub)

	// A fresh replica still shows the plan catalog on the account page.
	if err := a.store.SeedPlans(context.Background(), store.DefaultPlans()); err != nil {
		return nil, err
	}
	return a.store, nil
}

// Catalog loads the template catalog on first use.
func (a *AppContext) Catalog() (*catalog.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}

	if err := os.MkdirAll(a.Config.TemplatesDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating templates dir: %w", err)
	}
	cat, err := catalog.Load(a.Config.TemplatesDir, a.Logger.WithComponent("catalog"))
	if err != nil {
		return nil, err
	}
	a.catalog = cat
	return a.catalog, nil
}

// SessionCache returns the on-disk session store.
func (a *AppContext) SessionCache() *session.FileCache {
	return session.NewFileCache(filepath.Join(filepath.Dir(a.Config.DBPath), "session.json"))
}

// CurrentSession loads the cached session, failing with guidance when
// nobody is signed in.
func (a *AppContext) CurrentSession() (session.Session, error) {
	s, err := a.SessionCache().Load()
	if err != nil {
		return session.Session{}, fmt.Errorf("not signed in (run `brandforge login`): %w", err)
	}
	return s, nil
}

// AuthProvider builds the auth client, if an endpoint is configured.
func (a *AppContext) AuthProvider() (*session.HTTPProvider, error) {
	if a.Config.Services.AuthURL == "" {
		return nil, fmt.Errorf("no auth_url configured")
	}
	return session.NewHTTPProvider(a.Config.Services.AuthURL, a.Config.Services.AuthAPIKey), nil
}

// Billing builds the billing client, if an endpoint is configured.
func (a *AppContext) Billing() (*billing.Client, error) {
	if a.Config.Services.BillingURL == "" {
		return nil, fmt.Errorf("no billing_url configured")
	}
	return billing.NewClient(a.Config.Services.BillingURL), nil
}

// Generate builds the generation client, if an endpoint is configured.
func (a *AppContext) Generate() (*generate.Client, error) {
	if a.Config.Services.GenerateURL == "" {
		return nil, fmt.Errorf("no generate_url configured")
	}
	return generate.NewClient(a.Config.Services.GenerateURL), nil
}

// Exporter wires the export workspace and the optional rasterizer.
func (a *AppContext) Exporter() (*export.Exporter, error) {
	workspace, err := export.OpenWorkspace(a.Config.ExportDir)
	if err != nil {
		return nil, err
	}

	var rasterizer export.Rasterizer
	if a.Config.Services.RasterURL != "" {
		rasterizer = export.NewHTTPRasterizer(a.Config.Services.RasterURL)
	}
	return export.NewExporter(workspace, rasterizer, a.Logger.WithComponent("export")), nil
}

// Close releases held resources.
func (a *AppContext) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Logger.Error(err, "closing store")
		}
	}
}
