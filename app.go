//nolint:revive //it is what it is
package calendar

import (
	"embed"
	"html/template"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"

	"github.com/humosaic/calendar/internal/config"
	"github.com/humosaic/calendar/internal/metrics"
	"github.com/humosaic/calendar/internal/repositories"
	"github.com/humosaic/calendar/internal/services"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type App struct {
	logger       *slog.Logger
	Config       config.Config
	tpl          *template.Template
	registry     *prometheus.Registry
	Repositories *repositories.Repositories
	Services     *services.Services
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *App {
	store := repositories.NewPostgresBlobStore(postgres.NewSpanDB(db))
	return NewInner(logger, cfg, store, time.Now)
}

// NewInner wires the app against any blob store and clock; tests inject an
// in-memory store and a fixed "today".
func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	store repositories.BlobStore,
	clock func() time.Time,
) *App {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	repos := repositories.New(logger, store, collector, clock)

	return &App{
		logger:       logger,
		Config:       cfg,
		tpl:          tpl,
		registry:     registry,
		Repositories: repos,
		Services:     services.New(logger, cfg, repos, collector, clock),
	}
}

func (app *App) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

func (app *App) GetName() string {
	return "calendar"
}
