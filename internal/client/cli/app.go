package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MustafaTekin48/marine-field-app/internal/client/api"
	"github.com/MustafaTekin48/marine-field-app/internal/client/config"
	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/client/repositories/credentials"
	"github.com/MustafaTekin48/marine-field-app/internal/client/services"
	"github.com/MustafaTekin48/marine-field-app/internal/client/workflow"
	"github.com/MustafaTekin48/marine-field-app/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the API client, the auth service and the workflow runner
// behind the interactive loop.
type App struct {
	config      *config.Config
	client      api.Client
	authService services.AuthService
	session     *models.Session
	db          *sql.DB
	log         logging.Logger
	reader      *bufio.Reader
}

// NewApp opens the local credential store, builds the HTTP client for the
// configured ERP endpoint and assembles the application.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := credentials.InitDatabase(ctx, c.CredentialsDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	client := api.NewHTTPClient(c.APIBaseURL, &http.Client{Timeout: c.RequestTimeout})
	as := services.NewAuthService(client, db)

	return &App{
		config:      c,
		client:      client,
		authService: as,
		db:          db,
		log:         logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the previous session, if any, and enters the REPL. It blocks
// until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if session, err := a.authService.Restore(ctx); err == nil {
		a.session = session
		a.log.Info(ctx, "session restored", "username", session.Username)
	}

	fmt.Println("Marine field client (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Username)
}

// MenuItems returns the workflows the current session may run, in menu order.
func (a *App) MenuItems() []workflow.ID {
	if a.session == nil {
		return nil
	}
	return workflow.VisibleWorkflows(a.session.Roles)
}
