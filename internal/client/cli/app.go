package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/patientcli/internal/client/api"
	"github.com/dmitrijs2005/patientcli/internal/client/config"
	"github.com/dmitrijs2005/patientcli/internal/client/local"
	"github.com/dmitrijs2005/patientcli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/patientcli/internal/client/services"
	"github.com/dmitrijs2005/patientcli/internal/client/session"
	"github.com/dmitrijs2005/patientcli/internal/logging"

	_ "modernc.org/sqlite"
)

// noticeTTL is how long a transient success notice stays visible in the
// prompt before it auto-clears.
const noticeTTL = 3 * time.Second

type App struct {
	config         *config.Config
	session        *session.Store
	authService    services.AuthService
	patientService services.PatientService
	reader         *bufio.Reader

	notice   string
	noticeAt time.Time
	now      func() time.Time
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := local.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db))
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	apiClient := api.NewHTTPClient(c.ServerBaseURL, log)

	return &App{
		config:         c,
		session:        store,
		authService:    services.NewAuthService(apiClient, store),
		patientService: services.NewPatientService(apiClient, store),
		reader:         bufio.NewReader(os.Stdin),
		now:            time.Now,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// setNotice records a transient success message. It stays visible in the
// prompt until noticeTTL elapses.
func (a *App) setNotice(msg string) {
	a.notice = msg
	a.noticeAt = a.now()
}

func (a *App) currentNotice() string {
	if a.notice == "" {
		return ""
	}
	if a.now().Sub(a.noticeAt) > noticeTTL {
		a.notice = ""
		return ""
	}
	return a.notice
}
