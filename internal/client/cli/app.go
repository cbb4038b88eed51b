package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/flowgate/internal/client/auth"
	"github.com/dmitrijs2005/flowgate/internal/client/client"
	"github.com/dmitrijs2005/flowgate/internal/client/config"
	"github.com/dmitrijs2005/flowgate/internal/client/gate"
	"github.com/dmitrijs2005/flowgate/internal/client/services"
	"github.com/dmitrijs2005/flowgate/internal/client/session"
	"github.com/dmitrijs2005/flowgate/internal/filex"
	"github.com/dmitrijs2005/flowgate/internal/logging"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Store
	gate    *gate.Gate
	auth    *auth.Controller
	apis    *services.APIService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the session database and wires the gateway client, the
// session store and the screens on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	dbPath, err := filex.EnsureParentDir(c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("error preparing session database: %w", err)
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(db, log)

	api, err := client.NewHTTPClient(c.ServerURL, http.DefaultTransport, store, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		db:      db,
		session: store,
		gate:    gate.NewGate(store, log),
		auth:    auth.NewController(api, store, log),
		apis:    services.NewAPIService(api, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.gate.OnChange(a.onViewChange)
	return a, nil
}

// onViewChange drops whatever was left in the auth forms when the user is
// sent back to the authentication screen.
func (a *App) onViewChange(v gate.View) {
	a.log.Debug(context.Background(), "view changed", "view", v)
	if v == gate.ViewAuth {
		a.auth.Reset()
	}
}

// Run picks the initial view from the persisted session and serves the REPL
// until the user exits. The database is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	v, err := a.gate.Start(ctx)
	if err != nil {
		return err
	}

	printInfo(a.out, "Welcome to FlowGate CLI (type 'help' for commands)")
	if v == gate.ViewDashboard {
		printSuccess(a.out, "Restored session " + a.getStatus())
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

func (a *App) Close() error {
	a.gate.Stop()
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.gate.View() == gate.ViewDashboard
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(signed out)"
	}
	if id := a.session.Identity(); id != "" {
		return fmt.Sprintf("(%s)", id)
	}
	return "(signed in)"
}
