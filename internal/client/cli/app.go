package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/api"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/config"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/services"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/session"
	"github.com/emilssudmalis1337/game-site-expo/internal/logging"
)

// draft is the manage screen's add-game form. It survives a failed create
// so the user can amend and retry; it is cleared only on success.
type draft struct {
	Title      string
	GenreID    int64
	PlatformID int64
	StoreID    int64
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Controller
	catalog *services.Catalog
	lookups *services.Lookups
	reader  *bufio.Reader
	out     io.Writer

	draft draft
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := api.NewHTTPClient(c.ServerRootURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		log:     log,
		session: session.New(apiClient, log),
		catalog: services.NewCatalog(apiClient, log),
		lookups: services.NewLookups(apiClient, log),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run performs the startup fetches and hands control to the REPL. The
// initial loads are best-effort, like the screens' initial fetches in the
// mobile app: a dead server still gets you a working (empty) catalog.
func (a *App) Run(ctx context.Context) {
	a.lookups.LoadAll(ctx)
	if err := a.catalog.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "initial catalog load failed", "error", err)
	}

	printlnFn("Welcome to GameSite! (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	s := string(a.session.Screen())
	if sess := a.session.Session(); sess.Active() {
		s = sess.Username + " " + string(sess.Role) + " " + s
	}
	return "(" + s + ")"
}

func (a *App) LoggedIn() bool {
	return a.session.LoggedIn()
}

// CanManage consults the same capability predicate the navigation gate
// uses, so the menu and the gate can never disagree.
func (a *App) CanManage() bool {
	return session.Allowed(a.session.Session(), models.ScreenManage)
}
