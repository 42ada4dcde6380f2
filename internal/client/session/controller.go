// Package session owns the global client state: who is logged in, with what
// role, and which screen is active. No other component writes this state;
// screens read it through the Controller and trigger transitions through
// its methods.
package session

import (
	"context"
	"sync"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/api"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/logging"
)

// API is the slice of the remote contract the controller needs.
// *api.HTTPClient satisfies it; tests provide fakes.
type API interface {
	Login(ctx context.Context, username, password string) (api.LoginResult, error)
	Whoami(ctx context.Context) (models.Account, error)
	Logout(ctx context.Context) error
	Signup(ctx context.Context, form api.SignupForm) error
}

// Allowed is the single capability predicate consulted for navigation and
// screen guards: the manage screen needs the dev role, everything else is
// open to everyone.
func Allowed(s models.Session, target models.Screen) bool {
	if target == models.ScreenManage {
		return s.Active() && s.Role == models.RoleDev
	}
	return true
}

// Controller is the session and navigation state machine. It lives for the
// whole process; there is exactly one authoritative instance.
type Controller struct {
	api API
	log logging.Logger

	mu         sync.Mutex
	sess       models.Session
	screen     models.Screen
	drawerOpen bool
}

func New(a API, log logging.Logger) *Controller {
	return &Controller{api: a, log: log, screen: models.ScreenCatalog}
}

// Session returns the current identity/role pair (zero value = anonymous).
func (c *Controller) Session() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// Screen returns the currently active screen.
func (c *Controller) Screen() models.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

func (c *Controller) LoggedIn() bool {
	return c.Session().Active()
}

// OpenDrawer and CloseDrawer track the navigation drawer so a logout can
// close it along with everything else.
func (c *Controller) OpenDrawer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drawerOpen = true
}

func (c *Controller) CloseDrawer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drawerOpen = false
}

func (c *Controller) DrawerOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawerOpen
}

// Navigate switches the active screen. A request for a screen the current
// session may not reach is ignored: the drawer simply would not have shown
// that item, so there is nothing to report.
func (c *Controller) Navigate(target models.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !Allowed(c.sess, target) {
		return
	}
	c.screen = target
}

// Login authenticates and resolves the account role. Role resolution is
// best-effort: if /accounts/me/ fails after a successful login, the user
// stays logged in as a gamer rather than the whole login failing.
// On success the catalog screen becomes active.
func (c *Controller) Login(ctx context.Context, username, password string) (models.Session, error) {
	if username == "" || password == "" {
		missing := []string{}
		if username == "" {
			missing = append(missing, "username")
		}
		if password == "" {
			missing = append(missing, "password")
		}
		return models.Session{}, &api.ValidationError{Missing: missing}
	}

	res, err := c.api.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}

	sess := models.Session{Username: res.Username, Role: models.RoleGamer}
	if acct, err := c.api.Whoami(ctx); err != nil {
		c.log.Warn(ctx, "role resolution failed, assuming gamer", "username", res.Username, "error", err)
	} else {
		sess = models.Session{Username: acct.Username, Role: acct.UserType}
	}

	c.mu.Lock()
	c.sess = sess
	c.screen = models.ScreenCatalog
	c.mu.Unlock()
	return sess, nil
}

// Logout clears the session, lands on the catalog screen and closes the
// drawer. Calling it while anonymous is a no-op. Local state is cleared
// even if the server call fails; the error is returned for display only.
func (c *Controller) Logout(ctx context.Context) error {
	c.mu.Lock()
	active := c.sess.Active()
	c.mu.Unlock()

	var err error
	if active {
		err = c.api.Logout(ctx)
	}

	c.mu.Lock()
	c.sess = models.Session{}
	c.screen = models.ScreenCatalog
	c.drawerOpen = false
	c.mu.Unlock()
	return err
}

// Signup creates a new account. All fields are checked locally first;
// nothing goes on the wire when the form is incomplete or the two
// passwords differ.
func (c *Controller) Signup(ctx context.Context, form api.SignupForm) error {
	var missing []string
	if form.Username == "" {
		missing = append(missing, "username")
	}
	if form.Password1 == "" {
		missing = append(missing, "password1")
	}
	if form.Password2 == "" {
		missing = append(missing, "password2")
	}
	if len(missing) > 0 {
		return &api.ValidationError{Missing: missing}
	}
	if form.Password1 != form.Password2 {
		return &api.ValidationError{Reason: "both password fields must match"}
	}
	if form.UserType == "" {
		form.UserType = models.RoleGamer
	}
	return c.api.Signup(ctx, form)
}
