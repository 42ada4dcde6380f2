package cli

import (
	"context"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/session"
)

// Menu plays the hamburger drawer: it opens, shows the navigation targets
// the current session may reach, and waits for the next command. Items the
// capability predicate rules out are simply not shown.
func (a *App) Menu(ctx context.Context) error {
	a.session.OpenDrawer()

	sess := a.session.Session()
	if sess.Active() {
		printlnFn("Hi, " + sess.Username + "!")
	} else {
		printlnFn("Menu")
	}

	printlnFn("  home        - games catalog")
	if session.Allowed(sess, models.ScreenManage) {
		printlnFn("  manage      - edit listings")
	}
	if sess.Active() {
		printlnFn("  logout      - log out")
	} else {
		printlnFn("  login       - log in")
		printlnFn("  signup      - create an account")
	}
	return nil
}

// Home navigates to the catalog screen and shows the list.
func (a *App) Home(ctx context.Context) error {
	a.session.Navigate(models.ScreenCatalog)
	a.session.CloseDrawer()
	return a.List(ctx)
}

// Manage navigates to the manage screen. For a session that may not reach
// it the request is silently ignored; the menu would never have offered
// the item, so there is nothing to report.
func (a *App) Manage(ctx context.Context) error {
	a.session.Navigate(models.ScreenManage)
	a.session.CloseDrawer()
	if a.session.Screen() != models.ScreenManage {
		return nil
	}
	return a.List(ctx)
}
