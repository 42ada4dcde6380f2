package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/services"
)

// List prints the catalog as the home screen shows it: title and the three
// denormalized labels, plus the whitelist column for logged-in users.
func (a *App) List(ctx context.Context) error {
	return a.printGames(a.catalog.Games())
}

// Search filters the local replica by title, no network involved.
func (a *App) Search(ctx context.Context, term string) error {
	return a.printGames(a.catalog.Search(term))
}

func (a *App) printGames(games []models.Game) error {
	if len(games) == 0 {
		printlnFn("No games found.")
		return nil
	}
	loggedIn := a.session.LoggedIn()
	for _, g := range games {
		line := fmt.Sprintf("%4d  %-30s %-12s %-12s %-12s", g.ID, g.Name, g.GenreName, g.PlatformName, g.StoreName)
		if loggedIn {
			mark := " "
			if g.Whitelisted {
				mark = "✓"
			}
			line += "  [" + mark + "]"
		}
		printlnFn(line)
	}
	return nil
}

// Refresh re-fetches the catalog from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.catalog.Refresh(ctx); err != nil {
		printlnFn("Could not load games:", err.Error())
		return err
	}
	return a.List(ctx)
}

// Toggle flips a game's whitelist flag. The flag changes in the displayed
// list immediately; if the server rejects the call the old value comes
// back and the failure is reported. A toggle for an item whose previous
// toggle is still in flight is dropped silently, like a double tap.
func (a *App) Toggle(ctx context.Context, arg string) error {
	if !a.session.LoggedIn() {
		printlnFn("Log in to use the whitelist.")
		return nil
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		printlnFn("Not a game id:", arg)
		return nil
	}

	err = a.catalog.ToggleWhitelist(ctx, id)
	switch {
	case errors.Is(err, services.ErrMutationInFlight):
		return nil
	case errors.Is(err, services.ErrUnknownGame):
		printlnFn("No such game:", arg)
		return nil
	case err != nil:
		printlnFn("Could not update whitelist:", err.Error())
		return err
	}

	if g, ok := a.catalog.Game(id); ok {
		if g.Whitelisted {
			printlnFn(fmt.Sprintf("%s added to your whitelist.", g.Name))
		} else {
			printlnFn(fmt.Sprintf("%s removed from your whitelist.", g.Name))
		}
	}
	return nil
}
