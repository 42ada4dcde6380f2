package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/api"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/services"
)

// Create runs the manage screen's add-game form. The draft keeps whatever
// the user typed on previous attempts: a failed create leaves every field
// as entered, ready for amendment, and only a successful create clears it.
func (a *App) Create(ctx context.Context) error {
	if a.session.Screen() != models.ScreenManage {
		printlnFn("Open the manage screen first (command: manage).")
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", a.draft.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		a.draft.Title = title
	}

	if a.draft.GenreID, err = a.chooseLookup("Genre", a.lookups.Genres(), a.draft.GenreID); err != nil {
		return err
	}
	if a.draft.PlatformID, err = a.chooseLookup("Platform", a.lookups.Platforms(), a.draft.PlatformID); err != nil {
		return err
	}
	if a.draft.StoreID, err = a.chooseLookup("Store", a.lookups.Stores(), a.draft.StoreID); err != nil {
		return err
	}

	err = a.catalog.Create(ctx, api.CreateGameForm{
		Name:       a.draft.Title,
		GenreID:    a.draft.GenreID,
		PlatformID: a.draft.PlatformID,
		StoreID:    a.draft.StoreID,
	})
	if err != nil {
		var verr *api.ValidationError
		if errors.As(err, &verr) {
			printlnFn("Missing fields:", verr.Error())
		} else {
			printlnFn("Could not create game:", err.Error())
		}
		return err
	}

	a.draft = draft{}
	printlnFn("Game created.")
	return nil
}

// chooseLookup shows one reference collection and reads an id. An empty
// collection (its fetch failed at startup) still works: the user can type
// a raw id. Enter keeps the current draft value.
func (a *App) chooseLookup(label string, entries []models.LookupEntry, current int64) (int64, error) {
	for _, e := range entries {
		fmt.Fprintf(a.out, "  %d) %s\n", e.ID, e.Name)
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("%s id [%d]", label, current), a.out)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return current, nil
	}
	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		printlnFn("Not a number:", answer)
		return current, nil
	}
	return id, nil
}

// Delete asks for confirmation, removes the game from the visible list
// immediately, and reports a failure if the server refuses. By then the
// row has already been put back where it was.
func (a *App) Delete(ctx context.Context, arg string) error {
	if a.session.Screen() != models.ScreenManage {
		printlnFn("Open the manage screen first (command: manage).")
		return nil
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		printlnFn("Not a game id:", arg)
		return nil
	}

	ok, err := getConfirm(a.reader, "Delete this game?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	err = a.catalog.Delete(ctx, id)
	switch {
	case errors.Is(err, services.ErrMutationInFlight):
		return nil
	case errors.Is(err, services.ErrUnknownGame):
		printlnFn("No such game:", arg)
		return nil
	case err != nil:
		printlnFn("Could not delete game:", err.Error())
		return err
	}

	printlnFn("Game removed.")
	return nil
}
