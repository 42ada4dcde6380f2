// Package services contains the application services of the game-site
// client: the catalog service with its optimistic mutation handling, and
// the lookup cache feeding the manage-screen selectors.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/api"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/logging"
)

var (
	// ErrMutationInFlight rejects a second change for an item whose previous
	// change has not resolved yet. Callers treat it as a no-op, not a fault.
	ErrMutationInFlight = errors.New("a change for this item is already in flight")

	// ErrUnknownGame means the id is not in the local replica.
	ErrUnknownGame = errors.New("unknown game id")
)

// MutationKind says what a pending mutation is doing to its target.
type MutationKind int

const (
	MutationToggle MutationKind = iota + 1
	MutationDelete
)

// MutationStatus is the lifecycle of a pending mutation:
// in flight until the server answers, then committed or rolled back.
type MutationStatus int

const (
	MutationInFlight MutationStatus = iota + 1
	MutationCommitted
	MutationRolledBack
)

// pendingMutation records an optimistic change so it can be reverted
// exactly if the server refuses it.
type pendingMutation struct {
	id       uuid.UUID
	targetID int64
	kind     MutationKind
	status   MutationStatus

	prevFlag  bool        // toggle: flag value before the flip
	prevGame  models.Game // delete: the removed row
	prevIndex int         // delete: where the row sat
}

// CatalogAPI is the slice of the remote contract the catalog needs.
type CatalogAPI interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, form api.CreateGameForm) (models.Game, error)
	DeleteGame(ctx context.Context, id int64) error
	ToggleWhitelist(ctx context.Context, id int64) error
}

// Catalog holds the in-memory replica of the games list and applies user
// mutations optimistically: the visible list changes the moment the intent
// fires, and is restored if the server call fails.
//
// The lock is never held across a network call, so independent mutations
// may be in flight concurrently; the pending table keeps at most one
// mutation per target id.
type Catalog struct {
	api CatalogAPI
	log logging.Logger

	mu      sync.Mutex
	games   []models.Game
	loaded  bool
	pending map[int64]*pendingMutation
}

func NewCatalog(a CatalogAPI, log logging.Logger) *Catalog {
	return &Catalog{api: a, log: log, pending: map[int64]*pendingMutation{}}
}

// Refresh replaces the replica with the server's current list.
func (c *Catalog) Refresh(ctx context.Context) error {
	games, err := c.api.ListGames(ctx)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	c.mu.Lock()
	c.games = games
	c.loaded = true
	c.mu.Unlock()
	return nil
}

// Loaded reports whether at least one list fetch has succeeded.
func (c *Catalog) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Games returns a copy of the replica, optimistic values included.
func (c *Catalog) Games() []models.Game {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.games)
}

// Search filters the replica by case-insensitive substring match on the
// title, the same filtering the home screen's search box does.
func (c *Catalog) Search(term string) []models.Game {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.Games()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.Game
	for _, g := range c.games {
		if strings.Contains(strings.ToLower(g.Name), term) {
			out = append(out, g)
		}
	}
	return out
}

// Game looks a single row up by id.
func (c *Catalog) Game(id int64) (models.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return c.games[i], true
	}
	return models.Game{}, false
}

// Pending reports whether a mutation for the id is still in flight.
func (c *Catalog) Pending(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[id]
	return ok
}

// indexOf must be called with the lock held.
func (c *Catalog) indexOf(id int64) int {
	return slices.IndexFunc(c.games, func(g models.Game) bool { return g.ID == id })
}

// ToggleWhitelist flips a game's whitelist flag locally, then confirms the
// flip with the server. On failure the flag is restored to the exact value
// recorded at intent time; a re-fetch could race with other local edits.
func (c *Catalog) ToggleWhitelist(ctx context.Context, id int64) error {
	c.mu.Lock()
	if _, busy := c.pending[id]; busy {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return ErrUnknownGame
	}
	p := &pendingMutation{
		id:       uuid.New(),
		targetID: id,
		kind:     MutationToggle,
		status:   MutationInFlight,
		prevFlag: c.games[i].Whitelisted,
	}
	c.games[i].Whitelisted = !c.games[i].Whitelisted
	c.pending[id] = p
	c.mu.Unlock()

	err := c.api.ToggleWhitelist(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
	if err != nil {
		p.status = MutationRolledBack
		if j := c.indexOf(id); j >= 0 {
			c.games[j].Whitelisted = p.prevFlag
		}
		return fmt.Errorf("toggle whitelist: %w", err)
	}
	p.status = MutationCommitted
	return nil
}

// Delete removes a game from the replica immediately and asks the server to
// do the same. If the server refuses, the row is re-inserted at its old
// position so the visible list does not stay diverged.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	if _, busy := c.pending[id]; busy {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return ErrUnknownGame
	}
	p := &pendingMutation{
		id:        uuid.New(),
		targetID:  id,
		kind:      MutationDelete,
		status:    MutationInFlight,
		prevGame:  c.games[i],
		prevIndex: i,
	}
	c.games = slices.Delete(slices.Clone(c.games), i, i+1)
	c.pending[id] = p
	c.mu.Unlock()

	err := c.api.DeleteGame(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, id)
	if err != nil {
		p.status = MutationRolledBack
		// A concurrent refresh may already have brought the row back.
		if c.indexOf(id) < 0 {
			j := min(p.prevIndex, len(c.games))
			c.games = slices.Insert(c.games, j, p.prevGame)
		}
		return fmt.Errorf("delete game: %w", err)
	}
	p.status = MutationCommitted
	return nil
}

// Create validates the form locally, posts it, and re-lists on success so
// the replica picks up the server-assigned id and denormalized labels.
// There is no optimistic insert: the client cannot conjure an id.
// On failure the caller keeps its draft untouched for amendment.
func (c *Catalog) Create(ctx context.Context, form api.CreateGameForm) error {
	var missing []string
	if strings.TrimSpace(form.Name) == "" {
		missing = append(missing, "title")
	}
	if form.GenreID == 0 {
		missing = append(missing, "genre")
	}
	if form.PlatformID == 0 {
		missing = append(missing, "platform")
	}
	if form.StoreID == 0 {
		missing = append(missing, "store")
	}
	if len(missing) > 0 {
		return &api.ValidationError{Missing: missing}
	}

	if _, err := c.api.CreateGame(ctx, form); err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return c.Refresh(ctx)
}
