package services

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/api"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/logging"
)

// LookupAPI is the slice of the remote contract the lookup cache needs.
type LookupAPI interface {
	ListLookup(ctx context.Context, kind api.LookupKind) ([]models.LookupEntry, error)
}

// Lookups caches the three reference collections that populate the
// manage-screen selectors. The collections are read-only after load and
// refreshed only on initialization.
type Lookups struct {
	api LookupAPI
	log logging.Logger

	mu        sync.Mutex
	genres    []models.LookupEntry
	platforms []models.LookupEntry
	stores    []models.LookupEntry
}

func NewLookups(a LookupAPI, log logging.Logger) *Lookups {
	return &Lookups{api: a, log: log}
}

// LoadAll fetches the three collections in parallel. Each fetch is
// independent: one failing is logged and leaves that collection empty
// without blocking or failing the others, so the forms referencing it
// still work with an empty selector.
func (l *Lookups) LoadAll(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { l.load(ctx, api.LookupGenres, &l.genres); return nil })
	g.Go(func() error { l.load(ctx, api.LookupPlatforms, &l.platforms); return nil })
	g.Go(func() error { l.load(ctx, api.LookupStores, &l.stores); return nil })
	_ = g.Wait()
}

func (l *Lookups) load(ctx context.Context, kind api.LookupKind, dst *[]models.LookupEntry) {
	rows, err := l.api.ListLookup(ctx, kind)
	if err != nil {
		l.log.Warn(ctx, "lookup fetch failed", "collection", kind.String(), "error", err)
		return
	}
	l.mu.Lock()
	*dst = rows
	l.mu.Unlock()
}

func (l *Lookups) Genres() []models.LookupEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.genres)
}

func (l *Lookups) Platforms() []models.LookupEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.platforms)
}

func (l *Lookups) Stores() []models.LookupEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.stores)
}
