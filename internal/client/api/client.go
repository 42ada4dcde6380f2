// Package api implements the client side of the game-site HTTP contract.
//
// All mutating and user-scoped calls ride on the session cookie the server
// sets during login; the cookie jar inside HTTPClient carries it implicitly.
// Every operation reports failures through the shared taxonomy in errors.go:
// *NetworkError when no response arrived, *ServerError for a non-2xx status,
// *AuthError when login/signup is rejected.
package api

import (
	"context"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
)

// LoginResult is the payload of a successful POST /accounts/login/.
type LoginResult struct {
	Detail   string `json:"detail"`
	Username string `json:"username"`
}

// SignupForm mirrors the fields of POST /accounts/signup/.
type SignupForm struct {
	Username  string
	Password1 string
	Password2 string
	UserType  models.Role
}

// CreateGameForm carries the writable fields of POST /api/games/.
// The three reference fields are foreign-key ids.
type CreateGameForm struct {
	Name       string
	GenreID    int64
	PlatformID int64
	StoreID    int64
}

// LookupKind selects one of the reference collections. The key is the
// field some deployments use instead of "name" for the label.
type LookupKind struct {
	path string
	key  string
}

func (k LookupKind) String() string { return k.path }

var (
	LookupGenres    = LookupKind{path: "/api/genres/", key: "genre"}
	LookupPlatforms = LookupKind{path: "/api/platforms/", key: "platform"}
	LookupStores    = LookupKind{path: "/api/stores/", key: "store"}
)

// Client is the uniform remote-resource contract. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Whoami(ctx context.Context) (models.Account, error)
	Logout(ctx context.Context) error
	Signup(ctx context.Context, form SignupForm) error

	ListGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, form CreateGameForm) (models.Game, error)
	DeleteGame(ctx context.Context, id int64) error
	ToggleWhitelist(ctx context.Context, id int64) error

	ListLookup(ctx context.Context, kind LookupKind) ([]models.LookupEntry, error)
}
