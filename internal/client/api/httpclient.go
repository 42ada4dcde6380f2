package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
)

// HTTPClient talks to the game-site backend over plain HTTP.
// The cookie jar keeps the Django session cookie between calls, so a
// successful Login authenticates every subsequent request automatically.
type HTTPClient struct {
	root string
	http *http.Client
}

// NewHTTPClient builds a client rooted at the given server URL,
// e.g. "http://192.168.42.41:8000".
func NewHTTPClient(root string, timeout time.Duration) (*HTTPClient, error) {
	if _, err := url.Parse(root); err != nil {
		return nil, fmt.Errorf("invalid server root %q: %w", root, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		root: strings.TrimRight(root, "/"),
		http: &http.Client{Jar: jar, Timeout: timeout},
	}, nil
}

// do issues a request and classifies transport failures as *NetworkError.
// A non-nil form is sent urlencoded, matching what the server expects.
func (c *HTTPClient) do(ctx context.Context, method, path string, form url.Values) (*http.Response, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.root+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return resp, nil
}

// responseError turns a non-2xx response into a *ServerError, pulling the
// "detail" message out of the body when there is one.
func responseError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &ServerError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
}

func readDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func decodeBody(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &NetworkError{Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Login exchanges credentials for a server session. The session cookie is
// stored in the jar as a side effect. A 4xx answer becomes an *AuthError.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := c.do(ctx, http.MethodPost, "/accounts/login/", form)
	if err != nil {
		return LoginResult{}, err
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return LoginResult{}, asAuthError(err)
	}

	var res LoginResult
	if err := decodeBody(resp.Body, &res); err != nil {
		return LoginResult{}, err
	}
	return res, nil
}

// Whoami fetches the logged-in account, including its user type.
func (c *HTTPClient) Whoami(ctx context.Context) (models.Account, error) {
	resp, err := c.do(ctx, http.MethodGet, "/accounts/me/", nil)
	if err != nil {
		return models.Account{}, err
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return models.Account{}, err
	}

	var acct models.Account
	if err := decodeBody(resp.Body, &acct); err != nil {
		return models.Account{}, err
	}
	return acct, nil
}

// Logout drops the server-side session.
func (c *HTTPClient) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/accounts/logout/", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return responseError(resp)
}

// Signup creates a new account. Rejections come back as *AuthError.
func (c *HTTPClient) Signup(ctx context.Context, f SignupForm) error {
	form := url.Values{}
	form.Set("username", f.Username)
	form.Set("password1", f.Password1)
	form.Set("password2", f.Password2)
	form.Set("user_type", string(f.UserType))

	resp, err := c.do(ctx, http.MethodPost, "/accounts/signup/", form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return asAuthError(responseError(resp))
}

// asAuthError reclassifies 4xx server errors on the account endpoints:
// those mean the submitted credentials or form were rejected, not that
// the server misbehaved.
func asAuthError(err error) error {
	if se, ok := err.(*ServerError); ok && se.Status >= 400 && se.Status < 500 {
		return &AuthError{Status: se.Status, Detail: se.Detail}
	}
	return err
}

// ListGames returns the full catalog as the server sees it.
func (c *HTTPClient) ListGames(ctx context.Context) ([]models.Game, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/games/", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return nil, err
	}

	var games []models.Game
	if err := decodeBody(resp.Body, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// CreateGame posts a new row. The returned Game may be the zero value:
// some deployments answer 2xx with an empty body, and callers re-list
// afterwards to pick up the canonical record either way.
func (c *HTTPClient) CreateGame(ctx context.Context, f CreateGameForm) (models.Game, error) {
	form := url.Values{}
	form.Set("game_name", f.Name)
	form.Set("genre", strconv.FormatInt(f.GenreID, 10))
	form.Set("platform", strconv.FormatInt(f.PlatformID, 10))
	form.Set("store", strconv.FormatInt(f.StoreID, 10))

	resp, err := c.do(ctx, http.MethodPost, "/api/games/", form)
	if err != nil {
		return models.Game{}, err
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return models.Game{}, err
	}

	var game models.Game
	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 {
		_ = json.Unmarshal(data, &game)
	}
	return game, nil
}

// DeleteGame removes the row with the given id.
func (c *HTTPClient) DeleteGame(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/games/%d/", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return responseError(resp)
}

// invoke is the generic act-on-one-item primitive: POST {action}{id}/ with
// no body. The session cookie authorizes the call.
func (c *HTTPClient) invoke(ctx context.Context, action string, id int64) error {
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s%d/", action, id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return responseError(resp)
}

// ToggleWhitelist flips the whitelist flag of one game for the current user.
func (c *HTTPClient) ToggleWhitelist(ctx context.Context, id int64) error {
	return c.invoke(ctx, "/whitelist/", id)
}

// ListLookup fetches one reference collection. Rows may carry their label
// under the kind-specific key ("genre", "platform", "store") or under
// "name"; both shapes are accepted.
func (c *HTTPClient) ListLookup(ctx context.Context, kind LookupKind) ([]models.LookupEntry, error) {
	resp, err := c.do(ctx, http.MethodGet, kind.path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := responseError(resp); err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := decodeBody(resp.Body, &rows); err != nil {
		return nil, err
	}

	entries := make([]models.LookupEntry, 0, len(rows))
	for _, row := range rows {
		id, ok := row["id"].(float64)
		if !ok {
			continue
		}
		name, _ := row[kind.key].(string)
		if name == "" {
			name, _ = row["name"].(string)
		}
		entries = append(entries, models.LookupEntry{ID: int64(id), Name: name})
	}
	return entries, nil
}

var _ Client = (*HTTPClient)(nil)
