package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/api"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/logging"
)

type fakeAPI struct {
	loginRes  api.LoginResult
	loginErr  error
	loginN    int
	whoamiRes models.Account
	whoamiErr error
	logoutErr error
	logoutN   int
	signupF   api.SignupForm
	signupErr error
	signupN   int
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (api.LoginResult, error) {
	f.loginN++
	return f.loginRes, f.loginErr
}

func (f *fakeAPI) Whoami(context.Context) (models.Account, error) {
	return f.whoamiRes, f.whoamiErr
}

func (f *fakeAPI) Logout(context.Context) error {
	f.logoutN++
	return f.logoutErr
}

func (f *fakeAPI) Signup(_ context.Context, form api.SignupForm) error {
	f.signupN++
	f.signupF = form
	return f.signupErr
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogin_ResolvesRole(t *testing.T) {
	f := &fakeAPI{
		loginRes:  api.LoginResult{Detail: "Logged in", Username: "alice"},
		whoamiRes: models.Account{Username: "alice", UserType: models.RoleDev},
	}
	c := New(f, testLogger())

	sess, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.Session{Username: "alice", Role: models.RoleDev}, sess)
	assert.Equal(t, models.ScreenCatalog, c.Screen())
	assert.True(t, c.LoggedIn())
}

func TestLogin_RoleResolutionFailure_FallsBackToGamer(t *testing.T) {
	f := &fakeAPI{
		loginRes:  api.LoginResult{Detail: "Logged in", Username: "alice"},
		whoamiErr: &api.ServerError{Status: 500},
	}
	c := New(f, testLogger())

	sess, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err, "a failed role lookup must not fail the login")
	assert.Equal(t, models.Session{Username: "alice", Role: models.RoleGamer}, sess)
	assert.True(t, c.LoggedIn())
}

func TestLogin_MissingFields_NoNetworkCall(t *testing.T) {
	f := &fakeAPI{}
	c := New(f, testLogger())

	_, err := c.Login(context.Background(), "", "pw")
	var verr *api.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"username"}, verr.Missing)
	assert.Zero(t, f.loginN)
	assert.False(t, c.LoggedIn())
}

func TestLogin_Rejected_StaysAnonymous(t *testing.T) {
	f := &fakeAPI{loginErr: &api.AuthError{Status: 400, Detail: "Invalid credentials."}}
	c := New(f, testLogger())

	_, err := c.Login(context.Background(), "alice", "wrong")
	var aerr *api.AuthError
	require.ErrorAs(t, err, &aerr)
	assert.False(t, c.LoggedIn())
	assert.Equal(t, models.Session{}, c.Session())
}

func TestLogout_Idempotent(t *testing.T) {
	f := &fakeAPI{
		loginRes:  api.LoginResult{Username: "alice"},
		whoamiRes: models.Account{Username: "alice", UserType: models.RoleDev},
	}
	c := New(f, testLogger())

	_, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	c.Navigate(models.ScreenManage)
	c.OpenDrawer()

	require.NoError(t, c.Logout(context.Background()))
	require.NoError(t, c.Logout(context.Background()), "second logout must be a no-op")

	assert.Equal(t, models.Session{}, c.Session())
	assert.Equal(t, models.ScreenCatalog, c.Screen())
	assert.False(t, c.DrawerOpen())
	assert.Equal(t, 1, f.logoutN, "anonymous logout must not hit the server")
}

func TestLogout_ServerFailure_ClearsStateAnyway(t *testing.T) {
	f := &fakeAPI{
		loginRes:  api.LoginResult{Username: "alice"},
		whoamiRes: models.Account{Username: "alice", UserType: models.RoleGamer},
		logoutErr: &api.NetworkError{Err: errors.New("conn refused")},
	}
	c := New(f, testLogger())

	_, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)

	err = c.Logout(context.Background())
	require.Error(t, err)
	assert.False(t, c.LoggedIn(), "UI must never stay half logged in")
	assert.Equal(t, models.ScreenCatalog, c.Screen())
}

func TestNavigate_ManageGatedOnDevRole(t *testing.T) {
	tests := []struct {
		name string
		sess models.Session
		want models.Screen
	}{
		{name: "anonymous", sess: models.Session{}, want: models.ScreenCatalog},
		{name: "gamer", sess: models.Session{Username: "bob", Role: models.RoleGamer}, want: models.ScreenCatalog},
		{name: "dev", sess: models.Session{Username: "alice", Role: models.RoleDev}, want: models.ScreenManage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeAPI{}, testLogger())
			c.sess = tt.sess

			c.Navigate(models.ScreenManage)
			assert.Equal(t, tt.want, c.Screen())
		})
	}
}

func TestNavigate_OpenScreens(t *testing.T) {
	c := New(&fakeAPI{}, testLogger())

	for _, s := range []models.Screen{models.ScreenLogin, models.ScreenSignup, models.ScreenCatalog} {
		c.Navigate(s)
		assert.Equal(t, s, c.Screen())
	}
}

func TestSignup_LocalValidation(t *testing.T) {
	tests := []struct {
		name string
		form api.SignupForm
	}{
		{name: "missing username", form: api.SignupForm{Password1: "a", Password2: "a"}},
		{name: "missing passwords", form: api.SignupForm{Username: "bob"}},
		{name: "password mismatch", form: api.SignupForm{Username: "bob", Password1: "a", Password2: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAPI{}
			c := New(f, testLogger())

			err := c.Signup(context.Background(), tt.form)
			var verr *api.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Zero(t, f.signupN, "validation failures must not reach the network")
		})
	}
}

func TestSignup_DefaultsRoleToGamer(t *testing.T) {
	f := &fakeAPI{}
	c := New(f, testLogger())

	require.NoError(t, c.Signup(context.Background(), api.SignupForm{
		Username: "bob", Password1: "pw", Password2: "pw",
	}))
	assert.Equal(t, models.RoleGamer, f.signupF.UserType)
}

func TestAllowed_CapabilityPredicate(t *testing.T) {
	dev := models.Session{Username: "a", Role: models.RoleDev}
	gamer := models.Session{Username: "b", Role: models.RoleGamer}

	assert.True(t, Allowed(dev, models.ScreenManage))
	assert.False(t, Allowed(gamer, models.ScreenManage))
	assert.False(t, Allowed(models.Session{}, models.ScreenManage))
	assert.True(t, Allowed(models.Session{}, models.ScreenCatalog))
	assert.True(t, Allowed(gamer, models.ScreenLogin))
}
