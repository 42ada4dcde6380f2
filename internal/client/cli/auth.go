package cli

import (
	"context"
	"fmt"

	"github.com/emilssudmalis1337/game-site-expo/internal/client/api"
	"github.com/emilssudmalis1337/game-site-expo/internal/client/models"
	"github.com/emilssudmalis1337/game-site-expo/internal/common"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirm = GetConfirm

// Login opens the login screen, prompts for credentials and tries to
// authenticate. On success the session controller resolves the role
// (falling back to gamer) and returns to the catalog screen; the catalog
// is then re-fetched so the whitelist flags of the new user show up.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.session.Navigate(models.ScreenLogin)
	a.session.CloseDrawer()

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.session.Login(ctx, userName, string(password))
	if err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Logged in as %s (%s)", sess.Username, sess.Role))

	// The whitelist column only exists for authenticated users; re-list so
	// the flags reflect the account that just logged in.
	if err := a.catalog.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "catalog refresh after login failed", "error", err)
	}
	return nil
}

// Signup opens the signup screen and prompts for the new account's fields.
// All validation (required fields, matching passwords) happens locally in
// the session controller before anything goes on the wire.
func (a *App) Signup(ctx context.Context) error {
	a.session.Navigate(models.ScreenSignup)
	a.session.CloseDrawer()

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	role, err := getSimpleText(a.reader, "Role: dev or gamer [dev]", a.out)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(models.RoleDev)
	}

	pw1, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw1)

	pw2, err := getPassword(a.out, "Repeat password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw2)

	err = a.session.Signup(ctx, api.SignupForm{
		Username:  userName,
		Password1: string(pw1),
		Password2: string(pw2),
		UserType:  models.Role(role),
	})
	if err != nil {
		printlnFn("Sign-up failed:", err.Error())
		return err
	}

	printlnFn("Account created. You can now log in.")
	return nil
}

// Logout ends the session and lands back on the catalog screen. Invoking
// it while anonymous is a no-op. A server failure is reported but local
// state is cleared regardless, so the UI never stays half logged in.
func (a *App) Logout(ctx context.Context) error {
	if !a.session.LoggedIn() {
		return nil
	}

	err := a.session.Logout(ctx)
	if err != nil {
		printlnFn("Logout failed:", err.Error())
	} else {
		printlnFn("Logged out.")
	}

	if rerr := a.catalog.Refresh(ctx); rerr != nil {
		a.log.Warn(ctx, "catalog refresh after logout failed", "error", rerr)
	}
	return err
}
