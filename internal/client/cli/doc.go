// Package cli implements the interactive game-site client.
//
// The REPL mirrors the mobile app's screens: a catalog screen everyone can
// browse, login and signup forms, and a manage screen where devs create and
// delete listings. Navigation state (who is logged in, which screen is
// active) lives in the session controller; this package only renders it
// and forwards user intents.
package cli
