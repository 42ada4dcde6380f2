package models

// Role is the account type reported by the backend. Devs may edit the
// catalog; gamers only browse and maintain their whitelist.
type Role string

const (
	RoleDev   Role = "dev"
	RoleGamer Role = "gamer"
)

// Account is the payload of GET /accounts/me/.
type Account struct {
	Username string `json:"username"`
	UserType Role   `json:"user_type"`
}

// Session is the authenticated identity/role pair. The zero value means
// anonymous: Username and Role are always set together or not at all.
type Session struct {
	Username string
	Role     Role
}

// Active reports whether a user is logged in.
func (s Session) Active() bool {
	return s.Username != ""
}

// Screen identifies which of the app's screens is currently mounted.
// Exactly one is active at any time.
type Screen string

const (
	ScreenCatalog Screen = "catalog"
	ScreenLogin   Screen = "login"
	ScreenSignup  Screen = "signup"
	ScreenManage  Screen = "manage"
)
