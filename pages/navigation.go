package pages

import "github.com/rpupo63/devfolio-backend/auth"

type NavItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type NavAccount struct {
	Email      string `json:"email"`
	SignOutURL string `json:"signOutUrl"`
}

type Navigation struct {
	Items   []NavItem   `json:"items"`
	Account *NavAccount `json:"account,omitempty"`
}

// NewNavigation lists the sidebar entries for session, which may be nil. Settings is listed for
// admins only.
func NewNavigation(session *auth.Session) Navigation {
	nav := Navigation{Items: []NavItem{
		{Title: "Profile", URL: "/"},
		{Title: "Progress", URL: "/progress"},
		{Title: "Projects", URL: "/projects"},
	}}
	if session == nil {
		return nav
	}
	if session.IsAdmin {
		nav.Items = append(nav.Items, NavItem{Title: "Settings", URL: "/settings"})
	}
	nav.Account = &NavAccount{Email: session.Email, SignOutURL: "/auth/signout"}
	return nav
}
