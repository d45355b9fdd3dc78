package admin

import "github.com/rpupo63/devfolio-backend/auth"

// Tab is one section of the settings page.
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var settingsTabs = []Tab{
	{ID: "profile", Label: "Profile"},
	{ID: "experience", Label: "Experience"},
	{ID: "education", Label: "Education"},
	{ID: "certifications", Label: "Certifications"},
	{ID: "projects", Label: "Projects"},
	{ID: "social", Label: "Social"},
}

type Account struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Settings describes the settings page for a signed-in admin.
type Settings struct {
	Tabs       []Tab   `json:"tabs"`
	DefaultTab string  `json:"defaultTab"`
	Account    Account `json:"account"`
}

func NewSettings(session *auth.Session) Settings {
	tabs := make([]Tab, len(settingsTabs))
	copy(tabs, settingsTabs)
	return Settings{
		Tabs:       tabs,
		DefaultTab: tabs[0].ID,
		Account: Account{
			Email: session.Email,
			Role:  string(session.Role()),
		},
	}
}
