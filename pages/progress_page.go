package pages

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rpupo63/devfolio-backend/services"
)

type ProgressState string

const (
	ProgressUnconfigured ProgressState = "unconfigured"
	ProgressError        ProgressState = "error"
	ProgressOK           ProgressState = "ok"
)

// StatCards are third-party rendered images of the user's GitHub activity.
type StatCards struct {
	ProfileSummary string `json:"profileSummary"`
	TopLanguages   string `json:"topLanguages"`
	Streak         string `json:"streak"`
}

type ProgressPage struct {
	State    ProgressState         `json:"state"`
	Username string                `json:"username,omitempty"`
	Message  string                `json:"message,omitempty"`
	Stats    *services.GitHubStats `json:"stats,omitempty"`
	Cards    *StatCards            `json:"cards,omitempty"`
}

// ProgressPage never fails because of GitHub. Lookup failures become the error state; only a
// failed profile read is returned as an error.
func (b *Builder) ProgressPage(ctx context.Context) (ProgressPage, error) {
	profile, err := b.profile.Get(ctx)
	if err != nil {
		return ProgressPage{}, err
	}
	if profile == nil || strings.TrimSpace(profile.GithubUsername) == "" {
		return ProgressPage{
			State:   ProgressUnconfigured,
			Message: "Add your GitHub username in Settings to see your progress.",
		}, nil
	}

	username := strings.TrimSpace(profile.GithubUsername)
	stats, err := b.github.Stats(ctx, username)
	if err != nil {
		page := ProgressPage{State: ProgressError, Username: username, Message: "GitHub stats are unavailable right now."}
		if errs.IsUpstreamNotFound(err) {
			page.Message = fmt.Sprintf("GitHub username %q not found. Please check your username in Settings.", username)
		}
		return page, nil
	}

	cards := NewStatCards(username)
	return ProgressPage{
		State:    ProgressOK,
		Username: username,
		Stats:    &stats,
		Cards:    &cards,
	}, nil
}

func NewStatCards(username string) StatCards {
	u := url.QueryEscape(username)
	return StatCards{
		ProfileSummary: "https://github-profile-summary-cards.vercel.app/api/cards/profile-details?username=" + u + "&theme=transparent",
		TopLanguages:   "https://github-readme-stats.vercel.app/api/top-langs/?username=" + u + "&layout=compact&theme=dark&hide_border=true",
		Streak:         "https://streak-stats.demolab.com/?user=" + u + "&theme=dark&hide_border=true",
	}
}
