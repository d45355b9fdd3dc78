package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultGitHubAPIURL = "https://api.github.com"

	reposPerPage = 100
	maxRepoPages = 10
)

// GitHubStats are the numbers shown on the progress page.
type GitHubStats struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"publicRepos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	TotalStars  int    `json:"totalStars"`
}

type githubUser struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

type githubRepo struct {
	StargazersCount int `json:"stargazers_count"`
}

type GitHubClient struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewGitHubClient talks to the GitHub REST API at baseURL. An empty token makes anonymous requests.
func NewGitHubClient(ctx context.Context, baseURL, token string) *GitHubClient {
	if baseURL == "" {
		baseURL = DefaultGitHubAPIURL
	}
	httpClient := &http.Client{Timeout: 10 * time.Second}
	if token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
		httpClient.Timeout = 10 * time.Second
	}
	return &GitHubClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     log.With().Str("client", "github").Logger(),
	}
}

// Stats looks up the user and sums stargazers over their public repositories. Both requests run
// concurrently and the first failure cancels the other.
func (c *GitHubClient) Stats(ctx context.Context, username string) (GitHubStats, error) {
	var (
		user  githubUser
		stars int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, "/users/"+url.PathEscape(username), &user)
	})
	g.Go(func() error {
		total, err := c.sumStars(gctx, username)
		stars = total
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("failed to load GitHub stats")
		return GitHubStats{}, err
	}
	return GitHubStats{
		Login:       user.Login,
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
		TotalStars:  stars,
	}, nil
}

func (c *GitHubClient) sumStars(ctx context.Context, username string) (int, error) {
	total := 0
	for page := 1; page <= maxRepoPages; page++ {
		var repos []githubRepo
		path := fmt.Sprintf("/users/%s/repos?per_page=%d&page=%d", url.PathEscape(username), reposPerPage, page)
		if err := c.getJSON(ctx, path, &repos); err != nil {
			return 0, err
		}
		for _, repo := range repos {
			total += repo.StargazersCount
		}
		if len(repos) < reposPerPage {
			break
		}
	}
	return total, nil
}

func (c *GitHubClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewInternalErrorWithCause("GitHub request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewExternalServiceError("GitHub", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewMalformedPayloadError("GitHub response", err)
	}
	return nil
}
