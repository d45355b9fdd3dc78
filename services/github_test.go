package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rpupo63/devfolio-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubStatsSumsStars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/octocat":
			fmt.Fprint(w, `{"login":"octocat","public_repos":3,"followers":10,"following":2}`)
		case "/users/octocat/repos":
			fmt.Fprint(w, `[{"stargazers_count":5},{"stargazers_count":7},{"stargazers_count":0}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewGitHubClient(context.Background(), srv.URL, "")
	stats, err := client.Stats(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, GitHubStats{Login: "octocat", PublicRepos: 3, Followers: 10, Following: 2, TotalStars: 12}, stats)
}

func TestGitHubStatsUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewGitHubClient(context.Background(), srv.URL, "")
	_, err := client.Stats(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errs.IsUpstreamNotFound(err))
}

func TestGitHubStatsSendsToken(t *testing.T) {
	var authorized atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer secret" {
			authorized.Add(1)
		}
		if r.URL.Path == "/users/octocat/repos" {
			fmt.Fprint(w, `[]`)
			return
		}
		fmt.Fprint(w, `{"login":"octocat"}`)
	}))
	defer srv.Close()

	client := NewGitHubClient(context.Background(), srv.URL, "secret")
	_, err := client.Stats(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, int32(2), authorized.Load())
}

func TestGitHubStatsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewGitHubClient(context.Background(), srv.URL, "")
	_, err := client.Stats(context.Background(), "octocat")
	require.Error(t, err)
	assert.False(t, errs.IsUpstreamNotFound(err))
}
