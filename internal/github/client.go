// Package github fetches the public profile numbers shown in the portfolio
// stats widget, falling back to fixed sample values when the API is
// unavailable.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

// ErrNoUser is returned when a client has no username to query.
var ErrNoUser = errors.New("github: no username configured")

// Stats holds the widget values as display strings.
type Stats struct {
	Repos     string
	Followers string
	Stars     string
	Commits   string
	// Sample is set when the values are placeholders rather than API data.
	Sample bool
}

// Activity is one entry of the recent activity list.
type Activity struct {
	Message string
	Repo    string
	When    string
}

// SampleStats are shown when the API cannot be reached.
var SampleStats = Stats{Repos: "8", Commits: "150+", Stars: "12", Followers: "15", Sample: true}

// RecentActivity is the fixed activity list; the REST API does not expose it
// without authentication.
var RecentActivity = []Activity{
	{Message: "Implement employee management system backend", When: "2 days ago", Repo: "employee-management"},
	{Message: "Add authentication middleware", When: "5 days ago", Repo: "employee-management"},
	{Message: "Update portfolio design", When: "1 week ago", Repo: "portfolio"},
	{Message: "Fix responsive layout issues", When: "1 week ago", Repo: "portfolio"},
}

// Placeholders for zero API values. Commit counts need the GraphQL API, so
// they are always estimated.
const (
	fallbackRepos     = "5+"
	fallbackFollowers = "10+"
	fallbackStars     = "15+"
	estimatedCommits  = "200+"
)

// Client queries the GitHub REST API for one user.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	User    string
	Token   string
}

// NewClient returns a client for user with a bounded request timeout.
func NewClient(user, token string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: DefaultBaseURL,
		User:    user,
		Token:   token,
	}
}

type userResponse struct {
	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
}

type repoResponse struct {
	StargazersCount int `json:"stargazers_count"`
}

// Fetch queries the user and repository endpoints and maps them to Stats.
func (c *Client) Fetch(ctx context.Context) (Stats, error) {
	if strings.TrimSpace(c.User) == "" {
		return Stats{}, ErrNoUser
	}
	base := "/users/" + url.PathEscape(c.User)

	var user userResponse
	if err := c.get(ctx, base, &user); err != nil {
		return Stats{}, fmt.Errorf("fetching user: %w", err)
	}
	var repos []repoResponse
	if err := c.get(ctx, base+"/repos", &repos); err != nil {
		return Stats{}, fmt.Errorf("fetching repositories: %w", err)
	}

	stars := 0
	for _, r := range repos {
		stars += r.StargazersCount
	}
	return Stats{
		Repos:     countOr(user.PublicRepos, fallbackRepos),
		Followers: countOr(user.Followers, fallbackFollowers),
		Stars:     countOr(stars, fallbackStars),
		Commits:   estimatedCommits,
	}, nil
}

// Load fetches stats and returns SampleStats on any failure.
func (c *Client) Load(ctx context.Context) Stats {
	stats, err := c.Fetch(ctx)
	if err != nil {
		log.Printf("GitHub stats unavailable, using sample data: %v", err)
		return SampleStats
	}
	return stats
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func countOr(n int, fallback string) string {
	if n == 0 {
		return fallback
	}
	return strconv.Itoa(n)
}
