// Package github fetches pull request bodies from the GitHub API, for
// running the pipeline outside a CI event context where the body is
// not already in the environment.
package github

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	github_ratelimit "github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"
)

// prURLRe matches a GitHub pull request URL and captures owner, repo,
// and number.
var prURLRe = regexp.MustCompile(`^https?://(?:www\.)?github\.com/([^/]+)/([^/]+)/pull/(\d+)`)

// Fetcher retrieves pull request bodies for one default owner/repo.
// Identifiers naming another repository override the default.
type Fetcher struct {
	client *gh.Client
	owner  string
	repo   string
}

// NewFetcher creates a Fetcher with rate-limit-aware transport. The
// token may be empty for public repositories.
func NewFetcher(owner, repo, token string) *Fetcher {
	rateLimiter := github_ratelimit.NewClient(nil)

	client := gh.NewClient(rateLimiter)
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, rateLimiter)
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = gh.NewClient(oauth2.NewClient(ctx, src))
	}

	return &Fetcher{client: client, owner: owner, repo: repo}
}

// prIdentifier is a fully resolved pull request reference.
type prIdentifier struct {
	Owner  string
	Repo   string
	Number int
}

// parsePRIdentifier accepts a bare number (resolved against the
// default owner/repo), an owner/repo#number reference, or a full pull
// request URL.
func (f *Fetcher) parsePRIdentifier(id string) (*prIdentifier, error) {
	if m := prURLRe.FindStringSubmatch(id); m != nil {
		num, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("invalid PR number in URL: %w", err)
		}
		return &prIdentifier{Owner: m[1], Repo: m[2], Number: num}, nil
	}

	if slash, hash := strings.Index(id, "/"), strings.Index(id, "#"); slash > 0 && hash > slash {
		num, err := strconv.Atoi(id[hash+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid PR number in %q: %w", id, err)
		}
		return &prIdentifier{Owner: id[:slash], Repo: id[slash+1 : hash], Number: num}, nil
	}

	if num, err := strconv.Atoi(id); err == nil {
		if f.owner == "" || f.repo == "" {
			return nil, fmt.Errorf("bare PR number %d requires a default repository (--repo owner/name)", num)
		}
		return &prIdentifier{Owner: f.owner, Repo: f.repo, Number: num}, nil
	}

	if strings.Contains(id, "://") {
		if !f.MatchesURL(id) {
			return nil, fmt.Errorf("%q is not a GitHub URL", id)
		}
		return nil, fmt.Errorf("%q is not a pull request URL", id)
	}

	return nil, fmt.Errorf("unrecognized PR identifier %q", id)
}

// MatchesURL returns true if the URL belongs to GitHub.
func (f *Fetcher) MatchesURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "github.com" || host == "www.github.com"
}

// PRBody retrieves the description text of the pull request named by
// id.
func (f *Fetcher) PRBody(ctx context.Context, id string) (string, error) {
	parsed, err := f.parsePRIdentifier(id)
	if err != nil {
		return "", fmt.Errorf("could not parse PR identifier %q: %w", id, err)
	}

	pr, _, err := f.client.PullRequests.Get(ctx, parsed.Owner, parsed.Repo, parsed.Number)
	if err != nil {
		return "", fmt.Errorf("failed to get PR: %w", err)
	}

	return pr.GetBody(), nil
}
