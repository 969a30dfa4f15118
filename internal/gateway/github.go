package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/naka-gawa/standups-report/internal/domain"
)

// GitHubIssueGateway looks up issue titles in a single GitHub repository.
type GitHubIssueGateway struct {
	restClient *github.Client
	owner      string
	repo       string
	logger     *log.Logger
}

// ParseRepo splits an "owner/name" repository reference.
func ParseRepo(fullName string) (string, string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("%w: repository must be owner/name, got %q", domain.ErrMalformedInput, fullName)
	}
	return owner, repo, nil
}

// NewGitHubIssueGateway is a constructor that creates a new instance of GitHubIssueGateway.
// An empty token uses unauthenticated requests.
func NewGitHubIssueGateway(token, fullName string, timeout time.Duration, logger *log.Logger) (*GitHubIssueGateway, error) {
	owner, repo, err := ParseRepo(fullName)
	if err != nil {
		return nil, err
	}
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(5*time.Minute, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{Transport: transport, Timeout: timeout}
	return &GitHubIssueGateway{
		restClient: github.NewClient(httpClient),
		owner:      owner,
		repo:       repo,
		logger:     logger,
	}, nil
}

// IssueURLPrefix returns the prefix issue numbers are appended to in links.
func (g *GitHubIssueGateway) IssueURLPrefix() string {
	return fmt.Sprintf("https://github.com/%s/%s/issues/", g.owner, g.repo)
}

// Describe returns the title of an issue or pull request.
func (g *GitHubIssueGateway) Describe(ctx context.Context, id string) (string, error) {
	number, err := strconv.Atoi(id)
	if err != nil {
		return "", &domain.LookupError{Op: "describe issue", ID: id, Err: fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)}
	}
	g.logger.Printf("  Looking up %s/%s#%d...\n", g.owner, g.repo, number)
	issue, _, err := g.restClient.Issues.Get(ctx, g.owner, g.repo, number)
	if err != nil {
		return "", &domain.LookupError{Op: "describe issue", ID: id, Err: fmt.Errorf("failed to get issue with REST API: %w", err)}
	}
	return issue.GetTitle(), nil
}
