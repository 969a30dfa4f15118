package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/naka-gawa/standups-report/internal/domain"
)

// DefaultBugzillaURL is the Mozilla bugzilla instance.
const DefaultBugzillaURL = "https://bugzilla.mozilla.org"

// BugzillaGateway looks up bug summaries through the bugzilla REST API.
type BugzillaGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *log.Logger
}

type bugzillaResponse struct {
	Bugs []struct {
		ID      int    `json:"id"`
		Summary string `json:"summary"`
	} `json:"bugs"`
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NewBugzillaGateway creates a BugzillaGateway issuing at most ratePerSecond
// requests per second. A non-positive rate disables pacing.
func NewBugzillaGateway(httpClient *http.Client, baseURL, apiKey string, ratePerSecond float64, logger *log.Logger) *BugzillaGateway {
	if baseURL == "" {
		baseURL = DefaultBugzillaURL
	}
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	return &BugzillaGateway{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// Describe returns the summary of a bug.
func (g *BugzillaGateway) Describe(ctx context.Context, id string) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", &domain.LookupError{Op: "describe bug", ID: id, Err: err}
	}

	reqURL := fmt.Sprintf("%s/rest/bug/%s?include_fields=id,summary", g.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", &domain.LookupError{Op: "describe bug", ID: id, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if g.apiKey != "" {
		req.Header.Set("X-BUGZILLA-API-KEY", g.apiKey)
	}

	g.logger.Printf("  Looking up bug %s...\n", id)
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", &domain.LookupError{Op: "describe bug", ID: id, Err: err}
	}
	defer resp.Body.Close()

	var result bugzillaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &domain.LookupError{
			Op:  "describe bug",
			ID:  id,
			Err: fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err),
		}
	}
	if result.Error {
		return "", &domain.LookupError{
			Op:  "describe bug",
			ID:  id,
			Err: fmt.Errorf("bugzilla error %d: %s", result.Code, result.Message),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &domain.LookupError{Op: "describe bug", ID: id, Err: fmt.Errorf("API error (status %d)", resp.StatusCode)}
	}
	if len(result.Bugs) == 0 {
		return "", &domain.LookupError{Op: "describe bug", ID: id, Err: errors.New("no such bug")}
	}
	return result.Bugs[0].Summary, nil
}
