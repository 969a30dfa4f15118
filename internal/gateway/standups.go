package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/naka-gawa/standups-report/internal/domain"
)

// DefaultStandupsURL is the public standups instance.
const DefaultStandupsURL = "https://www.standu.ps"

// StandupsGateway reads project timelines from the standups v2 API.
type StandupsGateway struct {
	httpClient *http.Client
	baseURL    string
	logger     *log.Logger
}

type standupsStatus struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	User    struct {
		Name     string `json:"name"`
		Username string `json:"username"`
	} `json:"user"`
}

// NewStandupsGateway creates a new StandupsGateway.
func NewStandupsGateway(httpClient *http.Client, baseURL string, logger *log.Logger) *StandupsGateway {
	if baseURL == "" {
		baseURL = DefaultStandupsURL
	}
	return &StandupsGateway{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// FetchTimeline returns the status entries of a project for a day or a range.
func (g *StandupsGateway) FetchTimeline(ctx context.Context, query domain.TimelineQuery) ([]domain.StatusEntry, error) {
	reqURL := fmt.Sprintf("%s/api/v2/projects/%s/timeline/", g.baseURL, url.PathEscape(query.Project))
	params := url.Values{}
	if query.IsRange() {
		params.Set("start", query.Start)
		params.Set("end", query.End)
	} else {
		params.Set("date", query.Date)
	}
	reqURL += "?" + params.Encode()
	g.logger.Printf("Fetching timeline: %s\n", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.LookupError{Op: "fetch timeline", ID: query.Project, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, &domain.LookupError{Op: "fetch timeline", ID: query.Project, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.LookupError{
			Op:  "fetch timeline",
			ID:  query.Project,
			Err: fmt.Errorf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var statuses []standupsStatus
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return nil, &domain.LookupError{Op: "fetch timeline", ID: query.Project, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	entries := make([]domain.StatusEntry, 0, len(statuses))
	for _, s := range statuses {
		author := s.User.Name
		if author == "" {
			author = s.User.Username
		}
		entries = append(entries, domain.StatusEntry{Author: author, Content: s.Content})
	}
	g.logger.Printf("Fetched %d status entries.\n", len(entries))
	return entries, nil
}
