package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const wikipediaAPIEndpoint = "https://en.wikipedia.org/w/api.php"

// WikipediaSearch queries the MediaWiki search API. It is the static
// knowledge source: good for stable background facts, useless for news.
type WikipediaSearch struct {
	Endpoint string
	Client   *http.Client
}

func NewWikipediaSearch() *WikipediaSearch {
	return &WikipediaSearch{
		Endpoint: wikipediaAPIEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

func (w *WikipediaSearch) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("format", "json")
	params.Set("srlimit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia search returned status %d", resp.StatusCode)
	}

	var payload wikiSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode wikipedia response: %w", err)
	}

	hits := payload.Query.Search
	if len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]SearchResult, 0, len(hits))
	for _, item := range hits {
		results = append(results, SearchResult{
			Title:       item.Title,
			Description: item.Snippet,
			URL:         "https://en.wikipedia.org/wiki/" + strings.ReplaceAll(item.Title, " ", "_"),
		})
	}
	return results, nil
}
