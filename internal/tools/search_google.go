package tools

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleSearch wraps the Google Custom Search JSON API. It is the live
// source for time-sensitive queries.
type GoogleSearch struct {
	svc *customsearch.Service
	cx  string
}

func NewGoogleSearch(ctx context.Context, apiKey, cx string) (*GoogleSearch, error) {
	if apiKey == "" || cx == "" {
		return nil, fmt.Errorf("google search requires an API key and a search engine id")
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create custom search service: %w", err)
	}
	return &GoogleSearch{svc: svc, cx: cx}, nil
}

func (g *GoogleSearch) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	call := g.svc.Cse.List().Q(query).Cx(g.cx).Context(ctx)
	if limit > 0 {
		call = call.Num(int64(limit))
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("google search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		results = append(results, SearchResult{
			Title:       item.Title,
			Description: item.Snippet,
			URL:         item.Link,
		})
		if len(results) == limit {
			break
		}
	}
	return results, nil
}
