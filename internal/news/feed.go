// Package news fetches recent market headlines from an RSS feed. The
// headlines only enrich the narrative prompt and the document layout; any
// failure here is tolerated by the pipeline.
package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultLimit is how many headlines are kept from the feed.
const DefaultLimit = 5

// Fetcher pulls item titles from a single RSS feed.
type Fetcher struct {
	url    string
	limit  int
	client *http.Client
}

// NewFetcher creates a Fetcher for the given feed URL. A non-positive
// limit falls back to DefaultLimit.
func NewFetcher(url string, limit int) *Fetcher {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Fetcher{
		url:    url,
		limit:  limit,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title string `xml:"title"`
}

// Headlines fetches the feed and returns up to limit non-empty titles in
// feed order.
func (f *Fetcher) Headlines(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	var feed rssFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	var headlines []string
	for _, item := range feed.Channel.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		headlines = append(headlines, title)
		if len(headlines) == f.limit {
			break
		}
	}
	return headlines, nil
}
