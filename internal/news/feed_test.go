package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Market News</title>
    <item><title>Retail spending up 2% in February</title></item>
    <item><title>  Consumer confidence steady  </title></item>
    <item><title></title></item>
    <item><title>Ecommerce growth slows</title></item>
    <item><title>Fourth headline</title></item>
  </channel>
</rss>`

func TestHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 3)
	headlines, err := f.Headlines(context.Background())
	require.NoError(t, err)

	// Empty titles skipped, whitespace trimmed, limit respected.
	assert.Equal(t, []string{
		"Retail spending up 2% in February",
		"Consumer confidence steady",
		"Ecommerce growth slows",
	}, headlines)
}

func TestHeadlines_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 0)
	_, err := f.Headlines(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestHeadlines_BadXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not xml at all"))
	}))
	defer srv.Close()

	f := NewFetcher(srv.URL, 0)
	_, err := f.Headlines(context.Background())
	require.Error(t, err)
}

func TestNewFetcher_DefaultLimit(t *testing.T) {
	f := NewFetcher("http://example.com/feed", 0)
	assert.Equal(t, DefaultLimit, f.limit)
}
