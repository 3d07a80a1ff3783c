package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rss(items int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Surf</title>`)
	for i := 1; i <= items; i++ {
		fmt.Fprintf(&b, `<item><title>Notícia %d</title><link>https://surf.example/%d</link><pubDate>Mon, 06 Jan 2025 10:00:00 GMT</pubDate><description>%s</description></item>`,
			i, i, strings.Repeat("ã", 250))
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestClient_Latest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rss(7)))
	}))
	defer srv.Close()

	items, err := NewClient(srv.URL, time.Second).Latest(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "Notícia 1", items[0].Title)
	assert.Equal(t, "https://surf.example/1", items[0].Link)
	assert.NotEmpty(t, items[0].Published)
	assert.Equal(t, MaxSummaryLength, utf8.RuneCountInString(items[0].Summary))
}

func TestClient_Latest_Errors(t *testing.T) {
	_, err := NewClient("", time.Second).Latest(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotConfigured)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not a feed"))
	}))
	defer srv.Close()

	_, err = NewClient(srv.URL, time.Second).Latest(context.Background(), 5)
	assert.ErrorIs(t, err, ErrFetchFeed)
}
