package news

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// MaxSummaryLength длина анонса новости в символах
const MaxSummaryLength = 200

// Client читатель RSS/Atom ленты новостей серфинга
type Client struct {
	feedURL string
	parser  *gofeed.Parser
}

// NewClient создает новый экземпляр клиента ленты
func NewClient(feedURL string, timeout time.Duration) *Client {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{
		Timeout: timeout,
	}
	return &Client{
		feedURL: feedURL,
		parser:  parser,
	}
}

// Latest возвращает первые limit записей ленты
func (c *Client) Latest(ctx context.Context, limit int) ([]domain.NewsItem, error) {
	if c.feedURL == "" {
		return nil, ErrNotConfigured
	}

	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFeed, err)
	}

	items := make([]domain.NewsItem, 0, limit)
	for _, entry := range feed.Items {
		if len(items) == limit {
			break
		}
		items = append(items, domain.NewsItem{
			Title:     entry.Title,
			Link:      entry.Link,
			Published: entry.Published,
			Summary:   truncate(entry.Description, MaxSummaryLength),
		})
	}

	return items, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
