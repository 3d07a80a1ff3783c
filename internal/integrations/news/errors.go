package news

import "errors"

var (
	// ErrNotConfigured возвращается, если URL ленты не задан
	ErrNotConfigured = errors.New("news client: feed url is not configured")

	// ErrFetchFeed возвращается, если ленту не удалось загрузить или разобрать
	ErrFetchFeed = errors.New("news client: failed to fetch feed")
)
