package services

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/firelovers/storefront/config"
	"github.com/firelovers/storefront/internal/store"
	"github.com/firelovers/storefront/pkg/cache"
	"github.com/firelovers/storefront/pkg/http"
)

const gamesCacheTTL = 5 * time.Minute

// GamesService proxies the free-to-play games catalog of an external API.
// Responses are relayed as-is and cached briefly; the upstream document
// shape is not ours to guarantee.
type GamesService struct{}

func NewGamesService() *GamesService {
	return &GamesService{}
}

// All returns the full upstream games list.
func (s *GamesService) All(ctx context.Context) (json.RawMessage, error) {
	return s.fetch(ctx, "games:all", config.GamesAPIURL()+"/games")
}

// Find returns a single upstream game by its upstream id.
func (s *GamesService) Find(ctx context.Context, id string) (json.RawMessage, error) {
	key := "games:" + id
	url := fmt.Sprintf("%s/game?id=%s", config.GamesAPIURL(), id)
	return s.fetch(ctx, key, url)
}

func (s *GamesService) fetch(ctx context.Context, key, url string) (json.RawMessage, error) {
	var cached json.RawMessage
	if cache.Get(key, &cached) {
		return cached, nil
	}

	resp, err := http.Get(url).
		WithContext(ctx).
		Timeout(10 * time.Second).
		Retry(2, 500*time.Millisecond).
		Send()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if resp.StatusCode == nethttp.StatusNotFound {
		return nil, store.ErrNotFound
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body := json.RawMessage(resp.Raw)
	_ = cache.Set(key, body, gamesCacheTTL)
	return body, nil
}
