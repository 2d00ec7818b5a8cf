// Package weather looks up current conditions for a city from a
// weatherapi-style endpoint, with a cache and an outbound rate limit.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
)

var ErrNotConfigured = errors.New("weather lookup is not configured")

type Config struct {
	APIKey  string
	BaseURL string
	// Requests per second against the upstream API.
	RateLimit float64
	Burst     int
	Timeout   time.Duration
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      Cache
}

func NewClient(cfg Config, cache Cache) *Client {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cache == nil {
		cache = NewNoOpCache()
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		cache:      cache,
	}
}

type currentResponse struct {
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// CurrentForCity returns the current weather for a city, serving from cache
// when possible.
func (c *Client) CurrentForCity(ctx context.Context, city string) (*models.WeatherInfo, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	if info, ok := c.cache.Get(ctx, city); ok {
		return info, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request for %s: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request for %s: status %d", city, resp.StatusCode)
	}

	var payload currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	now := time.Now().UTC()
	temp := payload.Current.TempC
	info := &models.WeatherInfo{
		Temperature: &temp,
		Conditions:  payload.Current.Condition.Text,
		UpdatedAt:   &now,
	}

	// Cache writes are best effort
	_ = c.cache.Set(ctx, city, info)

	return info, nil
}
