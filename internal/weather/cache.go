package weather

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crazydog22/sistema-gerenciamento-voos/internal/models"
)

// Cache stores weather snapshots per city so flight writes don't hammer the
// upstream API.
type Cache interface {
	Get(ctx context.Context, city string) (*models.WeatherInfo, bool)
	Set(ctx context.Context, city string, info *models.WeatherInfo) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, city string) (*models.WeatherInfo, bool) {
	data, err := c.client.Get(ctx, cacheKey(city)).Bytes()
	if err != nil {
		return nil, false
	}

	var info models.WeatherInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, false
	}
	return &info, true
}

func (c *RedisCache) Set(ctx context.Context, city string, info *models.WeatherInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(city), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func cacheKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (*NoOpCache) Get(context.Context, string) (*models.WeatherInfo, bool) { return nil, false }
func (*NoOpCache) Set(context.Context, string, *models.WeatherInfo) error  { return nil }
func (*NoOpCache) Close() error                                            { return nil }
