package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/road_risk_advisor/internal/models"
)

// GeocodeCache хранит результаты геокодирования адресов в Redis
type GeocodeCache struct {
	redisClient *redis.Client
}

func NewGeocodeCache(redisClient *redis.Client) *GeocodeCache {
	return &GeocodeCache{redisClient: redisClient}
}

func geocodeKey(address string) string {
	return fmt.Sprintf("geocode:%s", strings.ToLower(strings.TrimSpace(address)))
}

// GetPosition пытается получить координаты адреса из Redis. Промах кеша - (_, false, nil).
func (c *GeocodeCache) GetPosition(ctx context.Context, address string) (models.Position, bool, error) {
	val, err := c.redisClient.Get(ctx, geocodeKey(address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Position{}, false, nil
		}
		return models.Position{}, false, fmt.Errorf("failed to get position from cache: %w", err)
	}

	var pos models.Position
	if err := json.Unmarshal(val, &pos); err != nil {
		return models.Position{}, false, fmt.Errorf("failed to unmarshal position from cache: %w", err)
	}
	return pos, true, nil
}

// SetPosition сохраняет координаты адреса в Redis на время ttl
func (c *GeocodeCache) SetPosition(ctx context.Context, address string, pos models.Position, ttl time.Duration) error {
	val, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("failed to marshal position for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, geocodeKey(address), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set position in cache: %w", err)
	}
	return nil
}
