package geocode

import (
	"context"
	"time"

	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
	"github.com/sirupsen/logrus"
)

// Cache - хранилище ранее найденных координат
type Cache interface {
	GetPosition(ctx context.Context, address string) (models.Position, bool, error)
	SetPosition(ctx context.Context, address string, pos models.Position, ttl time.Duration) error
}

// CachedGeocoder оборачивает Geocoder кешем. Сбои кеша только логируются,
// ненайденные адреса не кешируются.
type CachedGeocoder struct {
	inner   Geocoder
	cache   Cache
	ttl     time.Duration
	logger  *logrus.Logger
	metrics *observability.Metrics
}

func NewCachedGeocoder(inner Geocoder, cache Cache, ttl time.Duration, logger *logrus.Logger, metrics *observability.Metrics) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (models.Position, error) {
	log := c.logger.WithFields(logrus.Fields{
		"service": "geocode",
		"method":  "Geocode",
		"address": address,
	})

	pos, ok, err := c.cache.GetPosition(ctx, address)
	if err != nil {
		log.WithError(err).Warn("Failed to read geocode cache")
	}
	if ok {
		c.metrics.GeocodeCache.WithLabelValues("hit").Inc()
		return pos, nil
	}
	c.metrics.GeocodeCache.WithLabelValues("miss").Inc()

	pos, err = c.inner.Geocode(ctx, address)
	if err != nil {
		return pos, err
	}

	if err := c.cache.SetPosition(ctx, address, pos, c.ttl); err != nil {
		log.WithError(err).Warn("Failed to write geocode cache")
	}
	return pos, nil
}
