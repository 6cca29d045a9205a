package service

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

import (
	"context"
	"errors"

	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
	"github.com/sirupsen/logrus"
)

// IncidentStore определяет контракт хранилища записей о ДТП
type IncidentStore interface {
	InsertBatch(ctx context.Context, records []models.IncidentRecord) (int, error)
	RadiusSearch(ctx context.Context, lat, lng, radiusKm float64) ([]models.IncidentRecord, error)
	BoundingBoxSearch(ctx context.Context, bottomLeft, topRight models.Position) ([]models.IncidentRecord, error)
	Page(ctx context.Context, page, pageSize int) ([]models.IncidentRecord, error)
	All(ctx context.Context) ([]models.IncidentRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteOne(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// IncidentService - доступ к хранилищу для остального приложения.
// Ошибки хранилища логируются и превращаются в пустой результат.
type IncidentService interface {
	SaveBatch(ctx context.Context, records []models.IncidentRecord) (int, error)
	RadiusSearch(ctx context.Context, lat, lng, radiusKm float64) []models.IncidentRecord
	BoundingBoxSearch(ctx context.Context, bottomLeft, topRight models.Position) []models.IncidentRecord
	Page(ctx context.Context, page, pageSize int) []models.IncidentRecord
	All(ctx context.Context) []models.IncidentRecord
	Count(ctx context.Context) int
	DeleteOne(ctx context.Context, id int64)
	DeleteAll(ctx context.Context)
}

type incidentService struct {
	store   IncidentStore
	logger  *logrus.Logger
	metrics *observability.Metrics
}

func NewIncidentService(store IncidentStore, logger *logrus.Logger, metrics *observability.Metrics) IncidentService {
	return &incidentService{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *incidentService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  method,
	})
}

func (s *incidentService) storeFailed(log *logrus.Entry, operation string, err error) {
	// Отмененный запрос (например, вытесненная загрузка страницы) - не сбой хранилища
	if errors.Is(err, context.Canceled) {
		log.WithError(err).Debug("Store operation canceled")
		return
	}
	s.metrics.StoreErrors.WithLabelValues(operation).Inc()
	log.WithError(err).Error("Store operation failed")
}

// SaveBatch сохраняет записи. Ошибку возвращает, чтобы задача импорта могла завершиться неудачей.
func (s *incidentService) SaveBatch(ctx context.Context, records []models.IncidentRecord) (int, error) {
	log := s.log("SaveBatch").WithField("records", len(records))
	if len(records) == 0 {
		return 0, nil
	}

	inserted, err := s.store.InsertBatch(ctx, records)
	if err != nil {
		s.storeFailed(log, "insert_batch", err)
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"inserted":   inserted,
		"duplicates": len(records) - inserted,
	}).Info("Batch saved")
	return inserted, nil
}

// RadiusSearch ищет записи в радиусе radiusKm от точки
func (s *incidentService) RadiusSearch(ctx context.Context, lat, lng, radiusKm float64) []models.IncidentRecord {
	log := s.log("RadiusSearch").WithFields(logrus.Fields{
		"lat":       lat,
		"lng":       lng,
		"radius_km": radiusKm,
	})

	records, err := s.store.RadiusSearch(ctx, lat, lng, radiusKm)
	if err != nil {
		s.storeFailed(log, "radius_search", err)
		return []models.IncidentRecord{}
	}
	log.WithField("count", len(records)).Info("Radius search completed")
	return records
}

// BoundingBoxSearch ищет записи внутри прямоугольника, границы включаются
func (s *incidentService) BoundingBoxSearch(ctx context.Context, bottomLeft, topRight models.Position) []models.IncidentRecord {
	log := s.log("BoundingBoxSearch").WithFields(logrus.Fields{
		"bottom_left": bottomLeft,
		"top_right":   topRight,
	})

	records, err := s.store.BoundingBoxSearch(ctx, bottomLeft, topRight)
	if err != nil {
		s.storeFailed(log, "bbox_search", err)
		return []models.IncidentRecord{}
	}
	log.WithField("count", len(records)).Info("Bounding box search completed")
	return records
}

// Page возвращает страницу записей в порядке id
func (s *incidentService) Page(ctx context.Context, page, pageSize int) []models.IncidentRecord {
	log := s.log("Page").WithFields(logrus.Fields{
		"page":      page,
		"page_size": pageSize,
	})

	records, err := s.store.Page(ctx, page, pageSize)
	if err != nil {
		s.storeFailed(log, "page", err)
		return []models.IncidentRecord{}
	}
	log.WithField("count", len(records)).Debug("Page loaded")
	return records
}

func (s *incidentService) All(ctx context.Context) []models.IncidentRecord {
	log := s.log("All")

	records, err := s.store.All(ctx)
	if err != nil {
		s.storeFailed(log, "all", err)
		return []models.IncidentRecord{}
	}
	log.WithField("count", len(records)).Info("All records loaded")
	return records
}

func (s *incidentService) Count(ctx context.Context) int {
	n, err := s.store.Count(ctx)
	if err != nil {
		s.storeFailed(s.log("Count"), "count", err)
		return 0
	}
	return n
}

func (s *incidentService) DeleteOne(ctx context.Context, id int64) {
	log := s.log("DeleteOne").WithField("incident_id", id)
	if err := s.store.DeleteOne(ctx, id); err != nil {
		s.storeFailed(log, "delete_one", err)
		return
	}
	log.Info("Incident deleted")
}

func (s *incidentService) DeleteAll(ctx context.Context) {
	log := s.log("DeleteAll")
	if err := s.store.DeleteAll(ctx); err != nil {
		s.storeFailed(log, "delete_all", err)
		return
	}
	log.Warn("All incidents deleted")
}
