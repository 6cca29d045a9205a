package service

//go:generate mockgen -source=coordinator.go -destination=mocks/coordinator.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/sirupsen/logrus"
)

// Geocoder переводит адрес в координаты
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Position, error)
}

// ViewService определяет контракт сессии просмотра: поиск, фильтры, страницы и выбор маршрута
type ViewService interface {
	SearchRadius(ctx context.Context, lat, lng, radiusKm float64) int
	SearchAddress(ctx context.Context, address string, radiusKm float64) (int, error)
	LoadAll(ctx context.Context) int
	ApplyFilters(filters models.Filters) (int, error)
	GetPage(page, pageSize int) []models.IncidentRecord
	Current() []models.IncidentRecord
	Markers() []float64
	RouteCandidates(ctx context.Context, bottomLeft, topRight models.Position) models.CandidateMessage
	SelectRoute(indices string) (int, error)
	Waypoints(ctx context.Context, start, end string) (*models.Route, error)
}

// Coordinator хранит базовую выборку последнего поиска и текущую отфильтрованную выборку.
// Любой поиск заменяет обе.
type Coordinator struct {
	incidents IncidentService
	geocoder  Geocoder
	logger    *logrus.Logger

	mu         sync.Mutex
	baseline   []models.IncidentRecord
	current    []models.IncidentRecord
	pending    []models.IncidentRecord
	hasPending bool
}

func NewCoordinator(incidents IncidentService, geocoder Geocoder, logger *logrus.Logger) *Coordinator {
	return &Coordinator{
		incidents: incidents,
		geocoder:  geocoder,
		logger:    logger,
	}
}

func (c *Coordinator) log(method string) *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{
		"service": "coordinator",
		"method":  method,
	})
}

// replaceBaseline вызывается под c.mu
func (c *Coordinator) replaceBaseline(records []models.IncidentRecord) int {
	c.baseline = records
	c.current = records
	return len(records)
}

// SearchRadius ищет записи вокруг точки и делает их базовой выборкой
func (c *Coordinator) SearchRadius(ctx context.Context, lat, lng, radiusKm float64) int {
	records := c.incidents.RadiusSearch(ctx, lat, lng, radiusKm)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replaceBaseline(records)
}

// SearchAddress геокодирует адрес и ищет записи вокруг найденной точки
func (c *Coordinator) SearchAddress(ctx context.Context, address string, radiusKm float64) (int, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return 0, &UserInputError{Field: "address", Message: "must not be empty"}
	}

	pos, err := c.geocoder.Geocode(ctx, address)
	if err != nil {
		c.log("SearchAddress").WithError(err).WithField("address", address).Warn("Geocoding failed")
		return 0, fmt.Errorf("failed to geocode address: %w", err)
	}
	return c.SearchRadius(ctx, pos.Lat, pos.Lng, radiusKm), nil
}

// LoadAll делает базовой выборкой все записи хранилища
func (c *Coordinator) LoadAll(ctx context.Context) int {
	records := c.incidents.All(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replaceBaseline(records)
}

// ApplyFilters заново строит текущую выборку из базовой
func (c *Coordinator) ApplyFilters(filters models.Filters) (int, error) {
	log := c.log("ApplyFilters").WithField("filters", filters)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.baseline) == 0 {
		c.current = nil
		return 0, ErrNoSearch
	}
	if filters.StartYear > filters.EndYear {
		return 0, ErrInvalidYearRange
	}

	filtered := make([]models.IncidentRecord, 0, len(c.baseline))
	for _, r := range c.baseline {
		if matchesVehicles(r, filters) && matchesSeverity(r, filters) &&
			r.Year >= filters.StartYear && r.Year <= filters.EndYear {
			filtered = append(filtered, r)
		}
	}

	c.current = filtered
	log.WithFields(logrus.Fields{
		"baseline": len(c.baseline),
		"filtered": len(filtered),
	}).Info("Filters applied")
	if len(filtered) == 0 {
		return 0, ErrNoResults
	}
	return len(filtered), nil
}

func matchesVehicles(r models.IncidentRecord, f models.Filters) bool {
	if !f.Car && !f.Bike && !f.Pedestrian {
		return true
	}
	return (f.Car && (r.SUV > 0 || r.CarStationWagon > 0)) ||
		(f.Bike && r.Bicycle > 0) ||
		(f.Pedestrian && r.Pedestrian > 0)
}

func matchesSeverity(r models.IncidentRecord, f models.Filters) bool {
	if !f.Fatal && !f.Serious && !f.Minor {
		return true
	}
	switch r.Severity {
	case models.SeverityFatal:
		return f.Fatal
	case models.SeveritySerious:
		return f.Serious
	case models.SeverityMinor, models.SeverityNonInjury:
		return f.Minor
	}
	return false
}

// GetPage возвращает копию страницы текущей выборки, вне диапазона - пустой срез
func (c *Coordinator) GetPage(page, pageSize int) []models.IncidentRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	// page сравнивается до умножения, чтобы page*pageSize не переполнился
	if page < 0 || pageSize <= 0 || len(c.current) == 0 || page > (len(c.current)-1)/pageSize {
		return []models.IncidentRecord{}
	}
	start := page * pageSize
	end := min(start+pageSize, len(c.current))
	out := make([]models.IncidentRecord, end-start)
	copy(out, c.current[start:end])
	return out
}

// Current возвращает копию текущей выборки
func (c *Coordinator) Current() []models.IncidentRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.IncidentRecord, len(c.current))
	copy(out, c.current)
	return out
}

// Markers - координаты текущей выборки плоским массивом [lat, lng, ...].
// Записи без координат пропускаются.
func (c *Coordinator) Markers() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]float64, 0, len(c.current)*2)
	for _, r := range c.current {
		if r.Lat == 0 || r.Lng == 0 {
			continue
		}
		out = append(out, float64(r.Lat), float64(r.Lng))
	}
	return out
}

// RouteCandidates ищет записи в прямоугольнике маршрута и запоминает их как кандидатов
func (c *Coordinator) RouteCandidates(ctx context.Context, bottomLeft, topRight models.Position) models.CandidateMessage {
	records := c.incidents.BoundingBoxSearch(ctx, bottomLeft, topRight)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = records
	c.hasPending = true

	msg := models.CandidateMessage{Points: make([]models.Position, 0, len(records))}
	for _, r := range records {
		msg.Points = append(msg.Points, r.Position())
	}
	return msg
}

// SelectRoute оставляет из кандидатов записи с указанными индексами.
// Кандидаты расходуются успешным выбором.
func (c *Coordinator) SelectRoute(indices string) (int, error) {
	log := c.log("SelectRoute")

	parsed, err := models.ParseSelection(indices)
	if err != nil {
		return 0, &UserInputError{Field: "indices", Message: err.Error()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasPending {
		return 0, &UserInputError{Field: "indices", Message: "no route candidates pending"}
	}
	selected := make([]models.IncidentRecord, 0, len(parsed))
	for _, idx := range parsed {
		if idx < 0 || idx >= len(c.pending) {
			return 0, &UserInputError{
				Field:   "indices",
				Message: fmt.Sprintf("index %d out of range [0, %d)", idx, len(c.pending)),
			}
		}
		selected = append(selected, c.pending[idx])
	}

	c.pending = nil
	c.hasPending = false
	log.WithField("selected", len(selected)).Info("Route selection applied")
	return c.replaceBaseline(selected), nil
}

// Waypoints геокодирует начало и конец маршрута
func (c *Coordinator) Waypoints(ctx context.Context, start, end string) (*models.Route, error) {
	route := models.NewRoute()
	for _, a := range []struct{ field, address string }{{"start", start}, {"end", end}} {
		address := strings.TrimSpace(a.address)
		if address == "" {
			return nil, &UserInputError{Field: a.field, Message: "must not be empty"}
		}
		pos, err := c.geocoder.Geocode(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("failed to geocode %s address: %w", a.field, err)
		}
		route.Append(pos)
	}
	return route, nil
}
