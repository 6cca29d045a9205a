package v1

import (
	"time"

	"github.com/shenikar/road_risk_advisor/internal/advisory"
	"github.com/shenikar/road_risk_advisor/internal/models"
)

// PositionDTO точка на карте
// @Description Точка на карте
type PositionDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// RadiusSearchRequest DTO для поиска по радиусу
// @Description DTO для поиска по радиусу вокруг точки
type RadiusSearchRequest struct {
	Lat      float64 `json:"lat" validate:"latitude"`
	Lng      float64 `json:"lng" validate:"longitude"`
	RadiusKm float64 `json:"radius_km" validate:"required,gt=0,lte=2000"`
}

// AddressSearchRequest DTO для поиска вокруг адреса
// @Description DTO для поиска вокруг адреса
type AddressSearchRequest struct {
	Address  string  `json:"address" validate:"required,max=255"`
	RadiusKm float64 `json:"radius_km" validate:"required,gt=0,lte=2000"`
}

// BoundingBoxRequest DTO для поиска кандидатов маршрута
// @Description Прямоугольник, охватывающий маршрут
type BoundingBoxRequest struct {
	BottomLeft PositionDTO `json:"bottom_left"`
	TopRight   PositionDTO `json:"top_right"`
}

// RouteSelectionRequest DTO ответа виджета карты
// @Description Индексы кандидатов, лежащих на маршруте, через запятую
type RouteSelectionRequest struct {
	Indices string `json:"indices"`
}

// WaypointsRequest DTO для построения маршрута
// @Description Адреса начала и конца маршрута
type WaypointsRequest struct {
	Start string `json:"start" validate:"required,max=255"`
	End   string `json:"end" validate:"required,max=255"`
}

// FilterRequest DTO фильтров текущей выборки
// @Description Фильтры по участникам, тяжести и годам
type FilterRequest struct {
	Car        bool `json:"car"`
	Bike       bool `json:"bike"`
	Pedestrian bool `json:"pedestrian"`
	Fatal      bool `json:"fatal"`
	Serious    bool `json:"serious"`
	Minor      bool `json:"minor"`
	StartYear  int  `json:"start_year" validate:"min=2000,max=2023"`
	EndYear    int  `json:"end_year" validate:"min=2000,max=2023"`
}

// ImportRequest DTO для импорта выгрузки
// @Description Источник выгрузки: путь, file:// или s3://bucket/key
type ImportRequest struct {
	Source string `json:"source" validate:"required"`
}

// RecordResponse DTO записи о ДТП
// @Description Запись о ДТП
type RecordResponse struct {
	models.IncidentRecord
	SeverityLabel string `json:"severity_label"`
}

// PageResponse DTO страницы записей
// @Description Страница записей
type PageResponse struct {
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Records  []RecordResponse `json:"records"`
}

// CountResponse DTO с количеством записей
// @Description Количество записей
type CountResponse struct {
	Count int `json:"count"`
}

// SearchResponse DTO с результатом поиска или фильтрации
// @Description Размер текущей выборки
type SearchResponse struct {
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// AdvisoryResponse DTO рекомендаций по текущей выборке
// @Description Рекомендации и оценка риска
type AdvisoryResponse struct {
	Total       int             `json:"total"`
	Recent      int             `json:"recent"`
	AverageRisk float64         `json:"average_risk"`
	PeakRisk    float64         `json:"peak_risk"`
	Items       []advisory.Item `json:"items"`
}

// MarkersResponse DTO координат для карты
// @Description Координаты записей плоским массивом [lat, lng, ...]
type MarkersResponse struct {
	Points []float64 `json:"points"`
}

// CandidatesResponse DTO кандидатов маршрута
// @Description Координаты кандидатов плоским массивом [lat, lng, ...]
type CandidatesResponse struct {
	Count      int                     `json:"count"`
	Candidates models.CandidateMessage `json:"candidates" swaggertype:"array,number"`
}

// RouteResponse DTO маршрута
// @Description Маршрут в формате виджета карты
type RouteResponse struct {
	Route string `json:"route"`
}

// ImportAcceptedResponse DTO принятого импорта
// @Description ID фоновой задачи импорта
type ImportAcceptedResponse struct {
	JobID string `json:"job_id"`
}

// ImportStatusResponse DTO состояния импорта
// @Description Состояние фоновой задачи импорта
type ImportStatusResponse struct {
	JobID       string     `json:"job_id"`
	Status      string     `json:"status"`
	Source      string     `json:"source,omitempty"`
	Accepted    int        `json:"accepted"`
	Rejected    int        `json:"rejected"`
	Inserted    int        `json:"inserted"`
	Error       string     `json:"error,omitempty"`
	SubmittedAt time.Time  `json:"submitted_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}
