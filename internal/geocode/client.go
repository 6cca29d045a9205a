package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
)

// Geocoder переводит адрес в координаты
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Position, error)
}

// Error - ошибка геокодирования, всегда содержит исходный адрес
type Error struct {
	Address  string
	NotFound bool
	Err      error
}

func (e *Error) Error() string {
	if e.NotFound {
		return fmt.Sprintf("address %q not found", e.Address)
	}
	return fmt.Sprintf("geocoding %q failed: %v", e.Address, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound сообщает, что адрес не удалось найти (в отличие от сбоя запроса)
func IsNotFound(err error) bool {
	var gerr *Error
	return errors.As(err, &gerr) && gerr.NotFound
}

// Client - геокодер на основе Nominatim. Делает ровно одну попытку на запрос.
// Нулевой timeout оставляет запрос без ограничения клиента, только контекст.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	metrics    *observability.Metrics
}

func NewClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
	}
}

// Geocode ищет адрес в пределах Новой Зеландии и возвращает координаты первого совпадения
func (c *Client) Geocode(ctx context.Context, address string) (models.Position, error) {
	// QueryEscape кодирует пробелы как '+', как того ожидает Nominatim
	u := fmt.Sprintf("%s/search?q=%s,+New+Zealand&format=json", c.baseURL, url.QueryEscape(address))

	pos, err := c.doRequest(ctx, u)
	if err != nil {
		gerr := &Error{Address: address, Err: err}
		if errors.Is(err, errNoResults) {
			gerr.NotFound = true
			c.metrics.GeocodeRequests.WithLabelValues("not_found").Inc()
		} else {
			c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		}
		return models.Position{}, gerr
	}

	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	return pos, nil
}

var errNoResults = errors.New("no results")

func (c *Client) doRequest(ctx context.Context, fullURL string) (models.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return models.Position{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Position{}, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.Position{}, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return models.Position{}, fmt.Errorf("decode response: %w", err)
	}
	if len(places) == 0 {
		return models.Position{}, errNoResults
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return models.Position{}, fmt.Errorf("parse lat: %w", err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return models.Position{}, fmt.Errorf("parse lon: %w", err)
	}
	return models.Position{Lat: lat, Lng: lng}, nil
}

// Nominatim отдает координаты строками
type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}
