package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/road_risk_advisor/internal/advisory"
	"github.com/shenikar/road_risk_advisor/internal/config"
	"github.com/shenikar/road_risk_advisor/internal/geocode"
	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
	"github.com/shenikar/road_risk_advisor/internal/service"
	"github.com/shenikar/road_risk_advisor/internal/service/mocks"
	"github.com/shenikar/road_risk_advisor/internal/worker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

type handlerMocks struct {
	incidents *mocks.MockIncidentService
	view      *mocks.MockViewService
	imports   *mocks.MockImportService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		view:      mocks.NewMockViewService(ctrl),
		imports:   mocks.NewMockImportService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}
	advisor := advisory.New(clockwork.NewFakeClockAt(time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)))
	pages := worker.NewLatest[[]models.IncidentRecord](observability.NewMetricsForTesting())

	handler := NewHandler(m.incidents, m.view, m.imports, advisor, pages, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestListRecords_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	records := []models.IncidentRecord{{ID: 21, Severity: models.SeverityFatal, Year: 2019}}

	m.incidents.EXPECT().Page(gomock.Any(), 2, 5).Return(records).Times(1)

	w := makeRequest(router, "GET", "/api/v1/records?page=2&pageSize=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
		Records  []struct {
			ID            int64  `json:"id"`
			Severity      string `json:"severity"`
			SeverityLabel string `json:"severity_label"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 5, resp.PageSize)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, int64(21), resp.Records[0].ID)
	assert.Equal(t, "Fatal Crash", resp.Records[0].Severity)
	assert.Equal(t, "Fatal", resp.Records[0].SeverityLabel)
}

func TestListRecords_InvalidPage(t *testing.T) {
	tests := []string{
		"/api/v1/records?page=abc",
		"/api/v1/records?pageSize=x",
		"/api/v1/records?pageSize=0",
		"/api/v1/records?pageSize=100000",
	}
	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.incidents.EXPECT().Page(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

			w := makeRequest(router, "GET", url, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCountRecords(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().Count(gomock.Any()).Return(4).Times(1)

	w := makeRequest(router, "GET", "/api/v1/records/count", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":4}`, w.Body.String())
}

func TestDeleteRecord(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().DeleteOne(gomock.Any(), int64(9)).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/records/9", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteRecord_InvalidID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "DELETE", "/api/v1/records/abc", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid record ID")
}

func TestDeleteAllRecords_RequiresAPIKey(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().DeleteAll(gomock.Any()).Times(0)

	missing := makeRequest(router, "DELETE", "/api/v1/records", nil)
	invalid := makeRequest(router, "DELETE", "/api/v1/records", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Contains(t, missing.Body.String(), "API key required")
	assert.Equal(t, http.StatusUnauthorized, invalid.Code)
	assert.Contains(t, invalid.Body.String(), "Invalid API key")
}

func TestDeleteAllRecords_BearerToken(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.incidents.EXPECT().DeleteAll(gomock.Any()).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/records", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCreateImport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.imports.EXPECT().Submit("s3://feeds/crashes.csv").Return("job-1", nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/imports", jsonBody(t, ImportRequest{Source: "s3://feeds/crashes.csv"}), authHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"job_id":"job-1"}`, w.Body.String())
}

func TestCreateImport_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"queue full", worker.ErrQueueFull, http.StatusServiceUnavailable},
		{"user input", &service.UserInputError{Field: "source", Message: "must not be empty"}, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.imports.EXPECT().Submit("feed.csv").Return("", tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/imports", jsonBody(t, ImportRequest{Source: "feed.csv"}), authHeader)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestCreateImport_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.imports.EXPECT().Submit(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/imports", jsonBody(t, ImportRequest{}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Source' failed on the 'required' tag")
}

func TestUploadImport(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.imports.EXPECT().SubmitData("crashes.csv", []byte("header\nrow\n")).Return("job-2", nil).Times(1)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "crashes.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("header\nrow\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/v1/imports/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-API-Key", testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"job_id":"job-2"}`, w.Body.String())
}

func TestUploadImport_MissingFile(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/imports/upload", bytes.NewBufferString(`{}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file is required")
}

func TestGetImport(t *testing.T) {
	_, m, router := newTestHandler(t)
	finished := time.Date(2023, time.May, 1, 12, 0, 5, 0, time.UTC)
	m.imports.EXPECT().Status("job-3").Return(models.ImportStatus{
		ID:          "job-3",
		Status:      "done",
		Outcome:     models.ImportOutcome{Source: "feed.csv", Accepted: 4, Rejected: 1, Inserted: 4},
		SubmittedAt: finished.Add(-5 * time.Second),
		FinishedAt:  finished,
	}, true).Times(1)

	w := makeRequest(router, "GET", "/api/v1/imports/job-3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ImportStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "done", resp.Status)
	assert.Equal(t, 4, resp.Accepted)
	assert.Equal(t, 1, resp.Rejected)
	require.NotNil(t, resp.FinishedAt)
	assert.True(t, finished.Equal(*resp.FinishedAt))
}

func TestGetImport_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.imports.EXPECT().Status("missing").Return(models.ImportStatus{}, false).Times(1)

	w := makeRequest(router, "GET", "/api/v1/imports/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchRadius(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().SearchRadius(gomock.Any(), -36.85, 174.76, 2.5).Return(7).Times(1)

	w := makeRequest(router, "POST", "/api/v1/search/radius", jsonBody(t, RadiusSearchRequest{Lat: -36.85, Lng: 174.76, RadiusKm: 2.5}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":7}`, w.Body.String())
}

func TestSearchRadius_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().SearchRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/search/radius", jsonBody(t, RadiusSearchRequest{Lat: 95, Lng: 174.76, RadiusKm: 2}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchAddress_GeocodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", &geocode.Error{Address: "Nowhere", NotFound: true}, http.StatusNotFound, "address not found"},
		{"upstream failure", &geocode.Error{Address: "Nowhere", Err: errors.New("status 500")}, http.StatusBadGateway, "geocoding failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.view.EXPECT().SearchAddress(gomock.Any(), "Nowhere", 1.0).Return(0, tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/search/address", jsonBody(t, AddressSearchRequest{Address: "Nowhere", RadiusKm: 1}))

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestSearchAll(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().LoadAll(gomock.Any()).Return(12).Times(1)

	w := makeRequest(router, "POST", "/api/v1/search/all", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":12}`, w.Body.String())
}

func TestRouteCandidates(t *testing.T) {
	_, m, router := newTestHandler(t)
	bl := models.Position{Lat: -37, Lng: 174}
	tr := models.Position{Lat: -36, Lng: 175}
	m.view.EXPECT().RouteCandidates(gomock.Any(), bl, tr).Return(models.CandidateMessage{
		Points: []models.Position{{Lat: -36.5, Lng: 174.5}, {Lat: -36.6, Lng: 174.6}},
	}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/route/candidates", jsonBody(t, BoundingBoxRequest{
		BottomLeft: PositionDTO{Lat: -37, Lng: 174},
		TopRight:   PositionDTO{Lat: -36, Lng: 175},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2,"candidates":[-36.5,174.5,-36.6,174.6]}`, w.Body.String())
}

func TestRouteSelection(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().SelectRoute("0,2").Return(2, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/route/selection", jsonBody(t, RouteSelectionRequest{Indices: "0,2"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())
}

func TestRouteSelection_InvalidIndices(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().SelectRoute("9").Return(0, &service.UserInputError{Field: "indices", Message: "index 9 out of range [0, 3)"}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/route/selection", jsonBody(t, RouteSelectionRequest{Indices: "9"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "out of range")
}

func TestRouteWaypoints(t *testing.T) {
	_, m, router := newTestHandler(t)
	route := models.NewRoute(models.Position{Lat: -36.85, Lng: 174.76}, models.Position{Lat: -37.79, Lng: 175.28})
	m.view.EXPECT().Waypoints(gomock.Any(), "Auckland", "Hamilton").Return(route, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/route/waypoints", jsonBody(t, WaypointsRequest{Start: "Auckland", End: "Hamilton"}))

	require.Equal(t, http.StatusOK, w.Code)
	var resp RouteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, route.JSON(), resp.Route)
}

func TestApplyFilters_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		err     error
		code    int
		message string
	}{
		{"success", 3, nil, http.StatusOK, ""},
		{"no search", 0, service.ErrNoSearch, http.StatusConflict, "no search performed yet"},
		{"inverted years", 0, service.ErrInvalidYearRange, http.StatusBadRequest, "invalid year range"},
		{"no results", 0, service.ErrNoResults, http.StatusOK, "filters returned no results"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			filters := FilterRequest{Car: true, Fatal: true, StartYear: 2010, EndYear: 2020}
			m.view.EXPECT().ApplyFilters(DTOToFilters(filters)).Return(tt.count, tt.err).Times(1)

			w := makeRequest(router, "POST", "/api/v1/view/filters", jsonBody(t, filters))

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestApplyFilters_YearOutOfRange(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().ApplyFilters(gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/view/filters", jsonBody(t, FilterRequest{StartYear: 1999, EndYear: 2020}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewPage(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().GetPage(99, 10).Return([]models.IncidentRecord{}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/view/page?page=99", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"page":99,"page_size":10,"records":[]}`, w.Body.String())
}

func TestViewMarkers(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().Markers().Return([]float64{-36.5, 174.5}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/view/markers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"points":[-36.5,174.5]}`, w.Body.String())
}

func TestViewAdvisory(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().Current().Return([]models.IncidentRecord{
		{Severity: models.SeverityFatal, Year: 2023, TrafficControl: "Stop", WeatherA: "Fine", WeatherB: "Null"},
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/view/advisory", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AdvisoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	kinds := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		kinds = append(kinds, item.Kind)
	}
	assert.Equal(t, []string{advisory.KindSummary, advisory.KindTrafficControl, advisory.KindSeason, advisory.KindWeather}, kinds)
	assert.Equal(t, "Driving in Winter", resp.Items[2].Title)
}
