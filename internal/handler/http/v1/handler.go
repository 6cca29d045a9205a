package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/road_risk_advisor/internal/advisory"
	"github.com/shenikar/road_risk_advisor/internal/config"
	"github.com/shenikar/road_risk_advisor/internal/geocode"
	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/service"
	"github.com/shenikar/road_risk_advisor/internal/worker"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 10
	maxPageSize     = 1000
	maxUploadBytes  = 64 << 20
)

type Handler struct {
	incidents service.IncidentService
	view      service.ViewService
	imports   service.ImportService
	advisor   *advisory.Engine
	pages     *worker.Latest[[]models.IncidentRecord]
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	incidents service.IncidentService,
	view service.ViewService,
	imports service.ImportService,
	advisor *advisory.Engine,
	pages *worker.Latest[[]models.IncidentRecord],
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidents: incidents,
		view:      view,
		imports:   imports,
		advisor:   advisor,
		pages:     pages,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// bindJSON разбирает и проверяет тело запроса; при ошибке ответ уже записан
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибки сервисов в HTTP-ответы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var uerr *service.UserInputError
	var gerr *geocode.Error
	switch {
	case errors.As(err, &uerr):
		log.WithError(err).Warn("Invalid user input")
		c.JSON(http.StatusBadRequest, gin.H{"error": uerr.Error()})
	case errors.Is(err, service.ErrInvalidYearRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoSearch):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &gerr) && gerr.NotFound:
		log.WithError(err).Info("Address not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
	case errors.As(err, &gerr):
		log.WithError(err).Error("Geocoding failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding failed"})
	case errors.Is(err, worker.ErrQueueFull), errors.Is(err, worker.ErrPoolClosed):
		log.WithError(err).Warn("Import queue unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "import queue is full, try again later"})
	case errors.Is(err, worker.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pageParams читает page и pageSize из query; страницы нумеруются с нуля
func pageParams(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		return 0, 0, &service.UserInputError{Field: "page", Message: "must be an integer"}
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil {
		return 0, 0, &service.UserInputError{Field: "pageSize", Message: "must be an integer"}
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, &service.UserInputError{Field: "pageSize", Message: fmt.Sprintf("must be between 1 and %d", maxPageSize)}
	}
	return page, pageSize, nil
}

// @Summary List stored records
// @Description Get a page of stored records ordered by id. A newer request for the same view supersedes older ones.
// @Tags Records
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Param view query string false "View key used to supersede older loads" default(records)
// @Success 200 {object} PageResponse
// @Failure 400 {object} map[string]string "Invalid page parameters"
// @Failure 409 {object} map[string]string "Superseded by a newer request"
// @Router /records [get]
func (h *Handler) listRecords(c *gin.Context) {
	log := h.logger.WithField("method", "listRecords")
	page, pageSize, err := pageParams(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	view := c.DefaultQuery("view", "records")

	ctx := c.Request.Context()
	done := h.pages.Load(ctx, "records:"+view, func(ctx context.Context) ([]models.IncidentRecord, error) {
		records := h.incidents.Page(ctx, page, pageSize)
		return records, ctx.Err()
	})

	select {
	case res := <-done:
		if res.Err != nil {
			h.respondError(c, log, res.Err)
			return
		}
		c.JSON(http.StatusOK, PageResponse{Page: page, PageSize: pageSize, Records: ModelsToRecordResponses(res.Value)})
	case <-ctx.Done():
		log.WithError(ctx.Err()).Info("Client went away before page was loaded")
	}
}

// @Summary Count stored records
// @Tags Records
// @Produce json
// @Success 200 {object} CountResponse
// @Router /records/count [get]
func (h *Handler) countRecords(c *gin.Context) {
	c.JSON(http.StatusOK, CountResponse{Count: h.incidents.Count(c.Request.Context())})
}

// @Summary Delete a record
// @Description Delete a stored record by id. Requires API key.
// @Tags Records
// @Security ApiKeyAuth
// @Param id path int true "Record ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid record ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /records/{id} [delete]
func (h *Handler) deleteRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record ID"})
		return
	}
	h.incidents.DeleteOne(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// @Summary Delete all records
// @Description Delete every stored record. Requires API key.
// @Tags Records
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /records [delete]
func (h *Handler) deleteAllRecords(c *gin.Context) {
	h.incidents.DeleteAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary Import a feed
// @Description Queue a background import of a CSV feed from a path, file:// or s3:// URI. Requires API key.
// @Tags Imports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param import body ImportRequest true "Feed source"
// @Success 202 {object} ImportAcceptedResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Import queue is full"
// @Router /imports [post]
func (h *Handler) createImport(c *gin.Context) {
	var input ImportRequest
	log := h.logger.WithField("method", "createImport")
	if !h.bindJSON(c, log, &input) {
		return
	}

	id, err := h.imports.Submit(input.Source)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ImportAcceptedResponse{JobID: id})
}

// @Summary Upload a feed
// @Description Queue a background import of an uploaded CSV feed. Requires API key.
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "CSV feed"
// @Success 202 {object} ImportAcceptedResponse
// @Failure 400 {object} map[string]string "Missing or oversized file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Import queue is full"
// @Router /imports/upload [post]
func (h *Handler) uploadImport(c *gin.Context) {
	log := h.logger.WithField("method", "uploadImport")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Missing upload file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, log, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		h.respondError(c, log, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	id, err := h.imports.SubmitData(fileHeader.Filename, data)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ImportAcceptedResponse{JobID: id})
}

// @Summary Get import status
// @Tags Imports
// @Produce json
// @Param id path string true "Import job ID"
// @Success 200 {object} ImportStatusResponse
// @Failure 404 {object} map[string]string "Import not found"
// @Router /imports/{id} [get]
func (h *Handler) getImport(c *gin.Context) {
	status, ok := h.imports.Status(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "import not found"})
		return
	}
	c.JSON(http.StatusOK, StatusToResponse(status))
}

// @Summary Search around a point
// @Description Replace the current view with records within radius_km of the point.
// @Tags Search
// @Accept json
// @Produce json
// @Param search body RadiusSearchRequest true "Search parameters"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /search/radius [post]
func (h *Handler) searchRadius(c *gin.Context) {
	var input RadiusSearchRequest
	log := h.logger.WithField("method", "searchRadius")
	if !h.bindJSON(c, log, &input) {
		return
	}

	n := h.view.SearchRadius(c.Request.Context(), input.Lat, input.Lng, input.RadiusKm)
	c.JSON(http.StatusOK, SearchResponse{Count: n})
}

// @Summary Search around an address
// @Description Geocode the address and replace the current view with records within radius_km of it.
// @Tags Search
// @Accept json
// @Produce json
// @Param search body AddressSearchRequest true "Search parameters"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Address not found"
// @Failure 502 {object} map[string]string "Geocoding failed"
// @Router /search/address [post]
func (h *Handler) searchAddress(c *gin.Context) {
	var input AddressSearchRequest
	log := h.logger.WithField("method", "searchAddress")
	if !h.bindJSON(c, log, &input) {
		return
	}

	n, err := h.view.SearchAddress(c.Request.Context(), input.Address, input.RadiusKm)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Count: n})
}

// @Summary Load all records
// @Description Replace the current view with every stored record.
// @Tags Search
// @Produce json
// @Success 200 {object} SearchResponse
// @Router /search/all [post]
func (h *Handler) searchAll(c *gin.Context) {
	c.JSON(http.StatusOK, SearchResponse{Count: h.view.LoadAll(c.Request.Context())})
}

// @Summary Get route candidates
// @Description Find records inside the route bounding box. The map widget answers with the indices that lie on the route.
// @Tags Route
// @Accept json
// @Produce json
// @Param box body BoundingBoxRequest true "Route bounding box"
// @Success 200 {object} CandidatesResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /route/candidates [post]
func (h *Handler) routeCandidates(c *gin.Context) {
	var input BoundingBoxRequest
	log := h.logger.WithField("method", "routeCandidates")
	if !h.bindJSON(c, log, &input) {
		return
	}

	msg := h.view.RouteCandidates(c.Request.Context(), DTOToPosition(input.BottomLeft), DTOToPosition(input.TopRight))
	c.JSON(http.StatusOK, CandidatesResponse{Count: len(msg.Points), Candidates: msg})
}

// @Summary Select route records
// @Description Replace the current view with the route candidates at the given indices.
// @Tags Route
// @Accept json
// @Produce json
// @Param selection body RouteSelectionRequest true "Comma-separated candidate indices"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string "Invalid indices or no pending candidates"
// @Router /route/selection [post]
func (h *Handler) routeSelection(c *gin.Context) {
	var input RouteSelectionRequest
	log := h.logger.WithField("method", "routeSelection")
	if !h.bindJSON(c, log, &input) {
		return
	}

	n, err := h.view.SelectRoute(input.Indices)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Count: n})
}

// @Summary Build route waypoints
// @Description Geocode start and end addresses into a route for the map widget.
// @Tags Route
// @Accept json
// @Produce json
// @Param waypoints body WaypointsRequest true "Start and end addresses"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Address not found"
// @Failure 502 {object} map[string]string "Geocoding failed"
// @Router /route/waypoints [post]
func (h *Handler) routeWaypoints(c *gin.Context) {
	var input WaypointsRequest
	log := h.logger.WithField("method", "routeWaypoints")
	if !h.bindJSON(c, log, &input) {
		return
	}

	route, err := h.view.Waypoints(c.Request.Context(), input.Start, input.End)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RouteResponse{Route: route.JSON()})
}

// @Summary Apply filters
// @Description Rebuild the current view from the last search using vehicle, severity and year filters.
// @Tags View
// @Accept json
// @Produce json
// @Param filters body FilterRequest true "Filters"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string "Invalid filters or year range"
// @Failure 409 {object} map[string]string "No search performed yet"
// @Router /view/filters [post]
func (h *Handler) applyFilters(c *gin.Context) {
	var input FilterRequest
	log := h.logger.WithField("method", "applyFilters")
	if !h.bindJSON(c, log, &input) {
		return
	}

	n, err := h.view.ApplyFilters(DTOToFilters(input))
	if errors.Is(err, service.ErrNoResults) {
		c.JSON(http.StatusOK, SearchResponse{Count: 0, Message: err.Error()})
		return
	}
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Count: n})
}

// @Summary Page through the current view
// @Tags View
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} PageResponse
// @Failure 400 {object} map[string]string "Invalid page parameters"
// @Router /view/page [get]
func (h *Handler) viewPage(c *gin.Context) {
	log := h.logger.WithField("method", "viewPage")
	page, pageSize, err := pageParams(c)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	records := h.view.GetPage(page, pageSize)
	c.JSON(http.StatusOK, PageResponse{Page: page, PageSize: pageSize, Records: ModelsToRecordResponses(records)})
}

// @Summary Get map markers
// @Description Coordinates of the current view as a flat [lat, lng, ...] array. Records without coordinates are skipped.
// @Tags View
// @Produce json
// @Success 200 {object} MarkersResponse
// @Router /view/markers [get]
func (h *Handler) viewMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, MarkersResponse{Points: h.view.Markers()})
}

// @Summary Get risk advisory
// @Description Risk scores and driving advice for the current view.
// @Tags View
// @Produce json
// @Success 200 {object} AdvisoryResponse
// @Router /view/advisory [get]
func (h *Handler) viewAdvisory(c *gin.Context) {
	report := h.advisor.Advise(h.view.Current())
	c.JSON(http.StatusOK, ReportToAdvisoryResponse(report))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
