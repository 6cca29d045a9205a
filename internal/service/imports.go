package service

//go:generate mockgen -source=imports.go -destination=mocks/imports.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/road_risk_advisor/internal/importer"
	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
	"github.com/shenikar/road_risk_advisor/internal/webhook"
	"github.com/shenikar/road_risk_advisor/internal/worker"
	"github.com/sirupsen/logrus"
)

// FeedOpener открывает выгрузку по URI
type FeedOpener interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// FeedParser разбирает и проверяет строки выгрузки
type FeedParser interface {
	Import(ctx context.Context, src io.Reader) (importer.Result, error)
}

// ImportService определяет контракт фонового импорта выгрузок
type ImportService interface {
	Submit(source string) (string, error)
	SubmitData(name string, data []byte) (string, error)
	Status(id string) (models.ImportStatus, bool)
}

type importService struct {
	pool      *worker.Pool[models.ImportOutcome]
	feeds     FeedOpener
	parser    FeedParser
	incidents IncidentService
	publisher webhook.WebhookPublisher
	clock     clockwork.Clock
	logger    *logrus.Logger
	metrics   *observability.Metrics
}

func NewImportService(
	pool *worker.Pool[models.ImportOutcome],
	feeds FeedOpener,
	parser FeedParser,
	incidents IncidentService,
	publisher webhook.WebhookPublisher,
	clock clockwork.Clock,
	logger *logrus.Logger,
	metrics *observability.Metrics,
) ImportService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &importService{
		pool:      pool,
		feeds:     feeds,
		parser:    parser,
		incidents: incidents,
		publisher: publisher,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// Submit ставит в очередь импорт выгрузки по URI (путь, file:// или s3://)
func (s *importService) Submit(source string) (string, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return "", &UserInputError{Field: "source", Message: "must not be empty"}
	}
	return s.submit(source, func(ctx context.Context) (io.ReadCloser, error) {
		return s.feeds.Open(ctx, source)
	})
}

// SubmitData ставит в очередь импорт уже загруженного файла
func (s *importService) SubmitData(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &UserInputError{Field: "file", Message: "must not be empty"}
	}
	return s.submit("upload:"+name, func(context.Context) (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	})
}

func (s *importService) submit(source string, open func(context.Context) (io.ReadCloser, error)) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "import",
		"method":  "Submit",
		"source":  source,
	})

	id, _, err := s.pool.Submit(func(ctx context.Context) (models.ImportOutcome, error) {
		return s.run(ctx, worker.JobID(ctx), source, open)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to enqueue import")
		return "", fmt.Errorf("failed to enqueue import: %w", err)
	}

	log.WithField("job_id", id).Info("Import queued")
	return id, nil
}

func (s *importService) run(ctx context.Context, jobID, source string, open func(context.Context) (io.ReadCloser, error)) (models.ImportOutcome, error) {
	started := s.clock.Now()
	outcome, err := s.importFeed(ctx, source, open)
	s.metrics.ImportDuration.Observe(s.clock.Since(started).Seconds())

	event := webhook.ImportEvent{
		JobID:     jobID,
		Source:    source,
		Status:    string(worker.StatusDone),
		Accepted:  outcome.Accepted,
		Rejected:  outcome.Rejected,
		Inserted:  outcome.Inserted,
		Timestamp: s.clock.Now(),
	}
	if err != nil {
		event.Status = string(worker.StatusFailed)
		event.Error = err.Error()
	}
	s.metrics.ImportJobs.WithLabelValues(event.Status).Inc()

	if pubErr := s.publisher.Publish(ctx, event); pubErr != nil {
		s.logger.WithError(pubErr).WithField("job_id", jobID).Error("Failed to publish import event")
	}
	return outcome, err
}

func (s *importService) importFeed(ctx context.Context, source string, open func(context.Context) (io.ReadCloser, error)) (models.ImportOutcome, error) {
	outcome := models.ImportOutcome{Source: source}

	rc, err := open(ctx)
	if err != nil {
		return outcome, fmt.Errorf("failed to open feed: %w", err)
	}
	defer rc.Close()

	result, err := s.parser.Import(ctx, rc)
	if err != nil {
		return outcome, fmt.Errorf("failed to import feed: %w", err)
	}
	outcome.Accepted = len(result.Accepted)
	outcome.Rejected = result.Rejected

	inserted, err := s.incidents.SaveBatch(ctx, result.Accepted)
	if err != nil {
		return outcome, fmt.Errorf("failed to save records: %w", err)
	}
	outcome.Inserted = inserted
	return outcome, nil
}

// Status возвращает состояние задачи импорта
func (s *importService) Status(id string) (models.ImportStatus, bool) {
	snap, ok := s.pool.Status(id)
	if !ok {
		return models.ImportStatus{}, false
	}
	status := models.ImportStatus{
		ID:          snap.ID,
		Status:      string(snap.Status),
		Outcome:     snap.Value,
		SubmittedAt: snap.SubmittedAt,
		FinishedAt:  snap.FinishedAt,
	}
	if snap.Err != nil {
		status.Error = snap.Err.Error()
	}
	return status, true
}
