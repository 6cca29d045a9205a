package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/road_risk_advisor/internal/models"
	"github.com/shenikar/road_risk_advisor/internal/observability"
	"github.com/sirupsen/logrus"
)

// Result - итог разбора выгрузки
type Result struct {
	Accepted []models.IncidentRecord
	Rejected int
}

// RowError описывает строку выгрузки, не прошедшую разбор или проверку
type RowError struct {
	Line   int
	Reason string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Reason, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Importer разбирает CSV-выгрузку ДТП и отбрасывает некорректные строки, не прерывая импорт
type Importer struct {
	logger   *logrus.Logger
	validate *validator.Validate
	metrics  *observability.Metrics
}

func New(logger *logrus.Logger, metrics *observability.Metrics) *Importer {
	return &Importer{
		logger:   logger,
		validate: NewValidator(),
		metrics:  metrics,
	}
}

// Import читает выгрузку до конца. Ошибка возвращается только при сбое чтения
// самого источника или отмене контекста; плохие строки лишь считаются.
func (i *Importer) Import(ctx context.Context, src io.Reader) (Result, error) {
	log := i.logger.WithFields(logrus.Fields{
		"service": "importer",
		"method":  "Import",
	})

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := Result{Accepted: make([]models.IncidentRecord, 0)}
	headerSkipped := false

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return Result{}, fmt.Errorf("failed to read feed: %w", err)
			}
			if !headerSkipped {
				headerSkipped = true
				continue
			}
			i.reject(log, &result, &RowError{Line: parseErr.StartLine, Reason: "malformed csv", Err: err})
			continue
		}

		if !headerSkipped {
			headerSkipped = true
			continue
		}
		if len(fields) <= 1 {
			continue
		}
		line, _ := reader.FieldPos(0)

		record, err := parseRow(fields)
		if err != nil {
			i.reject(log, &result, &RowError{Line: line, Reason: "parse", Err: err})
			continue
		}
		if err := i.validate.Struct(record); err != nil {
			i.reject(log, &result, &RowError{Line: line, Reason: "validation", Err: err})
			continue
		}

		result.Accepted = append(result.Accepted, record)
		i.metrics.ImportRows.WithLabelValues("accepted").Inc()
	}

	log.WithFields(logrus.Fields{
		"correct_lines":   len(result.Accepted),
		"malformed_lines": result.Rejected,
	}).Info("Feed parsed")
	return result, nil
}

func (i *Importer) reject(log *logrus.Entry, result *Result, rowErr *RowError) {
	result.Rejected++
	i.metrics.ImportRows.WithLabelValues("rejected").Inc()
	log.WithError(rowErr).WithField("line", rowErr.Line).Warn("Row rejected")
}
