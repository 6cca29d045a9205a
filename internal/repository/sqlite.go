package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/shenikar/road_risk_advisor/internal/models"
	sqlitedriver "modernc.org/sqlite"
)

func init() {
	// great_circle_km(lat1, lng1, lat2, lng2) - расстояние в км по сферической теореме косинусов
	sqlitedriver.MustRegisterDeterministicScalarFunction("great_circle_km", 4, greatCircleKm)
}

func greatCircleKm(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	coords := make([]float64, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case float64:
			coords[i] = v
		case int64:
			coords[i] = float64(v)
		default:
			return nil, fmt.Errorf("great_circle_km: argument %d has unsupported type %T", i, arg)
		}
	}
	return models.GreatCircleKm(coords[0], coords[1], coords[2], coords[3]), nil
}

// SQLiteStore - хранилище записей о ДТП во встроенной SQLite
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// InsertBatch вставляет записи одной транзакцией, дубликаты по row_key пропускаются.
// Возвращает число реально добавленных строк.
func (s *SQLiteStore) InsertBatch(ctx context.Context, records []models.IncidentRecord) (inserted int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin insert transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := fmt.Sprintf(
		"INSERT INTO incidents (%s) VALUES (%s) ON CONFLICT(row_key) DO NOTHING",
		insertColumns(), insertPlaceholders(len(recordColumns)+1, false),
	)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		values := recordValues(&records[i])
		res, err := stmt.ExecContext(ctx, append(values, rowKey(values))...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert incident: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}
		inserted += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert transaction: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, createSpatialIndex); err != nil {
		return inserted, fmt.Errorf("failed to create spatial index: %w", err)
	}
	return inserted, nil
}

func (s *SQLiteStore) RadiusSearch(ctx context.Context, lat, lng, radiusKm float64) ([]models.IncidentRecord, error) {
	query := "SELECT " + selectColumns + " FROM incidents WHERE great_circle_km(?, ?, lat, lng) <= ?"
	return s.query(ctx, query, lat, lng, radiusKm)
}

func (s *SQLiteStore) BoundingBoxSearch(ctx context.Context, bottomLeft, topRight models.Position) ([]models.IncidentRecord, error) {
	query := "SELECT " + selectColumns + " FROM incidents WHERE lat BETWEEN ? AND ? AND lng BETWEEN ? AND ?"
	return s.query(ctx, query, bottomLeft.Lat, topRight.Lat, bottomLeft.Lng, topRight.Lng)
}

func (s *SQLiteStore) Page(ctx context.Context, page, pageSize int) ([]models.IncidentRecord, error) {
	offset, ok := pageOffset(page, pageSize)
	if !ok {
		return []models.IncidentRecord{}, nil
	}
	query := "SELECT " + selectColumns + " FROM incidents ORDER BY id LIMIT ? OFFSET ?"
	return s.query(ctx, query, pageSize, offset)
}

func (s *SQLiteStore) All(ctx context.Context) ([]models.IncidentRecord, error) {
	return s.query(ctx, "SELECT "+selectColumns+" FROM incidents ORDER BY id")
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM incidents").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

func (s *SQLiteStore) DeleteOne(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM incidents WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete incident %d: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM incidents"); err != nil {
		return fmt.Errorf("failed to delete incidents: %w", err)
	}
	return nil
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...any) ([]models.IncidentRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}
	defer rows.Close()

	records := make([]models.IncidentRecord, 0)
	for rows.Next() {
		var r models.IncidentRecord
		if err := rows.Scan(recordDest(&r)...); err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
