package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/road_risk_advisor/internal/models"
)

// PostgresStore - хранилище записей о ДТП в PostgreSQL
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// InsertBatch вставляет записи одной транзакцией, дубликаты по row_key пропускаются
func (r *PostgresStore) InsertBatch(ctx context.Context, records []models.IncidentRecord) (inserted int, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin insert transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	query := fmt.Sprintf(
		"INSERT INTO incidents (%s) VALUES (%s) ON CONFLICT (row_key) DO NOTHING",
		insertColumns(), insertPlaceholders(len(recordColumns)+1, true),
	)
	for i := range records {
		values := recordValues(&records[i])
		cmdTag, err := tx.Exec(ctx, query, append(values, rowKey(values))...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert incident: %w", err)
		}
		inserted += int(cmdTag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit insert transaction: %w", err)
	}

	if _, err := r.db.Exec(ctx, createSpatialIndex); err != nil {
		return inserted, fmt.Errorf("failed to create spatial index: %w", err)
	}
	return inserted, nil
}

// RadiusSearch - аргумент acos ограничен [-1, 1], как и в models.GreatCircleKm
func (r *PostgresStore) RadiusSearch(ctx context.Context, lat, lng, radiusKm float64) ([]models.IncidentRecord, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM incidents
		WHERE 6371 * acos(LEAST(1, GREATEST(-1,
			cos(radians($1::float8)) * cos(radians(lat)) * cos(radians(lng) - radians($2::float8))
			+ sin(radians($1::float8)) * sin(radians(lat))
		))) <= $3::float8;
	`
	return r.query(ctx, query, lat, lng, radiusKm)
}

func (r *PostgresStore) BoundingBoxSearch(ctx context.Context, bottomLeft, topRight models.Position) ([]models.IncidentRecord, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM incidents
		WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4;
	`
	return r.query(ctx, query, bottomLeft.Lat, topRight.Lat, bottomLeft.Lng, topRight.Lng)
}

func (r *PostgresStore) Page(ctx context.Context, page, pageSize int) ([]models.IncidentRecord, error) {
	offset, ok := pageOffset(page, pageSize)
	if !ok {
		return []models.IncidentRecord{}, nil
	}
	query := `
		SELECT ` + selectColumns + `
		FROM incidents
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`
	return r.query(ctx, query, pageSize, offset)
}

func (r *PostgresStore) All(ctx context.Context) ([]models.IncidentRecord, error) {
	return r.query(ctx, "SELECT "+selectColumns+" FROM incidents ORDER BY id;")
}

func (r *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM incidents;").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

func (r *PostgresStore) DeleteOne(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM incidents WHERE id = $1;", id); err != nil {
		return fmt.Errorf("failed to delete incident %d: %w", id, err)
	}
	return nil
}

func (r *PostgresStore) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM incidents;"); err != nil {
		return fmt.Errorf("failed to delete incidents: %w", err)
	}
	return nil
}

func (r *PostgresStore) query(ctx context.Context, query string, args ...any) ([]models.IncidentRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}
	defer rows.Close()

	records := make([]models.IncidentRecord, 0)
	for rows.Next() {
		var rec models.IncidentRecord
		if err := rows.Scan(recordDest(&rec)...); err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
