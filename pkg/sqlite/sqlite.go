package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// NewSQLiteDB открывает файл базы SQLite, создавая каталоги при необходимости
func NewSQLiteDB(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("путь к базе sqlite не задан")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("не удалось создать каталог для sqlite: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть sqlite: %w", err)
	}
	// Один писатель: SQLite не допускает параллельных транзакций записи
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к sqlite: %w", err)
	}
	return db, nil
}
