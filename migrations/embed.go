package migrations

import "embed"

// FS содержит SQL-миграции для обоих драйверов хранилища: каталоги postgres и sqlite
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
