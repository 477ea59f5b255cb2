// Package migrations хранит схему базы: goose-миграции, встроенные в бинарник.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// KnownTables таблицы схемы в порядке удаления (сначала зависимые).
var KnownTables = []string{"employees", "users"}
