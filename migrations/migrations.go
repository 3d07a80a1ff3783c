// Package migrations хранит SQL схему сервиса и применяет её к базе.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SurfShopService/pkg/psqlbuilder"
)

//go:embed *.sql
var files embed.FS

const table = "schema_migrations"

var (
	// ErrRead возвращается, если не удалось прочитать встроенные файлы
	ErrRead = errors.New("migrations: failed to read migration files")

	// ErrApply возвращается при ошибке применения миграции
	ErrApply = errors.New("migrations: failed to apply migration")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// DB минимальный набор методов *sql.DB, нужный для миграций
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Versions возвращает имена встроенных миграций по порядку
func Versions() ([]string, error) {
	entries, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	sort.Strings(entries)
	return entries, nil
}

// Apply применяет ещё не применённые миграции, каждую в своей транзакции.
// Возвращает список применённых версий.
func Apply(ctx context.Context, db DB, logger Logger) ([]string, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
		version    TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return nil, fmt.Errorf("%w: create %s: %v", ErrApply, table, err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	versions, err := Versions()
	if err != nil {
		return nil, err
	}

	done := make([]string, 0)
	for _, version := range versions {
		if _, ok := applied[version]; ok {
			continue
		}

		body, err := files.ReadFile(version)
		if err != nil {
			return done, fmt.Errorf("%w: %s: %v", ErrRead, version, err)
		}

		if err := applyOne(ctx, db, version, string(body)); err != nil {
			return done, err
		}

		logger.Info("Migration applied: %s", version)
		done = append(done, version)
	}

	return done, nil
}

func appliedVersions(ctx context.Context, db DB) (map[string]struct{}, error) {
	query, args, err := psqlbuilder.Select("version").From(table).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %v", ErrApply, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: select versions: %v", ErrApply, err)
	}
	defer rows.Close()

	applied := make(map[string]struct{})
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: scan version: %v", ErrApply, err)
		}
		applied[strings.TrimSpace(v)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrApply, err)
	}

	return applied, nil
}

func applyOne(ctx context.Context, db DB, version, body string) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %v", ErrApply, version, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, body); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrApply, version, err)
	}

	query, args, err := psqlbuilder.Insert(table).Columns("version").Values(version).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s: build insert: %v", ErrApply, version, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %s: record version: %v", ErrApply, version, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %v", ErrApply, version, err)
	}
	return nil
}
