package repository

import (
	"context"

	"basepay/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, dest any, q db.Query) error
	Count(ctx context.Context, model any, q db.Query) (int64, error)
	UpdateOneBy(ctx context.Context, column string, value any, model any, updates map[string]any) error
	Pluck(ctx context.Context, model any, column string, q db.Query, dest any) error
}
