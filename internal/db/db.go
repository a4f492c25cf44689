package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Query narrows Find/Count/Pluck calls. Conds entries combine with AND;
// a slice value turns into an IN clause.
type Query struct {
	Conds   map[string]any
	OrderBy string
	Limit   int
	Offset  int
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("records type must be a pointer: %T", records)
	}

	if v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) Find(ctx context.Context, dest any, q Query) error {
	tx := f.applyQuery(ctx, q)
	if q.OrderBy != "" {
		tx = tx.Order(q.OrderBy)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

func (f *PostgresDB) Count(ctx context.Context, model any, q Query) (int64, error) {
	var count int64
	tx := f.applyQuery(ctx, q).Model(model)
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// UpdateOneBy merges the given column updates into the single row matched by
// column = value. Returns ErrNotFound when no row matched.
func (f *PostgresDB) UpdateOneBy(ctx context.Context, column string, value any, model any, updates map[string]any) error {
	query := fmt.Sprintf("%s = ?", column)
	tx := f.DB.WithContext(ctx).Model(model).Where(query, value).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("updating record by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *PostgresDB) Pluck(ctx context.Context, model any, column string, q Query, dest any) error {
	tx := f.applyQuery(ctx, q).Model(model)
	if err := tx.Pluck(column, dest).Error; err != nil {
		return fmt.Errorf("plucking %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) applyQuery(ctx context.Context, q Query) *gorm.DB {
	tx := f.DB.WithContext(ctx)
	for column, value := range q.Conds {
		if reflect.ValueOf(value).Kind() == reflect.Slice {
			tx = tx.Where(fmt.Sprintf("%s IN ?", column), value)
			continue
		}
		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return tx
}
