// Package repository holds the gorm-backed implementations of the domain
// repository ports.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripwise/internal/domain/catalog"
	"tripwise/internal/shared/errors"
)

// LookupRepositoryImpl is the single gorm implementation behind every
// catalog entity. The entity records double as persistence models, so no
// mapper layer sits in between.
type LookupRepositoryImpl[T any, PT catalog.Record[T]] struct {
	database *gorm.DB
}

func NewLookupRepository[T any, PT catalog.Record[T]](database *gorm.DB) *LookupRepositoryImpl[T, PT] {
	return &LookupRepositoryImpl[T, PT]{database: database}
}

func (r *LookupRepositoryImpl[T, PT]) Create(ctx context.Context, record PT) error {
	record.Normalize()
	if err := r.database.WithContext(ctx).Create(record).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError(fmt.Sprintf("%s already exists", record.EntityName()))
		}
		return fmt.Errorf("failed to create %s: %w", record.EntityName(), err)
	}
	return nil
}

func (r *LookupRepositoryImpl[T, PT]) Update(ctx context.Context, record PT) (int64, error) {
	record.Normalize()
	result := r.database.WithContext(ctx).Model(record).Updates(record)
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return 0, errors.NewConflictError(fmt.Sprintf("%s already exists", record.EntityName()))
		}
		return 0, fmt.Errorf("failed to update %s: %w", record.EntityName(), result.Error)
	}
	return result.RowsAffected, nil
}

func (r *LookupRepositoryImpl[T, PT]) Delete(ctx context.Context, id uint) (int64, error) {
	var zero T
	result := r.database.WithContext(ctx).Delete(&zero, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", PT(&zero).EntityName(), result.Error)
	}
	return result.RowsAffected, nil
}

func (r *LookupRepositoryImpl[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	record := PT(new(T))
	if err := r.database.WithContext(ctx).First(record, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s by ID: %w", record.EntityName(), err)
	}
	return record, nil
}

func (r *LookupRepositoryImpl[T, PT]) List(ctx context.Context, filter catalog.ListFilter) ([]PT, int64, error) {
	sample := PT(new(T))

	base := r.database.WithContext(ctx).Model(new(T))
	if filter.Search != "" {
		base = base.Where(
			fmt.Sprintf("LOWER(%s) LIKE LOWER(?)", sample.SearchColumn()),
			sample.SearchTerm(filter.Search),
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s records: %w", sample.EntityName(), err)
	}

	var records []PT
	err := base.Session(&gorm.Session{}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: clause.PrimaryKey}, Desc: true}).
		Limit(filter.PageSize()).
		Offset(filter.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s records: %w", sample.EntityName(), err)
	}
	return records, total, nil
}

// HashtagRepositoryImpl layers the slug upsert over the generic operations.
type HashtagRepositoryImpl struct {
	*LookupRepositoryImpl[catalog.Hashtag, *catalog.Hashtag]
	database *gorm.DB
}

func NewHashtagRepository(database *gorm.DB) catalog.HashtagRepository {
	return &HashtagRepositoryImpl{
		LookupRepositoryImpl: NewLookupRepository[catalog.Hashtag, *catalog.Hashtag](database),
		database:             database,
	}
}

func (r *HashtagRepositoryImpl) CreateIfNotExists(ctx context.Context, record *catalog.Hashtag) (*catalog.Hashtag, error) {
	record.Normalize()

	result := r.database.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "slug"}}, DoNothing: true}).
		Create(record)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create hashtag: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return record, nil
	}

	var existing catalog.Hashtag
	if err := r.database.WithContext(ctx).Where("slug = ?", record.Slug).Take(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load existing hashtag: %w", err)
	}
	return &existing, nil
}
