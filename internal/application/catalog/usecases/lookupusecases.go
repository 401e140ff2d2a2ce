// Package usecases holds the application services for the lookup domains.
// One generic CRUD service covers every entity; the city and hashtag flows
// add their extra rules on top.
package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/domain/catalog"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
	"tripwise/internal/shared/query"
)

type ListLookupCommand struct {
	Page   int
	Limit  int
	Search string
}

type ListLookupResult[T any, PT catalog.Record[T]] struct {
	Items []PT
	Total int64
	Page  int
	Limit int
}

type LookupUseCases[T any, PT catalog.Record[T]] struct {
	repo   catalog.Repository[T, PT]
	logger logger.Interface
}

func NewLookupUseCases[T any, PT catalog.Record[T]](repo catalog.Repository[T, PT], logger logger.Interface) *LookupUseCases[T, PT] {
	return &LookupUseCases[T, PT]{
		repo:   repo,
		logger: logger,
	}
}

func (uc *LookupUseCases[T, PT]) Create(ctx context.Context, record PT) (PT, error) {
	uc.logger.Infow("creating lookup record", "entity", record.EntityName())

	if err := uc.repo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to create lookup record", "entity", record.EntityName(), "error", err)
		return nil, err
	}
	return record, nil
}

func (uc *LookupUseCases[T, PT]) Get(ctx context.Context, id uint) (PT, error) {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		sample := PT(new(T))
		return nil, errors.NewNotFoundError(fmt.Sprintf("%s with ID %d not found", sample.EntityName(), id))
	}
	return record, nil
}

func (uc *LookupUseCases[T, PT]) Update(ctx context.Context, record PT) (PT, error) {
	uc.logger.Infow("updating lookup record", "entity", record.EntityName(), "id", record.GetID())

	if record.GetID() == 0 {
		return nil, errors.NewValidationError("ID is required")
	}

	affected, err := uc.repo.Update(ctx, record)
	if err != nil {
		uc.logger.Errorw("failed to update lookup record", "entity", record.EntityName(), "error", err)
		return nil, err
	}
	if affected == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("%s with ID %d not found", record.EntityName(), record.GetID()))
	}
	return uc.repo.GetByID(ctx, record.GetID())
}

func (uc *LookupUseCases[T, PT]) Delete(ctx context.Context, id uint) error {
	sample := PT(new(T))
	uc.logger.Infow("deleting lookup record", "entity", sample.EntityName(), "id", id)

	affected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to delete lookup record", "entity", sample.EntityName(), "error", err)
		return err
	}
	if affected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("%s with ID %d not found", sample.EntityName(), id))
	}
	return nil
}

func (uc *LookupUseCases[T, PT]) List(ctx context.Context, cmd ListLookupCommand) (*ListLookupResult[T, PT], error) {
	filter := catalog.ListFilter{
		PageFilter: query.PageFilter{Page: cmd.Page, Limit: cmd.Limit},
		Search:     cmd.Search,
	}

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		sample := PT(new(T))
		uc.logger.Errorw("failed to list lookup records", "entity", sample.EntityName(), "error", err)
		return nil, err
	}

	return &ListLookupResult[T, PT]{
		Items: items,
		Total: total,
		Page:  filter.NormalizedPage(),
		Limit: filter.PageSize(),
	}, nil
}
