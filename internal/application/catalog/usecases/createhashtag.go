package usecases

import (
	"context"

	"tripwise/internal/domain/catalog"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type CreateHashtagCommand struct {
	Name string
	Slug string
}

// CreateHashtagUseCase upserts on the slug: posting an existing tag returns
// the stored row instead of a conflict.
type CreateHashtagUseCase struct {
	hashtagRepo catalog.HashtagRepository
	logger      logger.Interface
}

func NewCreateHashtagUseCase(hashtagRepo catalog.HashtagRepository, logger logger.Interface) *CreateHashtagUseCase {
	return &CreateHashtagUseCase{
		hashtagRepo: hashtagRepo,
		logger:      logger,
	}
}

func (uc *CreateHashtagUseCase) Execute(ctx context.Context, cmd CreateHashtagCommand) (*catalog.Hashtag, error) {
	uc.logger.Infow("executing create hashtag use case", "name", cmd.Name)

	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}

	hashtag, err := uc.hashtagRepo.CreateIfNotExists(ctx, &catalog.Hashtag{Name: cmd.Name, Slug: cmd.Slug})
	if err != nil {
		uc.logger.Errorw("failed to create hashtag", "error", err)
		return nil, err
	}

	uc.logger.Infow("hashtag resolved", "hashtag_id", hashtag.ID, "slug", hashtag.Slug)
	return hashtag, nil
}
