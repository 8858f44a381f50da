package usecase

import (
	"fmt"
	"strings"

	"reelhub/internal/entity"
	"reelhub/internal/repo/persistent"
	"reelhub/pkg/logger"
)

const commentsMaxSize = 100

type CommentUseCase interface {
	AddComment(videoID, userID, text string) (*entity.Comment, error)
	ListComments(videoID string) ([]*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) AddComment(videoID, userID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text required", ErrInvalidInput)
	}

	comment := &entity.Comment{
		VideoID: videoID,
		UserID:  userID,
		Text:    text,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment")
	}
	return comment, nil
}

func (uc *commentUseCase) ListComments(videoID string) ([]*entity.Comment, error) {
	return uc.commentRepo.ListByVideo(videoID, commentsMaxSize)
}
