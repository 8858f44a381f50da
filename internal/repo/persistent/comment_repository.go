package persistent

import (
	"reelhub/internal/entity"
	"reelhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	ListByVideo(videoID string, limit int) ([]*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}

	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}

	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) ListByVideo(videoID string, limit int) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.Preload("User").
		Where("video_id = ?", videoID).
		Order("created_at DESC").
		Limit(limit).
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}
