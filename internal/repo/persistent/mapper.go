package persistent

import (
	"reelhub/internal/entity"
	"reelhub/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.UserRole(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	video := &entity.Video{
		ID:            m.ID,
		Title:         m.Title,
		Publisher:     m.Publisher,
		Producer:      m.Producer,
		Genre:         m.Genre,
		AgeRating:     m.AgeRating,
		CreatorID:     m.CreatorID,
		ObjectName:    m.ObjectName,
		URL:           m.URL,
		Status:        entity.VideoStatus(m.Status),
		AverageRating: m.AverageRating,
		PosterURL:     m.PosterURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.Creator != nil {
		creator := ToUserEntity(m.Creator)
		creator.Password = ""
		video.Creator = creator
	}

	if len(m.Ratings) > 0 {
		video.Ratings = make([]entity.Rating, len(m.Ratings))
		for i, r := range m.Ratings {
			video.Ratings[i] = entity.Rating{
				UserID:    r.UserID,
				Stars:     r.Stars,
				CreatedAt: r.CreatedAt,
				UpdatedAt: r.UpdatedAt,
			}
		}
	}

	return video
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:            e.ID,
		Title:         e.Title,
		Publisher:     e.Publisher,
		Producer:      e.Producer,
		Genre:         e.Genre,
		AgeRating:     e.AgeRating,
		CreatorID:     e.CreatorID,
		ObjectName:    e.ObjectName,
		URL:           e.URL,
		Status:        string(e.Status),
		AverageRating: e.AverageRating,
		PosterURL:     e.PosterURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:        m.ID,
		VideoID:   m.VideoID,
		UserID:    m.UserID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}

	if m.User != nil {
		comment.AuthorName = m.User.Name
	}

	return comment
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		VideoID:   e.VideoID,
		UserID:    e.UserID,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}
