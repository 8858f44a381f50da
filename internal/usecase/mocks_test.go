package usecase

import (
	"time"

	"reelhub/internal/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	if user.ID == "" {
		user.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(id string, role entity.UserRole) (*entity.User, error) {
	args := m.Called(id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(video *entity.Video) error {
	args := m.Called(video)
	if video.ID == "" {
		video.ID = "generated-video-id"
	}
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(id string) (*entity.Video, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) ListLatestReady(limit int) ([]*entity.Video, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) SearchReady(query string, limit int) ([]*entity.Video, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) ListByCreator(creatorID string) ([]*entity.Video, error) {
	args := m.Called(creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(video *entity.Video) error {
	args := m.Called(video)
	return args.Error(0)
}

func (m *MockVideoRepository) UpsertRating(videoID, userID string, stars int) (*entity.RatingSummary, error) {
	args := m.Called(videoID, userID, stars)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RatingSummary), args.Error(1)
}

func (m *MockVideoRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) ListWithStats() ([]*entity.VideoAdminView, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VideoAdminView), args.Error(1)
}

// MockCommentRepository is a mock implementation of persistent.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *entity.Comment) error {
	args := m.Called(comment)
	if comment.ID == "" {
		comment.ID = "generated-comment-id"
	}
	return args.Error(0)
}

func (m *MockCommentRepository) ListByVideo(videoID string, limit int) ([]*entity.Comment, error) {
	args := m.Called(videoID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

// fakeBlobIssuer signs nothing; it just echoes deterministic URLs.
type fakeBlobIssuer struct{}

func (fakeBlobIssuer) IssueUploadURL(objectName string, ttl time.Duration) (string, error) {
	return "https://signed.example.com/videos/" + objectName, nil
}

func (fakeBlobIssuer) IssuePosterUploadURL(objectName string, ttl time.Duration) (string, error) {
	return "https://signed.example.com/posters/" + objectName, nil
}

func (fakeBlobIssuer) PublicURL(objectName string) string {
	return "https://cdn.example.com/videos/" + objectName
}

func (fakeBlobIssuer) PosterPublicURL(objectName string) string {
	return "https://cdn.example.com/posters/" + objectName
}
