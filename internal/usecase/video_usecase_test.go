package usecase

import (
	"strings"
	"testing"

	"reelhub/internal/entity"
	"reelhub/pkg/config"
	"reelhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newVideoUseCaseForTest(videoRepo *MockVideoRepository) VideoUseCase {
	return NewVideoUseCase(videoRepo, fakeBlobIssuer{}, nil, config.PosterDirectSigned, "", logger.New())
}

func TestRequestUpload_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("Create", mock.AnythingOfType("*entity.Video")).Return(nil)

	grant, err := uc.RequestUpload(UploadRequest{Title: "My Clip", Ext: "mp4"}, "creator-1")

	assert.NoError(t, err)
	assert.NotEmpty(t, grant.VideoID)
	assert.True(t, strings.HasSuffix(grant.ObjectName, ".mp4"))
	assert.Contains(t, grant.UploadURL, grant.ObjectName)

	created := videoRepo.Calls[0].Arguments.Get(0).(*entity.Video)
	assert.Equal(t, entity.StatusUploading, created.Status)
	assert.Equal(t, "creator-1", created.CreatorID)
	videoRepo.AssertExpectations(t)
}

func TestRequestUpload_TitleRequired(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	_, err := uc.RequestUpload(UploadRequest{Ext: "mp4"}, "creator-1")

	assert.ErrorIs(t, err, ErrInvalidInput)
	videoRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRequestUpload_DefaultsExtension(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("Create", mock.AnythingOfType("*entity.Video")).Return(nil)

	grant, err := uc.RequestUpload(UploadRequest{Title: "No Ext"}, "creator-1")

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(grant.ObjectName, ".mp4"))
}

func TestFinalize_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1", ObjectName: "abc.mp4", Status: entity.StatusUploading}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)
	videoRepo.On("Update", mock.AnythingOfType("*entity.Video")).Return(nil)

	video, err := uc.Finalize("video-1", "creator-1", string(entity.RoleCreator))

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusReady, video.Status)
	assert.Equal(t, "https://cdn.example.com/videos/abc.mp4", video.URL)
	videoRepo.AssertExpectations(t)
}

func TestFinalize_AdminCanFinalizeAnyVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1", ObjectName: "abc.mp4", Status: entity.StatusUploading}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)
	videoRepo.On("Update", mock.AnythingOfType("*entity.Video")).Return(nil)

	video, err := uc.Finalize("video-1", "admin-9", string(entity.RoleAdmin))

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusReady, video.Status)
}

func TestFinalize_ForbiddenForOtherUser(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1", Status: entity.StatusUploading}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)

	_, err := uc.Finalize("video-1", "stranger", string(entity.RoleCreator))

	assert.ErrorIs(t, err, ErrForbidden)
	videoRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestFinalize_NotFound(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Finalize("missing", "creator-1", string(entity.RoleCreator))

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLatest_DefaultsAndCapsLimit(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("ListLatestReady", 20).Return([]*entity.Video{}, nil).Once()
	videoRepo.On("ListLatestReady", 50).Return([]*entity.Video{}, nil).Once()
	videoRepo.On("ListLatestReady", 5).Return([]*entity.Video{}, nil).Once()

	_, err := uc.Latest(0)
	assert.NoError(t, err)
	_, err = uc.Latest(1000)
	assert.NoError(t, err)
	_, err = uc.Latest(5)
	assert.NoError(t, err)

	videoRepo.AssertExpectations(t)
}

func TestSearch_EmptyQueryReturnsEmpty(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videos, err := uc.Search("")

	assert.NoError(t, err)
	assert.Empty(t, videos)
	videoRepo.AssertNotCalled(t, "SearchReady", mock.Anything, mock.Anything)
}

func TestSearch_WhitespaceQueryReturnsEmpty(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videos, err := uc.Search("   ")

	assert.NoError(t, err)
	assert.Empty(t, videos)
	videoRepo.AssertNotCalled(t, "SearchReady", mock.Anything, mock.Anything)
}

func TestSearch_TrimsQuery(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("SearchReady", "gophers", 30).Return([]*entity.Video{}, nil)

	_, err := uc.Search("  gophers  ")

	assert.NoError(t, err)
	videoRepo.AssertExpectations(t)
}

func TestSearch_DelegatesWithCap(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	expected := []*entity.Video{{ID: "video-1", Title: "gophers"}}
	videoRepo.On("SearchReady", "gophers", 30).Return(expected, nil)

	videos, err := uc.Search("gophers")

	assert.NoError(t, err)
	assert.Equal(t, expected, videos)
	videoRepo.AssertExpectations(t)
}

func TestRate_InvalidStars(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	_, err := uc.Rate("video-1", "user-1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Rate("video-1", "user-1", 6)
	assert.ErrorIs(t, err, ErrInvalidInput)

	videoRepo.AssertNotCalled(t, "UpsertRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestRate_UnknownVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Rate("missing", "user-1", 4)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRate_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1", Status: entity.StatusReady}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)
	videoRepo.On("UpsertRating", "video-1", "user-1", 4).Return(&entity.RatingSummary{AverageRating: 4.5, Count: 2}, nil)

	summary, err := uc.Rate("video-1", "user-1", 4)

	assert.NoError(t, err)
	assert.Equal(t, 4.5, summary.AverageRating)
	assert.Equal(t, int64(2), summary.Count)
	videoRepo.AssertExpectations(t)
}

func TestUpdateMetadata_PartialUpdate(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1", Title: "Old", Genre: "Drama", AgeRating: "PG"}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)
	videoRepo.On("Update", mock.AnythingOfType("*entity.Video")).Return(nil)

	newTitle := "New Title"
	empty := ""
	video, err := uc.UpdateMetadata("video-1", "creator-1", string(entity.RoleCreator), &newTitle, &empty, nil)

	assert.NoError(t, err)
	assert.Equal(t, "New Title", video.Title)
	assert.Equal(t, "Drama", video.Genre)
	assert.Equal(t, "PG", video.AgeRating)
	videoRepo.AssertExpectations(t)
}

func TestUpdateMetadata_Forbidden(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1"}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)

	title := "Hijacked"
	_, err := uc.UpdateMetadata("video-1", "stranger", string(entity.RoleCreator), &title, nil, nil)

	assert.ErrorIs(t, err, ErrForbidden)
	videoRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestListByCreator_SelfAllowed(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	expected := []*entity.Video{{ID: "video-1", CreatorID: "creator-1"}}
	videoRepo.On("ListByCreator", "creator-1").Return(expected, nil)

	videos, err := uc.ListByCreator("creator-1", "creator-1", string(entity.RoleCreator))

	assert.NoError(t, err)
	assert.Equal(t, expected, videos)
}

func TestListByCreator_AdminAllowed(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	videoRepo.On("ListByCreator", "creator-1").Return([]*entity.Video{}, nil)

	_, err := uc.ListByCreator("creator-1", "admin-9", string(entity.RoleAdmin))

	assert.NoError(t, err)
}

func TestListByCreator_ForbiddenForOthers(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	_, err := uc.ListByCreator("creator-1", "stranger", string(entity.RoleConsumer))

	assert.ErrorIs(t, err, ErrForbidden)
	videoRepo.AssertNotCalled(t, "ListByCreator", mock.Anything)
}

func TestPosterUploadGrant_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1"}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)

	grant, err := uc.PosterUploadGrant("video-1", "creator-1", string(entity.RoleCreator), "png")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(grant.ObjectName, "video-1_"))
	assert.True(t, strings.HasSuffix(grant.ObjectName, ".png"))
	assert.Contains(t, grant.UploadURL, grant.ObjectName)
	assert.Contains(t, grant.PublicURL, grant.ObjectName)
}

func TestPosterUploadGrant_Forbidden(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1"}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)

	_, err := uc.PosterUploadGrant("video-1", "stranger", string(entity.RoleCreator), "png")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetPosterURL_Success(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	stored := &entity.Video{ID: "video-1", CreatorID: "creator-1"}
	videoRepo.On("GetByID", "video-1").Return(stored, nil)
	videoRepo.On("Update", mock.AnythingOfType("*entity.Video")).Return(nil)

	err := uc.SetPosterURL("video-1", "creator-1", string(entity.RoleCreator), "https://cdn.example.com/posters/p.png")

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/posters/p.png", stored.PosterURL)
}

func TestSetPosterURL_Required(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	err := uc.SetPosterURL("video-1", "creator-1", string(entity.RoleCreator), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
	videoRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestPosterUploadGrant_DisabledUnderServerStrategy(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := NewVideoUseCase(videoRepo, fakeBlobIssuer{}, nil, config.PosterServerRelayed, t.TempDir(), logger.New())

	_, err := uc.PosterUploadGrant("video-1", "creator-1", string(entity.RoleCreator), "png")

	assert.ErrorIs(t, err, ErrInvalidInput)
	videoRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestSetPosterURL_DisabledUnderServerStrategy(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := NewVideoUseCase(videoRepo, fakeBlobIssuer{}, nil, config.PosterServerRelayed, t.TempDir(), logger.New())

	err := uc.SetPosterURL("video-1", "creator-1", string(entity.RoleCreator), "https://cdn.example.com/posters/p.png")

	assert.ErrorIs(t, err, ErrInvalidInput)
	videoRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUploadPoster_DisabledUnderDirectStrategy(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := newVideoUseCaseForTest(videoRepo)

	_, err := uc.UploadPoster("video-1", "creator-1", string(entity.RoleCreator), nil)

	assert.ErrorIs(t, err, ErrInvalidInput)
	videoRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestUploadPoster_NilFileRejected(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	uc := NewVideoUseCase(videoRepo, fakeBlobIssuer{}, nil, config.PosterServerRelayed, t.TempDir(), logger.New())

	_, err := uc.UploadPoster("video-1", "creator-1", string(entity.RoleCreator), nil)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
