package usecase

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reelhub/internal/entity"
	"reelhub/internal/repo/persistent"
	"reelhub/pkg/config"
	"reelhub/pkg/logger"
	"reelhub/pkg/queue"
	"reelhub/pkg/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	uploadURLTTL  = 20 * time.Minute
	latestMaxSize = 50
	searchMaxSize = 30
	maxPosterSize = 2 << 20 // 2MB
)

// BlobIssuer is the slice of pkg/storage the video lifecycle needs; kept as
// an interface so tests can fake URL signing.
type BlobIssuer interface {
	IssueUploadURL(objectName string, ttl time.Duration) (string, error)
	IssuePosterUploadURL(objectName string, ttl time.Duration) (string, error)
	PublicURL(objectName string) string
	PosterPublicURL(objectName string) string
}

type UploadRequest struct {
	Title     string
	Publisher string
	Producer  string
	Genre     string
	AgeRating string
	Ext       string
}

// UploadGrant is handed to the client after requestUpload: the video row
// already exists in uploading status, the URL is write-scoped and short-lived.
type UploadGrant struct {
	VideoID    string `json:"video_id"`
	UploadURL  string `json:"upload_url"`
	ObjectName string `json:"object_name"`
}

type PosterGrant struct {
	UploadURL  string `json:"upload_url"`
	PublicURL  string `json:"public_url"`
	ObjectName string `json:"object_name"`
}

type VideoUseCase interface {
	RequestUpload(req UploadRequest, userID string) (*UploadGrant, error)
	Finalize(videoID, userID, role string) (*entity.Video, error)
	Latest(limit int) ([]*entity.Video, error)
	Search(query string) ([]*entity.Video, error)
	Get(id string) (*entity.Video, error)
	Rate(videoID, userID string, stars int) (*entity.RatingSummary, error)
	UpdateMetadata(videoID, userID, role string, title, genre, ageRating *string) (*entity.Video, error)
	ListByCreator(creatorID, userID, role string) ([]*entity.Video, error)
	PosterUploadGrant(videoID, userID, role, ext string) (*PosterGrant, error)
	SetPosterURL(videoID, userID, role, posterURL string) error
	UploadPoster(videoID, userID, role string, file *multipart.FileHeader) (string, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	blobs       BlobIssuer
	queueClient *queue.Client
	strategy    config.PosterStrategy
	posterDir   string
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	blobs BlobIssuer,
	queueClient *queue.Client,
	strategy config.PosterStrategy,
	posterDir string,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		blobs:       blobs,
		queueClient: queueClient,
		strategy:    strategy,
		posterDir:   posterDir,
		logger:      logger,
	}
}

// canManage is the single ownership predicate applied by every mutating
// operation on a video.
func canManage(userID, role string, video *entity.Video) bool {
	return role == string(entity.RoleAdmin) || video.CreatorID == userID
}

func (uc *videoUseCase) RequestUpload(req UploadRequest, userID string) (*UploadGrant, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	ext := req.Ext
	if ext == "" {
		ext = "mp4"
	}
	objectName := storage.NewObjectName(ext)

	uploadURL, err := uc.blobs.IssueUploadURL(objectName, uploadURLTTL)
	if err != nil {
		uc.logger.Error("Failed to issue upload URL: %v", err)
		return nil, fmt.Errorf("failed to issue upload URL")
	}

	video := &entity.Video{
		Title:      req.Title,
		Publisher:  req.Publisher,
		Producer:   req.Producer,
		Genre:      req.Genre,
		AgeRating:  req.AgeRating,
		CreatorID:  userID,
		ObjectName: objectName,
		Status:     entity.StatusUploading,
	}

	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, fmt.Errorf("failed to create video")
	}

	return &UploadGrant{
		VideoID:    video.ID,
		UploadURL:  uploadURL,
		ObjectName: objectName,
	}, nil
}

func (uc *videoUseCase) Finalize(videoID, userID, role string) (*entity.Video, error) {
	video, err := uc.getVideo(videoID)
	if err != nil {
		return nil, err
	}
	if !canManage(userID, role, video) {
		return nil, ErrForbidden
	}

	video.URL = uc.blobs.PublicURL(video.ObjectName)
	video.Status = entity.StatusReady

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to finalize video %s: %v", videoID, err)
		return nil, fmt.Errorf("failed to finalize video")
	}

	if uc.queueClient != nil {
		event := queue.VideoReadyEvent{VideoID: video.ID, CreatorID: video.CreatorID, URL: video.URL}
		go func() {
			if err := uc.queueClient.PublishVideoReady(event); err != nil {
				uc.logger.Error("Failed to publish video.ready for %s: %v", event.VideoID, err)
			}
		}()
	}

	return video, nil
}

func (uc *videoUseCase) Latest(limit int) ([]*entity.Video, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > latestMaxSize {
		limit = latestMaxSize
	}
	return uc.videoRepo.ListLatestReady(limit)
}

func (uc *videoUseCase) Search(query string) ([]*entity.Video, error) {
	// An empty query is an empty result, not "all videos".
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Video{}, nil
	}
	return uc.videoRepo.SearchReady(query, searchMaxSize)
}

func (uc *videoUseCase) Get(id string) (*entity.Video, error) {
	return uc.getVideo(id)
}

func (uc *videoUseCase) Rate(videoID, userID string, stars int) (*entity.RatingSummary, error) {
	if stars < 1 || stars > 5 {
		return nil, fmt.Errorf("%w: stars must be between 1 and 5", ErrInvalidInput)
	}

	if _, err := uc.getVideo(videoID); err != nil {
		return nil, err
	}

	summary, err := uc.videoRepo.UpsertRating(videoID, userID, stars)
	if err != nil {
		uc.logger.Error("Failed to upsert rating for video %s: %v", videoID, err)
		return nil, fmt.Errorf("failed to rate video")
	}
	return summary, nil
}

func (uc *videoUseCase) UpdateMetadata(videoID, userID, role string, title, genre, ageRating *string) (*entity.Video, error) {
	video, err := uc.getVideo(videoID)
	if err != nil {
		return nil, err
	}
	if !canManage(userID, role, video) {
		return nil, ErrForbidden
	}

	if title != nil && *title != "" {
		video.Title = *title
	}
	if genre != nil && *genre != "" {
		video.Genre = *genre
	}
	if ageRating != nil && *ageRating != "" {
		video.AgeRating = *ageRating
	}

	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to update video %s: %v", videoID, err)
		return nil, fmt.Errorf("failed to update video")
	}
	return video, nil
}

func (uc *videoUseCase) ListByCreator(creatorID, userID, role string) ([]*entity.Video, error) {
	if role != string(entity.RoleAdmin) && userID != creatorID {
		return nil, ErrForbidden
	}
	return uc.videoRepo.ListByCreator(creatorID)
}

func (uc *videoUseCase) PosterUploadGrant(videoID, userID, role, ext string) (*PosterGrant, error) {
	if uc.strategy != config.PosterDirectSigned {
		return nil, fmt.Errorf("%w: direct-signed poster uploads are disabled", ErrInvalidInput)
	}

	video, err := uc.getVideo(videoID)
	if err != nil {
		return nil, err
	}
	if !canManage(userID, role, video) {
		return nil, ErrForbidden
	}

	clean := storage.SanitizeExt(ext)
	if clean == "" {
		clean = "png"
	}
	objectName := fmt.Sprintf("%s_%s.%s", videoID, uuid.New().String(), clean)

	uploadURL, err := uc.blobs.IssuePosterUploadURL(objectName, uploadURLTTL)
	if err != nil {
		uc.logger.Error("Failed to issue poster upload URL: %v", err)
		return nil, fmt.Errorf("failed to issue poster upload URL")
	}

	return &PosterGrant{
		UploadURL:  uploadURL,
		PublicURL:  uc.blobs.PosterPublicURL(objectName),
		ObjectName: objectName,
	}, nil
}

func (uc *videoUseCase) SetPosterURL(videoID, userID, role, posterURL string) error {
	if uc.strategy != config.PosterDirectSigned {
		return fmt.Errorf("%w: direct-signed poster uploads are disabled", ErrInvalidInput)
	}
	if posterURL == "" {
		return fmt.Errorf("%w: poster_url is required", ErrInvalidInput)
	}

	video, err := uc.getVideo(videoID)
	if err != nil {
		return err
	}
	if !canManage(userID, role, video) {
		return ErrForbidden
	}

	video.PosterURL = posterURL
	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to set poster URL for video %s: %v", videoID, err)
		return fmt.Errorf("failed to set poster URL")
	}
	return nil
}

// UploadPoster is the server-relayed variant: the file is staged to disk,
// renamed into the static directory and served from there.
func (uc *videoUseCase) UploadPoster(videoID, userID, role string, file *multipart.FileHeader) (string, error) {
	if uc.strategy != config.PosterServerRelayed {
		return "", fmt.Errorf("%w: server-relayed poster uploads are disabled", ErrInvalidInput)
	}
	if file == nil {
		return "", fmt.Errorf("%w: no file uploaded", ErrInvalidInput)
	}
	if file.Size > maxPosterSize {
		return "", fmt.Errorf("%w: poster exceeds 2MB limit", ErrInvalidInput)
	}

	video, err := uc.getVideo(videoID)
	if err != nil {
		return "", err
	}
	if !canManage(userID, role, video) {
		return "", ErrForbidden
	}

	if err := os.MkdirAll(uc.posterDir, 0o755); err != nil {
		uc.logger.Error("Failed to create poster dir: %v", err)
		return "", fmt.Errorf("failed to store poster")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: unreadable file", ErrInvalidInput)
	}
	defer src.Close()

	staging, err := os.CreateTemp(uc.posterDir, "upload-*")
	if err != nil {
		uc.logger.Error("Failed to stage poster: %v", err)
		return "", fmt.Errorf("failed to store poster")
	}

	if _, err := io.Copy(staging, src); err != nil {
		staging.Close()
		os.Remove(staging.Name())
		uc.logger.Error("Failed to write poster: %v", err)
		return "", fmt.Errorf("failed to store poster")
	}
	staging.Close()

	fileName := fmt.Sprintf("%s_%d%s", videoID, time.Now().UnixMilli(), storage.SanitizeExt(filepath.Ext(file.Filename)))
	if err := os.Rename(staging.Name(), filepath.Join(uc.posterDir, fileName)); err != nil {
		os.Remove(staging.Name())
		uc.logger.Error("Failed to place poster: %v", err)
		return "", fmt.Errorf("failed to store poster")
	}

	video.PosterURL = "/static/posters/" + fileName
	if err := uc.videoRepo.Update(video); err != nil {
		uc.logger.Error("Failed to save poster URL for video %s: %v", videoID, err)
		return "", fmt.Errorf("failed to store poster")
	}

	return video.PosterURL, nil
}

func (uc *videoUseCase) getVideo(id string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return video, nil
}
