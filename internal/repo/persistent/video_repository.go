package persistent

import (
	"math"
	"time"

	"reelhub/internal/entity"
	"reelhub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// searchVector mirrors the expression behind idx_videos_search; keep them in
// sync or the planner falls back to a sequential scan.
const searchVector = "to_tsvector('english', coalesce(title,'') || ' ' || coalesce(genre,'') || ' ' || coalesce(publisher,'') || ' ' || coalesce(producer,''))"

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	ListLatestReady(limit int) ([]*entity.Video, error)
	SearchReady(query string, limit int) ([]*entity.Video, error)
	ListByCreator(creatorID string) ([]*entity.Video, error)
	Update(video *entity.Video) error
	UpsertRating(videoID, userID string, stars int) (*entity.RatingSummary, error)
	Count() (int64, error)
	ListWithStats() ([]*entity.VideoAdminView, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}

	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}

	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Preload("Creator").Preload("Ratings").Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) ListLatestReady(limit int) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.
		Where("status = ?", string(entity.StatusReady)).
		Order("created_at DESC").
		Limit(limit).
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) SearchReady(query string, limit int) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Raw(
		"SELECT * FROM videos WHERE status = ? AND "+searchVector+" @@ plainto_tsquery('english', ?) "+
			"ORDER BY ts_rank("+searchVector+", plainto_tsquery('english', ?)) DESC LIMIT ?",
		string(entity.StatusReady), query, query, limit,
	).Scan(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) ListByCreator(creatorID string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}
	return toVideoEntities(videoModels), nil
}

func (r *videoRepository) Update(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if err := r.db.Save(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

// ratingConflictClause makes the insert replace an existing (video, user)
// row instead of appending a second rating by the same user.
func ratingConflictClause(stars int) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"stars": stars, "updated_at": time.Now()}),
	}
}

// ratingAverage rounds to one decimal; a video with no ratings averages 0.
func ratingAverage(sum, count int64) float64 {
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

// UpsertRating replaces the caller's rating row and recomputes the
// denormalized average in one transaction, so concurrent rate calls cannot
// lose each other's stars the way a full-document read-modify-write would.
func (r *videoRepository) UpsertRating(videoID, userID string, stars int) (*entity.RatingSummary, error) {
	summary := &entity.RatingSummary{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		rating := &model.RatingModel{
			VideoID: videoID,
			UserID:  userID,
			Stars:   stars,
		}

		if err := tx.Clauses(ratingConflictClause(stars)).Create(rating).Error; err != nil {
			return err
		}

		var agg struct {
			Sum   int64
			Count int64
		}
		if err := tx.Model(&model.RatingModel{}).
			Select("COALESCE(SUM(stars), 0) AS sum, COUNT(*) AS count").
			Where("video_id = ?", videoID).
			Scan(&agg).Error; err != nil {
			return err
		}

		average := ratingAverage(agg.Sum, agg.Count)

		if err := tx.Model(&model.VideoModel{}).
			Where("id = ?", videoID).
			Update("average_rating", average).Error; err != nil {
			return err
		}

		summary.AverageRating = average
		summary.Count = agg.Count
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

func (r *videoRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.VideoModel{}).Count(&count).Error
	return count, err
}

func (r *videoRepository) ListWithStats() ([]*entity.VideoAdminView, error) {
	var views []*entity.VideoAdminView
	err := r.db.Raw(
		`SELECT v.id, v.title, v.status, v.average_rating, v.created_at,
		        u.name AS creator_name, u.email AS creator_email,
		        COUNT(c.id) AS total_comments
		 FROM videos v
		 JOIN users u ON u.id = v.creator_id
		 LEFT JOIN comments c ON c.video_id = v.id
		 GROUP BY v.id, v.title, v.status, v.average_rating, v.created_at, u.name, u.email
		 ORDER BY v.created_at DESC`,
	).Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

func toVideoEntities(videoModels []model.VideoModel) []*entity.Video {
	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos
}
