package http

import (
	"net/http"
	"strconv"

	"reelhub/internal/usecase"
	"reelhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
	logger       *logger.Logger
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase, logger *logger.Logger) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
		logger:       logger,
	}
}

type UploadURLRequest struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Producer  string `json:"producer"`
	Genre     string `json:"genre"`
	AgeRating string `json:"age_rating"`
	Ext       string `json:"ext"`
}

// RequestUpload godoc
// @Summary      Request a video upload URL
// @Description  Creates the video in uploading status and returns a write-scoped, 20-minute upload URL.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UploadURLRequest true "Video metadata"
// @Success      200  {object}  usecase.UploadGrant
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /videos/upload-url [post]
func (h *VideoHandler) RequestUpload(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grant, err := h.videoUseCase.RequestUpload(usecase.UploadRequest{
		Title:     req.Title,
		Publisher: req.Publisher,
		Producer:  req.Producer,
		Genre:     req.Genre,
		AgeRating: req.AgeRating,
		Ext:       req.Ext,
	}, c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, grant)
}

type FinalizeRequest struct {
	VideoID string `json:"video_id" binding:"required"`
}

// Finalize godoc
// @Summary      Finalize an upload
// @Description  Marks the video ready and sets its public URL. Creator or admin only.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FinalizeRequest true "Video to finalize"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/finalize [post]
func (h *VideoHandler) Finalize(c *gin.Context) {
	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoUseCase.Finalize(req.VideoID, c.GetString("user_id"), c.GetString("user_role"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": video.ID, "url": video.URL, "status": video.Status})
}

// Latest godoc
// @Summary      Latest ready videos
// @Tags         videos
// @Produce      json
// @Param        limit query int false "Max results (capped at 50)"
// @Success      200  {array}  entity.Video
// @Router       /videos/latest [get]
func (h *VideoHandler) Latest(c *gin.Context) {
	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	videos, err := h.videoUseCase.Latest(limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Search godoc
// @Summary      Full-text search over ready videos
// @Tags         videos
// @Produce      json
// @Param        q query string false "Search query"
// @Success      200  {array}  entity.Video
// @Router       /videos/search [get]
func (h *VideoHandler) Search(c *gin.Context) {
	videos, err := h.videoUseCase.Search(c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Get godoc
// @Summary      Get a video with creator details
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videoUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

type RateRequest struct {
	Stars int `json:"stars"`
}

// Rate godoc
// @Summary      Rate a video
// @Description  Upserts the caller's rating (1-5 stars) and returns the new average.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body RateRequest true "Stars"
// @Success      200  {object}  entity.RatingSummary
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/rate [post]
func (h *VideoHandler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.videoUseCase.Rate(c.Param("id"), c.GetString("user_id"), req.Stars)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type UpdateMetadataRequest struct {
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	AgeRating string `json:"age_rating"`
}

// UpdateMetadata godoc
// @Summary      Update video metadata
// @Description  Partial update of title, genre and age rating. Creator or admin only.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body UpdateMetadataRequest true "Fields to update"
// @Success      200  {object}  entity.Video
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [put]
func (h *VideoHandler) UpdateMetadata(c *gin.Context) {
	var req UpdateMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var title, genre, ageRating *string
	if req.Title != "" {
		title = &req.Title
	}
	if req.Genre != "" {
		genre = &req.Genre
	}
	if req.AgeRating != "" {
		ageRating = &req.AgeRating
	}

	video, err := h.videoUseCase.UpdateMetadata(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), title, genre, ageRating)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// ListByCreator godoc
// @Summary      List a creator's videos
// @Description  Restricted to the creator themselves or an admin.
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        creatorId path string true "Creator ID"
// @Success      200  {array}  entity.Video
// @Failure      403  {object}  map[string]string
// @Router       /videos/creator/{creatorId} [get]
func (h *VideoHandler) ListByCreator(c *gin.Context) {
	videos, err := h.videoUseCase.ListByCreator(c.Param("creatorId"), c.GetString("user_id"), c.GetString("user_role"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

type PosterURLRequest struct {
	Ext string `json:"ext"`
}

// PosterUploadGrant godoc
// @Summary      Request a poster upload URL
// @Description  Direct-signed poster path: returns a write-scoped URL for the posters bucket.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body PosterURLRequest false "Poster extension"
// @Success      200  {object}  usecase.PosterGrant
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/poster-url [post]
func (h *VideoHandler) PosterUploadGrant(c *gin.Context) {
	var req PosterURLRequest
	_ = c.ShouldBindJSON(&req)

	grant, err := h.videoUseCase.PosterUploadGrant(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), req.Ext)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, grant)
}

type SetPosterURLRequest struct {
	PosterURL string `json:"poster_url"`
}

// SetPosterURL godoc
// @Summary      Confirm a poster upload
// @Description  Stores the public poster URL after a direct-signed upload.
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        request body SetPosterURLRequest true "Public poster URL"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/poster-url [put]
func (h *VideoHandler) SetPosterURL(c *gin.Context) {
	var req SetPosterURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.videoUseCase.SetPosterURL(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), req.PosterURL); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"poster_url": req.PosterURL})
}

// UploadPoster godoc
// @Summary      Upload a poster through the server
// @Description  Server-relayed poster path: multipart upload capped at 2MB, served from /static/posters.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Param        poster formData file true "Poster image"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /videos/{id}/poster [post]
func (h *VideoHandler) UploadPoster(c *gin.Context) {
	file, err := c.FormFile("poster")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	url, err := h.videoUseCase.UploadPoster(c.Param("id"), c.GetString("user_id"), c.GetString("user_role"), file)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
