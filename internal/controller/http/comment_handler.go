package http

import (
	"net/http"

	"reelhub/internal/usecase"
	"reelhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

// Add godoc
// @Summary      Add a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        videoId path string true "Video ID"
// @Param        request body AddCommentRequest true "Comment text"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Router       /comments/{videoId} [post]
func (h *CommentHandler) Add(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.AddComment(c.Param("videoId"), c.GetString("user_id"), req.Text)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// List godoc
// @Summary      List comments for a video
// @Description  Newest first, capped at 100. Authors appear as display name only.
// @Tags         comments
// @Produce      json
// @Param        videoId path string true "Video ID"
// @Success      200  {array}  entity.Comment
// @Router       /comments/{videoId} [get]
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentUseCase.ListComments(c.Param("videoId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
