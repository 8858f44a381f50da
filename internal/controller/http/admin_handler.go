package http

import (
	"net/http"

	"reelhub/internal/usecase"
	"reelhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

type PromoteRequest struct {
	Role string `json:"role"`
}

// Promote godoc
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID"
// @Param        request body PromoteRequest true "New role (CONSUMER, CREATOR or ADMIN)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/promote/{userId} [post]
func (h *AdminHandler) Promote(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.adminUseCase.Promote(c.Param("userId"), req.Role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "email": user.Email, "role": string(user.Role)})
}

// ListUsers godoc
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.User
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUseCase.ListUsers()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListVideos godoc
// @Summary      List all videos with creator and comment stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.VideoAdminView
// @Router       /admin/videos [get]
func (h *AdminHandler) ListVideos(c *gin.Context) {
	videos, err := h.adminUseCase.ListVideosWithStats()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, videos)
}

// UserCount godoc
// @Summary      Total user count
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /admin/users/count [get]
func (h *AdminHandler) UserCount(c *gin.Context) {
	count, err := h.adminUseCase.UserCount()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// VideoCount godoc
// @Summary      Total video count
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /admin/videos/count [get]
func (h *AdminHandler) VideoCount(c *gin.Context) {
	count, err := h.adminUseCase.VideoCount()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
