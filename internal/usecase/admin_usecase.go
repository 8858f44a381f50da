package usecase

import (
	"errors"
	"fmt"

	"reelhub/internal/entity"
	"reelhub/internal/repo/persistent"
	"reelhub/pkg/logger"

	"gorm.io/gorm"
)

type AdminUseCase interface {
	Promote(userID string, role string) (*entity.User, error)
	ListUsers() ([]*entity.User, error)
	ListVideosWithStats() ([]*entity.VideoAdminView, error)
	UserCount() (int64, error)
	VideoCount() (int64, error)
}

type adminUseCase struct {
	userRepo  persistent.UserRepository
	videoRepo persistent.VideoRepository
	logger    *logger.Logger
}

func NewAdminUseCase(userRepo persistent.UserRepository, videoRepo persistent.VideoRepository, logger *logger.Logger) AdminUseCase {
	return &adminUseCase{
		userRepo:  userRepo,
		videoRepo: videoRepo,
		logger:    logger,
	}
}

func (uc *adminUseCase) Promote(userID string, role string) (*entity.User, error) {
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role", ErrInvalidInput)
	}

	user, err := uc.userRepo.UpdateRole(userID, entity.UserRole(role))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		uc.logger.Error("Failed to update role for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update role")
	}

	user.Password = ""
	return user, nil
}

func (uc *adminUseCase) ListUsers() ([]*entity.User, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

func (uc *adminUseCase) ListVideosWithStats() ([]*entity.VideoAdminView, error) {
	return uc.videoRepo.ListWithStats()
}

func (uc *adminUseCase) UserCount() (int64, error) {
	return uc.userRepo.Count()
}

func (uc *adminUseCase) VideoCount() (int64, error) {
	return uc.videoRepo.Count()
}
