package main

import (
	"fmt"
	"os"
	"strings"

	"reelhub/internal/entity"
	"reelhub/internal/repo/persistent"
	"reelhub/pkg/config"
	"reelhub/pkg/database"
	"reelhub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Bootstraps the first ADMIN account. Role changes normally go through
// /admin/promote, which needs an existing admin.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		panic("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Administrator"
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)

	if existing, err := userRepo.GetByEmail(email); err == nil {
		if existing.Role != entity.RoleAdmin {
			if _, err := userRepo.UpdateRole(existing.ID, entity.RoleAdmin); err != nil {
				log.Error("Failed to promote existing user: %v", err)
				panic(err)
			}
			log.Info("Promoted existing user %s to ADMIN", email)
			return
		}
		log.Info("Admin %s already exists, nothing to do", email)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password: %v", err)
		panic(err)
	}

	admin := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     entity.RoleAdmin,
	}

	if err := userRepo.Create(admin); err != nil {
		log.Error("Failed to create admin: %v", err)
		panic(err)
	}

	log.Info("Created admin account %s (%s)", admin.Email, admin.ID)
}
