package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/gainablefr/gainable-backend/internal/config"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Expert{},
		&models.ExpertTechnology{},
		&models.ExpertInterventionClim{},
		&models.ExpertInterventionEtude{},
		&models.ExpertInterventionDiag{},
		&models.ExpertBatiment{},
		&models.ExpertMarque{},
		&models.ExpertCertification{},
		&models.ExpertPhoto{},
		&models.Article{},
		&models.Lead{},
		&models.LeadRecipient{},
		&models.SystemLog{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

// createExpert inserts a user + expert pair directly, bypassing Register.
func createExpert(t *testing.T, db *gorm.DB, mutate func(*models.Expert)) *models.Expert {
	t.Helper()
	user := models.User{
		Email:    fmt.Sprintf("%s@test.fr", uuid.NewString()[:8]),
		Password: "hash",
		Role:     "expert",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	expert := models.Expert{
		UserID:        user.ID,
		NomEntreprise: "Clim Express",
		Slug:          "clim-express-" + uuid.NewString()[:8],
		ExpertType:    models.ExpertTypeCVC,
		Status:        models.ExpertStatusActive,
		Ville:         "Paris",
		Pays:          "France",
	}
	if mutate != nil {
		mutate(&expert)
	}
	if err := db.Create(&expert).Error; err != nil {
		t.Fatalf("seed expert: %v", err)
	}
	return &expert
}
