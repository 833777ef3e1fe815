package seed

import (
	"fmt"
	"testing"

	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
	if err := db.AutoMigrate(&models.User{}, &models.Expert{}, &models.Article{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDiagnosticiansIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Diagnosticians(db))

	var firstRun int64
	require.NoError(t, db.Model(&models.Expert{}).Count(&firstRun).Error)
	assert.EqualValues(t, len(diagnosticians), firstRun)

	// Running again must not duplicate anything.
	require.NoError(t, Diagnosticians(db))

	var secondRun int64
	require.NoError(t, db.Model(&models.Expert{}).Count(&secondRun).Error)
	assert.Equal(t, firstRun, secondRun)
}

func TestDiagnosticiansAreActiveAndTyped(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Diagnosticians(db))

	var experts []models.Expert
	require.NoError(t, db.Find(&experts).Error)
	for _, e := range experts {
		assert.Equal(t, models.ExpertTypeDiag, e.ExpertType)
		assert.Equal(t, models.ExpertStatusActive, e.Status)
		assert.NotEmpty(t, e.Slug)
		assert.NotZero(t, e.Latitude)
	}
}

func TestGenerateArticlesIdempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Diagnosticians(db))

	var expert models.Expert
	require.NoError(t, db.Order("created_at ASC").First(&expert).Error)

	require.NoError(t, GenerateArticles(db, expert.Slug))

	var firstRun int64
	require.NoError(t, db.Model(&models.Article{}).Count(&firstRun).Error)
	assert.EqualValues(t, len(articleTemplates), firstRun)

	require.NoError(t, GenerateArticles(db, expert.Slug))

	var secondRun int64
	require.NoError(t, db.Model(&models.Article{}).Count(&secondRun).Error)
	assert.Equal(t, firstRun, secondRun)
}

func TestGenerateArticlesProducesDrafts(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Diagnosticians(db))

	// Empty slug targets the first referenced expert.
	require.NoError(t, GenerateArticles(db, ""))

	var articles []models.Article
	require.NoError(t, db.Find(&articles).Error)
	require.NotEmpty(t, articles)
	for _, a := range articles {
		assert.Equal(t, models.ArticleStatusDraft, a.Status)
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.Content)
		assert.NotEmpty(t, a.JSONContent)
	}
}

func TestGenerateArticlesUnknownSlug(t *testing.T) {
	db := setupTestDB(t)
	assert.Error(t, GenerateArticles(db, "aucun-expert"))
}
