package services

import (
	"strings"
	"testing"

	"github.com/gainablefr/gainable-backend/internal/content"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeArticleRequest builds a payload that reaches the score of 100.
func completeArticleRequest(status string) *dto.SaveArticleRequest {
	blocks := []content.Block{
		{Type: content.BlockH2, Value: "Pourquoi choisir le gainable"},
		{Type: content.BlockText, Value: strings.Repeat("mot ", 800)},
		{Type: content.BlockH2, Value: "Le coût d'une installation"},
		{Type: content.BlockH2, Value: "L'entretien au quotidien"},
	}
	return &dto.SaveArticleRequest{
		Title:        "Installer une climatisation gainable",
		Introduction: "Tout savoir avant de se lancer.",
		Blocks:       blocks,
		FAQ: []content.FAQItem{
			{Question: "Quel budget ?", Response: "Sur devis."},
			{Question: "Quel délai ?", Response: "Deux semaines."},
		},
		MainImage: "/uploads/articles/gainable.jpg",
		AltText:   "Unité gainable installée en combles",
		Status:    status,
	}
}

func TestArticleCreateDraft(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e := createExpert(t, db, nil)

	req := &dto.SaveArticleRequest{
		Title:  "Mon premier article",
		Blocks: []content.Block{{Type: content.BlockText, Value: "Un début."}},
	}
	resp, err := svc.Create(e.ID, req)
	require.NoError(t, err)

	assert.Equal(t, models.ArticleStatusDraft, resp.Status)
	assert.Equal(t, "mon-premier-article", resp.Slug)
	assert.Nil(t, resp.PublishedAt)
	require.Len(t, resp.Blocks, 1)
	assert.NotEmpty(t, resp.Blocks[0].ID)
}

func TestArticlePublishGatedOnScore(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e := createExpert(t, db, nil)

	req := completeArticleRequest(models.ArticleStatusPublished)
	req.MainImage = ""
	_, err := svc.Create(e.ID, req)
	assert.ErrorIs(t, err, ErrIncompleteArticle)

	resp, err := svc.Create(e.ID, completeArticleRequest(models.ArticleStatusPublished))
	require.NoError(t, err)
	assert.Equal(t, models.ArticleStatusPublished, resp.Status)
	assert.Equal(t, 100, resp.Score.Total)
	require.NotNil(t, resp.PublishedAt)
}

func TestArticleUpdateKeepsSlugAndPublishedAt(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e := createExpert(t, db, nil)

	created, err := svc.Create(e.ID, completeArticleRequest(models.ArticleStatusPublished))
	require.NoError(t, err)

	req := completeArticleRequest(models.ArticleStatusPublished)
	req.Title = "Titre entièrement réécrit"
	updated, err := svc.Update(e.ID, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.Slug, updated.Slug)
	assert.Equal(t, "Titre entièrement réécrit", updated.Title)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, *created.PublishedAt, *updated.PublishedAt)
}

func TestArticleSlugUniquePerExpert(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e1 := createExpert(t, db, nil)
	e2 := createExpert(t, db, nil)

	req := &dto.SaveArticleRequest{Title: "Guide du gainable"}
	first, err := svc.Create(e1.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "guide-du-gainable", first.Slug)

	second, err := svc.Create(e1.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "guide-du-gainable-2", second.Slug)

	// A different expert can reuse the base slug.
	other, err := svc.Create(e2.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "guide-du-gainable", other.Slug)
}

func TestArticleGetNormalizesLegacySections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e := createExpert(t, db, nil)

	legacy := models.Article{
		ExpertID:    e.ID,
		Title:       "Article historique",
		Slug:        "article-historique",
		JSONContent: []byte(`{"sections":[{"title":"Section","content":"Contenu."}],"faq":[]}`),
	}
	require.NoError(t, db.Create(&legacy).Error)

	resp, err := svc.Get(e.ID, legacy.ID)
	require.NoError(t, err)
	require.Len(t, resp.Blocks, 2)
	assert.Equal(t, content.BlockH2, resp.Blocks[0].Type)
	assert.Equal(t, content.BlockText, resp.Blocks[1].Type)
}

func TestArticleOwnershipIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	owner := createExpert(t, db, nil)
	other := createExpert(t, db, nil)

	created, err := svc.Create(owner.ID, &dto.SaveArticleRequest{Title: "Privé"})
	require.NoError(t, err)

	_, err = svc.Get(other.ID, created.ID)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	err = svc.Delete(other.ID, created.ID)
	assert.ErrorIs(t, err, ErrArticleNotFound)

	require.NoError(t, svc.Delete(owner.ID, created.ID))
}

func TestArticleDeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e := createExpert(t, db, nil)

	err := svc.Delete(e.ID, uuid.New())
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestArticleTitleRequired(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e := createExpert(t, db, nil)

	_, err := svc.Create(e.ID, &dto.SaveArticleRequest{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create(e.ID, &dto.SaveArticleRequest{Title: "Ok", Status: "ARCHIVED"})
	assert.ErrorIs(t, err, ErrInvalidArtStatus)
}

func TestArticleListPublishedOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewArticleService(db)
	e := createExpert(t, db, nil)

	_, err := svc.Create(e.ID, &dto.SaveArticleRequest{Title: "Brouillon"})
	require.NoError(t, err)
	published, err := svc.Create(e.ID, completeArticleRequest(models.ArticleStatusPublished))
	require.NoError(t, err)

	list, err := svc.ListPublished(e.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, published.Slug, list[0].Slug)

	got, err := svc.GetPublished(e.ID, published.Slug)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)

	_, err = svc.GetPublished(e.ID, "brouillon")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
