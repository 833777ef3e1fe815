package services

import (
	"testing"

	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPublicBySlugActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExpertService(db, "https://gainable.fr")
	active := createExpert(t, db, nil)
	pending := createExpert(t, db, func(e *models.Expert) { e.Status = models.ExpertStatusPending })

	got, err := svc.GetPublicBySlug(active.Slug)
	require.NoError(t, err)
	assert.Equal(t, active.ID, got.ID)

	_, err = svc.GetPublicBySlug(pending.Slug)
	assert.ErrorIs(t, err, ErrExpertNotFound)
}

func TestUpdateProfileReplacesTagsWholesale(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExpertService(db, "https://gainable.fr")
	e := createExpert(t, db, nil)
	require.NoError(t, db.Create(&models.ExpertTechnology{ExpertID: e.ID, Value: "cassette"}).Error)
	require.NoError(t, db.Create(&models.ExpertMarque{ExpertID: e.ID, Value: "Daikin"}).Error)

	updated, err := svc.UpdateProfile(e.ID, &dto.UpdateProfileRequest{
		NomEntreprise: "Clim Express Rénovée",
		Ville:         "Villeurbanne",
		Technologies:  []string{"gainable", "console"},
		Marques:       []string{"Mitsubishi"},
		Photos:        []string{"/uploads/photos/a.jpg", "", "/uploads/photos/b.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Clim Express Rénovée", updated.NomEntreprise)
	assert.Equal(t, "Villeurbanne", updated.Ville)

	values := make([]string, 0, len(updated.Technologies))
	for _, tag := range updated.Technologies {
		values = append(values, tag.Value)
	}
	assert.ElementsMatch(t, []string{"gainable", "console"}, values)

	require.Len(t, updated.Marques, 1)
	assert.Equal(t, "Mitsubishi", updated.Marques[0].Value)

	// Empty photo URLs are dropped, positions follow the submitted order.
	require.Len(t, updated.Photos, 2)
	assert.Equal(t, "/uploads/photos/a.jpg", updated.Photos[0].URL)
	assert.Equal(t, 2, updated.Photos[1].Position)
}

func TestUpdateProfileKeepsSlug(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExpertService(db, "https://gainable.fr")
	e := createExpert(t, db, nil)

	updated, err := svc.UpdateProfile(e.ID, &dto.UpdateProfileRequest{
		NomEntreprise: "Nom Totalement Différent",
	})
	require.NoError(t, err)
	assert.Equal(t, e.Slug, updated.Slug)
}

func TestUpdateStatusAndLabel(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExpertService(db, "https://gainable.fr")
	e := createExpert(t, db, func(ex *models.Expert) { ex.Status = models.ExpertStatusPending })

	labeled := true
	updated, err := svc.UpdateStatus(e.ID, &dto.UpdateExpertStatusRequest{
		Status:    models.ExpertStatusActive,
		IsLabeled: &labeled,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExpertStatusActive, updated.Status)
	assert.True(t, updated.IsLabeled)

	_, err = svc.UpdateStatus(e.ID, &dto.UpdateExpertStatusRequest{Status: "suspended"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(uuid.New(), &dto.UpdateExpertStatusRequest{Status: models.ExpertStatusActive})
	assert.ErrorIs(t, err, ErrExpertNotFound)
}

func TestActivate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExpertService(db, "https://gainable.fr")
	e := createExpert(t, db, func(ex *models.Expert) { ex.Status = models.ExpertStatusPending })

	require.NoError(t, svc.Activate(e.ID))

	var reloaded models.Expert
	require.NoError(t, db.First(&reloaded, "id = ?", e.ID).Error)
	assert.Equal(t, models.ExpertStatusActive, reloaded.Status)

	assert.ErrorIs(t, svc.Activate(uuid.New()), ErrExpertNotFound)
}

func TestLocalBusinessJSONLD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewExpertService(db, "https://gainable.fr")
	e := createExpert(t, db, func(ex *models.Expert) {
		ex.Ville = "Lyon"
		ex.CodePostal = "69003"
		ex.Latitude, ex.Longitude = 45.764, 4.8357
	})

	data := svc.LocalBusinessJSONLD(e)
	assert.Equal(t, "https://schema.org", data["@context"])
	assert.Equal(t, "LocalBusiness", data["@type"])
	assert.Equal(t, e.NomEntreprise, data["name"])
}
