package services

import (
	"testing"

	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	active := createExpert(t, db, nil)
	createExpert(t, db, func(e *models.Expert) { e.Status = models.ExpertStatusPending })

	results, err := svc.Search(SearchParams{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, active.ID, results[0].ID)
}

func TestSearchTypeAliases(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	createExpert(t, db, nil)
	diag := createExpert(t, db, func(e *models.Expert) { e.ExpertType = models.ExpertTypeDiag })

	// Legacy filter value resolves to the full tier name.
	results, err := svc.Search(SearchParams{Types: []string{"diagnostiqueur"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, diag.ID, results[0].ID)

	results, err = svc.Search(SearchParams{Types: []string{"cvc", "diag"}})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// Unknown values are ignored entirely.
	results, err = svc.Search(SearchParams{Types: []string{"plombier"}})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchCityFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	lyon := createExpert(t, db, func(e *models.Expert) { e.Ville = "Lyon" })
	createExpert(t, db, func(e *models.Expert) { e.Ville = "Marseille" })

	results, err := svc.Search(SearchParams{City: "lyon"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, lyon.ID, results[0].ID)
}

func TestSearchTagFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)
	gainable := createExpert(t, db, nil)
	createExpert(t, db, nil)
	require.NoError(t, db.Create(&models.ExpertTechnology{ExpertID: gainable.ID, Value: "gainable"}).Error)
	require.NoError(t, db.Create(&models.ExpertBatiment{ExpertID: gainable.ID, Value: "maison"}).Error)
	require.NoError(t, db.Create(&models.ExpertInterventionClim{ExpertID: gainable.ID, Value: "installation"}).Error)

	results, err := svc.Search(SearchParams{Technologies: []string{"gainable"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"gainable"}, results[0].Technologies)

	results, err = svc.Search(SearchParams{Batiments: []string{"maison"}})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.Search(SearchParams{Interventions: []string{"installation"}})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = svc.Search(SearchParams{Technologies: []string{"cassette"}})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchRadiusFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)

	// Paris expert with a 50 km radius, Lyon expert with 100 km.
	paris := createExpert(t, db, func(e *models.Expert) {
		e.Latitude, e.Longitude, e.InterventionRadius = 48.8566, 2.3522, 50
	})
	createExpert(t, db, func(e *models.Expert) {
		e.Ville = "Lyon"
		e.Latitude, e.Longitude, e.InterventionRadius = 45.764, 4.8357, 100
	})
	// No coordinates: excluded from any geo search.
	createExpert(t, db, func(e *models.Expert) { e.InterventionRadius = 10000 })

	lat, lng := 48.85, 2.35 // central Paris
	results, err := svc.Search(SearchParams{Lat: &lat, Lng: &lng})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, paris.ID, results[0].ID)
	require.NotNil(t, results[0].DistanceKm)
	assert.Less(t, *results[0].DistanceKm, 5.0)
}

func TestSearchLabeledFirstThenDistance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSearchService(db)

	near := createExpert(t, db, func(e *models.Expert) {
		e.Latitude, e.Longitude, e.InterventionRadius = 48.86, 2.35, 500
	})
	farLabeled := createExpert(t, db, func(e *models.Expert) {
		e.IsLabeled = true
		e.Latitude, e.Longitude, e.InterventionRadius = 48.5, 2.0, 500
	})

	lat, lng := 48.86, 2.35
	results, err := svc.Search(SearchParams{Lat: &lat, Lng: &lng})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, farLabeled.ID, results[0].ID)
	assert.Equal(t, near.ID, results[1].ID)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Paris to Lyon is roughly 392 km.
	d := haversineKm(48.8566, 2.3522, 45.764, 4.8357)
	assert.InDelta(t, 392, d, 5)
}
