package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiretLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "12345678901234", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{
			"nom_complet": "CLIM EXPRESS (CLIM EXPRESS SARL)",
			"nom_raison_sociale": "CLIM EXPRESS SARL",
			"activite_principale": "43.22B",
			"siege": {
				"adresse": "12 RUE DE LA PAIX",
				"code_postal": "69003",
				"libelle_commune": "LYON",
				"activite_principale": "43.22B"
			}
		}]}`))
	}))
	defer server.Close()

	svc := NewSiretService(server.URL, 2*time.Second)
	result, err := svc.Lookup(context.Background(), "12345678901234")
	require.NoError(t, err)

	assert.Equal(t, "CLIM EXPRESS SARL", result.Nom)
	assert.Equal(t, "12 RUE DE LA PAIX", result.Adresse)
	assert.Equal(t, "69003", result.CodePostal)
	assert.Equal(t, "LYON", result.Ville)
	assert.Equal(t, "43.22B", result.Naf)
}

func TestSiretLookupBadFormat(t *testing.T) {
	svc := NewSiretService("http://unused.invalid", time.Second)

	_, err := svc.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, ErrSiretFormat)

	_, err = svc.Lookup(context.Background(), "1234567890123A")
	assert.ErrorIs(t, err, ErrSiretFormat)
}

func TestSiretLookupNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	svc := NewSiretService(server.URL, 2*time.Second)
	_, err := svc.Lookup(context.Background(), "12345678901234")
	assert.ErrorIs(t, err, ErrSiretNotFound)
}

func TestSiretLookupUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewSiretService(server.URL, 2*time.Second)
	_, err := svc.Lookup(context.Background(), "12345678901234")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSiretNotFound)
}

func TestGeocodeCityToPoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Lyon", r.URL.Query().Get("q"))
		assert.Equal(t, "municipality", r.URL.Query().Get("type"))
		assert.Equal(t, "69003", r.URL.Query().Get("postcode"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[{
			"geometry": {"coordinates": [4.8357, 45.764]},
			"properties": {"city": "Lyon", "label": "Lyon 69003"}
		}]}`))
	}))
	defer server.Close()

	svc := NewGeocodeService(server.URL, 2*time.Second)
	result, err := svc.CityToPoint(context.Background(), "Lyon", "69003")
	require.NoError(t, err)

	// GeoJSON coordinates are [lng, lat]; the DTO carries them the right way.
	assert.InDelta(t, 45.764, result.Lat, 0.001)
	assert.InDelta(t, 4.8357, result.Lng, 0.001)
	assert.Equal(t, "Lyon", result.City)
}

func TestGeocodeCityNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	svc := NewGeocodeService(server.URL, 2*time.Second)
	_, err := svc.CityToPoint(context.Background(), "Nullepart", "")
	assert.ErrorIs(t, err, ErrCityNotFound)

	_, err = svc.CityToPoint(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrCityNotFound)
}
