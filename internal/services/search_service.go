package services

import (
	"math"
	"sort"
	"strings"

	"github.com/gainablefr/gainable-backend/internal/database"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"gorm.io/gorm"
)

// SearchParams is the directory filter state, decoded from query params.
type SearchParams struct {
	Types         []string
	City          string
	Country       string
	Technologies  []string
	Interventions []string
	Batiments     []string
	Lat           *float64
	Lng           *float64
}

// typeAliases maps the short/legacy URL filter values to expert types.
var typeAliases = map[string]string{
	"cvc":               models.ExpertTypeCVC,
	"cvc_climatisation": models.ExpertTypeCVC,
	"bureau":            models.ExpertTypeEtude,
	"bureau_etude":      models.ExpertTypeEtude,
	"diag":              models.ExpertTypeDiag,
	"diagnostiqueur":    models.ExpertTypeDiag,
	"diagnostics_dpe":   models.ExpertTypeDiag,
}

type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Search translates the filter state into one query over active experts and
// returns summaries with coordinates for map plotting. When a geocoded point
// is provided, each expert's own intervention radius decides inclusion.
// Labeled experts sort first.
func (s *SearchService) Search(params SearchParams) ([]dto.ExpertSummary, error) {
	q := s.db.Model(&models.Expert{}).
		Scopes(database.ActiveExperts()).
		Preload("Technologies").
		Preload("Batiments")

	if types := resolveTypes(params.Types); len(types) > 0 {
		q = q.Where("expert_type IN ?", types)
	}
	if params.City != "" {
		q = q.Where("LOWER(ville) LIKE ?", "%"+strings.ToLower(params.City)+"%")
	}
	if params.Country != "" {
		q = q.Where("LOWER(pays) = ?", strings.ToLower(params.Country))
	}
	if len(params.Technologies) > 0 {
		q = q.Where("id IN (?)", s.db.Model(&models.ExpertTechnology{}).
			Select("expert_id").Where("value IN ?", params.Technologies))
	}
	if len(params.Interventions) > 0 {
		// An intervention tag can live in any of the three per-tier tables.
		clim := s.db.Model(&models.ExpertInterventionClim{}).
			Select("expert_id").Where("value IN ?", params.Interventions)
		etude := s.db.Model(&models.ExpertInterventionEtude{}).
			Select("expert_id").Where("value IN ?", params.Interventions)
		diag := s.db.Model(&models.ExpertInterventionDiag{}).
			Select("expert_id").Where("value IN ?", params.Interventions)
		q = q.Where("id IN (?) OR id IN (?) OR id IN (?)", clim, etude, diag)
	}
	if len(params.Batiments) > 0 {
		q = q.Where("id IN (?)", s.db.Model(&models.ExpertBatiment{}).
			Select("expert_id").Where("value IN ?", params.Batiments))
	}

	var experts []models.Expert
	if err := q.Find(&experts).Error; err != nil {
		return nil, err
	}

	results := make([]dto.ExpertSummary, 0, len(experts))
	for _, e := range experts {
		summary := dto.ExpertSummary{
			ID:                 e.ID,
			NomEntreprise:      e.NomEntreprise,
			Slug:               e.Slug,
			ExpertType:         e.ExpertType,
			Ville:              e.Ville,
			CodePostal:         e.CodePostal,
			Pays:               e.Pays,
			LogoURL:            e.LogoURL,
			IsLabeled:          e.IsLabeled,
			Latitude:           e.Latitude,
			Longitude:          e.Longitude,
			InterventionRadius: e.InterventionRadius,
			Technologies:       tagValues(e.Technologies),
			Batiments:          batimentValues(e.Batiments),
		}

		if params.Lat != nil && params.Lng != nil {
			if e.Latitude == 0 && e.Longitude == 0 {
				continue
			}
			d := haversineKm(*params.Lat, *params.Lng, e.Latitude, e.Longitude)
			if e.InterventionRadius > 0 && d > float64(e.InterventionRadius) {
				continue
			}
			summary.DistanceKm = &d
		}

		results = append(results, summary)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsLabeled != results[j].IsLabeled {
			return results[i].IsLabeled
		}
		if results[i].DistanceKm != nil && results[j].DistanceKm != nil {
			return *results[i].DistanceKm < *results[j].DistanceKm
		}
		return results[i].NomEntreprise < results[j].NomEntreprise
	})

	return results, nil
}

func resolveTypes(raw []string) []string {
	seen := map[string]bool{}
	var types []string
	for _, t := range raw {
		resolved, ok := typeAliases[strings.ToLower(strings.TrimSpace(t))]
		if !ok || seen[resolved] {
			continue
		}
		seen[resolved] = true
		types = append(types, resolved)
	}
	return types
}

func tagValues(tags []models.ExpertTechnology) []string {
	values := make([]string, 0, len(tags))
	for _, t := range tags {
		values = append(values, t.Value)
	}
	return values
}

func batimentValues(tags []models.ExpertBatiment) []string {
	values := make([]string, 0, len(tags))
	for _, t := range tags {
		values = append(values, t.Value)
	}
	return values
}

const earthRadiusKm = 6371.0

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
