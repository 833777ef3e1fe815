// Package seed holds the offline data scripts run through gainablectl.
package seed

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gainablefr/gainable-backend/internal/content"
	"github.com/gainablefr/gainable-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type diagnostician struct {
	Email         string
	NomEntreprise string
	Ville         string
	CodePostal    string
	Telephone     string
	Latitude      float64
	Longitude     float64
}

// diagnosticians is the launch list of DPE companies referenced with their
// agreement before self-service signup opened.
var diagnosticians = []diagnostician{
	{Email: "contact@diagimmo-paris.fr", NomEntreprise: "Diag Immo Paris", Ville: "Paris", CodePostal: "75011", Telephone: "0140000001", Latitude: 48.8566, Longitude: 2.3522},
	{Email: "contact@expertdpe-lyon.fr", NomEntreprise: "Expert DPE Lyon", Ville: "Lyon", CodePostal: "69003", Telephone: "0472000002", Latitude: 45.764, Longitude: 4.8357},
	{Email: "contact@sud-diagnostics.fr", NomEntreprise: "Sud Diagnostics", Ville: "Marseille", CodePostal: "13006", Telephone: "0491000003", Latitude: 43.2965, Longitude: 5.3698},
	{Email: "contact@atlantic-diag.fr", NomEntreprise: "Atlantic Diag", Ville: "Nantes", CodePostal: "44000", Telephone: "0240000004", Latitude: 47.2184, Longitude: -1.5536},
	{Email: "contact@diagnostic-habitat-33.fr", NomEntreprise: "Diagnostic Habitat 33", Ville: "Bordeaux", CodePostal: "33000", Telephone: "0556000005", Latitude: 44.8378, Longitude: -0.5792},
	{Email: "contact@nord-expertise-dpe.fr", NomEntreprise: "Nord Expertise DPE", Ville: "Lille", CodePostal: "59000", Telephone: "0320000006", Latitude: 50.6292, Longitude: 3.0573},
	{Email: "contact@alsace-diagnostics.fr", NomEntreprise: "Alsace Diagnostics", Ville: "Strasbourg", CodePostal: "67000", Telephone: "0388000007", Latitude: 48.5734, Longitude: 7.7521},
	{Email: "contact@occitanie-dpe.fr", NomEntreprise: "Occitanie DPE", Ville: "Toulouse", CodePostal: "31000", Telephone: "0561000008", Latitude: 43.6047, Longitude: 1.4442},
}

// Diagnosticians inserts the launch diagnosticians. The script is idempotent:
// rows are looked up by account email before insert, and a failing row does
// not stop the rest of the list.
func Diagnosticians(db *gorm.DB) error {
	created, skipped, failed := 0, 0, 0

	for _, d := range diagnosticians {
		var existing models.User
		err := db.Where("email = ?", d.Email).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("diagnostician lookup failed", "email", d.Email, "error", err)
			failed++
			continue
		}

		if err := insertDiagnostician(db, d); err != nil {
			slog.Error("diagnostician insert failed", "email", d.Email, "error", err)
			failed++
			continue
		}
		created++
	}

	slog.Info("diagnosticians seeded", "created", created, "skipped", skipped, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d diagnosticians failed to seed", failed, len(diagnosticians))
	}
	return nil
}

func insertDiagnostician(db *gorm.DB, d diagnostician) error {
	password, err := randomPassword()
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    d.Email,
			Password: string(hashed),
			Role:     "expert",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		expert := models.Expert{
			UserID:        user.ID,
			NomEntreprise: d.NomEntreprise,
			Ville:         d.Ville,
			CodePostal:    d.CodePostal,
			Pays:          "France",
			Telephone:     d.Telephone,
			EmailContact:  d.Email,
			ExpertType:    models.ExpertTypeDiag,
			Slug:          content.Slugify(d.NomEntreprise),
			Status:        models.ExpertStatusActive,
			Latitude:      d.Latitude,
			Longitude:     d.Longitude,
		}
		return tx.Create(&expert).Error
	})
}

// randomPassword generates a throwaway credential. Seeded accounts get a
// real password set by an operator before being handed over.
func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
