package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gainablefr/gainable-backend/internal/content"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type articleTemplate struct {
	Title        string
	Introduction string
	Sections     []string
}

// articleTemplates are the starter DRAFT articles offered to a freshly
// referenced expert so the profile page is not empty.
var articleTemplates = []articleTemplate{
	{
		Title:        "Pourquoi installer une climatisation gainable ?",
		Introduction: "La climatisation gainable est la solution la plus discrète pour chauffer et rafraîchir toute la maison.",
		Sections: []string{
			"Un confort invisible",
			"Le gainable diffuse l'air par des grilles discrètes reliées à un réseau de gaines dissimulé dans les combles ou un faux plafond. Aucune unité murale n'est visible dans les pièces de vie.",
			"Un seul système pour toute la maison",
			"Une unité intérieure unique alimente l'ensemble des pièces, avec une régulation pièce par pièce lorsque l'installation est zonée.",
		},
	},
	{
		Title:        "Quel est le prix d'une climatisation gainable ?",
		Introduction: "Le budget d'une installation gainable dépend de la surface, du zonage et de la configuration des combles.",
		Sections: []string{
			"Les postes de coût",
			"L'unité extérieure, l'unité gainable, le réseau de gaines, les grilles de diffusion et la main d'œuvre composent l'essentiel du devis.",
			"Les aides disponibles",
			"En remplacement d'un chauffage ancien, une pompe à chaleur air-air peut ouvrir droit à certaines aides. Un devis par un installateur certifié reste indispensable.",
		},
	},
	{
		Title:        "Entretien d'une climatisation gainable : le guide",
		Introduction: "Un entretien régulier garantit les performances et la durée de vie de votre installation.",
		Sections: []string{
			"Ce que vous pouvez faire vous-même",
			"Le nettoyage des filtres de la reprise d'air tous les deux à trois mois est à la portée de tous et conditionne directement le débit et la qualité de l'air.",
			"La visite annuelle du professionnel",
			"Le contrôle d'étanchéité du circuit frigorifique et la vérification des organes électriques doivent être confiés à un professionnel habilité.",
		},
	},
}

// GenerateArticles creates the starter DRAFT articles for one expert. When
// slug is empty the first referenced expert is used. Titles already present
// on the expert are skipped.
func GenerateArticles(db *gorm.DB, slug string) error {
	var expert models.Expert
	q := db.Order("created_at ASC")
	if slug != "" {
		q = q.Where("slug = ?", slug)
	}
	if err := q.First(&expert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no expert found for slug %q", slug)
		}
		return err
	}

	created, skipped := 0, 0
	for _, tpl := range articleTemplates {
		articleSlug := content.Slugify(tpl.Title)

		var count int64
		if err := db.Model(&models.Article{}).
			Where("expert_id = ? AND slug = ?", expert.ID, articleSlug).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			skipped++
			continue
		}

		doc := buildDocument(tpl)
		raw, err := content.Encode(doc)
		if err != nil {
			return err
		}

		article := models.Article{
			ExpertID:     expert.ID,
			Title:        tpl.Title,
			Slug:         articleSlug,
			Introduction: tpl.Introduction,
			Content:      content.RenderHTML(doc),
			JSONContent:  raw,
			Status:       models.ArticleStatusDraft,
		}
		if err := db.Create(&article).Error; err != nil {
			return err
		}
		created++
	}

	slog.Info("starter articles generated",
		"expert", expert.Slug, "created", created, "skipped", skipped)
	return nil
}

// buildDocument alternates h2 and text blocks from the flat section list.
func buildDocument(tpl articleTemplate) content.Document {
	doc := content.Document{Blocks: []content.Block{}, FAQ: []content.FAQItem{}}
	for i, s := range tpl.Sections {
		blockType := content.BlockText
		if i%2 == 0 {
			blockType = content.BlockH2
		}
		doc.Blocks = append(doc.Blocks, content.Block{
			ID:    uuid.NewString(),
			Type:  blockType,
			Value: strings.TrimSpace(s),
		})
	}
	return doc
}
