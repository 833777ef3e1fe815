package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// LegalHandler serves the static French legal pages required for a
// commercial site: mentions légales, CGU and privacy policy.
type LegalHandler struct {
	siteName     string
	contactEmail string
}

func NewLegalHandler(siteName, contactEmail string) *LegalHandler {
	return &LegalHandler{siteName: siteName, contactEmail: contactEmail}
}

const legalStyle = `<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>`

func (h *LegalHandler) MentionsLegales(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="fr"><head><title>Mentions légales - ` + h.siteName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Mentions légales</h1>
<p>Dernière mise à jour : février 2026</p>
<h2>Éditeur du site</h2>
<p>` + h.siteName + ` est un annuaire de professionnels du génie climatique, des bureaux d'étude thermique et du diagnostic immobilier.</p>
<h2>Hébergement</h2>
<p>Le site est hébergé sur des serveurs situés dans l'Union européenne.</p>
<h2>Propriété intellectuelle</h2>
<p>Les contenus publiés par les professionnels référencés restent leur propriété. Toute reproduction sans autorisation est interdite.</p>
<h2>Contact</h2>
<p>Pour toute question : ` + h.contactEmail + `</p>
</body></html>`)
}

func (h *LegalHandler) CGU(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="fr"><head><title>Conditions générales d'utilisation - ` + h.siteName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Conditions générales d'utilisation</h1>
<p>Dernière mise à jour : février 2026</p>
<h2>Objet</h2>
<p>` + h.siteName + ` met en relation des particuliers et des professionnels référencés. L'utilisation du site vaut acceptation des présentes conditions.</p>
<h2>Référencement des professionnels</h2>
<p>L'inscription est réservée aux entreprises immatriculées. Les fiches sont validées avant publication et peuvent être suspendues en cas de contenu trompeur.</p>
<h2>Abonnements</h2>
<p>Certains référencements sont soumis à un abonnement payant, renouvelé automatiquement sauf résiliation avant l'échéance en cours.</p>
<h2>Demandes de contact</h2>
<p>Les demandes envoyées via le site sont transmises aux professionnels sélectionnés. ` + h.siteName + ` n'est pas partie aux contrats conclus entre l'utilisateur et le professionnel.</p>
<h2>Contact</h2>
<p>Pour toute question : ` + h.contactEmail + `</p>
</body></html>`)
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="fr"><head><title>Politique de confidentialité - ` + h.siteName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Politique de confidentialité</h1>
<p>Dernière mise à jour : février 2026</p>
<h2>Données collectées</h2>
<p>Nous collectons les coordonnées saisies dans les formulaires de contact et d'inscription (nom, email, téléphone, code postal) ainsi que les informations d'entreprise issues des registres publics (SIRET, code APE).</p>
<h2>Finalité</h2>
<p>Ces données servent uniquement à transmettre les demandes de contact aux professionnels sélectionnés et à gérer les comptes des professionnels référencés. Elles ne sont jamais revendues.</p>
<h2>Consentement</h2>
<p>Aucune demande de contact n'est transmise sans consentement explicite. Vous pouvez demander la suppression de vos données à tout moment.</p>
<h2>Suppression de compte</h2>
<p>Les professionnels peuvent supprimer leur compte et l'ensemble des données associées depuis leur espace personnel.</p>
<h2>Contact</h2>
<p>Pour exercer vos droits : ` + h.contactEmail + `</p>
</body></html>`)
}
