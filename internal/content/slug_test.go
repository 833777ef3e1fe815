package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Clim'Éco Services", "clim-eco-services"},
		{"Bureau d'étude thermique", "bureau-d-etude-thermique"},
		{"  Châlons-en-Champagne  ", "chalons-en-champagne"},
		{"Cœur & Chauffage", "coeur-chauffage"},
		{"DPE   2024 !!!", "dpe-2024"},
		{"àâäéèêëîïôöùûüç", "aaaeeeeiioouuuc"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "input %q", c.in)
	}
}
