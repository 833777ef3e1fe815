package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBlocksRoundTrip(t *testing.T) {
	doc := Document{
		Blocks: []Block{
			{ID: "b1", Type: BlockH2, Value: "Le gainable"},
			{ID: "b2", Type: BlockText, Value: "Un système discret."},
			{ID: "b3", Type: BlockImage, Value: "/uploads/articles/plan.jpg", Alt: "Plan de pose"},
		},
		FAQ: []FAQItem{{ID: "f1", Question: "Combien ?", Response: "Sur devis."}},
	}

	raw, err := Encode(doc)
	require.NoError(t, err)

	decoded, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, doc.Blocks, decoded.Blocks)
	assert.Equal(t, doc.FAQ, decoded.FAQ)
}

func TestNormalizeEmptyContent(t *testing.T) {
	doc, err := Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Blocks)
	assert.Empty(t, doc.FAQ)
	assert.NotNil(t, doc.Blocks)
	assert.NotNil(t, doc.FAQ)
}

func TestNormalizeInvalidJSON(t *testing.T) {
	_, err := Normalize([]byte("{not json"))
	assert.Error(t, err)
}

func TestNormalizeLegacySections(t *testing.T) {
	raw := []byte(`{
		"sections": [
			{"title": "Installation", "content": "Pose en combles.", "subtitle": "Les gaines", "showSubtitle": true},
			{"title": "Entretien", "content": "Filtres tous les 3 mois.", "subtitle": "Caché", "showSubtitle": false}
		],
		"faq": [{"id": "f1", "question": "Durée ?", "response": "Une semaine."}]
	}`)

	doc, err := Normalize(raw)
	require.NoError(t, err)

	// First section expands to h2 + text + h3, second drops its hidden subtitle.
	require.Len(t, doc.Blocks, 5)
	assert.Equal(t, BlockH2, doc.Blocks[0].Type)
	assert.Equal(t, "Installation", doc.Blocks[0].Value)
	assert.Equal(t, BlockText, doc.Blocks[1].Type)
	assert.Equal(t, BlockH3, doc.Blocks[2].Type)
	assert.Equal(t, "Les gaines", doc.Blocks[2].Value)
	assert.Equal(t, BlockH2, doc.Blocks[3].Type)
	assert.Equal(t, BlockText, doc.Blocks[4].Type)

	for _, b := range doc.Blocks {
		assert.NotEmpty(t, b.ID)
	}
	require.Len(t, doc.FAQ, 1)
}

func TestNormalizeBlocksWinOverSections(t *testing.T) {
	raw := []byte(`{
		"blocks": [{"id": "b1", "type": "text", "value": "nouveau format"}],
		"sections": [{"title": "ancien", "content": "ignoré"}]
	}`)

	doc, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "nouveau format", doc.Blocks[0].Value)
}

func TestEncodeNeverNull(t *testing.T) {
	raw, err := Encode(Document{})
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.JSONEq(t, "[]", string(out["blocks"]))
	assert.JSONEq(t, "[]", string(out["faq"]))
}
