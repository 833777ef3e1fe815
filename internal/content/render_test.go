package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTMLBlocks(t *testing.T) {
	doc := Document{
		Blocks: []Block{
			{Type: BlockH2, Value: "Chauffage & clim"},
			{Type: BlockText, Value: "Première ligne.\n\nDeuxième ligne."},
			{Type: BlockH3, Value: "Sous-titre"},
			{Type: BlockImage, Value: "/uploads/a.jpg", Alt: "Unité gainable"},
			{Type: BlockVideo, Value: "/uploads/b.mp4"},
		},
	}

	out := RenderHTML(doc)

	assert.Contains(t, out, "<h2>Chauffage &amp; clim</h2>")
	assert.Contains(t, out, "<p>Première ligne.</p>")
	assert.Contains(t, out, "<p>Deuxième ligne.</p>")
	assert.Contains(t, out, "<h3>Sous-titre</h3>")
	assert.Contains(t, out, `<img src="/uploads/a.jpg" alt="Unité gainable" loading="lazy">`)
	assert.Contains(t, out, `<video src="/uploads/b.mp4" controls>`)

	// Block order is preserved.
	assert.Less(t, strings.Index(out, "<h2>"), strings.Index(out, "<h3>"))
}

func TestRenderHTMLSkipsEmptyBlocks(t *testing.T) {
	doc := Document{
		Blocks: []Block{
			{Type: BlockH2, Value: ""},
			{Type: BlockText, Value: "  \n  "},
			{Type: BlockImage, Value: ""},
		},
	}
	assert.Empty(t, RenderHTML(doc))
}

func TestRenderHTMLEscapesUserInput(t *testing.T) {
	doc := Document{
		Blocks: []Block{{Type: BlockText, Value: `<script>alert("x")</script>`}},
	}
	out := RenderHTML(doc)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderHTMLFAQSection(t *testing.T) {
	doc := Document{
		FAQ: []FAQItem{
			{Question: "Quel délai ?", Response: "Deux semaines."},
			{Question: "", Response: "sans question, ignorée"},
		},
	}
	out := RenderHTML(doc)

	assert.Contains(t, out, `<section class="article-faq"><h2>FAQ</h2>`)
	assert.Contains(t, out, "<h3>Quel délai ?</h3>")
	assert.Contains(t, out, "<p>Deux semaines.</p>")
	assert.NotContains(t, out, "sans question")
}

func TestRenderHTMLDeterministic(t *testing.T) {
	doc := Document{
		Blocks: []Block{{Type: BlockH2, Value: "Titre"}, {Type: BlockText, Value: "Corps."}},
		FAQ:    []FAQItem{{Question: "Q", Response: "R"}},
	}
	assert.Equal(t, RenderHTML(doc), RenderHTML(doc))
}

func TestWordCount(t *testing.T) {
	doc := Document{
		Blocks: []Block{
			{Type: BlockH2, Value: "Trois mots ici"},
			{Type: BlockText, Value: "quatre petits mots encore"},
			{Type: BlockImage, Value: "/uploads/a.jpg", Alt: "pas compté"},
		},
	}
	assert.Equal(t, 7, WordCount(doc))
}
