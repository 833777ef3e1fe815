// Package content implements the article block model: the structured
// {blocks, faq} document stored in articles.json_content, its rendering to
// the HTML cache, and the completeness score that gates publishing.
package content

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Block types.
const (
	BlockH2    = "h2"
	BlockH3    = "h3"
	BlockText  = "text"
	BlockImage = "image"
	BlockVideo = "video"
)

// Block is one typed unit of article content.
type Block struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
	Alt   string `json:"alt,omitempty"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Response string `json:"response"`
}

// Document is the authoritative structured form of an article body.
type Document struct {
	Blocks []Block   `json:"blocks"`
	FAQ    []FAQItem `json:"faq"`
}

// legacySection is the pre-block editor format ({sections, faq}). Older
// articles still carry it in json_content and must remain readable.
type legacySection struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Subtitle     string `json:"subtitle,omitempty"`
	ShowSubtitle bool   `json:"showSubtitle,omitempty"`
}

type rawDocument struct {
	Blocks   []Block         `json:"blocks"`
	Sections []legacySection `json:"sections"`
	FAQ      []FAQItem       `json:"faq"`
}

// Normalize decodes json_content into a Document, converting the legacy
// sections format to blocks when no block list is present. This is the single
// normalization boundary: everything past the data layer sees blocks only.
func Normalize(data []byte) (Document, error) {
	doc := Document{Blocks: []Block{}, FAQ: []FAQItem{}}
	if len(data) == 0 {
		return doc, nil
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return doc, fmt.Errorf("invalid article content: %w", err)
	}

	if raw.FAQ != nil {
		doc.FAQ = raw.FAQ
	}

	if raw.Blocks != nil {
		doc.Blocks = raw.Blocks
		return doc, nil
	}

	// Legacy article: expand each section into an equivalent block sequence.
	for _, s := range raw.Sections {
		if s.Title != "" {
			doc.Blocks = append(doc.Blocks, Block{ID: uuid.NewString(), Type: BlockH2, Value: s.Title})
		}
		if s.Content != "" {
			doc.Blocks = append(doc.Blocks, Block{ID: uuid.NewString(), Type: BlockText, Value: s.Content})
		}
		if s.ShowSubtitle && s.Subtitle != "" {
			doc.Blocks = append(doc.Blocks, Block{ID: uuid.NewString(), Type: BlockH3, Value: s.Subtitle})
		}
	}
	return doc, nil
}

// Encode serializes a Document back to the json_content blocks format.
func Encode(doc Document) ([]byte, error) {
	if doc.Blocks == nil {
		doc.Blocks = []Block{}
	}
	if doc.FAQ == nil {
		doc.FAQ = []FAQItem{}
	}
	return json.Marshal(doc)
}
