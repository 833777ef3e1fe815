package content

import (
	"math"
	"unicode/utf8"
)

// Completeness score weights: 40 words + 20 structure + 20 FAQ + 20 image.
// Publishing is gated at a score of 100.
const (
	scoreWordTarget  = 800
	scoreH2Target    = 3
	scoreFAQTarget   = 2
	minAltTextLength = 6
)

// ScoreDetail breaks the completeness score down for the dashboard editor.
type ScoreDetail struct {
	Words     int     `json:"words"`
	H2Count   int     `json:"h2_count"`
	FAQCount  int     `json:"faq_count"`
	WordScore float64 `json:"word_score"`
	H2Score   float64 `json:"h2_score"`
	FAQScore  float64 `json:"faq_score"`
	ImgScore  float64 `json:"img_score"`
	Total     int     `json:"total"`
}

// Score computes the 0-100 completeness score for an article. Reaches 100
// exactly when words >= 800, h2 count >= 3, faq count >= 2, and a main image
// with alt text longer than 5 characters is set.
func Score(doc Document, mainImage, altText string) ScoreDetail {
	d := ScoreDetail{
		Words:    WordCount(doc),
		FAQCount: len(doc.FAQ),
	}
	for _, b := range doc.Blocks {
		if b.Type == BlockH2 {
			d.H2Count++
		}
	}

	d.WordScore = math.Min(40, float64(d.Words)/scoreWordTarget*40)
	if d.H2Count >= scoreH2Target {
		d.H2Score = 20
	} else {
		d.H2Score = float64(d.H2Count) / scoreH2Target * 20
	}
	if d.FAQCount >= scoreFAQTarget {
		d.FAQScore = 20
	} else {
		d.FAQScore = float64(d.FAQCount) / scoreFAQTarget * 20
	}
	// Alt text length is counted in runes, not bytes: accented French text
	// must not pass the threshold early.
	if mainImage != "" && utf8.RuneCountInString(altText) >= minAltTextLength {
		d.ImgScore = 20
	}

	d.Total = int(math.Floor(d.WordScore + d.H2Score + d.FAQScore + d.ImgScore))
	return d
}
