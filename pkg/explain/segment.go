package explain

import (
	"regexp"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ElisionVowel replaces the apostrophe of an elided token before matching, so "l'" is looked up as "le".
const ElisionVowel = "e"

// Token is one segment of input text.
type Token struct {
	// Surface is the text as it appeared in the input.
	Surface string
	// Text is the normalized form that is looked up.
	Text string
	// Elided is set when the surface ended in an apostrophe.
	Elided bool
}

// Segmenter splits free text into lookup tokens.
type Segmenter interface {
	Segment(text string) []Token
}

var latinWord = regexp.MustCompile(`\p{Latin}+['’]?`)

// LatinSegmenter splits text into maximal runs of Latin letters, accented ones
// included, each optionally followed by one apostrophe marking elision.
type LatinSegmenter struct {
	lower cases.Caser
}

// NewLatinSegmenter returns a segmenter that lower-cases tokens using tag's rules.
func NewLatinSegmenter(tag language.Tag) *LatinSegmenter {
	return &LatinSegmenter{lower: cases.Lower(tag)}
}

func (s *LatinSegmenter) Segment(text string) []Token {
	text = norm.NFC.String(text)
	var out []Token
	for _, surface := range latinWord.FindAllString(text, -1) {
		word := s.lower.String(surface)
		tok := Token{Surface: surface, Text: word}
		if trimmed := strings.TrimRight(word, "'’"); trimmed != word {
			tok.Text = trimmed + ElisionVowel
			tok.Elided = true
		}
		out = append(out, tok)
	}
	return out
}

// KagomeSegmenter splits Japanese text with the kagome IPA dictionary and looks
// tokens up by their dictionary form.
type KagomeSegmenter struct {
	t *tokenizer.Tokenizer
}

// NewKagomeSegmenter creates a new tokenizer instance.
func NewKagomeSegmenter() (*KagomeSegmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeSegmenter{t: t}, nil
}

// Kagome IPA feature positions.
const (
	featurePOS      = 0
	featureBaseForm = 6
)

const posSymbol = "記号"

func (s *KagomeSegmenter) Segment(text string) []Token {
	var out []Token
	for _, token := range s.t.Tokenize(norm.NFC.String(text)) {
		if token.Class == tokenizer.DUMMY || strings.TrimSpace(token.Surface) == "" {
			continue
		}
		features := token.Features()
		if len(features) > featurePOS && features[featurePOS] == posSymbol {
			continue
		}
		base := token.Surface
		if len(features) > featureBaseForm && features[featureBaseForm] != "*" {
			base = features[featureBaseForm]
		}
		out = append(out, Token{Surface: token.Surface, Text: base})
	}
	return out
}

// SplitSentences splits text after sentence-final punctuation and newlines.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		switch r {
		case '.', '!', '?', '。', '！', '？', '\n':
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
