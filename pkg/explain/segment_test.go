package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLatinSegmenter(t *testing.T) {
	seg := NewLatinSegmenter(language.French)

	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "elision",
			in:   "J'aime l’été.",
			want: []Token{
				{Surface: "J'", Text: "je", Elided: true},
				{Surface: "aime", Text: "aime"},
				{Surface: "l’", Text: "le", Elided: true},
				{Surface: "été", Text: "été"},
			},
		},
		{
			name: "apostrophe after full word",
			in:   "je'",
			want: []Token{{Surface: "je'", Text: "jee", Elided: true}},
		},
		{
			name: "accents and punctuation",
			in:   "Où est la FORÊT, déjà? 42 fois!",
			want: []Token{
				{Surface: "Où", Text: "où"},
				{Surface: "est", Text: "est"},
				{Surface: "la", Text: "la"},
				{Surface: "FORÊT", Text: "forêt"},
				{Surface: "déjà", Text: "déjà"},
				{Surface: "fois", Text: "fois"},
			},
		},
		{
			name: "decomposed accents are composed",
			in:   "e\u0301te\u0301",
			want: []Token{{Surface: "été", Text: "été"}},
		},
		{name: "no letters", in: "123 ... !", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Segment(tt.in))
		})
	}
}

func TestKagomeSegmenter(t *testing.T) {
	seg, err := NewKagomeSegmenter()
	require.NoError(t, err)

	tokens := seg.Segment("猫が好きです。")
	require.NotEmpty(t, tokens)
	var texts []string
	for _, tok := range tokens {
		assert.False(t, tok.Elided)
		texts = append(texts, tok.Text)
	}
	assert.Contains(t, texts, "猫")
	assert.NotContains(t, texts, "。")
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("Bonjour. Ça va ?\nOui!  猫です。")
	assert.Equal(t, []string{"Bonjour.", "Ça va ?", "Oui!", "猫です。"}, got)
}
