package practice

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/japaniel/lexis/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNoun(t *testing.T) {
	it := lexicon.NewItem("katt", "cat", lexicon.Noun{Singular: "chat", Plural: "chats"})
	rng := rand.New(rand.NewSource(1))

	seen := map[lexicon.Language]bool{}
	for i := 0; i < 50; i++ {
		q, err := Generate(it, DefaultLanguages, rng)
		require.NoError(t, err)
		seen[q.Language] = true
		switch q.Language {
		case lexicon.Source:
			assert.Contains(t, []string{"chat", "chats"}, q.Answer)
			label := "singular"
			if q.Answer == "chats" {
				label = "plural"
			}
			assert.Equal(t, "What is the "+label+" form of 'katt' in french?", q.Prompt)
		case lexicon.Primary:
			assert.Equal(t, "katt", q.Answer)
			assert.True(t, strings.HasSuffix(q.Prompt, "in swedish?"), q.Prompt)
		default:
			t.Fatalf("unexpected language %v", q.Language)
		}
	}
	assert.True(t, seen[lexicon.Source] && seen[lexicon.Primary], "both directions are drawn")
}

func TestGenerateVerbNamesPerson(t *testing.T) {
	v := lexicon.Verb{Name: "parler", Table: lexicon.VerbForms{
		Present: [6]string{"parle", "parles", "parle", "parlons", "parlez", "parlent"},
	}}
	it := lexicon.NewItem("tala", "speak", v)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 30; i++ {
		q, err := Generate(it, DefaultLanguages, rng)
		require.NoError(t, err)
		if q.Language == lexicon.Source {
			assert.Contains(t, v.Table.Present[:], q.Answer)
			assert.Regexp(t, `^What is the (je|tu|il/elle/on|nous|vous|ils/elles) form of 'tala' in french\?$`, q.Prompt)
		} else {
			assert.Equal(t, "tala", q.Answer)
			assert.Regexp(t, `^What is 'parl\w+' \((je|tu|il/elle/on|nous|vous|ils/elles)\) in swedish\?$`, q.Prompt)
		}
	}
}

func TestGenerateSingleFormCategories(t *testing.T) {
	tests := []struct {
		name   string
		item   lexicon.Item
		source string
		prompt string
	}{
		{"sentence", lexicon.NewItem("hej", "", lexicon.Other{Text: "bonjour"}), "bonjour", "What is 'hej' in french?"},
		{"adjective", lexicon.NewItem("stor", "", lexicon.DescriptiveAdjective{Masculine: "grand", Feminine: "grande"}), "grand", "What is 'stor' in french (masculine)?"},
		{"pronoun", lexicon.NewItem("jag", "", lexicon.PersonalPronoun{Subject: "je", Stressed: "moi"}), "je", "What is 'jag' in french?"},
		{"secondary fallback", lexicon.NewItem("", "often", lexicon.Adverb{Text: "souvent"}), "souvent", "What is 'often' in french?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			for i := 0; i < 10; i++ {
				q, err := Generate(tt.item, DefaultLanguages, rng)
				require.NoError(t, err)
				if q.Language == lexicon.Source {
					assert.Equal(t, tt.source, q.Answer)
					assert.Equal(t, tt.prompt, q.Prompt)
				} else {
					assert.NotEqual(t, tt.source, q.Answer)
				}
			}
		})
	}
}

func TestGenerateUntranslated(t *testing.T) {
	it := lexicon.NewItem("", "", lexicon.Adverb{Text: "vite"})
	_, err := Generate(it, DefaultLanguages, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrUntranslated)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Close, Classify(1))
	assert.Equal(t, Close, Classify(2))
	assert.Equal(t, Almost, Classify(3))
	assert.Equal(t, NeedsPractice, Classify(4))
	assert.Equal(t, "You were close.", Close.String())
}
