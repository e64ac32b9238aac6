package lexicon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func everyVariant() []Category {
	g := Gendered{Masculine: "m", Feminine: "f", PluralMasculine: "pm", PluralFeminine: "pf"}
	return []Category{
		Noun{Singular: "cheval", Plural: "chevaux", Gender: Male, Countability: Countable,
			Concreteness: Concrete, Properness: Common, Class: Being},
		Noun{Singular: "Paris", Properness: Proper, Class: Place, Countability: Uncountable},
		parler(),
		Verb{Name: "être", Table: VerbForms{Conjugation: Irregular, Present: [6]string{"suis", "es", "est", "sommes", "êtes", "sont"}}},
		DescriptiveAdjective{Masculine: "grand", Feminine: "grande", PluralMasculine: "grands", PluralFeminine: "grandes"},
		IndefiniteAdjective(g),
		ExclamativeAdjective(g),
		PastParticipleAdjective(g),
		PresentParticipleAdjective(g),
		RelativeAdjective(g),
		NegativeAdjective{Masculine: "aucun", Feminine: "aucune"},
		PossessiveAdjective{Masculine: "mon", Feminine: "ma", Plural: "mes"},
		DemonstrativeAdjective{Masculine: "ce", MasculineVowel: "cet", Feminine: "cette", Plural: "ces"},
		Adverb{Text: "vite"},
		Article{Masculine: "le", Feminine: "la", Plural: "les", Elided: "l'"},
		Article{Masculine: "un", Feminine: "une", Plural: "des"},
		Conjunction{Text: "et"},
		Interjection{Text: "oh"},
		Preposition{Text: "sur"},
		AdverbialPronoun{Text: "y"},
		ImpersonalPronoun{Text: "il"},
		IndefiniteDemonstrativePronoun{Text: "ça"},
		IndefiniteRelativePronoun{Text: "quiconque"},
		InterrogativePronoun{Text: "qui"},
		NegativePronoun{Text: "personne"},
		DemonstrativePronoun{Masculine: "celui", Feminine: "celle", PluralMasculine: "ceux", PluralFeminine: "celles"},
		PossessivePronoun{Masculine: "le mien", Feminine: "la mienne", PluralMasculine: "les miens", PluralFeminine: "les miennes"},
		IndefinitePronoun{Masculine: "chacun", Feminine: "chacune"},
		IndefinitePronoun{Masculine: "rien"},
		PersonalPronoun{Subject: "il", Reflexive: "se", Stressed: "lui", Object: ObjectPronouns{Direct: "le", Indirect: "lui"}},
		PersonalPronoun{Subject: "on", Reflexive: "se", Stressed: "soi"},
		RelativePronoun{Text: "lequel", Inflections: RelativeInflections{Feminine: "laquelle", PluralMasculine: "lesquels", PluralFeminine: "lesquelles"}},
		RelativePronoun{Text: "dont"},
		Number{Cardinal: "un", CardinalFeminine: "une", Ordinal: "premier", OrdinalFeminine: "première",
			Multiplicative: "simple", Fraction: "entier"},
		Number{Cardinal: "quatre", Ordinal: "quatrième", Multiplicative: "quadruple", Fraction: "quart", FractionAlt: "quatrième"},
		Other{Text: "il fait beau"},
	}
}

func TestCategoryRoundTripEveryVariant(t *testing.T) {
	tags := map[string]bool{}
	for _, c := range everyVariant() {
		tag, data, err := EncodeCategory(c)
		require.NoError(t, err)
		tags[tag] = true

		back, err := DecodeCategory(tag, data)
		require.NoError(t, err, tag)
		assert.Equal(t, c, back, tag)
	}
	assert.Len(t, tags, len(decoders), "every registered variant is exercised")
}

func TestItemJSON(t *testing.T) {
	it := NewItem("häst", "horse", everyVariant()[0])
	it.UID = 12

	data, err := json.Marshal(it)
	require.NoError(t, err)

	var back Item
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, it, back)
}

func TestDecodeUnknownVariant(t *testing.T) {
	_, err := DecodeCategory("noun.proper", []byte(`{}`))
	assert.Error(t, err)
	_, err = DecodeCategory("noun", []byte(`{"singular":`))
	assert.Error(t, err)
}

func TestFormsAreNonEmpty(t *testing.T) {
	for _, c := range everyVariant() {
		forms := c.Forms()
		assert.NotEmpty(t, forms, Tag(c))
		assert.LessOrEqual(t, len(forms), 14, Tag(c))
		for _, f := range forms {
			assert.NotEmpty(t, f, Tag(c))
		}
	}
	assert.Len(t, parler().Forms(), 14)
}
