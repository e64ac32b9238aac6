package lexicon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLexicon(t *testing.T) *Lexicon {
	t.Helper()
	l := New()
	mustAdd(t, l, NewItem("tala", "to speak", parler()))
	mustAdd(t, l, NewItem("katt", "cat", Noun{Singular: "chat", Plural: "chats", Class: Being}))
	mustAdd(t, l, NewItem("jag", "I", PersonalPronoun{Subject: "je", Reflexive: "me", Stressed: "moi",
		Object: ObjectPronouns{Direct: "me", Indirect: "me"}}))
	mustAdd(t, l, NewItem("", "", Adverb{Text: "parfois"}))
	mustAdd(t, l, NewItem("hatt", "hat", Noun{Singular: "chapeau", Plural: "chapeaux"}))
	return l
}

func TestSearchClosestVerbForm(t *testing.T) {
	l := New()
	mustAdd(t, l, NewItem("tala", "", parler()))

	got := l.Search(Query{Text: "parlr", Language: Source, Mask: KindVerb.Mask()}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, uint32(1), got[0].Item.UID)
	assert.Equal(t, 1, got[0].Distance)
	assert.Contains(t, []string{"parle", "parler"}, got[0].Text)
}

func TestSearchOrderingAndBounds(t *testing.T) {
	l := sampleLexicon(t)
	queries := []Query{
		{Text: "parl", Language: Source},
		{Text: "chat", Language: Source},
		{Text: "cat", Language: Secondary},
		{Text: "me", Language: Source, Mask: KindPronoun.Mask()},
		{Text: "x", Language: Source},
	}
	for _, q := range queries {
		for _, n := range []int{0, 1, 3, 50} {
			got := l.Search(q, n)
			assert.LessOrEqual(t, len(got), n, "query %q n=%d", q.Text, n)
			seen := map[string]bool{}
			for i, m := range got {
				if i > 0 {
					assert.LessOrEqual(t, got[i-1].Distance, m.Distance, "query %q not sorted", q.Text)
				}
				key := m.Text + "\x00" + string(rune(m.Item.UID))
				assert.False(t, seen[key], "duplicate pair %q/%d", m.Text, m.Item.UID)
				seen[key] = true
			}
		}
	}
}

func TestSearchSuppressesDuplicateForms(t *testing.T) {
	l := New()
	mustAdd(t, l, NewItem("", "", parler()))

	got := l.Search(Query{Text: "parle", Language: Source}, 20)
	count := 0
	for _, m := range got {
		if m.Text == "parle" {
			count++
		}
	}
	assert.Equal(t, 1, count, "parle is both the je and il form but must appear once")
	assert.Equal(t, 0, got[0].Distance)
}

func TestSearchTiesKeepStoreOrder(t *testing.T) {
	l := New()
	first := mustAdd(t, l, NewItem("", "", Adverb{Text: "bien"}))
	second := mustAdd(t, l, NewItem("", "", Adverb{Text: "rien"}))

	got := l.Search(Query{Text: "xien", Language: Source}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, first.UID, got[0].Item.UID)
	assert.Equal(t, second.UID, got[1].Item.UID)

	got = l.Search(Query{Text: "xien", Language: Source}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, first.UID, got[0].Item.UID)
}

func TestSearchDistanceGuard(t *testing.T) {
	l := New()
	mustAdd(t, l, NewItem("", "", Preposition{Text: "à"}))
	mustAdd(t, l, NewItem("", "", Adverb{Text: "oui"}))

	assert.Empty(t, l.Search(Query{Text: "xyz", Language: Source}, 5),
		"candidates sharing nothing with the query must not match")
	assert.Empty(t, l.Search(Query{Text: "", Language: Source}, 5))

	got := l.Search(Query{Text: "ou", Language: Source}, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "oui", got[0].Text)
}

func TestSearchExactLength(t *testing.T) {
	l := New()
	mustAdd(t, l, NewItem("", "", Article{Masculine: "le", Feminine: "la", Plural: "les"}))

	got := l.Search(Query{Text: "lee", Language: Source, ExactLength: true}, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "les", got[0].Text)
}

func TestSearchTranslationLanguages(t *testing.T) {
	l := sampleLexicon(t)

	got := l.Search(Query{Text: "katt", Language: Primary}, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "katt", got[0].Text)
	assert.Equal(t, 0, got[0].Distance)

	// parfois has no translations and never matches in those languages.
	for _, m := range l.Search(Query{Text: "parfois", Language: Secondary}, 10) {
		assert.NotEqual(t, KindAdverb, m.Item.Category.Kind())
	}
}

func TestBestMatches(t *testing.T) {
	l := New()
	a := mustAdd(t, l, NewItem("", "", Adverb{Text: "bien"}))
	b := mustAdd(t, l, NewItem("", "", Adverb{Text: "rien"}))
	mustAdd(t, l, NewItem("", "", Adverb{Text: "toujours"}))

	got, d := l.BestMatches(Query{Text: "lien", Language: Source})
	assert.Equal(t, 1, d)
	require.Len(t, got, 2)
	assert.Equal(t, a.UID, got[0].Item.UID)
	assert.Equal(t, b.UID, got[1].Item.UID)
	for _, m := range got {
		assert.Equal(t, d, m.Distance)
	}

	got, d = l.BestMatches(Query{Text: "rien", Language: Source})
	assert.Equal(t, 0, d)
	require.Len(t, got, 1)
	assert.Equal(t, b.UID, got[0].Item.UID)
}

func TestBestMatchesNothingQualifies(t *testing.T) {
	l := sampleLexicon(t)
	got, d := l.BestMatches(Query{Text: "zzzzzzzzzzzz", Language: Source, Mask: KindAdverb.Mask()})
	assert.Empty(t, got)
	assert.Equal(t, NoMatch, d)

	got, d = l.BestMatches(Query{Text: "chat", Language: Source, Mask: KindNumber.Mask()})
	assert.Empty(t, got)
	assert.Equal(t, NoMatch, d)
}

func TestZeroMaskMatchesEverything(t *testing.T) {
	l := sampleLexicon(t)
	for _, text := range []string{"chat", "parle", "je", "parfois", "chapo"} {
		q0 := Query{Text: text, Language: Source, Mask: 0}
		qAll := Query{Text: text, Language: Source, Mask: 0xFFFF}
		assert.Equal(t, l.Search(qAll, 10), l.Search(q0, 10), text)

		b0, d0 := l.BestMatches(q0)
		bAll, dAll := l.BestMatches(qAll)
		assert.Equal(t, bAll, b0, text)
		assert.Equal(t, dAll, d0, text)
	}
	assert.Equal(t, l.All(Query{Mask: 0xFFFF}, 10), l.All(Query{}, 10))
}

func TestAllBrowsesInStoreOrder(t *testing.T) {
	l := sampleLexicon(t)

	got := l.All(Query{Language: Source, Mask: KindNoun.Mask()}, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "chat", got[0].Text)
	assert.Equal(t, "chapeau", got[1].Text)

	assert.Len(t, l.All(Query{}, 3), 3)
	assert.Equal(t, l.All(Query{}, 10), l.Find(Query{}, 10))

	// parfois has no translation
	primary := l.All(Query{Language: Primary}, 10)
	require.Len(t, primary, 4)
	for _, m := range primary {
		assert.NotEmpty(t, m.Text)
		assert.NotEqual(t, KindAdverb, m.Item.Category.Kind())
	}
	assert.Equal(t, []string{"tala", "katt", "jag", "hatt"}, []string{primary[0].Text, primary[1].Text, primary[2].Text, primary[3].Text})
}

func TestRandomItem(t *testing.T) {
	l := sampleLexicon(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		it, err := l.RandomItem(Query{Mask: KindNoun.Mask()}, rng)
		require.NoError(t, err)
		assert.Equal(t, KindNoun, it.Category.Kind())
	}

	_, err := l.RandomItem(Query{Mask: KindNumber.Mask()}, rng)
	assert.ErrorIs(t, err, ErrEmptyResultSet)
}
