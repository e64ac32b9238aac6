package practice

import (
	"errors"
	"testing"

	"github.com/japaniel/lexis/pkg/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryPersister struct {
	fail  bool
	saves int
	last  []Group
}

func (m *memoryPersister) SaveGroups(g []Group) error {
	if m.fail {
		return errors.New("read-only filesystem")
	}
	m.saves++
	m.last = g
	return nil
}

func TestCollectionOperationsPersist(t *testing.T) {
	p := &memoryPersister{}
	c := NewCollection(nil, p, nil)

	i, err := c.Add("verbs")
	require.NoError(t, err)
	require.NoError(t, c.AddQuestion(i, Template{Source: Word, UID: 1}))
	require.NoError(t, c.AddQuestion(i, Template{Source: Sentence, UID: 2}))
	require.NoError(t, c.Rename(i, "verbes"))
	require.NoError(t, c.RemoveQuestion(i, 0))

	assert.Equal(t, 5, p.saves)
	assert.Equal(t, []Group{{Name: "verbes", Questions: []Template{{Source: Sentence, UID: 2}}}}, p.last)

	j, ok := c.Find("verbes")
	require.True(t, ok)
	require.NoError(t, c.Delete(j))
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, p.last)
}

func TestCollectionErrors(t *testing.T) {
	p := &memoryPersister{}
	c := NewCollection([]Group{{Name: "a"}}, p, nil)

	_, err := c.Add("  ")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.ErrorIs(t, c.Delete(3), ErrGroupIndex)
	assert.ErrorIs(t, c.RemoveQuestion(0, 0), ErrGroupIndex)
	assert.Equal(t, 0, p.saves)

	p.fail = true
	assert.ErrorIs(t, c.Rename(0, "b"), ErrPersistence)
	g, err := c.Group(0)
	require.NoError(t, err)
	assert.Equal(t, "a", g.Name, "failed save is rolled back")
}

func TestRemapAndDescribe(t *testing.T) {
	words := lexicon.New()
	sentences := lexicon.New()
	for _, s := range []string{"un", "deux", "trois"} {
		_, err := words.Add(lexicon.NewItem("", "", lexicon.Adverb{Text: s}))
		require.NoError(t, err)
	}
	_, err := sentences.Add(lexicon.NewItem("hej", "", lexicon.Other{Text: "salut"}))
	require.NoError(t, err)

	c := NewCollection([]Group{{Name: "mix", Questions: []Template{
		{Source: Word, UID: 3}, {Source: Word, UID: 1}, {Source: Sentence, UID: 1},
	}}}, nil, nil)

	require.NoError(t, words.Remove(1))
	entries, err := c.Describe(0, words, sentences)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.False(t, entries[0].Deleted)
	assert.True(t, entries[1].Deleted)
	assert.Equal(t, "salut", entries[2].Item.Category.Forms()[0])

	wm, err := words.Renumber()
	require.NoError(t, err)
	sm, err := sentences.Renumber()
	require.NoError(t, err)
	require.NoError(t, c.Remap(wm, sm))

	g, err := c.Group(0)
	require.NoError(t, err)
	assert.Equal(t, []Template{{Source: Word, UID: 2}, {Source: Sentence, UID: 1}}, g.Questions)
	entries, err = c.Describe(0, words, sentences)
	require.NoError(t, err)
	assert.Equal(t, "trois", entries[0].Item.Category.Forms()[0])
}
