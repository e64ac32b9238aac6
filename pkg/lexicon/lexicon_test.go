package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignsMonotonicUIDs(t *testing.T) {
	l := New()
	a := mustAdd(t, l, NewItem("", "", Adverb{Text: "ici"}))
	b := mustAdd(t, l, NewItem("", "", Adverb{Text: "là"}))
	require.NoError(t, l.Remove(b.UID))
	c := mustAdd(t, l, NewItem("", "", Adverb{Text: "ailleurs"}))

	assert.Equal(t, uint32(1), a.UID)
	assert.Equal(t, uint32(2), b.UID)
	assert.Equal(t, uint32(3), c.UID, "removed uids are not reused")
	assert.Equal(t, KindAdverb.Mask(), c.Mask())
}

func TestAddRejectsInvalidItems(t *testing.T) {
	l := New()
	_, err := l.Add(Item{Primary: "x"})
	assert.ErrorIs(t, err, ErrInvalidItem)
	_, err = l.Add(NewItem("x", "", Noun{}))
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Equal(t, 0, l.Len())
}

func TestRemoveThenLookup(t *testing.T) {
	l := New()
	a := mustAdd(t, l, NewItem("", "", Adverb{Text: "ici"}))
	b := mustAdd(t, l, NewItem("", "", Adverb{Text: "là"}))

	require.NoError(t, l.Remove(a.UID))
	_, ok := l.Item(a.UID)
	assert.False(t, ok)

	got, ok := l.Item(b.UID)
	require.True(t, ok, "lookup by uid survives deletions")
	assert.Equal(t, "là", got.Category.Forms()[0])
	pos, ok := l.Index(b.UID)
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	assert.ErrorIs(t, l.Remove(a.UID), ErrNotFound)
}

func TestEditKeepsUID(t *testing.T) {
	l := New()
	a := mustAdd(t, l, NewItem("katt", "cat", Noun{Singular: "chat", Plural: "chats"}))

	edited := NewItem("katt", "cat", Noun{Singular: "chatte", Plural: "chattes", Gender: Female})
	require.NoError(t, l.Edit(a.UID, edited))

	got, ok := l.Item(a.UID)
	require.True(t, ok)
	edited.UID = a.UID
	assert.Equal(t, edited, got)

	assert.ErrorIs(t, l.Edit(99, edited), ErrNotFound)
}

func TestReturnedItemsDoNotAliasStore(t *testing.T) {
	l := New()
	a := mustAdd(t, l, NewItem("", "", parler()))

	got, _ := l.Item(a.UID)
	v := got.Category.(Verb)
	v.Table.Present[0] = "changed"
	got.Primary = "changed"

	again, _ := l.Item(a.UID)
	assert.Equal(t, "parle", again.Category.(Verb).Table.Present[0])
	assert.Empty(t, again.Primary)
}

func TestItemAt(t *testing.T) {
	l := New()
	mustAdd(t, l, NewItem("", "", Adverb{Text: "ici"}))

	it, err := l.ItemAt(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), it.UID)

	_, err = l.ItemAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.ItemAt(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestMutationsArePersisted(t *testing.T) {
	p := &failingPersister{}
	l := New(WithPersister(p))

	a := mustAdd(t, l, NewItem("", "", Adverb{Text: "ici"}))
	require.NoError(t, l.Edit(a.UID, NewItem("här", "", Adverb{Text: "ici"})))
	require.NoError(t, l.Remove(a.UID))

	assert.Equal(t, 3, p.saves)
	assert.Empty(t, p.last.Items)
	assert.Equal(t, uint32(2), p.last.NextUID)
	assert.Equal(t, uint64(3), l.Generation())
}

func TestFailedSaveRollsBack(t *testing.T) {
	p := &failingPersister{}
	l := New(WithPersister(p))
	a := mustAdd(t, l, NewItem("", "", Adverb{Text: "ici"}))

	p.fail = true
	_, err := l.Add(NewItem("", "", Adverb{Text: "là"}))
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 1, l.Len())

	err = l.Edit(a.UID, NewItem("här", "", Adverb{Text: "ici"}))
	assert.ErrorIs(t, err, ErrPersistence)
	got, _ := l.Item(a.UID)
	assert.Empty(t, got.Primary)

	assert.ErrorIs(t, l.Remove(a.UID), ErrPersistence)
	_, ok := l.Item(a.UID)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), l.Generation())

	p.fail = false
	b := mustAdd(t, l, NewItem("", "", Adverb{Text: "là"}))
	assert.Equal(t, uint32(2), b.UID)
}

func TestRenumber(t *testing.T) {
	l := New()
	for _, s := range []string{"un", "deux", "trois", "quatre"} {
		mustAdd(t, l, NewItem("", "", Adverb{Text: s}))
	}
	require.NoError(t, l.Remove(1))
	require.NoError(t, l.Remove(3))

	mapping, err := l.Renumber()
	require.NoError(t, err)
	assert.Equal(t, map[uint32]uint32{2: 1, 4: 2}, mapping)

	it, ok := l.Item(2)
	require.True(t, ok)
	assert.Equal(t, "quatre", it.Category.Forms()[0])

	next := mustAdd(t, l, NewItem("", "", Adverb{Text: "cinq"}))
	assert.Equal(t, uint32(3), next.UID)
}

func TestFromSnapshot(t *testing.T) {
	items := []Item{
		{UID: 4, Category: Adverb{Text: "ici"}},
		{UID: 9, Category: Other{Text: "bonjour"}},
	}
	l, err := FromSnapshot(Snapshot{Items: items, NextUID: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	it, ok := l.Item(9)
	require.True(t, ok)
	assert.Equal(t, KindOther.Mask(), it.Mask())

	added := mustAdd(t, l, NewItem("", "", Adverb{Text: "là"}))
	assert.Equal(t, uint32(10), added.UID)

	_, err = FromSnapshot(Snapshot{Items: []Item{items[0], items[0]}})
	assert.Error(t, err)
}
