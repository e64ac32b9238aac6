package lexicon

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Snapshot is the complete persisted state of a Lexicon.
type Snapshot struct {
	Items   []Item
	NextUID uint32
}

// Persister writes a whole-store snapshot. It is called after every mutation.
type Persister interface {
	Save(Snapshot) error
}

// Lexicon is an insertion-ordered store of items addressed by stable uid.
// It is not safe for concurrent use.
type Lexicon struct {
	items      []Item
	index      map[uint32]int
	nextUID    uint32
	generation uint64
	persister  Persister
	logger     *slog.Logger
}

// Option configures a Lexicon.
type Option func(*Lexicon)

// WithPersister saves the store through p after each mutation.
func WithPersister(p Persister) Option {
	return func(l *Lexicon) { l.persister = p }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lexicon) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New returns an empty lexicon. Uids start at 1.
func New(opts ...Option) *Lexicon {
	l := &Lexicon{
		index:   map[uint32]int{},
		nextUID: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromSnapshot rebuilds a lexicon from persisted state. Duplicate uids are rejected and
// the uid counter is raised past the largest uid present.
func FromSnapshot(s Snapshot, opts ...Option) (*Lexicon, error) {
	l := New(opts...)
	l.items = make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.Category == nil {
			return nil, fmt.Errorf("item %d: %w", it.UID, ErrInvalidItem)
		}
		if _, dup := l.index[it.UID]; dup {
			return nil, fmt.Errorf("duplicate uid %d in snapshot", it.UID)
		}
		it.mask = it.Category.Kind().Mask()
		l.index[it.UID] = len(l.items)
		l.items = append(l.items, it)
		if it.UID >= l.nextUID {
			l.nextUID = it.UID + 1
		}
	}
	if s.NextUID > l.nextUID {
		l.nextUID = s.NextUID
	}
	return l, nil
}

// Snapshot returns a copy of the current state.
func (l *Lexicon) Snapshot() Snapshot {
	return Snapshot{Items: slices.Clone(l.items), NextUID: l.nextUID}
}

// Len returns the number of items.
func (l *Lexicon) Len() int { return len(l.items) }

// Generation increases on every successful mutation.
func (l *Lexicon) Generation() uint64 { return l.generation }

// Item looks up an item by uid.
func (l *Lexicon) Item(uid uint32) (Item, bool) {
	i, ok := l.index[uid]
	if !ok {
		return Item{}, false
	}
	return l.items[i], true
}

// Index returns the current store position of uid. Positions shift on removal.
func (l *Lexicon) Index(uid uint32) (int, bool) {
	i, ok := l.index[uid]
	return i, ok
}

// ItemAt returns the item at a store position.
func (l *Lexicon) ItemAt(pos int) (Item, error) {
	if pos < 0 || pos >= len(l.items) {
		return Item{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, pos, len(l.items))
	}
	return l.items[pos], nil
}

// Items returns every item in store order.
func (l *Lexicon) Items() []Item { return slices.Clone(l.items) }

// Add appends it under a freshly assigned uid and returns the stored item.
func (l *Lexicon) Add(it Item) (Item, error) {
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	it.UID = l.nextUID
	it.mask = it.Category.Kind().Mask()
	err := l.mutate(func() error {
		l.items = append(l.items, it)
		l.nextUID++
		return nil
	})
	if err != nil {
		return Item{}, err
	}
	l.logger.Debug("item added", "uid", it.UID, "kind", it.Category.Kind())
	return it, nil
}

// Edit replaces the item stored under uid, keeping its uid and position.
func (l *Lexicon) Edit(uid uint32, it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	it.UID = uid
	it.mask = it.Category.Kind().Mask()
	err := l.mutate(func() error {
		i, ok := l.index[uid]
		if !ok {
			return fmt.Errorf("edit %d: %w", uid, ErrNotFound)
		}
		l.items[i] = it
		return nil
	})
	if err != nil {
		return err
	}
	l.logger.Debug("item edited", "uid", uid)
	return nil
}

// Remove deletes the item stored under uid. The uid is never handed out again.
func (l *Lexicon) Remove(uid uint32) error {
	err := l.mutate(func() error {
		i, ok := l.index[uid]
		if !ok {
			return fmt.Errorf("remove %d: %w", uid, ErrNotFound)
		}
		l.items = slices.Delete(l.items, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	l.logger.Debug("item removed", "uid", uid)
	return nil
}

// Renumber assigns uids 1..n in store order and returns the old to new mapping.
// Callers holding uids must rewrite them with the mapping.
func (l *Lexicon) Renumber() (map[uint32]uint32, error) {
	mapping := make(map[uint32]uint32, len(l.items))
	err := l.mutate(func() error {
		for i := range l.items {
			next := uint32(i + 1)
			mapping[l.items[i].UID] = next
			l.items[i].UID = next
		}
		l.nextUID = uint32(len(l.items) + 1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.logger.Info("lexicon renumbered", "items", len(l.items))
	return mapping, nil
}

// Restore replaces the whole store with s and persists it.
func (l *Lexicon) Restore(s Snapshot) error {
	fresh, err := FromSnapshot(s)
	if err != nil {
		return err
	}
	return l.mutate(func() error {
		l.items = fresh.items
		l.nextUID = fresh.nextUID
		return nil
	})
}

// mutate applies fn and persists the result. When fn or the save fails the
// previous state is put back.
func (l *Lexicon) mutate(fn func() error) error {
	prevItems := slices.Clone(l.items)
	prevNext := l.nextUID
	rollback := func() {
		l.items = prevItems
		l.nextUID = prevNext
		l.reindex()
	}
	if err := fn(); err != nil {
		rollback()
		return err
	}
	l.reindex()
	if l.persister != nil {
		if err := l.persister.Save(l.Snapshot()); err != nil {
			rollback()
			l.logger.Error("saving lexicon failed", "error", err)
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}
	l.generation++
	return nil
}

func (l *Lexicon) reindex() {
	clear(l.index)
	for i, it := range l.items {
		l.index[it.UID] = i
	}
}
