package practice

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/japaniel/lexis/pkg/lexicon"
)

// Source tells which lexicon a Template's uid refers to.
type Source uint8

const (
	Word Source = iota
	Sentence
)

func (s Source) String() string {
	if s == Sentence {
		return "sentence"
	}
	return "word"
}

// ParseSource parses "word" or "sentence".
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word":
		return Word, nil
	case "sentence":
		return Sentence, nil
	}
	return 0, fmt.Errorf("unknown question source %q", s)
}

// Template references a lexicon item to be asked about.
type Template struct {
	Source Source
	UID    uint32
}

func (t Template) String() string { return fmt.Sprintf("%s(%d)", t.Source, t.UID) }

// Group is a named, ordered list of question templates.
type Group struct {
	Name      string
	Questions []Template
}

func (g Group) clone() Group {
	return Group{Name: g.Name, Questions: slices.Clone(g.Questions)}
}

// Persister writes the whole group collection. It is called after every structural change.
type Persister interface {
	SaveGroups([]Group) error
}

// Collection owns the practice groups and persists them after each change.
type Collection struct {
	groups    []Group
	persister Persister
	logger    *slog.Logger
}

// NewCollection wraps groups. A nil persister keeps the collection in memory only;
// a nil logger discards output.
func NewCollection(groups []Group, p Persister, logger *slog.Logger) *Collection {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c := &Collection{persister: p, logger: logger}
	for _, g := range groups {
		c.groups = append(c.groups, g.clone())
	}
	return c
}

// Len returns the number of groups.
func (c *Collection) Len() int { return len(c.groups) }

// Groups returns a copy of every group.
func (c *Collection) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = g.clone()
	}
	return out
}

// Group returns a copy of the group at i.
func (c *Collection) Group(i int) (Group, error) {
	if err := c.check(i); err != nil {
		return Group{}, err
	}
	return c.groups[i].clone(), nil
}

// Find returns the index of the first group called name.
func (c *Collection) Find(name string) (int, bool) {
	for i, g := range c.groups {
		if g.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Add appends an empty group and returns its index.
func (c *Collection) Add(name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmptyName
	}
	err := c.mutate(func() error {
		c.groups = append(c.groups, Group{Name: name})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(c.groups) - 1, nil
}

// Rename changes the name of group i, keeping its questions.
func (c *Collection) Rename(i int, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return c.mutate(func() error {
		if err := c.check(i); err != nil {
			return err
		}
		c.groups[i].Name = name
		return nil
	})
}

// Delete removes group i.
func (c *Collection) Delete(i int) error {
	return c.mutate(func() error {
		if err := c.check(i); err != nil {
			return err
		}
		c.groups = slices.Delete(c.groups, i, i+1)
		return nil
	})
}

// AddQuestion appends t to group i.
func (c *Collection) AddQuestion(i int, t Template) error {
	return c.mutate(func() error {
		if err := c.check(i); err != nil {
			return err
		}
		c.groups[i].Questions = append(c.groups[i].Questions, t)
		return nil
	})
}

// RemoveQuestion removes the j-th question of group i.
func (c *Collection) RemoveQuestion(i, j int) error {
	return c.mutate(func() error {
		if err := c.check(i); err != nil {
			return err
		}
		qs := c.groups[i].Questions
		if j < 0 || j >= len(qs) {
			return fmt.Errorf("%w: question %d of %d", ErrGroupIndex, j, len(qs))
		}
		c.groups[i].Questions = slices.Delete(qs, j, j+1)
		return nil
	})
}

// Remap rewrites every template uid through the mappings returned by
// lexicon.Renumber. Templates whose uid is absent from the mapping are dropped.
func (c *Collection) Remap(words, sentences map[uint32]uint32) error {
	return c.mutate(func() error {
		for gi := range c.groups {
			kept := c.groups[gi].Questions[:0]
			for _, t := range c.groups[gi].Questions {
				m := words
				if t.Source == Sentence {
					m = sentences
				}
				uid, ok := m[t.UID]
				if !ok {
					c.logger.Warn("dropping question for deleted item", "group", c.groups[gi].Name, "template", t.String())
					continue
				}
				kept = append(kept, Template{Source: t.Source, UID: uid})
			}
			c.groups[gi].Questions = kept
		}
		return nil
	})
}

// Entry is a resolved question template.
type Entry struct {
	Template Template
	Item     lexicon.Item
	// Deleted is set when the uid no longer resolves.
	Deleted bool
}

// Describe resolves the templates of group i against the word and sentence lexicons.
func (c *Collection) Describe(i int, words, sentences *lexicon.Lexicon) ([]Entry, error) {
	if err := c.check(i); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(c.groups[i].Questions))
	for _, t := range c.groups[i].Questions {
		it, ok := resolve(t, words, sentences)
		out = append(out, Entry{Template: t, Item: it, Deleted: !ok})
	}
	return out, nil
}

func resolve(t Template, words, sentences *lexicon.Lexicon) (lexicon.Item, bool) {
	if t.Source == Sentence {
		return sentences.Item(t.UID)
	}
	return words.Item(t.UID)
}

func (c *Collection) check(i int) error {
	if i < 0 || i >= len(c.groups) {
		return fmt.Errorf("%w: group %d of %d", ErrGroupIndex, i, len(c.groups))
	}
	return nil
}

func (c *Collection) mutate(fn func() error) error {
	prev := c.Groups()
	if err := fn(); err != nil {
		c.groups = prev
		return err
	}
	if c.persister == nil {
		return nil
	}
	if err := c.persister.SaveGroups(c.Groups()); err != nil {
		c.groups = prev
		c.logger.Error("saving practice groups failed", "error", err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}
