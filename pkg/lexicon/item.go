package lexicon

import (
	"fmt"
	"strings"
)

// Language selects which side of an Item a query or prompt refers to.
type Language uint8

const (
	// Source is the language being learned. Its strings come from the Category.
	Source Language = iota
	Primary
	Secondary
)

var languageNames = [...]string{"source", "primary", "secondary"}

func (l Language) String() string {
	if int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("language(%d)", l)
}

// ParseLanguage parses "source", "primary" or "secondary".
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range languageNames {
		if name == s {
			return Language(i), nil
		}
	}
	return 0, fmt.Errorf("unknown language %q", s)
}

// Item is one lexicon entry. Items are plain values: copies never alias the store.
type Item struct {
	UID uint32
	// Primary and Secondary are the translations. Empty means untranslated.
	Primary   string
	Secondary string
	Category  Category
	mask      Mask
}

// NewItem builds an item with its category mask precomputed. The uid is assigned by Lexicon.Add.
func NewItem(primary, secondary string, c Category) Item {
	it := Item{Primary: primary, Secondary: secondary, Category: c}
	if c != nil {
		it.mask = c.Kind().Mask()
	}
	return it
}

// Mask is the single-bit mask of the item's category.
func (it Item) Mask() Mask {
	if it.mask == 0 && it.Category != nil {
		return it.Category.Kind().Mask()
	}
	return it.mask
}

// Candidates lists the strings the item can be matched by in lang.
// Translation languages yield zero or one candidate.
func (it Item) Candidates(lang Language) []string {
	switch lang {
	case Source:
		if it.Category == nil {
			return nil
		}
		return it.Category.Forms()
	case Primary:
		return nonEmpty(it.Primary)
	case Secondary:
		return nonEmpty(it.Secondary)
	}
	return nil
}

// Text returns the first candidate for lang.
func (it Item) Text(lang Language) (string, bool) {
	c := it.Candidates(lang)
	if len(c) == 0 {
		return "", false
	}
	return c[0], true
}

// Validate checks that the item has a category with at least one source form.
func (it Item) Validate() error {
	if it.Category == nil {
		return fmt.Errorf("%w: missing category", ErrInvalidItem)
	}
	if len(it.Category.Forms()) == 0 {
		return fmt.Errorf("%w: %s has no forms", ErrInvalidItem, it.Category.Kind())
	}
	return nil
}

func (it Item) String() string {
	src, _ := it.Text(Source)
	return fmt.Sprintf("#%d %s (%s)", it.UID, src, it.Mask().kindName())
}

func (m Mask) kindName() string {
	for _, k := range Kinds() {
		if m == k.Mask() {
			return k.String()
		}
	}
	return m.String()
}
