package dictionary

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/japaniel/lexis/pkg/lexicon"
)

// Importer adds dictionary entries to a lexicon, skipping words it already holds.
type Importer struct {
	lex *lexicon.Lexicon
	// Target is the translation language the glosses are stored in.
	Target lexicon.Language
	// GlossLang is the jmdict gloss language to import, e.g. "eng".
	GlossLang string
	logger    *slog.Logger
	// index holds kind+form keys of every item already present.
	index map[string]bool
}

// NewImporter indexes the forms already present in lex. A nil logger discards output.
func NewImporter(lex *lexicon.Lexicon, target lexicon.Language, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	im := &Importer{lex: lex, Target: target, GlossLang: "eng", logger: logger, index: map[string]bool{}}
	for _, it := range lex.Items() {
		im.remember(it)
	}
	return im
}

func indexKey(kind lexicon.Kind, form string) string {
	return kind.String() + "\x00" + form
}

func (im *Importer) remember(it lexicon.Item) {
	for _, f := range it.Category.Forms() {
		im.index[indexKey(it.Category.Kind(), f)] = true
	}
}

func (im *Importer) known(it lexicon.Item) bool {
	for _, f := range it.Category.Forms() {
		if im.index[indexKey(it.Category.Kind(), f)] {
			return true
		}
	}
	return false
}

// ImportJMdict adds every entry whose headword is not yet present under the same
// kind. Each addition is persisted by the lexicon. It returns the number added.
func (im *Importer) ImportJMdict(entries []JMdictEntry) (int, error) {
	added := 0
	for _, e := range entries {
		it, ok := e.Item(im.Target, im.GlossLang)
		if !ok || im.known(it) {
			continue
		}
		stored, err := im.lex.Add(it)
		if err != nil {
			return added, fmt.Errorf("import entry %s: %w", e.Id, err)
		}
		im.remember(stored)
		added++
	}
	im.logger.Info("dictionary imported", "entries", len(entries), "added", added)
	return added, nil
}

// ImportItems adds items not yet present, assigning them fresh uids.
func (im *Importer) ImportItems(items []lexicon.Item) (int, error) {
	added := 0
	for _, it := range items {
		if it.Category == nil || im.known(it) {
			continue
		}
		stored, err := im.lex.Add(it)
		if err != nil {
			return added, fmt.Errorf("import item %d: %w", it.UID, err)
		}
		im.remember(stored)
		added++
	}
	im.logger.Info("items imported", "items", len(items), "added", added)
	return added, nil
}
