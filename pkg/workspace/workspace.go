// Package workspace owns the word and sentence lexicons and the practice groups
// that reference them.
package workspace

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/japaniel/lexis/pkg/db"
	"github.com/japaniel/lexis/pkg/explain"
	"github.com/japaniel/lexis/pkg/lexicon"
	"github.com/japaniel/lexis/pkg/practice"
	"golang.org/x/text/language"
)

// Paths locates the three snapshot files.
type Paths struct {
	Words     string
	Sentences string
	Groups    string
}

// Workspace is the single owner of the stores. It is not safe for concurrent use.
type Workspace struct {
	Words     *lexicon.Lexicon
	Sentences *lexicon.Lexicon
	Groups    *practice.Collection

	logger *slog.Logger
}

// Open loads the three snapshots, starting empty for any that is missing or unreadable.
func Open(paths Paths, logger *slog.Logger) *Workspace {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	words := &db.LexiconFile{Path: paths.Words, Logger: logger.With("store", "words")}
	sentences := &db.LexiconFile{Path: paths.Sentences, Logger: logger.With("store", "sentences")}
	groups := &db.GroupFile{Path: paths.Groups, Logger: logger.With("store", "groups")}
	return &Workspace{
		Words:     words.LoadOrNew(lexicon.WithLogger(logger.With("store", "words"))),
		Sentences: sentences.LoadOrNew(lexicon.WithLogger(logger.With("store", "sentences"))),
		Groups:    groups.LoadOrNew(),
		logger:    logger,
	}
}

// Lexicon returns the store a template source refers to.
func (w *Workspace) Lexicon(src practice.Source) *lexicon.Lexicon {
	if src == practice.Sentence {
		return w.Sentences
	}
	return w.Words
}

// Resolve looks up the item a template refers to.
func (w *Workspace) Resolve(t practice.Template) (lexicon.Item, error) {
	it, ok := w.Lexicon(t.Source).Item(t.UID)
	if !ok {
		return lexicon.Item{}, fmt.Errorf("%s: %w", t, lexicon.ErrNotFound)
	}
	return it, nil
}

// NewSession starts practising the group at index i.
func (w *Workspace) NewSession(i int, opts ...practice.Option) (*practice.Session, error) {
	g, err := w.Groups.Group(i)
	if err != nil {
		return nil, err
	}
	opts = append([]practice.Option{practice.WithLogger(w.logger)}, opts...)
	return practice.NewSession(g, w.Words, w.Sentences, opts...)
}

// NewExplainer returns an explainer over the word lexicon using the named
// segmenter, "latin" or "kagome".
func (w *Workspace) NewExplainer(segmenter string, cacheSize int) (*explain.Explainer, error) {
	var seg explain.Segmenter
	switch strings.ToLower(segmenter) {
	case "", "latin":
		seg = explain.NewLatinSegmenter(language.French)
	case "kagome":
		k, err := explain.NewKagomeSegmenter()
		if err != nil {
			return nil, err
		}
		seg = k
	default:
		return nil, fmt.Errorf("unknown segmenter %q", segmenter)
	}
	return explain.New(w.Words, seg, cacheSize, w.logger)
}

// Renumber compacts the uids of both lexicons and rewrites every group reference.
// When any of the three saves fails the stores that were already rewritten are
// restored, so uids and references stay consistent.
func (w *Workspace) Renumber() error {
	prevWords := w.Words.Snapshot()
	prevSentences := w.Sentences.Snapshot()

	wordMap, err := w.Words.Renumber()
	if err != nil {
		return fmt.Errorf("renumber words: %w", err)
	}
	sentenceMap, err := w.Sentences.Renumber()
	if err != nil {
		w.restore(w.Words, prevWords, "words")
		return fmt.Errorf("renumber sentences: %w", err)
	}
	if err := w.Groups.Remap(wordMap, sentenceMap); err != nil {
		w.restore(w.Words, prevWords, "words")
		w.restore(w.Sentences, prevSentences, "sentences")
		return fmt.Errorf("remap groups: %w", err)
	}
	w.logger.Info("workspace renumbered", "words", w.Words.Len(), "sentences", w.Sentences.Len())
	return nil
}

func (w *Workspace) restore(l *lexicon.Lexicon, s lexicon.Snapshot, name string) {
	if err := l.Restore(s); err != nil {
		w.logger.Error("restoring lexicon after failed renumber", "store", name, "error", err)
	}
}
