package explain

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/japaniel/lexis/pkg/lexicon"
)

// DefaultCacheSize is the number of distinct tokens whose matches are cached.
const DefaultCacheSize = 4096

// Part is one explained token.
type Part struct {
	Token Token
	// Matches are the lexicon entries tied at the best distance.
	Matches []lexicon.Match
	// Chosen indexes Matches. It starts at 0.
	Chosen int
	// Sure is set when the best match was exact.
	Sure bool
}

// Matched reports whether any lexicon entry matched the token.
func (p *Part) Matched() bool { return len(p.Matches) > 0 }

// Ambiguous reports whether several entries tie and the user should pick one.
func (p *Part) Ambiguous() bool { return len(p.Matches) > 1 }

// Selected returns the chosen match.
func (p *Part) Selected() (lexicon.Match, bool) {
	if p.Chosen < 0 || p.Chosen >= len(p.Matches) {
		return lexicon.Match{}, false
	}
	return p.Matches[p.Chosen], true
}

// Choose selects the i-th tied match.
func (p *Part) Choose(i int) error {
	if i < 0 || i >= len(p.Matches) {
		return fmt.Errorf("choose %d of %d matches: %w", i, len(p.Matches), lexicon.ErrIndexOutOfRange)
	}
	p.Chosen = i
	return nil
}

// Confirm keeps only the chosen match.
func (p *Part) Confirm() {
	m, ok := p.Selected()
	if !ok {
		return
	}
	p.Matches = []lexicon.Match{m}
	p.Chosen = 0
}

// Gloss returns the chosen entry's translation in lang, falling back to the
// matched source form for untranslated entries. It is empty when nothing matched.
func (p *Part) Gloss(lang lexicon.Language) string {
	m, ok := p.Selected()
	if !ok {
		return ""
	}
	if text, ok := m.Item.Text(lang); ok && lang != lexicon.Source {
		return text
	}
	return m.Text
}

type cacheKey struct {
	text   string
	elided bool
}

type cached struct {
	matches  []lexicon.Match
	distance int
}

// Explainer glosses free text word by word against a lexicon.
type Explainer struct {
	lex        *lexicon.Lexicon
	seg        Segmenter
	cache      *lru.Cache[cacheKey, cached]
	generation uint64
	logger     *slog.Logger
}

// New returns an explainer over lex. cacheSize <= 0 uses DefaultCacheSize; a nil logger discards output.
func New(lex *lexicon.Lexicon, seg Segmenter, cacheSize int, logger *slog.Logger) (*Explainer, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, cached](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create explain cache: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Explainer{lex: lex, seg: seg, cache: cache, generation: lex.Generation(), logger: logger}, nil
}

// Explain segments text and looks each token up among the source-language forms
// of every category. Elided tokens only match candidates of the same length.
func (e *Explainer) Explain(text string) []Part {
	if g := e.lex.Generation(); g != e.generation {
		e.cache.Purge()
		e.generation = g
	}
	tokens := e.seg.Segment(text)
	parts := make([]Part, 0, len(tokens))
	for _, tok := range tokens {
		res := e.lookup(tok)
		parts = append(parts, Part{
			Token:   tok,
			Matches: slices.Clone(res.matches),
			Sure:    res.distance == 0,
		})
	}
	e.logger.Debug("text explained", "tokens", len(parts))
	return parts
}

func (e *Explainer) lookup(tok Token) cached {
	key := cacheKey{text: tok.Text, elided: tok.Elided}
	if c, ok := e.cache.Get(key); ok {
		return c
	}
	matches, d := e.lex.BestMatches(lexicon.Query{
		Text:        tok.Text,
		Language:    lexicon.Source,
		Mask:        lexicon.MaskAll,
		ExactLength: tok.Elided,
	})
	c := cached{matches: matches, distance: d}
	e.cache.Add(key, c)
	return c
}
