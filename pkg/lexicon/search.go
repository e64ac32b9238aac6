package lexicon

import (
	"math"
	"math/rand"
	"slices"
	"sort"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// MaxDistanceRatio bounds accepted matches: a candidate matches only when its edit
// distance is strictly below MaxDistanceRatio times its rune length.
const MaxDistanceRatio = 1.0

// NoMatch is the distance reported by BestMatches when nothing qualifies.
const NoMatch = math.MaxInt

// Query describes a lookup against a Lexicon.
type Query struct {
	Text     string
	Language Language
	// Mask restricts the kinds considered. Zero matches everything.
	Mask Mask
	// ExactLength drops candidates whose rune length differs from Text's.
	ExactLength bool
}

// Match pairs the candidate string that matched with its item.
type Match struct {
	Text     string
	Item     Item
	Distance int
}

type scorer struct {
	q    Query
	qLen int
}

func newScorer(q Query) scorer {
	return scorer{q: q, qLen: utf8.RuneCountInString(q.Text)}
}

// score returns the edit distance between the query and cand, and false when
// cand is filtered out by the length rules.
func (s scorer) score(cand string) (int, bool) {
	candLen := utf8.RuneCountInString(cand)
	if s.q.ExactLength && candLen != s.qLen {
		return 0, false
	}
	d := levenshtein.ComputeDistance(s.q.Text, cand)
	if float64(d) >= MaxDistanceRatio*float64(candLen) {
		return 0, false
	}
	return d, true
}

// Search returns at most n matches ordered by ascending edit distance. Ties keep
// store order and an item contributes each distinct qualifying candidate once.
func (l *Lexicon) Search(q Query, n int) []Match {
	if n <= 0 {
		return nil
	}
	s := newScorer(q)
	mask := q.Mask.Normalize()
	out := make([]Match, 0, n)
	for _, it := range l.items {
		if it.mask&mask == 0 {
			continue
		}
		for _, cand := range distinct(it.Candidates(q.Language)) {
			d, ok := s.score(cand)
			if !ok {
				continue
			}
			pos := sort.Search(len(out), func(i int) bool { return out[i].Distance > d })
			if pos >= n {
				continue
			}
			out = slices.Insert(out, pos, Match{Text: cand, Item: it, Distance: d})
			if len(out) > n {
				out = out[:n]
			}
		}
	}
	return out
}

// BestMatches returns every match tied at the smallest qualifying distance, and
// that distance. With no qualifying candidate it returns nil and NoMatch.
func (l *Lexicon) BestMatches(q Query) ([]Match, int) {
	s := newScorer(q)
	mask := q.Mask.Normalize()
	best := NoMatch
	var out []Match
	for _, it := range l.items {
		if it.mask&mask == 0 {
			continue
		}
		for _, cand := range distinct(it.Candidates(q.Language)) {
			d, ok := s.score(cand)
			if !ok || d > best {
				continue
			}
			if d < best {
				best = d
				out = out[:0]
			}
			out = append(out, Match{Text: cand, Item: it, Distance: d})
		}
	}
	return out, best
}

// All returns up to n items matching the mask in store order, each paired with its
// first candidate in the query language. Items untranslated in that language are
// skipped. Text is ignored.
func (l *Lexicon) All(q Query, n int) []Match {
	mask := q.Mask.Normalize()
	var out []Match
	for _, it := range l.items {
		if len(out) >= n {
			break
		}
		if it.mask&mask == 0 {
			continue
		}
		text, ok := it.Text(q.Language)
		if !ok {
			continue
		}
		out = append(out, Match{Text: text, Item: it})
	}
	return out
}

// Find browses with All when the query text is empty and ranks with Search otherwise.
func (l *Lexicon) Find(q Query, n int) []Match {
	if q.Text == "" {
		return l.All(q, n)
	}
	return l.Search(q, n)
}

// RandomItem samples uniformly among items matching the mask.
func (l *Lexicon) RandomItem(q Query, rng *rand.Rand) (Item, error) {
	mask := q.Mask.Normalize()
	var pool []int
	for i, it := range l.items {
		if it.mask&mask != 0 {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return Item{}, ErrEmptyResultSet
	}
	return l.items[pool[rng.Intn(len(pool))]], nil
}

// distinct drops repeated strings, keeping first occurrences in order.
func distinct(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
