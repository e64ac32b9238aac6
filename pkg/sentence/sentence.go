package sentence

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/japaniel/lexis/pkg/lexicon"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrUnsupportedSubject is returned when the subject is not a personal pronoun with a known person.
	ErrUnsupportedSubject = errors.New("subject must be a personal pronoun")

	// ErrUnsupportedVerb is returned when the verb item is not a verb or lacks the needed forms.
	ErrUnsupportedVerb = errors.New("verb has no form for the subject")
)

// Word is one word of a generated sentence with the entry it came from.
type Word struct {
	Text string
	Item lexicon.Item
}

// Generate builds a short sentence from a personal pronoun subject and a verb
// conjugated for it, in the present or imperfect at random. A nil subject or verb
// is sampled from words. The first word is capitalised and the last ends with ".".
func Generate(words *lexicon.Lexicon, subject, verb *lexicon.Item, rng *rand.Rand) ([]Word, error) {
	if subject == nil {
		it, err := randomSubject(words, rng)
		if err != nil {
			return nil, err
		}
		subject = &it
	}
	if verb == nil {
		it, err := words.RandomItem(lexicon.Query{Mask: lexicon.KindVerb.Mask()}, rng)
		if err != nil {
			return nil, fmt.Errorf("pick verb: %w", err)
		}
		verb = &it
	}

	pronoun, ok := subject.Category.(lexicon.PersonalPronoun)
	if !ok {
		return nil, fmt.Errorf("%s: %w", subject, ErrUnsupportedSubject)
	}
	person, ok := lexicon.PersonOf(pronoun.Subject)
	if !ok {
		return nil, fmt.Errorf("%q: %w", pronoun.Subject, ErrUnsupportedSubject)
	}
	v, ok := verb.Category.(lexicon.Verb)
	if !ok {
		return nil, fmt.Errorf("%s: %w", verb, ErrUnsupportedVerb)
	}
	forms := nonEmpty(v.Table.Present[person], v.Table.Imperfect[person])
	if len(forms) == 0 {
		return nil, fmt.Errorf("%s (%s): %w", v.Name, person.Label(), ErrUnsupportedVerb)
	}
	form := forms[rng.Intn(len(forms))]

	subjectText := pronoun.Subject
	if person == lexicon.FirstSingular && startsWithVowelSound(form) {
		subjectText = "j'"
	}

	sentence := []Word{
		{Text: subjectText, Item: *subject},
		{Text: form, Item: *verb},
	}
	sentence[0].Text = cases.Title(language.French, cases.NoLower).String(sentence[0].Text)
	sentence[len(sentence)-1].Text += "."
	return sentence, nil
}

// String joins words with spaces, except after an elided word.
func String(words []Word) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 && !strings.HasSuffix(words[i-1].Text, "'") {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
	}
	return b.String()
}

func randomSubject(words *lexicon.Lexicon, rng *rand.Rand) (lexicon.Item, error) {
	var pool []lexicon.Item
	for _, m := range words.All(lexicon.Query{Mask: lexicon.KindPronoun.Mask()}, words.Len()) {
		p, ok := m.Item.Category.(lexicon.PersonalPronoun)
		if !ok {
			continue
		}
		if _, ok := lexicon.PersonOf(p.Subject); ok {
			pool = append(pool, m.Item)
		}
	}
	if len(pool) == 0 {
		return lexicon.Item{}, fmt.Errorf("pick subject: %w", lexicon.ErrEmptyResultSet)
	}
	return pool[rng.Intn(len(pool))], nil
}

func startsWithVowelSound(s string) bool {
	r, _ := utf8.DecodeRuneInString(strings.ToLower(s))
	return strings.ContainsRune("aâàeéèêëiîïoôuùûüyh", r)
}

func nonEmpty(ss ...string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
