package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/japaniel/lexis/pkg/lexicon"
)

// JMdictEntry matches the structure of jmdict-simplified entries.
type JMdictEntry struct {
	Id    string          `json:"id"`
	Kanji []JMdictElement `json:"kanji"`
	Kana  []JMdictElement `json:"kana"`
	Sense []JMdictSense   `json:"sense"`
}

type JMdictElement struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

type JMdictSense struct {
	PartOfSpeech []string      `json:"partOfSpeech"`
	Gloss        []JMdictGloss `json:"gloss"`
}

type JMdictGloss struct {
	Text string `json:"text"`
	Lang string `json:"lang"` // defaults to 'eng' if missing
}

// LoadJMdictSimplified reads a JSON file, either { "words": [...] } or a bare array.
func LoadJMdictSimplified(path string) ([]JMdictEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapped struct {
		Words []JMdictEntry `json:"words"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapped); err == nil && len(wrapped.Words) > 0 {
		return wrapped.Words, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []JMdictEntry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary as object or array: %w", err)
	}
	return entries, nil
}

// Headword is the first kanji spelling, or the first kana spelling for kana-only words.
func (e JMdictEntry) Headword() string {
	if len(e.Kanji) > 0 {
		return e.Kanji[0].Text
	}
	if len(e.Kana) > 0 {
		return e.Kana[0].Text
	}
	return ""
}

// Gloss returns the first gloss in lang ("eng" when a gloss has no language).
func (e JMdictEntry) Gloss(lang string) string {
	for _, s := range e.Sense {
		for _, g := range s.Gloss {
			gl := g.Lang
			if gl == "" {
				gl = "eng"
			}
			if gl == lang && g.Text != "" {
				return g.Text
			}
		}
	}
	return ""
}

// Category maps the first sense's part of speech to a lexicon category holding the headword.
func (e JMdictEntry) Category() lexicon.Category {
	w := e.Headword()
	var pos string
	if len(e.Sense) > 0 && len(e.Sense[0].PartOfSpeech) > 0 {
		pos = e.Sense[0].PartOfSpeech[0]
	}
	switch {
	case pos == "n" || strings.HasPrefix(pos, "n-"):
		return lexicon.Noun{Singular: w}
	case strings.HasPrefix(pos, "v"):
		return lexicon.Verb{Name: w}
	case strings.HasPrefix(pos, "adj"):
		return lexicon.DescriptiveAdjective{Masculine: w}
	case strings.HasPrefix(pos, "adv"):
		return lexicon.Adverb{Text: w}
	case pos == "conj":
		return lexicon.Conjunction{Text: w}
	case pos == "int":
		return lexicon.Interjection{Text: w}
	case pos == "prt":
		return lexicon.Preposition{Text: w}
	case pos == "num":
		return lexicon.Number{Cardinal: w}
	}
	return lexicon.Other{Text: w}
}

// Item converts the entry to a lexicon item with its gloss as the translation in target.
func (e JMdictEntry) Item(target lexicon.Language, glossLang string) (lexicon.Item, bool) {
	if e.Headword() == "" {
		return lexicon.Item{}, false
	}
	gloss := e.Gloss(glossLang)
	switch target {
	case lexicon.Primary:
		return lexicon.NewItem(gloss, "", e.Category()), true
	case lexicon.Secondary:
		return lexicon.NewItem("", gloss, e.Category()), true
	}
	return lexicon.NewItem("", "", e.Category()), true
}
