package practice

import (
	"fmt"
	"math/rand"

	"github.com/japaniel/lexis/pkg/lexicon"
)

// Languages holds the display names used in prompts.
type Languages struct {
	Source    string
	Primary   string
	Secondary string
}

// DefaultLanguages are the names used when none are configured.
var DefaultLanguages = Languages{Source: "french", Primary: "swedish", Secondary: "english"}

// Name returns the display name of lang.
func (l Languages) Name(lang lexicon.Language) string {
	switch lang {
	case lexicon.Primary:
		return l.Primary
	case lexicon.Secondary:
		return l.Secondary
	}
	return l.Source
}

// Question is a rendered prompt with its expected answer.
type Question struct {
	Template Template
	Prompt   string
	Answer   string
	// Language is the language the answer is expected in.
	Language lexicon.Language
	Item     lexicon.Item
}

// Generate renders a question about it. The direction is chosen at random between
// the source language and the item's translation, preferring Primary over Secondary.
// Multi-form categories ask for a randomly chosen form and name it in the prompt.
func Generate(it lexicon.Item, names Languages, rng *rand.Rand) (Question, error) {
	target := lexicon.Primary
	translation := it.Primary
	if translation == "" {
		target, translation = lexicon.Secondary, it.Secondary
	}
	if translation == "" {
		return Question{}, fmt.Errorf("item %d: %w", it.UID, ErrUntranslated)
	}
	if it.Category == nil {
		return Question{}, fmt.Errorf("item %d: %w", it.UID, lexicon.ErrInvalidItem)
	}

	form, label := pickForm(it.Category, rng)
	if form == "" {
		return Question{}, fmt.Errorf("item %d: %w", it.UID, lexicon.ErrInvalidItem)
	}

	q := Question{Item: it}
	if rng.Intn(2) == 0 {
		q.Language = lexicon.Source
		q.Answer = form
		lang := names.Name(lexicon.Source)
		switch {
		case isAdjective(it.Category):
			q.Prompt = fmt.Sprintf("What is '%s' in %s (masculine)?", translation, lang)
		case label != "":
			q.Prompt = fmt.Sprintf("What is the %s form of '%s' in %s?", label, translation, lang)
		default:
			q.Prompt = fmt.Sprintf("What is '%s' in %s?", translation, lang)
		}
		return q, nil
	}

	q.Language = target
	q.Answer = translation
	lang := names.Name(target)
	if label != "" {
		q.Prompt = fmt.Sprintf("What is '%s' (%s) in %s?", form, label, lang)
	} else {
		q.Prompt = fmt.Sprintf("What is '%s' in %s?", form, lang)
	}
	return q, nil
}

type labelled struct {
	form, label string
}

// pickForm chooses the source-language form a question is about, and the name of
// that form when the category has several.
func pickForm(c lexicon.Category, rng *rand.Rand) (string, string) {
	var options []labelled
	switch v := c.(type) {
	case lexicon.Noun:
		options = []labelled{{v.Singular, "singular"}, {v.Plural, "plural"}}
	case lexicon.Verb:
		for _, p := range lexicon.Persons() {
			options = append(options, labelled{v.Table.Present[p], p.Label()})
		}
		if !hasForm(options) {
			return v.Name, ""
		}
	case lexicon.Article:
		options = []labelled{{v.Masculine, "masculine"}, {v.Feminine, "feminine"}, {v.Plural, "plural"}}
	case lexicon.Number:
		options = []labelled{{v.Cardinal, "cardinal"}, {v.Ordinal, "ordinal"}}
	case lexicon.Adjective:
		return v.Base(), ""
	case lexicon.Pronoun:
		return v.Base(), ""
	case lexicon.Adverb, lexicon.Conjunction, lexicon.Interjection, lexicon.Preposition, lexicon.Other:
		forms := v.Forms()
		if len(forms) == 0 {
			return "", ""
		}
		return forms[0], ""
	}

	var usable []labelled
	for _, o := range options {
		if o.form != "" {
			usable = append(usable, o)
		}
	}
	switch len(usable) {
	case 0:
		return "", ""
	case 1:
		return usable[0].form, ""
	}
	o := usable[rng.Intn(len(usable))]
	return o.form, o.label
}

func hasForm(options []labelled) bool {
	for _, o := range options {
		if o.form != "" {
			return true
		}
	}
	return false
}

func isAdjective(c lexicon.Category) bool {
	_, ok := c.(lexicon.Adjective)
	return ok
}
