package lexicon

import (
	"fmt"
	"strings"
)

// Kind identifies the grammatical class of a Category. Every kind owns one bit of a Mask.
type Kind uint8

const (
	KindNoun Kind = iota
	KindVerb
	KindAdjective
	KindAdverb
	KindArticle
	KindConjunction
	KindInterjection
	KindPreposition
	KindPronoun
	KindNumber
	KindOther
)

var kindNames = [...]string{
	KindNoun:         "noun",
	KindVerb:         "verb",
	KindAdjective:    "adjective",
	KindAdverb:       "adverb",
	KindArticle:      "article",
	KindConjunction:  "conjunction",
	KindInterjection: "interjection",
	KindPreposition:  "preposition",
	KindPronoun:      "pronoun",
	KindNumber:       "number",
	KindOther:        "other",
}

// Kinds lists every kind in bit order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Mask returns the single-bit mask owned by k.
func (k Kind) Mask() Mask { return 1 << k }

// ParseKind parses a kind name such as "verb". "sentence" is accepted for KindOther.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "sentence" {
		return KindOther, nil
	}
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Category is the closed set of grammatical variants an Item can carry.
// The set is sealed: only types in this package implement it.
type Category interface {
	// Kind reports the variant's grammatical class.
	Kind() Kind
	// Forms lists the non-empty source-language surface strings used for matching.
	Forms() []string
	tag() string
}

// Gender of a noun.
type Gender uint8

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Female {
		return "f"
	}
	return "m"
}

type Countability uint8

const (
	Countable Countability = iota
	Uncountable
)

type Concreteness uint8

const (
	Concrete Concreteness = iota
	Abstract
)

type Properness uint8

const (
	Common Properness = iota
	Proper
)

// NounClass is the semantic class of a noun.
type NounClass uint8

const (
	Object NounClass = iota
	Place
	Being
	Concept
)

var nounClassNames = [...]string{"object", "place", "being", "concept"}

func (c NounClass) String() string {
	if int(c) < len(nounClassNames) {
		return nounClassNames[c]
	}
	return fmt.Sprintf("class(%d)", c)
}

type Noun struct {
	Singular     string       `json:"singular"`
	Plural       string       `json:"plural"`
	Gender       Gender       `json:"gender"`
	Countability Countability `json:"countability"`
	Concreteness Concreteness `json:"concreteness"`
	Properness   Properness   `json:"properness"`
	Class        NounClass    `json:"class"`
}

func (Noun) Kind() Kind        { return KindNoun }
func (n Noun) Forms() []string { return nonEmpty(n.Singular, n.Plural) }
func (Noun) tag() string       { return "noun" }

// Person indexes the six conjugated persons.
type Person uint8

const (
	FirstSingular Person = iota
	SecondSingular
	ThirdSingular
	FirstPlural
	SecondPlural
	ThirdPlural
)

var personLabels = [...]string{"je", "tu", "il/elle/on", "nous", "vous", "ils/elles"}

// Persons lists the six persons in conjugation-table order.
func Persons() []Person {
	return []Person{FirstSingular, SecondSingular, ThirdSingular, FirstPlural, SecondPlural, ThirdPlural}
}

// Label is the subject pronoun heading the person's row, e.g. "il/elle/on".
func (p Person) Label() string {
	if int(p) < len(personLabels) {
		return personLabels[p]
	}
	return fmt.Sprintf("person(%d)", p)
}

// PersonOf maps a subject pronoun to its person.
func PersonOf(subject string) (Person, bool) {
	switch strings.ToLower(subject) {
	case "je", "j'":
		return FirstSingular, true
	case "tu":
		return SecondSingular, true
	case "il", "elle", "on":
		return ThirdSingular, true
	case "nous":
		return FirstPlural, true
	case "vous":
		return SecondPlural, true
	case "ils", "elles":
		return ThirdPlural, true
	}
	return 0, false
}

// Conjugation tells whether a verb's forms follow the regular rules.
type Conjugation uint8

const (
	Regular Conjugation = iota
	Irregular
)

// VerbForms holds the thirteen principal forms of a verb.
type VerbForms struct {
	Conjugation Conjugation `json:"conjugation"`
	Present     [6]string   `json:"present"`
	Compound    string      `json:"compound"`
	Imperfect   [6]string   `json:"imperfect"`
}

type Verb struct {
	Name  string    `json:"name"`
	Table VerbForms `json:"forms"`
}

func (Verb) Kind() Kind { return KindVerb }

// Forms returns the infinitive followed by the present, passé composé and imperfect forms.
func (v Verb) Forms() []string {
	all := make([]string, 0, 14)
	all = append(all, v.Name)
	all = append(all, v.Table.Present[:]...)
	all = append(all, v.Table.Compound)
	all = append(all, v.Table.Imperfect[:]...)
	return nonEmpty(all...)
}

func (Verb) tag() string { return "verb" }

// Gendered holds singular and plural forms for both genders.
type Gendered struct {
	Masculine       string `json:"masculine"`
	Feminine        string `json:"feminine"`
	PluralMasculine string `json:"plural_masculine"`
	PluralFeminine  string `json:"plural_feminine"`
}

func (g Gendered) forms() []string {
	return nonEmpty(g.Masculine, g.Feminine, g.PluralMasculine, g.PluralFeminine)
}

// Adjective is implemented by the adjective sub-kinds.
type Adjective interface {
	Category
	// Base is the masculine singular form.
	Base() string
	adjective()
}

type DescriptiveAdjective Gendered
type IndefiniteAdjective Gendered
type ExclamativeAdjective Gendered
type PastParticipleAdjective Gendered
type PresentParticipleAdjective Gendered
type RelativeAdjective Gendered

// NegativeAdjective has no plural, e.g. "aucun".
type NegativeAdjective struct {
	Masculine string `json:"masculine"`
	Feminine  string `json:"feminine"`
}

// PossessiveAdjective shares one plural across genders, e.g. "mon, ma, mes".
type PossessiveAdjective struct {
	Masculine string `json:"masculine"`
	Feminine  string `json:"feminine"`
	Plural    string `json:"plural"`
}

// DemonstrativeAdjective adds the masculine form used before a vowel, e.g. "cet".
type DemonstrativeAdjective struct {
	Masculine      string `json:"masculine"`
	MasculineVowel string `json:"masculine_vowel"`
	Feminine       string `json:"feminine"`
	Plural         string `json:"plural"`
}

func (DescriptiveAdjective) Kind() Kind       { return KindAdjective }
func (IndefiniteAdjective) Kind() Kind        { return KindAdjective }
func (ExclamativeAdjective) Kind() Kind       { return KindAdjective }
func (PastParticipleAdjective) Kind() Kind    { return KindAdjective }
func (PresentParticipleAdjective) Kind() Kind { return KindAdjective }
func (RelativeAdjective) Kind() Kind          { return KindAdjective }
func (NegativeAdjective) Kind() Kind          { return KindAdjective }
func (PossessiveAdjective) Kind() Kind        { return KindAdjective }
func (DemonstrativeAdjective) Kind() Kind     { return KindAdjective }

func (a DescriptiveAdjective) Forms() []string       { return Gendered(a).forms() }
func (a IndefiniteAdjective) Forms() []string        { return Gendered(a).forms() }
func (a ExclamativeAdjective) Forms() []string       { return Gendered(a).forms() }
func (a PastParticipleAdjective) Forms() []string    { return Gendered(a).forms() }
func (a PresentParticipleAdjective) Forms() []string { return Gendered(a).forms() }
func (a RelativeAdjective) Forms() []string          { return Gendered(a).forms() }
func (a NegativeAdjective) Forms() []string          { return nonEmpty(a.Masculine, a.Feminine) }
func (a PossessiveAdjective) Forms() []string {
	return nonEmpty(a.Masculine, a.Feminine, a.Plural)
}
func (a DemonstrativeAdjective) Forms() []string {
	return nonEmpty(a.Masculine, a.MasculineVowel, a.Feminine, a.Plural)
}

func (a DescriptiveAdjective) Base() string       { return a.Masculine }
func (a IndefiniteAdjective) Base() string        { return a.Masculine }
func (a ExclamativeAdjective) Base() string       { return a.Masculine }
func (a PastParticipleAdjective) Base() string    { return a.Masculine }
func (a PresentParticipleAdjective) Base() string { return a.Masculine }
func (a RelativeAdjective) Base() string          { return a.Masculine }
func (a NegativeAdjective) Base() string          { return a.Masculine }
func (a PossessiveAdjective) Base() string        { return a.Masculine }
func (a DemonstrativeAdjective) Base() string     { return a.Masculine }

func (DescriptiveAdjective) tag() string       { return "adjective.descriptive" }
func (IndefiniteAdjective) tag() string        { return "adjective.indefinite" }
func (ExclamativeAdjective) tag() string       { return "adjective.exclamative" }
func (PastParticipleAdjective) tag() string    { return "adjective.past_participle" }
func (PresentParticipleAdjective) tag() string { return "adjective.present_participle" }
func (RelativeAdjective) tag() string          { return "adjective.relative" }
func (NegativeAdjective) tag() string          { return "adjective.negative" }
func (PossessiveAdjective) tag() string        { return "adjective.possessive" }
func (DemonstrativeAdjective) tag() string     { return "adjective.demonstrative" }

func (DescriptiveAdjective) adjective()       {}
func (IndefiniteAdjective) adjective()        {}
func (ExclamativeAdjective) adjective()       {}
func (PastParticipleAdjective) adjective()    {}
func (PresentParticipleAdjective) adjective() {}
func (RelativeAdjective) adjective()          {}
func (NegativeAdjective) adjective()          {}
func (PossessiveAdjective) adjective()        {}
func (DemonstrativeAdjective) adjective()     {}

type Adverb struct {
	Text string `json:"text"`
}

type Conjunction struct {
	Text string `json:"text"`
}

type Interjection struct {
	Text string `json:"text"`
}

type Preposition struct {
	Text string `json:"text"`
}

// Other carries free text. Sentences are stored as Other.
type Other struct {
	Text string `json:"text"`
}

func (Adverb) Kind() Kind       { return KindAdverb }
func (Conjunction) Kind() Kind  { return KindConjunction }
func (Interjection) Kind() Kind { return KindInterjection }
func (Preposition) Kind() Kind  { return KindPreposition }
func (Other) Kind() Kind        { return KindOther }

func (a Adverb) Forms() []string       { return nonEmpty(a.Text) }
func (c Conjunction) Forms() []string  { return nonEmpty(c.Text) }
func (i Interjection) Forms() []string { return nonEmpty(i.Text) }
func (p Preposition) Forms() []string  { return nonEmpty(p.Text) }
func (o Other) Forms() []string        { return nonEmpty(o.Text) }

func (Adverb) tag() string       { return "adverb" }
func (Conjunction) tag() string  { return "conjunction" }
func (Interjection) tag() string { return "interjection" }
func (Preposition) tag() string  { return "preposition" }
func (Other) tag() string        { return "other" }

type Article struct {
	Masculine string `json:"masculine"`
	Feminine  string `json:"feminine"`
	Plural    string `json:"plural"`
	// Elided is the form used before a vowel, e.g. "l'". Empty when the article does not elide.
	Elided string `json:"elided,omitempty"`
}

func (Article) Kind() Kind        { return KindArticle }
func (a Article) Forms() []string { return nonEmpty(a.Masculine, a.Feminine, a.Plural, a.Elided) }
func (Article) tag() string       { return "article" }

// Pronoun is implemented by the pronoun sub-kinds.
type Pronoun interface {
	Category
	// Base is the form a pronoun is usually quoted by.
	Base() string
	pronoun()
}

type AdverbialPronoun struct {
	Text string `json:"text"`
}

type ImpersonalPronoun struct {
	Text string `json:"text"`
}

type IndefiniteDemonstrativePronoun struct {
	Text string `json:"text"`
}

type IndefiniteRelativePronoun struct {
	Text string `json:"text"`
}

type InterrogativePronoun struct {
	Text string `json:"text"`
}

// NegativePronoun is used with "ne", e.g. "ne ... personne".
type NegativePronoun struct {
	Text string `json:"text"`
}

type DemonstrativePronoun Gendered
type PossessivePronoun Gendered

type IndefinitePronoun struct {
	Masculine string `json:"masculine"`
	Feminine  string `json:"feminine,omitempty"`
}

// ObjectPronouns are the direct and indirect object forms of a personal pronoun.
type ObjectPronouns struct {
	Direct   string `json:"direct"`
	Indirect string `json:"indirect"`
}

type PersonalPronoun struct {
	Subject   string `json:"subject"`
	Reflexive string `json:"reflexive"`
	Stressed  string `json:"stressed"`
	// Object is the zero value for pronouns without object forms.
	Object ObjectPronouns `json:"object"`
}

// RelativeInflections holds the bendable forms of a relative pronoun such as "lequel".
type RelativeInflections struct {
	Feminine        string `json:"feminine"`
	PluralMasculine string `json:"plural_masculine"`
	PluralFeminine  string `json:"plural_feminine"`
}

type RelativePronoun struct {
	Text string `json:"text"`
	// Inflections is the zero value for invariable pronouns such as "qui".
	Inflections RelativeInflections `json:"inflections"`
}

func (AdverbialPronoun) Kind() Kind               { return KindPronoun }
func (ImpersonalPronoun) Kind() Kind              { return KindPronoun }
func (IndefiniteDemonstrativePronoun) Kind() Kind { return KindPronoun }
func (IndefiniteRelativePronoun) Kind() Kind      { return KindPronoun }
func (InterrogativePronoun) Kind() Kind           { return KindPronoun }
func (NegativePronoun) Kind() Kind                { return KindPronoun }
func (DemonstrativePronoun) Kind() Kind           { return KindPronoun }
func (PossessivePronoun) Kind() Kind              { return KindPronoun }
func (IndefinitePronoun) Kind() Kind              { return KindPronoun }
func (PersonalPronoun) Kind() Kind                { return KindPronoun }
func (RelativePronoun) Kind() Kind                { return KindPronoun }

func (p AdverbialPronoun) Forms() []string               { return nonEmpty(p.Text) }
func (p ImpersonalPronoun) Forms() []string              { return nonEmpty(p.Text) }
func (p IndefiniteDemonstrativePronoun) Forms() []string { return nonEmpty(p.Text) }
func (p IndefiniteRelativePronoun) Forms() []string      { return nonEmpty(p.Text) }
func (p InterrogativePronoun) Forms() []string           { return nonEmpty(p.Text) }
func (p NegativePronoun) Forms() []string                { return nonEmpty(p.Text) }
func (p DemonstrativePronoun) Forms() []string           { return Gendered(p).forms() }
func (p PossessivePronoun) Forms() []string              { return Gendered(p).forms() }
func (p IndefinitePronoun) Forms() []string              { return nonEmpty(p.Masculine, p.Feminine) }
func (p PersonalPronoun) Forms() []string {
	return nonEmpty(p.Subject, p.Reflexive, p.Stressed, p.Object.Direct, p.Object.Indirect)
}
func (p RelativePronoun) Forms() []string {
	return nonEmpty(p.Text, p.Inflections.Feminine, p.Inflections.PluralMasculine, p.Inflections.PluralFeminine)
}

func (p AdverbialPronoun) Base() string               { return p.Text }
func (p ImpersonalPronoun) Base() string              { return p.Text }
func (p IndefiniteDemonstrativePronoun) Base() string { return p.Text }
func (p IndefiniteRelativePronoun) Base() string      { return p.Text }
func (p InterrogativePronoun) Base() string           { return p.Text }
func (p NegativePronoun) Base() string                { return p.Text }
func (p DemonstrativePronoun) Base() string           { return p.Masculine }
func (p PossessivePronoun) Base() string              { return p.Masculine }
func (p IndefinitePronoun) Base() string              { return p.Masculine }
func (p PersonalPronoun) Base() string                { return p.Subject }
func (p RelativePronoun) Base() string                { return p.Text }

func (AdverbialPronoun) tag() string               { return "pronoun.adverbial" }
func (ImpersonalPronoun) tag() string              { return "pronoun.impersonal" }
func (IndefiniteDemonstrativePronoun) tag() string { return "pronoun.indefinite_demonstrative" }
func (IndefiniteRelativePronoun) tag() string      { return "pronoun.indefinite_relative" }
func (InterrogativePronoun) tag() string           { return "pronoun.interrogative" }
func (NegativePronoun) tag() string                { return "pronoun.negative" }
func (DemonstrativePronoun) tag() string           { return "pronoun.demonstrative" }
func (PossessivePronoun) tag() string              { return "pronoun.possessive" }
func (IndefinitePronoun) tag() string              { return "pronoun.indefinite" }
func (PersonalPronoun) tag() string                { return "pronoun.personal" }
func (RelativePronoun) tag() string                { return "pronoun.relative" }

func (AdverbialPronoun) pronoun()               {}
func (ImpersonalPronoun) pronoun()              {}
func (IndefiniteDemonstrativePronoun) pronoun() {}
func (IndefiniteRelativePronoun) pronoun()      {}
func (InterrogativePronoun) pronoun()           {}
func (NegativePronoun) pronoun()                {}
func (DemonstrativePronoun) pronoun()           {}
func (PossessivePronoun) pronoun()              {}
func (IndefinitePronoun) pronoun()              {}
func (PersonalPronoun) pronoun()                {}
func (RelativePronoun) pronoun()                {}

// Number carries the cardinal and derived forms of a numeral. Optional forms are empty when absent.
type Number struct {
	Cardinal         string `json:"cardinal"`
	CardinalFeminine string `json:"cardinal_feminine,omitempty"`
	Ordinal          string `json:"ordinal"`
	OrdinalFeminine  string `json:"ordinal_feminine,omitempty"`
	Multiplicative   string `json:"multiplicative,omitempty"`
	Approximate      string `json:"approximate,omitempty"`
	Fraction         string `json:"fraction,omitempty"`
	FractionAlt      string `json:"fraction_alt,omitempty"`
}

func (Number) Kind() Kind { return KindNumber }
func (n Number) Forms() []string {
	return nonEmpty(n.Cardinal, n.CardinalFeminine, n.Ordinal, n.OrdinalFeminine,
		n.Multiplicative, n.Approximate, n.Fraction, n.FractionAlt)
}
func (Number) tag() string { return "number" }

func nonEmpty(ss ...string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
