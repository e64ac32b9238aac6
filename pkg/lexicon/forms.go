package lexicon

import "strings"

// Plural derives the usual plural of a noun or adjective: -al/-au/-ail become
// -aux, -eu/-ou take -x, words ending in s, x or z are unchanged, and the rest take -s.
func Plural(s string) string {
	switch {
	case strings.HasSuffix(s, "al"), strings.HasSuffix(s, "au"):
		return s[:len(s)-2] + "aux"
	case strings.HasSuffix(s, "ail"):
		return s[:len(s)-3] + "aux"
	case strings.HasSuffix(s, "eu"), strings.HasSuffix(s, "ou"):
		return s + "x"
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"), strings.HasSuffix(s, "z"):
		return s
	}
	return s + "s"
}

// NumberForms derives the ordinal and approximate forms of a cardinal,
// e.g. "douze" gives "douzième" and "douzaine", "dix" gives "dixième" and "dizaine".
func NumberForms(cardinal string) (ordinal, approximate string) {
	stem := strings.TrimSuffix(cardinal, "e")
	ordinal = stem + "ième"
	switch {
	case strings.HasSuffix(cardinal, "e"):
		approximate = stem + "aine"
	case strings.HasSuffix(cardinal, "x"):
		approximate = cardinal[:len(cardinal)-1] + "zaine"
	default:
		approximate = cardinal + "aine"
	}
	return ordinal, approximate
}

// NewNumber fills the ordinal and approximate forms of a cardinal.
func NewNumber(cardinal string) Number {
	ord, approx := NumberForms(cardinal)
	return Number{Cardinal: cardinal, Ordinal: ord, Approximate: approx}
}

// Describe renders a one-line summary of a category for listings.
func Describe(c Category) string {
	switch v := c.(type) {
	case Noun:
		return v.Singular + " / " + v.Plural + " (" + v.Gender.String() + ", " + v.Class.String() + ")"
	case Verb:
		return v.Name + " (" + strings.Join(nonEmpty(v.Table.Present[:]...), ", ") + ")"
	case Adjective:
		return strings.Join(v.Forms(), ", ")
	case Article:
		return strings.Join(v.Forms(), ", ")
	case NegativePronoun:
		return "ne ... " + v.Text
	case Pronoun:
		return strings.Join(v.Forms(), ", ")
	case Number:
		return v.Cardinal + " / " + v.Ordinal
	case Adverb, Conjunction, Interjection, Preposition, Other:
		return strings.Join(v.Forms(), "")
	}
	return ""
}
