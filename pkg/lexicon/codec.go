package lexicon

import (
	"encoding/json"
	"fmt"
)

type decodeFunc func(json.RawMessage) (Category, error)

func decodeAs[T Category](raw json.RawMessage) (Category, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

var decoders = map[string]decodeFunc{
	Noun{}.tag():                           decodeAs[Noun],
	Verb{}.tag():                           decodeAs[Verb],
	DescriptiveAdjective{}.tag():           decodeAs[DescriptiveAdjective],
	IndefiniteAdjective{}.tag():            decodeAs[IndefiniteAdjective],
	ExclamativeAdjective{}.tag():           decodeAs[ExclamativeAdjective],
	PastParticipleAdjective{}.tag():        decodeAs[PastParticipleAdjective],
	PresentParticipleAdjective{}.tag():     decodeAs[PresentParticipleAdjective],
	RelativeAdjective{}.tag():              decodeAs[RelativeAdjective],
	NegativeAdjective{}.tag():              decodeAs[NegativeAdjective],
	PossessiveAdjective{}.tag():            decodeAs[PossessiveAdjective],
	DemonstrativeAdjective{}.tag():         decodeAs[DemonstrativeAdjective],
	Adverb{}.tag():                         decodeAs[Adverb],
	Article{}.tag():                        decodeAs[Article],
	Conjunction{}.tag():                    decodeAs[Conjunction],
	Interjection{}.tag():                   decodeAs[Interjection],
	Preposition{}.tag():                    decodeAs[Preposition],
	AdverbialPronoun{}.tag():               decodeAs[AdverbialPronoun],
	ImpersonalPronoun{}.tag():              decodeAs[ImpersonalPronoun],
	IndefiniteDemonstrativePronoun{}.tag(): decodeAs[IndefiniteDemonstrativePronoun],
	IndefiniteRelativePronoun{}.tag():      decodeAs[IndefiniteRelativePronoun],
	InterrogativePronoun{}.tag():           decodeAs[InterrogativePronoun],
	NegativePronoun{}.tag():                decodeAs[NegativePronoun],
	DemonstrativePronoun{}.tag():           decodeAs[DemonstrativePronoun],
	PossessivePronoun{}.tag():              decodeAs[PossessivePronoun],
	IndefinitePronoun{}.tag():              decodeAs[IndefinitePronoun],
	PersonalPronoun{}.tag():                decodeAs[PersonalPronoun],
	RelativePronoun{}.tag():                decodeAs[RelativePronoun],
	Number{}.tag():                         decodeAs[Number],
	Other{}.tag():                          decodeAs[Other],
}

// Tag returns the stable name a category variant is persisted under, e.g. "pronoun.personal".
func Tag(c Category) string { return c.tag() }

// EncodeCategory returns the variant tag and the JSON encoding of its fields.
func EncodeCategory(c Category) (string, []byte, error) {
	if c == nil {
		return "", nil, fmt.Errorf("encode category: %w", ErrInvalidItem)
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s: %w", c.tag(), err)
	}
	return c.tag(), b, nil
}

// DecodeCategory is the inverse of EncodeCategory.
func DecodeCategory(tag string, data []byte) (Category, error) {
	dec, ok := decoders[tag]
	if !ok {
		return nil, fmt.Errorf("decode category: unknown variant %q", tag)
	}
	c, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag, err)
	}
	return c, nil
}

type itemJSON struct {
	UID       uint32          `json:"uid"`
	Primary   string          `json:"primary,omitempty"`
	Secondary string          `json:"secondary,omitempty"`
	Variant   string          `json:"variant"`
	Category  json.RawMessage `json:"category"`
}

func (it Item) MarshalJSON() ([]byte, error) {
	tag, cat, err := EncodeCategory(it.Category)
	if err != nil {
		return nil, err
	}
	return json.Marshal(itemJSON{
		UID:       it.UID,
		Primary:   it.Primary,
		Secondary: it.Secondary,
		Variant:   tag,
		Category:  cat,
	})
}

func (it *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c, err := DecodeCategory(raw.Variant, raw.Category)
	if err != nil {
		return err
	}
	*it = NewItem(raw.Primary, raw.Secondary, c)
	it.UID = raw.UID
	return nil
}
