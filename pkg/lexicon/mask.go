package lexicon

import (
	"fmt"
	"strings"
)

// Mask is a bit set over Kinds used to restrict search and sampling.
type Mask uint16

// MaskAll matches every kind. The zero Mask behaves as MaskAll.
const MaskAll Mask = 0xFFFF

// MaskOf returns the mask owning exactly the given kinds.
func MaskOf(kinds ...Kind) Mask {
	var m Mask
	for _, k := range kinds {
		m |= k.Mask()
	}
	return m
}

// Normalize maps the zero mask to MaskAll so an empty filter is never vacuous.
func (m Mask) Normalize() Mask {
	if m == 0 {
		return MaskAll
	}
	return m
}

// Intersects reports whether m and other share a bit, after normalizing m.
func (m Mask) Intersects(other Mask) bool {
	return m.Normalize()&other != 0
}

func (m Mask) String() string {
	if m.Normalize() == MaskAll {
		return "all"
	}
	var names []string
	for _, k := range Kinds() {
		if m&k.Mask() != 0 {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, ",")
}

// ParseMask parses a comma separated list of kind names. "" and "all" yield MaskAll.
func ParseMask(s string) (Mask, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return MaskAll, nil
	}
	var m Mask
	for _, part := range strings.Split(s, ",") {
		k, err := ParseKind(part)
		if err != nil {
			return 0, fmt.Errorf("parse mask: %w", err)
		}
		m |= k.Mask()
	}
	return m, nil
}
