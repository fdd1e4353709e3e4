// Package keyword answers whether an item carries one of the mod-added
// keyword tags the classifier consults at known decision points.
package keyword

import (
	"fmt"

	"github.com/rethesda/soulsy/internal/domain"
)

// Tag is an entry in the allow-list of keyword markers the engine checks.
type Tag int

const (
	TagLantern Tag = iota
	TagMaskDisplay
	TagRapier
	TagKatana
	TagClaw
	TagWhip
	TagPike
	TagHalberd
	TagQuarterStaff
)

// AllTags lists every tag in the allow-list.
var AllTags = []Tag{
	TagLantern,
	TagMaskDisplay,
	TagRapier,
	TagKatana,
	TagClaw,
	TagWhip,
	TagPike,
	TagHalberd,
	TagQuarterStaff,
}

var tagNames = map[Tag]string{
	TagLantern:      "lantern",
	TagMaskDisplay:  "mask_display",
	TagRapier:       "rapier",
	TagKatana:       "katana",
	TagClaw:         "claw",
	TagWhip:         "whip",
	TagPike:         "pike",
	TagHalberd:      "halberd",
	TagQuarterStaff: "quarter_staff",
}

// DefaultKeywords are the keyword strings published by the mods that
// introduced each marker.
var DefaultKeywords = map[Tag]string{
	TagLantern:      "_WL_Lantern",
	TagMaskDisplay:  "BOS_DisplayMaskKeyword",
	TagRapier:       "WeapTypeRapier",
	TagKatana:       "WeapTypeKatana",
	TagClaw:         "WeapTypeClaw",
	TagWhip:         "WeapTypeWhip",
	TagPike:         "WeapTypePike",
	TagHalberd:      "WeapTypeHalberd",
	TagQuarterStaff: "WeapTypeQtrStaff",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// ParseTag maps a tag name back to its value.
func ParseTag(name string) (Tag, error) {
	for t, n := range tagNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTag, name)
}

// HasKeyword reports whether the item carries the exact keyword string.
// Matching is case-sensitive. An absent item has no keywords.
func HasKeyword(item domain.Item, name string) bool {
	if domain.IsAbsent(item) {
		return false
	}
	for _, kw := range item.Base().Keywords {
		if kw == name {
			return true
		}
	}
	return false
}

// Inspector resolves allow-listed tags to keyword strings. Each tag may
// match several strings so renamed keywords from newer mod versions can be
// added without touching the classifier. Inspector is immutable after
// construction and safe for concurrent use.
type Inspector struct {
	keywords map[Tag][]string
}

// NewInspector returns an inspector using DefaultKeywords plus any extra
// keyword strings per tag.
func NewInspector(extra map[Tag][]string) *Inspector {
	keywords := make(map[Tag][]string, len(DefaultKeywords))
	for tag, kw := range DefaultKeywords {
		keywords[tag] = []string{kw}
	}
	for tag, list := range extra {
		for _, kw := range list {
			if !containsString(keywords[tag], kw) {
				keywords[tag] = append(keywords[tag], kw)
			}
		}
	}
	return &Inspector{keywords: keywords}
}

// Has reports whether the item carries any keyword string mapped to tag.
func (i *Inspector) Has(item domain.Item, tag Tag) bool {
	for _, kw := range i.Keywords(tag) {
		if HasKeyword(item, kw) {
			return true
		}
	}
	return false
}

// Keywords returns the keyword strings that satisfy tag.
func (i *Inspector) Keywords(tag Tag) []string {
	if i == nil {
		if kw, ok := DefaultKeywords[tag]; ok {
			return []string{kw}
		}
		return nil
	}
	return i.keywords[tag]
}

func containsString(list []string, s string) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}
