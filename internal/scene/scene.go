package scene

import (
	"strings"
	"time"
)

// Segment is the part of the day derived from a local hour.
type Segment string

const (
	SegmentMorning   Segment = "morning"
	SegmentAfternoon Segment = "afternoon"
	SegmentEvening   Segment = "evening"
	SegmentNight     Segment = "night"
)

// Segments lists every day segment in display order.
var Segments = []Segment{SegmentMorning, SegmentAfternoon, SegmentEvening, SegmentNight}

// Category is a recognized weather condition category.
type Category string

const (
	CategoryNone         Category = ""
	CategoryClear        Category = "clear"
	CategoryClouds       Category = "clouds"
	CategoryRain         Category = "rain"
	CategorySnow         Category = "snow"
	CategoryThunderstorm Category = "thunderstorm"
)

// Categories lists every recognized category.
var Categories = []Category{CategoryClear, CategoryClouds, CategoryRain, CategorySnow, CategoryThunderstorm}

// Key identifies one of the 20 (category, segment) scenes or the default scene.
type Key string

// DefaultKey is used for any condition outside the recognized categories.
const DefaultKey Key = "default"

// NewKey builds the key for a category and segment.
func NewKey(c Category, s Segment) Key {
	if c == CategoryNone {
		return DefaultKey
	}
	return Key(string(c) + "-" + string(s))
}

// Keys returns all 20 category/segment keys followed by DefaultKey.
func Keys() []Key {
	keys := make([]Key, 0, len(Categories)*len(Segments)+1)
	for _, c := range Categories {
		for _, s := range Segments {
			keys = append(keys, NewKey(c, s))
		}
	}
	return append(keys, DefaultKey)
}

// Scene is the background selection for a condition at an instant.
// It carries no state and is recomputed on every render.
type Scene struct {
	Key        Key      `json:"key"`
	Category   Category `json:"category,omitempty"`
	Segment    Segment  `json:"segment"`
	Background string   `json:"background"`
}

// IsDefault reports whether the condition fell outside the recognized categories.
func (s Scene) IsDefault() bool {
	return s.Key == DefaultKey
}

// SegmentForHour maps any integer hour onto a day segment. The hour is taken
// modulo 24, so negative and >=24 values wrap.
func SegmentForHour(hour int) Segment {
	h := ((hour % 24) + 24) % 24
	switch {
	case h >= 6 && h < 12:
		return SegmentMorning
	case h >= 12 && h < 17:
		return SegmentAfternoon
	case h >= 17 && h < 20:
		return SegmentEvening
	default:
		return SegmentNight
	}
}

// ParseCategory matches a condition label case-insensitively against the
// recognized categories. ok is false for anything else.
func ParseCategory(condition string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(condition)))
	switch c {
	case CategoryClear, CategoryClouds, CategoryRain, CategorySnow, CategoryThunderstorm:
		return c, true
	default:
		return CategoryNone, false
	}
}

// Classify resolves the scene for a condition at the given instant. The
// instant must already be expressed in the location's time zone.
func Classify(condition string, instant time.Time) Scene {
	return ClassifyHour(condition, instant.Hour())
}

// ClassifyHour resolves the scene for a condition at a local hour.
func ClassifyHour(condition string, hour int) Scene {
	seg := SegmentForHour(hour)

	cat, ok := ParseCategory(condition)
	if !ok {
		return Scene{
			Key:        DefaultKey,
			Segment:    seg,
			Background: defaultBackground,
		}
	}

	key := NewKey(cat, seg)
	bg, found := backgrounds[key]
	if !found {
		bg = segmentBackgrounds[seg]
	}

	return Scene{
		Key:        key,
		Category:   cat,
		Segment:    seg,
		Background: bg,
	}
}
