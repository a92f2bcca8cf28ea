package scene

import "strings"

// Hook is the one-way "apply scene" notification sent to the presentation
// layer. The presenter owns all visual state; Transition and Animation must
// be applied as given so a scene change never cross-fades.
type Hook struct {
	Weather    string  `json:"dataWeather"`
	Time       Segment `json:"dataTime"`
	Key        Key     `json:"scene"`
	Background string  `json:"backgroundImage"`
	Transition string  `json:"transition"`
	Animation  string  `json:"animation"`
}

// NoTransition is the only accepted value for Hook.Transition and Hook.Animation.
const NoTransition = "none"

// NewHook builds the styling hook for a raw condition label and its scene.
func NewHook(condition string, s Scene) Hook {
	return Hook{
		Weather:    strings.ToLower(strings.TrimSpace(condition)),
		Time:       s.Segment,
		Key:        s.Key,
		Background: s.Background,
		Transition: NoTransition,
		Animation:  NoTransition,
	}
}
