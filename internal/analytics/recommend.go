package analytics

import (
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/config"
)

type SuggestionID string

const (
	SuggestNone         SuggestionID = "none"
	SuggestStressRelief SuggestionID = "stress_relief"
	SuggestMoodBoost    SuggestionID = "mood_boost"
	SuggestProductivity SuggestionID = "productivity"
	SuggestBalance      SuggestionID = "balance"
)

var soundscapeFor = map[SuggestionID]string{
	SuggestStressRelief: "rain_thunder",
	SuggestMoodBoost:    "ocean_waves",
	SuggestProductivity: "coffee_shop",
	SuggestBalance:      "forest_ambience",
}

// Recommend evaluates the soundscape rules against the latest check-in.
// The rules form a cascade and the first match wins:
// high stress, then mood below 5, then low stress, then balance.
func Recommend(latest *internal.CheckinEntry) SuggestionID {
	switch {
	case latest == nil:
		return SuggestNone
	case latest.StressLevel == internal.StressHigh:
		return SuggestStressRelief
	case latest.MoodScore < 5:
		return SuggestMoodBoost
	case latest.StressLevel == internal.StressLow:
		return SuggestProductivity
	default:
		return SuggestBalance
	}
}

type Recommendation struct {
	Suggestion SuggestionID       `json:"suggestion"`
	Soundscape *config.Soundscape `json:"soundscape,omitempty"`
}

// RecommendSoundscape resolves the suggestion to its catalog entry.
func RecommendSoundscape(latest *internal.CheckinEntry) Recommendation {
	id := Recommend(latest)
	rec := Recommendation{Suggestion: id}
	if s, ok := config.SoundscapeByID(soundscapeFor[id]); ok {
		rec.Soundscape = &s
	}
	return rec
}

// MoodBand names the threshold band a score falls in.
func MoodBand(score float64) string {
	band := config.MoodThresholds[0].Band
	for _, t := range config.MoodThresholds {
		if score >= t.Lower {
			band = t.Band
		}
	}
	return band
}
