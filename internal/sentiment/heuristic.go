package sentiment

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/config"
)

var (
	lowEnergyWords  = []string{"tired", "exhausted", "sleepy", "drained", "energy level is low"}
	highEnergyWords = []string{"energized", "motivated", "excited", "energy level is high"}
)

// KeywordAnalyzer classifies text with the static keyword tables. It never
// fails and needs no network, so it backs local development and tests.
type KeywordAnalyzer struct{}

func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

func (k *KeywordAnalyzer) Name() string { return "keyword" }

func (k *KeywordAnalyzer) Analyze(ctx context.Context, text string) (internal.Classification, error) {
	if err := ctx.Err(); err != nil {
		return internal.Classification{}, internal.NewExternalServiceError("keyword analyze", err)
	}
	lower := strings.ToLower(text)
	stressHits := countHits(lower, config.StressKeywords)
	positiveHits := countHits(lower, config.PositiveKeywords)

	mood := internal.DefaultMoodScore + 1.5*float64(positiveHits) - 1.5*float64(stressHits)
	if mood < internal.MinMoodScore {
		mood = internal.MinMoodScore
	}
	if mood > internal.MaxMoodScore {
		mood = internal.MaxMoodScore
	}

	stress := internal.StressModerate
	switch {
	case stressHits >= 3:
		stress = internal.StressHigh
	case stressHits == 0 && positiveHits > 0:
		stress = internal.StressLow
	}

	energy := internal.EnergyMedium
	switch {
	case countHits(lower, lowEnergyWords) > 0:
		energy = internal.EnergyLow
	case countHits(lower, highEnergyWords) > 0:
		energy = internal.EnergyHigh
	}

	return internal.Classification{
		MoodScore:      mood,
		StressLevel:    string(stress),
		EnergyLevel:    string(energy),
		StressTriggers: extractTriggers(lower),
	}, nil
}

func (k *KeywordAnalyzer) GenerateSuggestions(ctx context.Context, text string, c internal.Classification) (internal.Suggestions, error) {
	if err := ctx.Err(); err != nil {
		return internal.Suggestions{}, internal.NewExternalServiceError("keyword suggestions", err)
	}
	return SuggestFromBank(text, c), nil
}

// SuggestFromBank picks one entry per suggestion kind from the static
// tables. The break suggestion is chosen by a hash of the text so the same
// check-in always yields the same advice.
func SuggestFromBank(text string, c internal.Classification) internal.Suggestions {
	lower := strings.ToLower(text)
	stress := internal.ParseStressLevel(c.StressLevel)
	energy := internal.ParseEnergyLevel(c.EnergyLevel)

	category := "moderate"
	switch {
	case stress == internal.StressHigh:
		category = "high_stress"
	case energy == internal.EnergyLow:
		category = "low_energy"
	}
	bank := config.BreakSuggestions[category]

	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	brk := bank[int(h.Sum32()%uint32(len(bank)))]

	focus := config.FocusTips["distracted"]
	switch {
	case stress == internal.StressHigh:
		focus = config.FocusTips["high_stress"]
	case strings.Contains(lower, "overwhelmed"):
		focus = config.FocusTips["overwhelmed"]
	case energy == internal.EnergyLow:
		focus = config.FocusTips["low_energy"]
	}

	prompt := config.JournalingPrompts["default"]
	for _, key := range config.JournalingPromptOrder {
		if strings.Contains(lower, key) {
			prompt = config.JournalingPrompts[key]
			break
		}
	}

	return internal.Suggestions{
		BreakSuggestion:  brk,
		FocusTip:         focus,
		JournalingPrompt: prompt,
	}
}

func countHits(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

// extractTriggers returns trigger tags in order of first mention, once each.
func extractTriggers(lower string) []string {
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
	seen := make(map[string]bool)
	var out []string
	for _, w := range words {
		tag, ok := config.TriggerKeywords[w]
		if !ok || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
