package config

// Static wellness tables. Read-only after startup.

// MoodThresholds are the lower bounds of each mood band, ascending.
var MoodThresholds = []struct {
	Band  string
	Lower float64
}{
	{"very_low", 0},
	{"low", 3},
	{"moderate", 5},
	{"good", 7},
	{"excellent", 9},
}

const (
	GoodMoodThreshold = 7.0
	LowMoodAlert      = 4.0
)

var StressKeywords = []string{
	"stressed", "overwhelmed", "anxious", "worried", "pressure",
	"deadline", "frustrated", "tired", "exhausted", "burned out",
	"difficult", "challenging", "struggling", "nervous", "tense",
}

var PositiveKeywords = []string{
	"happy", "excited", "motivated", "energized", "confident",
	"accomplished", "satisfied", "peaceful", "calm", "focused",
	"productive", "successful", "grateful", "optimistic", "relaxed",
}

// TriggerKeywords maps a word found in a check-in to the trigger tag it
// counts towards.
var TriggerKeywords = map[string]string{
	"deadline":     "deadline",
	"deadlines":    "deadline",
	"meeting":      "meetings",
	"meetings":     "meetings",
	"email":        "emails",
	"emails":       "emails",
	"presentation": "presentation",
	"workload":     "workload",
	"boss":         "management",
	"manager":      "management",
	"overtime":     "long hours",
	"late":         "long hours",
	"interruption": "interruptions",
	"distracted":   "interruptions",
	"commute":      "commute",
}

var BreakSuggestions = map[string][]string{
	"high_stress": {
		"Take 5 deep breaths and do a quick meditation",
		"Step outside for a 10-minute walk",
		"Try progressive muscle relaxation",
		"Listen to calming music for 10 minutes",
	},
	"low_energy": {
		"Do 10 jumping jacks or stretches",
		"Drink a glass of water and have a healthy snack",
		"Take a 5-minute power walk",
		"Do some desk exercises",
	},
	"moderate": {
		"Take a 15-minute break from screens",
		"Practice gratitude - write down 3 things you are thankful for",
		"Chat with a colleague or friend",
		"Listen to an uplifting podcast",
	},
}

var FocusTips = map[string]string{
	"high_stress": "Try the 4-7-8 breathing technique before starting your next task",
	"distracted":  "Use the Pomodoro technique - 25 minutes focused work, 5-minute break",
	"low_energy":  "Tackle your easiest task first to build momentum",
	"overwhelmed": "Break your current task into 3 smaller, manageable steps",
}

// JournalingPrompts is keyed by the word that selects it; "default" is the fallback.
var JournalingPrompts = map[string]string{
	"stressed":     "What is one small thing I can do right now to reduce my stress?",
	"tired":        "What would help me feel more energized today?",
	"frustrated":   "What can I learn from this challenging situation?",
	"anxious":      "What are three things I can control in this situation?",
	"happy":        "What contributed to my positive mood today?",
	"accomplished": "How can I celebrate this achievement?",
	"default":      "What is one thing I am grateful for right now?",
}

// JournalingPromptOrder fixes the lookup order over JournalingPrompts.
var JournalingPromptOrder = []string{"stressed", "anxious", "frustrated", "tired", "accomplished", "happy"}

var JournalPrompts = []string{
	"Free writing",
	"What am I grateful for today?",
	"What challenges did I face and how did I overcome them?",
	"What would make tomorrow better than today?",
	"How did I practice self-care today?",
	"What patterns do I notice in my mood and energy?",
}

var QuickMoods = []string{"Great", "Good", "Okay", "Stressed", "Overwhelmed"}

var QuickEnergies = []string{"High", "Medium", "Low", "Exhausted"}

var ReminderFrequencies = []string{"every_2_hours", "every_4_hours", "twice_daily", "daily"}

var FocusSessionLengths = []string{"15m", "25m", "45m", "1h"}

type Soundscape struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Benefits    string `json:"benefits"`
}

var Soundscapes = []Soundscape{
	{"rain_thunder", "Rain & Thunder", "Gentle rain with distant thunder for deep focus", "Masks distracting noises, promotes concentration"},
	{"ocean_waves", "Ocean Waves", "Rhythmic ocean waves for relaxation", "Reduces stress, promotes calm thinking"},
	{"mountain_stream", "Mountain Stream", "Flowing water over rocks", "Natural white noise, enhances creativity"},
	{"forest_ambience", "Forest Ambience", "Birds chirping with rustling leaves", "Reduces mental fatigue, improves mood"},
	{"coffee_shop", "Coffee Shop", "Busy café atmosphere with gentle chatter", "Optimal background noise for productivity"},
	{"crackling_fireplace", "Crackling Fireplace", "Warm fireplace with gentle crackling", "Creates cozy atmosphere, reduces anxiety"},
}

// SoundscapeByID looks up a catalog entry.
func SoundscapeByID(id string) (Soundscape, bool) {
	for _, s := range Soundscapes {
		if s.ID == id {
			return s, true
		}
	}
	return Soundscape{}, false
}
