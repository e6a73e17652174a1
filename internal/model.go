package internal

import (
	"strings"
	"time"
)

type User struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
}

type StressLevel string

const (
	StressLow      StressLevel = "Low"
	StressModerate StressLevel = "Moderate"
	StressHigh     StressLevel = "High"
)

// ParseStressLevel maps a classifier label onto a StressLevel.
// Unknown labels fall back to Moderate.
func ParseStressLevel(s string) StressLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return StressLow
	case "high":
		return StressHigh
	default:
		return StressModerate
	}
}

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "Low"
	EnergyMedium EnergyLevel = "Medium"
	EnergyHigh   EnergyLevel = "High"
)

// ParseEnergyLevel maps a classifier label onto an EnergyLevel.
// Unknown labels fall back to Medium.
func ParseEnergyLevel(s string) EnergyLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "exhausted":
		return EnergyLow
	case "high":
		return EnergyHigh
	default:
		return EnergyMedium
	}
}

const (
	MinMoodScore     = 0.0
	MaxMoodScore     = 10.0
	DefaultMoodScore = 5.0
)

// Classification is what the sentiment client returns for a transcript.
// Levels are kept as raw labels here; the entry store normalizes them.
type Classification struct {
	MoodScore      float64  `json:"mood_score"`
	StressLevel    string   `json:"stress_level"`
	EnergyLevel    string   `json:"energy_level"`
	StressTriggers []string `json:"stress_triggers"`
}

type Suggestions struct {
	BreakSuggestion  string `json:"break_suggestion,omitempty"`
	FocusTip         string `json:"focus_tip,omitempty"`
	JournalingPrompt string `json:"journaling_prompt,omitempty"`
}

// CheckinEntry is never modified after the store creates it.
type CheckinEntry struct {
	ID             string      `json:"id"`
	Timestamp      time.Time   `json:"timestamp"`
	Transcript     string      `json:"transcript"`
	MoodScore      float64     `json:"mood_score"`
	StressLevel    StressLevel `json:"stress_level"`
	EnergyLevel    EnergyLevel `json:"energy_level"`
	StressTriggers []string    `json:"stress_triggers"`
	Suggestions    Suggestions `json:"wellness_suggestions"`
}

// FreeWritingPrompt marks a journal entry written without a prompt.
const FreeWritingPrompt = "Free writing"

type JournalEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"content"`
	WordCount int       `json:"word_count"`
}

type Settings struct {
	RemindersEnabled    bool   `json:"reminders_enabled"`
	ReminderFrequency   string `json:"reminder_frequency"`
	WellnessAlerts      bool   `json:"wellness_alerts"`
	StressNotifications bool   `json:"stress_notifications"`
	DefaultFocusSession string `json:"default_focus_session"`
	BreakReminders      bool   `json:"break_reminders"`
}

func DefaultSettings() Settings {
	return Settings{
		RemindersEnabled:    true,
		ReminderFrequency:   "every_2_hours",
		WellnessAlerts:      true,
		StressNotifications: true,
		DefaultFocusSession: "15m",
		BreakReminders:      true,
	}
}

// SnapshotTimeFormat is used for every timestamp in an export.
const SnapshotTimeFormat = time.RFC3339Nano

type CheckinRecord struct {
	ID             string      `json:"id"`
	Timestamp      string      `json:"timestamp"`
	Transcript     string      `json:"transcript"`
	MoodScore      float64     `json:"mood_score"`
	StressLevel    StressLevel `json:"stress_level"`
	EnergyLevel    EnergyLevel `json:"energy_level"`
	StressTriggers []string    `json:"stress_triggers"`
	Suggestions    Suggestions `json:"wellness_suggestions"`
}

type JournalRecord struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Prompt    string `json:"prompt"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

// Snapshot is the export format: three top-level keys, timestamps as strings.
type Snapshot struct {
	MoodHistory    []CheckinRecord `json:"mood_history"`
	WellnessLog    []JournalRecord `json:"wellness_log"`
	StressTriggers map[string]int  `json:"stress_triggers"`
}

// ExportRecord is an archived snapshot.
type ExportRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	Snapshot  Snapshot  `json:"snapshot"`
}
