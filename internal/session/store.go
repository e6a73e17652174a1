package session

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/serenedesk/internal"
)

// Clock returns the current instant. Tests inject a fixed one.
type Clock func() time.Time

// Store is the entry store of one session: check-ins, journal entries, the
// trigger table and the (never executed) notification settings. Every
// mutation takes the single write lock, so readers never observe a
// partially applied change.
type Store struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	mu        sync.RWMutex
	clock     Clock
	lastStamp time.Time
	checkins  []internal.CheckinEntry
	journal   []internal.JournalEntry
	triggers  *TriggerTable
	settings  internal.Settings
}

func NewStore(id, userID string, clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		ID:        id,
		UserID:    userID,
		CreatedAt: clock(),
		clock:     clock,
		triggers:  NewTriggerTable(),
		settings:  internal.DefaultSettings(),
	}
}

// now never goes backwards within a store. Caller holds mu.
func (s *Store) now() time.Time {
	t := s.clock()
	if t.Before(s.lastStamp) {
		t = s.lastStamp
	}
	s.lastStamp = t
	return t
}

// RecordCheckin appends a check-in built from the classifier output.
//
// Classifier output is trusted but normalized: the mood score is clamped to
// [0,10] (NaN becomes 5) and unknown stress/energy labels become
// Moderate/Medium. This keeps every aggregate well defined instead of
// rejecting the check-in.
func (s *Store) RecordCheckin(transcript string, c internal.Classification, sugg internal.Suggestions) (internal.CheckinEntry, error) {
	if strings.TrimSpace(transcript) == "" {
		return internal.CheckinEntry{}, internal.NewValidationError("transcript", "must not be empty")
	}

	// stress_triggers is a set: trimmed, non-empty, first mention wins.
	triggers := make([]string, 0, len(c.StressTriggers))
	seen := make(map[string]bool, len(c.StressTriggers))
	for _, tag := range c.StressTriggers {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		triggers = append(triggers, tag)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := internal.CheckinEntry{
		ID:             uuid.NewString(),
		Timestamp:      s.now(),
		Transcript:     transcript,
		MoodScore:      ClampMood(c.MoodScore),
		StressLevel:    internal.ParseStressLevel(c.StressLevel),
		EnergyLevel:    internal.ParseEnergyLevel(c.EnergyLevel),
		StressTriggers: triggers,
		Suggestions:    sugg,
	}
	s.checkins = append(s.checkins, entry)
	for _, tag := range triggers {
		s.triggers.Increment(tag)
	}
	return cloneCheckin(entry), nil
}

// RecordJournal appends a journal entry. An empty prompt is stored as
// the free writing sentinel.
func (s *Store) RecordJournal(prompt, content string) (internal.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return internal.JournalEntry{}, internal.NewValidationError("content", "must not be empty")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = internal.FreeWritingPrompt
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := internal.JournalEntry{
		ID:        uuid.NewString(),
		Timestamp: s.now(),
		Prompt:    prompt,
		Content:   content,
		WordCount: len(strings.Fields(content)),
	}
	s.journal = append(s.journal, entry)
	return entry, nil
}

// DeleteJournal removes the entry with the given id. Deleting an entry that
// is already gone reports ErrNotFound and changes nothing.
func (s *Store) DeleteJournal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.journal {
		if e.ID == id {
			s.journal = append(s.journal[:i:i], s.journal[i+1:]...)
			return nil
		}
	}
	return internal.NewNotFoundError("journal entry", id)
}

// ClearAll empties check-ins, journal and triggers in one step.
// Settings are kept.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Store) clearLocked() {
	s.checkins = nil
	s.journal = nil
	s.triggers = NewTriggerTable()
}

// Export returns an independent copy of the three collections.
func (s *Store) Export() internal.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ExportAndReset snapshots the session, hands the snapshot to persist and
// clears the session only if persist succeeds. The write lock is held
// throughout so no check-in can land between the snapshot and the reset.
func (s *Store) ExportAndReset(persist func(internal.Snapshot) error) (internal.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshotLocked()
	if persist != nil {
		if err := persist(snap); err != nil {
			return snap, err
		}
	}
	s.clearLocked()
	return snap, nil
}

func (s *Store) snapshotLocked() internal.Snapshot {
	snap := internal.Snapshot{
		MoodHistory:    make([]internal.CheckinRecord, 0, len(s.checkins)),
		WellnessLog:    make([]internal.JournalRecord, 0, len(s.journal)),
		StressTriggers: s.triggers.Counts(),
	}
	for _, c := range s.checkins {
		triggers := make([]string, len(c.StressTriggers))
		copy(triggers, c.StressTriggers)
		snap.MoodHistory = append(snap.MoodHistory, internal.CheckinRecord{
			ID:             c.ID,
			Timestamp:      c.Timestamp.Format(internal.SnapshotTimeFormat),
			Transcript:     c.Transcript,
			MoodScore:      c.MoodScore,
			StressLevel:    c.StressLevel,
			EnergyLevel:    c.EnergyLevel,
			StressTriggers: triggers,
			Suggestions:    c.Suggestions,
		})
	}
	for _, j := range s.journal {
		snap.WellnessLog = append(snap.WellnessLog, internal.JournalRecord{
			ID:        j.ID,
			Timestamp: j.Timestamp.Format(internal.SnapshotTimeFormat),
			Prompt:    j.Prompt,
			Content:   j.Content,
			WordCount: j.WordCount,
		})
	}
	return snap
}

// Checkins returns every check-in in chronological order.
func (s *Store) Checkins() []internal.CheckinEntry {
	return s.RecentCheckins(0)
}

// RecentCheckins returns the last n check-ins (all when n <= 0),
// oldest first.
func (s *Store) RecentCheckins(n int) []internal.CheckinEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.checkins
	if n > 0 && n < len(src) {
		src = src[len(src)-n:]
	}
	out := make([]internal.CheckinEntry, len(src))
	for i, c := range src {
		out[i] = cloneCheckin(c)
	}
	return out
}

// LatestCheckin returns the most recent check-in, if any.
func (s *Store) LatestCheckin() (internal.CheckinEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.checkins) == 0 {
		return internal.CheckinEntry{}, false
	}
	return cloneCheckin(s.checkins[len(s.checkins)-1]), true
}

// Journal returns journal entries in insertion order.
func (s *Store) Journal() []internal.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.JournalEntry, len(s.journal))
	copy(out, s.journal)
	return out
}

func (s *Store) TopTriggers(n int) []TriggerCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.triggers.TopN(n)
}

func (s *Store) Settings() internal.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings applies edit to the current settings under the write lock
// and returns the result.
func (s *Store) UpdateSettings(edit func(*internal.Settings)) internal.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	edit(&s.settings)
	return s.settings
}

// Now exposes the store clock to callers computing analytics.
func (s *Store) Now() time.Time {
	return s.clock()
}

// ClampMood bounds a classifier score to [0,10]; NaN maps to the default.
func ClampMood(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return internal.DefaultMoodScore
	case v < internal.MinMoodScore:
		return internal.MinMoodScore
	case v > internal.MaxMoodScore:
		return internal.MaxMoodScore
	}
	return v
}

func cloneCheckin(c internal.CheckinEntry) internal.CheckinEntry {
	triggers := make([]string, len(c.StressTriggers))
	copy(triggers, c.StressTriggers)
	c.StressTriggers = triggers
	return c
}
