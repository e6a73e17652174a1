package service

import (
	"time"

	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/analytics"
	"github.com/yourname/serenedesk/internal/config"
	"github.com/yourname/serenedesk/internal/session"
)

type SessionOverview struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	QuickStats     analytics.QuickStats `json:"quick_stats"`
	JournalEntries int                  `json:"journal_entries"`
	Settings       internal.Settings    `json:"settings"`
}

func BuildOverview(store *session.Store) SessionOverview {
	return SessionOverview{
		ID:             store.ID,
		CreatedAt:      store.CreatedAt,
		QuickStats:     analytics.Quick(store.Checkins(), store.Now()),
		JournalEntries: len(store.Journal()),
		Settings:       store.Settings(),
	}
}

type AnalyticsReport struct {
	analytics.Summary
	MoodBand          string  `json:"mood_band,omitempty"`
	GoodMoodThreshold float64 `json:"good_mood_threshold"`
	LowMoodAlert      float64 `json:"low_mood_alert"`
}

// BuildAnalytics summarizes the session over window, resolved against the
// store clock.
func BuildAnalytics(store *session.Store, window analytics.Window) AnalyticsReport {
	sum := analytics.Summarize(store.Checkins(), window, store.Now())
	r := AnalyticsReport{
		Summary:           sum,
		GoodMoodThreshold: config.GoodMoodThreshold,
		LowMoodAlert:      config.LowMoodAlert,
	}
	if sum.AvgMood != nil {
		r.MoodBand = analytics.MoodBand(*sum.AvgMood)
	}
	return r
}
