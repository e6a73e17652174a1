package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/serenedesk/internal"
)

var now = time.Date(2026, 5, 20, 15, 0, 0, 0, time.UTC)

func entry(at time.Time, mood float64, stress internal.StressLevel, energy internal.EnergyLevel) internal.CheckinEntry {
	return internal.CheckinEntry{
		Timestamp:   at,
		Transcript:  "x",
		MoodScore:   mood,
		StressLevel: stress,
		EnergyLevel: energy,
	}
}

func TestSummarize_ThreeCheckinScenario(t *testing.T) {
	entries := []internal.CheckinEntry{
		entry(now.Add(-3*time.Hour), 8, internal.StressLow, internal.EnergyHigh),
		entry(now.Add(-2*time.Hour), 3, internal.StressHigh, internal.EnergyLow),
		entry(now.Add(-1*time.Hour), 6, internal.StressModerate, internal.EnergyMedium),
	}

	s := Summarize(entries, AllTime, now)
	assert.Equal(t, 3, s.Count)
	require.NotNil(t, s.AvgMood)
	assert.InDelta(t, 5.67, *s.AvgMood, 0.01)
	assert.InDelta(t, 33.3, s.HighStressPct, 0.1)
	assert.InDelta(t, 33.3, s.HighEnergyPct, 0.1)
	assert.Equal(t, map[internal.StressLevel]int{
		internal.StressLow: 1, internal.StressHigh: 1, internal.StressModerate: 1,
	}, s.StressDistribution)

	require.Len(t, s.MoodSeries, 3)
	assert.Equal(t, 8.0, s.MoodSeries[0].MoodScore)
	assert.Equal(t, 6.0, s.MoodSeries[2].MoodScore)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, Last7Days, now)
	assert.Equal(t, 0, s.Count)
	assert.Nil(t, s.AvgMood)
	assert.Zero(t, s.HighStressPct)
	assert.Zero(t, s.HighEnergyPct)
	assert.Empty(t, s.MoodSeries)
	assert.Empty(t, s.StressDistribution)
}

func TestSummarize_WindowBoundaryIsClosed(t *testing.T) {
	week := 7 * 24 * time.Hour
	entries := []internal.CheckinEntry{
		entry(now.Add(-week-time.Second), 2, internal.StressHigh, internal.EnergyLow),
		entry(now.Add(-week), 9, internal.StressLow, internal.EnergyHigh),
	}

	s := Summarize(entries, Last7Days, now)
	require.Equal(t, 1, s.Count)
	assert.Equal(t, 9.0, s.MoodSeries[0].MoodScore)

	assert.Equal(t, 2, Summarize(entries, Last30Days, now).Count)
	assert.Equal(t, 2, Summarize(entries, AllTime, now).Count)
}

func TestSummarize_OmitsUnseenCategories(t *testing.T) {
	entries := []internal.CheckinEntry{
		entry(now, 5, internal.StressHigh, internal.EnergyHigh),
		entry(now, 5, internal.StressHigh, internal.EnergyHigh),
	}
	s := Summarize(entries, Last7Days, now)
	assert.Equal(t, map[internal.StressLevel]int{internal.StressHigh: 2}, s.StressDistribution)
	assert.Equal(t, map[internal.EnergyLevel]int{internal.EnergyHigh: 2}, s.EnergyDistribution)
	_, present := s.StressDistribution[internal.StressLow]
	assert.False(t, present)
	assert.Equal(t, 100.0, s.HighStressPct)
}

func TestSummarize_IsDeterministic(t *testing.T) {
	entries := []internal.CheckinEntry{
		entry(now.Add(-48*time.Hour), 4, internal.StressModerate, internal.EnergyLow),
		entry(now.Add(-time.Hour), 7, internal.StressLow, internal.EnergyMedium),
	}
	assert.Equal(t, Summarize(entries, Last7Days, now), Summarize(entries, Last7Days, now))
}

func TestParseWindow(t *testing.T) {
	for in, want := range map[string]Window{
		"":             Last7Days,
		"7d":           Last7Days,
		"last_30_days": Last30Days,
		"30d":          Last30Days,
		"all":          AllTime,
		"all_time":     AllTime,
	} {
		got, err := ParseWindow(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseWindow("last_year")
	assert.True(t, errors.Is(err, internal.ErrValidation))
}

func TestQuick(t *testing.T) {
	entries := []internal.CheckinEntry{
		entry(now.Add(-26*time.Hour), 4, internal.StressModerate, internal.EnergyLow),
		entry(now.Add(-time.Hour), 8, internal.StressLow, internal.EnergyMedium),
	}
	qs := Quick(entries, now)
	assert.Equal(t, 2, qs.TotalCheckins)
	assert.Equal(t, 1, qs.CheckinsToday)
	require.NotNil(t, qs.AvgMood)
	assert.Equal(t, 6.0, *qs.AvgMood)

	empty := Quick(nil, now)
	assert.Nil(t, empty.AvgMood)
}

func TestSummarizeJournal(t *testing.T) {
	assert.Equal(t, JournalStats{}, SummarizeJournal(nil))

	entries := []internal.JournalEntry{{ID: "a", WordCount: 10}, {ID: "b", WordCount: 5}}
	st := SummarizeJournal(entries)
	assert.Equal(t, 2, st.TotalEntries)
	assert.Equal(t, 15, st.TotalWords)
	assert.Equal(t, 7.5, st.AvgWordsPerEntry)

	rev := NewestFirst(entries)
	assert.Equal(t, "b", rev[0].ID)
	assert.Equal(t, "a", entries[0].ID)
}
