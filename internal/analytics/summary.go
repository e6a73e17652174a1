// Package analytics derives the dashboard metrics from a session's entries.
// Everything here is a pure function of its inputs; the caller supplies "now".
package analytics

import (
	"fmt"
	"time"

	"github.com/yourname/serenedesk/internal"
)

type Window string

const (
	Last7Days  Window = "last_7_days"
	Last30Days Window = "last_30_days"
	AllTime    Window = "all_time"
)

// ParseWindow accepts the canonical names plus the short forms 7d, 30d and all.
// An empty string selects Last7Days.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "", "7d", string(Last7Days):
		return Last7Days, nil
	case "30d", string(Last30Days):
		return Last30Days, nil
	case "all", string(AllTime):
		return AllTime, nil
	}
	return "", internal.NewValidationError("window", fmt.Sprintf("unknown value %q", s))
}

// Duration is zero for AllTime.
func (w Window) Duration() time.Duration {
	switch w {
	case Last7Days:
		return 7 * 24 * time.Hour
	case Last30Days:
		return 30 * 24 * time.Hour
	}
	return 0
}

type MoodPoint struct {
	Timestamp time.Time `json:"timestamp"`
	MoodScore float64   `json:"mood_score"`
}

type Summary struct {
	Window        Window   `json:"window"`
	Count         int      `json:"count"`
	AvgMood       *float64 `json:"avg_mood,omitempty"`
	HighStressPct float64  `json:"high_stress_pct"`
	HighEnergyPct float64  `json:"high_energy_pct"`

	MoodSeries         []MoodPoint                  `json:"mood_series"`
	StressDistribution map[internal.StressLevel]int `json:"stress_distribution"`
	EnergyDistribution map[internal.EnergyLevel]int `json:"energy_distribution"`
}

// Summarize filters entries to the window ending at now and computes the
// dashboard metrics. The lower bound is closed: an entry stamped exactly
// now-window is included. Percentages use the filtered count as
// denominator. With no entries in range AvgMood is nil and both
// percentages are zero.
func Summarize(entries []internal.CheckinEntry, window Window, now time.Time) Summary {
	var cutoff time.Time
	bounded := window != AllTime
	if bounded {
		cutoff = now.Add(-window.Duration())
	}

	sum := Summary{
		Window:             window,
		MoodSeries:         []MoodPoint{},
		StressDistribution: map[internal.StressLevel]int{},
		EnergyDistribution: map[internal.EnergyLevel]int{},
	}

	var total float64
	var highStress, highEnergy int
	for _, e := range entries {
		if bounded && e.Timestamp.Before(cutoff) {
			continue
		}
		sum.Count++
		total += e.MoodScore
		sum.MoodSeries = append(sum.MoodSeries, MoodPoint{Timestamp: e.Timestamp, MoodScore: e.MoodScore})
		sum.StressDistribution[e.StressLevel]++
		sum.EnergyDistribution[e.EnergyLevel]++
		if e.StressLevel == internal.StressHigh {
			highStress++
		}
		if e.EnergyLevel == internal.EnergyHigh {
			highEnergy++
		}
	}

	if sum.Count == 0 {
		return sum
	}
	avg := total / float64(sum.Count)
	sum.AvgMood = &avg
	sum.HighStressPct = 100 * float64(highStress) / float64(sum.Count)
	sum.HighEnergyPct = 100 * float64(highEnergy) / float64(sum.Count)
	return sum
}

// QuickStats backs the session overview.
type QuickStats struct {
	TotalCheckins int      `json:"total_checkins"`
	AvgMood       *float64 `json:"avg_mood,omitempty"`
	CheckinsToday int      `json:"checkins_today"`
}

// Quick counts check-ins sharing now's calendar date, in now's location.
func Quick(entries []internal.CheckinEntry, now time.Time) QuickStats {
	all := Summarize(entries, AllTime, now)
	qs := QuickStats{TotalCheckins: all.Count, AvgMood: all.AvgMood}

	y, m, d := now.Date()
	for _, e := range entries {
		ey, em, ed := e.Timestamp.In(now.Location()).Date()
		if ey == y && em == m && ed == d {
			qs.CheckinsToday++
		}
	}
	return qs
}
