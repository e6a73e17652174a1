package analytics

import "github.com/yourname/serenedesk/internal"

type JournalStats struct {
	TotalEntries     int     `json:"total_entries"`
	TotalWords       int     `json:"total_words"`
	AvgWordsPerEntry float64 `json:"avg_words_per_entry"`
}

func SummarizeJournal(entries []internal.JournalEntry) JournalStats {
	var st JournalStats
	for _, e := range entries {
		st.TotalEntries++
		st.TotalWords += e.WordCount
	}
	if st.TotalEntries > 0 {
		st.AvgWordsPerEntry = float64(st.TotalWords) / float64(st.TotalEntries)
	}
	return st
}

// NewestFirst returns a reversed copy.
func NewestFirst(entries []internal.JournalEntry) []internal.JournalEntry {
	out := make([]internal.JournalEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
