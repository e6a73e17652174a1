package service

import (
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/analytics"
	"github.com/yourname/serenedesk/internal/session"
)

type JournalRequest struct {
	Prompt  string `json:"prompt,omitempty" validate:"max=300"`
	Content string `json:"content" validate:"required,max=20000"`
}

func ValidateJournalRequest(req *JournalRequest) error {
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

func CreateJournalEntry(store *session.Store, req *JournalRequest) (*internal.JournalEntry, error) {
	if err := ValidateJournalRequest(req); err != nil {
		return nil, err
	}
	entry, err := store.RecordJournal(req.Prompt, req.Content)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

type JournalHistory struct {
	Entries         []internal.JournalEntry `json:"entries"`
	Stats           analytics.JournalStats  `json:"stats"`
	SuggestedPrompt string                  `json:"suggested_prompt,omitempty"`
}

// BuildJournalHistory lists entries newest first and carries the journaling
// prompt suggested by the latest check-in, if there is one.
func BuildJournalHistory(store *session.Store) JournalHistory {
	entries := store.Journal()
	h := JournalHistory{
		Entries: analytics.NewestFirst(entries),
		Stats:   analytics.SummarizeJournal(entries),
	}
	if latest, ok := store.LatestCheckin(); ok {
		h.SuggestedPrompt = latest.Suggestions.JournalingPrompt
	}
	return h
}
