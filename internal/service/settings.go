package service

import (
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/session"
)

// SettingsRequest is a partial update; nil fields keep their current value.
type SettingsRequest struct {
	RemindersEnabled    *bool   `json:"reminders_enabled"`
	ReminderFrequency   *string `json:"reminder_frequency" validate:"omitempty,reminder_frequency"`
	WellnessAlerts      *bool   `json:"wellness_alerts"`
	StressNotifications *bool   `json:"stress_notifications"`
	DefaultFocusSession *string `json:"default_focus_session" validate:"omitempty,focus_session"`
	BreakReminders      *bool   `json:"break_reminders"`
}

func ValidateSettingsRequest(req *SettingsRequest) error {
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

func UpdateSettings(store *session.Store, req *SettingsRequest) (internal.Settings, error) {
	if err := ValidateSettingsRequest(req); err != nil {
		return internal.Settings{}, err
	}
	return store.UpdateSettings(func(s *internal.Settings) {
		if req.RemindersEnabled != nil {
			s.RemindersEnabled = *req.RemindersEnabled
		}
		if req.ReminderFrequency != nil {
			s.ReminderFrequency = *req.ReminderFrequency
		}
		if req.WellnessAlerts != nil {
			s.WellnessAlerts = *req.WellnessAlerts
		}
		if req.StressNotifications != nil {
			s.StressNotifications = *req.StressNotifications
		}
		if req.DefaultFocusSession != nil {
			s.DefaultFocusSession = *req.DefaultFocusSession
		}
		if req.BreakReminders != nil {
			s.BreakReminders = *req.BreakReminders
		}
	}), nil
}
