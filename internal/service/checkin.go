package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/config"
	"github.com/yourname/serenedesk/internal/sentiment"
	"github.com/yourname/serenedesk/internal/session"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Option tags read the static tables so the lists live in one place.
	for tag, opts := range map[string][]string{
		"quick_mood":         config.QuickMoods,
		"quick_energy":       config.QuickEnergies,
		"reminder_frequency": config.ReminderFrequencies,
		"focus_session":      config.FocusSessionLengths,
	} {
		if err := v.RegisterValidation(tag, oneOfList(opts)); err != nil {
			panic("validator: " + err.Error())
		}
	}
	return v
}

func oneOfList(opts []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(opts, fl.Field().String())
	}
}

// validationError turns validator output into an internal.ErrValidation.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return internal.NewValidationError(fe.Field(), fmt.Sprintf("failed %q check", fe.Tag()))
	}
	return fmt.Errorf("%w: %v", internal.ErrValidation, err)
}

type CheckinRequest struct {
	Text        string `json:"text" validate:"required,max=5000"`
	QuickMood   string `json:"quick_mood,omitempty" validate:"omitempty,quick_mood"`
	QuickEnergy string `json:"quick_energy,omitempty" validate:"omitempty,quick_energy"`
}

func ValidateCheckinRequest(req *CheckinRequest) error {
	if err := validate.Struct(req); err != nil {
		return validationError(err)
	}
	if strings.TrimSpace(req.Text) == "" {
		return internal.NewValidationError("text", "must not be empty")
	}
	return nil
}

// EnhanceTranscript appends the quick selectors to the free text.
func EnhanceTranscript(req *CheckinRequest) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(req.Text))
	if req.QuickMood != "" {
		b.WriteString(" My mood right now is " + req.QuickMood + ".")
	}
	if req.QuickEnergy != "" {
		b.WriteString(" My energy level is " + req.QuickEnergy + ".")
	}
	return b.String()
}

// SubmitCheckin classifies the text, asks for suggestions and records the
// result. The store is only touched once both analyzer calls succeeded, so a
// failing analyzer leaves the session exactly as it was.
func SubmitCheckin(ctx context.Context, analyzer sentiment.Analyzer, store *session.Store, req *CheckinRequest) (*internal.CheckinEntry, error) {
	if err := ValidateCheckinRequest(req); err != nil {
		return nil, err
	}
	transcript := EnhanceTranscript(req)

	c, err := analyzer.Analyze(ctx, transcript)
	if err != nil {
		return nil, externalError("analyze check-in", err)
	}
	sugg, err := analyzer.GenerateSuggestions(ctx, transcript, c)
	if err != nil {
		return nil, externalError("generate suggestions", err)
	}

	entry, err := store.RecordCheckin(transcript, c, sugg)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func externalError(op string, err error) error {
	if errors.Is(err, internal.ErrExternalService) {
		return err
	}
	return internal.NewExternalServiceError(op, err)
}
