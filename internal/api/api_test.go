package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/serenedesk/internal"
	"github.com/yourname/serenedesk/internal/auth"
	"github.com/yourname/serenedesk/internal/config"
	"github.com/yourname/serenedesk/internal/sentiment"
	"github.com/yourname/serenedesk/internal/session"
	"github.com/yourname/serenedesk/internal/storage"
)

const (
	aliceToken = "MOCK-TOKEN"
	bobToken   = "OTHER-TOKEN"
)

type envelope struct {
	Data  json.RawMessage    `json:"data"`
	Meta  map[string]any     `json:"meta"`
	Error *internal.AppError `json:"error"`
}

type downAnalyzer struct{}

func (downAnalyzer) Name() string { return "down" }

func (downAnalyzer) Analyze(ctx context.Context, text string) (internal.Classification, error) {
	return internal.Classification{}, internal.NewExternalServiceError("analyze", errors.New("401 invalid api key"))
}

func (downAnalyzer) GenerateSuggestions(ctx context.Context, text string, c internal.Classification) (internal.Suggestions, error) {
	return internal.Suggestions{}, nil
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	app    *Container
}

func setupRouter(t *testing.T, analyzer sentiment.Analyzer) *testServer {
	gin.SetMode(gin.TestMode)
	logger := internal.NopLogger()
	app := &Container{
		Log:      logger,
		Registry: session.NewRegistry(nil),
		Analyze:  analyzer,
		Archive:  storage.NewMemoryStorage(),
	}
	provider := auth.NewLocalAuthProvider(logger,
		internal.User{ID: "u1", Token: aliceToken, Name: "Alice"},
		internal.User{ID: "u2", Token: bobToken, Name: "Bob"},
	)
	cfg := &config.Config{Env: "development"}
	return &testServer{t: t, router: NewRouter(app, provider, cfg), app: app}
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *testServer) newSession(token string) string {
	w := s.do(http.MethodPost, "/sessions", token, "")
	require.Equal(s.t, http.StatusCreated, w.Code)
	var ov struct {
		ID string `json:"id"`
	}
	decode(s.t, w, &ov)
	require.NotEmpty(s.t, ov.ID)
	return ov.ID
}

func TestPublicRoutes(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())

	w := s.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var scapes []config.Soundscape
	w = s.do(http.MethodGet, "/soundscapes", "", "")
	decode(t, w, &scapes)
	assert.Len(t, scapes, 6)

	var prompts []string
	w = s.do(http.MethodGet, "/journal/prompts", "", "")
	decode(t, w, &prompts)
	assert.Equal(t, config.JournalPrompts, prompts)
}

func TestAuthRequired(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/sessions", "", "").Code)
	w := s.do(http.MethodPost, "/sessions", "nope", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env := decode(t, w, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusUnauthorized, env.Error.Code)
}

func TestCheckinFlow(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	id := s.newSession(aliceToken)
	base := "/sessions/" + id

	w := s.do(http.MethodPost, base+"/checkins", aliceToken,
		`{"text":"Deadline tomorrow and back-to-back meetings, I'm stressed, anxious and overwhelmed","quick_energy":"Exhausted"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var entry internal.CheckinEntry
	env := decode(t, w, &entry)
	assert.Equal(t, internal.StressHigh, entry.StressLevel)
	assert.Equal(t, internal.EnergyLow, entry.EnergyLevel)
	assert.True(t, strings.HasSuffix(entry.Transcript, "My energy level is Exhausted."))
	assert.Equal(t, "keyword", env.Meta["analyzer"])

	w = s.do(http.MethodPost, base+"/checkins", aliceToken, `{"text":"Calm and productive afternoon, feeling accomplished"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var entries []internal.CheckinEntry
	decode(t, s.do(http.MethodGet, base+"/checkins", aliceToken, ""), &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, internal.StressLow, entries[1].StressLevel)

	decode(t, s.do(http.MethodGet, base+"/checkins?limit=1", aliceToken, ""), &entries)
	assert.Len(t, entries, 1)

	var report struct {
		Count         int      `json:"count"`
		AvgMood       *float64 `json:"avg_mood"`
		HighStressPct float64  `json:"high_stress_pct"`
	}
	decode(t, s.do(http.MethodGet, base+"/analytics?window=all", aliceToken, ""), &report)
	assert.Equal(t, 2, report.Count)
	require.NotNil(t, report.AvgMood)
	assert.InDelta(t, 50.0, report.HighStressPct, 1e-9)

	var top []session.TriggerCount
	decode(t, s.do(http.MethodGet, base+"/triggers?n=1", aliceToken, ""), &top)
	require.Len(t, top, 1)
	assert.Equal(t, "deadline", top[0].Trigger)

	var rec struct {
		Suggestion string             `json:"suggestion"`
		Soundscape *config.Soundscape `json:"soundscape"`
	}
	decode(t, s.do(http.MethodGet, base+"/recommendation", aliceToken, ""), &rec)
	assert.Equal(t, "productivity", rec.Suggestion)
	require.NotNil(t, rec.Soundscape)
	assert.Equal(t, "coffee_shop", rec.Soundscape.ID)
}

func TestTriggers_DefaultTopTen(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	id := s.newSession(aliceToken)
	st, err := s.app.Registry.Get(id, "u1")
	require.NoError(t, err)

	tags := make([]string, 12)
	for i := range tags {
		tags[i] = "tag-" + string(rune('a'+i))
	}
	_, err = st.RecordCheckin("busy", internal.Classification{MoodScore: 4, StressTriggers: tags}, internal.Suggestions{})
	require.NoError(t, err)

	var top []session.TriggerCount
	decode(t, s.do(http.MethodGet, "/sessions/"+id+"/triggers", aliceToken, ""), &top)
	require.Len(t, top, 10)
	assert.Equal(t, "tag-a", top[0].Trigger)

	decode(t, s.do(http.MethodGet, "/sessions/"+id+"/triggers?n=0", aliceToken, ""), &top)
	assert.Len(t, top, 12)
}

func TestListCheckins_QuickSelectorOptions(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	id := s.newSession(aliceToken)

	env := decode(t, s.do(http.MethodGet, "/sessions/"+id+"/checkins", aliceToken, ""), nil)
	assert.Len(t, env.Meta["quick_moods"], len(config.QuickMoods))
	assert.Len(t, env.Meta["quick_energies"], len(config.QuickEnergies))
}

func TestCheckin_Rejections(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	id := s.newSession(aliceToken)
	base := "/sessions/" + id

	for _, body := range []string{`{"text":"   "}`, `{"text":""}`, `{"text":"ok","quick_mood":"Elated"}`, `not json`} {
		w := s.do(http.MethodPost, base+"/checkins", aliceToken, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, s.app.Registry.ListByUser("u1")[0].Checkins())

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, base+"/analytics?window=fortnight", aliceToken, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, base+"/triggers?n=-1", aliceToken, "").Code)
}

func TestCheckin_AnalyzerDown(t *testing.T) {
	s := setupRouter(t, downAnalyzer{})
	id := s.newSession(aliceToken)

	w := s.do(http.MethodPost, "/sessions/"+id+"/checkins", aliceToken, `{"text":"hello"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	env := decode(t, w, nil)
	require.NotNil(t, env.Error)
	assert.NotContains(t, env.Error.Message, "api key")

	st, err := s.app.Registry.Get(id, "u1")
	require.NoError(t, err)
	assert.Empty(t, st.Checkins())
}

func TestSessionOwnership(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	id := s.newSession(aliceToken)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/sessions/"+id, bobToken, "").Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/sessions/"+id+"/checkins", bobToken, `{"text":"hi"}`).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/sessions/missing", aliceToken, "").Code)

	var list []map[string]any
	decode(t, s.do(http.MethodGet, "/sessions", bobToken, ""), &list)
	assert.Empty(t, list)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/sessions/"+id, aliceToken, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/sessions/"+id, aliceToken, "").Code)
}

func TestJournalRoutes(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	base := "/sessions/" + s.newSession(aliceToken)

	w := s.do(http.MethodPost, base+"/journal", aliceToken, `{"content":"a quiet productive day"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var entry internal.JournalEntry
	decode(t, w, &entry)
	assert.Equal(t, 4, entry.WordCount)
	assert.Equal(t, internal.FreeWritingPrompt, entry.Prompt)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, base+"/journal", aliceToken, `{"content":"  "}`).Code)

	var hist struct {
		Entries []internal.JournalEntry `json:"entries"`
		Stats   struct {
			TotalWords int `json:"total_words"`
		} `json:"stats"`
	}
	decode(t, s.do(http.MethodGet, base+"/journal", aliceToken, ""), &hist)
	require.Len(t, hist.Entries, 1)
	assert.Equal(t, 4, hist.Stats.TotalWords)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, base+"/journal/"+entry.ID, aliceToken, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, base+"/journal/"+entry.ID, aliceToken, "").Code)
}

func TestSettingsRoutes(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	base := "/sessions/" + s.newSession(aliceToken)

	var st internal.Settings
	decode(t, s.do(http.MethodGet, base+"/settings", aliceToken, ""), &st)
	assert.Equal(t, internal.DefaultSettings(), st)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, base+"/settings", aliceToken, `{"default_focus_session":"2h"}`).Code)

	w := s.do(http.MethodPut, base+"/settings", aliceToken, `{"default_focus_session":"45m","wellness_alerts":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &st)
	assert.Equal(t, "45m", st.DefaultFocusSession)
	assert.False(t, st.WellnessAlerts)
	assert.True(t, st.BreakReminders)

	s.do(http.MethodPost, base+"/checkins", aliceToken, `{"text":"fine"}`)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, base+"/clear", aliceToken, "").Code)
	decode(t, s.do(http.MethodGet, base+"/settings", aliceToken, ""), &st)
	assert.Equal(t, "45m", st.DefaultFocusSession)

	var entries []internal.CheckinEntry
	decode(t, s.do(http.MethodGet, base+"/checkins", aliceToken, ""), &entries)
	assert.Empty(t, entries)
}

func TestExportRoutes(t *testing.T) {
	s := setupRouter(t, sentiment.NewKeywordAnalyzer())
	base := "/sessions/" + s.newSession(aliceToken)
	s.do(http.MethodPost, base+"/checkins", aliceToken, `{"text":"too many emails and a deadline"}`)
	s.do(http.MethodPost, base+"/journal", aliceToken, `{"content":"noted"}`)

	w := s.do(http.MethodGet, base+"/export", aliceToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "serenedesk_data_")
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Len(t, raw, 3)
	assert.Contains(t, raw, "mood_history")
	assert.Contains(t, raw, "wellness_log")
	assert.Contains(t, raw, "stress_triggers")

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, base+"/export?reset=maybe", aliceToken, "").Code)

	w = s.do(http.MethodPost, base+"/export?reset=true", aliceToken, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var rec internal.ExportRecord
	decode(t, w, &rec)
	assert.Len(t, rec.Snapshot.MoodHistory, 1)
	assert.Equal(t, map[string]int{"emails": 1, "deadline": 1}, rec.Snapshot.StressTriggers)

	var entries []internal.CheckinEntry
	decode(t, s.do(http.MethodGet, base+"/checkins", aliceToken, ""), &entries)
	assert.Empty(t, entries)

	var recs []internal.ExportRecord
	decode(t, s.do(http.MethodGet, "/exports", aliceToken, ""), &recs)
	require.Len(t, recs, 1)
	assert.Equal(t, rec.ID, recs[0].ID)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/exports/"+rec.ID, aliceToken, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/exports/"+rec.ID, bobToken, "").Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(internal.NewValidationError("x", "bad")))
	assert.Equal(t, http.StatusNotFound, StatusFor(internal.NewNotFoundError("x", "1")))
	assert.Equal(t, http.StatusForbidden, StatusFor(internal.ErrForbidden))
	assert.Equal(t, http.StatusBadGateway, StatusFor(internal.NewExternalServiceError("op", errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}
