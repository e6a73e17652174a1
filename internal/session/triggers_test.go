package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/serenedesk/internal"
)

func TestTriggerTable_TopN(t *testing.T) {
	tt := NewTriggerTable()
	for i := 0; i < 3; i++ {
		tt.Increment("deadline")
	}
	for i := 0; i < 2; i++ {
		tt.Increment("meetings")
	}

	top := tt.TopN(1)
	require.Len(t, top, 1)
	assert.Equal(t, "deadline", top[0].Trigger)
	assert.Equal(t, 3, top[0].Frequency)
}

func TestTriggerTable_TiesKeepFirstSeenOrder(t *testing.T) {
	tt := NewTriggerTable()
	tt.Increment("emails")
	tt.Increment("meetings")
	tt.Increment("deadline")
	tt.Increment("deadline")
	tt.Increment("meetings")

	top := tt.TopN(0)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"meetings", "deadline", "emails"},
		[]string{top[0].Trigger, top[1].Trigger, top[2].Trigger})
}

func TestTriggerTable_NoNormalization(t *testing.T) {
	tt := NewTriggerTable()
	tt.Increment("Deadline")
	tt.Increment("deadline")
	tt.Increment("deadlines")
	assert.Equal(t, 3, tt.Len())
}

func TestTriggerTable_TopNLargerThanTable(t *testing.T) {
	tt := NewTriggerTable()
	tt.Increment("noise")
	assert.Len(t, tt.TopN(10), 1)
	assert.Empty(t, NewTriggerTable().TopN(3))
}

func TestRegistry_Ownership(t *testing.T) {
	r := NewRegistry(nil)
	st := r.Create("u1")

	got, err := r.Get(st.ID, "u1")
	require.NoError(t, err)
	assert.Same(t, st, got)

	_, err = r.Get(st.ID, "u2")
	assert.True(t, errors.Is(err, internal.ErrForbidden))

	_, err = r.Get("missing", "u1")
	assert.True(t, errors.Is(err, internal.ErrNotFound))

	assert.True(t, errors.Is(r.Delete(st.ID, "u2"), internal.ErrForbidden))
	require.NoError(t, r.Delete(st.ID, "u1"))
	assert.True(t, errors.Is(r.Delete(st.ID, "u1"), internal.ErrNotFound))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_SessionsAreIndependent(t *testing.T) {
	r := NewRegistry(nil)
	a := r.Create("u1")
	b := r.Create("u1")
	r.Create("u2")

	_, err := a.RecordCheckin("hello", internal.Classification{MoodScore: 7}, internal.Suggestions{})
	require.NoError(t, err)

	assert.Len(t, a.Checkins(), 1)
	assert.Empty(t, b.Checkins())
	assert.Len(t, r.ListByUser("u1"), 2)
	assert.Len(t, r.ListByUser("u2"), 1)
}
