package we

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestRecorded struct {
	Value int `json:"value"`
}

type unencodable struct{}

func (unencodable) MarshalJSON() ([]byte, error) {
	return nil, errors.New("unencodable")
}

var fixed = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixed }

func startsEmpty(t *testing.T) {
	journal := NewJournal()

	assert.Empty(t, journal.Events())
	assert.Equal(t, InitialRevision, journal.Revision())

	_, ok := journal.Last()
	assert.False(t, ok)
}

func recordsEvents(t *testing.T) {
	journal := NewJournal(WithClock(fixedClock))

	revision, err := journal.Append(context.Background(), TestRecorded{Value: 1}, TestRecorded{Value: 2})
	require.NoError(t, err)

	events := journal.Events()
	require.Len(t, events, 2)
	assert.Equal(t, revision, journal.Revision())
	assert.Equal(t, revision, events[1].Revision)
	assert.Greater(t, events[1].Revision.String(), events[0].Revision.String())
	assert.Equal(t, EventType("we:test-recorded"), events[0].EventType)
	assert.Equal(t, Timestamp("2024-03-01T12:30:00Z"), events[0].Timestamp)

	var decoded TestRecorded
	require.NoError(t, UnmarshalFromData(events[1].Data, &decoded))
	assert.Equal(t, 2, decoded.Value)

	last, ok := journal.Last()
	assert.True(t, ok)
	assert.Equal(t, events[1], last)
}

func dropsOldestEvents(t *testing.T) {
	journal := NewJournal(WithCapacity(3))

	for i := 0; i < 5; i++ {
		_, err := journal.Append(context.Background(), TestRecorded{Value: i})
		require.NoError(t, err)
	}

	events := journal.Events()
	require.Len(t, events, 3)

	var first TestRecorded
	require.NoError(t, UnmarshalFromData(events[0].Data, &first))
	assert.Equal(t, 2, first.Value)
}

func rejectsUnencodableEvents(t *testing.T) {
	journal := NewJournal()

	_, err := journal.Append(context.Background(), TestRecorded{Value: 1}, unencodable{})
	assert.Error(t, err)
	assert.Empty(t, journal.Events())
}

func TestJournal(t *testing.T) {
	t.Run("starts empty", startsEmpty)
	t.Run("records events", recordsEvents)
	t.Run("drops oldest events", dropsOldestEvents)
	t.Run("rejects unencodable events", rejectsUnencodableEvents)
}
