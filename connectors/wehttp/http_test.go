package wehttp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/presenter"
	"github.com/weegigs/wee-counter-go/we"
)

type test = func(t *testing.T)

func newHandler(c *counter.Counter) (http.Handler, *we.Journal) {
	journal := we.NewJournal()
	quiet := zerolog.Nop()
	p := presenter.New(c, presenter.WithJournal(journal), presenter.Logger(&quiet))

	return NewHandler(p, Journal(journal), Logger(&quiet)), journal
}

func post(handler http.Handler, contentType string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/counter", strings.NewReader(body))
	request.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	return recorder
}

func decodeSnapshot(t *testing.T, recorder *httptest.ResponseRecorder) presenter.Snapshot {
	t.Helper()

	var snapshot presenter.Snapshot
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &snapshot))

	return snapshot
}

func getsCounter(t *testing.T) {
	handler, _ := newHandler(counter.Default())

	recorder := get(handler, "/counter")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, presenter.Snapshot{
		Value:         0,
		Min:           -100,
		Max:           100,
		CanIncrement:  true,
		CanDecrement:  true,
		StatusMessage: presenter.ReadyMessage,
	}, decodeSnapshot(t, recorder))
}

func executesCommands(t *testing.T) {
	handler, _ := newHandler(counter.Default())

	recorder := post(handler, "application/json", `{"command":"counter:increment"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	snapshot := decodeSnapshot(t, recorder)
	assert.Equal(t, 1, snapshot.Value)
	assert.Equal(t, "Incremented to 1", snapshot.StatusMessage)

	recorder = post(handler, "application/json; charset=utf-8", `{"command":"counter:reset","payload":{}}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, presenter.CounterResetMessage, decodeSnapshot(t, recorder).StatusMessage)
}

func reportsLimitsAsState(t *testing.T) {
	handler, _ := newHandler(counter.New(-100, -100, 100))

	recorder := post(handler, "application/json", `{"command":"counter:decrement"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	snapshot := decodeSnapshot(t, recorder)
	assert.Equal(t, -100, snapshot.Value)
	assert.False(t, snapshot.CanDecrement)
	assert.Equal(t, presenter.MinReachedMessage, snapshot.StatusMessage)
}

func rejectsUnsupportedContentType(t *testing.T) {
	handler, _ := newHandler(counter.Default())

	recorder := post(handler, "text/plain", `{"command":"counter:increment"}`)
	assert.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
}

func rejectsMalformedBodies(t *testing.T) {
	handler, _ := newHandler(counter.Default())

	assert.Equal(t, http.StatusBadRequest, post(handler, "application/json", `{"command":`).Code)
	assert.Equal(t, http.StatusBadRequest, post(handler, "application/json", `{}`).Code)
}

func rejectsUnknownCommands(t *testing.T) {
	handler, _ := newHandler(counter.Default())

	recorder := post(handler, "application/json", `{"command":"counter:randomize"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "unknown command: counter:randomize")
}

func listsEvents(t *testing.T) {
	handler, journal := newHandler(counter.Default())

	post(handler, "application/json", `{"command":"counter:increment"}`)
	post(handler, "application/json", `{"command":"counter:decrement"}`)

	recorder := get(handler, "/counter/events")
	require.Equal(t, http.StatusOK, recorder.Code)

	var events []we.RecordedEvent
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, we.EventType("counter:incremented"), events[0].EventType)
	assert.Equal(t, we.EventType("counter:decremented"), events[1].EventType)
	assert.Equal(t, journal.Revision(), events[1].Revision)
}

func listsNoEventsWithoutJournal(t *testing.T) {
	handler := NewHandler(presenter.New(counter.Default()))

	recorder := get(handler, "/counter/events")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestHandler(t *testing.T) {
	t.Run("gets counter", getsCounter)
	t.Run("executes commands", executesCommands)
	t.Run("reports limits as state", reportsLimitsAsState)
	t.Run("rejects unsupported content type", rejectsUnsupportedContentType)
	t.Run("rejects malformed bodies", rejectsMalformedBodies)
	t.Run("rejects unknown commands", rejectsUnknownCommands)
	t.Run("lists events", listsEvents)
	t.Run("lists no events without journal", listsNoEventsWithoutJournal)
}
