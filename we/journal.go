package we

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type EventType string

func (et EventType) String() string {
	return string(et)
}

type DomainEvent any

func EventTypeOf(event DomainEvent) EventType {
	return EventType(NameOf(event))
}

type RecordedEvent struct {
	EventID   EventID   `json:"event-id"`
	Revision  Revision  `json:"revision"`
	EventType EventType `json:"type"`
	Timestamp Timestamp `json:"timestamp"`
	Data      Data      `json:"data"`
}

const DefaultJournalCapacity = 256

type JournalOption func(journal *Journal)

func WithCapacity(capacity int) JournalOption {
	return func(journal *Journal) {
		journal.capacity = capacity
	}
}

func WithClock(clock func() time.Time) JournalOption {
	return func(journal *Journal) {
		journal.clock = clock
	}
}

// Journal is an in-memory, bounded log of recorded events. Once full, the
// oldest events are dropped.
type Journal struct {
	lk        sync.RWMutex
	capacity  int
	clock     func() time.Time
	generator *RevisionGenerator
	revision  Revision
	events    []RecordedEvent
}

func NewJournal(options ...JournalOption) *Journal {
	journal := &Journal{
		capacity:  DefaultJournalCapacity,
		clock:     time.Now,
		generator: NewRevisionGenerator(),
		revision:  InitialRevision,
	}
	for _, option := range options {
		option(journal)
	}
	if journal.capacity < 1 {
		journal.capacity = 1
	}

	return journal
}

// Append records events in order. Nothing is recorded if any event fails to
// encode.
func (j *Journal) Append(ctx context.Context, events ...DomainEvent) (Revision, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "append events")
	defer span.End()
	span.SetAttributes(attribute.Int("events", len(events)))

	now := j.clock()
	recorded := make([]RecordedEvent, len(events))
	for i, event := range events {
		data, err := MarshalToData(event)
		if err != nil {
			span.RecordError(err)
			return "", errors.Wrap(err, fmt.Sprintf("failed to encode %s", EventTypeOf(event)))
		}

		recorded[i] = RecordedEvent{
			EventID:   j.generator.NewEventID(now),
			EventType: EventTypeOf(event),
			Timestamp: TimestampFromTime(now),
			Data:      data,
		}
	}

	j.lk.Lock()
	defer j.lk.Unlock()

	for i := range recorded {
		j.revision = j.generator.NewRevision(now)
		recorded[i].Revision = j.revision
	}

	j.events = append(j.events, recorded...)
	if overflow := len(j.events) - j.capacity; overflow > 0 {
		j.events = append(j.events[:0:0], j.events[overflow:]...)
	}

	return j.revision, nil
}

func (j *Journal) Events() []RecordedEvent {
	j.lk.RLock()
	defer j.lk.RUnlock()

	events := make([]RecordedEvent, len(j.events))
	copy(events, j.events)

	return events
}

func (j *Journal) Revision() Revision {
	j.lk.RLock()
	defer j.lk.RUnlock()

	return j.revision
}

func (j *Journal) Last() (RecordedEvent, bool) {
	j.lk.RLock()
	defer j.lk.RUnlock()

	if len(j.events) == 0 {
		return RecordedEvent{}, false
	}

	return j.events[len(j.events)-1], true
}
