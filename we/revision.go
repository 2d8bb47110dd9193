package we

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type Revision string

const InitialRevision = Revision("00000000000000000000000000")

func (revision Revision) Timestamp() Timestamp {
	v := ulid.MustParse(string(revision))
	return TimestampFromTime(ulid.Time(v.Time()))
}

func (revision Revision) String() string {
	return string(revision)
}

type EventID string

func (id EventID) String() string {
	return string(id)
}

type RevisionGenerator struct {
	lk      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewRevisionGenerator() *RevisionGenerator {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)

	return &RevisionGenerator{
		entropy: entropy,
	}
}

func (g *RevisionGenerator) NewRevision(t time.Time) Revision {
	return Revision(g.next(t))
}

func (g *RevisionGenerator) NewEventID(t time.Time) EventID {
	return EventID(g.next(t))
}

func (g *RevisionGenerator) next(t time.Time) string {
	g.lk.Lock()
	defer g.lk.Unlock()

	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}
