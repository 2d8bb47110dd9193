// Package presenter adapts a counter.Counter for views. It exposes the
// counter as observable fields and accepts the increment, decrement and
// reset commands.
package presenter

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/observable"
	"github.com/weegigs/wee-counter-go/we"
)

const (
	ReadyMessage        = "Ready"
	MaxReachedMessage   = "Maximum value reached!"
	MinReachedMessage   = "Minimum value reached!"
	CounterResetMessage = "Counter reset"
)

type Option func(p *CounterPresenter)

func WithJournal(journal *we.Journal) Option {
	return func(p *CounterPresenter) {
		p.journal = journal
	}
}

func Logger(log *zerolog.Logger) Option {
	return func(p *CounterPresenter) {
		p.log = log
	}
}

// CounterPresenter is not safe for concurrent use; views that serve several
// goroutines must serialize calls.
type CounterPresenter struct {
	counter    *counter.Counter
	journal    *we.Journal
	log        *zerolog.Logger
	dispatcher *we.RoutedDispatcher[CounterPresenter]

	displayValue  *observable.Value[int]
	canIncrement  *observable.Value[bool]
	canDecrement  *observable.Value[bool]
	statusMessage *observable.Value[string]
}

func New(c *counter.Counter, options ...Option) *CounterPresenter {
	p := &CounterPresenter{
		counter:    c,
		dispatcher: &we.RoutedDispatcher[CounterPresenter]{Handlers: CommandHandlers()},

		displayValue:  observable.New(c.Value()),
		canIncrement:  observable.New(c.CanIncrement()),
		canDecrement:  observable.New(c.CanDecrement()),
		statusMessage: observable.New(ReadyMessage),
	}
	for _, option := range options {
		option(p)
	}
	if p.log == nil {
		p.log = &log.Logger
	}

	return p
}

func (p *CounterPresenter) DisplayValue() observable.Observable[int] {
	return p.displayValue
}

func (p *CounterPresenter) CanIncrement() observable.Observable[bool] {
	return p.canIncrement
}

func (p *CounterPresenter) CanDecrement() observable.Observable[bool] {
	return p.canDecrement
}

func (p *CounterPresenter) StatusMessage() observable.Observable[string] {
	return p.statusMessage
}

func (p *CounterPresenter) Increment() {
	p.increment(context.Background())
}

func (p *CounterPresenter) Decrement() {
	p.decrement(context.Background())
}

func (p *CounterPresenter) Reset() {
	p.reset(context.Background())
}

// Execute routes a named or remote command to its handler. Reaching a bound
// is not an error.
func (p *CounterPresenter) Execute(ctx context.Context, command we.Command) error {
	if err := p.dispatcher.Dispatch(ctx, p, command); err != nil {
		return errors.Wrap(err, "counter command failed")
	}

	return nil
}

type Snapshot struct {
	Value         int    `json:"value"`
	Min           int    `json:"min"`
	Max           int    `json:"max"`
	CanIncrement  bool   `json:"can-increment"`
	CanDecrement  bool   `json:"can-decrement"`
	StatusMessage string `json:"status"`
}

func (p *CounterPresenter) Snapshot() Snapshot {
	return Snapshot{
		Value:         p.displayValue.Get(),
		Min:           p.counter.Min(),
		Max:           p.counter.Max(),
		CanIncrement:  p.canIncrement.Get(),
		CanDecrement:  p.canDecrement.Get(),
		StatusMessage: p.statusMessage.Get(),
	}
}

func (p *CounterPresenter) increment(ctx context.Context) {
	if !p.counter.Increment() {
		p.statusMessage.Set(MaxReachedMessage)
		p.record(ctx, LimitReached{Direction: Up, Value: p.counter.Value()})
		return
	}

	p.displayValue.Set(p.counter.Value())
	p.statusMessage.Set(fmt.Sprintf("Incremented to %d", p.counter.Value()))
	p.refresh()
	p.record(ctx, Incremented{Value: p.counter.Value()})
}

func (p *CounterPresenter) decrement(ctx context.Context) {
	if !p.counter.Decrement() {
		p.statusMessage.Set(MinReachedMessage)
		p.record(ctx, LimitReached{Direction: Down, Value: p.counter.Value()})
		return
	}

	p.displayValue.Set(p.counter.Value())
	p.statusMessage.Set(fmt.Sprintf("Decremented to %d", p.counter.Value()))
	p.refresh()
	p.record(ctx, Decremented{Value: p.counter.Value()})
}

func (p *CounterPresenter) reset(ctx context.Context) {
	p.counter.Reset()
	p.displayValue.Set(p.counter.Value())
	p.statusMessage.Set(CounterResetMessage)
	p.refresh()
	p.record(ctx, WasReset{Value: p.counter.Value()})
}

func (p *CounterPresenter) refresh() {
	p.canIncrement.Set(p.counter.CanIncrement())
	p.canDecrement.Set(p.counter.CanDecrement())
}

func (p *CounterPresenter) record(ctx context.Context, event we.DomainEvent) {
	if p.journal == nil {
		return
	}

	if _, err := p.journal.Append(ctx, event); err != nil {
		p.log.Warn().Err(err).Str("event", we.EventTypeOf(event).String()).Msg("failed to record event")
	}
}
