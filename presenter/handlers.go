package presenter

import (
	"context"

	"github.com/weegigs/wee-counter-go/we"
)

func increment() we.CommandHandler[CounterPresenter] {
	var handler we.CommandHandlerFunction[CounterPresenter, Increment] = func(ctx context.Context, _ Increment, p *CounterPresenter) error {
		p.increment(ctx)
		return nil
	}

	return handler
}

func decrement() we.CommandHandler[CounterPresenter] {
	var handler we.CommandHandlerFunction[CounterPresenter, Decrement] = func(ctx context.Context, _ Decrement, p *CounterPresenter) error {
		p.decrement(ctx)
		return nil
	}

	return handler
}

func reset() we.CommandHandler[CounterPresenter] {
	var handler we.CommandHandlerFunction[CounterPresenter, Reset] = func(ctx context.Context, _ Reset, p *CounterPresenter) error {
		p.reset(ctx)
		return nil
	}

	return handler
}

func CommandHandlers() we.CommandHandlers[CounterPresenter] {
	return we.CommandHandlers[CounterPresenter]{
		IncrementCmd: increment(),
		DecrementCmd: decrement(),
		ResetCmd:     reset(),
	}
}
