package we

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "wee-counter"

type CommandHandlers[T any] map[CommandName]CommandHandler[T]

type Dispatcher[T any] interface {
	Dispatch(ctx context.Context, state *T, command Command) error
}

type RoutedDispatcher[T any] struct {
	Handlers CommandHandlers[T]
}

func (d *RoutedDispatcher[T]) Dispatch(ctx context.Context, state *T, command Command) error {
	commandName := CommandNameOf(command)

	ctx, span := otel.Tracer(tracerName).Start(ctx, fmt.Sprintf("dispatch %s", commandName))
	defer span.End()
	span.SetAttributes(attribute.String("command", string(commandName)))

	handler := d.Handlers[commandName]
	if handler == nil {
		err := CommandNotFound(commandName)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := execute(ctx, handler, command, state); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func execute[T any](ctx context.Context, handler CommandHandler[T], command Command, state *T) error {
	switch cmd := command.(type) {
	case RemoteCommand:
		return handler.HandleRemoteCommand(ctx, cmd, state)
	case *RemoteCommand:
		return handler.HandleRemoteCommand(ctx, *cmd, state)
	default:
		return handler.HandleCommand(ctx, cmd, state)
	}
}
