package we

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type CommandName string
type Command any

type RemoteCommand struct {
	CommandName CommandName `json:"command"`
	Payload     Data        `json:"payload"`
}

func CommandNameOf(command Command) CommandName {
	var name CommandName
	switch cmd := command.(type) {
	case RemoteCommand:
		name = cmd.CommandName
	case *RemoteCommand:
		name = cmd.CommandName
	default:
		name = CommandName(NameOf(command))
	}

	return name
}

type CommandHandler[T any] interface {
	HandleCommand(ctx context.Context, cmd Command, state *T) error
	HandleRemoteCommand(ctx context.Context, cmd RemoteCommand, state *T) error
}

type CommandHandlerFunction[T any, C any] func(ctx context.Context, cmd C, state *T) error

func (f CommandHandlerFunction[T, C]) HandleCommand(ctx context.Context, cmd Command, state *T) error {
	command, ok := cmd.(C)
	if !ok {
		return UnexpectedCommand(cmd)
	}

	return f(ctx, command, state)
}

// HandleRemoteCommand decodes the payload into C. An empty payload yields the
// zero value of C.
func (f CommandHandlerFunction[T, C]) HandleRemoteCommand(ctx context.Context, cmd RemoteCommand, state *T) error {
	var command C

	if len(cmd.Payload.Data) > 0 {
		if cmd.Payload.Encoding != JSONEncoding {
			return InvalidEncoding(JSONEncoding, cmd.Payload.Encoding)
		}

		if err := json.UnmarshalContext(ctx, cmd.Payload.Data, &command); err != nil {
			return errors.Wrapf(err, "failed to decode %s payload", cmd.CommandName)
		}
	}

	return f(ctx, command, state)
}
