//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
)

func initializeApp(ctx context.Context, cfg Config) (*App, func(), error) {
	panic(wire.Build(Providers))
}
