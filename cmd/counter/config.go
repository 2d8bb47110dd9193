package main

import (
	"fmt"
	"io"
	"os"

	"github.com/weegigs/wee-counter-go/counter"
)

const (
	TraceNone      = "none"
	TraceConsole   = "console"
	TraceJaeger    = "jaeger"
	TraceHoneycomb = "honeycomb"
)

const DefaultAddr = ":9080"

type Config struct {
	Counter  counter.Options
	LogLevel string
	Trace    string
	Addr     string
	// Output receives logs and console traces.
	Output io.Writer
}

func DefaultConfig() Config {
	addr := os.Getenv("COUNTER_ADDR")
	if addr == "" {
		addr = DefaultAddr
	}

	return Config{
		Counter:  counter.DefaultOptions(),
		LogLevel: "info",
		Trace:    TraceNone,
		Addr:     addr,
		Output:   os.Stderr,
	}
}

func (c Config) Validate() error {
	if err := c.Counter.Validate(); err != nil {
		return err
	}

	switch c.Trace {
	case TraceNone, TraceConsole, TraceJaeger, TraceHoneycomb:
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter %q", c.Trace)
	}
}
