package counter

import "fmt"

type Options struct {
	Initial int
	Min     int
	Max     int
}

func DefaultOptions() Options {
	return Options{Initial: DefaultInitial, Min: DefaultMin, Max: DefaultMax}
}

type InvalidBoundsError struct {
	Options Options
}

func (e *InvalidBoundsError) Error() string {
	o := e.Options
	if o.Min > o.Max {
		return fmt.Sprintf("min %d is greater than max %d", o.Min, o.Max)
	}

	return fmt.Sprintf("initial value %d is outside [%d, %d]", o.Initial, o.Min, o.Max)
}

func (o Options) Validate() error {
	if o.Min > o.Max || o.Initial < o.Min || o.Initial > o.Max {
		return &InvalidBoundsError{Options: o}
	}

	return nil
}

func FromOptions(o Options) *Counter {
	return New(o.Initial, o.Min, o.Max)
}
