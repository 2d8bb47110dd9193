package presenter

const (
	IncrementCmd = "counter:increment"
	DecrementCmd = "counter:decrement"
	ResetCmd     = "counter:reset"
)

type Increment struct{}

func (Increment) TypeName() string {
	return IncrementCmd
}

type Decrement struct{}

func (Decrement) TypeName() string {
	return DecrementCmd
}

type Reset struct{}

func (Reset) TypeName() string {
	return ResetCmd
}
