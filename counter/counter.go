package counter

const (
	DefaultInitial = 0
	DefaultMin     = -100
	DefaultMax     = 100
)

type Counter struct {
	value int
	min   int
	max   int
}

func New(initial int, min int, max int) *Counter {
	return &Counter{value: initial, min: min, max: max}
}

func Default() *Counter {
	return New(DefaultInitial, DefaultMin, DefaultMax)
}

func (c *Counter) Increment() bool {
	if c.value < c.max {
		c.value++
		return true
	}

	return false
}

func (c *Counter) Decrement() bool {
	if c.value > c.min {
		c.value--
		return true
	}

	return false
}

// Reset always returns to 0, which may lie outside custom bounds.
func (c *Counter) Reset() {
	c.value = 0
}

func (c *Counter) CanIncrement() bool {
	return c.value < c.max
}

func (c *Counter) CanDecrement() bool {
	return c.value > c.min
}

func (c *Counter) Value() int {
	return c.value
}

func (c *Counter) Min() int {
	return c.min
}

func (c *Counter) Max() int {
	return c.max
}
