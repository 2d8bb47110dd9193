// Package observable provides a value container that notifies subscribers
// when its value changes.
package observable

type Subscriber[T any] func(previous T, current T)

type subscription[T any] struct {
	id uint64
	fn Subscriber[T]
}

// Value is not safe for concurrent use. Subscribers run synchronously on
// the goroutine that calls Set, in the order they subscribed.
type Value[T comparable] struct {
	value       T
	next        uint64
	subscribers []subscription[T]
}

func New[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

func (v *Value[T]) Get() T {
	return v.value
}

// Set stores value and notifies subscribers if it differs from the current one.
func (v *Value[T]) Set(value T) {
	previous := v.value
	if previous == value {
		return
	}

	v.value = value

	// snapshot so callbacks can unsubscribe while we iterate
	subscribers := make([]subscription[T], len(v.subscribers))
	copy(subscribers, v.subscribers)

	for _, s := range subscribers {
		if v.subscribed(s.id) {
			s.fn(previous, value)
		}
	}
}

// Subscribe registers fn and returns a function that removes it.
func (v *Value[T]) Subscribe(fn Subscriber[T]) func() {
	v.next++
	id := v.next
	v.subscribers = append(v.subscribers, subscription[T]{id: id, fn: fn})

	return func() {
		for i, s := range v.subscribers {
			if s.id == id {
				v.subscribers = append(v.subscribers[:i:i], v.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (v *Value[T]) subscribed(id uint64) bool {
	for _, s := range v.subscribers {
		if s.id == id {
			return true
		}
	}

	return false
}

// Observable is the read side of a Value, handed to views.
type Observable[T any] interface {
	Get() T
	Subscribe(fn Subscriber[T]) func()
}
