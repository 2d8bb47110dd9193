package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func notifiesOnChange(t *testing.T) {
	v := New(1)

	var got [][2]int
	v.Subscribe(func(previous int, current int) {
		got = append(got, [2]int{previous, current})
	})

	v.Set(2)
	v.Set(5)

	assert.Equal(t, 5, v.Get())
	assert.Equal(t, [][2]int{{1, 2}, {2, 5}}, got)
}

func skipsUnchangedValues(t *testing.T) {
	v := New("ready")

	calls := 0
	v.Subscribe(func(string, string) { calls++ })

	v.Set("ready")
	assert.Equal(t, 0, calls)
}

func notifiesInSubscriptionOrder(t *testing.T) {
	v := New(false)

	var order []string
	v.Subscribe(func(bool, bool) { order = append(order, "first") })
	v.Subscribe(func(bool, bool) { order = append(order, "second") })

	v.Set(true)
	assert.Equal(t, []string{"first", "second"}, order)
}

func unsubscribes(t *testing.T) {
	v := New(0)

	calls := 0
	cancel := v.Subscribe(func(int, int) { calls++ })

	v.Set(1)
	cancel()
	v.Set(2)
	cancel()

	assert.Equal(t, 1, calls)
}

func unsubscribesDuringNotification(t *testing.T) {
	v := New(0)

	var second func()
	firstCalls, secondCalls := 0, 0

	v.Subscribe(func(int, int) {
		firstCalls++
		second()
	})
	second = v.Subscribe(func(int, int) { secondCalls++ })

	v.Set(1)
	v.Set(2)

	assert.Equal(t, 2, firstCalls)
	assert.Equal(t, 0, secondCalls)
}

func TestValue(t *testing.T) {
	t.Run("notifies on change", notifiesOnChange)
	t.Run("skips unchanged values", skipsUnchangedValues)
	t.Run("notifies in subscription order", notifiesInSubscriptionOrder)
	t.Run("unsubscribes", unsubscribes)
	t.Run("unsubscribes during notification", unsubscribesDuringNotification)
}
