package glide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlers(t *testing.T) {
	var h handlers[func() string]
	a := h.add(func() string { return "a" })
	h.add(func() string { return "b" })
	h.add(func() string { return "c" })
	assert.Equal(t, 3, h.len())

	call := func() (l []string) {
		for _, fn := range h.list() {
			l = append(l, fn())
		}
		return
	}
	assert.Equal(t, []string{"a", "b", "c"}, call())

	a.Cancel()
	a.Cancel()
	assert.Equal(t, []string{"b", "c"}, call())

	var nilSub *Subscription
	nilSub.Cancel()
}

func TestHandlersCancelWhileCalling(t *testing.T) {
	var h handlers[func()]
	var calls []int
	var second *Subscription
	h.add(func() {
		calls = append(calls, 1)
		second.Cancel()
	})
	second = h.add(func() {
		calls = append(calls, 2)
	})
	for _, fn := range h.list() {
		fn()
	}
	assert.Equal(t, []int{1, 2}, calls, "list is a snapshot")
	assert.Equal(t, 1, h.len())
}
