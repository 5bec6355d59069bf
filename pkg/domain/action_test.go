package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerIndex(t *testing.T) {
	// The root handler occupies slot 0; segment p lives at slot p+1.
	assert.Equal(t, 0, HandlerIndex(-1))
	assert.Equal(t, 1, HandlerIndex(0))
	assert.Equal(t, 4, HandlerIndex(3))
}

func TestAction_RegistrySlot(t *testing.T) {
	assert.Equal(t, 1, PushAction(0, "home").RegistrySlot())
	assert.Equal(t, 3, PopAction(2, "help").RegistrySlot())
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "push(0, home)", PushAction(0, "home").String())
	assert.Equal(t, "pop(2, help)", PopAction(2, "help").String())
	assert.Equal(t, "change(1, details -> help)", ChangeAction(1, "details", "help").String())
}
