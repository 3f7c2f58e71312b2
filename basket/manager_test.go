package basket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerIsolatesSessions(t *testing.T) {
	m := NewManager()

	a := m.Get("session-a")
	a.AddItem("p1", "Backpack", 100, "")

	b := m.Get("session-b")
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 1, a.Len())
}

func TestManagerReturnsSameBasketForSession(t *testing.T) {
	m := NewManager()

	m.Get("session-a").AddItem("p1", "Backpack", 100, "")

	assert.Equal(t, 1, m.Get("session-a").Len())
}

func TestManagerDrop(t *testing.T) {
	m := NewManager()
	m.Get("session-a").AddItem("p1", "Backpack", 100, "")

	m.Drop("session-a")

	assert.Equal(t, 0, m.Get("session-a").Len())
}
