package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsHitTopmost(t *testing.T) {
	var r Regions
	r.Add("tab", "a", Rect{X: 0, Y: 0, W: 5, H: 1})
	r.Add("tab", "b", Rect{X: 6, Y: 0, W: 5, H: 1})
	r.Add("menu", "m", Rect{X: 4, Y: 0, W: 4, H: 3})
	r.Add("tab", "empty", Rect{X: 0, Y: 0, W: 0, H: 1})

	hit, ok := r.Hit(4, 0)
	require.True(t, ok)
	assert.Equal(t, "m", hit.ID)

	hit, ok = r.HitKind("tab", 4, 0)
	require.True(t, ok)
	assert.Equal(t, "a", hit.ID)

	_, ok = r.Hit(20, 0)
	assert.False(t, ok)

	found, ok := r.Find("tab", "b")
	require.True(t, ok)
	assert.Equal(t, 6, found.Rect.X)
	assert.Len(t, r.All(), 3)

	r.Reset()
	assert.Empty(t, r.All())
}

func TestSensorClickBelowThreshold(t *testing.T) {
	s := NewSensor(0)
	assert.Equal(t, DefaultActivationDistance, s.Distance)
	s.Press("a", 10, 0)
	assert.False(t, s.Move(13, 0))
	res, ok := s.Release("a")
	require.True(t, ok)
	assert.False(t, res.Dragged)
	assert.Equal(t, "a", res.Active)
	assert.False(t, s.Pressed())
}

func TestSensorActivatesAtDistance(t *testing.T) {
	s := NewSensor(4)
	s.Press("a", 10, 0)
	assert.True(t, s.Move(14, 0))
	assert.False(t, s.Move(20, 0), "activation is reported once")
	assert.True(t, s.Dragging())
	res, ok := s.Release("c")
	require.True(t, ok)
	assert.Equal(t, DragResult{Active: "a", Over: "c", Dragged: true}, res)
}

func TestSensorReleaseWithoutPress(t *testing.T) {
	s := NewSensor(4)
	_, ok := s.Release("a")
	assert.False(t, ok)
	assert.False(t, s.Move(100, 100))
}
