package pointer

// DefaultActivationDistance is how far, in cells, the pointer must travel
// before a press becomes a drag.
const DefaultActivationDistance = 4

// DragResult is produced when the button is released.
type DragResult struct {
	// Active is the id of the pressed item.
	Active string
	// Over is the id under the pointer on release, empty if none.
	Over string
	// Dragged is false when the gesture never passed the activation
	// distance; such a gesture is a click.
	Dragged bool
}

// Sensor tracks one press/move/release gesture.
type Sensor struct {
	Distance int

	active  string
	startX  int
	startY  int
	pressed bool
	dragged bool
}

// NewSensor returns a sensor with the given activation distance; values
// below 1 use DefaultActivationDistance.
func NewSensor(distance int) *Sensor {
	if distance < 1 {
		distance = DefaultActivationDistance
	}
	return &Sensor{Distance: distance}
}

// Press starts tracking a gesture on item id.
func (s *Sensor) Press(id string, x, y int) {
	s.active = id
	s.startX, s.startY = x, y
	s.pressed = true
	s.dragged = false
}

// Move updates the gesture and reports whether this move activated the drag.
func (s *Sensor) Move(x, y int) bool {
	if !s.pressed || s.dragged {
		return false
	}
	if chebyshev(x-s.startX, y-s.startY) >= s.Distance {
		s.dragged = true
		return true
	}
	return false
}

// Release ends the gesture. over is the id under the pointer, if any.
func (s *Sensor) Release(over string) (DragResult, bool) {
	if !s.pressed {
		return DragResult{}, false
	}
	res := DragResult{Active: s.active, Over: over, Dragged: s.dragged}
	s.Cancel()
	return res, true
}

// Cancel abandons the current gesture.
func (s *Sensor) Cancel() {
	s.active = ""
	s.pressed = false
	s.dragged = false
}

func (s *Sensor) Pressed() bool  { return s.pressed }
func (s *Sensor) Dragging() bool { return s.dragged }
func (s *Sensor) Active() string { return s.active }

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
