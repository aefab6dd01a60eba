package input

import "github.com/chewxy/math32"

// Transition classifies how a linear binding changed relative to the previous
// frame.
type Transition uint8

const (
	// Started: the binding became active this frame.
	Started Transition = iota
	// Held: the binding was already active and remains so.
	Held
	// Stopped: the binding became inactive this frame.
	Stopped
)

func (t Transition) String() string {
	switch t {
	case Started:
		return "started"
	case Held:
		return "held"
	case Stopped:
		return "stopped"
	}
	return "invalid"
}

// LinearActivation is the per-frame record delivered for a linear binding.
// Magnitude is in [0, 1]: 1 for a discrete press or hold, 0 on Stopped, and
// the clamped delta for analog impulses (wheel, pointer-motion impulses).
type LinearActivation struct {
	Transition Transition
	Magnitude  float32
}

// ClampMagnitude clamps v into the valid activation range [0, 1].
func ClampMagnitude(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}

// VectorActivation is the accumulated 2-D delta for one vector binding over
// one frame.
type VectorActivation struct {
	X, Y float32
}
