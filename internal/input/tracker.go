package input

import "github.com/chewxy/math32"

// LinearHit pairs a semantic linear id with its activation for one frame.
type LinearHit[L comparable] struct {
	ID         L
	Activation LinearActivation
}

// VectorHit pairs a semantic vector id with its accumulated activation.
type VectorHit[V comparable] struct {
	ID         V
	Activation VectorActivation
}

// Tracker accumulates raw events between frames and reduces them, through an
// input map, into ordered batches of semantic activations.
//
// The only state that survives a frame is keyed by physical Source, never by
// semantic id: the last-known pressed state of every stateful source, and
// whether a Started has been delivered for it and not yet Stopped. Rebinding a
// source mid-hold therefore keeps the in-flight hold classified as Held (under
// the new id) without rewriting anything already dispatched, while a source
// that was physically down before any binding existed reports Started on the
// first frame the binding takes effect.
//
// A Tracker is owned by a single runtime; no locking.
type Tracker[L, V comparable] struct {
	pending []Event

	// down lists stateful sources currently pressed, in press order, so
	// synthesized Held activations come out deterministically.
	down   []Source
	isDown map[Source]bool

	// active marks sources for which a Started was actually delivered
	// (i.e. the source was bound at press time) and no Stopped has fired.
	active map[Source]bool
}

// NewTracker returns an empty tracker.
func NewTracker[L, V comparable]() *Tracker[L, V] {
	return &Tracker[L, V]{
		isDown: make(map[Source]bool),
		active: make(map[Source]bool),
	}
}

// Record buffers one raw event for the current frame.
func (t *Tracker[L, V]) Record(ev Event) {
	t.pending = append(t.pending, ev)
}

// Pending returns the number of buffered events awaiting reduction.
func (t *Tracker[L, V]) Pending() int { return len(t.pending) }

// Reset drops all buffered events. Cross-frame pressed state is kept: the
// physical world did not change because a frame was abandoned.
func (t *Tracker[L, V]) Reset() {
	t.pending = t.pending[:0]
}

// Reduce drains the frame's event buffer into linear and vector activation
// batches, resolved through m. Unbound events are dropped silently. Linear
// hits appear in the order their events arrived, followed by synthesized Held
// hits for sources still pressed that produced no event this frame; vector
// hits appear in first-observation order of their source.
func (t *Tracker[L, V]) Reduce(m *Map[L, V]) ([]LinearHit[L], []VectorHit[V]) {
	var linear []LinearHit[L]
	var vector []VectorHit[V]

	sawEvent := make(map[Source]bool)
	vecOrder := make([]Source, 0, 2)
	vecAccum := make(map[Source]VectorActivation)

	for _, ev := range t.pending {
		src := ev.Source()
		if ev.stateful() {
			sawEvent[src] = true
			if ev.Pressed {
				t.markDown(src)
				linear = t.appendPress(linear, m, src)
			} else {
				linear = t.release(linear, m, src, sawEvent)
			}
			continue
		}
		switch ev.Kind {
		case EventWheel, EventMotionImpulse:
			// Impulses have no held/released lifecycle: one Started per event.
			if id, ok := m.LookupLinear(src); ok {
				linear = append(linear, LinearHit[L]{
					ID:         id,
					Activation: LinearActivation{Transition: Started, Magnitude: ClampMagnitude(math32.Abs(ev.Delta))},
				})
			}

		case EventMotion:
			acc, seen := vecAccum[src]
			if !seen {
				vecOrder = append(vecOrder, src)
			}
			acc.X += ev.DX
			acc.Y += ev.DY
			vecAccum[src] = acc
		}
	}

	// Continuity is driven by physical pressed state, not by events: sources
	// still down that were silent this frame keep reporting.
	for _, src := range t.down {
		if sawEvent[src] {
			continue
		}
		linear = t.appendPress(linear, m, src)
	}

	for _, src := range vecOrder {
		if id, ok := m.LookupVector(src); ok {
			vector = append(vector, VectorHit[V]{ID: id, Activation: vecAccum[src]})
		}
	}

	t.pending = t.pending[:0]
	return linear, vector
}

// appendPress emits the activation for a pressed (or still-pressed) source:
// Started if no delivered-active record exists yet, Held otherwise. Unbound
// sources emit nothing and gain no active record.
func (t *Tracker[L, V]) appendPress(hits []LinearHit[L], m *Map[L, V], src Source) []LinearHit[L] {
	id, ok := m.LookupLinear(src)
	if !ok {
		return hits
	}
	tr := Held
	if !t.active[src] {
		tr = Started
		t.active[src] = true
	}
	return append(hits, LinearHit[L]{
		ID:         id,
		Activation: LinearActivation{Transition: tr, Magnitude: 1},
	})
}

// release ends every down variant of src's physical source, whatever modifier
// set it was pressed with. Modifiers select the binding at press time; the
// matching release may arrive after the modifier itself was let go.
func (t *Tracker[L, V]) release(hits []LinearHit[L], m *Map[L, V], src Source, sawEvent map[Source]bool) []LinearHit[L] {
	base := src.base()
	for _, cand := range append([]Source(nil), t.down...) {
		if cand.base() != base {
			continue
		}
		sawEvent[cand] = true
		t.markUp(cand)
		if t.active[cand] {
			t.active[cand] = false
			if id, ok := m.LookupLinear(cand); ok {
				hits = append(hits, LinearHit[L]{
					ID:         id,
					Activation: LinearActivation{Transition: Stopped, Magnitude: 0},
				})
			}
		}
	}
	return hits
}

func (t *Tracker[L, V]) markDown(src Source) {
	if t.isDown[src] {
		return
	}
	t.isDown[src] = true
	t.down = append(t.down, src)
}

func (t *Tracker[L, V]) markUp(src Source) {
	if !t.isDown[src] {
		return
	}
	delete(t.isDown, src)
	for i, s := range t.down {
		if s == src {
			t.down = append(t.down[:i], t.down[i+1:]...)
			break
		}
	}
}
