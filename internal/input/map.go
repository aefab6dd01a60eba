package input

import "encoding/json"

// Map is a bidirectional table from physical sources to a game's own semantic
// input identifiers. L and V are the game's linear and vector enumerations;
// any comparable type works. The two channels are independent: one source may
// hold a linear binding and a vector binding at the same time.
//
// A Map is owned by the single game runtime driving it and is not safe for
// concurrent use.
type Map[L, V comparable] struct {
	linear map[Source]L
	vector map[Source]V
}

// Empty returns a map with no bindings. Games populate it in DefaultInputs.
func Empty[L, V comparable]() *Map[L, V] {
	return &Map[L, V]{
		linear: make(map[Source]L),
		vector: make(map[Source]V),
	}
}

// AssignLinear binds src to id on the linear channel. A later call for the
// same source supersedes the earlier one; there is no failure mode.
func (m *Map[L, V]) AssignLinear(src Source, id L) {
	m.linear[src] = id
}

// AssignVector binds src to id on the vector channel, with the same
// overwrite semantics as AssignLinear.
func (m *Map[L, V]) AssignVector(src Source, id V) {
	m.vector[src] = id
}

// UnassignLinear removes the linear binding for src, if any.
func (m *Map[L, V]) UnassignLinear(src Source) {
	delete(m.linear, src)
}

// UnassignVector removes the vector binding for src, if any.
func (m *Map[L, V]) UnassignVector(src Source) {
	delete(m.vector, src)
}

// LookupLinear returns the linear binding for src. A false result means
// "unbound, ignore this event" and is not an error.
func (m *Map[L, V]) LookupLinear(src Source) (L, bool) {
	id, ok := m.linear[src]
	return id, ok
}

// LookupVector returns the vector binding for src.
func (m *Map[L, V]) LookupVector(src Source) (V, bool) {
	id, ok := m.vector[src]
	return id, ok
}

// Union merges other's bindings into m, with other winning on conflicts.
// Used to lay stored user preferences over a game's defaults.
func (m *Map[L, V]) Union(other *Map[L, V]) {
	for src, id := range other.linear {
		m.linear[src] = id
	}
	for src, id := range other.vector {
		m.vector[src] = id
	}
}

// Len returns the number of bindings across both channels.
func (m *Map[L, V]) Len() int {
	return len(m.linear) + len(m.vector)
}

// mapJSON is the persisted shape. Source implements encoding.TextMarshaler,
// so the maps serialize as JSON objects keyed by the source's text form.
type mapJSON[L, V comparable] struct {
	Linear map[Source]L `json:"linear"`
	Vector map[Source]V `json:"vector"`
}

// MarshalJSON serializes the map for keybind persistence. L and V must
// themselves be JSON-marshalable for this to succeed.
func (m *Map[L, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(mapJSON[L, V]{Linear: m.linear, Vector: m.vector})
}

// UnmarshalJSON replaces m's bindings with the stored ones.
func (m *Map[L, V]) UnmarshalJSON(data []byte) error {
	var raw mapJSON[L, V]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.linear = raw.Linear
	m.vector = raw.Vector
	if m.linear == nil {
		m.linear = make(map[Source]L)
	}
	if m.vector == nil {
		m.vector = make(map[Source]V)
	}
	return nil
}
