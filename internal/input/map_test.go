package input

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type action int

const (
	forward action = iota
	back
	quit
	zoom
)

type axis int

const (
	look axis = iota
	pan
)

func TestMapAssignAndLookup(t *testing.T) {
	m := Empty[action, axis]()
	m.AssignLinear(KeySource(KeyW), forward)
	m.AssignVector(MotionSource(), look)

	id, ok := m.LookupLinear(KeySource(KeyW))
	require.True(t, ok)
	assert.Equal(t, forward, id)

	vid, ok := m.LookupVector(MotionSource())
	require.True(t, ok)
	assert.Equal(t, look, vid)

	_, ok = m.LookupLinear(KeySource(KeyS))
	assert.False(t, ok)
}

func TestMapRebindOverwrites(t *testing.T) {
	m := Empty[action, axis]()
	m.AssignLinear(KeySource(KeyW), forward)
	m.AssignLinear(KeySource(KeyW), back)

	id, ok := m.LookupLinear(KeySource(KeyW))
	require.True(t, ok)
	assert.Equal(t, back, id)
	assert.Equal(t, 1, m.Len())
}

func TestMapLinearAndVectorCoexistOnOneSource(t *testing.T) {
	m := Empty[action, axis]()
	m.AssignLinear(WheelSource(), zoom)
	m.AssignVector(MotionSource(), look)
	m.AssignLinear(MotionImpulseSource(MotionLeft), back)

	_, ok := m.LookupLinear(WheelSource())
	assert.True(t, ok)
	_, ok = m.LookupVector(MotionSource())
	assert.True(t, ok)
}

func TestMapUnassign(t *testing.T) {
	m := Empty[action, axis]()
	m.AssignLinear(KeySource(KeyW), forward)
	m.UnassignLinear(KeySource(KeyW))

	_, ok := m.LookupLinear(KeySource(KeyW))
	assert.False(t, ok)
}

func TestMapUnionOtherWins(t *testing.T) {
	defaults := Empty[action, axis]()
	defaults.AssignLinear(KeySource(KeyW), forward)
	defaults.AssignLinear(KeySource(KeyEscape), quit)

	stored := Empty[action, axis]()
	stored.AssignLinear(KeySource(KeyW), back)
	stored.AssignLinear(KeySource(KeySpace), zoom)

	defaults.Union(stored)

	id, _ := defaults.LookupLinear(KeySource(KeyW))
	assert.Equal(t, back, id, "stored binding wins the conflict")
	id, _ = defaults.LookupLinear(KeySource(KeyEscape))
	assert.Equal(t, quit, id, "default with no conflict survives")
	id, _ = defaults.LookupLinear(KeySource(KeySpace))
	assert.Equal(t, zoom, id, "stored-only binding is adopted")
}

func TestMapJSONRoundTrip(t *testing.T) {
	m := Empty[action, axis]()
	m.AssignLinear(KeySource(KeyW), forward)
	m.AssignLinear(ButtonSource(MouseLeft), zoom)
	m.AssignLinear(WheelSource(), zoom)
	m.AssignLinear(MotionImpulseSource(MotionUp), back)
	m.AssignVector(MotionSource(), look)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	back2 := Empty[action, axis]()
	require.NoError(t, json.Unmarshal(data, back2))

	assert.Equal(t, m.Len(), back2.Len())
	id, ok := back2.LookupLinear(MotionImpulseSource(MotionUp))
	require.True(t, ok)
	assert.Equal(t, back, id)
	vid, ok := back2.LookupVector(MotionSource())
	require.True(t, ok)
	assert.Equal(t, look, vid)
}

func TestSourceTextRoundTrip(t *testing.T) {
	for _, src := range []Source{
		KeySource(KeyW),
		ButtonSource(MouseRight),
		WheelSource(),
		MotionSource(),
		MotionImpulseSource(MotionDown),
		KeySource(KeyW).WithModifiers(ModShift),
		KeySource(KeyTab).WithModifiers(ModCtrl | ModAlt | ModLogo),
		ButtonSource(MouseLeft).WithModifiers(ModCtrl),
	} {
		text, err := src.MarshalText()
		require.NoError(t, err)
		var got Source
		require.NoError(t, got.UnmarshalText(text), string(text))
		assert.Equal(t, src, got, string(text))
	}
}

func TestSourceUnmarshalRejectsGarbage(t *testing.T) {
	var s Source
	assert.Error(t, s.UnmarshalText([]byte("telepathy")))
	assert.Error(t, s.UnmarshalText([]byte("key:banana")))
	assert.Error(t, s.UnmarshalText([]byte("key:87+hyper")))
}

func TestSourceModifierText(t *testing.T) {
	src := KeySource(KeyW).WithModifiers(ModShift | ModCtrl)
	text, err := src.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "key:87+shift+ctrl", string(text))

	assert.NotEqual(t, KeySource(KeyW), src, "modifiers are part of the binding identity")
}
