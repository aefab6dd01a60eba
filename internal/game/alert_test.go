//go:build !js

package game

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertUserWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	old := alertOut
	alertOut = &buf
	t.Cleanup(func() { alertOut = old })

	alertUser("failed to initialise: no adapter")
	assert.Equal(t, "ALERT: failed to initialise: no adapter\n", buf.String())
}
