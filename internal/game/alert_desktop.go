//go:build !js

package game

import (
	"fmt"
	"io"
	"os"
)

var alertOut io.Writer = os.Stderr

// alertUser surfaces a message the player must see even when no log file or
// console is being watched. Desktops get it on stderr.
func alertUser(msg string) {
	fmt.Fprintf(alertOut, "ALERT: %s\n", msg)
}
