//go:build js

package game

import "syscall/js"

// alertUser surfaces a message the player must see even with no console
// open, through the browser's blocking alert dialog.
func alertUser(msg string) {
	js.Global().Call("alert", msg)
}
