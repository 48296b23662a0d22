package cli

import (
	"errors"
	"fmt"
)

// outputError normalizes error emission across commands so failures always
// carry a stable code alongside the message.
func outputError(globals *Globals, code, message string) error {
	if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}
