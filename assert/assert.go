// Package assert provides precondition checks that panic on failure.
//
// The checks are compiled in by default. Building with the assertions_disabled
// tag turns every function into a no-op.
package assert

import "fmt"

// failureMessage renders the panic message for a failed assertion.
// If the first arg is a string, it's used as a format string with remaining args.
// Otherwise, all args are included in the message.
func failureMessage(args ...any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		return fmt.Sprintf(firstStr, remaining...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
