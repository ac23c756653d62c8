package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrIncomplete is returned by the script driver when a step is shown again
	// because its answers did not validate.
	ErrIncomplete = errors.New("prompt: scripted answers rejected")
	// ErrNoForwardAction is returned by the script driver when the form offers
	// neither Next nor Submit.
	ErrNoForwardAction = errors.New("prompt: no forward action available")
)
