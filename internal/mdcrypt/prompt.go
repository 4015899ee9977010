package mdcrypt

import "errors"

// ErrPromptCancelled signals that the user dismissed the password
// prompt. It aborts the whole batch before any file is touched.
var ErrPromptCancelled = errors.New("password prompt cancelled")

// PasswordPrompter is the interactive prompt collaborator.
type PasswordPrompter interface {
	// PromptPassword asks the user for a password. title names the
	// folder and intent; confirm requests the password be typed twice
	// (encryption only); seed pre-fills the entry from the cache.
	// Returns ErrPromptCancelled if the user dismisses the prompt.
	PromptPassword(title string, encrypting bool, confirm bool, seed PasswordAndHint) (PasswordAndHint, error)
}

// Notifier delivers the single user-visible summary message of a batch.
type Notifier interface {
	Notify(message string)
}
