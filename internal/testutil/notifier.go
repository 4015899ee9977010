package testutil

import "mdcrypt/internal/mdcrypt"

// RecordingNotifier captures every notification delivered to it.
type RecordingNotifier struct {
	Messages []string
}

var _ mdcrypt.Notifier = (*RecordingNotifier)(nil)

// NewRecordingNotifier creates an empty RecordingNotifier.
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Notify(message string) {
	n.Messages = append(n.Messages, message)
}
