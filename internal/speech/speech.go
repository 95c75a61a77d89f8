// Package speech wraps the speech-to-text collaborator used by the
// voice command surface.
package speech

import (
	"context"
	"errors"
)

// ContextPrompt biases recognition toward the household vocabulary the
// assistant deals in.
const ContextPrompt = "This is a family coordination assistant. Transcribe commands for calendar, tasks, meals, and lists."

// DefaultLanguage is used when the caller does not specify one.
const DefaultLanguage = "en"

// ErrNoTranscript reports that the service answered but produced no
// usable text. Callers must handle it; there is no silent empty-string
// fallback.
var ErrNoTranscript = errors.New("transcription produced no text")

// Transcriber converts a referenced audio recording into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL, language string) (string, error)
}
