package speech

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	openai "github.com/openai/openai-go/v3"
	"github.com/rs/zerolog"
)

// WhisperTranscriber fetches the referenced audio and sends it to the
// OpenAI transcription API. Calls are bounded by a timeout and retried
// once with jittered backoff.
type WhisperTranscriber struct {
	client  openai.Client
	http    *resty.Client
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

func NewWhisperTranscriber(client openai.Client, model string, timeout time.Duration, log zerolog.Logger) *WhisperTranscriber {
	return &WhisperTranscriber{
		client:  client,
		http:    resty.New().SetTimeout(timeout),
		model:   model,
		timeout: timeout,
		log:     log,
	}
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audioURL, language string) (string, error) {
	if language == "" {
		language = DefaultLanguage
	}

	audio, contentType, err := t.fetchAudio(ctx, audioURL)
	if err != nil {
		return "", err
	}

	var text string
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, t.timeout)
		defer cancel()

		resp, err := t.client.Audio.Transcriptions.New(callCtx, openai.AudioTranscriptionNewParams{
			Model:    openai.AudioModel(t.model),
			File:     openai.File(bytes.NewReader(audio), fileNameFromURL(audioURL), contentType),
			Language: openai.String(language),
			Prompt:   openai.String(ContextPrompt),
		})
		if err != nil {
			return fmt.Errorf("transcription request: %w", err)
		}
		if resp.Text == "" {
			// Treat an empty transcript as a hard failure so callers
			// never act on silence. Permanent: retrying won't help.
			return backoff.Permanent(ErrNoTranscript)
		}
		text = resp.Text
		return nil
	}

	if err := backoff.Retry(operation, retryPolicy(ctx)); err != nil {
		t.log.Error().Err(err).Str("audio_url", audioURL).Msg("transcription failed")
		return "", err
	}
	return text, nil
}

func (t *WhisperTranscriber) fetchAudio(ctx context.Context, audioURL string) ([]byte, string, error) {
	resp, err := t.http.R().SetContext(ctx).Get(audioURL)
	if err != nil {
		return nil, "", fmt.Errorf("fetch audio: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, "", fmt.Errorf("fetch audio: status %d", resp.StatusCode())
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return resp.Body(), contentType, nil
}

func fileNameFromURL(audioURL string) string {
	u, err := url.Parse(audioURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "audio"
	}
	return path.Base(u.Path)
}

func retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	return backoff.WithContext(backoff.WithMaxRetries(b, 1), ctx)
}
