package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/api/respond"
	"github.com/homebrain/homebrain/internal/api/validate"
	"github.com/homebrain/homebrain/internal/services"
)

type VoiceHandler struct {
	svc *services.VoiceService
	log zerolog.Logger
}

func NewVoiceHandler(svc *services.VoiceService, log zerolog.Logger) *VoiceHandler {
	return &VoiceHandler{svc: svc, log: log}
}

// Transcribe POST /api/actors/{actorId}/voice/transcribe
func (h *VoiceHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AudioURL string `json:"audioUrl"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("audioUrl", req.AudioURL); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	text, err := h.svc.Transcribe(r.Context(), req.AudioURL, req.Language)
	if err != nil {
		h.log.Error().Err(err).Msg("transcription failed")
		respond.WriteInternalError(w, "Failed to transcribe audio")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"text": text, "success": true})
}

// ProcessCommand POST /api/actors/{actorId}/voice/command
// Execution failures are reported inside the result body, not as
// transport errors; only a missing family context is a 404.
func (h *VoiceHandler) ProcessCommand(w http.ResponseWriter, r *http.Request) {
	actorID := mux.Vars(r)["actorId"]
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("text", req.Text); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	result, err := h.svc.ProcessCommand(r.Context(), actorID, req.Text)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, result)
}

// Synthesize POST /api/actors/{actorId}/voice/synthesize
// Text-to-speech is not integrated yet; the endpoint echoes the text
// with a null audio reference so clients can already wire against it.
func (h *VoiceHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("text", req.Text); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"audioUrl": nil,
		"message":  req.Text,
	})
}
