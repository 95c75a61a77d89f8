package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/homebrain/homebrain/internal/llm"
	"github.com/homebrain/homebrain/internal/services"
	sqlitestore "github.com/homebrain/homebrain/internal/store/sqlite"
)

type stubProvider struct{ reply string }

func (s *stubProvider) Complete(context.Context, []llm.Message) (string, error) {
	return s.reply, nil
}

type stubTranscriber struct{ text string }

func (s *stubTranscriber) Transcribe(context.Context, string, string) (string, error) {
	return s.text, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	st, err := sqlitestore.New(filepath.Join(t.TempDir(), "homebrain.db"))
	require.NoError(t, err)

	log := zerolog.Nop()
	provider := &stubProvider{reply: "Happy to help!"}
	return NewRouter(Deps{
		Store:         st,
		Family:        services.NewFamilyService(st),
		Calendar:      services.NewCalendarService(st),
		Tasks:         services.NewTaskService(st),
		Lists:         services.NewListService(st),
		Meals:         services.NewMealService(st),
		Chat:          services.NewChatService(st, provider, 10, 50, log),
		Voice:         services.NewVoiceService(st, &stubTranscriber{text: "add a task to water plants"}, log),
		Summary:       services.NewSummaryService(st, provider, log),
		Notifications: services.NewNotificationService(st),
		Log:           log,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func createFamily(t *testing.T, h http.Handler, ownerID string) {
	t.Helper()
	rr := doJSON(t, h, http.MethodPost, "/api/families", map[string]string{
		"name": "Okafor", "ownerId": ownerID,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)
	rr := doJSON(t, h, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"status":"healthy"`)
}

func TestFamilyLifecycle(t *testing.T) {
	h := newTestRouter(t)
	createFamily(t, h, "owner-1")

	rr := doJSON(t, h, http.MethodGet, "/api/actors/owner-1/family", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"name":"Okafor"`)

	rr = doJSON(t, h, http.MethodPost, "/api/actors/owner-1/family/members", map[string]string{
		"actorId": "kid-1", "role": "child",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, h, http.MethodGet, "/api/actors/owner-1/family/members", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var members struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &members))
	require.Equal(t, 2, members.Count)

	rr = doJSON(t, h, http.MethodGet, "/api/actors/stranger/family", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/api/actors/owner-1/family/members", map[string]string{
		"actorId": "kid-2", "role": "grandparent",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVoiceCommandCreatesEvent(t *testing.T) {
	h := newTestRouter(t)
	createFamily(t, h, "owner-1")

	rr := doJSON(t, h, http.MethodPost, "/api/actors/owner-1/voice/command", map[string]string{
		"text": "Add dentist appointment Thursday 3 PM",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var result struct {
		Success  bool   `json:"success"`
		Action   string `json:"action"`
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.True(t, result.Success)
	require.Equal(t, "event_created", result.Action)
	require.Contains(t, result.Response, "added")
	require.Contains(t, result.Response, "calendar")

	from := time.Now().UTC().Add(-time.Minute).Format(time.RFC3339)
	to := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)
	rr = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/actors/owner-1/events?from=%s&to=%s", from, to), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var events struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Equal(t, 1, events.Count)
}

func TestVoiceCommandWithoutFamily(t *testing.T) {
	h := newTestRouter(t)
	rr := doJSON(t, h, http.MethodPost, "/api/actors/nobody/voice/command", map[string]string{
		"text": "add an event",
	})
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVoiceTranscribeAndSynthesize(t *testing.T) {
	h := newTestRouter(t)

	rr := doJSON(t, h, http.MethodPost, "/api/actors/owner-1/voice/transcribe", map[string]string{
		"audioUrl": "https://example.com/clip.ogg",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "add a task to water plants")

	rr = doJSON(t, h, http.MethodPost, "/api/actors/owner-1/voice/synthesize", map[string]string{
		"text": "Dinner is ready",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"audioUrl":null`)
	require.Contains(t, rr.Body.String(), "Dinner is ready")
}

func TestChatRoundTrip(t *testing.T) {
	h := newTestRouter(t)
	createFamily(t, h, "owner-1")

	rr := doJSON(t, h, http.MethodPost, "/api/actors/owner-1/chat", map[string]string{
		"message": "what's for dinner?",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Contains(t, rr.Body.String(), "Happy to help!")

	rr = doJSON(t, h, http.MethodGet, "/api/actors/owner-1/chat/history", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var history struct {
		Count    int `json:"count"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Equal(t, 2, history.Count)
	require.Equal(t, "user", history.Messages[0].Role)
	require.Equal(t, "assistant", history.Messages[1].Role)
}

func TestTaskFlow(t *testing.T) {
	h := newTestRouter(t)
	createFamily(t, h, "owner-1")

	rr := doJSON(t, h, http.MethodPost, "/api/actors/owner-1/tasks", map[string]string{
		"title": "Take out recycling", "priority": "high",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		TaskID string `json:"taskId"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.Equal(t, "pending", created.Status)

	rr = doJSON(t, h, http.MethodPatch, "/api/actors/owner-1/tasks/"+created.TaskID, map[string]string{
		"status": "completed",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Contains(t, rr.Body.String(), `"completedAt"`)

	rr = doJSON(t, h, http.MethodGet, "/api/actors/owner-1/tasks?status=completed", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var tasks struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tasks))
	require.Equal(t, 1, tasks.Count)

	rr = doJSON(t, h, http.MethodPatch, "/api/actors/owner-1/tasks/"+created.TaskID, map[string]string{
		"status": "paused",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListsAndItems(t *testing.T) {
	h := newTestRouter(t)
	createFamily(t, h, "owner-1")

	rr := doJSON(t, h, http.MethodPost, "/api/actors/owner-1/lists", map[string]string{
		"name": "Groceries", "type": "grocery",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var list struct {
		ListID string `json:"listId"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))

	rr = doJSON(t, h, http.MethodPost, "/api/actors/owner-1/lists/"+list.ListID+"/items", map[string]string{
		"text": "milk", "quantity": "2",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, h, http.MethodGet, "/api/actors/owner-1/lists/"+list.ListID+"/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"text":"milk"`)
}

func TestMoodSummary(t *testing.T) {
	h := newTestRouter(t)

	rr := doJSON(t, h, http.MethodGet, "/api/actors/owner-1/summary/mood?mood=calm", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Calm Mode")

	rr = doJSON(t, h, http.MethodGet, "/api/actors/owner-1/summary/mood?mood=grumpy", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDailySummaryEndpoint(t *testing.T) {
	h := newTestRouter(t)
	createFamily(t, h, "owner-1")

	rr := doJSON(t, h, http.MethodGet, "/api/actors/owner-1/summary/daily", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Contains(t, rr.Body.String(), `"type":"daily"`)
	require.Contains(t, rr.Body.String(), "Happy to help!")
}

func TestNotifications(t *testing.T) {
	h := newTestRouter(t)
	createFamily(t, h, "owner-1")

	rr := doJSON(t, h, http.MethodPost, "/api/actors/owner-1/notifications", map[string]string{
		"type": "reminder", "title": "Soccer at 4",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, h, http.MethodGet, "/api/actors/owner-1/notifications?unread=true", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var notes struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &notes))
	require.Equal(t, 1, notes.Count)
}
