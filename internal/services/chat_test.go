package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/llm"
	"github.com/homebrain/homebrain/internal/model"
)

func newChatService(fs *fakeStore, p *fakeProvider) *ChatService {
	return NewChatService(fs, p, 10, 50, zerolog.Nop())
}

func seedChat(fs *fakeStore, contents ...string) {
	role := llm.RoleUser
	for _, c := range contents {
		_, _ = fs.Chat().Append(context.Background(), &model.ChatMessage{
			FamilyID: "f1", ActorID: "a1", Role: role, Content: c,
		})
		if role == llm.RoleUser {
			role = llm.RoleAssistant
		} else {
			role = llm.RoleUser
		}
	}
}

func TestChatPromptChronology(t *testing.T) {
	fs := newFamilyStore()
	seedChat(fs, "first", "second", "third")
	p := &fakeProvider{reply: "sure"}
	svc := newChatService(fs, p)

	if _, err := svc.Chat(context.Background(), "a1", "fourth"); err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if len(p.prompts) != 1 {
		t.Fatalf("want one completion call, got %d", len(p.prompts))
	}
	prompt := p.prompts[0]

	if prompt[0].Role != llm.RoleSystem {
		t.Fatalf("prompt must start with system context, got role %q", prompt[0].Role)
	}
	if !strings.Contains(prompt[0].Content, "HomeBrain") || !strings.Contains(prompt[0].Content, "Nguyen family") {
		t.Fatalf("system prompt missing identity or family name: %q", prompt[0].Content)
	}
	if !strings.Contains(prompt[0].Content, "a1, a2") {
		t.Fatalf("system prompt missing member IDs: %q", prompt[0].Content)
	}

	want := []string{"first", "second", "third", "fourth"}
	if len(prompt) != len(want)+1 {
		t.Fatalf("want %d prompt messages, got %d", len(want)+1, len(prompt))
	}
	for i, content := range want {
		if prompt[i+1].Content != content {
			t.Fatalf("prompt[%d] = %q, want %q (history must be chronological with the new message last)", i+1, prompt[i+1].Content, content)
		}
	}
}

func TestChatPersistsTurnAfterSuccess(t *testing.T) {
	fs := newFamilyStore()
	svc := newChatService(fs, &fakeProvider{reply: "dinner is at six"})

	reply, err := svc.Chat(context.Background(), "a1", "when is dinner?")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if reply.Content != "dinner is at six" || reply.Role != llm.RoleAssistant {
		t.Fatalf("unexpected reply: %+v", reply)
	}
	if len(fs.chat) != 2 {
		t.Fatalf("want user+assistant persisted, got %d messages", len(fs.chat))
	}
	if fs.chat[0].Role != llm.RoleUser || fs.chat[0].Content != "when is dinner?" {
		t.Fatalf("first persisted message should be the user turn: %+v", fs.chat[0])
	}
	if fs.chat[1].Role != llm.RoleAssistant {
		t.Fatalf("second persisted message should be the assistant turn: %+v", fs.chat[1])
	}
}

func TestChatNoPersistOnProviderFailure(t *testing.T) {
	fs := newFamilyStore()
	svc := newChatService(fs, &fakeProvider{err: errors.New("model down")})

	_, err := svc.Chat(context.Background(), "a1", "hello")
	if err == nil {
		t.Fatal("want error when provider fails")
	}
	if len(fs.chat) != 0 {
		t.Fatalf("failed turn must persist nothing, got %d messages", len(fs.chat))
	}
}

func TestChatFallbackOnEmptyContent(t *testing.T) {
	fs := newFamilyStore()
	svc := newChatService(fs, &fakeProvider{reply: ""})

	reply, err := svc.Chat(context.Background(), "a1", "hello")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if reply.Content != "I couldn't process that request." {
		t.Fatalf("unexpected fallback: %q", reply.Content)
	}
	if len(fs.chat) != 2 {
		t.Fatalf("fallback turn still persists, got %d messages", len(fs.chat))
	}
}

func TestChatNoFamily(t *testing.T) {
	svc := newChatService(&fakeStore{}, &fakeProvider{reply: "hi"})

	_, err := svc.Chat(context.Background(), "a1", "hello")
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestHistoryOldestFirst(t *testing.T) {
	fs := newFamilyStore()
	seedChat(fs, "one", "two", "three")
	svc := newChatService(fs, &fakeProvider{})

	history, err := svc.History(context.Background(), "a1")
	if err != nil {
		t.Fatalf("History error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("want 3 messages, got %d", len(history))
	}
	for i, want := range []string{"one", "two", "three"} {
		if history[i].Content != want {
			t.Fatalf("history[%d] = %q, want %q", i, history[i].Content, want)
		}
	}
}
