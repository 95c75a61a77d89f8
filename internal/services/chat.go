package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/homebrain/homebrain/internal/llm"
	"github.com/homebrain/homebrain/internal/model"
	"github.com/homebrain/homebrain/internal/store"
)

// fallbackReply is returned when the model answers with empty content.
const fallbackReply = "I couldn't process that request."

// ChatService runs the conversational assistant. Each turn assembles
// recent history in chronological order, calls the model once, and
// persists the user and assistant messages only after the call
// succeeds. A failed call leaves the history untouched.
type ChatService struct {
	store        store.Store
	provider     llm.Provider
	contextLimit int
	historyLimit int
	log          zerolog.Logger
}

func NewChatService(s store.Store, p llm.Provider, contextLimit, historyLimit int, log zerolog.Logger) *ChatService {
	return &ChatService{
		store:        s,
		provider:     p,
		contextLimit: contextLimit,
		historyLimit: historyLimit,
		log:          log,
	}
}

func (s *ChatService) Chat(ctx context.Context, actorID, message string) (*model.ChatMessage, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve family for actor %s: %w", actorID, err)
	}

	prompt, err := s.buildPrompt(ctx, family, message)
	if err != nil {
		return nil, err
	}

	content, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("assistant completion: %w", err)
	}
	reply := content
	if reply == "" {
		reply = fallbackReply
	}

	// Persist the turn only now that the model has answered.
	if _, err := s.store.Chat().Append(ctx, &model.ChatMessage{
		FamilyID: family.FamilyID,
		ActorID:  actorID,
		Role:     llm.RoleUser,
		Content:  message,
	}); err != nil {
		return nil, fmt.Errorf("persist user message: %w", err)
	}
	assistant, err := s.store.Chat().Append(ctx, &model.ChatMessage{
		FamilyID: family.FamilyID,
		ActorID:  actorID,
		Role:     llm.RoleAssistant,
		Content:  reply,
	})
	if err != nil {
		return nil, fmt.Errorf("persist assistant message: %w", err)
	}
	return assistant, nil
}

// History returns the family's most recent messages, oldest first.
func (s *ChatService) History(ctx context.Context, actorID string) ([]*model.ChatMessage, error) {
	family, err := s.store.Families().GetByActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	recent, err := s.store.Chat().Recent(ctx, family.FamilyID, s.historyLimit)
	if err != nil {
		return nil, err
	}
	reverse(recent)
	return recent, nil
}

// buildPrompt assembles system context, recent history in chronological
// order, and the new user message last.
func (s *ChatService) buildPrompt(ctx context.Context, family *model.Family, message string) ([]llm.Message, error) {
	recent, err := s.store.Chat().Recent(ctx, family.FamilyID, s.contextLimit)
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	reverse(recent)

	members, err := s.store.Families().Members(ctx, family.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("load family members: %w", err)
	}
	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ActorID)
	}

	systemPrompt := fmt.Sprintf(`You are HomeBrain, an intelligent family assistant for the %s family.
You help with calendar management, task coordination, meal planning, and family communication.
Be helpful, friendly, and concise. When users ask you to create events or tasks, confirm the details.
Current family members: %s`, family.Name, strings.Join(memberIDs, ", "))

	prompt := make([]llm.Message, 0, len(recent)+2)
	prompt = append(prompt, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, m := range recent {
		prompt = append(prompt, llm.Message{Role: m.Role, Content: m.Content})
	}
	prompt = append(prompt, llm.Message{Role: llm.RoleUser, Content: message})
	return prompt, nil
}

func reverse(msgs []*model.ChatMessage) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}
