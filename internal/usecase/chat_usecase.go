package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssistantReply is the canned answer appended after every user message.
const AssistantReply = "Entendi sua solicitação. Vou analisar os detalhes fornecidos e ajudar você com o processo. Pode me fornecer mais informações sobre o caso?"

var (
	ErrChatNotFound       = errors.New("chat not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrDemoRestricted     = errors.New("not available in demo mode")
	ErrChatArchived       = errors.New("chat archived")
	ErrEmptyTitle         = errors.New("title must not be empty")
	ErrNotVademecumChat   = errors.New("chat is not a vademecum chat")
	ErrEmptyVademecumLaw  = errors.New("law must not be empty")
	ErrCoordinatorStopped = errors.New("chat coordinator stopped")
)

// IChatUseCase owns every chat. All mutations go through it and callers only ever
// see deep copies.
type IChatUseCase interface {
	CreateChat(ctx context.Context, owner entities.Identity, moduleKey string) (entities.Chat, error)
	List(ctx context.Context, ownerID string) []entities.Chat
	Get(ctx context.Context, ownerID, chatID string) (entities.Chat, error)
	// SendMessage reports sent=false when content is blank and there are no attachments.
	SendMessage(ctx context.Context, ownerID, chatID, content string, attachments []entities.Attachment) (chat entities.Chat, sent bool, err error)
	SetTitle(ctx context.Context, ownerID, chatID, title string) (entities.Chat, error)
	Archive(ctx context.Context, ownerID, chatID string) (entities.Chat, error)
	VademecumSuggestions(ctx context.Context, ownerID, chatID string) ([]string, error)
	ConsultVademecum(ctx context.Context, ownerID, chatID, law string) (entities.Chat, error)
	Close()
}

type ChatUseCase struct {
	mu         sync.Mutex
	byOwner    map[string][]string
	chats      map[string]*entities.Chat
	replies    map[string]map[uint64]context.CancelFunc
	seq        uint64
	closed     bool
	scheduler  interfaces.IScheduler
	replyDelay time.Duration
	now        func() time.Time
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(scheduler interfaces.IScheduler, replyDelay time.Duration) *ChatUseCase {
	return &ChatUseCase{
		byOwner:    map[string][]string{},
		chats:      map[string]*entities.Chat{},
		replies:    map[string]map[uint64]context.CancelFunc{},
		scheduler:  scheduler,
		replyDelay: replyDelay,
		now:        time.Now,
	}
}

func (u *ChatUseCase) CreateChat(_ context.Context, owner entities.Identity, moduleKey string) (entities.Chat, error) {
	module, ok := entities.ModuleByKey(strings.TrimSpace(moduleKey))
	if !ok {
		return entities.Chat{}, ErrModuleNotFound
	}
	if owner.Demo && !module.DemoEnabled {
		zap.L().Info("[chat][usecase] module blocked in demo", zap.String("module", module.Key))
		return entities.Chat{}, ErrDemoRestricted
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return entities.Chat{}, ErrCoordinatorStopped
	}

	c := &entities.Chat{
		ID:        uuid.NewString(),
		OwnerID:   owner.OwnerID,
		Title:     module.Title,
		Messages:  []entities.Message{},
		CreatedAt: u.now().UTC(),
		Category:  module.Category,
		Status:    entities.ChatStatusActive,
	}
	u.chats[c.ID] = c
	u.byOwner[owner.OwnerID] = append([]string{c.ID}, u.byOwner[owner.OwnerID]...)
	zap.L().Info("[chat][usecase] chat created",
		zap.String("chat_id", c.ID), zap.String("module", module.Key), zap.String("category", string(c.Category)))
	return c.Clone(), nil
}

// List returns the owner's chats, most recently created first.
func (u *ChatUseCase) List(_ context.Context, ownerID string) []entities.Chat {
	u.mu.Lock()
	defer u.mu.Unlock()
	ids := u.byOwner[ownerID]
	out := make([]entities.Chat, 0, len(ids))
	for _, id := range ids {
		out = append(out, u.chats[id].Clone())
	}
	return out
}

func (u *ChatUseCase) Get(_ context.Context, ownerID, chatID string) (entities.Chat, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, err := u.chatLocked(ownerID, chatID)
	if err != nil {
		return entities.Chat{}, err
	}
	return c.Clone(), nil
}

func (u *ChatUseCase) SendMessage(_ context.Context, ownerID, chatID, content string, attachments []entities.Attachment) (entities.Chat, bool, error) {
	content = strings.TrimSpace(content)

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return entities.Chat{}, false, ErrCoordinatorStopped
	}
	c, err := u.chatLocked(ownerID, chatID)
	if err != nil {
		return entities.Chat{}, false, err
	}
	if content == "" && len(attachments) == 0 {
		return c.Clone(), false, nil
	}
	if c.Status == entities.ChatStatusArchived {
		return entities.Chat{}, false, ErrChatArchived
	}

	c.Messages = append(c.Messages, entities.Message{
		ID:          uuid.NewString(),
		Content:     content,
		Role:        entities.RoleUser,
		Timestamp:   u.now().UTC(),
		Attachments: append([]entities.Attachment(nil), attachments...),
	})
	u.scheduleReplyLocked(c.ID)

	zap.L().Info("[chat][usecase] user message appended",
		zap.String("chat_id", c.ID), zap.Int("attachments", len(attachments)), zap.Int("messages", len(c.Messages)))
	return c.Clone(), true, nil
}

func (u *ChatUseCase) scheduleReplyLocked(chatID string) {
	u.seq++
	seq := u.seq
	if u.replies[chatID] == nil {
		u.replies[chatID] = map[uint64]context.CancelFunc{}
	}
	u.replies[chatID][seq] = u.scheduler.Schedule(u.replyDelay, func(ctx context.Context) {
		u.appendReply(ctx, chatID, seq)
	})
}

func (u *ChatUseCase) appendReply(ctx context.Context, chatID string, seq uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if pending := u.replies[chatID]; pending != nil {
		delete(pending, seq)
		if len(pending) == 0 {
			delete(u.replies, chatID)
		}
	}
	if ctx.Err() != nil || u.closed {
		return
	}
	c, ok := u.chats[chatID]
	if !ok {
		return
	}
	c.Messages = append(c.Messages, entities.Message{
		ID:        uuid.NewString(),
		Content:   AssistantReply,
		Role:      entities.RoleAssistant,
		Timestamp: u.now().UTC(),
	})
	zap.L().Debug("[chat][usecase] assistant reply appended", zap.String("chat_id", chatID))
}

func (u *ChatUseCase) SetTitle(_ context.Context, ownerID, chatID, title string) (entities.Chat, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Chat{}, ErrEmptyTitle
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	c, err := u.chatLocked(ownerID, chatID)
	if err != nil {
		return entities.Chat{}, err
	}
	c.Title = title
	return c.Clone(), nil
}

func (u *ChatUseCase) Archive(_ context.Context, ownerID, chatID string) (entities.Chat, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, err := u.chatLocked(ownerID, chatID)
	if err != nil {
		return entities.Chat{}, err
	}
	c.Status = entities.ChatStatusArchived
	zap.L().Info("[chat][usecase] chat archived", zap.String("chat_id", chatID))
	return c.Clone(), nil
}

func (u *ChatUseCase) VademecumSuggestions(ctx context.Context, ownerID, chatID string) ([]string, error) {
	c, err := u.Get(ctx, ownerID, chatID)
	if err != nil {
		return nil, err
	}
	if c.Category != entities.CategoryVademecum {
		return nil, ErrNotVademecumChat
	}
	return append([]string(nil), entities.VademecumSuggestions...), nil
}

func (u *ChatUseCase) ConsultVademecum(ctx context.Context, ownerID, chatID, law string) (entities.Chat, error) {
	law = strings.TrimSpace(law)
	if law == "" {
		return entities.Chat{}, ErrEmptyVademecumLaw
	}
	if _, err := u.VademecumSuggestions(ctx, ownerID, chatID); err != nil {
		return entities.Chat{}, err
	}
	c, _, err := u.SendMessage(ctx, ownerID, chatID, "Consultar "+law, nil)
	return c, err
}

// Close cancels every pending assistant reply. Later sends fail with ErrCoordinatorStopped.
func (u *ChatUseCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.closed = true
	for chatID, pending := range u.replies {
		for _, cancel := range pending {
			cancel()
		}
		delete(u.replies, chatID)
	}
}

// PendingReplies counts scheduled assistant replies for a chat.
func (u *ChatUseCase) PendingReplies(chatID string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.replies[chatID])
}

func (u *ChatUseCase) chatLocked(ownerID, chatID string) (*entities.Chat, error) {
	c, ok := u.chats[strings.TrimSpace(chatID)]
	if !ok || c.OwnerID != ownerID {
		return nil, ErrChatNotFound
	}
	return c, nil
}

