package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/infrastructure/scheduler"
)

var signedIn = entities.Identity{OwnerID: "signedIn-1", Email: "joao@x.com"}

func newChatFixture(t *testing.T) (*ChatUseCase, *scheduler.Manual, entities.Chat) {
	t.Helper()
	sched := scheduler.NewManual()
	uc := NewChatUseCase(sched, time.Second)
	chat, err := uc.CreateChat(context.Background(), signedIn, "direito-trabalhista")
	if err != nil {
		t.Fatalf("create chat: %v", err)
	}
	return uc, sched, chat
}

func TestChatUseCase_CreateChat(t *testing.T) {
	ctx := context.Background()
	uc := NewChatUseCase(scheduler.NewManual(), time.Second)

	t.Run("module sets title and category", func(t *testing.T) {
		c, err := uc.CreateChat(ctx, signedIn, "direito-trabalhista")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Title != "Direito Trabalhista" || c.Category != entities.CategoryLabor || c.Status != entities.ChatStatusActive {
			t.Fatalf("unexpected chat: %+v", c)
		}
		if len(c.Messages) != 0 {
			t.Fatalf("expected empty chat")
		}
	})

	t.Run("newest first", func(t *testing.T) {
		c, _ := uc.CreateChat(ctx, signedIn, "vademecum")
		list := uc.List(ctx, signedIn.OwnerID)
		if len(list) != 2 || list[0].ID != c.ID {
			t.Fatalf("expected newest chat first, got %+v", list)
		}
	})

	t.Run("unknown module", func(t *testing.T) {
		if _, err := uc.CreateChat(ctx, signedIn, "nope"); !errors.Is(err, ErrModuleNotFound) {
			t.Fatalf("expected ErrModuleNotFound, got %v", err)
		}
	})

	t.Run("demo restricted to vademecum", func(t *testing.T) {
		demo := entities.Identity{OwnerID: "demo-1", Demo: true}
		if _, err := uc.CreateChat(ctx, demo, "direito-penal"); !errors.Is(err, ErrDemoRestricted) {
			t.Fatalf("expected ErrDemoRestricted, got %v", err)
		}
		if _, err := uc.CreateChat(ctx, demo, "vademecum"); err != nil {
			t.Fatalf("expected vademecum allowed in demo, got %v", err)
		}
	})

	t.Run("owners are isolated", func(t *testing.T) {
		if got := uc.List(ctx, "someone-else"); len(got) != 0 {
			t.Fatalf("expected no chats, got %d", len(got))
		}
		c := uc.List(ctx, signedIn.OwnerID)[0]
		if _, err := uc.Get(ctx, "someone-else", c.ID); !errors.Is(err, ErrChatNotFound) {
			t.Fatalf("expected ErrChatNotFound, got %v", err)
		}
	})
}

func TestChatUseCase_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("empty content without attachments is a no-op", func(t *testing.T) {
		uc, sched, chat := newChatFixture(t)
		got, sent, err := uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "   ", nil)
		if err != nil || sent {
			t.Fatalf("expected no-op, got sent=%v err=%v", sent, err)
		}
		if len(got.Messages) != 0 || sched.Pending() != 0 {
			t.Fatalf("expected nothing appended or scheduled")
		}
	})

	t.Run("user message now and one assistant reply after the delay", func(t *testing.T) {
		uc, sched, chat := newChatFixture(t)
		got, sent, err := uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "  Olá ", nil)
		if err != nil || !sent {
			t.Fatalf("unexpected result sent=%v err=%v", sent, err)
		}
		if len(got.Messages) != 1 || got.Messages[0].Content != "Olá" || got.Messages[0].Role != entities.RoleUser {
			t.Fatalf("unexpected messages: %+v", got.Messages)
		}

		sched.Advance(999 * time.Millisecond)
		if c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID); len(c.Messages) != 1 {
			t.Fatalf("reply arrived early")
		}

		sched.Advance(time.Millisecond)
		c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID)
		if len(c.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(c.Messages))
		}
		if c.Messages[1].Role != entities.RoleAssistant || c.Messages[1].Content != AssistantReply {
			t.Fatalf("unexpected reply: %+v", c.Messages[1])
		}

		sched.Advance(time.Hour)
		if c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID); len(c.Messages) != 2 {
			t.Fatalf("expected exactly one reply")
		}
	})

	t.Run("concurrent sends each get a reply in order", func(t *testing.T) {
		uc, sched, chat := newChatFixture(t)
		_, _, _ = uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "um", nil)
		_, _, _ = uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "dois", nil)
		if uc.PendingReplies(chat.ID) != 2 {
			t.Fatalf("expected 2 pending replies")
		}
		sched.Advance(time.Second)

		c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID)
		roles := []entities.MessageRole{entities.RoleUser, entities.RoleUser, entities.RoleAssistant, entities.RoleAssistant}
		if len(c.Messages) != len(roles) {
			t.Fatalf("expected %d messages, got %d", len(roles), len(c.Messages))
		}
		for i, r := range roles {
			if c.Messages[i].Role != r {
				t.Fatalf("message %d: expected %s, got %s", i, r, c.Messages[i].Role)
			}
		}
		if uc.PendingReplies(chat.ID) != 0 {
			t.Fatalf("expected no pending replies")
		}
	})

	t.Run("attachments alone are enough", func(t *testing.T) {
		uc, _, chat := newChatFixture(t)
		att := []entities.Attachment{{ID: "a1", Name: "contrato.pdf", Size: 10}}
		got, sent, err := uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "", att)
		if err != nil || !sent {
			t.Fatalf("unexpected result sent=%v err=%v", sent, err)
		}
		if len(got.Messages[0].Attachments) != 1 {
			t.Fatalf("expected attachment on message")
		}
		att[0].Name = "changed"
		if c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID); c.Messages[0].Attachments[0].Name != "contrato.pdf" {
			t.Fatalf("chat shares caller's slice")
		}
	})

	t.Run("snapshots are read-only", func(t *testing.T) {
		uc, _, chat := newChatFixture(t)
		got, _, _ := uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "Olá", nil)
		got.Messages[0].Content = "mutated"
		if c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID); c.Messages[0].Content != "Olá" {
			t.Fatalf("snapshot mutation leaked into the coordinator")
		}
	})

	t.Run("archived chat rejects messages", func(t *testing.T) {
		uc, _, chat := newChatFixture(t)
		if _, err := uc.Archive(ctx, signedIn.OwnerID, chat.ID); err != nil {
			t.Fatalf("archive: %v", err)
		}
		if _, _, err := uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "Olá", nil); !errors.Is(err, ErrChatArchived) {
			t.Fatalf("expected ErrChatArchived, got %v", err)
		}
	})

	t.Run("close cancels pending replies", func(t *testing.T) {
		uc, sched, chat := newChatFixture(t)
		_, _, _ = uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "Olá", nil)
		uc.Close()
		sched.Advance(time.Second)
		if c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID); len(c.Messages) != 1 {
			t.Fatalf("expected no reply after close, got %d messages", len(c.Messages))
		}
		if _, _, err := uc.SendMessage(ctx, signedIn.OwnerID, chat.ID, "Olá", nil); !errors.Is(err, ErrCoordinatorStopped) {
			t.Fatalf("expected ErrCoordinatorStopped, got %v", err)
		}
	})
}

func TestChatUseCase_SetTitle(t *testing.T) {
	ctx := context.Background()
	uc, _, chat := newChatFixture(t)

	got, err := uc.SetTitle(ctx, signedIn.OwnerID, chat.ID, "  Reclamação Silva  ")
	if err != nil || got.Title != "Reclamação Silva" {
		t.Fatalf("unexpected result %q err=%v", got.Title, err)
	}
	if _, err := uc.SetTitle(ctx, signedIn.OwnerID, chat.ID, "   "); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if c, _ := uc.Get(ctx, signedIn.OwnerID, chat.ID); c.Title != "Reclamação Silva" {
		t.Fatalf("title changed by rejected edit: %q", c.Title)
	}
}

func TestChatUseCase_Vademecum(t *testing.T) {
	ctx := context.Background()
	sched := scheduler.NewManual()
	uc := NewChatUseCase(sched, time.Second)
	vade, _ := uc.CreateChat(ctx, signedIn, "vademecum")
	civil, _ := uc.CreateChat(ctx, signedIn, "direito-civil")

	s, err := uc.VademecumSuggestions(ctx, signedIn.OwnerID, vade.ID)
	if err != nil || len(s) != 10 {
		t.Fatalf("expected 10 suggestions, got %d err=%v", len(s), err)
	}
	if _, err := uc.VademecumSuggestions(ctx, signedIn.OwnerID, civil.ID); !errors.Is(err, ErrNotVademecumChat) {
		t.Fatalf("expected ErrNotVademecumChat, got %v", err)
	}

	c, err := uc.ConsultVademecum(ctx, signedIn.OwnerID, vade.ID, "Código Civil")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Messages[0].Content != "Consultar Código Civil" {
		t.Fatalf("unexpected message %q", c.Messages[0].Content)
	}
	if _, err := uc.ConsultVademecum(ctx, signedIn.OwnerID, vade.ID, " "); !errors.Is(err, ErrEmptyVademecumLaw) {
		t.Fatalf("expected ErrEmptyVademecumLaw, got %v", err)
	}
}
