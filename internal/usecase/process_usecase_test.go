package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/infrastructure/scheduler"
	"assistente_juridico/internal/infrastructure/storage"
	mock_interfaces "assistente_juridico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type processFixture struct {
	uc    *ProcessUseCase
	sched *scheduler.Manual
	store *storage.MemoryStore
	chat  entities.Chat
}

func newProcessFixture(t *testing.T) processFixture {
	t.Helper()
	sched := scheduler.NewManual()
	chats := NewChatUseCase(sched, time.Second)
	chat, err := chats.CreateChat(context.Background(), signedIn, "direito-trabalhista")
	if err != nil {
		t.Fatalf("create chat: %v", err)
	}
	store := storage.NewMemoryStore("https://example.com/files")
	uc := NewProcessUseCase(chats, store, sched, 3*time.Second)
	return processFixture{uc: uc, sched: sched, store: store, chat: chat}
}

func TestProcessUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("pending then completed with a stable id", func(t *testing.T) {
		f := newProcessFixture(t)
		p, err := f.uc.Generate(ctx, signedIn, f.chat.ID, "Ação Trabalhista")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProcessStatusPending || p.DownloadURL != "" {
			t.Fatalf("expected pending without url, got %+v", p)
		}
		if p.FileName != "ação_trabalhista.pdf" || strings.ContainsAny(p.FileName, " \t") {
			t.Fatalf("unexpected file name %q", p.FileName)
		}
		if p.Pages < MinProcessPages || p.Pages > MaxProcessPages {
			t.Fatalf("pages out of range: %d", p.Pages)
		}
		if p.Category != entities.CategoryLabor || p.ChatID != f.chat.ID {
			t.Fatalf("unexpected linkage: %+v", p)
		}

		f.sched.Advance(2 * time.Second)
		if got, _ := f.uc.Get(ctx, signedIn.OwnerID, p.ID); got.Status != entities.ProcessStatusPending {
			t.Fatalf("completed early")
		}

		f.sched.Advance(time.Second)
		got, err := f.uc.Get(ctx, signedIn.OwnerID, p.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != p.ID || got.Status != entities.ProcessStatusCompleted {
			t.Fatalf("expected completed, got %+v", got)
		}
		if got.DownloadURL != "https://example.com/files/"+p.ID+".pdf" {
			t.Fatalf("unexpected url %q", got.DownloadURL)
		}
		if _, ok := f.store.Get(p.ID + ".pdf"); !ok {
			t.Fatalf("expected document stored")
		}
	})

	t.Run("pages come from the generator", func(t *testing.T) {
		f := newProcessFixture(t)
		f.uc.pages = func() int { return 42 }
		p, _ := f.uc.Generate(ctx, signedIn, f.chat.ID, "Contestação")
		if p.Pages != 42 {
			t.Fatalf("expected 42 pages, got %d", p.Pages)
		}
	})

	t.Run("random pages stay in range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			if n := randomPages(); n < 1 || n > 100 {
				t.Fatalf("out of range: %d", n)
			}
		}
	})

	t.Run("rejections", func(t *testing.T) {
		f := newProcessFixture(t)
		if _, err := f.uc.Generate(ctx, entities.Identity{OwnerID: "d", Demo: true}, f.chat.ID, "x"); !errors.Is(err, ErrDemoRestricted) {
			t.Fatalf("expected ErrDemoRestricted, got %v", err)
		}
		if _, err := f.uc.Generate(ctx, signedIn, f.chat.ID, "  "); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("expected ErrEmptyTitle, got %v", err)
		}
		if _, err := f.uc.Generate(ctx, signedIn, "missing", "x"); !errors.Is(err, ErrChatNotFound) {
			t.Fatalf("expected ErrChatNotFound, got %v", err)
		}
	})
}

func TestProcessUseCase_DeletePending(t *testing.T) {
	ctx := context.Background()
	f := newProcessFixture(t)
	p, _ := f.uc.Generate(ctx, signedIn, f.chat.ID, "Petição Inicial")

	if err := f.uc.Delete(ctx, signedIn.OwnerID, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if f.sched.Pending() != 0 {
		t.Fatalf("expected completion cancelled")
	}
	f.sched.Advance(time.Minute)

	if _, err := f.uc.Get(ctx, signedIn.OwnerID, p.ID); !errors.Is(err, ErrProcessNotFound) {
		t.Fatalf("deleted process reappeared: %v", err)
	}
	if len(f.uc.List(ctx, signedIn.OwnerID)) != 0 {
		t.Fatalf("expected empty list")
	}
	if _, ok := f.store.Get(p.ID + ".pdf"); ok {
		t.Fatalf("expected nothing written for a deleted process")
	}
	if err := f.uc.Delete(ctx, signedIn.OwnerID, p.ID); !errors.Is(err, ErrProcessNotFound) {
		t.Fatalf("expected ErrProcessNotFound, got %v", err)
	}
}

func TestProcessUseCase_LateCompletionAfterDelete(t *testing.T) {
	ctx := context.Background()
	f := newProcessFixture(t)
	p, _ := f.uc.Generate(ctx, signedIn, f.chat.ID, "Recurso")

	f.uc.mu.Lock()
	seq := f.uc.tasks[p.ID].seq
	f.uc.mu.Unlock()
	_ = f.uc.Delete(ctx, signedIn.OwnerID, p.ID)

	f.uc.complete(context.Background(), p.ID, seq)
	if _, err := f.uc.Get(ctx, signedIn.OwnerID, p.ID); !errors.Is(err, ErrProcessNotFound) {
		t.Fatalf("late completion resurrected the process")
	}
}

func TestProcessUseCase_FailureAndRetry(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sched := scheduler.NewManual()
	chats := NewChatUseCase(sched, time.Second)
	chat, _ := chats.CreateChat(ctx, signedIn, "direito-civil")
	store := mock_interfaces.NewMockIObjectStore(ctrl)
	uc := NewProcessUseCase(chats, store, sched, 3*time.Second)

	p, _ := uc.Generate(ctx, signedIn, chat.ID, "Ação de Cobrança")

	store.EXPECT().Put(gomock.Any(), p.ID+".pdf", gomock.Any(), gomock.Any(), "application/pdf").Return(errors.New("disk full"))
	sched.Advance(3 * time.Second)

	got, _ := uc.Get(ctx, signedIn.OwnerID, p.ID)
	if got.Status != entities.ProcessStatusFailed || got.DownloadURL != "" || !strings.Contains(got.FailureReason, "disk full") {
		t.Fatalf("expected failed without url, got %+v", got)
	}
	if _, err := uc.Download(ctx, signedIn.OwnerID, p.ID); !errors.Is(err, ErrProcessNotCompleted) {
		t.Fatalf("expected ErrProcessNotCompleted, got %v", err)
	}

	retried, err := uc.Retry(ctx, signedIn.OwnerID, p.ID)
	if err != nil || retried.Status != entities.ProcessStatusPending || retried.FailureReason != "" {
		t.Fatalf("unexpected retry result %+v err=%v", retried, err)
	}
	if _, err := uc.Retry(ctx, signedIn.OwnerID, p.ID); !errors.Is(err, ErrProcessNotFailed) {
		t.Fatalf("expected ErrProcessNotFailed, got %v", err)
	}

	store.EXPECT().Put(gomock.Any(), p.ID+".pdf", gomock.Any(), gomock.Any(), "application/pdf").Return(nil)
	store.EXPECT().URL(gomock.Any(), p.ID+".pdf").Return("https://files/"+p.ID+".pdf", nil)
	sched.Advance(3 * time.Second)

	url, err := uc.Download(ctx, signedIn.OwnerID, p.ID)
	if err != nil || url != "https://files/"+p.ID+".pdf" {
		t.Fatalf("unexpected download %q err=%v", url, err)
	}
}

func TestProcessUseCase_Close(t *testing.T) {
	ctx := context.Background()
	f := newProcessFixture(t)
	p, _ := f.uc.Generate(ctx, signedIn, f.chat.ID, "Agravo")
	f.uc.Close()
	f.sched.Advance(time.Minute)

	got, _ := f.uc.Get(ctx, signedIn.OwnerID, p.ID)
	if got.Status != entities.ProcessStatusPending {
		t.Fatalf("expected completion cancelled by close, got %s", got.Status)
	}
	if _, err := f.uc.Generate(ctx, signedIn, f.chat.ID, "x"); !errors.Is(err, ErrCoordinatorStopped) {
		t.Fatalf("expected ErrCoordinatorStopped, got %v", err)
	}
}
