package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/domain/format"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MinProcessPages = 1
	MaxProcessPages = 100
)

var (
	ErrProcessNotFound     = errors.New("process not found")
	ErrProcessNotFailed    = errors.New("only failed processes can be retried")
	ErrProcessNotCompleted = errors.New("process not completed")
)

// IProcessUseCase generates simulated legal documents from a chat.
//
// A process is created pending and one completion task is scheduled for it. The
// task writes the document to the object store and records either the download URL
// or the failure reason. Deleting a process cancels its task; a completion that
// still runs afterwards finds no record and does nothing.
type IProcessUseCase interface {
	Generate(ctx context.Context, owner entities.Identity, chatID, title string) (entities.GeneratedProcess, error)
	List(ctx context.Context, ownerID string) []entities.GeneratedProcess
	Get(ctx context.Context, ownerID, id string) (entities.GeneratedProcess, error)
	Delete(ctx context.Context, ownerID, id string) error
	Retry(ctx context.Context, ownerID, id string) (entities.GeneratedProcess, error)
	Download(ctx context.Context, ownerID, id string) (string, error)
	Close()
}

type ProcessUseCase struct {
	mu        sync.Mutex
	byOwner   map[string][]string
	processes map[string]*entities.GeneratedProcess
	tasks     map[string]processTask
	seq       uint64
	closed    bool

	chats     IChatUseCase
	store     interfaces.IObjectStore
	scheduler interfaces.IScheduler
	delay     time.Duration
	pages     func() int
	now       func() time.Time
}

type processTask struct {
	seq    uint64
	cancel context.CancelFunc
}

var _ IProcessUseCase = (*ProcessUseCase)(nil)

func NewProcessUseCase(chats IChatUseCase, store interfaces.IObjectStore, scheduler interfaces.IScheduler, delay time.Duration) *ProcessUseCase {
	return &ProcessUseCase{
		byOwner:   map[string][]string{},
		processes: map[string]*entities.GeneratedProcess{},
		tasks:     map[string]processTask{},
		chats:     chats,
		store:     store,
		scheduler: scheduler,
		delay:     delay,
		pages:     randomPages,
		now:       time.Now,
	}
}

func randomPages() int {
	return MinProcessPages + rand.IntN(MaxProcessPages-MinProcessPages+1)
}

func (u *ProcessUseCase) Generate(ctx context.Context, owner entities.Identity, chatID, title string) (entities.GeneratedProcess, error) {
	if owner.Demo {
		return entities.GeneratedProcess{}, ErrDemoRestricted
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.GeneratedProcess{}, ErrEmptyTitle
	}
	chat, err := u.chats.Get(ctx, owner.OwnerID, chatID)
	if err != nil {
		return entities.GeneratedProcess{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return entities.GeneratedProcess{}, ErrCoordinatorStopped
	}

	p := &entities.GeneratedProcess{
		ID:        uuid.NewString(),
		OwnerID:   owner.OwnerID,
		Title:     title,
		ChatID:    chat.ID,
		CreatedAt: u.now().UTC(),
		FileName:  format.ProcessFileName(title),
		Status:    entities.ProcessStatusPending,
		Category:  chat.Category,
		Pages:     u.pages(),
	}
	u.processes[p.ID] = p
	u.byOwner[owner.OwnerID] = append([]string{p.ID}, u.byOwner[owner.OwnerID]...)
	u.scheduleLocked(p.ID)

	zap.L().Info("[process][usecase] generation started",
		zap.String("process_id", p.ID), zap.String("chat_id", chat.ID), zap.Int("pages", p.Pages))
	return *p, nil
}

func (u *ProcessUseCase) scheduleLocked(id string) {
	u.seq++
	seq := u.seq
	cancel := u.scheduler.Schedule(u.delay, func(ctx context.Context) {
		u.complete(ctx, id, seq)
	})
	u.tasks[id] = processTask{seq: seq, cancel: cancel}
}

// currentLocked reports whether the task is still the live completion of a pending process.
func (u *ProcessUseCase) currentLocked(id string, seq uint64) (*entities.GeneratedProcess, bool) {
	t, ok := u.tasks[id]
	if !ok || t.seq != seq || u.closed {
		return nil, false
	}
	p, ok := u.processes[id]
	if !ok || p.Status != entities.ProcessStatusPending {
		return nil, false
	}
	return p, true
}

func (u *ProcessUseCase) complete(ctx context.Context, id string, seq uint64) {
	u.mu.Lock()
	p, ok := u.currentLocked(id, seq)
	var snapshot entities.GeneratedProcess
	if ok {
		snapshot = *p
	}
	u.mu.Unlock()
	if !ok || ctx.Err() != nil {
		return
	}

	url, err := u.writeArtifact(ctx, snapshot)

	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok = u.currentLocked(id, seq)
	if !ok || ctx.Err() != nil {
		return
	}
	delete(u.tasks, id)
	if err != nil {
		p.Status = entities.ProcessStatusFailed
		p.FailureReason = err.Error()
		p.DownloadURL = ""
		zap.L().Warn("[process][usecase] generation failed", zap.String("process_id", id), zap.Error(err))
		return
	}
	p.Status = entities.ProcessStatusCompleted
	p.DownloadURL = url
	p.FailureReason = ""
	zap.L().Info("[process][usecase] generation completed", zap.String("process_id", id))
}

func (u *ProcessUseCase) writeArtifact(ctx context.Context, p entities.GeneratedProcess) (string, error) {
	key := p.ID + ".pdf"
	doc := fmt.Sprintf("%%PDF-1.4\n%% %s\n%% %d páginas\n%%%%EOF\n", p.Title, p.Pages)
	if err := u.store.Put(ctx, key, strings.NewReader(doc), int64(len(doc)), "application/pdf"); err != nil {
		return "", fmt.Errorf("store document: %w", err)
	}
	url, err := u.store.URL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("download url: %w", err)
	}
	if url == "" {
		return "", errors.New("download url: empty")
	}
	return url, nil
}

// List returns the owner's processes, most recent first.
func (u *ProcessUseCase) List(_ context.Context, ownerID string) []entities.GeneratedProcess {
	u.mu.Lock()
	defer u.mu.Unlock()
	ids := u.byOwner[ownerID]
	out := make([]entities.GeneratedProcess, 0, len(ids))
	for _, id := range ids {
		out = append(out, *u.processes[id])
	}
	return out
}

func (u *ProcessUseCase) Get(_ context.Context, ownerID, id string) (entities.GeneratedProcess, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, err := u.processLocked(ownerID, id)
	if err != nil {
		return entities.GeneratedProcess{}, err
	}
	return *p, nil
}

func (u *ProcessUseCase) Delete(_ context.Context, ownerID, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, err := u.processLocked(ownerID, id)
	if err != nil {
		return err
	}
	if t, ok := u.tasks[p.ID]; ok {
		t.cancel()
		delete(u.tasks, p.ID)
	}
	delete(u.processes, p.ID)
	ids := u.byOwner[ownerID]
	for i, pid := range ids {
		if pid == p.ID {
			u.byOwner[ownerID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	zap.L().Info("[process][usecase] deleted", zap.String("process_id", p.ID), zap.String("status", string(p.Status)))
	return nil
}

func (u *ProcessUseCase) Retry(_ context.Context, ownerID, id string) (entities.GeneratedProcess, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return entities.GeneratedProcess{}, ErrCoordinatorStopped
	}
	p, err := u.processLocked(ownerID, id)
	if err != nil {
		return entities.GeneratedProcess{}, err
	}
	if p.Status != entities.ProcessStatusFailed {
		return entities.GeneratedProcess{}, ErrProcessNotFailed
	}
	p.Status = entities.ProcessStatusPending
	p.FailureReason = ""
	u.scheduleLocked(p.ID)
	zap.L().Info("[process][usecase] retry scheduled", zap.String("process_id", p.ID))
	return *p, nil
}

func (u *ProcessUseCase) Download(ctx context.Context, ownerID, id string) (string, error) {
	p, err := u.Get(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	if p.Status != entities.ProcessStatusCompleted {
		return "", ErrProcessNotCompleted
	}
	return p.DownloadURL, nil
}

// Close cancels every in-flight completion.
func (u *ProcessUseCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.closed = true
	for id, t := range u.tasks {
		t.cancel()
		delete(u.tasks, id)
	}
}

func (u *ProcessUseCase) processLocked(ownerID, id string) (*entities.GeneratedProcess, error) {
	p, ok := u.processes[strings.TrimSpace(id)]
	if !ok || p.OwnerID != ownerID {
		return nil, ErrProcessNotFound
	}
	return p, nil
}
