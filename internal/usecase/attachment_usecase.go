package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxAttachments     = 5
	DefaultMaxAttachmentBytes = 10 * 1024 * 1024
)

// AcceptedExtensions lists the file types the attachment picker offers.
var AcceptedExtensions = []string{".pdf", ".doc", ".docx", ".txt"}

var (
	ErrDemoAttachments       = errors.New("attachments are not available in demo mode")
	ErrTooManyAttachments    = errors.New("too many attachments")
	ErrAttachmentsTooLarge   = errors.New("attachments exceed the size limit")
	ErrUnsupportedAttachment = errors.New("unsupported attachment type")
	ErrAttachmentIndex       = errors.New("attachment index out of range")
)

// Upload is one file picked by the lawyer.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IAttachmentUseCase keeps, per owner and chat, the files staged for the next message.
//
// A rejected selection leaves the staged set exactly as it was.
type IAttachmentUseCase interface {
	Stage(ctx context.Context, owner entities.Identity, chatID string, files []Upload) ([]entities.Attachment, error)
	Staged(ownerID, chatID string) []entities.Attachment
	Remove(ctx context.Context, ownerID, chatID string, index int) ([]entities.Attachment, error)
	// Take detaches the staged set for sending. Concurrent callers never get the same files;
	// the stored objects stay referenced by the message.
	Take(ownerID, chatID string) []entities.Attachment
	// Restore puts back a taken set whose message was not sent. A selection staged in the
	// meantime wins and the taken objects are deleted.
	Restore(ctx context.Context, ownerID, chatID string, taken []entities.Attachment)
}

type AttachmentUseCase struct {
	mu       sync.Mutex
	staged   map[string][]entities.Attachment
	keys     map[string][]string
	chats    IChatUseCase
	objects  interfaces.IObjectStore
	maxFiles int
	maxBytes int64
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(chats IChatUseCase, store interfaces.IObjectStore, maxFiles int, maxBytes int64) *AttachmentUseCase {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxAttachments
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxAttachmentBytes
	}
	return &AttachmentUseCase{
		staged:   map[string][]entities.Attachment{},
		keys:     map[string][]string{},
		chats:    chats,
		objects:  store,
		maxFiles: maxFiles,
		maxBytes: maxBytes,
	}
}

// Limits returns the configured count and aggregate size limits.
func (u *AttachmentUseCase) Limits() (int, int64) {
	return u.maxFiles, u.maxBytes
}

func (u *AttachmentUseCase) Stage(ctx context.Context, owner entities.Identity, chatID string, files []Upload) ([]entities.Attachment, error) {
	if owner.Demo {
		return nil, ErrDemoAttachments
	}
	if _, err := u.chats.Get(ctx, owner.OwnerID, chatID); err != nil {
		return nil, err
	}
	if err := u.check(files); err != nil {
		zap.L().Info("[attachment][usecase] selection rejected",
			zap.String("chat_id", chatID), zap.Int("files", len(files)), zap.Error(err))
		return nil, err
	}

	next, keys, err := u.upload(ctx, attachmentPrefix(owner.OwnerID, chatID), files)
	if err != nil {
		return nil, err
	}

	k := stagingKey(owner.OwnerID, chatID)
	u.mu.Lock()
	previous := u.keys[k]
	u.staged[k] = next
	u.keys[k] = keys
	u.mu.Unlock()
	u.discard(ctx, previous)

	zap.L().Info("[attachment][usecase] staged", zap.String("chat_id", chatID), zap.Int("files", len(next)))
	return cloneAttachments(next), nil
}

// upload stores every file concurrently. On any failure the objects that did land are
// removed and nothing is returned.
func (u *AttachmentUseCase) upload(ctx context.Context, prefix string, files []Upload) ([]entities.Attachment, []string, error) {
	next := make([]entities.Attachment, len(files))
	keys := make([]string, len(files))
	stored := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			id := uuid.NewString()
			key := objectKey(prefix, id, f.Name)
			if err := u.objects.Put(gctx, key, f.Body, f.Size, f.ContentType); err != nil {
				return fmt.Errorf("store attachment %q: %w", f.Name, err)
			}
			keys[i], stored[i] = key, true
			url, err := u.objects.URL(gctx, key)
			if err != nil {
				return fmt.Errorf("attachment url %q: %w", f.Name, err)
			}
			next[i] = entities.Attachment{ID: id, Name: f.Name, Type: f.ContentType, URL: url, Size: f.Size}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var landed []string
		for i, ok := range stored {
			if ok {
				landed = append(landed, keys[i])
			}
		}
		u.discard(ctx, landed)
		return nil, nil, err
	}
	return next, keys, nil
}

func (u *AttachmentUseCase) check(files []Upload) error {
	if len(files) > u.maxFiles {
		return ErrTooManyAttachments
	}
	var total int64
	for _, f := range files {
		if !acceptedExtension(f.Name) {
			return fmt.Errorf("%w: %s", ErrUnsupportedAttachment, f.Name)
		}
		total += f.Size
	}
	if total > u.maxBytes {
		return ErrAttachmentsTooLarge
	}
	return nil
}

func (u *AttachmentUseCase) Staged(ownerID, chatID string) []entities.Attachment {
	u.mu.Lock()
	defer u.mu.Unlock()
	return cloneAttachments(u.staged[stagingKey(ownerID, chatID)])
}

func (u *AttachmentUseCase) Remove(ctx context.Context, ownerID, chatID string, index int) ([]entities.Attachment, error) {
	k := stagingKey(ownerID, chatID)
	u.mu.Lock()
	files := u.staged[k]
	if index < 0 || index >= len(files) {
		u.mu.Unlock()
		return nil, ErrAttachmentIndex
	}
	keys := u.keys[k]
	removed := keys[index]
	u.staged[k] = append(files[:index:index], files[index+1:]...)
	u.keys[k] = append(keys[:index:index], keys[index+1:]...)
	out := cloneAttachments(u.staged[k])
	u.mu.Unlock()

	u.discard(ctx, []string{removed})
	return out, nil
}

func (u *AttachmentUseCase) Take(ownerID, chatID string) []entities.Attachment {
	k := stagingKey(ownerID, chatID)
	u.mu.Lock()
	defer u.mu.Unlock()
	taken := u.staged[k]
	delete(u.staged, k)
	delete(u.keys, k)
	return taken
}

func (u *AttachmentUseCase) Restore(ctx context.Context, ownerID, chatID string, taken []entities.Attachment) {
	if len(taken) == 0 {
		return
	}
	prefix := attachmentPrefix(ownerID, chatID)
	keys := make([]string, len(taken))
	for i, a := range taken {
		keys[i] = objectKey(prefix, a.ID, a.Name)
	}

	k := stagingKey(ownerID, chatID)
	u.mu.Lock()
	if len(u.staged[k]) > 0 {
		u.mu.Unlock()
		u.discard(ctx, keys)
		return
	}
	u.staged[k] = cloneAttachments(taken)
	u.keys[k] = keys
	u.mu.Unlock()
}

// discard is best effort.
func (u *AttachmentUseCase) discard(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := u.objects.Delete(ctx, key); err != nil {
			zap.L().Warn("[attachment][usecase] delete failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func acceptedExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, a := range AcceptedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

func attachmentPrefix(ownerID, chatID string) string {
	return fmt.Sprintf("attachments/%s/%s/", ownerID, chatID)
}

func objectKey(prefix, id, name string) string {
	return prefix + id + strings.ToLower(filepath.Ext(name))
}

func stagingKey(ownerID, chatID string) string {
	return ownerID + "/" + chatID
}

func cloneAttachments(in []entities.Attachment) []entities.Attachment {
	out := make([]entities.Attachment, len(in))
	copy(out, in)
	return out
}
