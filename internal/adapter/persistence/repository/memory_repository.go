package repository

import (
	"context"
	"sort"
	"sync"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"
)

// LawyerMemoryRepository is the STORAGE_DRIVER=memory counterpart of LawyerDynamoRepository.
type LawyerMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]entities.Lawyer
	byEmail map[string]string
}

var _ interfaces.ILawyerRepository = (*LawyerMemoryRepository)(nil)

func NewLawyerMemoryRepository() *LawyerMemoryRepository {
	return &LawyerMemoryRepository{byID: map[string]entities.Lawyer{}, byEmail: map[string]string{}}
}

func (r *LawyerMemoryRepository) Create(_ context.Context, l entities.Lawyer) (entities.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := normalizeEmail(l.Email)
	if _, ok := r.byEmail[email]; ok {
		return entities.Lawyer{}, ErrEmailTaken
	}
	r.byID[l.ID] = l
	r.byEmail[email] = l.ID
	return l, nil
}

func (r *LawyerMemoryRepository) GetByID(_ context.Context, id string) (entities.Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *LawyerMemoryRepository) GetByEmail(_ context.Context, email string) (entities.Lawyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return entities.Lawyer{}, nil
	}
	return r.byID[id], nil
}

func (r *LawyerMemoryRepository) Update(_ context.Context, l entities.Lawyer) (entities.Lawyer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.byID[l.ID]
	if !ok {
		return entities.Lawyer{}, nil
	}
	oldEmail, newEmail := normalizeEmail(prev.Email), normalizeEmail(l.Email)
	if oldEmail != newEmail {
		if _, taken := r.byEmail[newEmail]; taken {
			return entities.Lawyer{}, ErrEmailTaken
		}
		delete(r.byEmail, oldEmail)
		r.byEmail[newEmail] = l.ID
	}
	r.byID[l.ID] = l
	return l, nil
}

func (r *LawyerMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byEmail, normalizeEmail(l.Email))
	delete(r.byID, id)
	return nil
}

// PaymentMemoryRepository keeps payments in memory.
type PaymentMemoryRepository struct {
	mu       sync.RWMutex
	payments []entities.Payment
}

var _ interfaces.IPaymentRepository = (*PaymentMemoryRepository)(nil)

func NewPaymentMemoryRepository() *PaymentMemoryRepository {
	return &PaymentMemoryRepository{}
}

func (r *PaymentMemoryRepository) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
	return p, nil
}

func (r *PaymentMemoryRepository) ListByLawyerID(_ context.Context, lawyerID string) ([]entities.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.Payment{}
	for _, p := range r.payments {
		if p.LawyerID == lawyerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// RegistrationMemoryRepository holds wizard sessions; they are never persisted.
type RegistrationMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.RegistrationSession
}

var _ interfaces.IRegistrationRepository = (*RegistrationMemoryRepository)(nil)

func NewRegistrationMemoryRepository() *RegistrationMemoryRepository {
	return &RegistrationMemoryRepository{sessions: map[string]entities.RegistrationSession{}}
}

func (r *RegistrationMemoryRepository) Save(_ context.Context, s entities.RegistrationSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *RegistrationMemoryRepository) GetByID(_ context.Context, id string) (entities.RegistrationSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id], nil
}
