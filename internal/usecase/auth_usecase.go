package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthenticated     = errors.New("unauthenticated")
)

// ownerNamespace derives stable owner ids for simulated logins.
var ownerNamespace = uuid.MustParse("6f1c3d0e-2b1a-4c58-9a7e-4a3e8f0b7d21")

// Session is a signed-in lawyer or a demo visitor.
type Session struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Identity  entities.Identity `json:"identity"`
	Lawyer    *entities.Lawyer  `json:"lawyer,omitempty"`
}

// IAuthUseCase signs lawyers in.
//
// Registered emails must present the matching password. Any other email gets a
// simulated login whose owner id is derived from the email, so the same address
// always sees the same chats.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
	StartDemo(ctx context.Context) (Session, error)
	Authenticate(token string) (entities.Identity, error)
}

type AuthUseCase struct {
	lawyers interfaces.ILawyerRepository
	tokens  interfaces.ITokenIssuer
	latency time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(lawyers interfaces.ILawyerRepository, tokens interfaces.ITokenIssuer, latency time.Duration) *AuthUseCase {
	return &AuthUseCase{lawyers: lawyers, tokens: tokens, latency: latency}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrCredentialsRequired
	}
	if err := u.wait(ctx); err != nil {
		return Session{}, err
	}

	lawyer, err := u.lawyers.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if lawyer.ID != "" {
		if bcrypt.CompareHashAndPassword([]byte(lawyer.PasswordHash), []byte(password)) != nil {
			zap.L().Info("[auth][usecase] password mismatch", zap.String("lawyer_id", lawyer.ID))
			return Session{}, ErrInvalidCredentials
		}
		s, err := u.issue(entities.Identity{OwnerID: lawyer.ID, Email: lawyer.Email})
		if err != nil {
			return Session{}, err
		}
		s.Lawyer = &lawyer
		zap.L().Info("[auth][usecase] lawyer signed in", zap.String("lawyer_id", lawyer.ID))
		return s, nil
	}

	id := uuid.NewSHA1(ownerNamespace, []byte(strings.ToLower(email))).String()
	zap.L().Info("[auth][usecase] simulated sign in", zap.String("owner_id", id))
	return u.issue(entities.Identity{OwnerID: id, Email: email})
}

func (u *AuthUseCase) StartDemo(_ context.Context) (Session, error) {
	s, err := u.issue(entities.Identity{OwnerID: "demo-" + uuid.NewString(), Demo: true})
	if err != nil {
		return Session{}, err
	}
	zap.L().Info("[auth][usecase] demo started", zap.String("owner_id", s.Identity.OwnerID))
	return s, nil
}

func (u *AuthUseCase) Authenticate(token string) (entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Identity{}, ErrUnauthenticated
	}
	id, err := u.tokens.Verify(token)
	if err != nil {
		return entities.Identity{}, errors.Join(ErrUnauthenticated, err)
	}
	return id, nil
}

func (u *AuthUseCase) issue(id entities.Identity) (Session, error) {
	token, exp, err := u.tokens.Issue(id)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp, Identity: id}, nil
}

func (u *AuthUseCase) wait(ctx context.Context) error {
	if u.latency <= 0 {
		return nil
	}
	t := time.NewTimer(u.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
