package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"assistente_juridico/internal/domain/entities"
	"assistente_juridico/internal/infrastructure/auth"
	mock_interfaces "assistente_juridico/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	tokens := auth.NewTokenIssuer("secret", time.Hour)

	t.Run("both fields required", func(t *testing.T) {
		uc := NewAuthUseCase(nil, tokens, 0)
		if _, err := uc.Login(ctx, " ", "x"); !errors.Is(err, ErrCredentialsRequired) {
			t.Fatalf("expected ErrCredentialsRequired, got %v", err)
		}
		if _, err := uc.Login(ctx, "a@b.com", ""); !errors.Is(err, ErrCredentialsRequired) {
			t.Fatalf("expected ErrCredentialsRequired, got %v", err)
		}
	})

	t.Run("registered lawyer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawyerRepository(ctrl)
		hash, _ := bcrypt.GenerateFromPassword([]byte("senha1234"), bcrypt.MinCost)
		l := entities.Lawyer{ID: "lawyer-1", Email: "joao@x.com", PasswordHash: string(hash)}
		repo.EXPECT().GetByEmail(gomock.Any(), "joao@x.com").Return(l, nil).Times(2)

		uc := NewAuthUseCase(repo, tokens, 0)
		s, err := uc.Login(ctx, "joao@x.com", "senha1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Identity.OwnerID != "lawyer-1" || s.Lawyer == nil || s.Token == "" {
			t.Fatalf("unexpected session: %+v", s)
		}
		id, err := uc.Authenticate(s.Token)
		if err != nil || id.OwnerID != "lawyer-1" || id.Demo {
			t.Fatalf("unexpected identity %+v err=%v", id, err)
		}

		if _, err := uc.Login(ctx, "joao@x.com", "errada123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("simulated login is stable per email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawyerRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.Lawyer{}, nil).Times(2)

		uc := NewAuthUseCase(repo, tokens, 0)
		a, _ := uc.Login(ctx, "Maria@x.com", "qualquer")
		b, _ := uc.Login(ctx, "maria@x.com", "outra")
		if a.Identity.OwnerID == "" || a.Identity.OwnerID != b.Identity.OwnerID {
			t.Fatalf("expected same owner id, got %q and %q", a.Identity.OwnerID, b.Identity.OwnerID)
		}
		if a.Lawyer != nil {
			t.Fatalf("simulated login has no lawyer record")
		}
	})

	t.Run("latency honours cancellation", func(t *testing.T) {
		uc := NewAuthUseCase(nil, tokens, time.Hour)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := uc.Login(cctx, "a@b.com", "x"); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("issuer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILawyerRepository(ctrl)
		issuer := mock_interfaces.NewMockITokenIssuer(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.Lawyer{}, nil)
		issuer.EXPECT().Issue(gomock.Any()).Return("", time.Time{}, errors.New("sign"))

		if _, err := NewAuthUseCase(repo, issuer, 0).Login(ctx, "a@b.com", "x"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestAuthUseCase_Demo(t *testing.T) {
	uc := NewAuthUseCase(nil, auth.NewTokenIssuer("secret", time.Hour), 0)
	s, err := uc.StartDemo(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := uc.Authenticate(s.Token)
	if err != nil || !id.Demo || id.OwnerID != s.Identity.OwnerID {
		t.Fatalf("unexpected identity %+v err=%v", id, err)
	}

	other, _ := uc.StartDemo(context.Background())
	if other.Identity.OwnerID == s.Identity.OwnerID {
		t.Fatalf("expected a fresh owner per demo session")
	}
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	uc := NewAuthUseCase(nil, auth.NewTokenIssuer("secret", time.Hour), 0)
	if _, err := uc.Authenticate(""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := uc.Authenticate("garbage"); !errors.Is(err, ErrUnauthenticated) || !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected wrapped invalid token, got %v", err)
	}
}
