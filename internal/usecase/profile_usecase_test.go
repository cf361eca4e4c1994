package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"assistente_juridico/internal/adapter/persistence/repository"
	"assistente_juridico/internal/domain/entities"

	"golang.org/x/crypto/bcrypt"
)

func newProfileFixture(t *testing.T) (*ProfileUseCase, *repository.LawyerMemoryRepository, *stubIntents) {
	t.Helper()
	lawyers := repository.NewLawyerMemoryRepository()
	hash, _ := bcrypt.GenerateFromPassword([]byte("senha1234"), bcrypt.MinCost)
	_, _ = lawyers.Create(context.Background(), entities.Lawyer{
		ID: "lawyer-1", FullName: "Joao Silva", Email: "joao@x.com",
		SubscriptionTier: entities.LicenseBasic, PasswordHash: string(hash), Credits: 10,
	})
	_, _ = lawyers.Create(context.Background(), entities.Lawyer{ID: "lawyer-2", Email: "maria@x.com"})
	intents := &stubIntents{}
	return NewProfileUseCase(lawyers, repository.NewPaymentMemoryRepository(), intents), lawyers, intents
}

func TestProfileUseCase_Me(t *testing.T) {
	uc, _, _ := newProfileFixture(t)
	p, err := uc.Me(context.Background(), "lawyer-1")
	if err != nil || p.Lawyer.FullName != "Joao Silva" || len(p.Payments) != 0 {
		t.Fatalf("unexpected profile %+v err=%v", p, err)
	}
	if _, err := uc.Me(context.Background(), "demo-1"); !errors.Is(err, ErrLawyerNotFound) {
		t.Fatalf("expected ErrLawyerNotFound, got %v", err)
	}
}

func TestProfileUseCase_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newProfileFixture(t)

	l, err := uc.UpdateProfile(ctx, "lawyer-1", ptr(" Joao S. Silva "), ptr("joao.silva@x.com"))
	if err != nil || l.FullName != "Joao S. Silva" || l.Email != "joao.silva@x.com" {
		t.Fatalf("unexpected lawyer %+v err=%v", l, err)
	}
	if _, err := uc.UpdateProfile(ctx, "lawyer-1", ptr("Jo"), nil); !errors.Is(err, ErrInvalidFullName) {
		t.Fatalf("expected ErrInvalidFullName, got %v", err)
	}
	if _, err := uc.UpdateProfile(ctx, "lawyer-1", nil, ptr("nope")); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := uc.UpdateProfile(ctx, "lawyer-1", nil, ptr("MARIA@x.com")); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestProfileUseCase_ChangePassword(t *testing.T) {
	ctx := context.Background()
	uc, lawyers, _ := newProfileFixture(t)

	cases := []struct {
		name                   string
		current, next, confirm string
		want                   error
	}{
		{"wrong current", "errada", "novasenha1", "novasenha1", ErrWrongPassword},
		{"confirmation mismatch", "senha1234", "novasenha1", "novasenha2", ErrPasswordConfirmation},
		{"too short", "senha1234", "curta", "curta", ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := uc.ChangePassword(ctx, "lawyer-1", tc.current, tc.next, tc.confirm); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if err := uc.ChangePassword(ctx, "lawyer-1", "senha1234", "novasenha1", "novasenha1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l, _ := lawyers.GetByID(ctx, "lawyer-1")
	if bcrypt.CompareHashAndPassword([]byte(l.PasswordHash), []byte("novasenha1")) != nil {
		t.Fatalf("password not updated")
	}
}

func TestProfileUseCase_Purchases(t *testing.T) {
	ctx := context.Background()

	t.Run("subscription change records payment", func(t *testing.T) {
		uc, _, intents := newProfileFixture(t)
		res, err := uc.ChangeSubscription(ctx, "lawyer-1", entities.LicensePremium)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Lawyer.SubscriptionTier != entities.LicensePremium || res.Payment == nil || res.Payment.Amount != 57949 {
			t.Fatalf("unexpected result %+v", res)
		}
		if intents.amounts[0] != 57949 {
			t.Fatalf("unexpected amount %v", intents.amounts)
		}
		me, _ := uc.Me(ctx, "lawyer-1")
		if len(me.Payments) != 1 {
			t.Fatalf("expected payment history entry")
		}
	})

	t.Run("failed intent leaves the account unchanged", func(t *testing.T) {
		uc, _, intents := newProfileFixture(t)
		intents.results = []entities.PaymentIntentResult{{Status: entities.PaymentIntentFailed, Reason: "down", Retryable: true}}
		res, err := uc.ChangeSubscription(ctx, "lawyer-1", entities.LicensePro)
		if !errors.Is(err, ErrPaymentIntentRejected) {
			t.Fatalf("expected ErrPaymentIntentRejected, got %v", err)
		}
		if res.Lawyer.SubscriptionTier != entities.LicenseBasic || !res.PaymentIntent.Retryable {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("credits", func(t *testing.T) {
		uc, _, intents := newProfileFixture(t)
		res, err := uc.AddCredits(ctx, "lawyer-1", 500)
		if err != nil || res.Lawyer.Credits != 510 || res.Payment.Purpose != entities.PaymentPurposeCredits {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
		if intents.amounts[0] != 19990 {
			t.Fatalf("unexpected amount %v", intents.amounts)
		}
		if _, err := uc.AddCredits(ctx, "lawyer-1", 42); !errors.Is(err, ErrUnknownCreditPackage) {
			t.Fatalf("expected ErrUnknownCreditPackage, got %v", err)
		}
	})

	t.Run("concurrent purchases keep every credit and the tier", func(t *testing.T) {
		uc, lawyers, intents := newProfileFixture(t)
		intents.delay = 5 * time.Millisecond

		var wg sync.WaitGroup
		errs := make(chan error, 3)
		for _, buy := range []func() error{
			func() error { _, err := uc.AddCredits(ctx, "lawyer-1", 100); return err },
			func() error { _, err := uc.AddCredits(ctx, "lawyer-1", 100); return err },
			func() error { _, err := uc.ChangeSubscription(ctx, "lawyer-1", entities.LicensePro); return err },
		} {
			wg.Add(1)
			go func(buy func() error) {
				defer wg.Done()
				errs <- buy()
			}(buy)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		l, _ := lawyers.GetByID(ctx, "lawyer-1")
		if l.Credits != 210 || l.SubscriptionTier != entities.LicensePro {
			t.Fatalf("lost update: credits=%d tier=%s", l.Credits, l.SubscriptionTier)
		}
		me, _ := uc.Me(ctx, "lawyer-1")
		if len(me.Payments) != 3 {
			t.Fatalf("expected 3 payments, got %d", len(me.Payments))
		}
	})
}
