package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"assistente_juridico/internal/domain/entities"
)

func TestLawyerMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewLawyerMemoryRepository()

	l := entities.Lawyer{ID: "l-1", Email: "Joao@X.com", FullName: "Joao Silva"}
	if _, err := r.Create(ctx, l); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := r.Create(ctx, entities.Lawyer{ID: "l-2", Email: " joao@x.com "}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, _ := r.GetByEmail(ctx, "JOAO@x.com")
	if got.ID != "l-1" {
		t.Fatalf("expected case-insensitive lookup, got %+v", got)
	}

	l.Email = "novo@x.com"
	if _, err := r.Update(ctx, l); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got, _ := r.GetByEmail(ctx, "joao@x.com"); got.ID != "" {
		t.Fatalf("old email still indexed")
	}
	if got, _ := r.GetByEmail(ctx, "novo@x.com"); got.ID != "l-1" {
		t.Fatalf("new email not indexed")
	}

	if got, _ := r.Update(ctx, entities.Lawyer{ID: "missing"}); got.ID != "" {
		t.Fatalf("expected zero value for unknown id")
	}

	if err := r.Delete(ctx, "l-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := r.GetByEmail(ctx, "novo@x.com"); got.ID != "" {
		t.Fatalf("email still indexed after delete")
	}
	if _, err := r.Create(ctx, entities.Lawyer{ID: "l-3", Email: "novo@x.com"}); err != nil {
		t.Fatalf("email must be reusable after delete: %v", err)
	}
	if err := r.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
}

func TestPaymentMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewPaymentMemoryRepository()
	now := time.Now()
	_, _ = r.Create(ctx, entities.Payment{ID: "p-2", LawyerID: "l-1", Date: now.Add(time.Minute)})
	_, _ = r.Create(ctx, entities.Payment{ID: "p-1", LawyerID: "l-1", Date: now})
	_, _ = r.Create(ctx, entities.Payment{ID: "p-3", LawyerID: "l-2", Date: now})

	got, err := r.ListByLawyerID(ctx, "l-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p-1" || got[1].ID != "p-2" {
		t.Fatalf("unexpected payments: %+v", got)
	}
}

func TestPaymentItemConversion(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	p := entities.Payment{
		ID: "p-1", LawyerID: "l-1", Purpose: entities.PaymentPurposeSubscription,
		LicenseType: entities.LicensePro, Amount: 37990, Date: now,
		Status: entities.PaymentStatusAprovado, ProviderPayloadRaw: []byte(`{"id":"1"}`),
	}
	back, err := fromPaymentItem(toPaymentItem(p))
	if err != nil {
		t.Fatalf("conversion: %v", err)
	}
	if !back.Date.Equal(now) || back.Amount != 37990 || string(back.ProviderPayloadRaw) != `{"id":"1"}` || back.LicenseType != entities.LicensePro {
		t.Fatalf("unexpected conversion: %+v", back)
	}
}

func TestItemConversionRejectsCorruptTimes(t *testing.T) {
	if _, err := fromPaymentItem(paymentItem{ID: "p-1", Date: "ontem"}); err == nil || !strings.Contains(err.Error(), "payment p-1") {
		t.Fatalf("expected corrupt date error, got %v", err)
	}
	if _, err := fromLawyerItem(lawyerItem{ID: "l-1", CreatedAt: "2026-10-18T12:00:00Z", UpdatedAt: "18/10/2026"}); err == nil || !strings.Contains(err.Error(), "updated_at") {
		t.Fatalf("expected corrupt updated_at error, got %v", err)
	}

	l, err := fromLawyerItem(lawyerItem{ID: "l-1"})
	if err != nil || !l.CreatedAt.IsZero() {
		t.Fatalf("empty timestamps must map to zero time, got %+v err=%v", l, err)
	}
}

func TestLawyerItemNormalizesEmail(t *testing.T) {
	it := toLawyerItem(entities.Lawyer{ID: "l-1", Email: " Joao@X.com "})
	if it.Email != "joao@x.com" {
		t.Fatalf("expected normalized email, got %q", it.Email)
	}
}
