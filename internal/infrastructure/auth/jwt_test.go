package auth

import (
	"errors"
	"testing"
	"time"

	"assistente_juridico/internal/domain/entities"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, exp, err := issuer.Issue(entities.Identity{OwnerID: "lawyer-1", Email: "joao@x.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	id, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.OwnerID != "lawyer-1" || id.Email != "joao@x.com" || id.Demo {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, _, _ := issuer.Issue(entities.Identity{OwnerID: "demo", Demo: true})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenIssuer("other", time.Hour)
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokenIssuer("secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if _, err := late.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := issuer.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
