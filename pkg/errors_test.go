package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if got := e.ToHTTPError(); got.Code != "INTERNAL_ERROR" || got.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", got)
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %q", e.Error())
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.HTTPStatus != http.StatusBadRequest || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
