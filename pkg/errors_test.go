package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("error string without cause", func(t *testing.T) {
		e := NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		if e.Error() != "PAYMENT_NOT_FOUND: Payment not found" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		if e.Unwrap() != nil {
			t.Fatalf("expected nil cause")
		}
	})

	t.Run("error string with cause", func(t *testing.T) {
		cause := errors.New("conditional check failed")
		e := NewDomainError("RECONCILIATION_FAILED", "Checkout reconciliation failed", cause, http.StatusInternalServerError)
		if !strings.Contains(e.Error(), "conditional check failed") {
			t.Fatalf("cause missing from error string: %s", e.Error())
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected errors.Is to reach the cause")
		}
	})

	t.Run("http body never leaks the cause", func(t *testing.T) {
		cause := errors.New("dynamodb: table not found")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

		raw, err := json.Marshal(e.ToHTTPError())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if strings.Contains(string(raw), "dynamodb") {
			t.Fatalf("cause leaked into http body: %s", raw)
		}
		var body map[string]string
		_ = json.Unmarshal(raw, &body)
		if body["code"] != "INTERNAL_ERROR" || body["message"] != "An internal error occurred" {
			t.Fatalf("unexpected body: %s", raw)
		}
	})
}
