package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}

	cause := errors.New("boom")
	wrapped := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if wrapped.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped cause to unwrap")
	}
}

func TestAppError_ToHTTPError(t *testing.T) {
	appErr := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	body := appErr.ToHTTPError()
	if body.Code != "ORDER_NOT_FOUND" || body.Message != "Order not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
