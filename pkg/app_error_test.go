package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if !strings.Contains(appErr.Error(), "dynamodb timeout") {
		t.Fatalf("expected cause in Error(), got %q", appErr.Error())
	}

	b, err := json.Marshal(appErr.ToHTTPError())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "dynamodb") {
		t.Fatalf("cause must not leak into the response: %s", b)
	}
	if string(b) != `{"success":false,"error":{"code":"INTERNAL_ERROR","message":"An internal error occurred"}}` {
		t.Fatalf("unexpected envelope: %s", b)
	}
}

func TestOK(t *testing.T) {
	b, err := json.Marshal(OK(map[string]int{"total": 2}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"success":true,"data":{"total":2}}` {
		t.Fatalf("unexpected envelope: %s", b)
	}

	simple := NewDomainErrorSimple("ORDER_NOT_FOUND", "not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
