package failure_test

import (
	"errors"
	"nautica/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("custom bad request"),
			code:    http.StatusBadRequest,
			message: "custom bad request",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("an outstanding payment already exists for this booking"),
			code:    http.StatusConflict,
			message: "an outstanding payment already exists for this booking",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("access denied"),
			code:    http.StatusForbidden,
			message: "access denied",
		},
		{
			name:    "InvalidState",
			err:     failure.InvalidState("booking is not confirmed"),
			code:    http.StatusBadRequest,
			message: "booking is not confirmed",
		},
		{
			name:    "PaymentNotReady",
			err:     failure.PaymentNotReady("payment is not held yet"),
			code:    http.StatusBadRequest,
			message: "payment is not held yet",
		},
		{
			name:    "SignatureInvalid",
			err:     failure.SignatureInvalid("signature mismatch"),
			code:    http.StatusBadRequest,
			message: "signature mismatch",
		},
		{
			name:    "UpstreamError",
			err:     failure.UpstreamError("payment processor unavailable"),
			code:    http.StatusInternalServerError,
			message: "payment processor unavailable",
		},
		{
			name:    "ConfigError",
			err:     failure.ConfigError("webhook secret is not configured"),
			code:    http.StatusInternalServerError,
			message: "webhook secret is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	result := failure.BadRequest(errors.New("validation failed"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}
	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}
	if f.Message != "validation failed" {
		t.Errorf("expected message to be 'validation failed', got %s", f.Message)
	}

	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestInternalError(t *testing.T) {
	result := failure.InternalError(errors.New("database connection failed"))

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}
	if f.Code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, f.Code)
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}
