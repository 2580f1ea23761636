package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	err := NewError(CodeNotFound, "application not found", nil)
	if !Is(err, CodeNotFound) {
		t.Fatal("expected code to match")
	}
	if Is(err, CodeConflict) {
		t.Fatal("expected code not to match")
	}
	if Is(errors.New("plain"), CodeNotFound) {
		t.Fatal("expected uncoded error not to match")
	}

	wrapped := fmt.Errorf("loading: %w", err)
	if !Is(wrapped, CodeNotFound) {
		t.Fatal("expected wrapped error to match")
	}
}

func TestCodeOf(t *testing.T) {
	if CodeOf(errors.New("plain")) != CodeInternal {
		t.Fatal("expected uncoded error to map to internal")
	}
	if CodeOf(NewError(CodeForbidden, "nope", nil)) != CodeForbidden {
		t.Fatal("expected forbidden code")
	}
}

func TestErrorMessage(t *testing.T) {
	plain := NewError(CodeValidation, "invalid request", nil)
	if plain.Error() != "invalid request" {
		t.Fatalf("unexpected message %q", plain.Error())
	}
	caused := NewError(CodeInternal, "query failed", errors.New("connection reset"))
	if caused.Error() != "query failed: connection reset" {
		t.Fatalf("unexpected message %q", caused.Error())
	}
	if caused.Unwrap() == nil {
		t.Fatal("expected cause to be unwrappable")
	}
}
