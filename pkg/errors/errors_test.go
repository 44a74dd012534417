package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_UnwrapsToInvalidInput(t *testing.T) {
	err := fmt.Errorf("bind attendance: %w", NewValidationError("body[0].athlete_id", "muss eine positive Zahl sein"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("expected ErrInvalidInput in chain")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected *ValidationError in chain")
	}
	if ve.Issues[0].Path != "body[0].athlete_id" {
		t.Errorf("unexpected path %s", ve.Issues[0].Path)
	}
}

func TestValidationError_Message(t *testing.T) {
	if got := (&ValidationError{}).Error(); got != "invalid input" {
		t.Errorf("unexpected message %q", got)
	}
	got := NewValidationError("body", "darf nicht leer sein").Error()
	if got != "invalid input: body: darf nicht leer sein" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestClassifiedErrors(t *testing.T) {
	nf := NotFound("Team nicht gefunden")
	if !errors.Is(nf, ErrNotFound) || errors.Is(nf, ErrInvalidInput) {
		t.Errorf("NotFound classified wrongly")
	}
	if nf.Error() != "Team nicht gefunden" {
		t.Errorf("unexpected message %q", nf.Error())
	}

	wrapped := fmt.Errorf("load team: %w", InvalidInput("Team existiert nicht"))
	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput in chain")
	}
}
