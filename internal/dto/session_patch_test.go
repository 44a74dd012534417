package dto

import (
	"encoding/json"
	"errors"
	"testing"

	pkgerrors "swimtrack/backend/pkg/errors"
)

func parse(t *testing.T, body string) (*UpdateSessionRequest, error) {
	t.Helper()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("bad fixture %s: %v", body, err)
	}
	return ParseUpdateSessionRequest(raw)
}

func TestParseUpdateSessionRequest_IgnoresUnknownKeys(t *testing.T) {
	req, err := parse(t, `{"unknown_field":"x","title":"Neu","team_id":3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.Empty() {
		t.Errorf("expected empty request, got %+v", req)
	}
}

func TestParseUpdateSessionRequest_AllowedFields(t *testing.T) {
	req, err := parse(t, `{"status":"abgeschlossen","focus_area":" Sprint ","notes":" gut ","load_actual":7.5}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *req.Status != "abgeschlossen" || *req.FocusArea != "Sprint" {
		t.Errorf("unexpected strings: %+v", req)
	}
	if !req.NotesSet || *req.Notes != "gut" {
		t.Errorf("unexpected notes: %+v", req)
	}
	if !req.LoadActualSet || *req.LoadActual != 7.5 {
		t.Errorf("unexpected load: %+v", req)
	}
}

func TestParseUpdateSessionRequest_NullsClear(t *testing.T) {
	req, err := parse(t, `{"notes":null,"load_actual":null}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Empty() || !req.NotesSet || req.Notes != nil || !req.LoadActualSet || req.LoadActual != nil {
		t.Errorf("expected explicit clears, got %+v", req)
	}
}

func TestParseUpdateSessionRequest_TypeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		path string
	}{
		{"load as string", `{"load_actual":"viel"}`, "body.load_actual"},
		{"status as number", `{"status":3}`, "body.status"},
		{"status null", `{"status":null}`, "body.status"},
		{"blank focus", `{"focus_area":"  "}`, "body.focus_area"},
		{"notes as object", `{"notes":{}}`, "body.notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.body)
			if !errors.Is(err, pkgerrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			var ve *pkgerrors.ValidationError
			if !errors.As(err, &ve) || ve.Issues[0].Path != tt.path {
				t.Errorf("expected issue at %s, got %v", tt.path, err)
			}
		})
	}
}
