package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	pkgerrors "swimtrack/backend/pkg/errors"
)

// Session columns a PATCH may touch. Keys outside this list are ignored.
const (
	SessionFieldStatus     = "status"
	SessionFieldFocusArea  = "focus_area"
	SessionFieldNotes      = "notes"
	SessionFieldLoadActual = "load_actual"
)

var jsonNull = []byte("null")

// ParseUpdateSessionRequest picks the allow-listed keys out of a raw patch object
// and type-checks them. Unknown keys are dropped without error.
func ParseUpdateSessionRequest(raw map[string]json.RawMessage) (*UpdateSessionRequest, error) {
	req := &UpdateSessionRequest{}
	var issues []pkgerrors.Issue
	addIssue := func(field, msg string) {
		issues = append(issues, pkgerrors.Issue{Path: "body." + field, Message: msg})
	}

	if v, ok := raw[SessionFieldStatus]; ok {
		if s, ok := nonBlankString(v); ok {
			req.Status = &s
		} else {
			addIssue(SessionFieldStatus, "status darf nicht leer sein")
		}
	}

	if v, ok := raw[SessionFieldFocusArea]; ok {
		if s, ok := nonBlankString(v); ok {
			req.FocusArea = &s
		} else {
			addIssue(SessionFieldFocusArea, "focus_area darf nicht leer sein")
		}
	}

	if v, ok := raw[SessionFieldNotes]; ok {
		var s *string
		switch {
		case isNull(v):
			req.NotesSet = true
		case json.Unmarshal(v, &s) != nil:
			addIssue(SessionFieldNotes, "notes muss ein Text sein")
		case *s == "":
			req.NotesSet = true
		case strings.TrimSpace(*s) == "":
			addIssue(SessionFieldNotes, "notes darf nicht leer sein")
		default:
			trimmed := strings.TrimSpace(*s)
			req.NotesSet, req.Notes = true, &trimmed
		}
	}

	if v, ok := raw[SessionFieldLoadActual]; ok {
		var f float64
		switch {
		case isNull(v):
			req.LoadActualSet = true
		case json.Unmarshal(v, &f) != nil:
			addIssue(SessionFieldLoadActual, "load_actual muss eine Zahl sein")
		default:
			req.LoadActualSet, req.LoadActual = true, &f
		}
	}

	if len(issues) > 0 {
		return nil, &pkgerrors.ValidationError{Issues: issues}
	}
	return req, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), jsonNull)
}

func nonBlankString(v json.RawMessage) (string, bool) {
	var s string
	if isNull(v) || json.Unmarshal(v, &s) != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
