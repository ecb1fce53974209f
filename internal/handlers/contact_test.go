package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"portfolio_backend/internal/service"
)

func TestSubmitContact_Success(t *testing.T) {
	contact := &mockContact{confirmation: "Message sent successfully! I will get back to you soon."}
	r := newTestRouter(&service.Service{Contact: contact})

	w := doJSON(r, http.MethodPost, "/api/contact",
		`{"full_name":"Jane Doe","email":"jane@example.com","message":"Hi!"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	in := contact.lastInput
	if in.FullName == nil || *in.FullName != "Jane Doe" {
		t.Fatalf("full_name not passed: %+v", in)
	}
	if in.Email == nil || *in.Email != "jane@example.com" {
		t.Fatalf("email not passed: %+v", in)
	}
	if in.Message == nil || *in.Message != "Hi!" {
		t.Fatalf("message not passed: %+v", in)
	}

	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["success"] != true || m["message"] != contact.confirmation {
		t.Fatalf("unexpected response: %v", m)
	}
}

func TestSubmitContact_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"missing fields", service.ErrMissingContactFields, http.StatusBadRequest, "Full name, email, and message are required"},
		{"empty fields", service.ErrEmptyContactFields, http.StatusBadRequest, "All fields are required"},
		{"bad email", service.ErrInvalidEmail, http.StatusBadRequest, "Invalid email format"},
		{"store error", errors.New("db down"), http.StatusInternalServerError, "Database error. Please try again later."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contact := &mockContact{err: tc.err}
			r := newTestRouter(&service.Service{Contact: contact})

			w := doJSON(r, http.MethodPost, "/api/contact", `{"full_name":"Jane"}`, "")
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d; body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.wantMsg {
				t.Fatalf("error=%q, want %q", out.Error, tc.wantMsg)
			}
		})
	}
}

func TestSubmitContact_InvalidJSONBodyIs400(t *testing.T) {
	contact := &mockContact{}
	r := newTestRouter(&service.Service{Contact: contact})

	w := doJSON(r, http.MethodPost, "/api/contact", `{"email":5}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400; body=%s", w.Code, w.Body.String())
	}
	if contact.submitCalls != 0 {
		t.Fatalf("Submit should not be reached for a malformed body")
	}
}
