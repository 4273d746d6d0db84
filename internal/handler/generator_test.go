package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func newTestHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService())
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLen    int
		wantError  string
	}{
		{"medium preset", `{"type":"medium"}`, http.StatusOK, 12, ""},
		{"strong preset", `{"type":"strong"}`, http.StatusOK, 16, ""},
		{"custom", `{"type":"custom","length":20,"uppercase":true,"digits":false,"symbols":true}`, http.StatusOK, 20, ""},
		{"unknown type", `{"type":"whatever"}`, http.StatusOK, 12, ""},
		{"custom too short", `{"type":"custom","length":2}`, http.StatusBadRequest, 0, "password length must be at least 4"},
		{"invalid json", `{"type":`, http.StatusBadRequest, 0, "invalid request body"},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/generate_password", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			if tt.wantError != "" {
				var resp model.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decoding error body: %v", err)
				}
				if resp.Error != tt.wantError {
					t.Errorf("error = %q, want %q", resp.Error, tt.wantError)
				}
				return
			}

			var resp model.GenerateResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if len(resp.Password) != tt.wantLen {
				t.Errorf("password length = %d, want %d", len(resp.Password), tt.wantLen)
			}
		})
	}
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	body := `{"type":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/generate_password", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler().HandleGenerate(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestHandleCheckStrength(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/check_strength", strings.NewReader(`{"password":"Abcdefg1"}`))
	rec := httptest.NewRecorder()

	newTestHandler().HandleCheckStrength(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.StrengthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.Score != 3 || resp.Strength != "Medium" || resp.Color != "orange" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(resp.Feedback) != 1 {
		t.Errorf("feedback = %v, want one hint", resp.Feedback)
	}
}

func TestHandleCheckStrength_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/check_strength", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	newTestHandler().HandleCheckStrength(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
