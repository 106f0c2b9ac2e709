package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/passgen"
	"github.com/passforge/passforge-go/internal/service"
)

func newTestGeneratorHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService(passgen.DefaultMaxLength, nil))
}

func TestHandleGenerate_OK(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{"length": 12}`))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected 12-character password, got %d", len(resp.Password))
	}
	if resp.Strength != "medium" {
		t.Errorf("expected strength %q, got %q", "medium", resp.Strength)
	}
}

func TestHandleGenerate_NoClasses(t *testing.T) {
	h := newTestGeneratorHandler()

	body := `{"length": 12, "uppercase": false, "lowercase": false, "numbers": false, "symbols": false}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestHandleGenerate_InvalidBody(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestHandleGenerate_LengthOverMax(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{"length": 40}`))
	w := httptest.NewRecorder()
	h.HandleGenerate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestHandleStrength(t *testing.T) {
	h := newTestGeneratorHandler()

	tests := []struct {
		length int
		want   string
	}{
		{0, "none"},
		{4, "too_weak"},
		{8, "weak"},
		{12, "medium"},
		{16, "strong"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(`{"length": `+strconv.Itoa(tt.length)+`}`))
		w := httptest.NewRecorder()
		h.HandleStrength(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("length %d: expected status 200, got %d", tt.length, w.Code)
		}

		var resp model.StrengthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Strength != tt.want {
			t.Errorf("length %d: strength = %q, want %q", tt.length, resp.Strength, tt.want)
		}
	}
}

func TestHandleStrength_NegativeLength(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(`{"length": -2}`))
	w := httptest.NewRecorder()
	h.HandleStrength(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}
