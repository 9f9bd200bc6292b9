package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockNotifier is a hand-rolled likeNotifier double
type mockNotifier struct {
	configured bool
	sendFunc   func(ctx context.Context, text string) error
	sendCalls  int
}

func (m *mockNotifier) Configured() bool {
	return m.configured
}

func (m *mockNotifier) SendMessage(ctx context.Context, text string) error {
	m.sendCalls++
	if m.sendFunc != nil {
		return m.sendFunc(ctx, text)
	}
	return nil
}

func TestSendLike_MissingCredentials(t *testing.T) {
	notifier := &mockNotifier{configured: false}
	h := newLikeHandler(notifier)

	req := httptest.NewRequest("POST", "/api/like", nil)
	rec := httptest.NewRecorder()
	h.sendLike("test message").ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Telegram bot token or chat ID not found" {
		t.Errorf("unexpected error body: %q", body.Error)
	}
	if notifier.sendCalls != 0 {
		t.Errorf("no outbound call should be attempted, got %d", notifier.sendCalls)
	}
}

func TestSendLike_DeliveryFailure(t *testing.T) {
	notifier := &mockNotifier{
		configured: true,
		sendFunc: func(ctx context.Context, text string) error {
			return errors.New("telegram API error (status 403): bot was blocked")
		},
	}
	h := newLikeHandler(notifier)

	req := httptest.NewRequest("POST", "/api/like", nil)
	rec := httptest.NewRecorder()
	h.sendLike("test message").ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Failed to send like message" {
		t.Errorf("unexpected error body: %q", body.Error)
	}
}

func TestSendLike_Success(t *testing.T) {
	var sentText string
	notifier := &mockNotifier{
		configured: true,
		sendFunc: func(ctx context.Context, text string) error {
			sentText = text
			return nil
		},
	}
	h := newLikeHandler(notifier)

	req := httptest.NewRequest("POST", "/api/like", nil)
	rec := httptest.NewRecorder()
	h.sendLike("portfolio liked").ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sentText != "portfolio liked" {
		t.Errorf("expected relay of the fixed message, sent %q", sentText)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Like message sent successfully" {
		t.Errorf("unexpected confirmation: %q", body["message"])
	}
}
