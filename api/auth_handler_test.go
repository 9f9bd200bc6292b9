package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func doLogin(t *testing.T, adminSecret, password string) (*httptest.ResponseRecorder, loginResponse) {
	t.Helper()

	h := newAuthHandler(adminSecret)

	jsonBody, err := json.Marshal(loginRequest{Password: password})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader(jsonBody))
	rec := httptest.NewRecorder()
	h.login().ServeHTTP(rec, req)

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec, resp
}

func TestLogin_CorrectSecret(t *testing.T) {
	rec, resp := doLogin(t, "hunter2", "hunter2")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if err := parseSessionToken(resp.Token, "hunter2"); err != nil {
		t.Errorf("issued token does not validate: %v", err)
	}
}

func TestLogin_Denied(t *testing.T) {
	cases := []struct {
		name     string
		secret   string
		password string
	}{
		{"wrong password", "hunter2", "hunter3"},
		{"empty password", "hunter2", ""},
		{"secret unset", "", ""},
		{"secret unset nonempty password", "", "anything"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := doLogin(t, tc.secret, tc.password)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
			if resp.Success {
				t.Error("expected success=false")
			}
			if resp.Message != "Access Denied" {
				t.Errorf("expected Access Denied, got %q", resp.Message)
			}
			if resp.Token != "" {
				t.Error("denied login must not issue a token")
			}
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	h := newAuthHandler("hunter2")

	req := httptest.NewRequest("POST", "/api/admin/login", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.login().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for malformed body, got %d", rec.Code)
	}
}
