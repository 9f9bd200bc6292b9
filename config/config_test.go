package config

import "testing"

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "3000", "EMPTY": ""}

	if got := GetString(c, "PORT", "8080"); got != "3000" {
		t.Errorf("expected 3000, got %q", got)
	}
	if got := GetString(c, "MISSING", "8080"); got != "8080" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := GetString(c, "EMPTY", "8080"); got != "" {
		t.Errorf("present-but-empty keys win over the default, got %q", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("nil config returns the default, got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "abc"}

	if got := GetInt(c, "TIMEOUT", 180); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	if got := GetInt(c, "MISSING", 180); got != 180 {
		t.Errorf("expected fallback, got %d", got)
	}
	if got := GetInt(c, "BAD", 180); got != 180 {
		t.Errorf("unparsable values fall back, got %d", got)
	}
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"PING_SELF": "true", "OFF": "0", "BAD": "yes!"}

	if !GetBool(c, "PING_SELF", false) {
		t.Error("expected true")
	}
	if GetBool(c, "OFF", true) {
		t.Error("expected false for 0")
	}
	if !GetBool(c, "BAD", true) {
		t.Error("unparsable values fall back")
	}
	if GetBool(nil, "PING_SELF", false) {
		t.Error("nil config returns the default")
	}
}

func TestNewSnapshotsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "value")

	c := New()
	if got := GetString(c, "PORTFOLIO_TEST_KEY", ""); got != "value" {
		t.Errorf("expected snapshot to contain env var, got %q", got)
	}
}
