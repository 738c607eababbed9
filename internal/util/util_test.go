package util

import (
	"ai_edu_navigator/internal/model"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{ID: "u-1", Email: "alice@example.com", Provider: model.ProviderGithub}
	token, err := GenerateJWT(user, "device-1", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() failed: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("ParseJWT() failed: %v", err)
	}
	if claims.UserID != "u-1" || claims.DeviceID != "device-1" || claims.Provider != model.ProviderGithub {
		t.Fatalf("claims = %+v", claims)
	}

	if claims.Subject != "u-1" || claims.ID == "" {
		t.Fatalf("registered claims = %+v", claims.RegisteredClaims)
	}

	user.SessionID = "login-42"
	bound, _ := GenerateJWT(user, "device-1", "secret", time.Hour)
	if claims, err := ParseJWT(bound, "secret"); err != nil || claims.ID != "login-42" {
		t.Fatalf("jti should carry the session id, got %+v, %v", claims, err)
	}

	if _, err := ParseJWT(token, "other"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ParseJWT() with wrong secret error = %v", err)
	}
	expired, _ := GenerateJWT(user, "device-1", "secret", -time.Minute)
	if _, err := ParseJWT(expired, "secret"); err == nil {
		t.Fatalf("ParseJWT() with expired token should fail")
	}
}

func TestValidDeviceID(t *testing.T) {
	valid := []string{NewDeviceID(), "3b1d7c90-2f4e-4b8a-9c55-0a6e1f2d4c77"}
	for _, id := range valid {
		if !ValidDeviceID(id) {
			t.Errorf("ValidDeviceID(%q) = false, want true", id)
		}
	}

	invalid := []string{
		"",
		"../../etc/passwd",
		"3b1d7c902f4e4b8a9c550a6e1f2d4c77",
		"urn:uuid:3b1d7c90-2f4e-4b8a-9c55-0a6e1f2d4c77",
	}
	for _, id := range invalid {
		if ValidDeviceID(id) {
			t.Errorf("ValidDeviceID(%q) = true, want false", id)
		}
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		ua       string
		platform string
		mobile   bool
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", PlatformIOS, true},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", PlatformAndroid, true},
		{"Mozilla/5.0 (X11; Linux x86_64)", PlatformWeb, false},
	}
	for _, tt := range tests {
		if got := DetectPlatform(tt.ua); got != tt.platform {
			t.Errorf("DetectPlatform(%q) = %q, want %q", tt.ua, got, tt.platform)
		}
		if got := IsMobile(tt.ua); got != tt.mobile {
			t.Errorf("IsMobile(%q) = %v, want %v", tt.ua, got, tt.mobile)
		}
	}
}

func TestErrorHelpers(t *testing.T) {
	err := fmt.Errorf("login: %w", NewValidationError("email", ErrInvalidEmail))
	if !IsValidationError(err) || !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("wrapped validation error not detected: %v", err)
	}
	if IsValidationError(ErrInvalidEmail) {
		t.Fatalf("bare sentinel should not count as validation error")
	}

	pe := &StorageParseError{Key: "aiLearnUser:x", Err: errors.New("bad json")}
	if !IsStorageParseError(fmt.Errorf("load: %w", pe)) {
		t.Fatalf("wrapped parse error not detected")
	}
	if !strings.Contains(pe.Error(), "aiLearnUser:x") {
		t.Fatalf("parse error should name the key: %q", pe.Error())
	}
}

func TestParseLimit(t *testing.T) {
	tests := map[string]int{"": 3, "5": 5, "0": 0}
	for in, want := range tests {
		if got, err := ParseLimit(in, 3); err != nil || got != want {
			t.Errorf("ParseLimit(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"-2", "abc", "1.5"} {
		if _, err := ParseLimit(in, 3); err == nil {
			t.Errorf("ParseLimit(%q) should fail", in)
		}
	}
}
