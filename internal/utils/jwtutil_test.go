package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	tok, exp, err := m.GenerateToken("sid-1", "asha", "manager")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry %v is in the past", exp)
	}

	claims, err := m.ParseToken(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != "sid-1" || claims.Username != "asha" || claims.Role != "manager" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tok, _, _ := NewTokenManager("one", time.Hour).GenerateToken("sid", "u", "")
	if _, err := NewTokenManager("two", time.Hour).ParseToken(tok); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)
	tok, _, _ := m.GenerateToken("sid", "u", "")
	if _, err := m.ParseToken(tok); err == nil {
		t.Fatal("expected expiry error")
	}
}
