package jwt

import (
	"strings"
	"testing"
	"time"
)

func TestSign(t *testing.T) {
	claims := New("5fa8158a47b7ff4422a5a407", TokenTypeAccess, []string{"staff"}, time.Hour)
	tokenString, err := Sign(claims, "secret")
	if err != nil {
		t.Error(err)
	}

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		t.Error("JWT does not have 3 parts")
	}
}

func TestVerify(t *testing.T) {
	claims := New("5fa8158a47b7ff4422a5a407", TokenTypeAccess, []string{"staff"}, time.Hour)
	tokenString, err := Sign(claims, "secret")
	if err != nil {
		t.Fatal(err)
	}

	verified, err := Verify(tokenString, TokenTypeAccess, "secret")
	if err != nil {
		t.Fatal(err)
	}

	if verified.Subject != "5fa8158a47b7ff4422a5a407" {
		t.Errorf("subject = %q", verified.Subject)
	}
	if !verified.HasRole("staff") || verified.HasRole("admin") {
		t.Errorf("roles = %v", verified.Roles)
	}
}

func TestVerify_Rejects(t *testing.T) {
	valid := New("5fa8158a47b7ff4422a5a407", TokenTypeAccess, nil, time.Hour)
	expired := New("5fa8158a47b7ff4422a5a407", TokenTypeAccess, nil, -time.Minute)
	refresh := New("5fa8158a47b7ff4422a5a407", TokenTypeRefresh, nil, time.Hour)
	noSubject := New("", TokenTypeAccess, nil, time.Hour)

	var rejectTests = []struct {
		name   string
		claims Claims
		secret string
	}{
		{"expired", expired, "secret"},
		{"wrong secret", valid, "other"},
		{"wrong type", refresh, "secret"},
		{"no subject", noSubject, "secret"},
	}

	for _, tt := range rejectTests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, err := Sign(tt.claims, tt.secret)
			if err != nil {
				t.Fatal(err)
			}

			verified, err := Verify(tokenString, TokenTypeAccess, "secret")
			if err == nil || verified != nil {
				t.Errorf("expected token to be rejected")
			}
		})
	}

	if _, err := Verify("", TokenTypeAccess, "secret"); err == nil {
		t.Error("empty token should be rejected")
	}
}
