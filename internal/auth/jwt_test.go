package auth_test

import (
	"testing"
	"time"

	"riichiscore/internal/auth"
)

func TestIssueAndParseToken(t *testing.T) {
	token, err := auth.IssueToken("client-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	clientID, err := auth.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if clientID != "client-1" {
		t.Fatalf("clientID = %q, want client-1", clientID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.IssueToken("client-1", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := auth.ParseToken(token, "other-secret"); err == nil {
		t.Fatalf("expected error parsing with the wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := auth.IssueToken("client-1", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := auth.ParseToken(token, "test-secret"); err == nil {
		t.Fatalf("expected error parsing an expired token")
	}
}
